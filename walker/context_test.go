package walker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphwalk/walker"
)

func TestContextPushIsImmutable(t *testing.T) {
	var base *walker.Context
	base = base.Push(1)

	branchA := base.Push("a")
	branchB := base.Push("b")

	assert.Equal(t, "a", branchA.Top())
	assert.Equal(t, "b", branchB.Top())
	assert.Equal(t, 1, branchA.Parent().Top())
	assert.Equal(t, 1, base.Top())
	assert.Equal(t, 2, branchA.Depth())
	assert.Nil(t, base.Parent())
}

func TestContextValuesTopFirst(t *testing.T) {
	var c *walker.Context
	c = c.Push(1).Push(2).Push(3)

	assert.Equal(t, []any{3, 2, 1}, c.Values())
}
