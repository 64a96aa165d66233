package index_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphwalk/index"
)

type nameField struct{}

func (nameField) Field() int                { return 0 }
func (nameField) Name() string              { return "name" }
func (nameField) SupportedKind() index.Kind { return index.FullText }

func TestKindString(t *testing.T) {
	assert.Equal(t, "Hash", index.Hash.String())
	assert.Equal(t, "Range", index.Range.String())
	assert.Equal(t, "FullText", index.FullText.String())
	assert.Equal(t, "Unknown", index.Kind(99).String())
}

func TestIDImplementation(t *testing.T) {
	var id index.ID = nameField{}

	assert.Equal(t, "name", id.Name())
	assert.Equal(t, index.FullText, id.SupportedKind())
}
