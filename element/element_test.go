package element_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphwalk/element"
	"github.com/katalvlaran/graphwalk/index"
	"github.com/katalvlaran/graphwalk/label"
	"github.com/katalvlaran/graphwalk/value"
)

type widgetLabel struct{}

func (widgetLabel) Ordinal() int { return 0 }
func (widgetLabel) Name() string { return "Widget" }

type weightField struct{}

func (weightField) Field() int                { return 0 }
func (weightField) Name() string              { return "weight" }
func (weightField) SupportedKind() index.Kind { return index.Range }

type widget struct{ Weight int64 }

func (widget) Label() label.Label { return widgetLabel{} }
func (w widget) FieldValue(id index.ID) (value.Value, bool) {
	if id == (weightField{}) {
		return value.Int(w.Weight), true
	}
	return value.Value{}, false
}

func TestElementFieldValue(t *testing.T) {
	var e element.Element = widget{Weight: 7}

	v, ok := e.FieldValue(weightField{})
	assert.True(t, ok)
	got, _ := v.Int()
	assert.Equal(t, int64(7), got)

	_, ok = e.FieldValue(struct {
		index.ID
	}{})
	assert.False(t, ok)
}
