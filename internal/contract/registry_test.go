package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndParse(t *testing.T) {
	r := NewRegistry()
	r.Register(testSchema())

	doc, err := r.Parse("widget", validWidget())
	require.NoError(t, err)
	assert.Equal(t, "Widget", doc["name"])
}

func TestRegistry_UnknownKind(t *testing.T) {
	r := NewRegistry()

	_, err := r.Parse("nope", map[string]any{})
	var uke *UnknownKindError
	require.ErrorAs(t, err, &uke)
	assert.Equal(t, "nope", uke.Kind)
}

func TestRegistry_DuplicateKindPanics(t *testing.T) {
	r := NewRegistry()
	r.Register(testSchema())

	assert.Panics(t, func() { r.Register(testSchema()) })
}

func TestRegistry_EmptyKindPanics(t *testing.T) {
	r := NewRegistry()
	assert.Panics(t, func() { r.Register(&Schema{}) })
}

func TestRegistry_ArrayWithoutElemPanics(t *testing.T) {
	r := NewRegistry()

	assert.Panics(t, func() {
		r.Register(&Schema{
			Kind: "bad",
			Fields: []Field{
				{Name: "items", Type: TypeArray},
			},
		})
	})

	// Nested field tables are checked too.
	assert.Panics(t, func() {
		r.Register(&Schema{
			Kind: "bad_nested",
			Fields: []Field{
				{Name: "owner", Type: TypeObject, Fields: []Field{
					{Name: "tags", Type: TypeArray},
				}},
			},
		})
	})
}

func TestRegistry_KindsSorted(t *testing.T) {
	r := NewRegistry()
	r.Register(&Schema{Kind: "b"})
	r.Register(&Schema{Kind: "a"})
	r.Register(&Schema{Kind: "c"})

	assert.Equal(t, []string{"a", "b", "c"}, r.Kinds())
}
