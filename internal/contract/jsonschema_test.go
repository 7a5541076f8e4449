package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONSchema_Export(t *testing.T) {
	doc := JSONSchema(testSchema())

	assert.Equal(t, "http://json-schema.org/draft-07/schema#", doc["$schema"])
	assert.Equal(t, "widget", doc["title"])

	properties := doc["properties"].(map[string]any)
	name := properties["name"].(map[string]any)
	assert.Equal(t, "string", name["type"])
	assert.Equal(t, 10, name["maxLength"])

	status := properties["status"].(map[string]any)
	assert.Equal(t, []string{"draft", "open"}, status["enum"])
	assert.Equal(t, "draft", status["default"])

	price := properties["price_cents"].(map[string]any)
	assert.Equal(t, "integer", price["type"])
	assert.Equal(t, int64(0), price["minimum"])

	required := doc["required"].([]string)
	assert.ElementsMatch(t, []string{"id", "name"}, required)
}

func TestValidateJSONSchema_ValidDocument(t *testing.T) {
	err := ValidateJSONSchema(testSchema(), validWidget())
	require.NoError(t, err)
}

func TestValidateJSONSchema_InvalidDocument(t *testing.T) {
	input := validWidget()
	delete(input, "name")
	input["rating"] = float64(9)

	err := ValidateJSONSchema(testSchema(), input)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateJSONSchema_AllKindsCompile(t *testing.T) {
	// Every registered schema must survive a gojsonschema round trip.
	r := NewRegistry()
	r.Register(testSchema())
	r.Register(testSchema().WithKind("widget.create").Omit("id").Partial())

	for _, kind := range r.Kinds() {
		s, ok := r.Schema(kind)
		require.True(t, ok)
		assert.NoError(t, ValidateJSONSchema(s, validWidget()), "kind %s", kind)
	}
}
