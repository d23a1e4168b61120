package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() JSONSchema {
	return JSONSchema{
		Type:     "object",
		Required: []string{"name", "email"},
		Properties: map[string]Property{
			"name":  {Type: "string", MinLength: IntPtr(1)},
			"email": {Type: "string", MinLength: IntPtr(3)},
			"services": {
				Type:     "array",
				Items:    &Property{Type: "string"},
				MinItems: IntPtr(1),
			},
		},
		AdditionalProperties: true,
	}
}

func TestValidateInput_Valid(t *testing.T) {
	input := map[string]interface{}{
		"name":     "Anna Muster",
		"email":    "anna@example.com",
		"services": []interface{}{"Gebäudereinigung"},
		"extra":    "tolerated",
	}

	result := ValidateInput(input, testSchema())

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateInput_MissingRequired(t *testing.T) {
	input := map[string]interface{}{
		"email": "anna@example.com",
	}

	result := ValidateInput(input, testSchema())

	require.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	assert.Equal(t, "REQUIRED", result.Errors[0].Code)
}

func TestValidateInput_WrongType(t *testing.T) {
	input := map[string]interface{}{
		"name":     "Anna",
		"email":    "anna@example.com",
		"services": "Gebäudereinigung", // must be an array
	}

	result := ValidateInput(input, testSchema())

	require.False(t, result.Valid)
	found := false
	for _, e := range result.Errors {
		if e.Field == "services" {
			found = true
		}
	}
	assert.True(t, found, "expected an error on the services field, got %+v", result.Errors)
}

func TestValidateInput_EmptyArray(t *testing.T) {
	input := map[string]interface{}{
		"name":     "Anna",
		"email":    "anna@example.com",
		"services": []interface{}{},
	}

	result := ValidateInput(input, testSchema())

	assert.False(t, result.Valid)
}
