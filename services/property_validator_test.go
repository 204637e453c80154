package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validPropertyInput returns a payload that passes validation untouched
func validPropertyInput() map[string]interface{} {
	return map[string]interface{}{
		"client":            "Inmobiliaria del Centro",
		"property_code":     "PROP-001",
		"property_type_id":  float64(1),
		"sale_type_id":      float64(1),
		"legal_status_id":   float64(1),
		"sale_value":        float64(1250000),
		"commercial_value":  float64(1400000),
		"street":            "Av. Reforma",
		"exterior_number":   "123",
		"postal_code":       "06600",
		"land_size":         float64(220.5),
		"construction_size": float64(180),
		"bedrooms":          float64(3),
		"bathrooms":         float64(2),
		"parking_spaces":    float64(2),
		"title":             "Casa en venta",
		"description":       "Casa amplia con jardín",
		"main_image":        "https://cdn.example.com/img/main.jpg",
		"state_id":          float64(1),
		"municipality_id":   float64(1),
		"colony_id":         float64(1),
	}
}

func TestValidatePropertyData(t *testing.T) {
	t.Run("Valid Payload", func(t *testing.T) {
		cleaned, err := ValidatePropertyData(validPropertyInput())
		require.NoError(t, err)

		assert.Equal(t, "Inmobiliaria del Centro", cleaned["client"])
		assert.Equal(t, float64(1250000), cleaned["sale_value"])
		// optional fields default rather than go missing
		assert.Nil(t, cleaned["interior_number"])
		assert.Nil(t, cleaned["observation_id"])
		assert.Equal(t, false, cleaned["has_garden"])
		assert.Equal(t, false, cleaned["is_condominium"])
	})

	t.Run("Missing Fields Are All Listed", func(t *testing.T) {
		input := validPropertyInput()
		delete(input, "client")
		delete(input, "sale_value")
		delete(input, "main_image")

		_, err := ValidatePropertyData(input)
		require.Error(t, err)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.ElementsMatch(t, []string{"client", "sale_value", "main_image"}, validationErr.MissingFields)
		assert.Contains(t, err.Error(), "Campos requeridos faltantes:")
		assert.Contains(t, err.Error(), "client")
		assert.Contains(t, err.Error(), "sale_value")
		assert.Contains(t, err.Error(), "main_image")
	})

	t.Run("Non Numeric Value Is Reported Invalid", func(t *testing.T) {
		input := validPropertyInput()
		input["bedrooms"] = "tres"

		_, err := ValidatePropertyData(input)
		require.Error(t, err)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.InvalidFields, "bedrooms")
		assert.Contains(t, err.Error(), "bedrooms debe ser un número válido")
	})

	t.Run("Missing And Invalid Reported Together", func(t *testing.T) {
		input := validPropertyInput()
		delete(input, "title")
		input["bathrooms"] = "dos"

		_, err := ValidatePropertyData(input)
		require.Error(t, err)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.MissingFields, "title")
		assert.Contains(t, validationErr.InvalidFields, "bathrooms")
	})

	t.Run("Numeric Strings Are Coerced", func(t *testing.T) {
		input := validPropertyInput()
		input["bedrooms"] = "4"
		input["sale_value"] = " 999000.50 "

		cleaned, err := ValidatePropertyData(input)
		require.NoError(t, err)
		assert.Equal(t, float64(4), cleaned["bedrooms"])
		assert.Equal(t, 999000.50, cleaned["sale_value"])
	})

	t.Run("Strings Are Trimmed And Empty Becomes Missing", func(t *testing.T) {
		input := validPropertyInput()
		input["client"] = "  ACME Bienes Raíces  "
		input["description"] = "   "

		_, err := ValidatePropertyData(input)
		require.Error(t, err)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.MissingFields, "description")

		input["description"] = "Descripción válida"
		cleaned, err := ValidatePropertyData(input)
		require.NoError(t, err)
		assert.Equal(t, "ACME Bienes Raíces", cleaned["client"])
	})

	t.Run("Boolean Coercion", func(t *testing.T) {
		input := validPropertyInput()
		input["has_garden"] = "true"
		input["has_study"] = float64(1)
		input["is_condominium"] = "0"

		cleaned, err := ValidatePropertyData(input)
		require.NoError(t, err)
		assert.Equal(t, true, cleaned["has_garden"])
		assert.Equal(t, true, cleaned["has_study"])
		assert.Equal(t, false, cleaned["is_condominium"])
	})

	t.Run("Unknown Fields Are Discarded", func(t *testing.T) {
		input := validPropertyInput()
		input["features"] = []string{"alberca"}
		input["unexpected"] = "value"

		cleaned, err := ValidatePropertyData(input)
		require.NoError(t, err)
		_, hasFeatures := cleaned["features"]
		_, hasUnexpected := cleaned["unexpected"]
		assert.False(t, hasFeatures)
		assert.False(t, hasUnexpected)
	})
}
