package services

import (
	"fmt"
	"strconv"
	"strings"
)

// Field kinds accepted by the property schema.
const (
	fieldString  = "string"
	fieldNumber  = "number"
	fieldBoolean = "boolean"
)

// propertyFieldTypes is the whitelist of accepted property fields and the
// primitive type each one must coerce to. Anything outside this set is
// discarded.
var propertyFieldTypes = []struct {
	Name string
	Kind string
}{
	{"client", fieldString},
	{"property_code", fieldString},
	{"property_type_id", fieldNumber},
	{"sale_type_id", fieldNumber},
	{"legal_status_id", fieldNumber},
	{"sale_value", fieldNumber},
	{"commercial_value", fieldNumber},
	{"street", fieldString},
	{"exterior_number", fieldString},
	{"interior_number", fieldString},
	{"postal_code", fieldString},
	{"extra_address", fieldString},
	{"observation_id", fieldNumber},
	{"land_size", fieldNumber},
	{"construction_size", fieldNumber},
	{"bedrooms", fieldNumber},
	{"bathrooms", fieldNumber},
	{"parking_spaces", fieldNumber},
	{"has_garden", fieldBoolean},
	{"has_study", fieldBoolean},
	{"has_service_room", fieldBoolean},
	{"is_condominium", fieldBoolean},
	{"additional_info", fieldString},
	{"title", fieldString},
	{"description", fieldString},
	{"main_image", fieldString},
	{"state_id", fieldNumber},
	{"municipality_id", fieldNumber},
	{"colony_id", fieldNumber},
}

// propertyRequiredFields are the fields that must end up non-null after
// coercion.
var propertyRequiredFields = map[string]bool{
	"client":            true,
	"property_code":     true,
	"property_type_id":  true,
	"sale_type_id":      true,
	"legal_status_id":   true,
	"sale_value":        true,
	"commercial_value":  true,
	"street":            true,
	"exterior_number":   true,
	"postal_code":       true,
	"land_size":         true,
	"construction_size": true,
	"bedrooms":          true,
	"bathrooms":         true,
	"parking_spaces":    true,
	"title":             true,
	"description":       true,
	"main_image":        true,
	"state_id":          true,
	"municipality_id":   true,
	"colony_id":         true,
}

// ValidationError enumerates every problem found in a property payload.
type ValidationError struct {
	MissingFields []string
	InvalidFields []string
}

// Error joins every missing and invalid field into one message, Spanish to
// match the public API.
func (e *ValidationError) Error() string {
	var parts []string
	if len(e.MissingFields) > 0 {
		parts = append(parts, "Campos requeridos faltantes: "+strings.Join(e.MissingFields, ", "))
	}
	if len(e.InvalidFields) > 0 {
		var invalid []string
		for _, f := range e.InvalidFields {
			invalid = append(invalid, fmt.Sprintf("%s debe ser un número válido", f))
		}
		parts = append(parts, strings.Join(invalid, ", "))
	}
	return strings.Join(parts, ". ")
}

// ValidatePropertyData whitelists, coerces and required-checks an incoming
// property payload. It evaluates the whole field set before failing, so a
// single error reports every missing and invalid field at once. On success
// it returns the canonical field map keyed by column name, including the
// defaulted optional fields.
func ValidatePropertyData(input map[string]interface{}) (map[string]interface{}, error) {
	// Default overlay for optional fields before coercion.
	data := map[string]interface{}{
		"interior_number":  nil,
		"extra_address":    nil,
		"observation_id":   nil,
		"additional_info":  nil,
		"has_garden":       false,
		"has_study":        false,
		"has_service_room": false,
		"is_condominium":   false,
	}
	for k, v := range input {
		data[k] = v
	}

	cleaned := make(map[string]interface{}, len(propertyFieldTypes))
	var missing []string
	var invalid []string

	for _, field := range propertyFieldTypes {
		raw, present := data[field.Name]
		value, parseOK := cleanValue(raw, field.Kind)
		cleaned[field.Name] = value

		if field.Kind == fieldNumber && present && raw != nil && !parseOK {
			invalid = append(invalid, field.Name)
		}
		if propertyRequiredFields[field.Name] && value == nil {
			missing = append(missing, field.Name)
		}
	}

	if len(missing) > 0 || len(invalid) > 0 {
		return nil, &ValidationError{MissingFields: missing, InvalidFields: invalid}
	}

	return cleaned, nil
}

// cleanValue coerces a raw value to the expected primitive type. The second
// return reports whether a numeric parse succeeded; it is true for every
// non-number kind.
func cleanValue(value interface{}, kind string) (interface{}, bool) {
	if value == nil {
		return nil, true
	}

	switch kind {
	case fieldNumber:
		switch v := value.(type) {
		case float64:
			return v, true
		case float32:
			return float64(v), true
		case int:
			return float64(v), true
		case int64:
			return float64(v), true
		case uint:
			return float64(v), true
		case string:
			trimmed := strings.TrimSpace(v)
			if trimmed == "" {
				return nil, true
			}
			num, err := strconv.ParseFloat(trimmed, 64)
			if err != nil {
				return nil, false
			}
			return num, true
		default:
			return nil, false
		}
	case fieldBoolean:
		switch v := value.(type) {
		case bool:
			return v, true
		case string:
			return v != "" && v != "false" && v != "0", true
		case float64:
			return v != 0, true
		case int:
			return v != 0, true
		default:
			return false, true
		}
	case fieldString:
		switch v := value.(type) {
		case string:
			trimmed := strings.TrimSpace(v)
			if trimmed == "" {
				return nil, true
			}
			return trimmed, true
		default:
			// Scalars sent for a string field keep their string form.
			return fmt.Sprintf("%v", v), true
		}
	default:
		return value, true
	}
}
