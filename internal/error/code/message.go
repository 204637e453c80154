package code

// User-facing messages, kept in Spanish to match the public API.
var codeMessageMap = map[int]string{
	ErrSuccess:         "éxito",
	ErrUnknown:         "Internal server error",
	ErrBind:            "Cuerpo de la solicitud inválido",
	ErrValidation:      "Error de validación",
	ErrTokenInvalid:    "Invalid or expired token",
	ErrTooManyRequests: "Demasiadas solicitudes, intente más tarde",
	ErrRouteNotFound:   "Ruta no encontrada - La URL solicitada no existe en este servidor",

	ErrPropertyNotFound:  "Propiedad no encontrada",
	ErrPropertyEmptyBody: "No se recibieron datos para la propiedad",
	ErrPropertyNoImages:  "Se requiere al menos una imagen de la propiedad",

	ErrCatalogNotFound:            "Registro de catálogo no encontrado",
	ErrCatalogDescriptionRequired: "La descripción es obligatoria",

	ErrLocationNotFound:       "Registro de ubicación no encontrado",
	ErrLocationNameRequired:   "El nombre es obligatorio",
	ErrLocationFilterRequired: "Se requiere el parámetro de filtro",

	ErrFeatureInvalidPayload: "Datos inválidos",
	ErrFeatureNotFound:       "Característica no encontrada",

	ErrAPIKeyInvalid: "API key inválida",
	ErrUIDRequired:   "Se requiere el UID del usuario",

	ErrMediaFileRequired: "Se requiere un archivo de imagen",
	ErrMediaUploadFailed: "Error al subir la imagen",

	ErrPostalCodeNotFound: "No se encontró dicho código postal",
	ErrPostalCodeLookup:   "Error al consultar el código postal",

	ErrDatabase:       "Error de base de datos",
	ErrRecordNotFound: "Registro no encontrado",
}

var codeStatusMap = map[int]int{
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,
	ErrRouteNotFound:   StatusNotFound,

	ErrPropertyNotFound:  StatusNotFound,
	ErrPropertyEmptyBody: StatusBadRequest,
	ErrPropertyNoImages:  StatusBadRequest,

	ErrCatalogNotFound:            StatusNotFound,
	ErrCatalogDescriptionRequired: StatusBadRequest,

	ErrLocationNotFound:       StatusNotFound,
	ErrLocationNameRequired:   StatusBadRequest,
	ErrLocationFilterRequired: StatusBadRequest,

	ErrFeatureInvalidPayload: StatusBadRequest,
	ErrFeatureNotFound:       StatusNotFound,

	ErrAPIKeyInvalid: StatusUnauthorized,
	ErrUIDRequired:   StatusBadRequest,

	ErrMediaFileRequired: StatusBadRequest,
	ErrMediaUploadFailed: StatusInternalServerError,

	ErrPostalCodeNotFound: StatusNotFound,
	ErrPostalCodeLookup:   StatusInternalServerError,

	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage returns the message associated with an error code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "Internal server error"
}

// GetStatus returns the HTTP status associated with an error code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
