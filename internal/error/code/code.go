package code

// HTTP status codes used by the error tables.
const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusInternalServerError = 500
	StatusTooManyRequests     = 429
)

// Generic error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: internal server error.
	ErrUnknown
	// ErrBind - 400: request body binding error.
	ErrBind
	// ErrValidation - 400: request validation error.
	ErrValidation
	// ErrTokenInvalid - 401: invalid bearer token.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: rate limit exceeded.
	ErrTooManyRequests
	// ErrRouteNotFound - 404: unknown route.
	ErrRouteNotFound
)

// Property error codes (101xxx).
const (
	// ErrPropertyNotFound - 404: property does not exist.
	ErrPropertyNotFound int = iota + 101000
	// ErrPropertyEmptyBody - 400: no payload received.
	ErrPropertyEmptyBody
	// ErrPropertyNoImages - 400: property requires at least one image.
	ErrPropertyNoImages
)

// Catalog error codes (102xxx).
const (
	// ErrCatalogNotFound - 404: catalog row does not exist.
	ErrCatalogNotFound int = iota + 102000
	// ErrCatalogDescriptionRequired - 400: descripcion field missing.
	ErrCatalogDescriptionRequired
)

// Location error codes (103xxx).
const (
	// ErrLocationNotFound - 404: location row does not exist.
	ErrLocationNotFound int = iota + 103000
	// ErrLocationNameRequired - 400: name (and parent id) missing.
	ErrLocationNameRequired
	// ErrLocationFilterRequired - 400: filter query parameter missing.
	ErrLocationFilterRequired
)

// Feature error codes (104xxx).
const (
	// ErrFeatureInvalidPayload - 400: property_id or features missing/malformed.
	ErrFeatureInvalidPayload int = iota + 104000
	// ErrFeatureNotFound - 404: feature row does not exist.
	ErrFeatureNotFound
)

// Auth error codes (105xxx).
const (
	// ErrAPIKeyInvalid - 401: internal API key rejected.
	ErrAPIKeyInvalid int = iota + 105000
	// ErrUIDRequired - 400: uid missing from token request.
	ErrUIDRequired
)

// Media error codes (106xxx).
const (
	// ErrMediaFileRequired - 400: multipart image file missing.
	ErrMediaFileRequired int = iota + 106000
	// ErrMediaUploadFailed - 500: upload to storage failed.
	ErrMediaUploadFailed
)

// Postal code error codes (107xxx).
const (
	// ErrPostalCodeNotFound - 404: unknown postal code.
	ErrPostalCodeNotFound int = iota + 107000
	// ErrPostalCodeLookup - 500: external lookup failed.
	ErrPostalCodeLookup
)

// Database error codes (108xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 108000
	// ErrRecordNotFound - 404: record does not exist.
	ErrRecordNotFound
)
