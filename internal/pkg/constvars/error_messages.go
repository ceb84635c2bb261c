package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":    "is required",
	"min":         "must have at least %s entry",
	"oneof":       "must be one of [%s]",
	"eq":          "must be '%s'",
	"fhir_date":   "must be in YYYY-MM-DD format",
	"head_family": "is required",
	"head_given":  "must contain at least one entry",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"oneof": true,
	"eq":    true,
}

// Error messages for clients
const (
	ErrClientResourceTypeMustBePatient = "resourceType must be 'Patient'"
	ErrClientInvalidPatientID          = "Invalid id"
	ErrClientPatientNotFound           = "Patient not found"
	ErrClientInternalServerError       = "Internal server error"
	ErrClientCannotParseJSON           = "invalid JSON body"
	ErrClientRequestBodyTooLarge       = "request body too large"
	ErrClientTooManyRequests           = "too many requests"
	ErrClientCannotProcessRequest      = "failed to process your request"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "request payload failed validation"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevRequestBodyTooLarge      = "request body exceeds the configured limit"
	ErrDevRateLimitExceeded        = "client exceeded the request rate limit"
	ErrDevDBStringNotObjectID      = "given string cannot be parsed as a mongo ObjectID"
	ErrDevDBPatientNotFound        = "no patient document matches the given id"
	ErrDevDBFailedToInsertDocument = "database failed to insert the document"
	ErrDevDBFailedToFindDocument   = "database failed to find the document"
	ErrDevServerProcess            = "unexpected failure while processing the request"
)
