package errors

// Error codes for standardized error responses
const (
	// Validation errors
	ErrCodeInvalidRequest   = "invalid_request"
	ErrCodeValidationFailed = "validation_failed"
	ErrCodeMissingField     = "missing_field"

	// Resource errors
	ErrCodeNotFound     = "not_found"
	ErrCodeQuizNotFound = "quiz_not_found"

	// Business logic errors
	ErrCodeSubmitFailed       = "submit_failed"
	ErrCodeStatsFetchFailed   = "stats_fetch_failed"
	ErrCodeHistoryFetchFailed = "history_fetch_failed"
	ErrCodeCatalogFetchFailed = "catalog_fetch_failed"

	// Server errors
	ErrCodeInternalError      = "internal_error"
	ErrCodeServiceUnavailable = "service_unavailable"
	ErrCodeUpstreamError      = "upstream_error"
)
