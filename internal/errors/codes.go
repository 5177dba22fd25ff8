package apierrors

// HTTP 400 Bad Request.
const (
	ErrInvalidBody          = "INVALID_BODY"
	ErrValidationFailed     = "VALIDATION_FAILED"
	ErrInvalidDate          = "INVALID_DATE"
	ErrInvalidURL           = "INVALID_URL"
	ErrBlankName            = "BLANK_NAME"
	ErrReorderIDMismatch    = "REORDER_ID_MISMATCH"
	ErrUsernameTaken        = "USERNAME_TAKEN"
	ErrNotAnImage           = "NOT_AN_IMAGE"
	ErrLinkingNotConfigured = "LINKING_NOT_CONFIGURED"
)

// HTTP 401 Unauthorized.
const (
	ErrInvalidCredentials = "INVALID_CREDENTIALS"
	ErrUnauthorized       = "UNAUTHORIZED"
)

// HTTP 403 Forbidden.
const (
	ErrForbidden      = "FORBIDDEN"
	ErrOwnerProtected = "OWNER_PROTECTED"
)

// HTTP 404 Not Found.
const (
	ErrNotFound = "NOT_FOUND"
)

// HTTP 429 Too Many Requests.
const (
	ErrTooManyRequests = "TOO_MANY_REQUESTS"
)

// HTTP 502 Bad Gateway.
const (
	ErrGenerationFailed = "GENERATION_FAILED"
)
