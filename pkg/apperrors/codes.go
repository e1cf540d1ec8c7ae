package apperrors

// ErrorCode identifies a class of application error.
type ErrorCode string

const (
	// System and unknown errors
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
	CodeStorageError  ErrorCode = "STORAGE_ERROR"

	// Generic business errors
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeLimitExceeded    ErrorCode = "LIMIT_EXCEEDED"
	CodeUnsupportedMedia ErrorCode = "UNSUPPORTED_MEDIA"

	// Authentication and authorization
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodePendingApproval    ErrorCode = "PENDING_APPROVAL"
)
