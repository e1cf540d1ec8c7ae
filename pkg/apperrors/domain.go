package apperrors

import (
	"fmt"
	"net/http"
)

// Factories and predefined errors for the media, storage and user domains.

// ErrNotFound converts a repository miss (e.g. gorm.ErrRecordNotFound)
// into a 404 AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness violation into a 409 AppError.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrDatabase wraps an unexpected database error.
func ErrDatabase(err error) *AppError {
	return Wrap(err, CodeDatabaseError, "database", "Database operation failed", http.StatusInternalServerError)
}

// --- Media ---

// ErrMediaNotFound is returned when a media id does not resolve to a row.
// Kept distinct from storage errors so bulk results can report the reason.
func ErrMediaNotFound(id string) *AppError {
	return New(CodeNotFound, "media", fmt.Sprintf("Media with ID %s not found", id), http.StatusNotFound)
}

// ErrUnsupportedMedia is returned for files the classifier rejects.
func ErrUnsupportedMedia(filename, ext string) *AppError {
	return New(CodeUnsupportedMedia, "media",
		fmt.Sprintf("File %s has unsupported extension: %s", filename, ext), http.StatusUnprocessableEntity)
}

// ErrTooManyFiles is returned when a batch exceeds the per-request limit.
func ErrTooManyFiles(limit int) *AppError {
	return New(CodeLimitExceeded, "media",
		fmt.Sprintf("Maximum %d files can be uploaded at once", limit), http.StatusBadRequest)
}

// ErrNoFiles is returned for an upload request without any files.
var ErrNoFiles = New(CodeValidationFailed, "media", "No files were uploaded", http.StatusBadRequest)

// ErrFileTooLarge is returned when a single file exceeds the size limit.
func ErrFileTooLarge(filename string, limit int64) *AppError {
	return New(CodeLimitExceeded, "media",
		fmt.Sprintf("File %s exceeds the maximum size of %d bytes", filename, limit), http.StatusBadRequest)
}

// --- Storage ---

// ErrStorage wraps a blob store failure after the whole backend chain was tried.
func ErrStorage(err error, path string) *AppError {
	return Wrap(err, CodeStorageError, "storage",
		fmt.Sprintf("Storage operation failed for %s", path), http.StatusInternalServerError)
}

// --- Users ---

// ErrUserNotFound is returned when a user id or email does not resolve.
func ErrUserNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "user", "User not found", http.StatusNotFound)
}

// ErrEmailTaken is returned on registration with a known email.
var ErrEmailTaken = New(CodeAlreadyExists, "user", "Email is already registered", http.StatusConflict)

// ErrInvalidCredentials is returned on a failed login.
var ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)

// ErrPendingApproval is returned when an unapproved user hits a gated route.
var ErrPendingApproval = New(
	CodePendingApproval,
	"auth",
	"Your account is pending approval. Please contact the administrator.",
	http.StatusUnauthorized,
)
