package errors

import "fmt"

var (
	// Tokens and auth.
	ErrInvalidSigningMethod = fmt.Errorf("invalid token signing method")
	ErrInvalidToken         = fmt.Errorf("invalid token")
	ErrTokenExpired         = fmt.Errorf("token has expired")
	ErrTokenIsNotAccess     = fmt.Errorf("token is not an access token")
	ErrEmptyAuthHeader      = fmt.Errorf("authorization header is missing")
	ErrInvalidAuthHeader    = fmt.Errorf("invalid authorization header format")
	ErrInvalidCredentials   = fmt.Errorf("invalid credentials")

	// Common.
	ErrNotFound   = fmt.Errorf("record not found")
	ErrBadRequest = fmt.Errorf("bad request")
)

// ValidationError is returned when input breaks a domain rule. It is
// always raised before any store write is attempted.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// StoreError wraps a persistence-layer failure. The code is whatever
// the store reports; callers surface it without interpreting it.
type StoreError struct {
	Code    string
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("store error [%s]: %s", e.Code, e.Message)
	}
	return "store error: " + e.Message
}

func (e *StoreError) Unwrap() error { return e.Err }

func NewStoreError(err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Message: err.Error(), Err: err}
}

// HttpError carries the status code a controller should answer with.
type HttpError struct {
	Code    int
	Message string
	Err     error
}

func (e *HttpError) Error() string { return e.Message }

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err}
}
