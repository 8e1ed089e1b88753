package identsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes shared by both services.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeValidationFailed   = "validation_failed"
	ErrorCodeRegistrationFailed = "registration_failed"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeInactiveAccount    = "inactive_account"
	ErrorCodeForbidden          = "forbidden"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeServerError        = "server_error"
)

// APIError is the JSON error shape both services return. It implements the
// error interface so it can be used on the server (to write responses) and
// by clients (to represent decoded failures).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

// ErrorResponse is the wire shape of APIError, used for unmarshaling.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// ValidationErrorResponse is returned when request validation fails.
// Details maps field names to their individual validation failures.
type ValidationErrorResponse struct {
	Code    string            `json:"error"`
	Message string            `json:"error_description"`
	Details map[string]string `json:"details,omitempty"`
}

var (
	// ErrInvalidRequest is returned for malformed request bodies.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrRegistrationFailed is the deliberately generic registration error.
	// It does not reveal which field collided with an existing account.
	ErrRegistrationFailed = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeRegistrationFailed,
		Description: "unable to register with provided information",
	}

	// ErrInvalidCredentials is the uniform login failure. Unknown email and
	// wrong password are indistinguishable to the caller.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "incorrect email or password",
	}

	// ErrInvalidToken covers missing, malformed, expired and unresolvable
	// bearer tokens.
	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "invalid or expired token",
	}

	// ErrInactiveAccount is returned for authenticated but deactivated users.
	ErrInactiveAccount = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeInactiveAccount,
		Description: "account is deactivated",
	}

	// ErrForbidden is returned when the caller lacks a required role.
	ErrForbidden = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeForbidden,
		Description: "insufficient permissions",
	}

	// ErrNotFound is returned for administrative lookups of absent users.
	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "user not found",
	}

	// ErrServerError is returned when the user directory is unavailable or
	// another internal failure occurs. Never conflated with auth failures.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)
