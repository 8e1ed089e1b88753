package http

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/verdantlabs/identity/internal/identity/domain"
	"github.com/verdantlabs/identity/internal/identity/service"
	"github.com/verdantlabs/identity/pkg/httpx"
	"github.com/verdantlabs/identity/pkg/identsdk"
	"github.com/verdantlabs/identity/pkg/slogx"
)

// writeValidationError renders ozzo validation failures as a field map.
// Returns false when err is not a validation error.
func writeValidationError(w http.ResponseWriter, err error) bool {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return false
	}

	details := make(map[string]string, len(verrs))
	for field, ferr := range verrs {
		details[field] = ferr.Error()
	}

	httpx.WriteJSON(w, http.StatusUnprocessableEntity, identsdk.ValidationErrorResponse{
		Code:    identsdk.ErrorCodeValidationFailed,
		Message: "request validation failed",
		Details: details,
	})
	return true
}

// writeUsersError maps directory and guard failures onto wire errors.
// Unrecognized errors are infrastructure failures: logged and reported
// as a 500, never downgraded to an authentication failure.
func writeUsersError(w http.ResponseWriter, r *http.Request, err error) {
	if writeValidationError(w, err) {
		return
	}

	switch {
	case errors.Is(err, domain.ErrUnknownRole):
		identsdk.ErrInvalidRequest.WriteError(w)
	case errors.Is(err, service.ErrDuplicateIdentity):
		identsdk.ErrRegistrationFailed.WriteError(w)
	case errors.Is(err, service.ErrUnauthenticated):
		identsdk.ErrInvalidToken.WriteError(w)
	case errors.Is(err, service.ErrInactiveAccount):
		identsdk.ErrInactiveAccount.WriteError(w)
	case errors.Is(err, service.ErrForbidden):
		identsdk.ErrForbidden.WriteError(w)
	case errors.Is(err, service.ErrNotFound):
		identsdk.ErrNotFound.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("users request failed", "err", err)
		identsdk.ErrServerError.WriteError(w)
	}
}
