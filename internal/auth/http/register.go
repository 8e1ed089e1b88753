package http

import (
	"encoding/json"
	"net/http"

	"github.com/verdantlabs/identity/internal/identity/domain"
	"github.com/verdantlabs/identity/internal/identity/service"
	"github.com/verdantlabs/identity/pkg/httpx"
	"github.com/verdantlabs/identity/pkg/identsdk"
)

type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Register Account Endpoint
//	@Description	Create a new account with the default USER role. The response never
//	@Description	reveals whether the email or username was already taken.
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			request	body		service.RegisterInput				true	"email, password, optional username"
//	@Success		201		{object}	identsdk.UserResponse				"created user"
//	@Failure		400		{object}	identsdk.ErrorResponse				"identity taken"
//	@Failure		422		{object}	identsdk.ValidationErrorResponse	"validation failed"
//	@Failure		500		{object}	identsdk.ErrorResponse				"error, error_description"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var in service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		identsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.AuthService.Register(r.Context(), in)
	if err != nil {
		writeAuthError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, userResponse(user))
}

func userResponse(u domain.User) identsdk.UserResponse {
	return identsdk.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsActive: u.IsActive,
		Roles:    domain.RoleStrings(u.Roles),
	}
}
