package http

import (
	"net/http"

	"github.com/verdantlabs/identity/pkg/httpx"
	"github.com/verdantlabs/identity/pkg/identsdk"
)

type MeHandler struct{}

// ServeHTTP godoc
//
//	@Summary		Current User Endpoint
//	@Description	Return the directory record of the authenticated principal.
//	@Description	Any active account may call this; no role is required.
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	identsdk.UserResponse	"principal record"
//	@Failure		401	{object}	identsdk.ErrorResponse	"missing, invalid or expired token"
//	@Failure		403	{object}	identsdk.ErrorResponse	"inactive account"
//	@Router			/v1/users/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		identsdk.ErrInvalidToken.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userResponse(principal))
}
