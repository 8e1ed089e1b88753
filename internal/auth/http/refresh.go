package http

import (
	"encoding/json"
	"net/http"

	"github.com/verdantlabs/identity/internal/identity/service"
	"github.com/verdantlabs/identity/pkg/httpx"
	"github.com/verdantlabs/identity/pkg/identsdk"
)

type RefreshHandler struct {
	AuthService *service.AuthService
}

// RefreshRequest carries the refresh token to exchange.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// ServeHTTP godoc
//
//	@Summary		Refresh Token Endpoint
//	@Description	Exchange a valid refresh token for a fresh access token. Access tokens
//	@Description	are rejected here; only tokens minted for refresh use are accepted.
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RefreshRequest			true	"refresh_token"
//	@Success		200		{object}	identsdk.TokenResponse	"access_token, token_type, expires_in"
//	@Failure		401		{object}	identsdk.ErrorResponse	"invalid, expired or wrong-use token"
//	@Failure		403		{object}	identsdk.ErrorResponse	"inactive account"
//	@Failure		500		{object}	identsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/refresh [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		identsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.RefreshToken == "" {
		identsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	pair, err := h.AuthService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeAuthError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, tokenResponse(pair))
}
