package http

import (
	"encoding/json"
	"net/http"

	"github.com/verdantlabs/identity/internal/identity/domain"
	"github.com/verdantlabs/identity/internal/identity/service"
	"github.com/verdantlabs/identity/pkg/httpx"
	"github.com/verdantlabs/identity/pkg/identsdk"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// LoginRequest is the password login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Verify an email/password pair and return an access/refresh token pair.
//	@Description	Unknown email and wrong password produce the same response.
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest			true	"email, password"
//	@Success		200		{object}	identsdk.TokenResponse	"access_token, refresh_token, token_type, expires_in"
//	@Failure		401		{object}	identsdk.ErrorResponse	"invalid credentials"
//	@Failure		403		{object}	identsdk.ErrorResponse	"inactive account"
//	@Failure		500		{object}	identsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		identsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.Email == "" || req.Password == "" {
		identsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	pair, err := h.AuthService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeAuthError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, tokenResponse(pair))
}

func tokenResponse(pair domain.TokenPair) identsdk.TokenResponse {
	return identsdk.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
		ExpiresIn:    int(pair.ExpiresIn.Seconds()),
	}
}
