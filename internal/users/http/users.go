package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/verdantlabs/identity/internal/identity/domain"
	"github.com/verdantlabs/identity/internal/identity/service"
	"github.com/verdantlabs/identity/pkg/httpx"
	"github.com/verdantlabs/identity/pkg/identsdk"
)

type UsersHandler struct {
	UsersService *service.UsersService
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

func userResponses(users []domain.User) []identsdk.UserResponse {
	out := make([]identsdk.UserResponse, len(users))
	for i, u := range users {
		out[i] = userResponse(u)
	}
	return out
}

// HandleGet godoc
//
//	@Summary		Get User Endpoint
//	@Description	Return a single directory record by id
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string					true	"User ULID"
//	@Success		200	{object}	identsdk.UserResponse	"user record"
//	@Failure		401	{object}	identsdk.ErrorResponse	"missing, invalid or expired token"
//	@Failure		403	{object}	identsdk.ErrorResponse	"inactive account or missing role"
//	@Failure		404	{object}	identsdk.ErrorResponse	"user not found"
//	@Router			/v1/users/{id} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, err := h.UsersService.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeUsersError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userResponse(user))
}

// HandleList godoc
//
//	@Summary		List Users Endpoint
//	@Description	Page through the directory ordered by id
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			offset	query		int						false	"Records to skip (default 0)"
//	@Param			limit	query		int						false	"Page size (default 100, max 500)"
//	@Success		200		{array}		identsdk.UserResponse	"user records"
//	@Failure		401		{object}	identsdk.ErrorResponse	"missing, invalid or expired token"
//	@Failure		403		{object}	identsdk.ErrorResponse	"inactive account or missing role"
//	@Router			/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	users, err := h.UsersService.List(r.Context(), offset, limit)
	if err != nil {
		writeUsersError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userResponses(users))
}

// HandleCreate godoc
//
//	@Summary		Create User Endpoint
//	@Description	Administrative create. Unlike self-service registration this may set
//	@Description	roles and the active flag directly.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		service.CreateUserInput				true	"email, password, optional username/roles/is_active"
//	@Success		201		{object}	identsdk.UserResponse				"created user"
//	@Failure		400		{object}	identsdk.ErrorResponse				"unknown role or identity taken"
//	@Failure		401		{object}	identsdk.ErrorResponse				"missing, invalid or expired token"
//	@Failure		403		{object}	identsdk.ErrorResponse				"inactive account or missing role"
//	@Failure		422		{object}	identsdk.ValidationErrorResponse	"validation failed"
//	@Router			/v1/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in service.CreateUserInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		identsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.UsersService.Create(r.Context(), in)
	if err != nil {
		writeUsersError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, userResponse(user))
}

// HandlePatch godoc
//
//	@Summary		Patch User Endpoint
//	@Description	Sparse update: only supplied fields change. A supplied password is
//	@Description	rehashed; a supplied role set replaces the current one.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string								true	"User ULID"
//	@Param			request	body		service.UpdateUserInput				true	"fields to update"
//	@Success		200		{object}	identsdk.UserResponse				"updated user"
//	@Failure		400		{object}	identsdk.ErrorResponse				"unknown role or identity taken"
//	@Failure		404		{object}	identsdk.ErrorResponse				"user not found"
//	@Failure		422		{object}	identsdk.ValidationErrorResponse	"validation failed"
//	@Router			/v1/users/{id} [patch].
func (h *UsersHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	var in service.UpdateUserInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		identsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.UsersService.Patch(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeUsersError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userResponse(user))
}

// HandleReplace godoc
//
//	@Summary		Replace User Endpoint
//	@Description	Full replace: every mutable field is overwritten and omitted optional
//	@Description	fields are cleared, not kept.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string								true	"User ULID"
//	@Param			request	body		service.ReplaceUserInput			true	"full record"
//	@Success		200		{object}	identsdk.UserResponse				"replaced user"
//	@Failure		400		{object}	identsdk.ErrorResponse				"unknown role or identity taken"
//	@Failure		404		{object}	identsdk.ErrorResponse				"user not found"
//	@Failure		422		{object}	identsdk.ValidationErrorResponse	"validation failed"
//	@Router			/v1/users/{id} [put].
func (h *UsersHandler) HandleReplace(w http.ResponseWriter, r *http.Request) {
	var in service.ReplaceUserInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		identsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.UsersService.Replace(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeUsersError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userResponse(user))
}

// RolesRequest carries a full replacement role set.
type RolesRequest struct {
	Roles []string `json:"roles"`
}

// HandleSetRoles godoc
//
//	@Summary		Set Roles Endpoint
//	@Description	Replace a user's role set. An unknown tag fails the whole request and
//	@Description	leaves the stored set untouched.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string					true	"User ULID"
//	@Param			request	body		RolesRequest			true	"roles"
//	@Success		200		{object}	identsdk.UserResponse	"updated user"
//	@Failure		400		{object}	identsdk.ErrorResponse	"unknown or empty role set"
//	@Failure		404		{object}	identsdk.ErrorResponse	"user not found"
//	@Router			/v1/users/{id}/roles [put].
func (h *UsersHandler) HandleSetRoles(w http.ResponseWriter, r *http.Request) {
	var req RolesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		identsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.UsersService.SetRoles(r.Context(), r.PathValue("id"), req.Roles)
	if err != nil {
		writeUsersError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userResponse(user))
}

// ActiveRequest carries the target active flag.
type ActiveRequest struct {
	IsActive *bool `json:"is_active"`
}

// HandleSetActive godoc
//
//	@Summary		Set Active Endpoint
//	@Description	Activate or deactivate an account. Deactivation takes effect on the
//	@Description	subject's next request; outstanding tokens are not revoked.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string					true	"User ULID"
//	@Param			request	body		ActiveRequest			true	"is_active"
//	@Success		200		{object}	identsdk.UserResponse	"updated user"
//	@Failure		400		{object}	identsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	identsdk.ErrorResponse	"user not found"
//	@Router			/v1/users/{id}/active [put].
func (h *UsersHandler) HandleSetActive(w http.ResponseWriter, r *http.Request) {
	var req ActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		identsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.IsActive == nil {
		identsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.UsersService.SetActive(r.Context(), r.PathValue("id"), *req.IsActive)
	if err != nil {
		writeUsersError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userResponse(user))
}

// HandleDelete godoc
//
//	@Summary		Delete User Endpoint
//	@Description	Hard delete a directory record. Tokens naming the deleted subject stop
//	@Description	resolving immediately.
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path	string	true	"User ULID"
//	@Success		204	"deleted"
//	@Failure		401	{object}	identsdk.ErrorResponse	"missing, invalid or expired token"
//	@Failure		403	{object}	identsdk.ErrorResponse	"inactive account or missing role"
//	@Failure		404	{object}	identsdk.ErrorResponse	"user not found"
//	@Router			/v1/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.UsersService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeUsersError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
