package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/samandr77/microservices/callcenter/internal/entity"
)

type UsersResponse struct {
	Success bool          `json:"success"`
	Users   []entity.User `json:"users"`
}

type UserResponse struct {
	Success bool        `json:"success"`
	User    entity.User `json:"user"`
}

type CreateUserRequest struct {
	Name         string              `json:"name"`
	Email        string              `json:"email"`
	Role         entity.Role         `json:"role"`
	Permissions  []string            `json:"permissions"`
	Availability entity.Availability `json:"availability"`
	Skills       []string            `json:"skills"`
}

// @Summary List users
// @Tags users
// @Produce json
// @Param role query string false "Role"
// @Param status query string false "Account status"
// @Param availability query string false "Availability"
// @Param skill query string false "Skill"
// @Success 200 {object} UsersResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Router /api/users [get]
// @Security BearerAuth
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	users, err := h.s.Users(ctx, entity.UserFilter{
		Role:         entity.Role(q.Get("role")),
		Status:       entity.UserStatus(q.Get("status")),
		Availability: entity.Availability(q.Get("availability")),
		Skill:        q.Get("skill"),
	})
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, UsersResponse{Success: true, Users: users})
}

// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "User"
// @Success 201 {object} UserResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 409 {object} ErrorResponse "Email already taken"
// @Router /api/users [post]
// @Security BearerAuth
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateUserRequest

	err := decodeJSON(w, r, &req)
	if err != nil {
		sendBadBody(ctx, w, err)
		return
	}

	user, err := h.s.CreateUser(ctx, entity.User{
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		Permissions:  req.Permissions,
		Availability: req.Availability,
		Skills:       req.Skills,
	})
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, UserResponse{Success: true, User: user})
}

// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param request body entity.UserUpdate true "Fields to change"
// @Success 200 {object} UserResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /api/users/{id} [patch]
// @Security BearerAuth
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var upd entity.UserUpdate

	err := decodeJSON(w, r, &upd)
	if err != nil {
		sendBadBody(ctx, w, err)
		return
	}

	user, err := h.s.UpdateUser(ctx, chi.URLParam(r, "id"), upd)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, UserResponse{Success: true, User: user})
}

// @Summary Delete user
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Cannot delete self or root"
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /api/users/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.s.DeleteUser(ctx, chi.URLParam(r, "id"))
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type OrganizationsResponse struct {
	Organizations []entity.Organization `json:"organizations"`
}

// @Summary List organizations
// @Tags organizations
// @Produce json
// @Success 200 {object} OrganizationsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Router /api/organizations [get]
// @Security BearerAuth
func (h *Handler) Organizations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orgs, err := h.s.Organizations(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, OrganizationsResponse{Organizations: orgs})
}

// @Summary Current organization
// @Tags organizations
// @Produce json
// @Success 200 {object} entity.Organization
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Router /api/organizations/current [get]
// @Security BearerAuth
func (h *Handler) CurrentOrganization(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	org, err := h.s.CurrentOrganization(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, org)
}
