package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/samandr77/microservices/callcenter/internal/entity"
	"github.com/samandr77/microservices/callcenter/internal/service"
)

// @title Call Center API
// @version 1.0
// @description Multi-tenant call center admin API with OAuth integrations and an n8n bridge
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Api-Key

type Handler struct {
	s *service.Service
}

func NewHandler(s *service.Service) *Handler {
	return &Handler{
		s: s,
	}
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// @Summary Health check
// @Description Reports that the server is up
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
// @Router /api/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now().UTC()})
}

type SignInRequest struct {
	Email string `json:"email"`
}

type SignInResponse struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

// SignIn issues a session token for a known user.
//
// @Summary Sign in
// @Description Issues a session token for a seeded user by email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignInRequest true "User email"
// @Success 200 {object} SignInResponse
// @Failure 400 {object} ErrorResponse "Invalid body or missing email"
// @Failure 401 {object} ErrorResponse "Unknown user"
// @Failure 403 {object} ErrorResponse "User is suspended"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /api/auth/session [post]
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SignInRequest

	err := decodeJSON(w, r, &req)
	if err != nil {
		sendBadBody(ctx, w, err)
		return
	}

	if req.Email == "" {
		SendJSONErr(ctx, w, http.StatusBadRequest, nil, "validation_error", "email is required")
		return
	}

	token, user, err := h.s.SignIn(ctx, req.Email)
	if err != nil {
		if errors.Is(err, entity.ErrUnauthorized) {
			SendJSONErr(ctx, w, http.StatusUnauthorized, err, "unauthorized", "unknown user")
			return
		}

		SendServiceErr(ctx, w, err)

		return
	}

	SendJSON(ctx, w, http.StatusOK, SignInResponse{Token: token, User: user})
}

// @Summary Current user
// @Description Returns the signed-in user with effective permissions and reachable apps and features
// @Tags access
// @Produce json
// @Success 200 {object} entity.AccessProfile
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /api/me [get]
// @Security BearerAuth
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profile, err := h.s.Me(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, profile)
}

// @Summary Dashboard
// @Description Returns the dashboard scoped to the caller role
// @Tags dashboard
// @Produce json
// @Success 200 {object} entity.Dashboard
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Router /api/dashboard [get]
// @Security BearerAuth
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dashboard, err := h.s.Dashboard(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, dashboard)
}

// @Summary Permissions overview
// @Description Lists app and feature toggles and the default permissions of every role
// @Tags access
// @Produce json
// @Success 200 {object} entity.PermissionsOverview
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Router /api/admin/permissions [get]
// @Security BearerAuth
func (h *Handler) PermissionsOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	overview, err := h.s.PermissionsOverview(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, overview)
}

type SetToggleRequest struct {
	Type    entity.ToggleType `json:"type"`
	ID      string            `json:"id"`
	Enabled *bool             `json:"enabled"`
}

// @Summary Set toggle
// @Description Enables or disables an app or a feature
// @Tags access
// @Accept json
// @Produce json
// @Param request body SetToggleRequest true "Toggle type, id and state"
// @Success 200 {object} entity.Toggle
// @Failure 400 {object} ErrorResponse "Invalid body"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Toggle not found"
// @Router /api/admin/permissions [post]
// @Security BearerAuth
func (h *Handler) SetToggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SetToggleRequest

	err := decodeJSON(w, r, &req)
	if err != nil {
		sendBadBody(ctx, w, err)
		return
	}

	if req.Enabled == nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, nil, "validation_error", "enabled is required")
		return
	}

	toggle, err := h.s.SetToggle(ctx, req.Type, req.ID, *req.Enabled)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, toggle)
}

type AppAccessResponse struct {
	AppID     string `json:"appId"`
	HasAccess bool   `json:"hasAccess"`
}

type FeatureAccessResponse struct {
	FeatureID string `json:"featureId"`
	HasAccess bool   `json:"hasAccess"`
}

type TogglesResponse struct {
	Apps     []entity.AppPermission     `json:"apps"`
	Features []entity.FeaturePermission `json:"features"`
}

// WorkerPermissions answers a single app or feature check, or lists what the
// caller can reach when neither is asked for.
//
// @Summary Worker permissions
// @Description With appId or featureId answers hasAccess for that record, otherwise lists reachable apps and features
// @Tags access
// @Produce json
// @Param appId query string false "App id to check"
// @Param featureId query string false "Feature id to check"
// @Success 200 {object} TogglesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /api/worker/permissions [get]
// @Security BearerAuth
func (h *Handler) WorkerPermissions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	if appID := q.Get("appId"); appID != "" {
		ok, err := h.s.AppAccess(ctx, appID)
		if err != nil {
			SendServiceErr(ctx, w, err)
			return
		}

		SendJSON(ctx, w, http.StatusOK, AppAccessResponse{AppID: appID, HasAccess: ok})

		return
	}

	if featureID := q.Get("featureId"); featureID != "" {
		ok, err := h.s.FeatureAccess(ctx, featureID)
		if err != nil {
			SendServiceErr(ctx, w, err)
			return
		}

		SendJSON(ctx, w, http.StatusOK, FeatureAccessResponse{FeatureID: featureID, HasAccess: ok})

		return
	}

	apps, features, err := h.s.AccessibleToggles(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, TogglesResponse{Apps: apps, Features: features})
}
