package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/samandr77/microservices/callcenter/internal/entity"
	"github.com/samandr77/microservices/callcenter/internal/service"
)

// @Summary Start OAuth authorization
// @Description Redirects to the provider consent page with a signed single-use state
// @Tags integrations
// @Produce json
// @Param provider path string true "Provider name"
// @Success 302 {string} string "Redirect to the provider"
// @Failure 404 {object} ErrorResponse "Unknown provider"
// @Failure 500 {object} ErrorResponse "Provider is not configured"
// @Router /api/auth/{provider}/authorize [get]
// @Security BearerAuth
func (h *Handler) Authorize(w http.ResponseWriter, r *http.Request) {
	h.authorize(w, r, service.FlowAPI)
}

// @Summary OAuth callback
// @Description Exchanges the code and redirects to the integrations page with success or error
// @Tags integrations
// @Produce json
// @Param provider path string true "Provider name"
// @Param code query string false "Authorization code"
// @Param state query string false "State issued on authorize"
// @Param error query string false "Provider error"
// @Param error_description query string false "Provider error description"
// @Success 302 {string} string "Redirect to the integrations page"
// @Failure 404 {object} ErrorResponse "Unknown provider"
// @Router /api/auth/{provider}/callback [get]
func (h *Handler) Callback(w http.ResponseWriter, r *http.Request) {
	h.callback(w, r, service.FlowAPI)
}

// @Summary Start OAuth authorization (legacy path)
// @Tags integrations
// @Produce json
// @Param provider path string true "Provider name"
// @Success 302 {string} string "Redirect to the provider"
// @Failure 404 {object} ErrorResponse "Unknown provider"
// @Failure 500 {object} ErrorResponse "Provider is not configured"
// @Router /auth/{provider} [get]
// @Security BearerAuth
func (h *Handler) LegacyAuthorize(w http.ResponseWriter, r *http.Request) {
	h.authorize(w, r, service.FlowLegacy)
}

// @Summary OAuth callback (legacy path)
// @Tags integrations
// @Produce json
// @Param provider path string true "Provider name"
// @Param code query string false "Authorization code"
// @Param state query string false "State issued on authorize"
// @Param error query string false "Provider error"
// @Param error_description query string false "Provider error description"
// @Success 302 {string} string "Redirect to the integrations page"
// @Failure 404 {object} ErrorResponse "Unknown provider"
// @Router /auth/{provider}/callback [get]
func (h *Handler) LegacyCallback(w http.ResponseWriter, r *http.Request) {
	h.callback(w, r, service.FlowLegacy)
}

func (h *Handler) authorize(w http.ResponseWriter, r *http.Request, flow service.Flow) {
	ctx := r.Context()

	location, err := h.s.BeginAuthorization(ctx, chi.URLParam(r, "provider"), flow)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	http.Redirect(w, r, location, http.StatusFound)
}

// callback always redirects to the status page; only unknown providers get JSON.
func (h *Handler) callback(w http.ResponseWriter, r *http.Request, flow service.Flow) {
	ctx := r.Context()
	q := r.URL.Query()

	location, err := h.s.CompleteAuthorization(ctx, chi.URLParam(r, "provider"), flow, service.CallbackParams{
		Code:             q.Get("code"),
		State:            q.Get("state"),
		Error:            q.Get("error"),
		ErrorDescription: q.Get("error_description"),
	})
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	http.Redirect(w, r, location, http.StatusFound)
}

type IntegrationsResponse struct {
	Integrations []entity.IntegrationSummary `json:"integrations"`
}

// @Summary List integrations
// @Tags integrations
// @Produce json
// @Success 200 {object} IntegrationsResponse
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /api/integrations [get]
// @Security BearerAuth
func (h *Handler) Integrations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list, err := h.s.Integrations(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, IntegrationsResponse{Integrations: list})
}

// @Summary Integration status
// @Tags integrations
// @Produce json
// @Param provider path string true "Provider name"
// @Success 200 {object} entity.IntegrationStatus
// @Failure 404 {object} ErrorResponse "Unknown provider"
// @Router /api/integrations/{provider}/status [get]
// @Security BearerAuth
func (h *Handler) IntegrationStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status, err := h.s.IntegrationStatus(ctx, chi.URLParam(r, "provider"))
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, status)
}

// @Summary Disconnect integration
// @Tags integrations
// @Produce json
// @Param provider path string true "Provider name"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Not connected"
// @Router /api/integrations/{provider} [delete]
// @Security BearerAuth
func (h *Handler) Disconnect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.s.Disconnect(ctx, chi.URLParam(r, "provider"))
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
