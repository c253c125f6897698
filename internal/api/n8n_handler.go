package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/samandr77/microservices/callcenter/internal/entity"
)

type BridgeHealthResponse struct {
	Success   bool      `json:"success"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// @Summary Bridge health
// @Tags n8n
// @Produce json
// @Success 200 {object} BridgeHealthResponse
// @Failure 401 {object} ErrorResponse "Invalid API key"
// @Failure 429 {object} ErrorResponse "Rate limited"
// @Router /api/n8n/health [get]
// @Security ApiKeyAuth
func (h *Handler) BridgeHealth(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, BridgeHealthResponse{
		Success:   true,
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	})
}

type AgentsResponse struct {
	Success bool           `json:"success"`
	Agents  []entity.Agent `json:"agents"`
}

// Agents reads status as availability first and as account status otherwise.
//
// @Summary List agents
// @Description status matches availability or account status
// @Tags n8n
// @Produce json
// @Param status query string false "Availability or account status"
// @Param skill query string false "Skill"
// @Success 200 {object} AgentsResponse
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 401 {object} ErrorResponse "Invalid API key"
// @Failure 429 {object} ErrorResponse "Rate limited"
// @Router /api/n8n/agents [get]
// @Security ApiKeyAuth
func (h *Handler) Agents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := entity.UserFilter{Skill: q.Get("skill")}

	if status := q.Get("status"); status != "" {
		if entity.UserStatus(status).IsValid() {
			filter.Status = entity.UserStatus(status)
		} else {
			filter.Availability = entity.Availability(status)
		}
	}

	agents, err := h.s.Agents(ctx, filter)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, AgentsResponse{Success: true, Agents: agents})
}

type RoutingResponse struct {
	Success bool               `json:"success"`
	Routing entity.CallRouting `json:"routing"`
}

// @Summary Call received webhook
// @Description Returns the routing decision for an incoming call; nothing is stored
// @Tags n8n
// @Accept json
// @Produce json
// @Param request body entity.IncomingCall true "Incoming call"
// @Success 200 {object} RoutingResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Invalid API key"
// @Failure 429 {object} ErrorResponse "Rate limited"
// @Router /webhook/n8n/call-received [post]
// @Security ApiKeyAuth
func (h *Handler) CallReceived(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in entity.IncomingCall

	err := decodeJSON(w, r, &in)
	if err != nil {
		sendBadBody(ctx, w, err)
		return
	}

	slog.InfoContext(ctx, "call-received webhook", "call_id", in.CallID, "phone", in.PhoneNumber)

	routing, err := h.s.RouteCall(ctx, in)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, RoutingResponse{Success: true, Routing: routing})
}

type AssignmentResponse struct {
	Success    bool                    `json:"success"`
	Assignment entity.TicketAssignment `json:"assignment"`
}

// @Summary Ticket created webhook
// @Description Returns the assignee, SLA hours and escalation flag; nothing is stored
// @Tags n8n
// @Accept json
// @Produce json
// @Param request body entity.TicketNotice true "New ticket"
// @Success 200 {object} AssignmentResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Invalid API key"
// @Failure 429 {object} ErrorResponse "Rate limited"
// @Router /webhook/n8n/ticket-created [post]
// @Security ApiKeyAuth
func (h *Handler) TicketCreated(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in entity.TicketNotice

	err := decodeJSON(w, r, &in)
	if err != nil {
		sendBadBody(ctx, w, err)
		return
	}

	slog.InfoContext(ctx, "ticket-created webhook", "ticket_id", in.TicketID, "priority", in.Priority)

	assignment, err := h.s.AssignTicket(ctx, in)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, AssignmentResponse{Success: true, Assignment: assignment})
}
