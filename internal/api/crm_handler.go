package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/samandr77/microservices/callcenter/internal/entity"
)

type CustomersResponse struct {
	Success    bool              `json:"success"`
	Customers  []entity.Customer `json:"customers"`
	Pagination entity.Pagination `json:"pagination"`
}

type CustomerResponse struct {
	Success  bool            `json:"success"`
	Customer entity.Customer `json:"customer"`
}

type CreateCustomerRequest struct {
	Name          string                `json:"name"`
	AccountNumber string                `json:"accountNumber"`
	Email         string                `json:"email"`
	Phone         string                `json:"phone"`
	Company       string                `json:"company"`
	Tier          entity.CustomerTier   `json:"tier"`
	Status        entity.CustomerStatus `json:"status"`
}

// @Summary List customers
// @Tags customers
// @Produce json
// @Param search query string false "Matches name, email, account number, company or phone"
// @Param tier query string false "Customer tier"
// @Param status query string false "Customer status"
// @Param phone query string false "Exact phone number"
// @Param page query int false "Page number, 1 by default"
// @Param limit query int false "Page size, 20 by default, at most 100"
// @Success 200 {object} CustomersResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Router /api/customers [get]
// @Router /api/n8n/customers [get]
// @Security BearerAuth
// @Security ApiKeyAuth
func (h *Handler) Customers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	customers, pagination, err := h.s.Customers(ctx, entity.CustomerFilter{
		Search: q.Get("search"),
		Tier:   entity.CustomerTier(q.Get("tier")),
		Status: entity.CustomerStatus(q.Get("status")),
		Phone:  q.Get("phone"),
		Page:   parsePage(q),
	})
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, CustomersResponse{Success: true, Customers: customers, Pagination: pagination})
}

// @Summary Get customer
// @Tags customers
// @Produce json
// @Param id path string true "Customer id"
// @Success 200 {object} CustomerResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Router /api/customers/{id} [get]
// @Router /api/n8n/customers/{id} [get]
// @Security BearerAuth
// @Security ApiKeyAuth
func (h *Handler) Customer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customer, err := h.s.Customer(ctx, chi.URLParam(r, "id"))
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, CustomerResponse{Success: true, Customer: customer})
}

// @Summary Create customer
// @Description Tier defaults to bronze and status to active
// @Tags customers
// @Accept json
// @Produce json
// @Param request body CreateCustomerRequest true "Customer"
// @Success 201 {object} CustomerResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Router /api/customers [post]
// @Router /api/n8n/customers [post]
// @Security BearerAuth
// @Security ApiKeyAuth
func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateCustomerRequest

	err := decodeJSON(w, r, &req)
	if err != nil {
		sendBadBody(ctx, w, err)
		return
	}

	customer, err := h.s.CreateCustomer(ctx, entity.Customer{
		Name:          req.Name,
		AccountNumber: req.AccountNumber,
		Email:         req.Email,
		Phone:         req.Phone,
		Company:       req.Company,
		Tier:          req.Tier,
		Status:        req.Status,
	})
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, CustomerResponse{Success: true, Customer: customer})
}

// @Summary Update customer
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer id"
// @Param request body entity.CustomerUpdate true "Fields to change"
// @Success 200 {object} CustomerResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Router /api/customers/{id} [patch]
// @Security BearerAuth
func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var upd entity.CustomerUpdate

	err := decodeJSON(w, r, &upd)
	if err != nil {
		sendBadBody(ctx, w, err)
		return
	}

	customer, err := h.s.UpdateCustomer(ctx, chi.URLParam(r, "id"), upd)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, CustomerResponse{Success: true, Customer: customer})
}

// @Summary Delete customer
// @Tags customers
// @Produce json
// @Param id path string true "Customer id"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Router /api/customers/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.s.DeleteCustomer(ctx, chi.URLParam(r, "id"))
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type TicketsResponse struct {
	Success    bool              `json:"success"`
	Tickets    []entity.Ticket   `json:"tickets"`
	Pagination entity.Pagination `json:"pagination"`
}

type TicketResponse struct {
	Success bool          `json:"success"`
	Ticket  entity.Ticket `json:"ticket"`
}

type CreateTicketRequest struct {
	CustomerID  string                `json:"customerId"`
	Subject     string                `json:"subject"`
	Description string                `json:"description"`
	Status      entity.TicketStatus   `json:"status"`
	Priority    entity.TicketPriority `json:"priority"`
	AssignedTo  string                `json:"assignedTo"`
}

// @Summary List tickets
// @Description Users without tickets.assign only see tickets assigned to them
// @Tags tickets
// @Produce json
// @Param status query string false "Ticket status"
// @Param priority query string false "Ticket priority"
// @Param assignedTo query string false "Assignee user id"
// @Param customerId query string false "Customer id"
// @Param page query int false "Page number, 1 by default"
// @Param limit query int false "Page size, 20 by default, at most 100"
// @Success 200 {object} TicketsResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Router /api/tickets [get]
// @Router /api/n8n/tickets [get]
// @Security BearerAuth
// @Security ApiKeyAuth
func (h *Handler) Tickets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	tickets, pagination, err := h.s.Tickets(ctx, entity.TicketFilter{
		Status:     entity.TicketStatus(q.Get("status")),
		Priority:   entity.TicketPriority(q.Get("priority")),
		AssignedTo: q.Get("assignedTo"),
		CustomerID: q.Get("customerId"),
		Page:       parsePage(q),
	})
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, TicketsResponse{Success: true, Tickets: tickets, Pagination: pagination})
}

// @Summary Get ticket
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket id"
// @Success 200 {object} TicketResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Ticket not found"
// @Router /api/tickets/{id} [get]
// @Security BearerAuth
func (h *Handler) Ticket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ticket, err := h.s.Ticket(ctx, chi.URLParam(r, "id"))
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, TicketResponse{Success: true, Ticket: ticket})
}

// @Summary Create ticket
// @Description Status defaults to open and priority to medium
// @Tags tickets
// @Accept json
// @Produce json
// @Param request body CreateTicketRequest true "Ticket"
// @Success 201 {object} TicketResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Router /api/tickets [post]
// @Router /api/n8n/tickets [post]
// @Security BearerAuth
// @Security ApiKeyAuth
func (h *Handler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateTicketRequest

	err := decodeJSON(w, r, &req)
	if err != nil {
		sendBadBody(ctx, w, err)
		return
	}

	ticket, err := h.s.CreateTicket(ctx, entity.Ticket{
		CustomerID:  req.CustomerID,
		Subject:     req.Subject,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, TicketResponse{Success: true, Ticket: ticket})
}

// @Summary Update ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket id"
// @Param request body entity.TicketUpdate true "Fields to change"
// @Success 200 {object} TicketResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Ticket not found"
// @Router /api/tickets/{id} [patch]
// @Router /api/n8n/tickets/{id} [patch]
// @Security BearerAuth
// @Security ApiKeyAuth
func (h *Handler) UpdateTicket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var upd entity.TicketUpdate

	err := decodeJSON(w, r, &upd)
	if err != nil {
		sendBadBody(ctx, w, err)
		return
	}

	ticket, err := h.s.UpdateTicket(ctx, chi.URLParam(r, "id"), upd)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, TicketResponse{Success: true, Ticket: ticket})
}

// @Summary Delete ticket
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket id"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Ticket not found"
// @Router /api/tickets/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteTicket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.s.DeleteTicket(ctx, chi.URLParam(r, "id"))
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type OrdersResponse struct {
	Success    bool              `json:"success"`
	Orders     []entity.Order    `json:"orders"`
	Pagination entity.Pagination `json:"pagination"`
}

type OrderResponse struct {
	Success bool         `json:"success"`
	Order   entity.Order `json:"order"`
}

type CreateOrderRequest struct {
	CustomerID string             `json:"customerId"`
	Items      []entity.OrderItem `json:"items"`
}

// @Summary List orders
// @Tags orders
// @Produce json
// @Param customerId query string false "Customer id"
// @Param status query string false "Order status"
// @Param page query int false "Page number, 1 by default"
// @Param limit query int false "Page size, 20 by default, at most 100"
// @Success 200 {object} OrdersResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Router /api/orders [get]
// @Security BearerAuth
func (h *Handler) Orders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	orders, pagination, err := h.s.Orders(ctx, entity.OrderFilter{
		CustomerID: q.Get("customerId"),
		Status:     entity.OrderStatus(q.Get("status")),
		Page:       parsePage(q),
	})
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, OrdersResponse{Success: true, Orders: orders, Pagination: pagination})
}

// @Summary Get order
// @Tags orders
// @Produce json
// @Param id path string true "Order id"
// @Success 200 {object} OrderResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Router /api/orders/{id} [get]
// @Security BearerAuth
func (h *Handler) Order(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	order, err := h.s.Order(ctx, chi.URLParam(r, "id"))
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, OrderResponse{Success: true, Order: order})
}

// @Summary Create order
// @Description The total is the sum of quantity times unit price
// @Tags orders
// @Accept json
// @Produce json
// @Param request body CreateOrderRequest true "Customer and items"
// @Success 201 {object} OrderResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Router /api/orders [post]
// @Security BearerAuth
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest

	err := decodeJSON(w, r, &req)
	if err != nil {
		sendBadBody(ctx, w, err)
		return
	}

	order, err := h.s.CreateOrder(ctx, req.CustomerID, req.Items)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, OrderResponse{Success: true, Order: order})
}

// @Summary Update order status
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order id"
// @Param request body entity.OrderUpdate true "New status"
// @Success 200 {object} OrderResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Router /api/orders/{id} [patch]
// @Security BearerAuth
func (h *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var upd entity.OrderUpdate

	err := decodeJSON(w, r, &upd)
	if err != nil {
		sendBadBody(ctx, w, err)
		return
	}

	order, err := h.s.UpdateOrder(ctx, chi.URLParam(r, "id"), upd)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, OrderResponse{Success: true, Order: order})
}

// @Summary Delete order
// @Tags orders
// @Produce json
// @Param id path string true "Order id"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Router /api/orders/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.s.DeleteOrder(ctx, chi.URLParam(r, "id"))
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type CallsResponse struct {
	Success    bool              `json:"success"`
	Calls      []entity.Call     `json:"calls"`
	Pagination entity.Pagination `json:"pagination"`
}

type CallResponse struct {
	Success bool        `json:"success"`
	Call    entity.Call `json:"call"`
}

type CreateCallRequest struct {
	CustomerID      string               `json:"customerId"`
	AgentID         string               `json:"agentId"`
	PhoneNumber     string               `json:"phoneNumber"`
	Direction       entity.CallDirection `json:"direction"`
	Status          entity.CallStatus    `json:"status"`
	DurationSeconds int                  `json:"durationSeconds"`
	Notes           string               `json:"notes"`
}

// @Summary List calls
// @Tags calls
// @Produce json
// @Param agentId query string false "Agent user id"
// @Param customerId query string false "Customer id"
// @Param status query string false "Call status"
// @Param page query int false "Page number, 1 by default"
// @Param limit query int false "Page size, 20 by default, at most 100"
// @Success 200 {object} CallsResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Router /api/calls [get]
// @Router /api/n8n/calls [get]
// @Security BearerAuth
// @Security ApiKeyAuth
func (h *Handler) Calls(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	calls, pagination, err := h.s.Calls(ctx, entity.CallFilter{
		AgentID:    q.Get("agentId"),
		CustomerID: q.Get("customerId"),
		Status:     entity.CallStatus(q.Get("status")),
		Page:       parsePage(q),
	})
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, CallsResponse{Success: true, Calls: calls, Pagination: pagination})
}

// @Summary Log call
// @Description The customer is matched by phone number when customerId is empty
// @Tags calls
// @Accept json
// @Produce json
// @Param request body CreateCallRequest true "Call"
// @Success 201 {object} CallResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Router /api/calls [post]
// @Router /api/n8n/calls [post]
// @Security BearerAuth
// @Security ApiKeyAuth
func (h *Handler) CreateCall(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateCallRequest

	err := decodeJSON(w, r, &req)
	if err != nil {
		sendBadBody(ctx, w, err)
		return
	}

	call, err := h.s.CreateCall(ctx, entity.Call{
		CustomerID:      req.CustomerID,
		AgentID:         req.AgentID,
		PhoneNumber:     req.PhoneNumber,
		Direction:       req.Direction,
		Status:          req.Status,
		DurationSeconds: req.DurationSeconds,
		Notes:           req.Notes,
	})
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, CallResponse{Success: true, Call: call})
}
