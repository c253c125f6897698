package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/samandr77/microservices/callcenter/docs" // swagger docs
	"github.com/samandr77/microservices/callcenter/internal/entity"
	"github.com/samandr77/microservices/callcenter/pkg/metrics"
)

func NewRouter(h *Handler, mw *Middleware, m *metrics.Metrics) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Cors, m.Instrument, mw.Recover, mw.WithIP, mw.Log)

	mux.Get("/health", h.Health)
	mux.Method(http.MethodGet, "/metrics", m.Handler())

	// Routes registered by OAuth apps before the /api prefix existed.
	mux.Route("/auth/{provider}", func(r chi.Router) {
		r.Use(mw.OptionalAuth)
		r.Get("/", h.LegacyAuthorize)
		r.Get("/callback", h.LegacyCallback)
	})

	mux.Route("/webhook/n8n", func(r chi.Router) {
		r.Use(mw.RateLimit, mw.APIKeyAuth)
		r.Post("/call-received", h.CallReceived)
		r.Post("/ticket-created", h.TicketCreated)
	})

	mux.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/swagger/*", httpSwagger.Handler())
		r.Post("/auth/session", h.SignIn)

		r.Group(func(r chi.Router) {
			r.Use(mw.OptionalAuth)
			r.Get("/auth/{provider}/authorize", h.Authorize)
			r.Get("/auth/{provider}/callback", h.Callback)
			r.Get("/integrations", h.Integrations)
			r.Get("/integrations/{provider}/status", h.IntegrationStatus)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.BearerAuth)
			appRoutes(r, h, mw)
		})

		r.Route("/n8n", func(r chi.Router) {
			r.Use(mw.RateLimit, mw.APIKeyAuth)
			bridgeRoutes(r, h)
		})
	})

	return mux
}

func appRoutes(r chi.Router, h *Handler, mw *Middleware) {
	can := mw.RequirePermission

	r.Get("/me", h.Me)
	r.With(can(entity.PermissionDashboardView)).Get("/dashboard", h.Dashboard)
	r.Get("/worker/permissions", h.WorkerPermissions)
	r.With(can(entity.PermissionIntegrationsManage)).Delete("/integrations/{provider}", h.Disconnect)

	r.Route("/admin/permissions", func(r chi.Router) {
		r.Use(can(entity.PermissionPermissionsManage))
		r.Get("/", h.PermissionsOverview)
		r.Post("/", h.SetToggle)
	})

	r.Route("/customers", func(r chi.Router) {
		r.With(can(entity.PermissionCustomersView)).Get("/", h.Customers)
		r.With(can(entity.PermissionCustomersCreate)).Post("/", h.CreateCustomer)
		r.With(can(entity.PermissionCustomersView)).Get("/{id}", h.Customer)
		r.With(can(entity.PermissionCustomersEdit)).Patch("/{id}", h.UpdateCustomer)
		r.With(can(entity.PermissionCustomersDelete)).Delete("/{id}", h.DeleteCustomer)
	})

	r.Route("/tickets", func(r chi.Router) {
		r.With(can(entity.PermissionTicketsView)).Get("/", h.Tickets)
		r.With(can(entity.PermissionTicketsCreate)).Post("/", h.CreateTicket)
		r.With(can(entity.PermissionTicketsView)).Get("/{id}", h.Ticket)
		r.With(can(entity.PermissionTicketsEdit)).Patch("/{id}", h.UpdateTicket)
		r.With(can(entity.PermissionTicketsDelete)).Delete("/{id}", h.DeleteTicket)
	})

	r.Route("/orders", func(r chi.Router) {
		r.With(can(entity.PermissionOrdersView)).Get("/", h.Orders)
		r.With(can(entity.PermissionOrdersCreate)).Post("/", h.CreateOrder)
		r.With(can(entity.PermissionOrdersView)).Get("/{id}", h.Order)
		r.With(can(entity.PermissionOrdersEdit)).Patch("/{id}", h.UpdateOrder)
		r.With(can(entity.PermissionOrdersDelete)).Delete("/{id}", h.DeleteOrder)
	})

	r.Route("/calls", func(r chi.Router) {
		r.With(can(entity.PermissionCallsView)).Get("/", h.Calls)
		r.With(can(entity.PermissionCallsHandle)).Post("/", h.CreateCall)
	})

	r.Route("/users", func(r chi.Router) {
		r.With(can(entity.PermissionUsersView)).Get("/", h.Users)
		r.With(can(entity.PermissionUsersManage)).Post("/", h.CreateUser)
		r.With(can(entity.PermissionUsersManage)).Patch("/{id}", h.UpdateUser)
		r.With(can(entity.PermissionUsersManage)).Delete("/{id}", h.DeleteUser)
	})

	r.Route("/organizations", func(r chi.Router) {
		r.With(can(entity.PermissionOrganizationsManage)).Get("/", h.Organizations)
		r.Get("/current", h.CurrentOrganization)
	})
}

func bridgeRoutes(r chi.Router, h *Handler) {
	r.Get("/health", h.BridgeHealth)

	r.Get("/customers", h.Customers)
	r.Post("/customers", h.CreateCustomer)
	r.Get("/customers/{id}", h.Customer)

	r.Get("/tickets", h.Tickets)
	r.Post("/tickets", h.CreateTicket)
	r.Patch("/tickets/{id}", h.UpdateTicket)

	r.Get("/agents", h.Agents)

	r.Get("/calls", h.Calls)
	r.Post("/calls", h.CreateCall)
}
