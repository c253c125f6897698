package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/callcenter/internal/api"
	"github.com/samandr77/microservices/callcenter/internal/entity"
	"github.com/samandr77/microservices/callcenter/internal/service"
)

func TestBridge_APIKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header http.Header
		want   int
	}{
		{"missing key", nil, http.StatusUnauthorized},
		{"wrong key", http.Header{"X-Api-Key": {"nope"}}, http.StatusUnauthorized},
		{"x-api-key header", bridgeHeader(), http.StatusOK},
		{"bearer header", http.Header{"Authorization": {"Bearer " + bridgeKey}}, http.StatusOK},
		{"session token is not a key", http.Header{"Authorization": {"Bearer session"}}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tr := NewTester(t, testConfig())

			resp, raw := tr.do(t, http.MethodGet, "/api/n8n/health", tt.header, nil)
			require.Equal(t, tt.want, resp.StatusCode, string(raw))
		})
	}
}

func TestBridge_EmptyKeyRejectsEverything(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.N8N.APIKey = ""

	tr := NewTester(t, cfg)

	resp, raw := tr.do(t, http.MethodPost, "/api/n8n/customers", http.Header{"X-Api-Key": {""}},
		api.CreateCustomerRequest{Name: "Eve", AccountNumber: "ACC-9"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "unauthorized", decode[api.ErrorResponse](t, raw).Error)

	resp, raw = tr.do(t, http.MethodGet, "/api/n8n/customers", bridgeHeader(), nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode, string(raw))

	manager := tr.signIn(t, "manager@acme.example")

	resp, raw = tr.do(t, http.MethodGet, "/api/customers", manager, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 4, decode[api.CustomersResponse](t, raw).Pagination.Total)
}

func TestBridge_Preflight(t *testing.T) {
	t.Parallel()

	tr := NewTester(t, testConfig())

	for _, path := range []string{"/api/n8n/customers", "/webhook/n8n/call-received"} {
		resp, _ := tr.do(t, http.MethodOptions, path, http.Header{"Origin": {"https://n8n.example"}}, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		require.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"), path)
		require.Empty(t, resp.Header.Get("Access-Control-Allow-Credentials"), path)
	}

	resp, _ := tr.do(t, http.MethodOptions, "/api/customers", http.Header{"Origin": {"https://admin.example"}}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "https://admin.example", resp.Header.Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
}

func TestBridge_Customers(t *testing.T) {
	t.Parallel()

	tr := NewTester(t, testConfig())

	resp, raw := tr.do(t, http.MethodPost, "/api/n8n/customers", bridgeHeader(), api.CreateCustomerRequest{Name: "Eve Example"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "validation_error", decode[api.ErrorResponse](t, raw).Error)

	resp, raw = tr.do(t, http.MethodPost, "/api/n8n/customers", bridgeHeader(),
		api.CreateCustomerRequest{Name: "Eve Example", AccountNumber: "ACC-2001", Phone: "+15550100099"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	created := decode[api.CustomerResponse](t, raw)
	require.True(t, created.Success)
	require.Equal(t, "cust_6", created.Customer.ID)
	require.Equal(t, entity.CustomerTierBronze, created.Customer.Tier)
	require.Equal(t, "org_1", created.Customer.OrganizationID)

	resp, raw = tr.do(t, http.MethodGet, "/api/n8n/customers?search=eve&limit=1", bridgeHeader(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	list := decode[api.CustomersResponse](t, raw)
	require.True(t, list.Success)
	require.Len(t, list.Customers, 1)
	require.Equal(t, entity.Pagination{Page: 1, Limit: 1, Total: 1, TotalPages: 1}, list.Pagination)

	resp, raw = tr.do(t, http.MethodGet, "/api/n8n/customers?page=x&limit=500", bridgeHeader(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, entity.MaxPageLimit, decode[api.CustomersResponse](t, raw).Pagination.Limit)

	resp, _ = tr.do(t, http.MethodGet, "/api/n8n/customers/cust_5", bridgeHeader(), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, raw = tr.do(t, http.MethodPost, "/api/n8n/customers", bridgeHeader(),
		api.CreateCustomerRequest{Name: "Acme", AccountNumber: "ACC/001 b_2"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	require.Equal(t, "cust_7", decode[api.CustomerResponse](t, raw).Customer.ID)
}

func TestBridge_TicketsAgentsCalls(t *testing.T) {
	t.Parallel()

	tr := NewTester(t, testConfig())

	resp, raw := tr.do(t, http.MethodPost, "/api/n8n/tickets", bridgeHeader(), api.CreateTicketRequest{Subject: "No customer"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode, string(raw))

	resp, raw = tr.do(t, http.MethodPost, "/api/n8n/tickets", bridgeHeader(),
		api.CreateTicketRequest{CustomerID: "cust_2", Subject: "Refund request", Priority: entity.TicketPriorityHigh})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	ticket := decode[api.TicketResponse](t, raw).Ticket
	require.Equal(t, entity.TicketStatusOpen, ticket.Status)

	status := entity.TicketStatusInProgress

	resp, raw = tr.do(t, http.MethodPatch, "/api/n8n/tickets/"+ticket.ID, bridgeHeader(), entity.TicketUpdate{Status: &status})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	require.Equal(t, status, decode[api.TicketResponse](t, raw).Ticket.Status)

	resp, raw = tr.do(t, http.MethodGet, "/api/n8n/tickets?priority=high", bridgeHeader(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 2, decode[api.TicketsResponse](t, raw).Pagination.Total)

	resp, raw = tr.do(t, http.MethodGet, "/api/n8n/agents?status=online&skill=billing", bridgeHeader(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	agents := decode[api.AgentsResponse](t, raw).Agents
	require.Len(t, agents, 2)
	require.Equal(t, "user_4", agents[0].ID)

	resp, raw = tr.do(t, http.MethodGet, "/api/n8n/agents?status=suspended", bridgeHeader(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, decode[api.AgentsResponse](t, raw).Agents, 1)

	resp, _ = tr.do(t, http.MethodGet, "/api/n8n/agents?status=away", bridgeHeader(), nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, raw = tr.do(t, http.MethodPost, "/api/n8n/calls", bridgeHeader(), api.CreateCallRequest{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode, string(raw))

	resp, raw = tr.do(t, http.MethodPost, "/api/n8n/calls", bridgeHeader(), api.CreateCallRequest{PhoneNumber: "+15550100003"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	call := decode[api.CallResponse](t, raw).Call
	require.Equal(t, "call_4", call.ID)
	require.Equal(t, "cust_3", call.CustomerID)
	require.Empty(t, call.AgentID)

	resp, raw = tr.do(t, http.MethodGet, "/api/n8n/calls", bridgeHeader(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 4, decode[api.CallsResponse](t, raw).Pagination.Total)
}

func TestBridge_Webhooks(t *testing.T) {
	t.Parallel()

	tr := NewTester(t, testConfig())

	resp, raw := tr.do(t, http.MethodPost, "/webhook/n8n/call-received", bridgeHeader(),
		entity.IncomingCall{CallID: "ext-7", PhoneNumber: "+15550100001"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	require.Equal(t, api.RoutingResponse{
		Success: true,
		Routing: entity.CallRouting{
			CallID:        "ext-7",
			CustomerID:    "cust_1",
			AssignedAgent: "user_5",
			Queue:         service.QueueDirect,
			Priority:      entity.TicketPriorityHigh,
		},
	}, decode[api.RoutingResponse](t, raw))

	resp, _ = tr.do(t, http.MethodPost, "/webhook/n8n/call-received", bridgeHeader(), entity.IncomingCall{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = tr.do(t, http.MethodPost, "/webhook/n8n/call-received", bridgeHeader(), "not json")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	tr.notifier.EXPECT().SendMessage(gomock.Any(), gomock.Any(), []string{"agent@acme.example"}).Return(nil)

	resp, raw = tr.do(t, http.MethodPost, "/webhook/n8n/ticket-created", bridgeHeader(),
		entity.TicketNotice{TicketID: "ticket_9", Priority: entity.TicketPriorityUrgent, Subject: "Outage"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	require.Equal(t, api.AssignmentResponse{
		Success: true,
		Assignment: entity.TicketAssignment{
			TicketID:   "ticket_9",
			AssignedTo: "user_5",
			SLAHours:   1,
			Escalate:   true,
		},
	}, decode[api.AssignmentResponse](t, raw))

	resp, _ = tr.do(t, http.MethodPost, "/webhook/n8n/ticket-created", nil, entity.TicketNotice{TicketID: "ticket_9"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, raw = tr.do(t, http.MethodGet, "/api/n8n/tickets", bridgeHeader(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 4, decode[api.TicketsResponse](t, raw).Pagination.Total)
}

func TestBridge_RateLimit(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.N8N.RateLimitRPS = 0.001
	cfg.N8N.RateLimitBurst = 2

	tr := NewTester(t, cfg)

	for range 2 {
		resp, _ := tr.do(t, http.MethodGet, "/api/n8n/health", bridgeHeader(), nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, raw := tr.do(t, http.MethodGet, "/api/n8n/health", bridgeHeader(), nil)
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	require.Equal(t, "rate_limited", decode[api.ErrorResponse](t, raw).Error)

	resp, _ = tr.do(t, http.MethodGet, "/api/health", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestBridge_RateLimitIgnoresForwardedFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		trustProxy bool
		allowed    int
	}{
		{"untrusted headers share the peer bucket", false, 1},
		{"trusted proxy buckets per client", true, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := testConfig()
			cfg.N8N.RateLimitRPS = 0.001
			cfg.N8N.RateLimitBurst = 1
			cfg.N8N.TrustProxy = tt.trustProxy

			tr := NewTester(t, cfg)

			allowed := 0

			for i := range 5 {
				header := bridgeHeader()
				header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i+1))

				resp, _ := tr.do(t, http.MethodGet, "/api/n8n/health", header, nil)
				if resp.StatusCode == http.StatusOK {
					allowed++
				}
			}

			require.Equal(t, tt.allowed, allowed)
		})
	}
}
