package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/callcenter/internal/api"
	"github.com/samandr77/microservices/callcenter/internal/clients/oauth"
	"github.com/samandr77/microservices/callcenter/internal/entity"
	"github.com/samandr77/microservices/callcenter/internal/mocks"
	"github.com/samandr77/microservices/callcenter/internal/repository/memory"
	"github.com/samandr77/microservices/callcenter/internal/service"
	"github.com/samandr77/microservices/callcenter/pkg/config"
	"github.com/samandr77/microservices/callcenter/pkg/metrics"
)

const (
	appURL    = "http://app.test"
	bridgeKey = "n8n-secret"
)

type Tester struct {
	server    *httptest.Server
	client    *http.Client
	store     *memory.Store
	events    *mocks.MockEventPublisher
	notifier  *mocks.MockNotifier
	connector *mocks.MockOAuthConnector
}

func testConfig() config.Config {
	return config.Config{
		AppURL:                appURL,
		DefaultOrganizationID: memory.SeedOrganizationID,
		Session:               config.Session{Secret: "session-secret", TTL: time.Hour},
		OAuth:                 config.OAuth{StateSecret: "state-secret", StateTTL: 10 * time.Minute},
		N8N: config.N8N{
			APIKey:         bridgeKey,
			OrganizationID: memory.SeedOrganizationID,
			RateLimitRPS:   100,
			RateLimitBurst: 100,
		},
		Slack:     config.Credentials{ClientID: "slack-id", ClientSecret: "slack-secret"},
		Microsoft: config.Credentials{ClientID: "ms-id", ClientSecret: "ms-secret"},
	}
}

func NewTester(t *testing.T, cfg config.Config) Tester {
	t.Helper()

	ctrl := gomock.NewController(t)

	tr := Tester{
		store:     memory.NewSeeded(),
		events:    mocks.NewMockEventPublisher(ctrl),
		notifier:  mocks.NewMockNotifier(ctrl),
		connector: mocks.NewMockOAuthConnector(ctrl),
	}

	tr.events.EXPECT().Publish(gomock.Any(), gomock.Any()).AnyTimes()

	m := metrics.New()

	s := service.New(cfg, tr.store, tr.store, oauth.NewRegistry(oauth.Providers(cfg)...),
		tr.connector, tr.events, tr.notifier, m)

	limiter := api.NewRateLimiter(cfg.N8N.RateLimitRPS, cfg.N8N.RateLimitBurst)
	router := api.NewRouter(api.NewHandler(s), api.NewMiddleware(s, cfg.N8N, limiter), m)

	tr.server = httptest.NewServer(router)
	t.Cleanup(tr.server.Close)

	tr.client = &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return tr
}

func (tr Tester) do(t *testing.T, method, path string, header http.Header, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader

	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)

		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, tr.server.URL+path, reader)
	require.NoError(t, err)

	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := tr.client.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, raw
}

func (tr Tester) signIn(t *testing.T, email string) http.Header {
	t.Helper()

	resp, raw := tr.do(t, http.MethodPost, "/api/auth/session", nil, api.SignInRequest{Email: email})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	var out api.SignInResponse
	require.NoError(t, json.Unmarshal(raw, &out))

	return http.Header{"Authorization": {"Bearer " + out.Token}}
}

func bridgeHeader() http.Header {
	return http.Header{"X-Api-Key": {bridgeKey}}
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))

	return v
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	tr := NewTester(t, testConfig())

	resp, raw := tr.do(t, http.MethodGet, "/api/health", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ok", decode[api.HealthResponse](t, raw).Status)
	require.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	resp, raw = tr.do(t, http.MethodGet, "/metrics", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(raw), "http_requests_total")
}

func TestRouter_Swagger(t *testing.T) {
	t.Parallel()

	tr := NewTester(t, testConfig())

	resp, raw := tr.do(t, http.MethodGet, "/api/swagger/doc.json", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	doc := decode[struct {
		Swagger string                    `json:"swagger"`
		Paths   map[string]map[string]any `json:"paths"`
	}](t, raw)
	require.Equal(t, "2.0", doc.Swagger)

	for path, method := range map[string]string{
		"/api/auth/{provider}/authorize": "get",
		"/api/customers/{id}":            "patch",
		"/api/n8n/customers":             "post",
		"/webhook/n8n/call-received":     "post",
		"/webhook/n8n/ticket-created":    "post",
	} {
		require.Contains(t, doc.Paths, path)
		require.Contains(t, doc.Paths[path], method, path)
	}

	resp, raw = tr.do(t, http.MethodGet, "/api/swagger/index.html", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(raw), "swagger-ui")
}

func TestRouter_SessionAndMe(t *testing.T) {
	t.Parallel()

	tr := NewTester(t, testConfig())

	resp, raw := tr.do(t, http.MethodGet, "/api/me", nil, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "unauthorized", decode[api.ErrorResponse](t, raw).Error)

	resp, _ = tr.do(t, http.MethodGet, "/api/me", http.Header{"Authorization": {"Bearer junk"}}, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, raw = tr.do(t, http.MethodPost, "/api/auth/session", nil, api.SignInRequest{Email: "suspended@acme.example"})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.Equal(t, "user_suspended", decode[api.ErrorResponse](t, raw).Error)

	resp, _ = tr.do(t, http.MethodPost, "/api/auth/session", nil, api.SignInRequest{Email: "ghost@acme.example"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, raw = tr.do(t, http.MethodGet, "/api/me", tr.signIn(t, "agent@acme.example"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	profile := decode[entity.AccessProfile](t, raw)
	require.Equal(t, "user_5", profile.User.ID)
	require.Contains(t, profile.EffectivePermissions, entity.PermissionCallsHandle)
	require.Len(t, profile.Apps, 3)
}

func TestRouter_RequirePermission(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		email  string
		method string
		path   string
		want   int
	}{
		{"agent cannot delete customers", "agent@acme.example", http.MethodDelete, "/api/customers/cust_2", http.StatusForbidden},
		{"manager deletes customers", "manager@acme.example", http.MethodDelete, "/api/customers/cust_2", http.StatusNoContent},
		{"agent cannot list organizations", "agent@acme.example", http.MethodGet, "/api/organizations", http.StatusForbidden},
		{"root lists organizations", "root@acme.example", http.MethodGet, "/api/organizations", http.StatusOK},
		{"supervisor cannot manage toggles", "supervisor@acme.example", http.MethodGet, "/api/admin/permissions", http.StatusForbidden},
		{"admin reads toggles", "admin@acme.example", http.MethodGet, "/api/admin/permissions", http.StatusOK},
		{"agent cannot disconnect", "agent@acme.example", http.MethodDelete, "/api/integrations/slack", http.StatusForbidden},
		{"other organization is not found", "root@globex.example", http.MethodGet, "/api/customers/cust_1", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tr := NewTester(t, testConfig())

			resp, raw := tr.do(t, tt.method, tt.path, tr.signIn(t, tt.email), nil)
			require.Equal(t, tt.want, resp.StatusCode, string(raw))
		})
	}
}

func TestRouter_Toggles(t *testing.T) {
	t.Parallel()

	tr := NewTester(t, testConfig())
	admin := tr.signIn(t, "admin@acme.example")
	agent := tr.signIn(t, "agent@acme.example")

	resp, raw := tr.do(t, http.MethodGet, "/api/worker/permissions?appId=asana", agent, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.False(t, decode[api.AppAccessResponse](t, raw).HasAccess)

	enabled := true

	resp, raw = tr.do(t, http.MethodPost, "/api/admin/permissions", admin,
		api.SetToggleRequest{Type: entity.ToggleTypeApp, ID: "asana", Enabled: &enabled})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	require.True(t, decode[entity.Toggle](t, raw).Enabled)

	resp, raw = tr.do(t, http.MethodGet, "/api/worker/permissions?appId=asana", agent, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, api.AppAccessResponse{AppID: "asana", HasAccess: true}, decode[api.AppAccessResponse](t, raw))

	resp, raw = tr.do(t, http.MethodGet, "/api/worker/permissions?featureId=bulk_export", agent, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.False(t, decode[api.FeatureAccessResponse](t, raw).HasAccess)

	resp, raw = tr.do(t, http.MethodGet, "/api/worker/permissions", agent, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, decode[api.TogglesResponse](t, raw).Apps, 4)

	resp, _ = tr.do(t, http.MethodPost, "/api/admin/permissions", admin,
		api.SetToggleRequest{Type: "widget", ID: "asana", Enabled: &enabled})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = tr.do(t, http.MethodPost, "/api/admin/permissions", admin,
		api.SetToggleRequest{Type: entity.ToggleTypeFeature, ID: "teleport", Enabled: &enabled})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = tr.do(t, http.MethodPost, "/api/admin/permissions", admin,
		api.SetToggleRequest{Type: entity.ToggleTypeApp, ID: "asana"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_Authorize(t *testing.T) {
	t.Parallel()

	tr := NewTester(t, testConfig())

	resp, _ := tr.do(t, http.MethodGet, "/api/auth/slack/authorize", nil, nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)

	location, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	require.Equal(t, "slack.com", location.Host)
	require.Equal(t, appURL+"/api/auth/slack/callback", location.Query().Get("redirect_uri"))
	require.NotEmpty(t, location.Query().Get("state"))

	resp, raw := tr.do(t, http.MethodGet, "/api/auth/hubspot/authorize", nil, nil)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Empty(t, resp.Header.Get("Location"))
	require.Equal(t, entity.OAuthErrNotConfigured, decode[api.ErrorResponse](t, raw).Error)

	resp, _ = tr.do(t, http.MethodGet, "/api/auth/dropbox/authorize", nil, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = tr.do(t, http.MethodGet, "/auth/microsoft", nil, nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Location"), "offline_access%20User.Read")
	require.Contains(t, resp.Header.Get("Location"), url.QueryEscape(appURL+"/auth/microsoft/callback"))
}

func TestRouter_UnconfiguredProviders(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Slack = config.Credentials{}
	cfg.Microsoft = config.Credentials{}

	providers := oauth.Providers(cfg)
	require.Len(t, providers, 8)

	tr := NewTester(t, cfg)
	tr.connector.EXPECT().ExchangeCode(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	for _, p := range providers {
		for _, path := range []string{"/api/auth/" + p.Name + "/authorize", "/auth/" + p.Name} {
			resp, raw := tr.do(t, http.MethodGet, path, nil, nil)
			require.Equal(t, http.StatusInternalServerError, resp.StatusCode, path)
			require.Equal(t, "application/json", resp.Header.Get("Content-Type"), path)
			require.Empty(t, resp.Header.Get("Location"), path)
			require.Equal(t, entity.OAuthErrNotConfigured, decode[api.ErrorResponse](t, raw).Error, path)
		}

		for query, want := range map[string]string{
			"?error=access_denied&code=ignored": entity.OAuthErrAuthorizationFailed,
			"":                                  entity.OAuthErrNoCode,
		} {
			resp, _ := tr.do(t, http.MethodGet, "/api/auth/"+p.Name+"/callback"+query, nil, nil)
			require.Equal(t, http.StatusFound, resp.StatusCode, p.Name)
			require.Equal(t, appURL+"/integrations/"+p.Name+"?error="+want, resp.Header.Get("Location"), p.Name)
		}
	}
}

func TestRouter_CallbackFlow(t *testing.T) {
	t.Parallel()

	tr := NewTester(t, testConfig())
	manager := tr.signIn(t, "manager@acme.example")

	resp, _ := tr.do(t, http.MethodGet, "/api/auth/slack/authorize", manager, nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)

	location, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)

	state := location.Query().Get("state")

	tr.connector.EXPECT().
		ExchangeCode(gomock.Any(), gomock.Any(), "good-code", appURL+"/api/auth/slack/callback").
		Return(entity.OAuthToken{AccessToken: "xoxb-1", Scope: "chat:write"}, nil)
	tr.connector.EXPECT().
		FetchProfile(gomock.Any(), gomock.Any(), "xoxb-1").
		Return(map[string]any{"team": "Acme"}, nil)

	callback := "/api/auth/slack/callback?" + url.Values{"code": {"good-code"}, "state": {state}}.Encode()

	resp, _ = tr.do(t, http.MethodGet, callback, nil, nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, appURL+"/integrations/slack?success=true", resp.Header.Get("Location"))

	resp, raw := tr.do(t, http.MethodGet, "/api/integrations/slack/status", manager, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, entity.IntegrationStatus{Connected: true}, decode[entity.IntegrationStatus](t, raw))

	resp, _ = tr.do(t, http.MethodGet, callback, nil, nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, appURL+"/integrations/slack?error=invalid_state", resp.Header.Get("Location"))

	resp, _ = tr.do(t, http.MethodGet, "/api/auth/slack/callback?error=access_denied", nil, nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, appURL+"/integrations/slack?error=authorization_failed", resp.Header.Get("Location"))

	resp, _ = tr.do(t, http.MethodGet, "/auth/slack/callback", nil, nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, appURL+"/integrations/slack?error=no_code", resp.Header.Get("Location"))

	resp, _ = tr.do(t, http.MethodGet, "/api/auth/dropbox/callback?code=x", nil, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, raw = tr.do(t, http.MethodGet, "/api/integrations/hubspot/status", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, entity.IntegrationStatus{Error: entity.OAuthErrNotConfigured}, decode[entity.IntegrationStatus](t, raw))

	resp, _ = tr.do(t, http.MethodDelete, "/api/integrations/slack", manager, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, raw = tr.do(t, http.MethodGet, "/api/integrations", manager, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	list := decode[api.IntegrationsResponse](t, raw).Integrations
	require.Len(t, list, 8)
	require.Equal(t, "slack", list[0].Provider)
	require.False(t, list[0].Connected)
}

func TestRouter_CRM(t *testing.T) {
	t.Parallel()

	tr := NewTester(t, testConfig())
	agent := tr.signIn(t, "agent@acme.example")

	resp, raw := tr.do(t, http.MethodGet, "/api/customers?tier=gold", agent, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	customers := decode[api.CustomersResponse](t, raw)
	require.Len(t, customers.Customers, 1)
	require.Equal(t, "cust_1", customers.Customers[0].ID)

	resp, _ = tr.do(t, http.MethodGet, "/api/customers?tier=diamond", agent, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, raw = tr.do(t, http.MethodGet, "/api/tickets", agent, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 2, decode[api.TicketsResponse](t, raw).Pagination.Total)

	resp, _ = tr.do(t, http.MethodGet, "/api/tickets/ticket_1", agent, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, raw = tr.do(t, http.MethodGet, "/api/tickets/ticket_3", agent, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode, string(raw))

	resp, _ = tr.do(t, http.MethodPatch, "/api/tickets/ticket_3", agent, map[string]string{"status": "closed"})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, raw = tr.do(t, http.MethodPost, "/api/orders", agent, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode, string(raw))

	manager := tr.signIn(t, "manager@acme.example")

	resp, raw = tr.do(t, http.MethodPost, "/api/orders", manager, map[string]any{
		"customerId": "cust_2",
		"items": []map[string]any{
			{"sku": "SKU-1", "name": "Headset", "quantity": 2, "unitPrice": "19.99"},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	require.Equal(t, "39.98", decode[api.OrderResponse](t, raw).Order.Total.StringFixed(2))

	resp, _ = tr.do(t, http.MethodPost, "/api/orders", manager, "{")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, raw = tr.do(t, http.MethodGet, "/api/dashboard", manager, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, decode[entity.Dashboard](t, raw).Organization)

	resp, raw = tr.do(t, http.MethodPost, "/api/users", manager, api.CreateUserRequest{
		Name: "Nina New", Email: "nina@acme.example", Role: entity.RoleAgent,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	resp, _ = tr.do(t, http.MethodPost, "/api/users", manager, api.CreateUserRequest{
		Name: "Max Manager", Email: "max@acme.example", Role: entity.RoleManager,
	})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	root := tr.signIn(t, "root@acme.example")

	resp, raw = tr.do(t, http.MethodDelete, "/api/users/user_1", root, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.Equal(t, "cannot_delete_self", decode[api.ErrorResponse](t, raw).Error)
}
