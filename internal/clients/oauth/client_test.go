package oauth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/callcenter/internal/clients/oauth"
	"github.com/samandr77/microservices/callcenter/internal/entity"
	"github.com/samandr77/microservices/callcenter/pkg/config"
)

func newProvider(serverURL string) oauth.Provider {
	return oauth.Provider{
		Name:         "hubspot",
		DisplayName:  "HubSpot",
		AuthURL:      serverURL + "/authorize",
		TokenURL:     serverURL + "/token",
		ProfileURL:   serverURL + "/me",
		Scopes:       []string{"crm.objects.contacts.read", "crm.objects.contacts.write"},
		ClientID:     "client-id",
		ClientSecret: "client-secret",
	}
}

func TestAuthorizationURL(t *testing.T) {
	t.Parallel()

	p := newProvider("https://provider.example")

	tests := []struct {
		name     string
		style    oauth.QueryStyle
		contains string
		absent   string
	}{
		{
			name:     "form style",
			style:    oauth.QueryStyleForm,
			contains: "scope=crm.objects.contacts.read+crm.objects.contacts.write",
			absent:   "%20",
		},
		{
			name:     "percent style",
			style:    oauth.QueryStylePercent,
			contains: "scope=crm.objects.contacts.read%20crm.objects.contacts.write",
			absent:   "+",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			raw := oauth.AuthorizationURL(p, "http://localhost:3000/api/auth/hubspot/callback", "st", tt.style)
			require.Contains(t, raw, tt.contains)
			require.NotContains(t, raw, tt.absent)

			u, err := url.Parse(raw)
			require.NoError(t, err)
			require.Equal(t, "/authorize", u.Path)

			q := u.Query()
			require.Equal(t, "client-id", q.Get("client_id"))
			require.Equal(t, "http://localhost:3000/api/auth/hubspot/callback", q.Get("redirect_uri"))
			require.Equal(t, "code", q.Get("response_type"))
			require.Equal(t, "st", q.Get("state"))
			require.Equal(t, "crm.objects.contacts.read crm.objects.contacts.write", q.Get("scope"))
		})
	}
}

func TestAuthorizationURL_ProviderSpecifics(t *testing.T) {
	t.Parallel()

	reg := oauth.NewRegistry(oauth.Providers(config.Config{
		Slack:     config.Credentials{ClientID: "s"},
		Microsoft: config.Credentials{ClientID: "m"},
		Mailchimp: config.Credentials{ClientID: "mc"},
	})...)

	slack, err := reg.Provider("slack")
	require.NoError(t, err)

	u, err := url.Parse(oauth.AuthorizationURL(slack, "r", "s", oauth.QueryStyleForm))
	require.NoError(t, err)
	require.Equal(t, "channels:read,chat:write,users:read", u.Query().Get("scope"))

	ms, err := reg.Provider("microsoft")
	require.NoError(t, err)

	u, err = url.Parse(oauth.AuthorizationURL(ms, "r", "s", oauth.QueryStyleForm))
	require.NoError(t, err)
	require.Equal(t, "query", u.Query().Get("response_mode"))

	mc, err := reg.Provider("mailchimp")
	require.NoError(t, err)

	u, err = url.Parse(oauth.AuthorizationURL(mc, "r", "s", oauth.QueryStyleForm))
	require.NoError(t, err)
	require.False(t, u.Query().Has("scope"))

	_, err = reg.Provider("myspace")
	require.ErrorIs(t, err, entity.ErrUnknownProvider)

	require.Len(t, reg.All(), 8)
	require.Equal(t, "slack", reg.All()[0].Name)
}

//nolint:funlen // table of provider answers
func TestClient_ExchangeCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		basicAuth      bool
		serverResponse func(t *testing.T, w http.ResponseWriter, r *http.Request)
		expectError    []error
		notError       error
		wantToken      string
	}{
		{
			name: "successful token exchange",
			serverResponse: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				t.Helper()

				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
				assert.NoError(t, r.ParseForm())
				assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
				assert.Equal(t, "the-code", r.PostForm.Get("code"))
				assert.Equal(t, "client-id", r.PostForm.Get("client_id"))
				assert.Equal(t, "client-secret", r.PostForm.Get("client_secret"))
				assert.Equal(t, "http://app/cb", r.PostForm.Get("redirect_uri"))

				_, _ = w.Write([]byte(`{"access_token":"at","refresh_token":"rt","expires_in":3600,"scope":"crm"}`))
			},
			wantToken: "at",
		},
		{
			name:      "basic auth header",
			basicAuth: true,
			serverResponse: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				t.Helper()

				user, pass, ok := r.BasicAuth()
				assert.True(t, ok)
				assert.Equal(t, "client-id", user)
				assert.Equal(t, "client-secret", pass)

				_, _ = w.Write([]byte(`{"access_token":"qb","token_type":"bearer"}`))
			},
			wantToken: "qb",
		},
		{
			name: "invalid grant",
			serverResponse: func(_ *testing.T, w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"bad code"}`))
			},
			expectError: []error{entity.ErrOAuthTokenExchange, entity.ErrOAuthInvalidCode},
		},
		{
			name: "expired code",
			serverResponse: func(_ *testing.T, w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Code expired"}`))
			},
			expectError: []error{entity.ErrOAuthTokenExchange, entity.ErrOAuthCodeExpired},
		},
		{
			name: "invalid client",
			serverResponse: func(_ *testing.T, w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"invalid_client"}`))
			},
			expectError: []error{entity.ErrOAuthTokenExchange, entity.ErrOAuthInvalidClient},
		},
		{
			name: "unavailable without body",
			serverResponse: func(_ *testing.T, w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			expectError: []error{entity.ErrOAuthTokenExchange, entity.ErrOAuthUnavailable},
		},
		{
			name: "slack ok false",
			serverResponse: func(_ *testing.T, w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"ok":false,"error":"invalid_code"}`))
			},
			expectError: []error{entity.ErrOAuthTokenExchange, entity.ErrOAuthInvalidCode},
		},
		{
			name: "empty access token",
			serverResponse: func(_ *testing.T, w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"token_type":"bearer"}`))
			},
			expectError: []error{entity.ErrOAuthEmptyToken},
			notError:    entity.ErrOAuthTokenExchange,
		},
		{
			name: "malformed json",
			serverResponse: func(_ *testing.T, w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{not json`))
			},
			notError: entity.ErrOAuthTokenExchange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.serverResponse(t, w, r)
			}))
			t.Cleanup(server.Close)

			p := newProvider(server.URL)
			p.BasicAuth = tt.basicAuth

			c := oauth.NewClient(5*time.Second, 0)

			token, err := c.ExchangeCode(context.Background(), p, "the-code", "http://app/cb")

			if tt.wantToken != "" {
				require.NoError(t, err)
				require.Equal(t, tt.wantToken, token.AccessToken)

				return
			}

			require.Error(t, err)

			for _, want := range tt.expectError {
				require.ErrorIs(t, err, want)
			}

			if tt.notError != nil {
				require.NotErrorIs(t, err, tt.notError)
			}
		})
	}
}

func TestClient_ExchangeCode_TransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	serverURL := server.URL
	server.Close()

	c := oauth.NewClient(time.Second, 0)

	_, err := c.ExchangeCode(context.Background(), newProvider(serverURL), "code", "http://app/cb")
	require.Error(t, err)
	require.NotErrorIs(t, err, entity.ErrOAuthTokenExchange)
}

func TestClient_ExchangeCode_NoRetryOnProviderAnswer(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)

		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	c := oauth.NewClient(time.Second, 3)

	_, err := c.ExchangeCode(context.Background(), newProvider(server.URL), "code", "http://app/cb")
	require.ErrorIs(t, err, entity.ErrOAuthTokenExchange)
	require.Equal(t, int32(1), hits.Load())
}

func TestClient_FetchProfile(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Header.Get("Authorization") {
		case "OAuth mc-token":
			_, _ = w.Write([]byte(`{"dc":"us6","accountname":"Acme","login":{"email":"a@b.c"}}`))
		case "Bearer asana-token":
			_, _ = w.Write([]byte(`{"data":{"gid":"123","name":"Ada","email":"ada@acme.example"}}`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	t.Cleanup(server.Close)

	c := oauth.NewClient(time.Second, 0)

	mailchimp := newProvider(server.URL)
	mailchimp.ProfileAuthScheme = "OAuth"

	profile, err := c.FetchProfile(context.Background(), mailchimp, "mc-token")
	require.NoError(t, err)
	require.Equal(t, map[string]any{"dc": "us6", "accountname": "Acme"}, profile)

	profile, err = c.FetchProfile(context.Background(), newProvider(server.URL), "asana-token")
	require.NoError(t, err)
	require.Equal(t, "Ada", profile["name"])

	_, err = c.FetchProfile(context.Background(), newProvider(server.URL), "wrong")
	require.ErrorIs(t, err, entity.ErrOAuthInvalidClient)

	noProfile := newProvider(server.URL)
	noProfile.ProfileURL = ""

	profile, err = c.FetchProfile(context.Background(), noProfile, "x")
	require.NoError(t, err)
	require.Empty(t, profile)
}

func TestParseOAuthError(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, oauth.ParseOAuthError(http.StatusTooManyRequests, nil), entity.ErrOAuthRateLimited)
	require.ErrorIs(t, oauth.ParseOAuthError(http.StatusBadRequest, []byte(`{"error":"invalid_scope"}`)), entity.ErrOAuthInvalidScope)
	require.ErrorIs(t, oauth.ParseOAuthError(http.StatusBadRequest, []byte(`{"error":"something_new"}`)), entity.ErrOAuthInvalidRequest)

	err := oauth.ParseOAuthError(http.StatusTeapot, []byte(`{"error":"something_new"}`))
	require.True(t, strings.Contains(err.Error(), "something_new"))
}
