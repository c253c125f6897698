package service_test

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/callcenter/internal/clients/oauth"
	"github.com/samandr77/microservices/callcenter/internal/entity"
	"github.com/samandr77/microservices/callcenter/internal/service"
	"github.com/samandr77/microservices/callcenter/pkg/config"
)

func stateFrom(t *testing.T, authURL string) string {
	t.Helper()

	u, err := url.Parse(authURL)
	require.NoError(t, err)

	state := u.Query().Get("state")
	require.NotEmpty(t, state)

	return state
}

func TestService_BeginAuthorization(t *testing.T) {
	t.Parallel()

	s, d := newService(t)
	ctx := asUser(t, d.store, "user_3")

	authURL, err := s.BeginAuthorization(ctx, "slack", service.FlowAPI)
	require.NoError(t, err)

	u, err := url.Parse(authURL)
	require.NoError(t, err)
	require.Equal(t, "slack.com", u.Host)
	require.Equal(t, "slack-id", u.Query().Get("client_id"))
	require.Equal(t, "code", u.Query().Get("response_type"))
	require.Equal(t, appURL+"/api/auth/slack/callback", u.Query().Get("redirect_uri"))
	require.Equal(t, "channels:read,chat:write,users:read", u.Query().Get("scope"))

	_, err = s.BeginAuthorization(ctx, "hubspot", service.FlowAPI)
	require.ErrorIs(t, err, entity.ErrOAuthNotConfigured)

	_, err = s.BeginAuthorization(ctx, "dropbox", service.FlowAPI)
	require.ErrorIs(t, err, entity.ErrUnknownProvider)
}

func TestService_BeginAuthorization_Legacy(t *testing.T) {
	t.Parallel()

	s, _ := newService(t)

	authURL, err := s.BeginAuthorization(context.Background(), "microsoft", service.FlowLegacy)
	require.NoError(t, err)
	require.Contains(t, authURL, "redirect_uri="+url.QueryEscape(appURL+"/auth/microsoft/callback"))
	require.Contains(t, authURL, "scope=offline_access%20User.Read%20Mail.Read%20Calendars.Read")
	require.Contains(t, authURL, "response_mode=query")
	require.NotContains(t, authURL, "+")
}

func TestService_CompleteAuthorization_EarlyFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params func(t *testing.T, s *service.Service) service.CallbackParams
		want   string
	}{
		{
			name: "provider error",
			params: func(*testing.T, *service.Service) service.CallbackParams {
				return service.CallbackParams{Error: "access_denied", Code: "ignored"}
			},
			want: entity.OAuthErrAuthorizationFailed,
		},
		{
			name: "no code",
			params: func(*testing.T, *service.Service) service.CallbackParams {
				return service.CallbackParams{}
			},
			want: entity.OAuthErrNoCode,
		},
		{
			name: "missing state",
			params: func(*testing.T, *service.Service) service.CallbackParams {
				return service.CallbackParams{Code: "abc"}
			},
			want: entity.OAuthErrInvalidState,
		},
		{
			name: "forged state",
			params: func(*testing.T, *service.Service) service.CallbackParams {
				return service.CallbackParams{Code: "abc", State: "eyJhbGciOiJIUzI1NiJ9.e30.forged"}
			},
			want: entity.OAuthErrInvalidState,
		},
		{
			name: "state of another provider",
			params: func(t *testing.T, s *service.Service) service.CallbackParams {
				authURL, err := s.BeginAuthorization(context.Background(), "quickbooks", service.FlowAPI)
				require.NoError(t, err)

				return service.CallbackParams{Code: "abc", State: stateFrom(t, authURL)}
			},
			want: entity.OAuthErrInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, d := newService(t)
			d.metrics.EXPECT().OAuthExchange("slack", tt.want)

			location, err := s.CompleteAuthorization(context.Background(), "slack", service.FlowAPI, tt.params(t, s))
			require.NoError(t, err)
			require.Equal(t, appURL+"/integrations/slack?error="+tt.want, location)
		})
	}
}

func TestService_UnconfiguredProviders(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Slack = config.Credentials{}
	cfg.Asana = config.Credentials{}
	cfg.Microsoft = config.Credentials{}
	cfg.QuickBooks = config.Credentials{}

	providers := oauth.Providers(cfg)
	require.Len(t, providers, 8)

	for _, p := range providers {
		t.Run(p.Name, func(t *testing.T) {
			t.Parallel()

			s, d := newServiceWith(t, cfg)
			d.connector.EXPECT().ExchangeCode(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			d.connector.EXPECT().FetchProfile(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			for _, flow := range []service.Flow{service.FlowAPI, service.FlowLegacy} {
				_, err := s.BeginAuthorization(context.Background(), p.Name, flow)
				require.ErrorIs(t, err, entity.ErrOAuthNotConfigured)
			}

			d.metrics.EXPECT().OAuthExchange(p.Name, entity.OAuthErrAuthorizationFailed)

			location, err := s.CompleteAuthorization(context.Background(), p.Name, service.FlowAPI,
				service.CallbackParams{Error: "access_denied", Code: "ignored"})
			require.NoError(t, err)
			require.Equal(t, appURL+"/integrations/"+p.Name+"?error=authorization_failed", location)

			d.metrics.EXPECT().OAuthExchange(p.Name, entity.OAuthErrNoCode)

			location, err = s.CompleteAuthorization(context.Background(), p.Name, service.FlowLegacy, service.CallbackParams{})
			require.NoError(t, err)
			require.Equal(t, appURL+"/integrations/"+p.Name+"?error=no_code", location)
		})
	}
}

func TestService_CompleteAuthorization_Success(t *testing.T) {
	t.Parallel()

	s, d := newService(t)
	ctx := asUser(t, d.store, "user_3")

	authURL, err := s.BeginAuthorization(ctx, "slack", service.FlowAPI)
	require.NoError(t, err)

	state := stateFrom(t, authURL)

	d.connector.EXPECT().
		ExchangeCode(gomock.Any(), gomock.Any(), "good-code", appURL+"/api/auth/slack/callback").
		DoAndReturn(func(_ context.Context, p oauth.Provider, _, _ string) (entity.OAuthToken, error) {
			require.Equal(t, "slack", p.Name)
			return entity.OAuthToken{AccessToken: "xoxb-secret", Scope: "chat:write"}, nil
		})
	d.connector.EXPECT().
		FetchProfile(gomock.Any(), gomock.Any(), "xoxb-secret").
		Return(map[string]any{"team": "Acme"}, nil)
	d.metrics.EXPECT().OAuthExchange("slack", "success")
	d.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e entity.Event) {
		require.Equal(t, entity.EventIntegrationConnected, e.Type)
	})

	location, err := s.CompleteAuthorization(context.Background(), "slack", service.FlowAPI,
		service.CallbackParams{Code: "good-code", State: state})
	require.NoError(t, err)
	require.Equal(t, appURL+"/integrations/slack?success=true", location)

	conn, err := d.store.Connection(context.Background(), "org_1", "slack")
	require.NoError(t, err)
	require.Equal(t, "user_3", conn.ConnectedBy)
	require.Equal(t, "chat:write", conn.Scope)
	require.Equal(t, "Acme", conn.Account["team"])

	status, err := s.IntegrationStatus(ctx, "slack")
	require.NoError(t, err)
	require.True(t, status.Connected)

	// replayed state
	d.metrics.EXPECT().OAuthExchange("slack", entity.OAuthErrInvalidState)

	location, err = s.CompleteAuthorization(context.Background(), "slack", service.FlowAPI,
		service.CallbackParams{Code: "good-code", State: state})
	require.NoError(t, err)
	require.Equal(t, appURL+"/integrations/slack?error=invalid_state", location)
}

func TestService_CompleteAuthorization_ExchangeFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		provider string
		err      error
		want     string
	}{
		{"missing secret", "asana", nil, entity.OAuthErrNotConfigured},
		{"provider refused", "slack", errors.Join(entity.ErrOAuthTokenExchange, entity.ErrOAuthInvalidCode), entity.OAuthErrTokenExchangeFailed},
		{"transport failure", "slack", errors.New("dial tcp: connection refused"), entity.OAuthErrCallbackFailed},
		{"empty token", "slack", entity.ErrOAuthEmptyToken, entity.OAuthErrCallbackFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, d := newService(t)

			authURL, err := s.BeginAuthorization(context.Background(), tt.provider, service.FlowAPI)
			require.NoError(t, err)

			if tt.err != nil {
				d.connector.EXPECT().ExchangeCode(gomock.Any(), gomock.Any(), "code", gomock.Any()).
					Return(entity.OAuthToken{}, tt.err)
			}

			d.metrics.EXPECT().OAuthExchange(tt.provider, tt.want)

			location, err := s.CompleteAuthorization(context.Background(), tt.provider, service.FlowAPI,
				service.CallbackParams{Code: "code", State: stateFrom(t, authURL)})
			require.NoError(t, err)
			require.Equal(t, appURL+"/integrations/"+tt.provider+"?error="+tt.want, location)

			_, err = d.store.Connection(context.Background(), "org_1", tt.provider)
			require.ErrorIs(t, err, entity.ErrNotFound)
		})
	}
}

func TestService_CompleteAuthorization_UnknownProvider(t *testing.T) {
	t.Parallel()

	s, _ := newService(t)

	_, err := s.CompleteAuthorization(context.Background(), "dropbox", service.FlowAPI, service.CallbackParams{Code: "x"})
	require.ErrorIs(t, err, entity.ErrUnknownProvider)
}

func TestService_IntegrationsAndDisconnect(t *testing.T) {
	t.Parallel()

	s, d := newService(t)
	d.allowEvents()

	ctx := asUser(t, d.store, "user_2")

	require.NoError(t, d.store.SaveConnection(context.Background(), entity.IntegrationConnection{
		Provider: "quickbooks", OrganizationID: "org_1",
	}))

	list, err := s.Integrations(ctx)
	require.NoError(t, err)
	require.Len(t, list, 8)
	require.Equal(t, "slack", list[0].Provider)
	require.True(t, list[0].Configured)
	require.False(t, list[0].Connected)

	for _, item := range list {
		if item.Provider == "quickbooks" {
			require.True(t, item.Connected)
		}
	}

	status, err := s.IntegrationStatus(ctx, "hubspot")
	require.NoError(t, err)
	require.Equal(t, entity.IntegrationStatus{Connected: false, Error: entity.OAuthErrNotConfigured}, status)

	require.NoError(t, s.Disconnect(ctx, "quickbooks"))
	require.ErrorIs(t, s.Disconnect(ctx, "quickbooks"), entity.ErrNotFound)
	require.ErrorIs(t, s.Disconnect(ctx, "dropbox"), entity.ErrUnknownProvider)
}
