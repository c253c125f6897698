package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/samandr77/microservices/callcenter/internal/clients/oauth"
	"github.com/samandr77/microservices/callcenter/internal/entity"
	"github.com/samandr77/microservices/callcenter/pkg/logger"
)

// Flow selects the route family an authorization runs through.
type Flow int

const (
	// FlowAPI is /api/auth/{provider}/...
	FlowAPI Flow = iota
	// FlowLegacy is /auth/{provider}/... with a percent-encoded authorization URL.
	FlowLegacy
)

const exchangeSuccess = "success"

type CallbackParams struct {
	Code             string
	State            string
	Error            string
	ErrorDescription string
}

// BeginAuthorization records a pending state and returns the provider consent URL.
func (s *Service) BeginAuthorization(ctx context.Context, name string, flow Flow) (string, error) {
	p, err := s.providers.Provider(name)
	if err != nil {
		return "", err
	}

	ctx = logger.SetProvider(ctx, name)

	if !p.Configured() {
		slog.ErrorContext(ctx, "oauth client id is not configured")
		return "", fmt.Errorf("%s: %w", name, entity.ErrOAuthNotConfigured)
	}

	orgID, userID := s.actor(ctx)

	state, pending, err := s.signer.Issue(name, orgID, userID)
	if err != nil {
		return "", fmt.Errorf("issue state: %w", err)
	}

	err = s.store.SaveState(ctx, pending)
	if err != nil {
		return "", fmt.Errorf("save state: %w", err)
	}

	style := oauth.QueryStyleForm
	if flow == FlowLegacy {
		style = oauth.QueryStylePercent
	}

	slog.InfoContext(ctx, "oauth authorization started", "organization", orgID)

	return oauth.AuthorizationURL(p, s.redirectURI(name, flow), state, style), nil
}

// CompleteAuthorization handles the provider redirect and always answers with
// the status page location. An error is returned only for unknown providers.
func (s *Service) CompleteAuthorization(ctx context.Context, name string, flow Flow, params CallbackParams) (string, error) {
	p, err := s.providers.Provider(name)
	if err != nil {
		return "", err
	}

	ctx = logger.SetProvider(ctx, name)

	fail := func(code string, level slog.Level, err error) string {
		slog.Log(ctx, level, "oauth callback failed", "reason", code, "error", err)
		s.metrics.OAuthExchange(name, code)

		return s.statusPage(name, "error", code)
	}

	if params.Error != "" {
		return fail(entity.OAuthErrAuthorizationFailed, slog.LevelWarn,
			fmt.Errorf("provider error %q: %s", params.Error, params.ErrorDescription)), nil
	}

	if params.Code == "" {
		return fail(entity.OAuthErrNoCode, slog.LevelWarn, errors.New("no authorization code")), nil
	}

	pending, err := s.consumeState(ctx, name, params.State)
	if err != nil {
		return fail(entity.OAuthErrInvalidState, slog.LevelWarn, err), nil
	}

	ctx = logger.SetOrganizationID(ctx, pending.OrganizationID)

	if !p.HasCredentials() {
		return fail(entity.OAuthErrNotConfigured, slog.LevelError, entity.ErrOAuthNotConfigured), nil
	}

	token, err := s.connector.ExchangeCode(ctx, p, params.Code, s.redirectURI(name, flow))
	if err != nil {
		if errors.Is(err, entity.ErrOAuthTokenExchange) {
			return fail(entity.OAuthErrTokenExchangeFailed, slog.LevelError, err), nil
		}

		return fail(entity.OAuthErrCallbackFailed, slog.LevelError, err), nil
	}

	account := map[string]any{}

	if p.ProfileURL != "" {
		profile, err := s.connector.FetchProfile(ctx, p, token.AccessToken)
		if err != nil {
			slog.WarnContext(ctx, "fetch provider profile", "error", err)
		} else {
			account = profile
			slog.InfoContext(ctx, "provider profile", "account", account)
		}
	}

	scope := token.Scope
	if scope == "" {
		scope = strings.Join(p.Scopes, " ")
	}

	conn := entity.IntegrationConnection{
		Provider:       name,
		OrganizationID: pending.OrganizationID,
		ConnectedBy:    pending.UserID,
		Account:        account,
		Scope:          scope,
		ConnectedAt:    s.now().UTC(),
	}

	err = s.store.SaveConnection(ctx, conn)
	if err != nil {
		return fail(entity.OAuthErrCallbackFailed, slog.LevelError, fmt.Errorf("save connection: %w", err)), nil
	}

	s.metrics.OAuthExchange(name, exchangeSuccess)
	s.publish(ctx, entity.EventIntegrationConnected, conn.OrganizationID, conn)

	slog.InfoContext(ctx, "integration connected")

	return s.statusPage(name, "success", "true"), nil
}

// consumeState verifies the signed state and burns its nonce.
func (s *Service) consumeState(ctx context.Context, provider, state string) (entity.OAuthState, error) {
	claims, err := s.signer.Parse(state, provider)
	if err != nil {
		return entity.OAuthState{}, err
	}

	pending, err := s.store.ConsumeState(ctx, claims.ID)
	if err != nil {
		return entity.OAuthState{}, fmt.Errorf("consume nonce: %v: %w", err, entity.ErrOAuthInvalidState)
	}

	if pending.Provider != provider || !pending.ExpiresAt.After(s.now()) {
		return entity.OAuthState{}, fmt.Errorf("stale nonce: %w", entity.ErrOAuthInvalidState)
	}

	return pending, nil
}

func (s *Service) Integrations(ctx context.Context) ([]entity.IntegrationSummary, error) {
	orgID, _ := s.actor(ctx)

	providers := s.providers.All()
	out := make([]entity.IntegrationSummary, 0, len(providers))

	for _, p := range providers {
		connected, err := s.connected(ctx, orgID, p.Name)
		if err != nil {
			return nil, err
		}

		out = append(out, entity.IntegrationSummary{
			Provider:   p.Name,
			Name:       p.DisplayName,
			Configured: p.Configured(),
			Connected:  connected,
		})
	}

	return out, nil
}

func (s *Service) IntegrationStatus(ctx context.Context, name string) (entity.IntegrationStatus, error) {
	p, err := s.providers.Provider(name)
	if err != nil {
		return entity.IntegrationStatus{}, err
	}

	if !p.Configured() {
		return entity.IntegrationStatus{Connected: false, Error: entity.OAuthErrNotConfigured}, nil
	}

	orgID, _ := s.actor(ctx)

	connected, err := s.connected(ctx, orgID, name)
	if err != nil {
		return entity.IntegrationStatus{}, err
	}

	return entity.IntegrationStatus{Connected: connected}, nil
}

func (s *Service) Disconnect(ctx context.Context, name string) error {
	if _, err := s.providers.Provider(name); err != nil {
		return err
	}

	orgID, userID := s.actor(ctx)

	err := s.store.DeleteConnection(ctx, orgID, name)
	if err != nil {
		return fmt.Errorf("delete %s connection: %w", name, err)
	}

	slog.InfoContext(logger.SetProvider(ctx, name), "integration disconnected")
	s.publish(ctx, entity.EventIntegrationDisconnected, orgID, map[string]string{
		"provider":       name,
		"disconnectedBy": userID,
	})

	return nil
}

// CleanupExpiredStates drops pending authorizations nobody came back for.
func (s *Service) CleanupExpiredStates(ctx context.Context) error {
	n, err := s.store.DeleteExpiredStates(ctx, s.now())
	if err != nil {
		return fmt.Errorf("delete expired states: %w", err)
	}

	if n > 0 {
		slog.InfoContext(ctx, "expired oauth states removed", "count", n)
	}

	return nil
}

func (s *Service) connected(ctx context.Context, orgID, provider string) (bool, error) {
	_, err := s.store.Connection(ctx, orgID, provider)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("get %s connection: %w", provider, err)
	}

	return true, nil
}

// actor returns the organization and user behind the request; anonymous
// requests act for the default organization.
func (s *Service) actor(ctx context.Context) (string, string) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return s.cfg.DefaultOrganizationID, ""
	}

	return user.OrganizationID, user.ID
}

func (s *Service) redirectURI(provider string, flow Flow) string {
	if flow == FlowLegacy {
		return fmt.Sprintf("%s/auth/%s/callback", s.cfg.AppURL, provider)
	}

	return fmt.Sprintf("%s/api/auth/%s/callback", s.cfg.AppURL, provider)
}

func (s *Service) statusPage(provider, key, value string) string {
	q := url.Values{}
	q.Set(key, value)

	return fmt.Sprintf("%s/integrations/%s?%s", s.cfg.AppURL, provider, q.Encode())
}
