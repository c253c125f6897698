package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/samandr77/microservices/callcenter/internal/entity"
	"github.com/samandr77/microservices/callcenter/pkg/transport"
)

const (
	defaultRetryWaitMax = time.Second * 5
	maxBodySize         = 1 << 20
	maxAccountFields    = 12
)

// QueryStyle selects how the authorization URL query is encoded.
type QueryStyle int

const (
	// QueryStyleForm encodes spaces as '+'.
	QueryStyleForm QueryStyle = iota
	// QueryStylePercent encodes spaces as "%20".
	QueryStylePercent
)

type Client struct {
	client *http.Client
}

// NewClient builds the outbound client. Only transport errors are retried,
// up to retryAttempts times; provider answers are never retried.
func NewClient(timeout time.Duration, retryAttempts int) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = retryAttempts
	retryClient.RetryWaitMin = 1 * time.Second
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient.Timeout = timeout
	retryClient.HTTPClient.Transport = transport.NewLoggingRoundTripper(retryClient.HTTPClient.Transport)

	retryClient.Logger = nil

	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}

		return false, nil
	}

	return &Client{
		client: retryClient.StandardClient(),
	}
}

// AuthorizationURL builds the consent page URL the browser is redirected to.
func AuthorizationURL(p Provider, redirectURI, state string, style QueryStyle) string {
	params := map[string]string{
		"client_id":     p.ClientID,
		"redirect_uri":  redirectURI,
		"response_type": "code",
		"state":         state,
	}

	if scope := p.scope(); scope != "" {
		params["scope"] = scope
	}

	for k, v := range p.ExtraAuthParams {
		params[k] = v
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	var b strings.Builder

	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}

		b.WriteString(escape(k, style))
		b.WriteByte('=')
		b.WriteString(escape(params[k], style))
	}

	sep := "?"
	if strings.Contains(p.AuthURL, "?") {
		sep = "&"
	}

	return p.AuthURL + sep + b.String()
}

func escape(s string, style QueryStyle) string {
	escaped := url.QueryEscape(s)
	if style == QueryStylePercent {
		escaped = strings.ReplaceAll(escaped, "+", "%20")
	}

	return escaped
}

type tokenResponse struct {
	entity.OAuthToken

	// Slack answers 200 with ok=false on failure.
	OK               *bool  `json:"ok,omitempty"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// ExchangeCode trades an authorization code for a token. A non-2xx answer
// (or a 2xx carrying an OAuth error) wraps entity.ErrOAuthTokenExchange; other
// failures are transport or decode errors.
func (c *Client) ExchangeCode(ctx context.Context, p Provider, code, redirectURI string) (entity.OAuthToken, error) {
	select {
	case <-ctx.Done():
		return entity.OAuthToken{}, ctx.Err()
	default:
	}

	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("code", code)
	data.Set("client_id", p.ClientID)
	data.Set("client_secret", p.ClientSecret)
	data.Set("redirect_uri", redirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.TokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return entity.OAuthToken{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	if p.BasicAuth {
		req.SetBasicAuth(p.ClientID, p.ClientSecret)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return entity.OAuthToken{}, fmt.Errorf("send request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return entity.OAuthToken{}, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return entity.OAuthToken{}, fmt.Errorf("%w: status %d: %w", entity.ErrOAuthTokenExchange, resp.StatusCode, ParseOAuthError(resp.StatusCode, body))
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return entity.OAuthToken{}, fmt.Errorf("decode response: %w", err)
	}

	if tokenResp.Error != "" || (tokenResp.OK != nil && !*tokenResp.OK) {
		return entity.OAuthToken{}, fmt.Errorf("%w: %w", entity.ErrOAuthTokenExchange, ParseOAuthError(resp.StatusCode, body))
	}

	if tokenResp.AccessToken == "" {
		return entity.OAuthToken{}, entity.ErrOAuthEmptyToken
	}

	return tokenResp.OAuthToken, nil
}

// FetchProfile calls the provider profile endpoint and returns a flat summary
// of its scalar fields.
func (c *Client) FetchProfile(ctx context.Context, p Provider, accessToken string) (map[string]any, error) {
	if p.ProfileURL == "" {
		return map[string]any{}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.ProfileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	scheme := p.ProfileAuthScheme
	if scheme == "" {
		scheme = "Bearer"
	}

	req.Header.Set("Authorization", scheme+" "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, ParseOAuthError(resp.StatusCode, body)
	}

	var profile map[string]any
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return summarize(profile), nil
}

// summarize keeps scalar top-level fields, unwrapping a {"data": {...}} envelope.
func summarize(profile map[string]any) map[string]any {
	if data, ok := profile["data"].(map[string]any); ok {
		profile = data
	}

	keys := make([]string, 0, len(profile))
	for k := range profile {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	out := make(map[string]any)

	for _, k := range keys {
		if len(out) == maxAccountFields {
			break
		}

		switch v := profile[k].(type) {
		case string, float64, bool:
			out[k] = v
		}
	}

	return out
}

type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Message          string `json:"message"`
}

// ParseOAuthError maps a provider error body to one of the entity.ErrOAuth* errors.
func ParseOAuthError(statusCode int, body []byte) error {
	var errorResp ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil || errorResp.Error == "" {
		return mapHTTPStatusToError(statusCode)
	}

	description := strings.ToLower(errorResp.ErrorDescription + " " + errorResp.Message)

	switch errorResp.Error {
	case "invalid_grant", "invalid_code", "code_already_used", "bad_redirect_uri":
		if strings.Contains(description, "expired") {
			return entity.ErrOAuthCodeExpired
		}

		return entity.ErrOAuthInvalidCode

	case "invalid_client", "unauthorized_client", "invalid_client_id", "bad_client_secret":
		return entity.ErrOAuthInvalidClient

	case "invalid_request":
		return entity.ErrOAuthInvalidRequest

	case "invalid_scope", "insufficient_scope":
		return entity.ErrOAuthInvalidScope

	case "ratelimited", "rate_limited", "slow_down":
		return entity.ErrOAuthRateLimited

	case "temporarily_unavailable", "server_error":
		return entity.ErrOAuthUnavailable

	default:
		if mapped := mapHTTPStatusToError(statusCode); !errors.Is(mapped, errUnmapped) {
			return mapped
		}

		return fmt.Errorf("oauth error %q", errorResp.Error)
	}
}

var errUnmapped = errors.New("unmapped status")

func mapHTTPStatusToError(statusCode int) error {
	switch statusCode {
	case http.StatusBadRequest:
		return entity.ErrOAuthInvalidRequest
	case http.StatusUnauthorized, http.StatusForbidden:
		return entity.ErrOAuthInvalidClient
	case http.StatusTooManyRequests:
		return entity.ErrOAuthRateLimited
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return entity.ErrOAuthUnavailable
	default:
		return fmt.Errorf("%w: status %d", errUnmapped, statusCode)
	}
}
