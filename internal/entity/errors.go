package entity

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrValidation       = errors.New("validation failed")
	ErrAlreadyExists    = errors.New("already exists")
	ErrUserSuspended    = errors.New("user is suspended")
	ErrCannotDeleteSelf = errors.New("cannot delete own account")
	ErrCannotDeleteRoot = errors.New("root user cannot be deleted")
	ErrInvalidToken     = errors.New("invalid token")
)

var (
	ErrUnknownProvider     = errors.New("unknown oauth provider")
	ErrOAuthNotConfigured  = errors.New("oauth provider is not configured")
	ErrOAuthInvalidState   = errors.New("invalid oauth state")
	ErrOAuthTokenExchange  = errors.New("token exchange failed")
	ErrOAuthInvalidCode    = errors.New("invalid authorization code")
	ErrOAuthCodeExpired    = errors.New("authorization code expired")
	ErrOAuthInvalidClient  = errors.New("invalid client credentials")
	ErrOAuthInvalidRequest = errors.New("invalid request parameters")
	ErrOAuthInvalidScope   = errors.New("insufficient scope permissions")
	ErrOAuthRateLimited    = errors.New("provider rate limit exceeded")
	ErrOAuthUnavailable    = errors.New("provider unavailable")
	ErrOAuthEmptyToken     = errors.New("provider returned empty access token")
)

// Redirect error codes consumed by the front-end status page.
const (
	OAuthErrAuthorizationFailed = "authorization_failed"
	OAuthErrNoCode              = "no_code"
	OAuthErrInvalidState        = "invalid_state"
	OAuthErrNotConfigured       = "not_configured"
	OAuthErrTokenExchangeFailed = "token_exchange_failed"
	OAuthErrCallbackFailed      = "callback_failed"
)
