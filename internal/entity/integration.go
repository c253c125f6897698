package entity

import "time"

// OAuthToken is the token endpoint response. It lives for a single request and is never stored.
type OAuthToken struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
	ExpiresIn    int    `json:"expires_in,omitempty"`
	Scope        string `json:"scope,omitempty"`
}

// IntegrationConnection is the non-secret outcome of a finished authorization.
type IntegrationConnection struct {
	Provider       string         `json:"provider"`
	OrganizationID string         `json:"organizationId"`
	ConnectedBy    string         `json:"connectedBy,omitempty"`
	Account        map[string]any `json:"account"`
	Scope          string         `json:"scope"`
	ConnectedAt    time.Time      `json:"connectedAt"`
}

type IntegrationStatus struct {
	Connected bool   `json:"connected"`
	Error     string `json:"error,omitempty"`
}

type IntegrationSummary struct {
	Provider   string `json:"provider"`
	Name       string `json:"name"`
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
}

// OAuthState is a pending authorization waiting for its callback.
type OAuthState struct {
	Nonce          string
	Provider       string
	OrganizationID string
	UserID         string
	ExpiresAt      time.Time
}
