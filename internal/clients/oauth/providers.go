package oauth

import (
	"fmt"
	"strings"

	"github.com/samandr77/microservices/callcenter/internal/entity"
	"github.com/samandr77/microservices/callcenter/pkg/config"
)

// Provider describes one OAuth 2.0 authorization-code integration.
type Provider struct {
	Name        string
	DisplayName string
	AuthURL     string
	TokenURL    string
	// ProfileURL is optional; when set it is called with the fresh access token.
	ProfileURL     string
	Scopes         []string
	ScopeSeparator string
	ClientID       string
	ClientSecret   string
	// BasicAuth sends client credentials in the Authorization header of the token request
	// in addition to the form body.
	BasicAuth bool
	// ProfileAuthScheme replaces "Bearer" on the profile request.
	ProfileAuthScheme string
	ExtraAuthParams   map[string]string
}

// Configured reports whether authorization can be initiated.
func (p Provider) Configured() bool {
	return p.ClientID != ""
}

// HasCredentials reports whether a code can be exchanged.
func (p Provider) HasCredentials() bool {
	return p.ClientID != "" && p.ClientSecret != ""
}

func (p Provider) scope() string {
	sep := p.ScopeSeparator
	if sep == "" {
		sep = " "
	}

	return strings.Join(p.Scopes, sep)
}

// Providers returns the built-in integrations with credentials taken from cfg.
func Providers(cfg config.Config) []Provider {
	return []Provider{
		{
			Name:           "slack",
			DisplayName:    "Slack",
			AuthURL:        "https://slack.com/oauth/v2/authorize",
			TokenURL:       "https://slack.com/api/oauth.v2.access",
			ProfileURL:     "https://slack.com/api/auth.test",
			Scopes:         []string{"channels:read", "chat:write", "users:read"},
			ScopeSeparator: ",",
			ClientID:       cfg.Slack.ClientID,
			ClientSecret:   cfg.Slack.ClientSecret,
		},
		{
			Name:         "asana",
			DisplayName:  "Asana",
			AuthURL:      "https://app.asana.com/-/oauth_authorize",
			TokenURL:     "https://app.asana.com/-/oauth_token",
			ProfileURL:   "https://app.asana.com/api/1.0/users/me",
			Scopes:       []string{"default"},
			ClientID:     cfg.Asana.ClientID,
			ClientSecret: cfg.Asana.ClientSecret,
		},
		{
			Name:         "hubspot",
			DisplayName:  "HubSpot",
			AuthURL:      "https://app.hubspot.com/oauth/authorize",
			TokenURL:     "https://api.hubapi.com/oauth/v1/token",
			ProfileURL:   "https://api.hubapi.com/account-info/v3/details",
			Scopes:       []string{"crm.objects.contacts.read", "crm.objects.contacts.write"},
			ClientID:     cfg.HubSpot.ClientID,
			ClientSecret: cfg.HubSpot.ClientSecret,
		},
		{
			Name:         "salesforce",
			DisplayName:  "Salesforce",
			AuthURL:      "https://login.salesforce.com/services/oauth2/authorize",
			TokenURL:     "https://login.salesforce.com/services/oauth2/token",
			ProfileURL:   "https://login.salesforce.com/services/oauth2/userinfo",
			Scopes:       []string{"api", "refresh_token"},
			ClientID:     cfg.Salesforce.ClientID,
			ClientSecret: cfg.Salesforce.ClientSecret,
		},
		{
			Name:              "mailchimp",
			DisplayName:       "Mailchimp",
			AuthURL:           "https://login.mailchimp.com/oauth2/authorize",
			TokenURL:          "https://login.mailchimp.com/oauth2/token",
			ProfileURL:        "https://login.mailchimp.com/oauth2/metadata",
			ProfileAuthScheme: "OAuth",
			ClientID:          cfg.Mailchimp.ClientID,
			ClientSecret:      cfg.Mailchimp.ClientSecret,
		},
		{
			Name:            "microsoft",
			DisplayName:     "Microsoft 365",
			AuthURL:         "https://login.microsoftonline.com/common/oauth2/v2.0/authorize",
			TokenURL:        "https://login.microsoftonline.com/common/oauth2/v2.0/token",
			ProfileURL:      "https://graph.microsoft.com/v1.0/me",
			Scopes:          []string{"offline_access", "User.Read", "Mail.Read", "Calendars.Read"},
			ClientID:        cfg.Microsoft.ClientID,
			ClientSecret:    cfg.Microsoft.ClientSecret,
			ExtraAuthParams: map[string]string{"response_mode": "query"},
		},
		{
			Name:         "stripe",
			DisplayName:  "Stripe",
			AuthURL:      "https://connect.stripe.com/oauth/authorize",
			TokenURL:     "https://connect.stripe.com/oauth/token",
			Scopes:       []string{"read_write"},
			ClientID:     cfg.Stripe.ClientID,
			ClientSecret: cfg.Stripe.ClientSecret,
		},
		{
			Name:         "quickbooks",
			DisplayName:  "QuickBooks",
			AuthURL:      "https://appcenter.intuit.com/connect/oauth2",
			TokenURL:     "https://oauth.platform.intuit.com/oauth2/v1/tokens/bearer",
			Scopes:       []string{"com.intuit.quickbooks.accounting"},
			ClientID:     cfg.QuickBooks.ClientID,
			ClientSecret: cfg.QuickBooks.ClientSecret,
			BasicAuth:    true,
		},
	}
}

// Registry looks providers up by name and keeps their declaration order.
type Registry struct {
	byName map[string]Provider
	order  []string
}

func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{byName: make(map[string]Provider, len(providers))}

	for _, p := range providers {
		if _, ok := r.byName[p.Name]; !ok {
			r.order = append(r.order, p.Name)
		}

		r.byName[p.Name] = p
	}

	return r
}

func (r *Registry) Provider(name string) (Provider, error) {
	p, ok := r.byName[name]
	if !ok {
		return Provider{}, fmt.Errorf("%s: %w", name, entity.ErrUnknownProvider)
	}

	return p, nil
}

func (r *Registry) All() []Provider {
	out := make([]Provider, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}

	return out
}
