package entity

import "github.com/shopspring/decimal"

type DashboardScope string

const (
	DashboardScopeOrganization DashboardScope = "organization"
	DashboardScopeTeam         DashboardScope = "team"
	DashboardScopeAgent        DashboardScope = "agent"
)

// Dashboard is shaped by the role of the viewer: only the section matching
// Scope is filled.
type Dashboard struct {
	Scope        DashboardScope       `json:"scope"`
	Organization *OrganizationSummary `json:"organization,omitempty"`
	Team         []Agent              `json:"team,omitempty"`
	Queue        []Ticket             `json:"queue,omitempty"`
	Calls        []Call               `json:"calls,omitempty"`
}

type OrganizationSummary struct {
	Customers   int             `json:"customers"`
	OpenTickets int             `json:"openTickets"`
	Revenue     decimal.Decimal `json:"revenue" swaggertype:"string"`
	Calls       int             `json:"calls"`
	Users       int             `json:"users"`
}

// Agent is a staff member as seen by routing: availability plus current load.
type Agent struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Role         Role         `json:"role"`
	Status       UserStatus   `json:"status"`
	Availability Availability `json:"availability"`
	Skills       []string     `json:"skills"`
	OpenTickets  int          `json:"openTickets"`
}

func NewAgent(u User, openTickets int) Agent {
	skills := u.Skills
	if skills == nil {
		skills = []string{}
	}

	return Agent{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		Status:       u.Status,
		Availability: u.Availability,
		Skills:       skills,
		OpenTickets:  openTickets,
	}
}

// AccessProfile is what the signed-in user may see and do.
type AccessProfile struct {
	User                 User                `json:"user"`
	EffectivePermissions []string            `json:"effectivePermissions"`
	Apps                 []AppPermission     `json:"apps"`
	Features             []FeaturePermission `json:"features"`
}

type PermissionsOverview struct {
	Apps     []AppPermission     `json:"apps"`
	Features []FeaturePermission `json:"features"`
	Roles    map[Role][]string   `json:"roles"`
}
