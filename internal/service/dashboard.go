package service

import (
	"context"
	"fmt"

	"github.com/samandr77/microservices/callcenter/internal/entity"
)

const recentCallsLimit = 10

// Dashboard is shaped by role: organization totals for root, manager and
// admin; team load for supervisors; own queue for agents.
func (s *Service) Dashboard(ctx context.Context) (entity.Dashboard, error) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.Dashboard{}, err
	}

	switch user.Role {
	case entity.RoleRoot, entity.RoleManager, entity.RoleAdmin:
		summary, err := s.organizationSummary(ctx, user.OrganizationID)
		if err != nil {
			return entity.Dashboard{}, err
		}

		return entity.Dashboard{Scope: entity.DashboardScopeOrganization, Organization: &summary}, nil
	case entity.RoleSupervisor:
		team, err := s.agents(ctx, user.OrganizationID, entity.UserFilter{})
		if err != nil {
			return entity.Dashboard{}, err
		}

		return entity.Dashboard{Scope: entity.DashboardScopeTeam, Team: team}, nil
	default:
		return s.agentDashboard(ctx, user)
	}
}

func (s *Service) organizationSummary(ctx context.Context, orgID string) (entity.OrganizationSummary, error) {
	one := entity.Page{Page: 1, Limit: 1}

	_, customers, err := s.crm.Customers(ctx, entity.CustomerFilter{OrganizationID: orgID, Page: one})
	if err != nil {
		return entity.OrganizationSummary{}, fmt.Errorf("count customers: %w", err)
	}

	_, openTickets, err := s.crm.Tickets(ctx, entity.TicketFilter{OrganizationID: orgID, OpenOnly: true, Page: one})
	if err != nil {
		return entity.OrganizationSummary{}, fmt.Errorf("count open tickets: %w", err)
	}

	_, calls, err := s.crm.Calls(ctx, entity.CallFilter{OrganizationID: orgID, Page: one})
	if err != nil {
		return entity.OrganizationSummary{}, fmt.Errorf("count calls: %w", err)
	}

	revenue, err := s.crm.Revenue(ctx, orgID)
	if err != nil {
		return entity.OrganizationSummary{}, fmt.Errorf("get revenue: %w", err)
	}

	users, err := s.store.Users(ctx, entity.UserFilter{OrganizationID: orgID})
	if err != nil {
		return entity.OrganizationSummary{}, fmt.Errorf("get users: %w", err)
	}

	return entity.OrganizationSummary{
		Customers:   customers,
		OpenTickets: openTickets,
		Revenue:     revenue,
		Calls:       calls,
		Users:       len(users),
	}, nil
}

func (s *Service) agentDashboard(ctx context.Context, user entity.User) (entity.Dashboard, error) {
	queue, _, err := s.crm.Tickets(ctx, entity.TicketFilter{
		OrganizationID: user.OrganizationID,
		AssignedTo:     user.ID,
		OpenOnly:       true,
		Page:           entity.Page{Page: 1, Limit: entity.MaxPageLimit},
	})
	if err != nil {
		return entity.Dashboard{}, fmt.Errorf("get own tickets: %w", err)
	}

	calls, _, err := s.crm.Calls(ctx, entity.CallFilter{
		OrganizationID: user.OrganizationID,
		AgentID:        user.ID,
		Page:           entity.Page{Page: 1, Limit: recentCallsLimit},
	})
	if err != nil {
		return entity.Dashboard{}, fmt.Errorf("get own calls: %w", err)
	}

	return entity.Dashboard{Scope: entity.DashboardScopeAgent, Queue: queue, Calls: calls}, nil
}
