package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/oklog/ulid/v2"

	"github.com/samandr77/microservices/callcenter/internal/entity"
)

const (
	QueueDirect   = "direct"
	QueuePriority = "priority"
	QueueGeneral  = "general"

	WebhookCallReceived  = "call-received"
	WebhookTicketCreated = "ticket-created"
)

// estimated wait for a queued call, by priority
var queueWaitSeconds = map[entity.TicketPriority]int{
	entity.TicketPriorityUrgent: 30,
	entity.TicketPriorityHigh:   60,
	entity.TicketPriorityMedium: 180,
	entity.TicketPriorityLow:    300,
}

// Agents lists the agents and supervisors of the organization with their
// current open ticket count.
func (s *Service) Agents(ctx context.Context, f entity.UserFilter) ([]entity.Agent, error) {
	orgID, err := entity.OrganizationFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if f.Availability != "" && !f.Availability.IsValid() {
		return nil, fmt.Errorf("%w: unknown availability %q", entity.ErrValidation, f.Availability)
	}

	if f.Status != "" && !f.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", entity.ErrValidation, f.Status)
	}

	return s.agents(ctx, orgID, f)
}

func (s *Service) agents(ctx context.Context, orgID string, f entity.UserFilter) ([]entity.Agent, error) {
	f.OrganizationID = orgID

	users, err := s.store.Users(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}

	load, err := s.crm.OpenTicketCounts(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("get open ticket counts: %w", err)
	}

	out := make([]entity.Agent, 0, len(users))

	for _, u := range users {
		if u.Role != entity.RoleAgent && u.Role != entity.RoleSupervisor {
			continue
		}

		out = append(out, entity.NewAgent(u, load[u.ID]))
	}

	return out, nil
}

// pickAgent returns the active online agent with the fewest open tickets,
// preferring those with skill. Ties go to the lowest id.
func (s *Service) pickAgent(ctx context.Context, orgID, skill string) (entity.Agent, bool, error) {
	agents, err := s.agents(ctx, orgID, entity.UserFilter{
		Role:         entity.RoleAgent,
		Status:       entity.UserStatusActive,
		Availability: entity.AvailabilityOnline,
	})
	if err != nil {
		return entity.Agent{}, false, err
	}

	if len(agents) == 0 {
		return entity.Agent{}, false, nil
	}

	if skill != "" {
		skilled := slices.DeleteFunc(slices.Clone(agents), func(a entity.Agent) bool {
			return !slices.Contains(a.Skills, skill)
		})

		if len(skilled) > 0 {
			agents = skilled
		}
	}

	best := slices.MinFunc(agents, func(a, b entity.Agent) int {
		return cmp.Or(cmp.Compare(a.OpenTickets, b.OpenTickets), cmp.Compare(a.ID, b.ID))
	})

	return best, true, nil
}

// RouteCall decides where an incoming call goes. Nothing is stored.
func (s *Service) RouteCall(ctx context.Context, in entity.IncomingCall) (entity.CallRouting, error) {
	s.metrics.Webhook(WebhookCallReceived)

	orgID, err := entity.OrganizationFromContext(ctx)
	if err != nil {
		return entity.CallRouting{}, err
	}

	if in.PhoneNumber == "" && in.CustomerID == "" {
		return entity.CallRouting{}, fmt.Errorf("%w: phoneNumber or customerId is required", entity.ErrValidation)
	}

	slog.InfoContext(ctx, "call received", "call_id", in.CallID, "customer_id", in.CustomerID)

	customer, found, err := s.resolveCustomer(ctx, orgID, in.CustomerID, in.PhoneNumber)
	if err != nil {
		return entity.CallRouting{}, err
	}

	routing := entity.CallRouting{
		CallID:   in.CallID,
		Priority: callPriority(in.Priority, customer, found),
	}

	if routing.CallID == "" {
		routing.CallID = "call_" + ulid.Make().String()
	}

	if found {
		routing.CustomerID = customer.ID
	}

	agent, ok, err := s.pickAgent(ctx, orgID, in.Skill)
	if err != nil {
		return entity.CallRouting{}, err
	}

	switch {
	case ok:
		routing.AssignedAgent = agent.ID
		routing.Queue = QueueDirect
	case routing.Priority == entity.TicketPriorityHigh || routing.Priority == entity.TicketPriorityUrgent:
		routing.Queue = QueuePriority
		routing.EstimatedWaitSeconds = queueWaitSeconds[routing.Priority]
	default:
		routing.Queue = QueueGeneral
		routing.EstimatedWaitSeconds = queueWaitSeconds[routing.Priority]
	}

	slog.InfoContext(ctx, "call routed", "call_id", routing.CallID, "queue", routing.Queue, "agent", routing.AssignedAgent)
	s.publish(ctx, entity.EventCallReceived, orgID, routing)

	return routing, nil
}

// callPriority takes the requested priority, else derives it from the customer tier.
func callPriority(requested entity.TicketPriority, c entity.Customer, found bool) entity.TicketPriority {
	if requested.IsValid() {
		return requested
	}

	if found && (c.Tier == entity.CustomerTierPlatinum || c.Tier == entity.CustomerTierGold) {
		return entity.TicketPriorityHigh
	}

	return entity.TicketPriorityMedium
}

// AssignTicket answers the ticket-created webhook with an owner and an SLA.
// Nothing is stored; the owner is e-mailed when a mailer is configured.
func (s *Service) AssignTicket(ctx context.Context, in entity.TicketNotice) (entity.TicketAssignment, error) {
	s.metrics.Webhook(WebhookTicketCreated)

	orgID, err := entity.OrganizationFromContext(ctx)
	if err != nil {
		return entity.TicketAssignment{}, err
	}

	if in.TicketID == "" {
		return entity.TicketAssignment{}, fmt.Errorf("%w: ticketId is required", entity.ErrValidation)
	}

	priority := in.Priority
	if !priority.IsValid() {
		priority = entity.TicketPriorityMedium
	}

	slog.InfoContext(ctx, "ticket created webhook", "ticket_id", in.TicketID, "priority", priority)

	customer, found, err := s.resolveCustomer(ctx, orgID, in.CustomerID, "")
	if err != nil {
		return entity.TicketAssignment{}, err
	}

	assignment := entity.TicketAssignment{
		TicketID:   in.TicketID,
		AssignedTo: in.AssignedTo,
		SLAHours:   priority.SLAHours(),
		Escalate:   priority == entity.TicketPriorityUrgent || (priority == entity.TicketPriorityHigh && found && customer.Tier == entity.CustomerTierPlatinum),
	}

	if assignment.AssignedTo == "" {
		agent, ok, err := s.pickAgent(ctx, orgID, in.Skill)
		if err != nil {
			return entity.TicketAssignment{}, err
		}

		if ok {
			assignment.AssignedTo = agent.ID
		}
	}

	if assignment.AssignedTo != "" {
		s.notifyAssignee(ctx, orgID, assignment, in.Subject)
	}

	s.publish(ctx, entity.EventTicketAssigned, orgID, assignment)

	return assignment, nil
}

func (s *Service) notifyAssignee(ctx context.Context, orgID string, a entity.TicketAssignment, subject string) {
	user, err := s.store.User(ctx, a.AssignedTo)
	if err != nil || user.OrganizationID != orgID || user.Email == "" {
		slog.WarnContext(ctx, "ticket assignee not notified", "assignee", a.AssignedTo, "error", err)
		return
	}

	message := fmt.Sprintf("Ticket %s has been assigned to you.\nSubject: %s\nRespond within %d hour(s).", a.TicketID, subject, a.SLAHours)
	if a.Escalate {
		message += "\nThis ticket is escalated."
	}

	err = s.notifier.SendMessage(fmt.Sprintf("Ticket %s assigned", a.TicketID), message, []string{user.Email})
	if err != nil {
		slog.ErrorContext(ctx, "send assignment e-mail", "error", err, "assignee", a.AssignedTo)
	}
}

// resolveCustomer looks a customer up by id, then by phone. An unknown
// customer is not an error.
func (s *Service) resolveCustomer(ctx context.Context, orgID, id, phone string) (entity.Customer, bool, error) {
	if id != "" {
		c, err := s.crm.Customer(ctx, orgID, id)
		if err == nil {
			return c, true, nil
		}

		if !errors.Is(err, entity.ErrNotFound) {
			return entity.Customer{}, false, fmt.Errorf("get customer %s: %w", id, err)
		}
	}

	if phone != "" {
		return s.customerByPhone(ctx, orgID, phone)
	}

	return entity.Customer{}, false, nil
}
