package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samandr77/microservices/callcenter/internal/entity"
)

func (s *Service) Customers(ctx context.Context, f entity.CustomerFilter) ([]entity.Customer, entity.Pagination, error) {
	orgID, err := entity.OrganizationFromContext(ctx)
	if err != nil {
		return nil, entity.Pagination{}, err
	}

	if f.Tier != "" && !f.Tier.IsValid() {
		return nil, entity.Pagination{}, fmt.Errorf("%w: unknown tier %q", entity.ErrValidation, f.Tier)
	}

	if f.Status != "" && !f.Status.IsValid() {
		return nil, entity.Pagination{}, fmt.Errorf("%w: unknown status %q", entity.ErrValidation, f.Status)
	}

	f.OrganizationID = orgID
	f.Page = f.Page.Normalize()
	f.Search = strings.TrimSpace(f.Search)

	customers, total, err := s.crm.Customers(ctx, f)
	if err != nil {
		return nil, entity.Pagination{}, fmt.Errorf("get customers: %w", err)
	}

	return customers, entity.NewPagination(f.Page, total), nil
}

func (s *Service) Customer(ctx context.Context, id string) (entity.Customer, error) {
	orgID, err := entity.OrganizationFromContext(ctx)
	if err != nil {
		return entity.Customer{}, err
	}

	c, err := s.crm.Customer(ctx, orgID, id)
	if err != nil {
		return entity.Customer{}, fmt.Errorf("get customer %s: %w", id, err)
	}

	return c, nil
}

// CreateCustomer assigns the id; tier defaults to bronze and status to active.
func (s *Service) CreateCustomer(ctx context.Context, c entity.Customer) (entity.Customer, error) {
	orgID, err := entity.OrganizationFromContext(ctx)
	if err != nil {
		return entity.Customer{}, err
	}

	if c.Tier == "" {
		c.Tier = entity.CustomerTierBronze
	}

	if c.Status == "" {
		c.Status = entity.CustomerStatusActive
	}

	c.Name = strings.TrimSpace(c.Name)
	c.AccountNumber = strings.TrimSpace(c.AccountNumber)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))

	err = validateCustomer(c)
	if err != nil {
		return entity.Customer{}, err
	}

	now := s.now().UTC()
	c.ID = ""
	c.OrganizationID = orgID
	c.CreatedAt = now
	c.UpdatedAt = now

	c, err = s.crm.CreateCustomer(ctx, c)
	if err != nil {
		return entity.Customer{}, fmt.Errorf("create customer: %w", err)
	}

	slog.InfoContext(ctx, "customer created", "customer_id", c.ID)
	s.publish(ctx, entity.EventCustomerCreated, orgID, c)

	return c, nil
}

func (s *Service) UpdateCustomer(ctx context.Context, id string, upd entity.CustomerUpdate) (entity.Customer, error) {
	c, err := s.Customer(ctx, id)
	if err != nil {
		return entity.Customer{}, err
	}

	upd.Apply(&c)

	err = validateCustomer(c)
	if err != nil {
		return entity.Customer{}, err
	}

	c.UpdatedAt = s.now().UTC()

	c, err = s.crm.UpdateCustomer(ctx, c)
	if err != nil {
		return entity.Customer{}, fmt.Errorf("update customer %s: %w", id, err)
	}

	return c, nil
}

func (s *Service) DeleteCustomer(ctx context.Context, id string) error {
	orgID, err := entity.OrganizationFromContext(ctx)
	if err != nil {
		return err
	}

	err = s.crm.DeleteCustomer(ctx, orgID, id)
	if err != nil {
		return fmt.Errorf("delete customer %s: %w", id, err)
	}

	slog.InfoContext(ctx, "customer deleted", "customer_id", id)

	return nil
}

// Tickets lists tickets. A signed-in user without tickets.assign only sees
// tickets assigned to them.
func (s *Service) Tickets(ctx context.Context, f entity.TicketFilter) ([]entity.Ticket, entity.Pagination, error) {
	orgID, err := entity.OrganizationFromContext(ctx)
	if err != nil {
		return nil, entity.Pagination{}, err
	}

	if f.Status != "" && !f.Status.IsValid() {
		return nil, entity.Pagination{}, fmt.Errorf("%w: unknown status %q", entity.ErrValidation, f.Status)
	}

	if f.Priority != "" && !f.Priority.IsValid() {
		return nil, entity.Pagination{}, fmt.Errorf("%w: unknown priority %q", entity.ErrValidation, f.Priority)
	}

	if self, ok := ownQueue(ctx); ok {
		f.AssignedTo = self
	}

	f.OrganizationID = orgID
	f.Page = f.Page.Normalize()

	tickets, total, err := s.crm.Tickets(ctx, f)
	if err != nil {
		return nil, entity.Pagination{}, fmt.Errorf("get tickets: %w", err)
	}

	return tickets, entity.NewPagination(f.Page, total), nil
}

func (s *Service) Ticket(ctx context.Context, id string) (entity.Ticket, error) {
	orgID, err := entity.OrganizationFromContext(ctx)
	if err != nil {
		return entity.Ticket{}, err
	}

	t, err := s.crm.Ticket(ctx, orgID, id)
	if err != nil {
		return entity.Ticket{}, fmt.Errorf("get ticket %s: %w", id, err)
	}

	if self, ok := ownQueue(ctx); ok && t.AssignedTo != self {
		return entity.Ticket{}, fmt.Errorf("get ticket %s: %w", id, entity.ErrNotFound)
	}

	return t, nil
}

// ownQueue reports the caller's id when a signed-in user lacks tickets.assign
// and is limited to tickets assigned to them.
func ownQueue(ctx context.Context) (string, bool) {
	user, err := entity.UserFromContext(ctx)
	if err != nil || entity.HasPermission(user, entity.PermissionTicketsAssign) {
		return "", false
	}

	return user.ID, true
}

// CreateTicket opens a ticket for an existing customer. Status defaults to
// open and priority to medium. Users without tickets.assign open tickets in
// their own queue.
func (s *Service) CreateTicket(ctx context.Context, t entity.Ticket) (entity.Ticket, error) {
	orgID, err := entity.OrganizationFromContext(ctx)
	if err != nil {
		return entity.Ticket{}, err
	}

	if t.Status == "" {
		t.Status = entity.TicketStatusOpen
	}

	if t.Priority == "" {
		t.Priority = entity.TicketPriorityMedium
	}

	if self, ok := ownQueue(ctx); ok {
		if t.AssignedTo != "" && t.AssignedTo != self {
			return entity.Ticket{}, fmt.Errorf("assign new ticket: %w", entity.ErrForbidden)
		}

		t.AssignedTo = self
	}

	t.Subject = strings.TrimSpace(t.Subject)

	err = validateTicket(t)
	if err != nil {
		return entity.Ticket{}, err
	}

	err = s.customerExists(ctx, orgID, t.CustomerID)
	if err != nil {
		return entity.Ticket{}, err
	}

	if t.AssignedTo != "" {
		err = s.assigneeExists(ctx, orgID, t.AssignedTo)
		if err != nil {
			return entity.Ticket{}, err
		}
	}

	now := s.now().UTC()
	t.ID = ""
	t.OrganizationID = orgID
	t.CreatedAt = now
	t.UpdatedAt = now

	t, err = s.crm.CreateTicket(ctx, t)
	if err != nil {
		return entity.Ticket{}, fmt.Errorf("create ticket: %w", err)
	}

	slog.InfoContext(ctx, "ticket created", "ticket_id", t.ID, "priority", t.Priority)
	s.publish(ctx, entity.EventTicketCreated, orgID, t)

	return t, nil
}

// UpdateTicket applies a partial update. Reassigning requires tickets.assign
// when the caller is a signed-in user.
func (s *Service) UpdateTicket(ctx context.Context, id string, upd entity.TicketUpdate) (entity.Ticket, error) {
	t, err := s.Ticket(ctx, id)
	if err != nil {
		return entity.Ticket{}, err
	}

	if upd.AssignedTo != nil && *upd.AssignedTo != t.AssignedTo {
		if _, ok := ownQueue(ctx); ok {
			return entity.Ticket{}, fmt.Errorf("reassign ticket %s: %w", id, entity.ErrForbidden)
		}

		if *upd.AssignedTo != "" {
			err = s.assigneeExists(ctx, t.OrganizationID, *upd.AssignedTo)
			if err != nil {
				return entity.Ticket{}, err
			}
		}
	}

	upd.Apply(&t)

	err = validateTicket(t)
	if err != nil {
		return entity.Ticket{}, err
	}

	t.UpdatedAt = s.now().UTC()

	t, err = s.crm.UpdateTicket(ctx, t)
	if err != nil {
		return entity.Ticket{}, fmt.Errorf("update ticket %s: %w", id, err)
	}

	s.publish(ctx, entity.EventTicketUpdated, t.OrganizationID, t)

	return t, nil
}

func (s *Service) DeleteTicket(ctx context.Context, id string) error {
	orgID, err := entity.OrganizationFromContext(ctx)
	if err != nil {
		return err
	}

	if _, ok := ownQueue(ctx); ok {
		_, err = s.Ticket(ctx, id)
		if err != nil {
			return err
		}
	}

	err = s.crm.DeleteTicket(ctx, orgID, id)
	if err != nil {
		return fmt.Errorf("delete ticket %s: %w", id, err)
	}

	slog.InfoContext(ctx, "ticket deleted", "ticket_id", id)

	return nil
}

func (s *Service) Orders(ctx context.Context, f entity.OrderFilter) ([]entity.Order, entity.Pagination, error) {
	orgID, err := entity.OrganizationFromContext(ctx)
	if err != nil {
		return nil, entity.Pagination{}, err
	}

	if f.Status != "" && !f.Status.IsValid() {
		return nil, entity.Pagination{}, fmt.Errorf("%w: unknown status %q", entity.ErrValidation, f.Status)
	}

	f.OrganizationID = orgID
	f.Page = f.Page.Normalize()

	orders, total, err := s.crm.Orders(ctx, f)
	if err != nil {
		return nil, entity.Pagination{}, fmt.Errorf("get orders: %w", err)
	}

	return orders, entity.NewPagination(f.Page, total), nil
}

func (s *Service) Order(ctx context.Context, id string) (entity.Order, error) {
	orgID, err := entity.OrganizationFromContext(ctx)
	if err != nil {
		return entity.Order{}, err
	}

	o, err := s.crm.Order(ctx, orgID, id)
	if err != nil {
		return entity.Order{}, fmt.Errorf("get order %s: %w", id, err)
	}

	return o, nil
}

// CreateOrder computes the total from the items and starts the order as pending.
func (s *Service) CreateOrder(ctx context.Context, customerID string, items []entity.OrderItem) (entity.Order, error) {
	orgID, err := entity.OrganizationFromContext(ctx)
	if err != nil {
		return entity.Order{}, err
	}

	if customerID == "" {
		return entity.Order{}, fmt.Errorf("%w: customerId is required", entity.ErrValidation)
	}

	err = validateOrderItems(items)
	if err != nil {
		return entity.Order{}, err
	}

	err = s.customerExists(ctx, orgID, customerID)
	if err != nil {
		return entity.Order{}, err
	}

	now := s.now().UTC()

	o, err := s.crm.CreateOrder(ctx, entity.Order{
		OrganizationID: orgID,
		CustomerID:     customerID,
		Items:          items,
		Total:          entity.CalculateTotal(items),
		Status:         entity.OrderStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return entity.Order{}, fmt.Errorf("create order: %w", err)
	}

	slog.InfoContext(ctx, "order created", "order_id", o.ID, "total", o.Total.StringFixed(2))
	s.publish(ctx, entity.EventOrderCreated, orgID, o)

	return o, nil
}

func (s *Service) UpdateOrder(ctx context.Context, id string, upd entity.OrderUpdate) (entity.Order, error) {
	o, err := s.Order(ctx, id)
	if err != nil {
		return entity.Order{}, err
	}

	if upd.Status != nil {
		if !upd.Status.IsValid() {
			return entity.Order{}, fmt.Errorf("%w: unknown status %q", entity.ErrValidation, *upd.Status)
		}

		if o.Status == entity.OrderStatusCancelled && *upd.Status != entity.OrderStatusCancelled {
			return entity.Order{}, fmt.Errorf("%w: order %s is cancelled", entity.ErrValidation, id)
		}

		o.Status = *upd.Status
	}

	o.UpdatedAt = s.now().UTC()

	o, err = s.crm.UpdateOrder(ctx, o)
	if err != nil {
		return entity.Order{}, fmt.Errorf("update order %s: %w", id, err)
	}

	return o, nil
}

func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	orgID, err := entity.OrganizationFromContext(ctx)
	if err != nil {
		return err
	}

	err = s.crm.DeleteOrder(ctx, orgID, id)
	if err != nil {
		return fmt.Errorf("delete order %s: %w", id, err)
	}

	slog.InfoContext(ctx, "order deleted", "order_id", id)

	return nil
}

func (s *Service) Calls(ctx context.Context, f entity.CallFilter) ([]entity.Call, entity.Pagination, error) {
	orgID, err := entity.OrganizationFromContext(ctx)
	if err != nil {
		return nil, entity.Pagination{}, err
	}

	if f.Status != "" && !f.Status.IsValid() {
		return nil, entity.Pagination{}, fmt.Errorf("%w: unknown status %q", entity.ErrValidation, f.Status)
	}

	f.OrganizationID = orgID
	f.Page = f.Page.Normalize()

	calls, total, err := s.crm.Calls(ctx, f)
	if err != nil {
		return nil, entity.Pagination{}, fmt.Errorf("get calls: %w", err)
	}

	return calls, entity.NewPagination(f.Page, total), nil
}

// CreateCall logs a call. The customer is resolved by phone number when no id
// is given; a signed-in agent becomes the handling agent by default.
func (s *Service) CreateCall(ctx context.Context, c entity.Call) (entity.Call, error) {
	orgID, err := entity.OrganizationFromContext(ctx)
	if err != nil {
		return entity.Call{}, err
	}

	if c.Direction == "" {
		c.Direction = entity.CallDirectionInbound
	}

	if c.Status == "" {
		c.Status = entity.CallStatusQueued
	}

	c.PhoneNumber = strings.TrimSpace(c.PhoneNumber)

	err = validateCall(c)
	if err != nil {
		return entity.Call{}, err
	}

	if c.CustomerID == "" {
		customer, found, err := s.customerByPhone(ctx, orgID, c.PhoneNumber)
		if err != nil {
			return entity.Call{}, err
		}

		if found {
			c.CustomerID = customer.ID
		}
	}

	if user, err := entity.UserFromContext(ctx); err == nil && c.AgentID == "" {
		c.AgentID = user.ID
	}

	c.ID = ""
	c.OrganizationID = orgID
	c.CreatedAt = s.now().UTC()

	c, err = s.crm.CreateCall(ctx, c)
	if err != nil {
		return entity.Call{}, fmt.Errorf("create call: %w", err)
	}

	slog.InfoContext(ctx, "call logged", "call_id", c.ID, "direction", c.Direction)
	s.publish(ctx, entity.EventCallCreated, orgID, c)

	return c, nil
}

func (s *Service) customerExists(ctx context.Context, orgID, id string) error {
	_, err := s.crm.Customer(ctx, orgID, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return fmt.Errorf("%w: unknown customer %s", entity.ErrValidation, id)
		}

		return fmt.Errorf("get customer %s: %w", id, err)
	}

	return nil
}

func (s *Service) assigneeExists(ctx context.Context, orgID, userID string) error {
	user, err := s.store.User(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return fmt.Errorf("%w: unknown assignee %s", entity.ErrValidation, userID)
		}

		return fmt.Errorf("get user %s: %w", userID, err)
	}

	if user.OrganizationID != orgID {
		return fmt.Errorf("%w: unknown assignee %s", entity.ErrValidation, userID)
	}

	return nil
}

func (s *Service) customerByPhone(ctx context.Context, orgID, phone string) (entity.Customer, bool, error) {
	customers, _, err := s.crm.Customers(ctx, entity.CustomerFilter{
		OrganizationID: orgID,
		Phone:          phone,
		Page:           entity.Page{Page: 1, Limit: 1},
	})
	if err != nil {
		return entity.Customer{}, false, fmt.Errorf("find customer by phone: %w", err)
	}

	if len(customers) == 0 {
		return entity.Customer{}, false, nil
	}

	return customers[0], true, nil
}
