package memory

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/callcenter/internal/entity"
)

func (s *Store) CreateCustomer(_ context.Context, c entity.Customer) (entity.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = entity.CustomerID(s.next("customer"))
	c.CreatedAt = s.now()
	c.UpdatedAt = c.CreatedAt
	s.customers = append(s.customers, c)

	return c, nil
}

func (s *Store) Customer(_ context.Context, orgID, id string) (entity.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.customers {
		if c.ID == id && c.OrganizationID == orgID {
			return c, nil
		}
	}

	return entity.Customer{}, entity.ErrNotFound
}

func (s *Store) Customers(_ context.Context, f entity.CustomerFilter) ([]entity.Customer, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(f.Search)
	matched := make([]entity.Customer, 0)

	for _, c := range s.customers {
		if c.OrganizationID != f.OrganizationID {
			continue
		}

		if f.Tier != "" && c.Tier != f.Tier {
			continue
		}

		if f.Status != "" && c.Status != f.Status {
			continue
		}

		if f.Phone != "" && c.Phone != f.Phone {
			continue
		}

		if search != "" && !customerMatches(c, search) {
			continue
		}

		matched = append(matched, c)
	}

	return entity.Paginate(matched, f.Page), len(matched), nil
}

func customerMatches(c entity.Customer, search string) bool {
	for _, field := range []string{c.Name, c.Email, c.AccountNumber, c.Company, c.Phone} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}

	return false
}

func (s *Store) UpdateCustomer(_ context.Context, c entity.Customer) (entity.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == c.ID && s.customers[i].OrganizationID == c.OrganizationID {
			c.UpdatedAt = s.now()
			s.customers[i] = c

			return c, nil
		}
	}

	return entity.Customer{}, entity.ErrNotFound
}

func (s *Store) DeleteCustomer(_ context.Context, orgID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == id && s.customers[i].OrganizationID == orgID {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			return nil
		}
	}

	return entity.ErrNotFound
}

func (s *Store) CreateTicket(_ context.Context, t entity.Ticket) (entity.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = entity.TicketID(s.next("ticket"))
	t.CreatedAt = s.now()
	t.UpdatedAt = t.CreatedAt
	s.tickets = append(s.tickets, t)

	return t, nil
}

func (s *Store) Ticket(_ context.Context, orgID, id string) (entity.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tickets {
		if t.ID == id && t.OrganizationID == orgID {
			return t, nil
		}
	}

	return entity.Ticket{}, entity.ErrNotFound
}

func (s *Store) Tickets(_ context.Context, f entity.TicketFilter) ([]entity.Ticket, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]entity.Ticket, 0)

	for _, t := range s.tickets {
		if t.OrganizationID != f.OrganizationID {
			continue
		}

		if f.Status != "" && t.Status != f.Status {
			continue
		}

		if f.OpenOnly && !t.Status.IsOpen() {
			continue
		}

		if f.Priority != "" && t.Priority != f.Priority {
			continue
		}

		if f.AssignedTo != "" && t.AssignedTo != f.AssignedTo {
			continue
		}

		if f.CustomerID != "" && t.CustomerID != f.CustomerID {
			continue
		}

		matched = append(matched, t)
	}

	return entity.Paginate(matched, f.Page), len(matched), nil
}

func (s *Store) UpdateTicket(_ context.Context, t entity.Ticket) (entity.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tickets {
		if s.tickets[i].ID == t.ID && s.tickets[i].OrganizationID == t.OrganizationID {
			t.UpdatedAt = s.now()
			s.tickets[i] = t

			return t, nil
		}
	}

	return entity.Ticket{}, entity.ErrNotFound
}

func (s *Store) DeleteTicket(_ context.Context, orgID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tickets {
		if s.tickets[i].ID == id && s.tickets[i].OrganizationID == orgID {
			s.tickets = append(s.tickets[:i], s.tickets[i+1:]...)
			return nil
		}
	}

	return entity.ErrNotFound
}

// OpenTicketCounts maps assignee id to the number of open or in-progress tickets.
func (s *Store) OpenTicketCounts(_ context.Context, orgID string) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)

	for _, t := range s.tickets {
		if t.OrganizationID == orgID && t.AssignedTo != "" && t.Status.IsOpen() {
			counts[t.AssignedTo]++
		}
	}

	return counts, nil
}

func (s *Store) CreateOrder(_ context.Context, o entity.Order) (entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o.ID = entity.OrderID(s.next("order"))
	o.CreatedAt = s.now()
	o.UpdatedAt = o.CreatedAt
	s.orders = append(s.orders, cloneOrder(o))

	return o, nil
}

func (s *Store) Order(_ context.Context, orgID, id string) (entity.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id && o.OrganizationID == orgID {
			return cloneOrder(o), nil
		}
	}

	return entity.Order{}, entity.ErrNotFound
}

func (s *Store) Orders(_ context.Context, f entity.OrderFilter) ([]entity.Order, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]entity.Order, 0)

	for _, o := range s.orders {
		if o.OrganizationID != f.OrganizationID {
			continue
		}

		if f.CustomerID != "" && o.CustomerID != f.CustomerID {
			continue
		}

		if f.Status != "" && o.Status != f.Status {
			continue
		}

		matched = append(matched, cloneOrder(o))
	}

	return entity.Paginate(matched, f.Page), len(matched), nil
}

func (s *Store) UpdateOrder(_ context.Context, o entity.Order) (entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == o.ID && s.orders[i].OrganizationID == o.OrganizationID {
			o.UpdatedAt = s.now()
			s.orders[i] = cloneOrder(o)

			return o, nil
		}
	}

	return entity.Order{}, entity.ErrNotFound
}

func (s *Store) DeleteOrder(_ context.Context, orgID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id && s.orders[i].OrganizationID == orgID {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return nil
		}
	}

	return entity.ErrNotFound
}

// Revenue sums the totals of all orders that were not cancelled.
func (s *Store) Revenue(_ context.Context, orgID string) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero

	for _, o := range s.orders {
		if o.OrganizationID == orgID && o.Status != entity.OrderStatusCancelled {
			total = total.Add(o.Total)
		}
	}

	return total, nil
}

func (s *Store) CreateCall(_ context.Context, c entity.Call) (entity.Call, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = entity.CallID(s.next("call"))
	c.CreatedAt = s.now()
	s.calls = append(s.calls, c)

	return c, nil
}

func (s *Store) Calls(_ context.Context, f entity.CallFilter) ([]entity.Call, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]entity.Call, 0)

	for _, c := range s.calls {
		if c.OrganizationID != f.OrganizationID {
			continue
		}

		if f.AgentID != "" && c.AgentID != f.AgentID {
			continue
		}

		if f.CustomerID != "" && c.CustomerID != f.CustomerID {
			continue
		}

		if f.Status != "" && c.Status != f.Status {
			continue
		}

		matched = append(matched, c)
	}

	return entity.Paginate(matched, f.Page), len(matched), nil
}
