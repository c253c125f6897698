package service_test

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/callcenter/internal/entity"
	"github.com/samandr77/microservices/callcenter/internal/service"
)

func TestService_CreateCustomer(t *testing.T) {
	t.Parallel()

	s, d := newService(t)

	d.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e entity.Event) {
		require.Equal(t, entity.EventCustomerCreated, e.Type)
	})

	c, err := s.CreateCustomer(asBridge(), entity.Customer{Name: "Acme", AccountNumber: "A1"})
	require.NoError(t, err)
	require.Regexp(t, regexp.MustCompile(`^cust_\d+$`), c.ID)
	require.Equal(t, entity.CustomerTierBronze, c.Tier)
	require.Equal(t, entity.CustomerStatusActive, c.Status)
	require.Equal(t, "org_1", c.OrganizationID)

	_, err = s.CreateCustomer(asBridge(), entity.Customer{Name: "Acme"})
	require.ErrorIs(t, err, entity.ErrValidation)

	_, err = s.CreateCustomer(asBridge(), entity.Customer{AccountNumber: "A2"})
	require.ErrorIs(t, err, entity.ErrValidation)

	_, err = s.CreateCustomer(asBridge(), entity.Customer{Name: "Acme", AccountNumber: "A3", Tier: "diamond"})
	require.ErrorIs(t, err, entity.ErrValidation)

	_, err = s.CreateCustomer(context.Background(), entity.Customer{Name: "Acme", AccountNumber: "A4"})
	require.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestService_CreateCustomer_AccountNumber(t *testing.T) {
	t.Parallel()

	s, d := newService(t)
	d.allowEvents()

	for _, account := range []string{"ACC 001", "ACC/001", "A_1", strings.Repeat("7", 37), strings.Repeat("x", service.AccountNumberMaxLen)} {
		c, err := s.CreateCustomer(asBridge(), entity.Customer{Name: "Acme", AccountNumber: account})
		require.NoError(t, err, account)
		require.Equal(t, account, c.AccountNumber)
	}

	_, err := s.CreateCustomer(asBridge(), entity.Customer{Name: "Acme", AccountNumber: "   "})
	require.ErrorIs(t, err, entity.ErrValidation)

	_, err = s.CreateCustomer(asBridge(), entity.Customer{Name: "Acme", AccountNumber: strings.Repeat("x", service.AccountNumberMaxLen+1)})
	require.ErrorIs(t, err, entity.ErrValidation)
}

func TestService_Customers_OrganizationScoped(t *testing.T) {
	t.Parallel()

	s, d := newService(t)

	customers, page, err := s.Customers(asUser(t, d.store, "user_7"), entity.CustomerFilter{})
	require.NoError(t, err)
	require.Len(t, customers, 1)
	require.Equal(t, "cust_5", customers[0].ID)
	require.Equal(t, 1, page.Total)

	_, err = s.Customer(asUser(t, d.store, "user_7"), "cust_1")
	require.ErrorIs(t, err, entity.ErrNotFound)

	customers, page, err = s.Customers(asBridge(), entity.CustomerFilter{Page: entity.Page{Page: 2, Limit: 3}})
	require.NoError(t, err)
	require.Len(t, customers, 1)
	require.Equal(t, entity.Pagination{Page: 2, Limit: 3, Total: 4, TotalPages: 2}, page)

	_, _, err = s.Customers(asBridge(), entity.CustomerFilter{Tier: "diamond"})
	require.ErrorIs(t, err, entity.ErrValidation)
}

func TestService_UpdateCustomer(t *testing.T) {
	t.Parallel()

	s, d := newService(t)
	ctx := asUser(t, d.store, "user_4")

	tier := entity.CustomerTierPlatinum

	c, err := s.UpdateCustomer(ctx, "cust_2", entity.CustomerUpdate{Tier: &tier})
	require.NoError(t, err)
	require.Equal(t, entity.CustomerTierPlatinum, c.Tier)

	bad := "not-an-email"

	_, err = s.UpdateCustomer(ctx, "cust_2", entity.CustomerUpdate{Email: &bad})
	require.ErrorIs(t, err, entity.ErrValidation)

	require.NoError(t, s.DeleteCustomer(ctx, "cust_4"))
	require.ErrorIs(t, s.DeleteCustomer(ctx, "cust_4"), entity.ErrNotFound)
}

func TestService_Tickets_AgentSeesOwnQueue(t *testing.T) {
	t.Parallel()

	s, d := newService(t)

	tickets, _, err := s.Tickets(asUser(t, d.store, "user_5"), entity.TicketFilter{AssignedTo: "user_6"})
	require.NoError(t, err)
	require.Len(t, tickets, 2)

	for _, ticket := range tickets {
		require.Equal(t, "user_5", ticket.AssignedTo)
	}

	tickets, _, err = s.Tickets(asUser(t, d.store, "user_4"), entity.TicketFilter{AssignedTo: "user_6"})
	require.NoError(t, err)
	require.Len(t, tickets, 2)

	tickets, _, err = s.Tickets(asBridge(), entity.TicketFilter{})
	require.NoError(t, err)
	require.Len(t, tickets, 4)
}

func TestService_Ticket_AgentSeesOwnQueue(t *testing.T) {
	t.Parallel()

	s, d := newService(t)

	agent := asUser(t, d.store, "user_5")

	ticket, err := s.Ticket(agent, "ticket_1")
	require.NoError(t, err)
	require.Equal(t, "user_5", ticket.AssignedTo)

	_, err = s.Ticket(agent, "ticket_3")
	require.ErrorIs(t, err, entity.ErrNotFound)

	status := entity.TicketStatusClosed

	_, err = s.UpdateTicket(agent, "ticket_3", entity.TicketUpdate{Status: &status})
	require.ErrorIs(t, err, entity.ErrNotFound)

	require.ErrorIs(t, s.DeleteTicket(agent, "ticket_3"), entity.ErrNotFound)

	_, err = s.CreateTicket(agent, entity.Ticket{CustomerID: "cust_2", Subject: "Callback", AssignedTo: "user_6"})
	require.ErrorIs(t, err, entity.ErrForbidden)

	ticket, err = s.Ticket(asUser(t, d.store, "user_4"), "ticket_3")
	require.NoError(t, err)
	require.Equal(t, "user_6", ticket.AssignedTo)
	require.Equal(t, entity.TicketStatusOpen, ticket.Status)
}

func TestService_CreateAndUpdateTicket(t *testing.T) {
	t.Parallel()

	s, d := newService(t)
	d.allowEvents()

	agent := asUser(t, d.store, "user_5")

	ticket, err := s.CreateTicket(agent, entity.Ticket{CustomerID: "cust_2", Subject: "Refund request"})
	require.NoError(t, err)
	require.Equal(t, "ticket_6", ticket.ID)
	require.Equal(t, entity.TicketStatusOpen, ticket.Status)
	require.Equal(t, entity.TicketPriorityMedium, ticket.Priority)
	require.Equal(t, "user_5", ticket.AssignedTo)

	_, err = s.CreateTicket(agent, entity.Ticket{CustomerID: "cust_5", Subject: "Other tenant"})
	require.ErrorIs(t, err, entity.ErrValidation)

	_, err = s.CreateTicket(agent, entity.Ticket{CustomerID: "cust_2"})
	require.ErrorIs(t, err, entity.ErrValidation)

	other := "user_6"

	_, err = s.UpdateTicket(agent, ticket.ID, entity.TicketUpdate{AssignedTo: &other})
	require.ErrorIs(t, err, entity.ErrForbidden)

	ticket, err = s.UpdateTicket(asUser(t, d.store, "user_4"), ticket.ID, entity.TicketUpdate{AssignedTo: &other})
	require.NoError(t, err)
	require.Equal(t, "user_6", ticket.AssignedTo)

	stranger := "user_8"

	_, err = s.UpdateTicket(asUser(t, d.store, "user_4"), ticket.ID, entity.TicketUpdate{AssignedTo: &stranger})
	require.ErrorIs(t, err, entity.ErrValidation)

	status := entity.TicketStatusResolved

	ticket, err = s.UpdateTicket(asBridge(), ticket.ID, entity.TicketUpdate{Status: &status})
	require.NoError(t, err)
	require.Equal(t, entity.TicketStatusResolved, ticket.Status)
}

func TestService_CreateOrder(t *testing.T) {
	t.Parallel()

	s, d := newService(t)
	d.allowEvents()

	ctx := asUser(t, d.store, "user_2")

	order, err := s.CreateOrder(ctx, "cust_1", []entity.OrderItem{
		{SKU: "HS-100", Name: "Headset", Quantity: 3, UnitPrice: decimal.RequireFromString("19.99")},
		{SKU: "CBL", Name: "Cable", Quantity: 1, UnitPrice: decimal.RequireFromString("0.31")},
	})
	require.NoError(t, err)
	require.Equal(t, "order_4", order.ID)
	require.Equal(t, "60.28", order.Total.StringFixed(2))
	require.Equal(t, entity.OrderStatusPending, order.Status)

	_, err = s.CreateOrder(ctx, "cust_1", nil)
	require.ErrorIs(t, err, entity.ErrValidation)

	_, err = s.CreateOrder(ctx, "cust_1", []entity.OrderItem{{SKU: "X", Quantity: 0}})
	require.ErrorIs(t, err, entity.ErrValidation)

	paid := entity.OrderStatusPaid

	_, err = s.UpdateOrder(ctx, "order_3", entity.OrderUpdate{Status: &paid})
	require.ErrorIs(t, err, entity.ErrValidation)

	order, err = s.UpdateOrder(ctx, order.ID, entity.OrderUpdate{Status: &paid})
	require.NoError(t, err)
	require.Equal(t, entity.OrderStatusPaid, order.Status)
}

func TestService_CreateCall(t *testing.T) {
	t.Parallel()

	s, d := newService(t)

	d.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e entity.Event) {
		require.Equal(t, entity.EventCallCreated, e.Type)
	})

	call, err := s.CreateCall(asBridge(), entity.Call{PhoneNumber: "+15550100003"})
	require.NoError(t, err)
	require.Equal(t, "call_4", call.ID)
	require.Equal(t, "cust_3", call.CustomerID)
	require.Equal(t, entity.CallDirectionInbound, call.Direction)
	require.Equal(t, entity.CallStatusQueued, call.Status)
	require.Empty(t, call.AgentID)

	_, err = s.CreateCall(asBridge(), entity.Call{})
	require.ErrorIs(t, err, entity.ErrValidation)

	calls, page, err := s.Calls(asBridge(), entity.CallFilter{})
	require.NoError(t, err)
	require.Len(t, calls, 4)
	require.Equal(t, 4, page.Total)
}
