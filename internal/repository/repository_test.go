package repository_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/samandr77/microservices/callcenter/internal/entity"
	"github.com/samandr77/microservices/callcenter/internal/repository"
)

type RepositoryTestSuite struct {
	suite.Suite
	repo *repository.Repository
}

func (ts *RepositoryTestSuite) SetupTest() {
	ts.repo = repository.New(repository.SetupTestDatabase(ts.T()))
}

func TestRepositoryTestSuite(t *testing.T) { //nolint:paralleltest
	suite.Run(t, new(RepositoryTestSuite))
}

func (ts *RepositoryTestSuite) TestCustomerLifecycle() {
	ctx := context.Background()

	c, err := ts.repo.CreateCustomer(ctx, entity.Customer{
		OrganizationID: "org_1",
		Name:           "Acme",
		AccountNumber:  "A1",
		Phone:          "+15550001",
		Tier:           entity.CustomerTierBronze,
		Status:         entity.CustomerStatusActive,
	})
	ts.Require().NoError(err)
	ts.Require().Regexp(`^cust_\d+$`, c.ID)

	got, err := ts.repo.Customer(ctx, "org_1", c.ID)
	ts.Require().NoError(err)
	ts.Require().Equal(c.Name, got.Name)
	ts.Require().True(c.CreatedAt.Equal(got.CreatedAt))

	_, err = ts.repo.Customer(ctx, "org_2", c.ID)
	ts.Require().ErrorIs(err, entity.ErrNotFound)

	c.Tier = entity.CustomerTierGold
	_, err = ts.repo.UpdateCustomer(ctx, c)
	ts.Require().NoError(err)

	list, total, err := ts.repo.Customers(ctx, entity.CustomerFilter{OrganizationID: "org_1", Search: "acm"})
	ts.Require().NoError(err)
	ts.Require().Equal(1, total)
	ts.Require().Equal(entity.CustomerTierGold, list[0].Tier)

	ts.Require().NoError(ts.repo.DeleteCustomer(ctx, "org_1", c.ID))
	ts.Require().ErrorIs(ts.repo.DeleteCustomer(ctx, "org_1", c.ID), entity.ErrNotFound)
}

func (ts *RepositoryTestSuite) TestCustomersSearchIsLiteral() {
	ctx := context.Background()

	for i, name := range []string{"100% Juice", "1000 Juice", "snake_case", "snakeXcase"} {
		_, err := ts.repo.CreateCustomer(ctx, entity.Customer{
			OrganizationID: "org_1",
			Name:           name,
			AccountNumber:  "L" + strconv.Itoa(i),
		})
		ts.Require().NoError(err)
	}

	list, total, err := ts.repo.Customers(ctx, entity.CustomerFilter{OrganizationID: "org_1", Search: "100%"})
	ts.Require().NoError(err)
	ts.Require().Equal(1, total)
	ts.Require().Equal("100% Juice", list[0].Name)

	list, total, err = ts.repo.Customers(ctx, entity.CustomerFilter{OrganizationID: "org_1", Search: "e_c"})
	ts.Require().NoError(err)
	ts.Require().Equal(1, total)
	ts.Require().Equal("snake_case", list[0].Name)
}

func (ts *RepositoryTestSuite) TestCustomersPastLastPageKeepTotal() {
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		_, err := ts.repo.CreateCustomer(ctx, entity.Customer{OrganizationID: "org_1", Name: name, AccountNumber: name})
		ts.Require().NoError(err)
	}

	list, total, err := ts.repo.Customers(ctx, entity.CustomerFilter{OrganizationID: "org_1", Page: entity.Page{Page: 5, Limit: 2}})
	ts.Require().NoError(err)
	ts.Require().Empty(list)
	ts.Require().Equal(3, total)
}

func (ts *RepositoryTestSuite) TestTicketsAndOpenCounts() {
	ctx := context.Background()

	for _, status := range []entity.TicketStatus{entity.TicketStatusOpen, entity.TicketStatusInProgress, entity.TicketStatusClosed} {
		_, err := ts.repo.CreateTicket(ctx, entity.Ticket{
			OrganizationID: "org_1",
			CustomerID:     "cust_1",
			Subject:        "s",
			Status:         status,
			Priority:       entity.TicketPriorityMedium,
			AssignedTo:     "user_5",
		})
		ts.Require().NoError(err)
	}

	counts, err := ts.repo.OpenTicketCounts(ctx, "org_1")
	ts.Require().NoError(err)
	ts.Require().Equal(2, counts["user_5"])

	open, total, err := ts.repo.Tickets(ctx, entity.TicketFilter{OrganizationID: "org_1", OpenOnly: true})
	ts.Require().NoError(err)
	ts.Require().Equal(2, total)
	ts.Require().Len(open, 2)
}

func (ts *RepositoryTestSuite) TestOrderRoundTripAndRevenue() {
	ctx := context.Background()

	items := []entity.OrderItem{
		{SKU: "HS-100", Name: "Headset", Quantity: 3, UnitPrice: decimal.RequireFromString("10.10")},
	}

	o, err := ts.repo.CreateOrder(ctx, entity.Order{
		OrganizationID: "org_1",
		CustomerID:     "cust_1",
		Items:          items,
		Total:          entity.CalculateTotal(items),
		Status:         entity.OrderStatusPaid,
	})
	ts.Require().NoError(err)

	got, err := ts.repo.Order(ctx, "org_1", o.ID)
	ts.Require().NoError(err)
	ts.Require().Equal("30.30", got.Total.StringFixed(2))
	ts.Require().Len(got.Items, 1)
	ts.Require().True(items[0].UnitPrice.Equal(got.Items[0].UnitPrice))

	revenue, err := ts.repo.Revenue(ctx, "org_1")
	ts.Require().NoError(err)
	ts.Require().Equal("30.30", revenue.StringFixed(2))
}

func (ts *RepositoryTestSuite) TestCalls() {
	ctx := context.Background()

	c, err := ts.repo.CreateCall(ctx, entity.Call{
		OrganizationID: "org_1",
		PhoneNumber:    "+15550001",
		Direction:      entity.CallDirectionInbound,
		Status:         entity.CallStatusQueued,
	})
	ts.Require().NoError(err)
	ts.Require().Regexp(`^call_\d+$`, c.ID)

	calls, total, err := ts.repo.Calls(ctx, entity.CallFilter{OrganizationID: "org_1", Status: entity.CallStatusQueued})
	ts.Require().NoError(err)
	ts.Require().Equal(1, total)
	ts.Require().Equal(c.ID, calls[0].ID)
}
