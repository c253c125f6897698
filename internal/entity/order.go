package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusCancelled:
		return true
	}

	return false
}

type OrderItem struct {
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice" swaggertype:"string"`
}

type Order struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organizationId"`
	CustomerID     string          `json:"customerId"`
	Items          []OrderItem     `json:"items"`
	Total          decimal.Decimal `json:"total" swaggertype:"string"`
	Status         OrderStatus     `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// CalculateTotal sums quantity*unitPrice over items.
func CalculateTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero

	for _, item := range items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return total.Round(2)
}

type OrderFilter struct {
	OrganizationID string
	CustomerID     string
	Status         OrderStatus
	Page           Page
}

type OrderUpdate struct {
	Status *OrderStatus `json:"status"`
}

func OrderID(n int64) string {
	return fmt.Sprintf("order_%d", n)
}
