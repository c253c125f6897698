package entity

import (
	"fmt"
	"time"
)

type CustomerTier string

const (
	CustomerTierBronze   CustomerTier = "bronze"
	CustomerTierSilver   CustomerTier = "silver"
	CustomerTierGold     CustomerTier = "gold"
	CustomerTierPlatinum CustomerTier = "platinum"
)

func (t CustomerTier) IsValid() bool {
	switch t {
	case CustomerTierBronze, CustomerTierSilver, CustomerTierGold, CustomerTierPlatinum:
		return true
	}

	return false
}

type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
)

func (s CustomerStatus) IsValid() bool {
	return s == CustomerStatusActive || s == CustomerStatusInactive
}

type Customer struct {
	ID             string         `json:"id"`
	OrganizationID string         `json:"organizationId"`
	Name           string         `json:"name"`
	AccountNumber  string         `json:"accountNumber"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	Company        string         `json:"company"`
	Tier           CustomerTier   `json:"tier"`
	Status         CustomerStatus `json:"status"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

type CustomerFilter struct {
	OrganizationID string
	Search         string
	Tier           CustomerTier
	Status         CustomerStatus
	Phone          string
	Page           Page
}

type CustomerUpdate struct {
	Name    *string         `json:"name"`
	Email   *string         `json:"email"`
	Phone   *string         `json:"phone"`
	Company *string         `json:"company"`
	Tier    *CustomerTier   `json:"tier"`
	Status  *CustomerStatus `json:"status"`
}

func (u CustomerUpdate) Apply(c *Customer) {
	if u.Name != nil {
		c.Name = *u.Name
	}

	if u.Email != nil {
		c.Email = *u.Email
	}

	if u.Phone != nil {
		c.Phone = *u.Phone
	}

	if u.Company != nil {
		c.Company = *u.Company
	}

	if u.Tier != nil {
		c.Tier = *u.Tier
	}

	if u.Status != nil {
		c.Status = *u.Status
	}
}

func CustomerID(n int64) string {
	return fmt.Sprintf("cust_%d", n)
}
