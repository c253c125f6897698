package entity

import (
	"fmt"
	"time"
)

type OrganizationStatus string

const (
	OrganizationStatusActive    OrganizationStatus = "active"
	OrganizationStatusSuspended OrganizationStatus = "suspended"
)

type Organization struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Domain     string             `json:"domain"`
	Tier       string             `json:"tier"`
	Settings   map[string]any     `json:"settings"`
	Status     OrganizationStatus `json:"status"`
	RootUserID string             `json:"rootUserId"`
	CreatedAt  time.Time          `json:"createdAt"`
}

func OrganizationID(n int64) string {
	return fmt.Sprintf("org_%d", n)
}
