package entity

import (
	"fmt"
	"time"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusSuspended:
		return true
	}

	return false
}

type Availability string

const (
	AvailabilityOnline  Availability = "online"
	AvailabilityBusy    Availability = "busy"
	AvailabilityOffline Availability = "offline"
)

func (a Availability) IsValid() bool {
	switch a {
	case AvailabilityOnline, AvailabilityBusy, AvailabilityOffline:
		return true
	}

	return false
}

type User struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Role           Role            `json:"role"`
	OrganizationID string          `json:"organizationId"`
	Permissions    []string        `json:"permissions"`
	Status         UserStatus      `json:"status"`
	Integrations   map[string]bool `json:"integrations"`
	Settings       map[string]any  `json:"settings"`
	Availability   Availability    `json:"availability"`
	Skills         []string        `json:"skills"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

func (u User) IsRoot() bool {
	return u.Role == RoleRoot
}

type UserFilter struct {
	OrganizationID string
	Role           Role
	Status         UserStatus
	Availability   Availability
	Skill          string
}

type UserUpdate struct {
	Name         *string       `json:"name"`
	Role         *Role         `json:"role"`
	Status       *UserStatus   `json:"status"`
	Permissions  []string      `json:"permissions"`
	Availability *Availability `json:"availability"`
	Skills       []string      `json:"skills"`
}

func UserID(n int64) string {
	return fmt.Sprintf("user_%d", n)
}

func (u UserUpdate) Apply(user *User) {
	if u.Name != nil {
		user.Name = *u.Name
	}

	if u.Role != nil {
		user.Role = *u.Role
	}

	if u.Status != nil {
		user.Status = *u.Status
	}

	if u.Permissions != nil {
		user.Permissions = u.Permissions
	}

	if u.Availability != nil {
		user.Availability = *u.Availability
	}

	if u.Skills != nil {
		user.Skills = u.Skills
	}
}
