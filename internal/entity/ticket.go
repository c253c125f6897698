package entity

import (
	"fmt"
	"time"
)

type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	}

	return false
}

// IsOpen reports whether the ticket still needs work.
func (s TicketStatus) IsOpen() bool {
	return s == TicketStatusOpen || s == TicketStatusInProgress
}

type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

var slaHours = map[TicketPriority]int{
	TicketPriorityUrgent: 1,
	TicketPriorityHigh:   4,
	TicketPriorityMedium: 24,
	TicketPriorityLow:    72,
}

func (p TicketPriority) IsValid() bool {
	_, ok := slaHours[p]
	return ok
}

// SLAHours is the response deadline for the priority. Unknown priorities get the medium SLA.
func (p TicketPriority) SLAHours() int {
	if h, ok := slaHours[p]; ok {
		return h
	}

	return slaHours[TicketPriorityMedium]
}

type Ticket struct {
	ID             string         `json:"id"`
	OrganizationID string         `json:"organizationId"`
	CustomerID     string         `json:"customerId"`
	Subject        string         `json:"subject"`
	Description    string         `json:"description"`
	Status         TicketStatus   `json:"status"`
	Priority       TicketPriority `json:"priority"`
	AssignedTo     string         `json:"assignedTo"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

type TicketFilter struct {
	OrganizationID string
	Status         TicketStatus
	Priority       TicketPriority
	AssignedTo     string
	CustomerID     string
	OpenOnly       bool
	Page           Page
}

type TicketUpdate struct {
	Subject     *string         `json:"subject"`
	Description *string         `json:"description"`
	Status      *TicketStatus   `json:"status"`
	Priority    *TicketPriority `json:"priority"`
	AssignedTo  *string         `json:"assignedTo"`
}

func (u TicketUpdate) Apply(t *Ticket) {
	if u.Subject != nil {
		t.Subject = *u.Subject
	}

	if u.Description != nil {
		t.Description = *u.Description
	}

	if u.Status != nil {
		t.Status = *u.Status
	}

	if u.Priority != nil {
		t.Priority = *u.Priority
	}

	if u.AssignedTo != nil {
		t.AssignedTo = *u.AssignedTo
	}
}

func TicketID(n int64) string {
	return fmt.Sprintf("ticket_%d", n)
}
