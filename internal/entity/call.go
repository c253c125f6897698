package entity

import (
	"fmt"
	"time"
)

type CallDirection string

const (
	CallDirectionInbound  CallDirection = "inbound"
	CallDirectionOutbound CallDirection = "outbound"
)

func (d CallDirection) IsValid() bool {
	return d == CallDirectionInbound || d == CallDirectionOutbound
}

type CallStatus string

const (
	CallStatusQueued     CallStatus = "queued"
	CallStatusInProgress CallStatus = "in_progress"
	CallStatusCompleted  CallStatus = "completed"
	CallStatusMissed     CallStatus = "missed"
)

func (s CallStatus) IsValid() bool {
	switch s {
	case CallStatusQueued, CallStatusInProgress, CallStatusCompleted, CallStatusMissed:
		return true
	}

	return false
}

type Call struct {
	ID              string        `json:"id"`
	OrganizationID  string        `json:"organizationId"`
	CustomerID      string        `json:"customerId"`
	AgentID         string        `json:"agentId"`
	PhoneNumber     string        `json:"phoneNumber"`
	Direction       CallDirection `json:"direction"`
	Status          CallStatus    `json:"status"`
	DurationSeconds int           `json:"durationSeconds"`
	Notes           string        `json:"notes"`
	CreatedAt       time.Time     `json:"createdAt"`
}

type CallFilter struct {
	OrganizationID string
	AgentID        string
	CustomerID     string
	Status         CallStatus
	Page           Page
}

func CallID(n int64) string {
	return fmt.Sprintf("call_%d", n)
}

// CallRouting is the decision returned to the automation agent for an incoming call.
type CallRouting struct {
	CallID               string         `json:"callId"`
	CustomerID           string         `json:"customerId,omitempty"`
	AssignedAgent        string         `json:"assignedAgent,omitempty"`
	Queue                string         `json:"queue"`
	Priority             TicketPriority `json:"priority"`
	EstimatedWaitSeconds int            `json:"estimatedWaitSeconds"`
}

type TicketAssignment struct {
	TicketID   string `json:"ticketId"`
	AssignedTo string `json:"assignedTo,omitempty"`
	SLAHours   int    `json:"slaHours"`
	Escalate   bool   `json:"escalate"`
}

// IncomingCall is the call-received webhook payload.
type IncomingCall struct {
	CallID      string         `json:"callId"`
	PhoneNumber string         `json:"phoneNumber"`
	CustomerID  string         `json:"customerId"`
	Priority    TicketPriority `json:"priority"`
	Skill       string         `json:"skill"`
}

// TicketNotice is the ticket-created webhook payload.
type TicketNotice struct {
	TicketID   string         `json:"ticketId"`
	CustomerID string         `json:"customerId"`
	Subject    string         `json:"subject"`
	Priority   TicketPriority `json:"priority"`
	AssignedTo string         `json:"assignedTo"`
	Skill      string         `json:"skill"`
}
