package entity

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

type EventType string

const (
	EventIntegrationConnected    EventType = "integration.connected"
	EventIntegrationDisconnected EventType = "integration.disconnected"
	EventCustomerCreated         EventType = "customer.created"
	EventTicketCreated           EventType = "ticket.created"
	EventTicketUpdated           EventType = "ticket.updated"
	EventTicketAssigned          EventType = "ticket.assigned"
	EventOrderCreated            EventType = "order.created"
	EventCallCreated             EventType = "call.created"
	EventCallReceived            EventType = "call.received"
	EventToggleChanged           EventType = "permission.toggled"
)

type Event struct {
	ID             string    `json:"id"`
	Type           EventType `json:"type"`
	OrganizationID string    `json:"organizationId"`
	OccurredAt     time.Time `json:"occurredAt"`
	Payload        any       `json:"payload"`
}

func NewEvent(typ EventType, orgID string, payload any) Event {
	now := time.Now().UTC()

	return Event{
		ID:             ulid.MustNew(ulid.Timestamp(now), rand.Reader).String(),
		Type:           typ,
		OrganizationID: orgID,
		OccurredAt:     now,
		Payload:        payload,
	}
}
