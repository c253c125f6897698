package memory

import (
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/samandr77/microservices/callcenter/internal/entity"
)

// Store keeps every entity in process memory. Reads reflect prior writes for
// the lifetime of the process; everything is lost on restart.
type Store struct {
	mu sync.RWMutex

	organizations []entity.Organization
	users         []entity.User
	customers     []entity.Customer
	tickets       []entity.Ticket
	orders        []entity.Order
	calls         []entity.Call
	apps          []entity.Toggle
	features      []entity.Toggle

	states      map[string]entity.OAuthState
	connections map[connectionKey]entity.IntegrationConnection

	seq map[string]int64
	now func() time.Time
}

type connectionKey struct {
	organizationID string
	provider       string
}

// New returns an empty store.
func New() *Store {
	return &Store{
		states:      make(map[string]entity.OAuthState),
		connections: make(map[connectionKey]entity.IntegrationConnection),
		seq:         make(map[string]int64),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// NewSeeded returns a store filled with demo organizations, staff and CRM records.
func NewSeeded() *Store {
	s := New()
	s.seed(s.now())

	return s
}

func (s *Store) next(kind string) int64 {
	s.seq[kind]++
	return s.seq[kind]
}

func cloneUser(u entity.User) entity.User {
	u.Permissions = slices.Clone(u.Permissions)
	u.Skills = slices.Clone(u.Skills)
	u.Integrations = maps.Clone(u.Integrations)
	u.Settings = maps.Clone(u.Settings)

	return u
}

func cloneOrder(o entity.Order) entity.Order {
	o.Items = slices.Clone(o.Items)
	return o
}
