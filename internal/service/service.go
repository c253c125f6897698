package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/callcenter/internal/clients/oauth"
	"github.com/samandr77/microservices/callcenter/internal/entity"
	"github.com/samandr77/microservices/callcenter/pkg/config"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks -typed

type EventPublisher interface {
	Publish(ctx context.Context, event entity.Event)
}

type Notifier interface {
	SendMessage(subject, message string, recipients []string) error
}

type OAuthConnector interface {
	ExchangeCode(ctx context.Context, p oauth.Provider, code, redirectURI string) (entity.OAuthToken, error)
	FetchProfile(ctx context.Context, p oauth.Provider, accessToken string) (map[string]any, error)
}

type Recorder interface {
	OAuthExchange(provider, result string)
	Webhook(kind string)
}

type UserRepository interface {
	User(ctx context.Context, id string) (entity.User, error)
	UserByEmail(ctx context.Context, email string) (entity.User, error)
	Users(ctx context.Context, f entity.UserFilter) ([]entity.User, error)
	CreateUser(ctx context.Context, u entity.User) (entity.User, error)
	UpdateUser(ctx context.Context, u entity.User) error
	DeleteUser(ctx context.Context, id string) error
	Organization(ctx context.Context, id string) (entity.Organization, error)
	Organizations(ctx context.Context) ([]entity.Organization, error)
}

type AccessRepository interface {
	Apps(ctx context.Context) ([]entity.AppPermission, error)
	Features(ctx context.Context) ([]entity.FeaturePermission, error)
	SetToggle(ctx context.Context, typ entity.ToggleType, id string, enabled bool) (entity.Toggle, error)
}

type StateRepository interface {
	SaveState(ctx context.Context, st entity.OAuthState) error
	ConsumeState(ctx context.Context, nonce string) (entity.OAuthState, error)
	DeleteExpiredStates(ctx context.Context, now time.Time) (int, error)
}

type ConnectionRepository interface {
	SaveConnection(ctx context.Context, c entity.IntegrationConnection) error
	Connection(ctx context.Context, orgID, provider string) (entity.IntegrationConnection, error)
	DeleteConnection(ctx context.Context, orgID, provider string) error
}

// Store is everything that always lives in process memory.
type Store interface {
	UserRepository
	AccessRepository
	StateRepository
	ConnectionRepository
}

// CRMRepository is backed by memory or Postgres.
type CRMRepository interface {
	CreateCustomer(ctx context.Context, c entity.Customer) (entity.Customer, error)
	Customer(ctx context.Context, orgID, id string) (entity.Customer, error)
	Customers(ctx context.Context, f entity.CustomerFilter) ([]entity.Customer, int, error)
	UpdateCustomer(ctx context.Context, c entity.Customer) (entity.Customer, error)
	DeleteCustomer(ctx context.Context, orgID, id string) error

	CreateTicket(ctx context.Context, t entity.Ticket) (entity.Ticket, error)
	Ticket(ctx context.Context, orgID, id string) (entity.Ticket, error)
	Tickets(ctx context.Context, f entity.TicketFilter) ([]entity.Ticket, int, error)
	UpdateTicket(ctx context.Context, t entity.Ticket) (entity.Ticket, error)
	DeleteTicket(ctx context.Context, orgID, id string) error
	OpenTicketCounts(ctx context.Context, orgID string) (map[string]int, error)

	CreateOrder(ctx context.Context, o entity.Order) (entity.Order, error)
	Order(ctx context.Context, orgID, id string) (entity.Order, error)
	Orders(ctx context.Context, f entity.OrderFilter) ([]entity.Order, int, error)
	UpdateOrder(ctx context.Context, o entity.Order) (entity.Order, error)
	DeleteOrder(ctx context.Context, orgID, id string) error
	Revenue(ctx context.Context, orgID string) (decimal.Decimal, error)

	CreateCall(ctx context.Context, c entity.Call) (entity.Call, error)
	Calls(ctx context.Context, f entity.CallFilter) ([]entity.Call, int, error)
}

type Service struct {
	cfg       config.Config
	store     Store
	crm       CRMRepository
	providers *oauth.Registry
	signer    *oauth.StateSigner
	connector OAuthConnector
	events    EventPublisher
	notifier  Notifier
	metrics   Recorder
	now       func() time.Time
}

func New(
	cfg config.Config,
	store Store,
	crm CRMRepository,
	providers *oauth.Registry,
	connector OAuthConnector,
	events EventPublisher,
	notifier Notifier,
	metrics Recorder,
) *Service {
	return &Service{
		cfg:       cfg,
		store:     store,
		crm:       crm,
		providers: providers,
		signer:    oauth.NewStateSigner(cfg.OAuth.StateSecret, cfg.OAuth.StateTTL),
		connector: connector,
		events:    events,
		notifier:  notifier,
		metrics:   metrics,
		now:       time.Now,
	}
}

func (s *Service) publish(ctx context.Context, typ entity.EventType, orgID string, payload any) {
	s.events.Publish(ctx, entity.NewEvent(typ, orgID, payload))
}
