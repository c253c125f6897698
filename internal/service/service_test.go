package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/callcenter/internal/clients/oauth"
	"github.com/samandr77/microservices/callcenter/internal/entity"
	"github.com/samandr77/microservices/callcenter/internal/mocks"
	"github.com/samandr77/microservices/callcenter/internal/repository/memory"
	"github.com/samandr77/microservices/callcenter/internal/service"
	"github.com/samandr77/microservices/callcenter/pkg/config"
)

const appURL = "http://app.test"

type deps struct {
	store     *memory.Store
	events    *mocks.MockEventPublisher
	notifier  *mocks.MockNotifier
	connector *mocks.MockOAuthConnector
	metrics   *mocks.MockRecorder
}

func testConfig() config.Config {
	return config.Config{
		AppURL:                appURL,
		DefaultOrganizationID: memory.SeedOrganizationID,
		Session:               config.Session{Secret: "session-secret", TTL: time.Hour},
		OAuth:                 config.OAuth{StateSecret: "state-secret", StateTTL: 10 * time.Minute},
		N8N:                   config.N8N{OrganizationID: memory.SeedOrganizationID},
		Slack:                 config.Credentials{ClientID: "slack-id", ClientSecret: "slack-secret"},
		Asana:                 config.Credentials{ClientID: "asana-id"},
		Microsoft:             config.Credentials{ClientID: "ms-id", ClientSecret: "ms-secret"},
		QuickBooks:            config.Credentials{ClientID: "qb-id", ClientSecret: "qb-secret"},
	}
}

// newService wires a service over a freshly seeded store. Mocks are strict;
// tests that publish events call allowEvents or set their own expectations.
func newService(t *testing.T) (*service.Service, deps) {
	t.Helper()

	return newServiceWith(t, testConfig())
}

func newServiceWith(t *testing.T, cfg config.Config) (*service.Service, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)

	d := deps{
		store:     memory.NewSeeded(),
		events:    mocks.NewMockEventPublisher(ctrl),
		notifier:  mocks.NewMockNotifier(ctrl),
		connector: mocks.NewMockOAuthConnector(ctrl),
		metrics:   mocks.NewMockRecorder(ctrl),
	}

	s := service.New(cfg, d.store, d.store, oauth.NewRegistry(oauth.Providers(cfg)...),
		d.connector, d.events, d.notifier, d.metrics)

	return s, d
}

func (d deps) allowEvents() {
	d.events.EXPECT().Publish(gomock.Any(), gomock.Any()).AnyTimes()
}

func asUser(t *testing.T, store *memory.Store, id string) context.Context {
	t.Helper()

	user, err := store.User(context.Background(), id)
	require.NoError(t, err)

	return entity.SetUserToContext(context.Background(), user)
}

func asBridge() context.Context {
	return entity.SetOrganizationToContext(context.Background(), memory.SeedOrganizationID)
}

func TestService_SignInAndAuthenticate(t *testing.T) {
	t.Parallel()

	s, _ := newService(t)
	ctx := context.Background()

	token, user, err := s.SignIn(ctx, "  Agent@Acme.example ")
	require.NoError(t, err)
	require.Equal(t, "user_5", user.ID)
	require.NotEmpty(t, token)

	got, err := s.Authenticate(ctx, token)
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)

	_, err = s.Authenticate(ctx, token+"x")
	require.ErrorIs(t, err, entity.ErrInvalidToken)

	_, _, err = s.SignIn(ctx, "suspended@acme.example")
	require.ErrorIs(t, err, entity.ErrUserSuspended)

	_, _, err = s.SignIn(ctx, "nobody@acme.example")
	require.ErrorIs(t, err, entity.ErrUnauthorized)

	_, _, err = s.SignIn(ctx, "not-an-email")
	require.ErrorIs(t, err, entity.ErrValidation)
}

func TestService_CleanupExpiredStates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	cfg := testConfig()

	store.EXPECT().DeleteExpiredStates(gomock.Any(), gomock.Any()).Return(3, nil)

	s := service.New(cfg, store, nil, oauth.NewRegistry(), nil, nil, nil, nil)

	require.NoError(t, s.CleanupExpiredStates(context.Background()))
}

func TestService_Me(t *testing.T) {
	t.Parallel()

	s, d := newService(t)

	profile, err := s.Me(asUser(t, d.store, "user_5"))
	require.NoError(t, err)
	require.Equal(t, "user_5", profile.User.ID)
	require.Contains(t, profile.EffectivePermissions, entity.PermissionCallsHandle)
	require.Len(t, profile.Apps, 3)
	require.Len(t, profile.Features, 2)

	profile, err = s.Me(asUser(t, d.store, "user_3"))
	require.NoError(t, err)
	require.Len(t, profile.Apps, 8)

	_, err = s.Me(context.Background())
	require.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestService_SetToggle(t *testing.T) {
	t.Parallel()

	s, d := newService(t)
	ctx := asUser(t, d.store, "user_3")

	d.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e entity.Event) {
		require.Equal(t, entity.EventToggleChanged, e.Type)
		require.Equal(t, memory.SeedOrganizationID, e.OrganizationID)
	})

	toggle, err := s.SetToggle(ctx, entity.ToggleTypeApp, "asana", true)
	require.NoError(t, err)
	require.True(t, toggle.Enabled)

	agent := asUser(t, d.store, "user_5")

	ok, err := s.AppAccess(agent, "asana")
	require.NoError(t, err)
	require.True(t, ok)

	_, err = s.SetToggle(ctx, entity.ToggleType("plugin"), "asana", true)
	require.ErrorIs(t, err, entity.ErrValidation)

	_, err = s.SetToggle(ctx, entity.ToggleTypeFeature, "missing", true)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_FeatureAccess(t *testing.T) {
	t.Parallel()

	s, d := newService(t)
	agent := asUser(t, d.store, "user_5")

	ok, err := s.FeatureAccess(agent, "call_recording")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.FeatureAccess(agent, "bulk_export")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = s.FeatureAccess(asUser(t, d.store, "user_2"), "bulk_export")
	require.NoError(t, err)
	require.True(t, ok)
}
