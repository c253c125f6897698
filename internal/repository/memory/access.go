package memory

import (
	"context"
	"time"

	"github.com/samandr77/microservices/callcenter/internal/entity"
)

func (s *Store) Apps(_ context.Context) ([]entity.AppPermission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.AppPermission, len(s.apps))
	copy(out, s.apps)

	return out, nil
}

func (s *Store) Features(_ context.Context) ([]entity.FeaturePermission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.FeaturePermission, len(s.features))
	copy(out, s.features)

	return out, nil
}

func (s *Store) SetToggle(_ context.Context, typ entity.ToggleType, id string, enabled bool) (entity.Toggle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.apps
	if typ == entity.ToggleTypeFeature {
		list = s.features
	}

	for i := range list {
		if list[i].ID == id {
			list[i].Enabled = enabled
			return list[i], nil
		}
	}

	return entity.Toggle{}, entity.ErrNotFound
}

func (s *Store) SaveState(_ context.Context, st entity.OAuthState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.states[st.Nonce]; ok {
		return entity.ErrAlreadyExists
	}

	s.states[st.Nonce] = st

	return nil
}

// ConsumeState removes and returns a pending state. A nonce can be consumed once.
func (s *Store) ConsumeState(_ context.Context, nonce string) (entity.OAuthState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.states[nonce]
	if !ok {
		return entity.OAuthState{}, entity.ErrNotFound
	}

	delete(s.states, nonce)

	return st, nil
}

func (s *Store) DeleteExpiredStates(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int

	for nonce, st := range s.states {
		if !st.ExpiresAt.After(now) {
			delete(s.states, nonce)
			n++
		}
	}

	return n, nil
}

func (s *Store) SaveConnection(_ context.Context, c entity.IntegrationConnection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.connections[connectionKey{organizationID: c.OrganizationID, provider: c.Provider}] = c

	return nil
}

func (s *Store) Connection(_ context.Context, orgID, provider string) (entity.IntegrationConnection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.connections[connectionKey{organizationID: orgID, provider: provider}]
	if !ok {
		return entity.IntegrationConnection{}, entity.ErrNotFound
	}

	return c, nil
}

func (s *Store) DeleteConnection(_ context.Context, orgID, provider string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := connectionKey{organizationID: orgID, provider: provider}
	if _, ok := s.connections[key]; !ok {
		return entity.ErrNotFound
	}

	delete(s.connections, key)

	return nil
}
