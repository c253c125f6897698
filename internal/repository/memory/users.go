package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/samandr77/microservices/callcenter/internal/entity"
)

func (s *Store) User(_ context.Context, id string) (entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}

	return entity.User{}, entity.ErrNotFound
}

func (s *Store) UserByEmail(_ context.Context, email string) (entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}

	return entity.User{}, entity.ErrNotFound
}

func (s *Store) Users(_ context.Context, f entity.UserFilter) ([]entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.User, 0)

	for _, u := range s.users {
		if f.OrganizationID != "" && u.OrganizationID != f.OrganizationID {
			continue
		}

		if f.Role != "" && u.Role != f.Role {
			continue
		}

		if f.Status != "" && u.Status != f.Status {
			continue
		}

		if f.Availability != "" && u.Availability != f.Availability {
			continue
		}

		if f.Skill != "" && !slices.Contains(u.Skills, f.Skill) {
			continue
		}

		out = append(out, cloneUser(u))
	}

	return out, nil
}

func (s *Store) CreateUser(_ context.Context, u entity.User) (entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return entity.User{}, entity.ErrAlreadyExists
		}
	}

	u.ID = entity.UserID(s.next("user"))
	u.CreatedAt = s.now()
	u.UpdatedAt = u.CreatedAt
	s.users = append(s.users, cloneUser(u))

	return u, nil
}

func (s *Store) UpdateUser(_ context.Context, u entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == u.ID {
			u.UpdatedAt = s.now()
			s.users[i] = cloneUser(u)

			return nil
		}
	}

	return entity.ErrNotFound
}

func (s *Store) DeleteUser(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}

	return entity.ErrNotFound
}

func (s *Store) Organization(_ context.Context, id string) (entity.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.organizations {
		if o.ID == id {
			return o, nil
		}
	}

	return entity.Organization{}, entity.ErrNotFound
}

func (s *Store) Organizations(_ context.Context) ([]entity.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Organization, len(s.organizations))
	copy(out, s.organizations)

	return out, nil
}
