package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/callcenter/internal/entity"
)

func TestService_CreateUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		actor   string
		user    entity.User
		wantErr error
	}{
		{
			name:  "admin creates agent",
			actor: "user_3",
			user:  entity.User{Name: "New Agent", Email: "new@acme.example", Role: entity.RoleAgent},
		},
		{
			name:  "root creates manager",
			actor: "user_1",
			user:  entity.User{Name: "New Manager", Email: "boss@acme.example", Role: entity.RoleManager},
		},
		{
			name:    "admin cannot create admin",
			actor:   "user_3",
			user:    entity.User{Name: "Peer", Email: "peer@acme.example", Role: entity.RoleAdmin},
			wantErr: entity.ErrForbidden,
		},
		{
			name:    "nobody creates a second root",
			actor:   "user_1",
			user:    entity.User{Name: "Another Root", Email: "root2@acme.example", Role: entity.RoleRoot},
			wantErr: entity.ErrValidation,
		},
		{
			name:    "duplicate email",
			actor:   "user_1",
			user:    entity.User{Name: "Alex Again", Email: "AGENT@acme.example", Role: entity.RoleAgent},
			wantErr: entity.ErrAlreadyExists,
		},
		{
			name:    "cannot grant what actor lacks",
			actor:   "user_3",
			user:    entity.User{Name: "Agent", Email: "agent9@acme.example", Permissions: []string{entity.PermissionOrganizationsManage}},
			wantErr: entity.ErrForbidden,
		},
		{
			name:    "bad email",
			actor:   "user_1",
			user:    entity.User{Name: "Agent", Email: "nope"},
			wantErr: entity.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, d := newService(t)

			u, err := s.CreateUser(asUser(t, d.store, tt.actor), tt.user)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, "user_10", u.ID)
			require.Equal(t, "org_1", u.OrganizationID)
			require.Equal(t, entity.UserStatusActive, u.Status)
		})
	}
}

func TestService_UpdateUser(t *testing.T) {
	t.Parallel()

	s, d := newService(t)

	online := entity.AvailabilityOnline

	u, err := s.UpdateUser(asUser(t, d.store, "user_6"), "user_6", entity.UserUpdate{Availability: &online})
	require.NoError(t, err)
	require.Equal(t, entity.AvailabilityOnline, u.Availability)

	supervisor := entity.RoleSupervisor

	_, err = s.UpdateUser(asUser(t, d.store, "user_6"), "user_6", entity.UserUpdate{Role: &supervisor})
	require.ErrorIs(t, err, entity.ErrForbidden)

	_, err = s.UpdateUser(asUser(t, d.store, "user_4"), "user_3", entity.UserUpdate{Availability: &online})
	require.ErrorIs(t, err, entity.ErrForbidden)

	u, err = s.UpdateUser(asUser(t, d.store, "user_3"), "user_6", entity.UserUpdate{Role: &supervisor})
	require.NoError(t, err)
	require.Equal(t, entity.RoleSupervisor, u.Role)

	_, err = s.UpdateUser(asUser(t, d.store, "user_3"), "user_8", entity.UserUpdate{Availability: &online})
	require.ErrorIs(t, err, entity.ErrNotFound)

	suspended := entity.UserStatusSuspended

	_, err = s.UpdateUser(asUser(t, d.store, "user_1"), "user_1", entity.UserUpdate{Status: &suspended})
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestService_DeleteUser(t *testing.T) {
	t.Parallel()

	s, d := newService(t)

	require.ErrorIs(t, s.DeleteUser(asUser(t, d.store, "user_3"), "user_3"), entity.ErrCannotDeleteSelf)
	require.ErrorIs(t, s.DeleteUser(asUser(t, d.store, "user_2"), "user_1"), entity.ErrForbidden)
	require.ErrorIs(t, s.DeleteUser(asUser(t, d.store, "user_7"), "user_1"), entity.ErrNotFound)
	require.ErrorIs(t, s.DeleteUser(asUser(t, d.store, "user_4"), "user_2"), entity.ErrForbidden)

	require.NoError(t, s.DeleteUser(asUser(t, d.store, "user_2"), "user_6"))

	users, err := s.Users(asUser(t, d.store, "user_2"), entity.UserFilter{Role: entity.RoleAgent})
	require.NoError(t, err)

	for _, u := range users {
		require.NotEqual(t, "user_6", u.ID)
	}
}

func TestService_Organizations(t *testing.T) {
	t.Parallel()

	s, d := newService(t)

	orgs, err := s.Organizations(asUser(t, d.store, "user_1"))
	require.NoError(t, err)
	require.Len(t, orgs, 2)

	org, err := s.CurrentOrganization(asUser(t, d.store, "user_8"))
	require.NoError(t, err)
	require.Equal(t, "Globex Care", org.Name)
}
