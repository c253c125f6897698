package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/callcenter/internal/entity"
)

func TestHasPermission(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		user       entity.User
		permission string
		want       bool
	}{
		{
			name:       "root passes any string",
			user:       entity.User{Role: entity.RoleRoot},
			permission: "anything.at.all",
			want:       true,
		},
		{
			name:       "root passes with empty explicit list",
			user:       entity.User{Role: entity.RoleRoot, Permissions: []string{}},
			permission: entity.PermissionOrganizationsManage,
			want:       true,
		},
		{
			name:       "explicit wildcard short-circuits",
			user:       entity.User{Role: entity.RoleAgent, Permissions: []string{entity.PermissionWildcard}},
			permission: entity.PermissionOrganizationsManage,
			want:       true,
		},
		{
			name:       "role default",
			user:       entity.User{Role: entity.RoleAgent},
			permission: entity.PermissionTicketsCreate,
			want:       true,
		},
		{
			name:       "explicit grant unioned with defaults",
			user:       entity.User{Role: entity.RoleAgent, Permissions: []string{entity.PermissionReportsView}},
			permission: entity.PermissionReportsView,
			want:       true,
		},
		{
			name:       "agent lacks users.manage",
			user:       entity.User{Role: entity.RoleAgent},
			permission: entity.PermissionUsersManage,
			want:       false,
		},
		{
			name:       "manager lacks organizations.manage",
			user:       entity.User{Role: entity.RoleManager},
			permission: entity.PermissionOrganizationsManage,
			want:       false,
		},
		{
			name:       "unknown role has nothing",
			user:       entity.User{Role: entity.Role("guest")},
			permission: entity.PermissionDashboardView,
			want:       false,
		},
		{
			name:       "prefix is not a match",
			user:       entity.User{Role: entity.RoleAgent, Permissions: []string{"tickets"}},
			permission: entity.PermissionTicketsDelete,
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, entity.HasPermission(tt.user, tt.permission))
		})
	}
}

func TestRolePermissions_ReturnsCopy(t *testing.T) {
	t.Parallel()

	perms := entity.RolePermissions(entity.RoleAgent)
	perms[0] = "mutated"

	require.NotEqual(t, "mutated", entity.RolePermissions(entity.RoleAgent)[0])
}

func TestEffectivePermissions_Union(t *testing.T) {
	t.Parallel()

	user := entity.User{
		Role:        entity.RoleAgent,
		Permissions: []string{entity.PermissionReportsView, entity.PermissionTicketsView},
	}

	perms := entity.EffectivePermissions(user)
	require.Contains(t, perms, entity.PermissionReportsView)
	require.Contains(t, perms, entity.PermissionCallsHandle)
	require.Len(t, perms, len(entity.RolePermissions(entity.RoleAgent))+1)
}

func TestCanManageUser(t *testing.T) {
	t.Parallel()

	root := entity.User{ID: "user_1", Role: entity.RoleRoot}
	manager := entity.User{ID: "user_2", Role: entity.RoleManager}
	admin := entity.User{ID: "user_3", Role: entity.RoleAdmin}
	supervisor := entity.User{ID: "user_4", Role: entity.RoleSupervisor}
	agent := entity.User{ID: "user_5", Role: entity.RoleAgent}
	otherAgent := entity.User{ID: "user_6", Role: entity.RoleAgent}
	otherRoot := entity.User{ID: "user_9", Role: entity.RoleRoot}

	tests := []struct {
		name   string
		actor  entity.User
		target entity.User
		want   bool
	}{
		{"self", agent, agent, true},
		{"root over anyone", root, manager, true},
		{"root over root", root, otherRoot, true},
		{"manager over admin", manager, admin, true},
		{"admin over supervisor", admin, supervisor, true},
		{"supervisor over agent", supervisor, agent, true},
		{"same level is refused", agent, otherAgent, false},
		{"lower cannot manage higher", supervisor, admin, false},
		{"manager cannot manage root", manager, root, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, entity.CanManageUser(tt.actor, tt.target))
		})
	}
}

func TestHasAppAccess(t *testing.T) {
	t.Parallel()

	apps := []entity.AppPermission{
		{ID: "slack", Name: "Slack", Enabled: false, Category: "communication"},
		{ID: "hubspot", Name: "HubSpot", Enabled: true, Category: "crm"},
	}

	for _, role := range []entity.Role{entity.RoleRoot, entity.RoleManager, entity.RoleAdmin} {
		require.True(t, entity.HasAppAccess(entity.User{Role: role}, apps, "slack"), role)
		require.True(t, entity.HasAppAccess(entity.User{Role: role}, nil, "slack"), role)
	}

	for _, role := range []entity.Role{entity.RoleSupervisor, entity.RoleAgent} {
		user := entity.User{Role: role}
		require.False(t, entity.HasAppAccess(user, apps, "slack"), role)
		require.True(t, entity.HasAppAccess(user, apps, "hubspot"), role)
		require.False(t, entity.HasAppAccess(user, apps, "missing"), role)
	}
}

func TestHasFeatureAccessAndAccessibleToggles(t *testing.T) {
	t.Parallel()

	features := []entity.FeaturePermission{
		{ID: "call_recording", Enabled: true},
		{ID: "bulk_export", Enabled: false},
	}

	agent := entity.User{Role: entity.RoleAgent}
	require.True(t, entity.HasFeatureAccess(agent, features, "call_recording"))
	require.False(t, entity.HasFeatureAccess(agent, features, "bulk_export"))

	visible := entity.AccessibleToggles(agent, features)
	require.Len(t, visible, 1)
	require.Equal(t, "call_recording", visible[0].ID)

	require.Len(t, entity.AccessibleToggles(entity.User{Role: entity.RoleAdmin}, features), 2)
}
