package entity

import "slices"

const PermissionWildcard = "*"

const (
	PermissionDashboardView       = "dashboard.view"
	PermissionCustomersView       = "customers.view"
	PermissionCustomersCreate     = "customers.create"
	PermissionCustomersEdit       = "customers.edit"
	PermissionCustomersDelete     = "customers.delete"
	PermissionTicketsView         = "tickets.view"
	PermissionTicketsCreate       = "tickets.create"
	PermissionTicketsEdit         = "tickets.edit"
	PermissionTicketsAssign       = "tickets.assign"
	PermissionTicketsDelete       = "tickets.delete"
	PermissionOrdersView          = "orders.view"
	PermissionOrdersCreate        = "orders.create"
	PermissionOrdersEdit          = "orders.edit"
	PermissionOrdersDelete        = "orders.delete"
	PermissionCallsView           = "calls.view"
	PermissionCallsHandle         = "calls.handle"
	PermissionUsersView           = "users.view"
	PermissionUsersManage         = "users.manage"
	PermissionReportsView         = "reports.view"
	PermissionIntegrationsView    = "integrations.view"
	PermissionIntegrationsManage  = "integrations.manage"
	PermissionPermissionsManage   = "permissions.manage"
	PermissionOrganizationsManage = "organizations.manage"
	PermissionSettingsManage      = "settings.manage"
)

var rolePermissions = map[Role][]string{
	RoleRoot: {PermissionWildcard},
	RoleManager: {
		PermissionDashboardView,
		PermissionCustomersView,
		PermissionCustomersCreate,
		PermissionCustomersEdit,
		PermissionCustomersDelete,
		PermissionTicketsView,
		PermissionTicketsCreate,
		PermissionTicketsEdit,
		PermissionTicketsAssign,
		PermissionTicketsDelete,
		PermissionOrdersView,
		PermissionOrdersCreate,
		PermissionOrdersEdit,
		PermissionOrdersDelete,
		PermissionCallsView,
		PermissionCallsHandle,
		PermissionUsersView,
		PermissionUsersManage,
		PermissionReportsView,
		PermissionIntegrationsView,
		PermissionIntegrationsManage,
		PermissionPermissionsManage,
		PermissionSettingsManage,
	},
	RoleAdmin: {
		PermissionDashboardView,
		PermissionCustomersView,
		PermissionCustomersCreate,
		PermissionCustomersEdit,
		PermissionCustomersDelete,
		PermissionTicketsView,
		PermissionTicketsCreate,
		PermissionTicketsEdit,
		PermissionTicketsAssign,
		PermissionOrdersView,
		PermissionOrdersCreate,
		PermissionOrdersEdit,
		PermissionCallsView,
		PermissionCallsHandle,
		PermissionUsersView,
		PermissionUsersManage,
		PermissionReportsView,
		PermissionIntegrationsView,
		PermissionIntegrationsManage,
		PermissionPermissionsManage,
		PermissionSettingsManage,
	},
	RoleSupervisor: {
		PermissionDashboardView,
		PermissionCustomersView,
		PermissionCustomersEdit,
		PermissionTicketsView,
		PermissionTicketsCreate,
		PermissionTicketsEdit,
		PermissionTicketsAssign,
		PermissionOrdersView,
		PermissionCallsView,
		PermissionCallsHandle,
		PermissionUsersView,
		PermissionReportsView,
		PermissionIntegrationsView,
	},
	RoleAgent: {
		PermissionDashboardView,
		PermissionCustomersView,
		PermissionCustomersCreate,
		PermissionTicketsView,
		PermissionTicketsCreate,
		PermissionTicketsEdit,
		PermissionOrdersView,
		PermissionCallsHandle,
	},
}

// RolePermissions returns a copy of the default permission set of a role.
func RolePermissions(role Role) []string {
	perms := rolePermissions[role]
	out := make([]string, len(perms))
	copy(out, perms)

	return out
}

// RolePermissionTable returns the full role to default-permissions mapping.
func RolePermissionTable() map[Role][]string {
	table := make(map[Role][]string, len(rolePermissions))
	for role := range rolePermissions {
		table[role] = RolePermissions(role)
	}

	return table
}

// HasPermission reports whether the user holds permission, either explicitly
// or through the defaults of its role. Root and wildcard holders pass every check.
func HasPermission(user User, permission string) bool {
	if user.IsRoot() || slices.Contains(user.Permissions, PermissionWildcard) {
		return true
	}

	if slices.Contains(user.Permissions, permission) {
		return true
	}

	defaults := rolePermissions[user.Role]

	return slices.Contains(defaults, permission) || slices.Contains(defaults, PermissionWildcard)
}

// EffectivePermissions is the union of role defaults and explicit grants.
func EffectivePermissions(user User) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(user.Permissions)+len(rolePermissions[user.Role]))

	for _, list := range [][]string{rolePermissions[user.Role], user.Permissions} {
		for _, p := range list {
			if _, ok := seen[p]; ok {
				continue
			}

			seen[p] = struct{}{}
			out = append(out, p)
		}
	}

	return out
}

// CanManageUser reports whether actor may modify target.
func CanManageUser(actor, target User) bool {
	if actor.ID != "" && actor.ID == target.ID {
		return true
	}

	if actor.IsRoot() {
		return true
	}

	return actor.Role.Level() > target.Role.Level()
}

// bypassesToggles lists roles that see every app and feature regardless of toggles.
func bypassesToggles(role Role) bool {
	switch role {
	case RoleRoot, RoleManager, RoleAdmin:
		return true
	}

	return false
}
