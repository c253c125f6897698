package entity

type Role string

const (
	RoleRoot       Role = "root"
	RoleManager    Role = "manager"
	RoleSupervisor Role = "supervisor"
	RoleAdmin      Role = "admin"
	RoleAgent      Role = "agent"
)

var roleLevels = map[Role]int{
	RoleRoot:       5,
	RoleManager:    4,
	RoleAdmin:      3,
	RoleSupervisor: 2,
	RoleAgent:      1,
}

func (r Role) IsValid() bool {
	_, ok := roleLevels[r]
	return ok
}

// Level is the position of the role in the hierarchy; unknown roles are 0.
func (r Role) Level() int {
	return roleLevels[r]
}

func (r Role) String() string {
	return string(r)
}

// Roles lists every role from the top of the hierarchy down.
func Roles() []Role {
	return []Role{RoleRoot, RoleManager, RoleAdmin, RoleSupervisor, RoleAgent}
}
