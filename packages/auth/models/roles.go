package models

// Available roles.
const (
	RolePlayer  = "player"
	RoleManager = "manager"
)

// GetAllRoles returns every valid role.
func GetAllRoles() []string {
	return []string{
		RolePlayer,
		RoleManager,
	}
}
