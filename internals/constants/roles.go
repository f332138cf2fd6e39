package constants

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleEditor,
	}

	// StaffRoles may manage content, messages and settings.
	StaffRoles = []string{
		RoleAdmin,
		RoleEditor,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
