package constants

import "fmt"

const (
	RoleMember   = "member"
	RoleGymAdmin = "gym_admin"
	RoleOwner    = "owner"
)

// Template pesan error role
const (
	ErrOnlyGymAdminsCanAccess = "❌ Hanya admin gym yang boleh mengakses fitur %s."
	ErrOnlyOwnersCanAccess    = "❌ Hanya owner yang boleh mengakses fitur %s."
	ErrOnlyMembersCanAccess   = "❌ Hanya member yang boleh mengakses fitur %s."
)

func RoleErrorGymAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyGymAdminsCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

func RoleErrorMember(feature string) string {
	return fmt.Sprintf(ErrOnlyMembersCanAccess, feature)
}

// Status tenant & member (selaras dengan kolom status di DB)
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusSuspended = "suspended"
)
