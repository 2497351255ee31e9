package domain

// Role is a closed enumeration of account roles. Legacy rows may hold NULL;
// the store backfills those to RoleUser at migration time and Normalize
// covers anything that slips through.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Normalize maps the legacy empty/NULL state to RoleUser.
func (r Role) Normalize() Role {
	if r == "" {
		return RoleUser
	}
	return r
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

func (r Role) IsAdmin() bool { return r == RoleAdmin }

// CanManage is the admin-or-self rule: u may act on a resource owned by
// ownerID iff u is an admin or is the owner.
func (u User) CanManage(ownerID string) bool {
	return u.Role.IsAdmin() || u.ID == ownerID
}
