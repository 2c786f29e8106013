package userservice

// Role governs what a user may do with publications. Roles are trusted as
// given; there is no authentication layer in front of them.
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleEditor Role = "Editor"
	RoleReader Role = "Leitor"
)

// User is the identity holder of the domain. The password is stored as an
// opaque value and is never part of any serialized view.
type User struct {
	ID       string
	Name     string
	Role     Role
	password string
}

// UserView is the wire shape of a user. There is deliberately no password
// field, so no marshalling path can leak it.
type UserView struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Papel Role   `json:"papel"`
}
