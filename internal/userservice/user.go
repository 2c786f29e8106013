package userservice

// NewUser creates a user with the given role. An empty role defaults to
// RoleReader.
func NewUser(id, name, password string, role Role) *User {
	if role == "" {
		role = RoleReader
	}

	return &User{
		ID:       id,
		Name:     name,
		Role:     role,
		password: password,
	}
}

// Rename replaces the display name. Always succeeds.
func (u *User) Rename(name string) {
	u.Name = name
}

// AssignRole replaces the user's role. This is mechanism only: whether the
// caller is allowed to assign roles must be checked beforehand through
// PermissionService.CanAssignRole.
func (u *User) AssignRole(role Role) {
	u.Role = role
}

func (u *User) View() UserView {
	return UserView{
		ID:    u.ID,
		Nome:  u.Name,
		Papel: u.Role,
	}
}
