package userservice

// Authored is anything owned by an author, typically a publication. It keeps
// this package free of a dependency on the publication types.
type Authored interface {
	AuthorID() string
}

// PermissionService centralizes the authorization rules of the domain.
//
// Rules:
//   - Admin: may edit and delete any publication and assign roles.
//   - Editor: may edit any publication but delete only their own.
//   - Leitor: may edit and delete only their own publications.
//
// The service is stateless and never mutates its arguments.
type PermissionService struct{}

func NewPermissionService() *PermissionService {
	return &PermissionService{}
}

func (s *PermissionService) CanDelete(u *User, pub Authored) bool {
	if u.Role == RoleAdmin {
		return true
	}
	if u.Role == RoleEditor {
		// editors only delete their own posts
		return u.ID == pub.AuthorID()
	}
	return u.ID == pub.AuthorID()
}

// CanEdit reports whether the user may edit the publication. Note the
// asymmetry with CanDelete: editors edit any publication.
func (s *PermissionService) CanEdit(u *User, pub Authored) bool {
	if u.Role == RoleAdmin {
		return true
	}
	if u.Role == RoleEditor {
		return true
	}
	return u.ID == pub.AuthorID()
}

func (s *PermissionService) CanAssignRole(u *User) bool {
	return u.Role == RoleAdmin
}
