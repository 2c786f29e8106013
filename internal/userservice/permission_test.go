package userservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeAuthored stands in for a publication in permission checks.
type fakeAuthored struct {
	authorID string
}

func (f fakeAuthored) AuthorID() string { return f.authorID }

func TestPermissionService_CanDelete(t *testing.T) {
	s := NewPermissionService()

	testCases := []struct {
		name     string
		role     Role
		userID   string
		authorID string
		expected bool
	}{
		{
			name:     "admin deletes any publication",
			role:     RoleAdmin,
			userID:   "u_admin",
			authorID: "u_other",
			expected: true,
		},
		{
			name:     "editor deletes own publication",
			role:     RoleEditor,
			userID:   "u_editor",
			authorID: "u_editor",
			expected: true,
		},
		{
			name:     "editor cannot delete another author's publication",
			role:     RoleEditor,
			userID:   "u_editor",
			authorID: "u_other",
			expected: false,
		},
		{
			name:     "reader deletes own publication",
			role:     RoleReader,
			userID:   "u_reader",
			authorID: "u_reader",
			expected: true,
		},
		{
			name:     "reader cannot delete another author's publication",
			role:     RoleReader,
			userID:   "u_reader",
			authorID: "u_other",
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u := NewUser(tc.userID, "test", "senha123", tc.role)
			got := s.CanDelete(u, fakeAuthored{authorID: tc.authorID})
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestPermissionService_CanEdit(t *testing.T) {
	s := NewPermissionService()

	testCases := []struct {
		name     string
		role     Role
		userID   string
		authorID string
		expected bool
	}{
		{
			name:     "admin edits any publication",
			role:     RoleAdmin,
			userID:   "u_admin",
			authorID: "u_other",
			expected: true,
		},
		{
			name:     "editor edits any publication",
			role:     RoleEditor,
			userID:   "u_editor",
			authorID: "u_other",
			expected: true,
		},
		{
			name:     "reader edits own publication",
			role:     RoleReader,
			userID:   "u_reader",
			authorID: "u_reader",
			expected: true,
		},
		{
			name:     "reader cannot edit another author's publication",
			role:     RoleReader,
			userID:   "u_reader",
			authorID: "u_other",
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u := NewUser(tc.userID, "test", "senha123", tc.role)
			got := s.CanEdit(u, fakeAuthored{authorID: tc.authorID})
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestPermissionService_CanAssignRole(t *testing.T) {
	s := NewPermissionService()

	assert.True(t, s.CanAssignRole(NewUser("u_1", "admin", "senha123", RoleAdmin)))
	assert.False(t, s.CanAssignRole(NewUser("u_2", "editor", "senha123", RoleEditor)))
	assert.False(t, s.CanAssignRole(NewUser("u_3", "reader", "senha123", RoleReader)))
}
