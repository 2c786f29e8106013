package userservice

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUser(t *testing.T) {
	testCases := []struct {
		name         string
		role         Role
		expectedRole Role
	}{
		{
			name:         "explicit role",
			role:         RoleEditor,
			expectedRole: RoleEditor,
		},
		{
			name:         "empty role defaults to reader",
			role:         "",
			expectedRole: RoleReader,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u := NewUser("u_1", "Alice", "senha123", tc.role)
			assert.Equal(t, "u_1", u.ID)
			assert.Equal(t, "Alice", u.Name)
			assert.Equal(t, tc.expectedRole, u.Role)
		})
	}
}

func TestUser_Rename(t *testing.T) {
	u := NewUser("u_1", "Alice", "senha123", RoleAdmin)
	u.Rename("Alice Admin")
	assert.Equal(t, "Alice Admin", u.Name)
}

func TestUser_AssignRole(t *testing.T) {
	u := NewUser("u_1", "Alice", "senha123", RoleReader)
	u.AssignRole(RoleEditor)
	assert.Equal(t, RoleEditor, u.Role)
}

func TestUser_ViewOmitsPassword(t *testing.T) {
	u := NewUser("u_1", "Alice", "secret123", RoleAdmin)

	view := u.View()
	assert.Equal(t, "u_1", view.ID)
	assert.Equal(t, "Alice", view.Nome)
	assert.Equal(t, RoleAdmin, view.Papel)

	data, err := json.Marshal(view)
	assert.NoError(t, err)
	assert.False(t, strings.Contains(string(data), "secret123"))
	assert.False(t, strings.Contains(string(data), "senha"))
	assert.False(t, strings.Contains(string(data), "password"))
}
