// file: internals/features/users/auth/service/role_classifier_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/constants"
)

func TestPickRole(t *testing.T) {
	tests := []struct {
		name      string
		student   bool
		teacher   bool
		admin     bool
		principal bool
		want      string
	}{
		{"student saja", true, false, false, false, constants.RoleStudent},
		{"teacher saja", false, true, false, false, constants.RoleTeacher},
		{"admin saja", false, false, true, false, constants.RoleAdmin},
		{"principal saja", false, false, false, true, constants.RolePrincipal},
		// preseden: student menang atas semua, teacher atas admin/principal
		{"student dan teacher", true, true, false, false, constants.RoleStudent},
		{"teacher dan admin", false, true, true, false, constants.RoleTeacher},
		{"admin dan principal", false, false, true, true, constants.RoleAdmin},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := PickRole(tc.student, tc.teacher, tc.admin, tc.principal)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPickRoleNoMembership(t *testing.T) {
	_, err := PickRole(false, false, false, false)
	assert.ErrorIs(t, err, ErrRoleIntegrity)
}

func TestLandingPath(t *testing.T) {
	assert.Equal(t, "/api/s", LandingPath(constants.RoleStudent))
	assert.Equal(t, "/api/t", LandingPath(constants.RoleTeacher))
	assert.Equal(t, "/api/a", LandingPath(constants.RoleAdmin))
	assert.Equal(t, "/api/p", LandingPath(constants.RolePrincipal))
	assert.Equal(t, "/", LandingPath("unknown"))
}
