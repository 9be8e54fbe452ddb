// file: internals/features/users/auth/service/password_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("rahasia123")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia123", hashed)

	assert.NoError(t, CheckPasswordHash(hashed, "rahasia123"))
	assert.Error(t, CheckPasswordHash(hashed, "salah"))
	assert.Error(t, CheckPasswordHash("bukan-hash", "rahasia123"))
}
