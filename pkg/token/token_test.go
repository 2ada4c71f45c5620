package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndVerify(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	issued, err := manager.Issue(15, "user@example.com")
	require.NoError(t, err)

	claims, err := manager.Verify(issued)
	require.NoError(t, err)

	assert.Equal(t, int64(15), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestManager_VerifyRejectsWrongSecret(t *testing.T) {
	issued, err := NewManager("secret-a", time.Hour).Issue(15, "user@example.com")
	require.NoError(t, err)

	_, err = NewManager("secret-b", time.Hour).Verify(issued)

	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_VerifyRejectsExpiredToken(t *testing.T) {
	manager := NewManager("test-secret", -time.Minute)

	issued, err := manager.Issue(15, "user@example.com")
	require.NoError(t, err)

	_, err = manager.Verify(issued)

	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_VerifyRejectsGarbage(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	_, err := manager.Verify("not.a.token")

	require.ErrorIs(t, err, ErrInvalidToken)
}
