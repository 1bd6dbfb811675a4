package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAPIKey(t *testing.T) {
	user := &User{Role: ROLE_ADMIN}

	raw, err := user.IssueAPIKey()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(raw, "wkp_"))
	assert.Equal(t, HashAPIKey(raw), user.APIKeyHash)
	assert.Equal(t, raw[:8], user.APIKeyPrefix)
	assert.NotNil(t, user.APIKeyCreatedAt)
	assert.Nil(t, user.APIKeyLastUsedAt)
	assert.Nil(t, user.APIKeyRevokedAt)
	assert.True(t, user.HasActiveAPIKey())
}

func TestIssueAPIKeyGeneratesUniqueKeys(t *testing.T) {
	user := &User{}

	first, err := user.IssueAPIKey()
	require.NoError(t, err)
	second, err := user.IssueAPIKey()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestRevokeAPIKey(t *testing.T) {
	user := &User{}
	_, err := user.IssueAPIKey()
	require.NoError(t, err)

	user.RevokeAPIKey()

	assert.Empty(t, user.APIKeyHash)
	assert.Empty(t, user.APIKeyPrefix)
	assert.NotNil(t, user.APIKeyRevokedAt)
	assert.False(t, user.HasActiveAPIKey())
}

func TestHashAPIKeyTrimsWhitespace(t *testing.T) {
	assert.Equal(t, HashAPIKey("wkp_abc"), HashAPIKey("  wkp_abc \n"))
	assert.Len(t, HashAPIKey("wkp_abc"), 64)
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: ROLE_ADMIN}).IsAdmin())
	assert.False(t, (&User{Role: ROLE_USER}).IsAdmin())
}
