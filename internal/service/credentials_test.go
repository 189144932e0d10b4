package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCredential(t *testing.T) {
	credential, err := GenerateCredential()
	require.NoError(t, err)
	assert.Len(t, credential, 8)
	for _, r := range credential {
		assert.True(t, strings.ContainsRune(credentialAlphabet, r))
	}
}

func TestGenerateCredentialVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		credential, err := GenerateCredential()
		require.NoError(t, err)
		seen[credential] = true
	}
	assert.Greater(t, len(seen), 1)
}
