package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transparify/transparify_backend/internal/core/domain"
)

func TestGenerateReceiptToken(t *testing.T) {
	t.Run("Financial Token Shape", func(t *testing.T) {
		token, err := GenerateReceiptToken(domain.Financial)
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^DON-\d{16}$`), token)
	})

	t.Run("InKind Token Shape", func(t *testing.T) {
		token, err := GenerateReceiptToken(domain.InKind)
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^INKIND-\d{16}$`), token)
	})

	t.Run("Tokens Are Unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			token, err := GenerateReceiptToken(domain.Financial)
			require.NoError(t, err)
			assert.False(t, seen[token], "duplicate token generated: %s", token)
			seen[token] = true
		}
	})
}

func TestGenerateSecureDigits(t *testing.T) {
	digits, err := GenerateSecureDigits(16)
	require.NoError(t, err)
	assert.Len(t, digits, 16)
	assert.Regexp(t, regexp.MustCompile(`^\d+$`), digits)

	_, err = GenerateSecureDigits(0)
	assert.Error(t, err)
}
