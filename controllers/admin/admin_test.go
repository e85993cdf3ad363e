package adminController

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemporaryPassword(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 30; i++ {
		pw, err := temporaryPassword()
		require.NoError(t, err)
		assert.Len(t, pw, 10)
		assert.Regexp(t, `^[abcdefghijkmnpqrstuvwxyz23456789]{10}$`, pw)
		seen[pw] = true
	}
	assert.Greater(t, len(seen), 1)
}
