package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewBcryptHasher(t *testing.T) {
	t.Run("valid cost is kept", func(t *testing.T) {
		h := NewBcryptHasher(bcrypt.MinCost)
		assert.Equal(t, bcrypt.MinCost, h.cost)
	})

	t.Run("out-of-range cost falls back to default", func(t *testing.T) {
		h := NewBcryptHasher(0)
		assert.Equal(t, bcrypt.DefaultCost, h.cost)

		h = NewBcryptHasher(100)
		assert.Equal(t, bcrypt.DefaultCost, h.cost)
	})
}

func TestBcryptHasher_Hash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	t.Run("produces a storable bcrypt hash", func(t *testing.T) {
		hash, err := h.Hash("correct horse battery staple")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(hash, "$2"), "not a bcrypt hash: %s", hash)
	})

	t.Run("salted: same plaintext hashes differently", func(t *testing.T) {
		h1, err := h.Hash("password123")
		require.NoError(t, err)
		h2, err := h.Hash("password123")
		require.NoError(t, err)
		assert.NotEqual(t, h1, h2, "hash encoding must be salted")
	})
}

func TestBcryptHasher_Verify(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	tests := []struct {
		name      string
		plaintext string
		probe     string
		want      bool
	}{
		{name: "round trip succeeds", plaintext: "password123", probe: "password123", want: true},
		{name: "wrong password fails", plaintext: "password123", probe: "password124", want: false},
		{name: "empty probe fails", plaintext: "password123", probe: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := h.Hash(tt.plaintext)
			require.NoError(t, err)
			assert.Equal(t, tt.want, h.Verify(hash, tt.probe))
		})
	}

	t.Run("malformed hash is a verification failure, not a panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			assert.False(t, h.Verify("not-a-bcrypt-hash", "password123"))
			assert.False(t, h.Verify("", "password123"))
			// argon2 formatted hash from a foreign system
			assert.False(t, h.Verify("$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA", "password123"))
		})
	})
}
