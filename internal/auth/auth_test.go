package auth

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xtrntr/tradedesk/internal/store"
	"golang.org/x/crypto/bcrypt"
)

func TestService_Register(t *testing.T) {
	tests := []struct {
		name        string
		username    string
		email       string
		password    string
		expectError bool
	}{
		{
			name:     "Success",
			username: "alice",
			email:    "alice@example.com",
			password: "password123",
		},
		{
			name:        "EmptyUsername",
			username:    "",
			email:       "alice@example.com",
			password:    "password123",
			expectError: true,
		},
		{
			name:        "EmptyEmail",
			username:    "alice",
			email:       "",
			password:    "password123",
			expectError: true,
		},
		{
			name:        "EmptyPassword",
			username:    "alice",
			email:       "alice@example.com",
			password:    "",
			expectError: true,
		},
		{
			name:        "LongUsername",
			username:    strings.Repeat("a", 51),
			email:       "alice@example.com",
			password:    "password123",
			expectError: true,
		},
		{
			name:        "LongPassword",
			username:    "alice",
			email:       "alice@example.com",
			password:    strings.Repeat("p", 73),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewService(store.New())
			user, err := s.Register(tt.username, tt.email, tt.password)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, s.Store.ListUsers())
				return
			}

			require.NoError(t, err)
			assert.NotZero(t, user.ID)
			assert.Equal(t, tt.username, user.Username)
			assert.Equal(t, tt.email, user.Email)
			assert.False(t, user.CreatedAt.IsZero())

			// Stored as a verifiable bcrypt hash, never in clear
			assert.NotEqual(t, tt.password, user.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.password)))
		})
	}
}

func TestService_RegisterHashNeverSerialized(t *testing.T) {
	s := NewService(store.New())
	user, err := s.Register("bob", "bob@example.com", "hunter22")
	require.NoError(t, err)

	data, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hunter22")
	assert.NotContains(t, string(data), user.PasswordHash)
	assert.NotContains(t, string(data), "password")
}
