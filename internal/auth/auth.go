package auth

import (
	"fmt"

	"github.com/xtrntr/tradedesk/internal/models"
	"github.com/xtrntr/tradedesk/internal/store"

	"golang.org/x/crypto/bcrypt"
)

// Service handles user registration. There is no login flow in the
// dashboard, but credentials are hashed before storage all the same and
// never serialized back out.
type Service struct {
	Store *store.Store
}

// NewService creates a new registration service
func NewService(s *store.Store) *Service {
	return &Service{Store: s}
}

// Register validates the fields, hashes the password and stores the user
func (s *Service) Register(username, email, password string) (models.User, error) {
	if username == "" {
		return models.User{}, fmt.Errorf("username cannot be empty")
	}
	if email == "" {
		return models.User{}, fmt.Errorf("email cannot be empty")
	}
	if password == "" {
		return models.User{}, fmt.Errorf("password cannot be empty")
	}
	if len(username) > 50 {
		return models.User{}, fmt.Errorf("username too long (max 50 characters)")
	}
	if len(password) > 72 {
		return models.User{}, fmt.Errorf("password too long (max 72 characters)")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := s.Store.InsertUser(models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
	return user, nil
}
