package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hawkerhero/internal/errors"
	"hawkerhero/internal/model"
	"hawkerhero/internal/repository"
)

const bcryptCost = 10

// RegisterInput is the public registration form. A role is never accepted
// from the client.
type RegisterInput struct {
	Username string `form:"username" validate:"required,max=50"`
	Email    string `form:"email" validate:"required,max=255,emailshape"`
	Password string `form:"password" validate:"required,min=6,max=72"`
}

var registerMessages = Messages{
	"required":         "All fields are required.",
	"password.min":     "Password must be at least 6 characters long.",
	"password.max":     "Password must be at most 72 characters long.",
	"username.max":     "Username must be at most 50 characters long.",
	"email.max":        "Please enter a valid email address.",
	"email.emailshape": "Please enter a valid email address.",
}

// AuthService handles registration and credential checks.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (*model.Identity, error)
	EnsureAdmin(ctx context.Context, username, email, password string) (*model.User, error)
}

type authService struct {
	users repository.UserRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository) AuthService {
	return &authService{users: users}
}

// Register creates a user with role "user" and a bcrypt password hash.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	in.Username = trimmed(in.Username)
	in.Email = strings.ToLower(trimmed(in.Email))
	if err := checkInput(in, registerMessages); err != nil {
		return nil, err
	}

	existing, err := s.users.FindByEmailOrUsername(ctx, in.Email, in.Username)
	if err == nil && existing != nil {
		return nil, errors.ErrConflict
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         model.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.ErrConflict
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Authenticate checks the credentials. Unknown email and wrong password
// fail identically.
func (s *authService) Authenticate(ctx context.Context, email, password string) (*model.Identity, error) {
	email = strings.ToLower(trimmed(email))
	if email == "" || password == "" {
		return nil, errors.NewValidationError("email", "Email and password are required.")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}
	return user.Identity(), nil
}

// EnsureAdmin creates the admin account or promotes and re-keys an existing
// one with the same email or username. Used by the seed command.
func (s *authService) EnsureAdmin(ctx context.Context, username, email, password string) (*model.User, error) {
	email = strings.ToLower(trimmed(email))
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.FindByEmailOrUsername(ctx, email, username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find admin: %w", err)
	}
	if user == nil {
		user = &model.User{Username: username, Email: email, PasswordHash: string(hash), Role: model.RoleAdmin}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("create admin: %w", err)
		}
		return user, nil
	}

	user.PasswordHash = string(hash)
	user.Role = model.RoleAdmin
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update admin: %w", err)
	}
	return user, nil
}
