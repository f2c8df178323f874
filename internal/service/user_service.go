package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"property-auth/internal/auth"
	"property-auth/internal/domain"
	"property-auth/internal/repository"
)

var (
	// ErrInvalidCredentials indicates that provided login credentials are incorrect.
	// Unknown email and wrong password both map here so the response never
	// reveals which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserAlreadyExists is returned when attempting to register with an existing email.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrValidation indicates malformed or missing input.
	ErrValidation = errors.New("invalid input")
)

// UserService describes account registration, authentication and lookup.
// Register and Authenticate return a signed bearer token alongside the
// account on success.
type UserService interface {
	Register(ctx context.Context, email, password string) (*domain.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, string, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type userService struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenService
}

func NewUserService(users repository.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenService) UserService {
	return &userService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

func (s *userService) Register(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = normalizeEmail(email)

	if email == "" {
		return nil, "", fmt.Errorf("%w: email is required", ErrValidation)
	}
	if !strings.Contains(email, "@") {
		return nil, "", fmt.Errorf("%w: email is malformed", ErrValidation)
	}
	if password == "" {
		return nil, "", fmt.Errorf("%w: password is required", ErrValidation)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, "", ErrUserAlreadyExists
		}
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	return sanitizeUser(user), token, nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil || !ok {
		// a malformed stored hash is rejected the same way as a wrong password
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	return sanitizeUser(user), token, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return sanitizeUser(user), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	return &domain.User{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
