package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"legalclarify-backend/i18n"
	"legalclarify-backend/models"
	"legalclarify-backend/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest accepted password
const MinPasswordLength = 8

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrPasswordTooShort    = errors.New("password too short")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// UserService manages user accounts and language preferences
type UserService struct {
	users       UserRepository
	cost        int
	defaultLang string
}

// UserServiceOption is a functional option for UserService
type UserServiceOption func(*UserService)

// UserWithRepository sets the user repository
func UserWithRepository(repo UserRepository) UserServiceOption {
	return func(s *UserService) {
		s.users = repo
	}
}

// UserWithBcryptCost sets the password hashing cost
func UserWithBcryptCost(cost int) UserServiceOption {
	return func(s *UserService) {
		s.cost = cost
	}
}

// UserWithDefaultLanguage sets the language used when a request gives no hint
func UserWithDefaultLanguage(lang string) UserServiceOption {
	return func(s *UserService) {
		s.defaultLang = i18n.Normalize(lang)
	}
}

// NewUserService creates a new user service
func NewUserService(opts ...UserServiceOption) *UserService {
	s := &UserService{cost: bcrypt.DefaultCost, defaultLang: i18n.Default}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateUserRequest represents a new account
type CreateUserRequest struct {
	Email             string `json:"email" binding:"required"`
	Password          string `json:"password" binding:"required"`
	Name              string `json:"name"`
	PreferredLanguage string `json:"preferred_language"`
}

// CreateUser validates and stores a new user with a bcrypt password hash
func (s *UserService) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return nil, ErrInvalidEmail
	}
	if len(req.Password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	lang := i18n.Default
	if req.PreferredLanguage != "" {
		var ok bool
		if lang, ok = i18n.Match(req.PreferredLanguage); !ok {
			return nil, ErrUnsupportedLanguage
		}
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:             email,
		PasswordHash:      string(hash),
		Name:              strings.TrimSpace(req.Name),
		PreferredLanguage: lang,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetUser returns a user by ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

// Authenticate checks an email and password pair
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// SetPreferredLanguage stores the normalized language for a user
func (s *UserService) SetPreferredLanguage(ctx context.Context, id uuid.UUID, lang string) (*models.User, error) {
	lang, ok := i18n.Match(lang)
	if !ok {
		return nil, ErrUnsupportedLanguage
	}

	if err := s.users.UpdatePreferredLanguage(ctx, id, lang); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update language: %w", err)
	}
	return s.GetUser(ctx, id)
}

// ResolveLanguage picks the display language for a request: an explicit
// choice, then the user's preference, then the Accept-Language header, then
// the configured default.
func (s *UserService) ResolveLanguage(ctx context.Context, requested string, userID *uuid.UUID, acceptLanguage string) string {
	if lang, ok := i18n.Match(requested); ok {
		return lang
	}
	if userID != nil && s.users != nil {
		if user, err := s.users.GetByID(ctx, *userID); err == nil && user.PreferredLanguage != "" {
			return i18n.Normalize(user.PreferredLanguage)
		}
	}
	if lang, ok := i18n.MatchAcceptLanguage(acceptLanguage); ok {
		return lang
	}
	return s.DefaultLanguage()
}

// DefaultLanguage is the language used when a request gives no usable hint
func (s *UserService) DefaultLanguage() string {
	if s.defaultLang == "" {
		return i18n.Default
	}
	return s.defaultLang
}
