package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/freelinkd/kuesioner-api/internal/model"
	"github.com/freelinkd/kuesioner-api/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
)

const bcryptCost = 12

// AuthService backs the admin dashboard's email+password accounts. There are
// no sessions or tokens: the dashboard keeps the returned user object on the
// client, and every protected call is a fresh lookup.
type AuthService struct {
	users repository.UserRepository
}

func NewAuthService(users repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates an account after checking the email is unused.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (string, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}

	user := &model.User{
		Username:  username,
		Email:     email,
		Password:  string(hash),
		CreatedAt: time.Now(),
	}
	return s.users.Insert(ctx, user)
}

// Login compares the password against the stored hash. Unknown email and
// wrong password produce the same error so the response does not leak which
// accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.PublicUser, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user.Public(), nil
}

// Lookup returns the account for an email, without the password hash.
func (s *AuthService) Lookup(ctx context.Context, email string) (*model.PublicUser, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user.Public(), nil
}
