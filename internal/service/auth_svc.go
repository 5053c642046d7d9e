package service

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/johnsonDevMent/trustmebro/internal/model"
	"github.com/johnsonDevMent/trustmebro/internal/repository"
)

type AuthService struct {
	users *repository.UserRepo
}

func NewAuthService(users *repository.UserRepo) *AuthService {
	return &AuthService{users: users}
}

// Signup registers a new account. Field validation (username charset and
// length, password length, confirm match) happens in the middleware layer;
// this only enforces uniqueness.
func (s *AuthService) Signup(ctx context.Context, username, password string) (*model.User, error) {
	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, username, string(hash))
	if err != nil {
		return nil, err
	}
	log.Printf("auth: new account %s", username)
	return user, nil
}

// Login verifies credentials. Unknown usernames and wrong passwords return
// the same error so the response does not reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBadCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrBadCredentials
	}
	if user.IsBanned {
		return nil, ErrBanned
	}
	return user, nil
}

// SetupAdmin promotes the named user to admin. Succeeds only while no admin
// exists and the setup token matches.
func (s *AuthService) SetupAdmin(ctx context.Context, token, expectedToken, username string) error {
	if token == "" || token != expectedToken {
		return ErrForbidden
	}
	exists, err := s.users.AdminExists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return ErrForbidden
	}
	if err := s.users.PromoteAdmin(ctx, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	log.Printf("auth: %s promoted to admin via setup token", username)
	return nil
}
