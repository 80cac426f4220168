// Package service holds the business logic between the HTTP handlers and
// the repositories.
package service

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/minwoopark/board-api/models"
	"github.com/minwoopark/board-api/repository"
	"github.com/minwoopark/board-api/token"
)

// AuthService handles registration and login.
type AuthService struct {
	users  repository.UserRepository
	issuer *token.Issuer
}

func NewAuthService(users repository.UserRepository, issuer *token.Issuer) *AuthService {
	return &AuthService{users: users, issuer: issuer}
}

// Register creates a new user and returns the created username.
//
// The existence pre-checks and the insert run inside one transaction. The
// pre-checks are best effort: two identical registrations can both pass them,
// so the unique constraints are the authoritative guard and a duplicate-key
// failure on insert is reported as a conflict, not an internal error.
func (s *AuthService) Register(ctx context.Context, username, password, nickname string) (string, error) {
	logCtx := logrus.WithFields(logrus.Fields{"username": username, "nickname": nickname})

	err := s.users.Transact(ctx, func(users repository.UserRepository) error {
		if _, err := users.FindByID(ctx, username); err == nil {
			return ErrUsernameTaken
		} else if !errors.Is(err, repository.ErrNotFound) {
			logCtx.WithError(err).Error("username pre-check failed")
			return ErrInternal
		}

		if _, err := users.FindByNickname(ctx, nickname); err == nil {
			return ErrNicknameTaken
		} else if !errors.Is(err, repository.ErrNotFound) {
			logCtx.WithError(err).Error("nickname pre-check failed")
			return ErrInternal
		}

		user := &models.User{
			ID:           username,
			PasswordHash: digest(password),
			Nickname:     nickname,
		}
		if err := users.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateKey) {
				logCtx.Warn("registration lost the race against a concurrent insert")
				return ErrSignUpConflict
			}
			logCtx.WithError(err).Error("user insert failed")
			return ErrInternal
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	logCtx.Info("user registered")
	return username, nil
}

// LoginResult is what a successful login hands back to the client.
type LoginResult struct {
	UserID      string
	Nickname    string
	AccessToken string
}

// Login verifies credentials and issues an access token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	logCtx := logrus.WithField("username", username)

	user, err := s.users.FindByID(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logCtx.Warn("login attempt for unknown user")
			return nil, ErrUserNotFound
		}
		logCtx.WithError(err).Error("user lookup failed")
		return nil, ErrInternal
	}

	candidate := digest(password)
	if subtle.ConstantTimeCompare([]byte(candidate), []byte(user.PasswordHash)) != 1 {
		logCtx.Warn("login attempt with wrong password")
		return nil, ErrWrongPassword
	}

	accessToken, err := s.issuer.Issue(user.ID, user.Nickname)
	if err != nil {
		logCtx.WithError(err).Error("token issuance failed")
		return nil, ErrInternal
	}

	logCtx.Info("user logged in")
	return &LoginResult{
		UserID:      user.ID,
		Nickname:    user.Nickname,
		AccessToken: accessToken,
	}, nil
}

// ListUsers returns every registered user. Development aid backing /api/test.
func (s *AuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("user listing failed")
		return nil, ErrInternal
	}
	return users, nil
}
