package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sejongblog/backend/internal/model"
	"github.com/sejongblog/backend/internal/repository"
	"github.com/sejongblog/backend/pkg/auth"
)

// authServiceImpl is the production implementation of AuthService.
type authServiceImpl struct {
	admins repository.AdminRepository
	codec  *auth.TokenCodec
}

// NewAuthService creates an AuthService backed by the given credential
// store and token codec.
func NewAuthService(admins repository.AdminRepository, codec *auth.TokenCodec) AuthService {
	return &authServiceImpl{admins: admins, codec: codec}
}

// Login verifies the credentials and issues an access token. Unknown user
// and wrong password collapse into the same error.
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (string, *model.Admin, error) {
	admin, err := s.admins.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, fmt.Errorf("look up admin: %w", err)
	}
	if !auth.VerifyPassword(password, admin.PasswordHash) {
		slog.Debug("login rejected", "username", username)
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.codec.Issue(admin.Username, time.Now())
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}
