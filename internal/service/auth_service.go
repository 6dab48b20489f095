package service

import (
	"context"
	"errors"

	"github.com/sejongblog/backend/internal/model"
)

// ErrInvalidCredentials is returned for both unknown usernames and wrong
// passwords so a caller cannot tell which check failed.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService is the business logic for admin authentication.
type AuthService interface {
	// Login verifies the credentials and returns a fresh access token plus
	// the authenticated admin. Any failure is ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *model.Admin, error)
}
