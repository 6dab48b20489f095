package service

import (
	"context"
	"errors"

	"github.com/sejongblog/backend/internal/model"
	"github.com/sejongblog/backend/internal/pagination"
)

var (
	// ErrSecretContact is returned when a non-admin requests a secret
	// inquiry without having verified its password.
	ErrSecretContact = errors.New("password required to view this contact")

	// ErrNoSecretPassword is returned when password verification is
	// attempted against a secret inquiry that never had a password set.
	// Such inquiries are admin-only.
	ErrNoSecretPassword = errors.New("this contact has no password set")

	// ErrWrongPassword is returned when the submitted secret password does
	// not match the stored hash.
	ErrWrongPassword = errors.New("invalid password")
)

// ContactService is the business logic for citizen inquiries, including the
// secret-access gate.
type ContactService interface {
	// Submit stores a new inquiry. When the inquiry is secret and a
	// password is supplied, its hash is stored; a secret inquiry without a
	// password is viewable by the admin only.
	Submit(ctx context.Context, contact *model.Contact, secretPassword string) error

	// ListPublic returns the public board projection, newest first. Secret
	// entries carry a masked name and never expose message or contact.
	ListPublic(ctx context.Context, page, limit int) (*pagination.Page[*model.ContactListItem], error)

	// View returns the full inquiry. Secret inquiries require an admin
	// requester; others must go through VerifySecretPassword.
	View(ctx context.Context, id int64, requesterIsAdmin bool) (*model.Contact, error)

	// VerifySecretPassword checks the per-inquiry password and returns the
	// full record on success. Non-secret inquiries pass trivially. No
	// session is granted: every view re-verifies.
	VerifySecretPassword(ctx context.Context, id int64, password string) (*model.Contact, error)

	// ListAll returns full inquiries for the admin console.
	ListAll(ctx context.Context, page, limit int) (*pagination.Page[*model.Contact], error)

	// AdminDetail returns the full inquiry and flips is_read on first view.
	AdminDetail(ctx context.Context, id int64) (*model.Contact, error)

	// Reply stores the admin reply and marks the inquiry read.
	Reply(ctx context.Context, id int64, reply string, isPublic bool) (*model.Contact, error)

	Delete(ctx context.Context, id int64) error
}
