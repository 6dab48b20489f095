package service

import (
	"context"
	"time"

	"github.com/sejongblog/backend/internal/model"
	"github.com/sejongblog/backend/internal/pagination"
	"github.com/sejongblog/backend/internal/repository"
	"github.com/sejongblog/backend/pkg/auth"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// maskName reduces a name to its first rune plus a fixed placeholder, e.g.
// "Hong" becomes "H***".
func maskName(name string) string {
	runes := []rune(name)
	if len(runes) == 0 {
		return "***"
	}
	return string(runes[0]) + "***"
}

func toListItem(c *model.Contact) *model.ContactListItem {
	name := c.Name
	if c.IsSecret {
		name = maskName(name)
	}
	return &model.ContactListItem{
		ID:        c.ID,
		Name:      name,
		IsSecret:  c.IsSecret,
		HasReply:  c.HasReply(),
		CreatedAt: c.CreatedAt,
	}
}

// Submit stores a new inquiry, hashing the secret password when one is
// supplied.
func (s *contactServiceImpl) Submit(ctx context.Context, contact *model.Contact, secretPassword string) error {
	contact.SecretPasswordHash = nil
	if contact.IsSecret && secretPassword != "" {
		hash, err := auth.HashPassword(secretPassword)
		if err != nil {
			return err
		}
		contact.SecretPasswordHash = &hash
	}
	return s.repo.Create(ctx, contact)
}

// ListPublic returns the masked board projection, newest first.
func (s *contactServiceImpl) ListPublic(ctx context.Context, page, limit int) (*pagination.Page[*model.ContactListItem], error) {
	return pagination.Paginate(ctx, page, limit,
		s.repo.Count,
		func(ctx context.Context, limit, offset int) ([]*model.ContactListItem, error) {
			contacts, err := s.repo.List(ctx, model.ContactListOptions{Limit: limit, Offset: offset})
			if err != nil {
				return nil, err
			}
			items := make([]*model.ContactListItem, 0, len(contacts))
			for _, c := range contacts {
				items = append(items, toListItem(c))
			}
			return items, nil
		},
	)
}

// View returns the full inquiry, gating secret entries behind admin auth.
func (s *contactServiceImpl) View(ctx context.Context, id int64, requesterIsAdmin bool) (*model.Contact, error) {
	contact, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact.IsSecret && !requesterIsAdmin {
		return nil, ErrSecretContact
	}
	return contact, nil
}

// VerifySecretPassword checks the per-inquiry password. Non-secret
// inquiries pass trivially; a secret inquiry without a stored hash fails
// closed (admin-only).
func (s *contactServiceImpl) VerifySecretPassword(ctx context.Context, id int64, password string) (*model.Contact, error) {
	contact, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !contact.IsSecret {
		return contact, nil
	}
	if contact.SecretPasswordHash == nil {
		return nil, ErrNoSecretPassword
	}
	if !auth.VerifyPassword(password, *contact.SecretPasswordHash) {
		return nil, ErrWrongPassword
	}
	return contact, nil
}

// ListAll returns full inquiries for the admin console.
func (s *contactServiceImpl) ListAll(ctx context.Context, page, limit int) (*pagination.Page[*model.Contact], error) {
	return pagination.Paginate(ctx, page, limit,
		s.repo.Count,
		func(ctx context.Context, limit, offset int) ([]*model.Contact, error) {
			return s.repo.List(ctx, model.ContactListOptions{Limit: limit, Offset: offset})
		},
	)
}

// AdminDetail returns the full inquiry, flipping is_read on first view.
// The flip is a single idempotent UPDATE, so repeat views are no-ops.
func (s *contactServiceImpl) AdminDetail(ctx context.Context, id int64) (*model.Contact, error) {
	if err := s.repo.MarkRead(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Reply stores the admin reply and marks the inquiry read.
func (s *contactServiceImpl) Reply(ctx context.Context, id int64, reply string, isPublic bool) (*model.Contact, error) {
	if err := s.repo.SetReply(ctx, id, reply, isPublic, time.Now().UTC()); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Delete removes an inquiry.
func (s *contactServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
