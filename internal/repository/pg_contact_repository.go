package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sejongblog/backend/internal/model"
)

// ContactRepository is the persistence interface for contact inquiries.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	Count(ctx context.Context) (int, error)
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, error)
	GetByID(ctx context.Context, id int64) (*model.Contact, error)
	Create(ctx context.Context, contact *model.Contact) error
	// MarkRead flips is_read to true. Idempotent.
	MarkRead(ctx context.Context, id int64) error
	// SetReply stores the admin reply fields and marks the inquiry read.
	SetReply(ctx context.Context, id int64, reply string, isPublic bool, repliedAt time.Time) error
	Delete(ctx context.Context, id int64) error
	CountUnread(ctx context.Context) (int, error)
	CountUnreplied(ctx context.Context) (int, error)
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

var _ ContactRepository = (*PgContactRepository)(nil)

const contactColumns = `id, name, contact, message, is_secret, secret_password_hash,
	admin_reply, reply_is_public, replied_at, is_read, created_at`

func scanContact(row pgx.Row) (*model.Contact, error) {
	var c model.Contact
	err := row.Scan(&c.ID, &c.Name, &c.Contact, &c.Message, &c.IsSecret, &c.SecretPasswordHash,
		&c.AdminReply, &c.ReplyIsPublic, &c.RepliedAt, &c.IsRead, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgContactRepository) queryContacts(ctx context.Context, query string, args ...any) ([]*model.Contact, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Contact, &c.Message, &c.IsSecret, &c.SecretPasswordHash,
			&c.AdminReply, &c.ReplyIsPublic, &c.RepliedAt, &c.IsRead, &c.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, &c)
	}
	return contacts, rows.Err()
}

// Count returns the total number of inquiries.
func (r *PgContactRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// CountUnread returns the number of inquiries the admin has not opened yet.
func (r *PgContactRepository) CountUnread(ctx context.Context) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contacts WHERE is_read = FALSE`).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// CountUnreplied returns the number of inquiries without an admin reply.
func (r *PgContactRepository) CountUnreplied(ctx context.Context) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contacts WHERE admin_reply IS NULL`).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// List returns inquiries newest first.
func (r *PgContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, error) {
	return r.queryContacts(ctx,
		`SELECT `+contactColumns+` FROM contacts
		 ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Offset)
}

// GetByID returns an inquiry, or ErrNotFound.
func (r *PgContactRepository) GetByID(ctx context.Context, id int64) (*model.Contact, error) {
	return scanContact(r.pool.QueryRow(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id))
}

// Create inserts a new inquiry and populates its id and created_at.
func (r *PgContactRepository) Create(ctx context.Context, contact *model.Contact) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contacts (name, contact, message, is_secret, secret_password_hash, reply_is_public)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, is_read, created_at`,
		contact.Name, contact.Contact, contact.Message,
		contact.IsSecret, contact.SecretPasswordHash, contact.ReplyIsPublic,
	).Scan(&contact.ID, &contact.IsRead, &contact.CreatedAt)
}

// MarkRead flips is_read to true as a single statement, so concurrent
// detail views cannot lose the transition and repeats are no-ops.
func (r *PgContactRepository) MarkRead(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `UPDATE contacts SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetReply stores the reply fields and marks the inquiry read.
func (r *PgContactRepository) SetReply(ctx context.Context, id int64, reply string, isPublic bool, repliedAt time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contacts
		 SET admin_reply = $1, reply_is_public = $2, replied_at = $3, is_read = TRUE
		 WHERE id = $4`,
		reply, isPublic, repliedAt, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an inquiry, returning ErrNotFound for an unknown id.
func (r *PgContactRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
