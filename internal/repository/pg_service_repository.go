package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sejongblog/backend/internal/model"
)

// ServiceRepository is the persistence interface for service listings.
type ServiceRepository interface {
	Count(ctx context.Context, opts model.ServiceListOptions) (int, error)
	List(ctx context.Context, opts model.ServiceListOptions) ([]*model.Service, error)
	GetByID(ctx context.Context, id int64) (*model.Service, error)
	GetPublishedByID(ctx context.Context, id int64) (*model.Service, error)
	Create(ctx context.Context, svc *model.Service) error
	Patch(ctx context.Context, id int64, patch model.ServicePatch) (*model.Service, error)
	Delete(ctx context.Context, id int64) error
}

// PgServiceRepository is the PostgreSQL implementation of ServiceRepository.
type PgServiceRepository struct {
	pool *pgxpool.Pool
}

// NewPgServiceRepository creates a PgServiceRepository backed by the given pool.
func NewPgServiceRepository(pool *pgxpool.Pool) *PgServiceRepository {
	return &PgServiceRepository{pool: pool}
}

var _ ServiceRepository = (*PgServiceRepository)(nil)

const serviceColumns = `id, title_ko, title_en, title_zh, description_ko, description_en, description_zh,
	icon, is_published, is_featured, display_order, created_at, updated_at`

func scanService(row pgx.Row) (*model.Service, error) {
	var s model.Service
	err := row.Scan(&s.ID, &s.TitleKo, &s.TitleEn, &s.TitleZh,
		&s.DescriptionKo, &s.DescriptionEn, &s.DescriptionZh,
		&s.Icon, &s.IsPublished, &s.IsFeatured, &s.DisplayOrder, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func serviceWhere(opts model.ServiceListOptions) string {
	var conditions []string
	if opts.PublishedOnly {
		conditions = append(conditions, "is_published = TRUE")
	}
	if opts.FeaturedOnly {
		conditions = append(conditions, "is_featured = TRUE")
	}
	if len(conditions) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(conditions, " AND ") + " "
}

// Count returns the number of services matching the filter.
func (r *PgServiceRepository) Count(ctx context.Context, opts model.ServiceListOptions) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM services `+serviceWhere(opts)).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

// List returns services ordered by manual display order, then newest first.
func (r *PgServiceRepository) List(ctx context.Context, opts model.ServiceListOptions) ([]*model.Service, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+serviceColumns+` FROM services `+serviceWhere(opts)+
			`ORDER BY display_order ASC, created_at DESC, id DESC LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*model.Service
	for rows.Next() {
		var s model.Service
		if err := rows.Scan(&s.ID, &s.TitleKo, &s.TitleEn, &s.TitleZh,
			&s.DescriptionKo, &s.DescriptionEn, &s.DescriptionZh,
			&s.Icon, &s.IsPublished, &s.IsFeatured, &s.DisplayOrder, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		services = append(services, &s)
	}
	return services, rows.Err()
}

// GetByID returns a service regardless of publication state.
func (r *PgServiceRepository) GetByID(ctx context.Context, id int64) (*model.Service, error) {
	return scanService(r.pool.QueryRow(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE id = $1`, id))
}

// GetPublishedByID returns a published service, or ErrNotFound.
func (r *PgServiceRepository) GetPublishedByID(ctx context.Context, id int64) (*model.Service, error) {
	return scanService(r.pool.QueryRow(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE id = $1 AND is_published = TRUE`, id))
}

// Create inserts a new service and populates its id and created_at.
func (r *PgServiceRepository) Create(ctx context.Context, svc *model.Service) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO services (title_ko, title_en, title_zh, description_ko, description_en, description_zh,
		                       icon, is_published, is_featured, display_order)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at`,
		svc.TitleKo, svc.TitleEn, svc.TitleZh,
		svc.DescriptionKo, svc.DescriptionEn, svc.DescriptionZh,
		svc.Icon, svc.IsPublished, svc.IsFeatured, svc.DisplayOrder,
	).Scan(&svc.ID, &svc.CreatedAt)
}

// Patch applies only the fields present in the patch and bumps updated_at.
func (r *PgServiceRepository) Patch(ctx context.Context, id int64, patch model.ServicePatch) (*model.Service, error) {
	var sets []string
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)))
	}

	if patch.TitleKo != nil {
		add("title_ko", *patch.TitleKo)
	}
	if patch.TitleEn != nil {
		add("title_en", *patch.TitleEn)
	}
	if patch.TitleZh != nil {
		add("title_zh", *patch.TitleZh)
	}
	if patch.DescriptionKo != nil {
		add("description_ko", *patch.DescriptionKo)
	}
	if patch.DescriptionEn != nil {
		add("description_en", *patch.DescriptionEn)
	}
	if patch.DescriptionZh != nil {
		add("description_zh", *patch.DescriptionZh)
	}
	if patch.Icon != nil {
		add("icon", *patch.Icon)
	}
	if patch.IsPublished != nil {
		add("is_published", *patch.IsPublished)
	}
	if patch.IsFeatured != nil {
		add("is_featured", *patch.IsFeatured)
	}
	if patch.DisplayOrder != nil {
		add("display_order", *patch.DisplayOrder)
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)
	query := `UPDATE services SET ` + strings.Join(sets, ", ") +
		` WHERE id = $` + strconv.Itoa(len(args)) +
		` RETURNING ` + serviceColumns

	return scanService(r.pool.QueryRow(ctx, query, args...))
}

// Delete removes a service, returning ErrNotFound for an unknown id.
func (r *PgServiceRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
