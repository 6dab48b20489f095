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

// PostRepository is the persistence interface for blog posts.
type PostRepository interface {
	Count(ctx context.Context, publicOnly bool) (int, error)
	List(ctx context.Context, opts model.PostListOptions) ([]*model.PostListItem, error)
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	// ViewPublic returns the public post with the given id after atomically
	// incrementing its view count.
	ViewPublic(ctx context.Context, id int64) (*model.Post, error)
	Create(ctx context.Context, post *model.Post) error
	Patch(ctx context.Context, id int64, patch model.PostPatch) (*model.Post, error)
	Delete(ctx context.Context, id int64) error
}

// PgPostRepository is the PostgreSQL implementation of PostRepository.
type PgPostRepository struct {
	pool *pgxpool.Pool
}

// NewPgPostRepository creates a PgPostRepository backed by the given pool.
func NewPgPostRepository(pool *pgxpool.Pool) *PgPostRepository {
	return &PgPostRepository{pool: pool}
}

var _ PostRepository = (*PgPostRepository)(nil)

const postColumns = `id, title_ko, title_en, title_zh, content_ko, content_en, content_zh,
	thumbnail_url, is_public, view_count, created_at, updated_at`

func scanPost(row pgx.Row) (*model.Post, error) {
	var p model.Post
	err := row.Scan(&p.ID, &p.TitleKo, &p.TitleEn, &p.TitleZh,
		&p.ContentKo, &p.ContentEn, &p.ContentZh,
		&p.ThumbnailURL, &p.IsPublic, &p.ViewCount, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Count returns the number of posts, optionally restricted to public ones.
func (r *PgPostRepository) Count(ctx context.Context, publicOnly bool) (int, error) {
	query := `SELECT COUNT(*) FROM posts`
	if publicOnly {
		query += ` WHERE is_public = TRUE`
	}
	var total int
	if err := r.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// List returns the list projection of posts, newest first.
func (r *PgPostRepository) List(ctx context.Context, opts model.PostListOptions) ([]*model.PostListItem, error) {
	where := ""
	if opts.PublicOnly {
		where = `WHERE is_public = TRUE `
	}
	rows, err := r.pool.Query(ctx,
		`SELECT id, title_ko, title_en, title_zh, thumbnail_url, is_public, view_count, created_at
		 FROM posts `+where+
			`ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*model.PostListItem
	for rows.Next() {
		var p model.PostListItem
		if err := rows.Scan(&p.ID, &p.TitleKo, &p.TitleEn, &p.TitleZh,
			&p.ThumbnailURL, &p.IsPublic, &p.ViewCount, &p.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &p)
	}
	return items, rows.Err()
}

// GetByID returns a post regardless of visibility, or ErrNotFound.
func (r *PgPostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	return scanPost(r.pool.QueryRow(ctx,
		`SELECT `+postColumns+` FROM posts WHERE id = $1`, id))
}

// ViewPublic increments the view count of a public post and returns the
// fresh row. The increment is a single UPDATE so concurrent views cannot
// lose updates.
func (r *PgPostRepository) ViewPublic(ctx context.Context, id int64) (*model.Post, error) {
	return scanPost(r.pool.QueryRow(ctx,
		`UPDATE posts SET view_count = view_count + 1
		 WHERE id = $1 AND is_public = TRUE
		 RETURNING `+postColumns, id))
}

// Create inserts a new post and populates its id and created_at.
func (r *PgPostRepository) Create(ctx context.Context, post *model.Post) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO posts (title_ko, title_en, title_zh, content_ko, content_en, content_zh,
		                    thumbnail_url, is_public)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, view_count, created_at`,
		post.TitleKo, post.TitleEn, post.TitleZh,
		post.ContentKo, post.ContentEn, post.ContentZh,
		post.ThumbnailURL, post.IsPublic,
	).Scan(&post.ID, &post.ViewCount, &post.CreatedAt)
}

// Patch applies only the fields present in the patch and bumps updated_at.
func (r *PgPostRepository) Patch(ctx context.Context, id int64, patch model.PostPatch) (*model.Post, error) {
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
	if patch.ContentKo != nil {
		add("content_ko", *patch.ContentKo)
	}
	if patch.ContentEn != nil {
		add("content_en", *patch.ContentEn)
	}
	if patch.ContentZh != nil {
		add("content_zh", *patch.ContentZh)
	}
	if patch.ThumbnailURL != nil {
		add("thumbnail_url", *patch.ThumbnailURL)
	}
	if patch.IsPublic != nil {
		add("is_public", *patch.IsPublic)
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)
	query := `UPDATE posts SET ` + strings.Join(sets, ", ") +
		` WHERE id = $` + strconv.Itoa(len(args)) +
		` RETURNING ` + postColumns

	return scanPost(r.pool.QueryRow(ctx, query, args...))
}

// Delete removes a post, returning ErrNotFound for an unknown id.
func (r *PgPostRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
