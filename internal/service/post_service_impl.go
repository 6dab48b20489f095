package service

import (
	"context"

	"github.com/sejongblog/backend/internal/model"
	"github.com/sejongblog/backend/internal/pagination"
	"github.com/sejongblog/backend/internal/repository"
)

// postServiceImpl is the production implementation of PostService.
type postServiceImpl struct {
	repo repository.PostRepository
}

// NewPostService creates a PostService backed by the given repository.
func NewPostService(repo repository.PostRepository) PostService {
	return &postServiceImpl{repo: repo}
}

func (s *postServiceImpl) list(ctx context.Context, page, limit int, publicOnly bool) (*pagination.Page[*model.PostListItem], error) {
	return pagination.Paginate(ctx, page, limit,
		func(ctx context.Context) (int, error) {
			return s.repo.Count(ctx, publicOnly)
		},
		func(ctx context.Context, limit, offset int) ([]*model.PostListItem, error) {
			return s.repo.List(ctx, model.PostListOptions{
				PublicOnly: publicOnly,
				Limit:      limit,
				Offset:     offset,
			})
		},
	)
}

// ListPublic returns a page of public posts, newest first.
func (s *postServiceImpl) ListPublic(ctx context.Context, page, limit int) (*pagination.Page[*model.PostListItem], error) {
	return s.list(ctx, page, limit, true)
}

// ListAll returns a page of all posts, private included.
func (s *postServiceImpl) ListAll(ctx context.Context, page, limit int) (*pagination.Page[*model.PostListItem], error) {
	return s.list(ctx, page, limit, false)
}

// ViewPublic returns a public post and counts the view.
func (s *postServiceImpl) ViewPublic(ctx context.Context, id int64) (*model.Post, error) {
	return s.repo.ViewPublic(ctx, id)
}

// Create stores a new post.
func (s *postServiceImpl) Create(ctx context.Context, post *model.Post) error {
	return s.repo.Create(ctx, post)
}

// Update applies a sparse patch and returns the updated post.
func (s *postServiceImpl) Update(ctx context.Context, id int64, patch model.PostPatch) (*model.Post, error) {
	return s.repo.Patch(ctx, id, patch)
}

// Delete removes a post.
func (s *postServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
