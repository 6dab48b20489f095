package service

import (
	"context"

	"github.com/sejongblog/backend/internal/model"
	"github.com/sejongblog/backend/internal/pagination"
)

// PostService is the business logic for blog posts.
type PostService interface {
	// ListPublic returns a page of public posts, newest first.
	ListPublic(ctx context.Context, page, limit int) (*pagination.Page[*model.PostListItem], error)

	// ListAll returns a page of all posts, private included. Admin console.
	ListAll(ctx context.Context, page, limit int) (*pagination.Page[*model.PostListItem], error)

	// ViewPublic returns a public post and counts the view.
	ViewPublic(ctx context.Context, id int64) (*model.Post, error)

	Create(ctx context.Context, post *model.Post) error
	Update(ctx context.Context, id int64, patch model.PostPatch) (*model.Post, error)
	Delete(ctx context.Context, id int64) error
}
