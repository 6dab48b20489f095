package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sejongblog/backend/internal/model"
	"github.com/sejongblog/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// mockPostRepository — stub PostRepository for unit tests
// ---------------------------------------------------------------------------

type mockPostRepository struct {
	countFunc      func(ctx context.Context, publicOnly bool) (int, error)
	listFunc       func(ctx context.Context, opts model.PostListOptions) ([]*model.PostListItem, error)
	getByIDFunc    func(ctx context.Context, id int64) (*model.Post, error)
	viewPublicFunc func(ctx context.Context, id int64) (*model.Post, error)
	createFunc     func(ctx context.Context, post *model.Post) error
	patchFunc      func(ctx context.Context, id int64, patch model.PostPatch) (*model.Post, error)
	deleteFunc     func(ctx context.Context, id int64) error
}

func (m *mockPostRepository) Count(ctx context.Context, publicOnly bool) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx, publicOnly)
	}
	return 0, nil
}

func (m *mockPostRepository) List(ctx context.Context, opts model.PostListOptions) ([]*model.PostListItem, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockPostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockPostRepository) ViewPublic(ctx context.Context, id int64) (*model.Post, error) {
	if m.viewPublicFunc != nil {
		return m.viewPublicFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockPostRepository) Create(ctx context.Context, post *model.Post) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, post)
	}
	return nil
}

func (m *mockPostRepository) Patch(ctx context.Context, id int64, patch model.PostPatch) (*model.Post, error) {
	if m.patchFunc != nil {
		return m.patchFunc(ctx, id, patch)
	}
	return nil, repository.ErrNotFound
}

func (m *mockPostRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Listing tests
// ---------------------------------------------------------------------------

func TestPostService_ListPublic_FiltersAndPaginates(t *testing.T) {
	var gotOpts model.PostListOptions
	var countedPublicOnly bool
	repo := &mockPostRepository{
		countFunc: func(ctx context.Context, publicOnly bool) (int, error) {
			countedPublicOnly = publicOnly
			return 20, nil
		},
		listFunc: func(ctx context.Context, opts model.PostListOptions) ([]*model.PostListItem, error) {
			gotOpts = opts
			return []*model.PostListItem{{ID: 1, TitleKo: "제목"}}, nil
		},
	}
	svc := NewPostService(repo)

	page, err := svc.ListPublic(context.Background(), 2, 9)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if !countedPublicOnly || !gotOpts.PublicOnly {
		t.Error("public listing must count and list public posts only")
	}
	if gotOpts.Limit != 9 || gotOpts.Offset != 9 {
		t.Errorf("expected limit=9 offset=9, got limit=%d offset=%d", gotOpts.Limit, gotOpts.Offset)
	}
	if page.Total != 20 || page.TotalPages != 3 || page.Page != 2 {
		t.Errorf("unexpected page meta: %+v", page)
	}
}

func TestPostService_ListAll_IncludesPrivate(t *testing.T) {
	var gotOpts model.PostListOptions
	repo := &mockPostRepository{
		listFunc: func(ctx context.Context, opts model.PostListOptions) ([]*model.PostListItem, error) {
			gotOpts = opts
			return nil, nil
		},
	}
	svc := NewPostService(repo)

	page, err := svc.ListAll(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if gotOpts.PublicOnly {
		t.Error("admin listing must not filter to public posts")
	}
	if page.Items == nil || len(page.Items) != 0 {
		t.Errorf("empty result must come back as an empty slice, got %#v", page.Items)
	}
}

// ---------------------------------------------------------------------------
// CRUD passthrough
// ---------------------------------------------------------------------------

func TestPostService_ViewPublic(t *testing.T) {
	repo := &mockPostRepository{
		viewPublicFunc: func(ctx context.Context, id int64) (*model.Post, error) {
			return &model.Post{ID: id, ViewCount: 42}, nil
		},
	}
	svc := NewPostService(repo)

	post, err := svc.ViewPublic(context.Background(), 8)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if post.ID != 8 || post.ViewCount != 42 {
		t.Errorf("unexpected post: %+v", post)
	}
}

func TestPostService_ViewPublic_NotFound(t *testing.T) {
	svc := NewPostService(&mockPostRepository{})

	if _, err := svc.ViewPublic(context.Background(), 99); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPostService_Update_ForwardsPatch(t *testing.T) {
	title := "새 제목"
	var gotPatch model.PostPatch
	repo := &mockPostRepository{
		patchFunc: func(ctx context.Context, id int64, patch model.PostPatch) (*model.Post, error) {
			gotPatch = patch
			return &model.Post{ID: id, TitleKo: *patch.TitleKo}, nil
		},
	}
	svc := NewPostService(repo)

	post, err := svc.Update(context.Background(), 3, model.PostPatch{TitleKo: &title})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if gotPatch.TitleKo == nil || *gotPatch.TitleKo != title {
		t.Error("patch title not forwarded")
	}
	if gotPatch.ContentKo != nil {
		t.Error("untouched fields must stay nil")
	}
	if post.TitleKo != title {
		t.Errorf("expected updated title, got %q", post.TitleKo)
	}
}
