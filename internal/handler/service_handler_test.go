package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sejongblog/backend/internal/model"
	"github.com/sejongblog/backend/internal/pagination"
	"github.com/sejongblog/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// mockServiceService
// ---------------------------------------------------------------------------

type mockServiceService struct {
	listPublishedFunc func(ctx context.Context, page, limit int) (*pagination.Page[*model.Service], error)
	listAllFunc       func(ctx context.Context, page, limit int) (*pagination.Page[*model.Service], error)
	featuredFunc      func(ctx context.Context, limit int) ([]*model.Service, error)
	getPublishedFunc  func(ctx context.Context, id int64) (*model.Service, error)
	createFunc        func(ctx context.Context, svc *model.Service) error
	updateFunc        func(ctx context.Context, id int64, patch model.ServicePatch) (*model.Service, error)
	deleteFunc        func(ctx context.Context, id int64) error
}

func (m *mockServiceService) ListPublished(ctx context.Context, page, limit int) (*pagination.Page[*model.Service], error) {
	if m.listPublishedFunc != nil {
		return m.listPublishedFunc(ctx, page, limit)
	}
	return &pagination.Page[*model.Service]{Items: []*model.Service{}, Page: page, Limit: limit, TotalPages: 1}, nil
}

func (m *mockServiceService) ListAll(ctx context.Context, page, limit int) (*pagination.Page[*model.Service], error) {
	if m.listAllFunc != nil {
		return m.listAllFunc(ctx, page, limit)
	}
	return &pagination.Page[*model.Service]{Items: []*model.Service{}, Page: page, Limit: limit, TotalPages: 1}, nil
}

func (m *mockServiceService) Featured(ctx context.Context, limit int) ([]*model.Service, error) {
	if m.featuredFunc != nil {
		return m.featuredFunc(ctx, limit)
	}
	return []*model.Service{}, nil
}

func (m *mockServiceService) GetPublished(ctx context.Context, id int64) (*model.Service, error) {
	if m.getPublishedFunc != nil {
		return m.getPublishedFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockServiceService) Create(ctx context.Context, svc *model.Service) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, svc)
	}
	return nil
}

func (m *mockServiceService) Update(ctx context.Context, id int64, patch model.ServicePatch) (*model.Service, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, patch)
	}
	return nil, repository.ErrNotFound
}

func (m *mockServiceService) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// GET /api/services tests
// ---------------------------------------------------------------------------

func TestServiceHandler_List_DefaultLimit(t *testing.T) {
	var gotLimit int
	mock := &mockServiceService{
		listPublishedFunc: func(ctx context.Context, page, limit int) (*pagination.Page[*model.Service], error) {
			gotLimit = limit
			return &pagination.Page[*model.Service]{Items: []*model.Service{}, Page: page, Limit: limit, TotalPages: 1}, nil
		},
	}
	h := NewServiceHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/services", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotLimit != 10 {
		t.Errorf("expected default limit 10, got %d", gotLimit)
	}
}

// ---------------------------------------------------------------------------
// GET /api/services/featured tests
// ---------------------------------------------------------------------------

func TestServiceHandler_Featured_DefaultLimit(t *testing.T) {
	var gotLimit int
	mock := &mockServiceService{
		featuredFunc: func(ctx context.Context, limit int) ([]*model.Service, error) {
			gotLimit = limit
			return []*model.Service{{ID: 1, TitleKo: "여권 발급"}}, nil
		},
	}
	h := NewServiceHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/services/featured", nil)
	rec := httptest.NewRecorder()
	h.Featured(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotLimit != 4 {
		t.Errorf("expected default limit 4, got %d", gotLimit)
	}
	if !strings.Contains(rec.Body.String(), "여권 발급") {
		t.Errorf("expected service in body, got %s", rec.Body.String())
	}
}

func TestServiceHandler_Featured_LimitBounds(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"?limit=6", 6},
		{"?limit=0", 4},
		{"?limit=-1", 4},
		{"?limit=999", 4},
		{"?limit=abc", 4},
	}
	for _, tt := range tests {
		var gotLimit int
		mock := &mockServiceService{
			featuredFunc: func(ctx context.Context, limit int) ([]*model.Service, error) {
				gotLimit = limit
				return nil, nil
			},
		}
		h := NewServiceHandler(mock)

		req := httptest.NewRequest(http.MethodGet, "/api/services/featured"+tt.query, nil)
		rec := httptest.NewRecorder()
		h.Featured(rec, req)

		if gotLimit != tt.want {
			t.Errorf("%s: expected limit %d, got %d", tt.query, tt.want, gotLimit)
		}
	}
}

// ---------------------------------------------------------------------------
// GET /api/services/{id} tests
// ---------------------------------------------------------------------------

func TestServiceHandler_Get_UnpublishedHidden(t *testing.T) {
	// The service layer returns ErrNotFound for unpublished listings; the
	// handler must surface a plain 404.
	h := NewServiceHandler(&mockServiceService{})

	req := httptest.NewRequest(http.MethodGet, "/api/services/9", nil)
	req.SetPathValue("id", "9")
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// Admin CRUD tests
// ---------------------------------------------------------------------------

func TestServiceHandler_Create_Defaults(t *testing.T) {
	var captured *model.Service
	mock := &mockServiceService{
		createFunc: func(ctx context.Context, svc *model.Service) error {
			captured = svc
			svc.ID = 2
			return nil
		},
	}
	h := NewServiceHandler(mock)

	body := `{"title_ko":"전입 신고","description_ko":"주소 이전 안내","order":3}`
	req := httptest.NewRequest(http.MethodPost, "/api/services", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if captured == nil {
		t.Fatal("expected Create to be called")
	}
	if !captured.IsPublished {
		t.Error("services default to published when is_published is absent")
	}
	if captured.IsFeatured {
		t.Error("services default to not featured")
	}
	if captured.DisplayOrder != 3 {
		t.Errorf("expected order 3, got %d", captured.DisplayOrder)
	}
}

func TestServiceHandler_Create_RequiresKorean(t *testing.T) {
	h := NewServiceHandler(&mockServiceService{})

	req := httptest.NewRequest(http.MethodPost, "/api/services", strings.NewReader(`{"title_ko":"전입 신고"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestServiceHandler_Update_SparsePatch(t *testing.T) {
	var gotPatch model.ServicePatch
	mock := &mockServiceService{
		updateFunc: func(ctx context.Context, id int64, patch model.ServicePatch) (*model.Service, error) {
			gotPatch = patch
			return &model.Service{ID: id}, nil
		},
	}
	h := NewServiceHandler(mock)

	body := `{"is_featured":true,"order":1}`
	req := httptest.NewRequest(http.MethodPut, "/api/services/2", strings.NewReader(body))
	req.SetPathValue("id", "2")
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotPatch.IsFeatured == nil || !*gotPatch.IsFeatured {
		t.Error("is_featured not forwarded")
	}
	if gotPatch.DisplayOrder == nil || *gotPatch.DisplayOrder != 1 {
		t.Error("order not forwarded")
	}
	if gotPatch.TitleKo != nil {
		t.Error("absent fields must stay nil in the patch")
	}
}

func TestServiceHandler_Delete(t *testing.T) {
	var deleted int64
	mock := &mockServiceService{
		deleteFunc: func(ctx context.Context, id int64) error {
			deleted = id
			return nil
		},
	}
	h := NewServiceHandler(mock)

	req := httptest.NewRequest(http.MethodDelete, "/api/services/8", nil)
	req.SetPathValue("id", "8")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if deleted != 8 {
		t.Errorf("expected Delete(8), got %d", deleted)
	}
}
