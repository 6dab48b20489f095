package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sejongblog/backend/internal/model"
	"github.com/sejongblog/backend/internal/pagination"
	"github.com/sejongblog/backend/internal/repository"
	"github.com/sejongblog/backend/internal/service"
	"github.com/sejongblog/backend/pkg/auth"
)

// ---------------------------------------------------------------------------
// mockContactService
// ---------------------------------------------------------------------------

type mockContactService struct {
	submitFunc      func(ctx context.Context, contact *model.Contact, secretPassword string) error
	listPublicFunc  func(ctx context.Context, page, limit int) (*pagination.Page[*model.ContactListItem], error)
	viewFunc        func(ctx context.Context, id int64, requesterIsAdmin bool) (*model.Contact, error)
	verifyFunc      func(ctx context.Context, id int64, password string) (*model.Contact, error)
	listAllFunc     func(ctx context.Context, page, limit int) (*pagination.Page[*model.Contact], error)
	adminDetailFunc func(ctx context.Context, id int64) (*model.Contact, error)
	replyFunc       func(ctx context.Context, id int64, reply string, isPublic bool) (*model.Contact, error)
	deleteFunc      func(ctx context.Context, id int64) error
}

func (m *mockContactService) Submit(ctx context.Context, contact *model.Contact, secretPassword string) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, contact, secretPassword)
	}
	return nil
}

func (m *mockContactService) ListPublic(ctx context.Context, page, limit int) (*pagination.Page[*model.ContactListItem], error) {
	if m.listPublicFunc != nil {
		return m.listPublicFunc(ctx, page, limit)
	}
	return &pagination.Page[*model.ContactListItem]{Items: []*model.ContactListItem{}, Page: page, Limit: limit, TotalPages: 1}, nil
}

func (m *mockContactService) View(ctx context.Context, id int64, requesterIsAdmin bool) (*model.Contact, error) {
	if m.viewFunc != nil {
		return m.viewFunc(ctx, id, requesterIsAdmin)
	}
	return nil, repository.ErrNotFound
}

func (m *mockContactService) VerifySecretPassword(ctx context.Context, id int64, password string) (*model.Contact, error) {
	if m.verifyFunc != nil {
		return m.verifyFunc(ctx, id, password)
	}
	return nil, repository.ErrNotFound
}

func (m *mockContactService) ListAll(ctx context.Context, page, limit int) (*pagination.Page[*model.Contact], error) {
	if m.listAllFunc != nil {
		return m.listAllFunc(ctx, page, limit)
	}
	return &pagination.Page[*model.Contact]{Items: []*model.Contact{}, Page: page, Limit: limit, TotalPages: 1}, nil
}

func (m *mockContactService) AdminDetail(ctx context.Context, id int64) (*model.Contact, error) {
	if m.adminDetailFunc != nil {
		return m.adminDetailFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockContactService) Reply(ctx context.Context, id int64, reply string, isPublic bool) (*model.Contact, error) {
	if m.replyFunc != nil {
		return m.replyFunc(ctx, id, reply, isPublic)
	}
	return nil, repository.ErrNotFound
}

func (m *mockContactService) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// POST /api/contacts tests
// ---------------------------------------------------------------------------

func TestContactHandler_Submit_Success(t *testing.T) {
	var captured *model.Contact
	var capturedPassword string
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, contact *model.Contact, secretPassword string) error {
			captured = contact
			capturedPassword = secretPassword
			return nil
		},
	}
	h := NewContactHandler(mock)

	body := `{"name":"홍길동","contact":"010-1234-5678","message":"민원 문의드립니다","is_secret":true,"secret_password":"1234"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contacts", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if captured == nil {
		t.Fatal("expected Submit to be called")
	}
	if captured.Name != "홍길동" || !captured.IsSecret {
		t.Errorf("inquiry not forwarded: %+v", captured)
	}
	if capturedPassword != "1234" {
		t.Errorf("expected secret password forwarded, got %q", capturedPassword)
	}
}

func TestContactHandler_Submit_MissingFields(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	for _, body := range []string{
		`{"contact":"x","message":"y"}`,
		`{"name":"x","message":"y"}`,
		`{"name":"x","contact":"y"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/contacts", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Submit(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

// ---------------------------------------------------------------------------
// GET /api/contacts tests
// ---------------------------------------------------------------------------

func TestContactHandler_List_DefaultPaging(t *testing.T) {
	var gotPage, gotLimit int
	mock := &mockContactService{
		listPublicFunc: func(ctx context.Context, page, limit int) (*pagination.Page[*model.ContactListItem], error) {
			gotPage, gotLimit = page, limit
			return &pagination.Page[*model.ContactListItem]{
				Items:      []*model.ContactListItem{{ID: 1, Name: "홍***", IsSecret: true}},
				Total:      1,
				Page:       page,
				Limit:      limit,
				TotalPages: 1,
			}, nil
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotPage != 1 || gotLimit != 10 {
		t.Errorf("expected page=1 limit=10, got page=%d limit=%d", gotPage, gotLimit)
	}
	if !strings.Contains(rec.Body.String(), "홍***") {
		t.Errorf("expected masked name in body, got %s", rec.Body.String())
	}
}

func TestContactHandler_List_QueryPaging(t *testing.T) {
	var gotPage, gotLimit int
	mock := &mockContactService{
		listPublicFunc: func(ctx context.Context, page, limit int) (*pagination.Page[*model.ContactListItem], error) {
			gotPage, gotLimit = page, limit
			return &pagination.Page[*model.ContactListItem]{Items: []*model.ContactListItem{}, Page: page, Limit: limit, TotalPages: 1}, nil
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/contacts?page=3&limit=500", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if gotPage != 3 {
		t.Errorf("expected page=3, got %d", gotPage)
	}
	if gotLimit != pagination.MaxLimit {
		t.Errorf("expected limit clamped to %d, got %d", pagination.MaxLimit, gotLimit)
	}
}

// ---------------------------------------------------------------------------
// GET /api/contacts/{id} tests
// ---------------------------------------------------------------------------

func TestContactHandler_Get_SecretBlocksAnonymous(t *testing.T) {
	mock := &mockContactService{
		viewFunc: func(ctx context.Context, id int64, requesterIsAdmin bool) (*model.Contact, error) {
			if requesterIsAdmin {
				t.Error("anonymous request must not be flagged as admin")
			}
			return nil, service.ErrSecretContact
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/contacts/7", nil)
	req.SetPathValue("id", "7")
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestContactHandler_Get_AdminBypassesGate(t *testing.T) {
	mock := &mockContactService{
		viewFunc: func(ctx context.Context, id int64, requesterIsAdmin bool) (*model.Contact, error) {
			if !requesterIsAdmin {
				t.Error("authenticated admin must be flagged as admin")
			}
			return &model.Contact{ID: id, Name: "홍길동", Message: "비밀 내용", IsSecret: true, CreatedAt: time.Now()}, nil
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/contacts/7", nil)
	req.SetPathValue("id", "7")
	req = req.WithContext(auth.WithAdmin(req.Context(), &model.Admin{ID: 1, Username: "admin"}))
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "비밀 내용") {
		t.Error("admin view must include the message")
	}
}

func TestContactHandler_Get_InvalidID(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	req := httptest.NewRequest(http.MethodGet, "/api/contacts/abc", nil)
	req.SetPathValue("id", "abc")
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// POST /api/contacts/{id}/verify tests
// ---------------------------------------------------------------------------

func TestContactHandler_Verify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"correct password", nil, http.StatusOK},
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized},
		{"no stored password", service.ErrNoSecretPassword, http.StatusBadRequest},
		{"unknown inquiry", repository.ErrNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockContactService{
				verifyFunc: func(ctx context.Context, id int64, password string) (*model.Contact, error) {
					if tt.err != nil {
						return nil, tt.err
					}
					return &model.Contact{ID: id, Name: "홍길동", Message: "내용", IsSecret: true}, nil
				},
			}
			h := NewContactHandler(mock)

			req := httptest.NewRequest(http.MethodPost, "/api/contacts/7/verify", strings.NewReader(`{"password":"1234"}`))
			req.SetPathValue("id", "7")
			rec := httptest.NewRecorder()
			h.Verify(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("expected %d, got %d — body: %s", tt.wantCode, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestContactHandler_Verify_ForwardsPassword(t *testing.T) {
	var gotID int64
	var gotPassword string
	mock := &mockContactService{
		verifyFunc: func(ctx context.Context, id int64, password string) (*model.Contact, error) {
			gotID, gotPassword = id, password
			return &model.Contact{ID: id}, nil
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/contacts/5/verify", strings.NewReader(`{"password":"hunter2"}`))
	req.SetPathValue("id", "5")
	rec := httptest.NewRecorder()
	h.Verify(rec, req)

	if gotID != 5 || gotPassword != "hunter2" {
		t.Errorf("expected id=5 password=hunter2, got id=%d password=%q", gotID, gotPassword)
	}

	var resp model.Contact
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != 5 {
		t.Errorf("expected contact 5 back, got %d", resp.ID)
	}
}
