package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sejongblog/backend/internal/model"
	"github.com/sejongblog/backend/internal/service"
)

const defaultPostLimit = 9

// PostHandler handles the blog post endpoints, public and admin.
type PostHandler struct {
	postService service.PostService
}

// NewPostHandler creates a PostHandler with the given service.
func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// List handles GET /api/posts: public posts only, newest first.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r, defaultPostLimit)

	result, err := h.postService.ListPublic(r.Context(), page, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// AdminList handles GET /api/admin/posts: private posts included.
func (h *PostHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r, defaultPostLimit)

	result, err := h.postService.ListAll(r.Context(), page, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Get handles GET /api/posts/{id}. Every successful read counts a view.
// Private posts are indistinguishable from missing ones here.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}

	post, err := h.postService.ViewPublic(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// postRequest is the JSON body for creating a post.
type postRequest struct {
	TitleKo      string  `json:"title_ko"`
	TitleEn      *string `json:"title_en"`
	TitleZh      *string `json:"title_zh"`
	ContentKo    string  `json:"content_ko"`
	ContentEn    *string `json:"content_en"`
	ContentZh    *string `json:"content_zh"`
	ThumbnailURL *string `json:"thumbnail_url"`
	IsPublic     *bool   `json:"is_public"`
}

// Create handles POST /api/posts (admin only).
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if req.TitleKo == "" || req.ContentKo == "" {
		writeError(w, http.StatusBadRequest, "title_ko_and_content_ko_required")
		return
	}

	post := &model.Post{
		TitleKo:      req.TitleKo,
		TitleEn:      req.TitleEn,
		TitleZh:      req.TitleZh,
		ContentKo:    req.ContentKo,
		ContentEn:    req.ContentEn,
		ContentZh:    req.ContentZh,
		ThumbnailURL: req.ThumbnailURL,
		IsPublic:     true,
	}
	if req.IsPublic != nil {
		post.IsPublic = *req.IsPublic
	}

	if err := h.postService.Create(r.Context(), post); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

// Update handles PUT /api/posts/{id} (admin only). Absent fields are left
// untouched.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}

	var patch model.PostPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if patch.TitleKo != nil && *patch.TitleKo == "" {
		writeError(w, http.StatusBadRequest, "title_ko_must_not_be_empty")
		return
	}
	if patch.ContentKo != nil && *patch.ContentKo == "" {
		writeError(w, http.StatusBadRequest, "content_ko_must_not_be_empty")
		return
	}

	post, err := h.postService.Update(r.Context(), id, patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// Delete handles DELETE /api/posts/{id} (admin only).
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}

	if err := h.postService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
