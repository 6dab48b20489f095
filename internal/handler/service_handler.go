package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sejongblog/backend/internal/model"
	"github.com/sejongblog/backend/internal/service"
)

const (
	defaultServiceLimit  = 10
	defaultFeaturedLimit = 4
	maxFeaturedLimit     = 20
)

// ServiceHandler handles the service listing endpoints, public and admin.
type ServiceHandler struct {
	serviceService service.ServiceService
}

// NewServiceHandler creates a ServiceHandler with the given service.
func NewServiceHandler(serviceService service.ServiceService) *ServiceHandler {
	return &ServiceHandler{serviceService: serviceService}
}

// List handles GET /api/services: published listings only.
func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r, defaultServiceLimit)

	result, err := h.serviceService.ListPublished(r.Context(), page, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// AdminList handles GET /api/admin/services: unpublished included.
func (h *ServiceHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r, defaultServiceLimit)

	result, err := h.serviceService.ListAll(r.Context(), page, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Featured handles GET /api/services/featured for the landing page.
func (h *ServiceHandler) Featured(w http.ResponseWriter, r *http.Request) {
	limit := defaultFeaturedLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= maxFeaturedLimit {
			limit = n
		}
	}

	services, err := h.serviceService.Featured(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, services)
}

// Get handles GET /api/services/{id}. Unpublished listings are
// indistinguishable from missing ones.
func (h *ServiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}

	svc, err := h.serviceService.GetPublished(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

// serviceRequest is the JSON body for creating a service listing.
type serviceRequest struct {
	TitleKo       string  `json:"title_ko"`
	TitleEn       *string `json:"title_en"`
	TitleZh       *string `json:"title_zh"`
	DescriptionKo string  `json:"description_ko"`
	DescriptionEn *string `json:"description_en"`
	DescriptionZh *string `json:"description_zh"`
	Icon          *string `json:"icon"`
	IsPublished   *bool   `json:"is_published"`
	IsFeatured    bool    `json:"is_featured"`
	DisplayOrder  int     `json:"order"`
}

// Create handles POST /api/services (admin only).
func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req serviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if req.TitleKo == "" || req.DescriptionKo == "" {
		writeError(w, http.StatusBadRequest, "title_ko_and_description_ko_required")
		return
	}

	svc := &model.Service{
		TitleKo:       req.TitleKo,
		TitleEn:       req.TitleEn,
		TitleZh:       req.TitleZh,
		DescriptionKo: req.DescriptionKo,
		DescriptionEn: req.DescriptionEn,
		DescriptionZh: req.DescriptionZh,
		Icon:          req.Icon,
		IsPublished:   true,
		IsFeatured:    req.IsFeatured,
		DisplayOrder:  req.DisplayOrder,
	}
	if req.IsPublished != nil {
		svc.IsPublished = *req.IsPublished
	}

	if err := h.serviceService.Create(r.Context(), svc); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, svc)
}

// Update handles PUT /api/services/{id} (admin only). Absent fields are
// left untouched.
func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}

	var patch model.ServicePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if patch.TitleKo != nil && *patch.TitleKo == "" {
		writeError(w, http.StatusBadRequest, "title_ko_must_not_be_empty")
		return
	}
	if patch.DescriptionKo != nil && *patch.DescriptionKo == "" {
		writeError(w, http.StatusBadRequest, "description_ko_must_not_be_empty")
		return
	}

	svc, err := h.serviceService.Update(r.Context(), id, patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

// Delete handles DELETE /api/services/{id} (admin only).
func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}

	if err := h.serviceService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
