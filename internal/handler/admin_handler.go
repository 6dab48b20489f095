package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sejongblog/backend/internal/service"
)

// AdminHandler handles the admin console endpoints that are not plain CRUD
// on another resource: dashboard and inquiry moderation.
type AdminHandler struct {
	statsService   service.StatsService
	contactService service.ContactService
}

// NewAdminHandler creates an AdminHandler with the given services.
func NewAdminHandler(statsService service.StatsService, contactService service.ContactService) *AdminHandler {
	return &AdminHandler{statsService: statsService, contactService: contactService}
}

// Dashboard handles GET /api/admin/dashboard.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.statsService.Dashboard(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}

// ListContacts handles GET /api/admin/contacts: full records, secrets
// included.
func (h *AdminHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r, defaultContactLimit)

	result, err := h.contactService.ListAll(r.Context(), page, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// GetContact handles GET /api/admin/contacts/{id}. Opening an inquiry marks
// it read.
func (h *AdminHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}

	contact, err := h.contactService.AdminDetail(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contact)
}

// replyRequest is the JSON body for replying to an inquiry.
type replyRequest struct {
	Reply    string `json:"reply"`
	IsPublic bool   `json:"is_public"`
}

// ReplyContact handles PUT /api/admin/contacts/{id}/reply. Replying again
// overwrites the previous reply.
func (h *AdminHandler) ReplyContact(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}

	var req replyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if req.Reply == "" {
		writeError(w, http.StatusBadRequest, "reply_required")
		return
	}

	contact, err := h.contactService.Reply(r.Context(), id, req.Reply, req.IsPublic)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contact)
}

// DeleteContact handles DELETE /api/admin/contacts/{id}.
func (h *AdminHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}

	if err := h.contactService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
