package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sejongblog/backend/internal/model"
	"github.com/sejongblog/backend/internal/service"
	"github.com/sejongblog/backend/pkg/auth"
)

const defaultContactLimit = 10

// ContactHandler handles the citizen inquiry endpoints.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// contactRequest is the JSON body for submitting an inquiry.
type contactRequest struct {
	Name           string `json:"name"`
	Contact        string `json:"contact"`
	Message        string `json:"message"`
	IsSecret       bool   `json:"is_secret"`
	SecretPassword string `json:"secret_password"`
}

// Submit handles POST /api/contacts. Open to anyone.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if req.Name == "" || req.Contact == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "name_contact_and_message_required")
		return
	}

	contact := &model.Contact{
		Name:     req.Name,
		Contact:  req.Contact,
		Message:  req.Message,
		IsSecret: req.IsSecret,
	}

	if err := h.contactService.Submit(r.Context(), contact, req.SecretPassword); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, contact)
}

// List handles GET /api/contacts: the public board projection. Secret
// entries show a masked name only.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r, defaultContactLimit)

	result, err := h.contactService.ListPublic(r.Context(), page, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Get handles GET /api/contacts/{id}. Admins see everything; everyone else
// gets a 403 on secret inquiries and must verify the password instead.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}

	_, isAdmin := auth.AdminFromContext(r.Context())

	contact, err := h.contactService.View(r.Context(), id, isAdmin)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contact)
}

// verifyRequest is the JSON body for the secret-access gate.
type verifyRequest struct {
	Password string `json:"password"`
}

// Verify handles POST /api/contacts/{id}/verify. A correct password returns
// the full record for this response only; nothing is remembered.
func (h *ContactHandler) Verify(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_id")
		return
	}

	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	contact, err := h.contactService.VerifySecretPassword(r.Context(), id, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contact)
}
