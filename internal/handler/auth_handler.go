package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sejongblog/backend/internal/model"
	"github.com/sejongblog/backend/internal/service"
	"github.com/sejongblog/backend/pkg/auth"
)

// AuthHandler handles admin login and identity lookup.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates an AuthHandler with the given service.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// loginRequest is the expected JSON body for POST /api/auth/login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	Admin       *model.Admin `json:"admin"`
}

// Login handles POST /api/auth/login. Bad credentials of either kind yield
// the same 401.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username_and_password_required")
		return
	}

	token, admin, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Admin:       admin,
	})
}

// Me handles GET /api/auth/me (admin only).
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	admin, ok := auth.AdminFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, admin)
}
