package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sejongblog/backend/internal/pagination"
	"github.com/sejongblog/backend/internal/repository"
	"github.com/sejongblog/backend/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps the failure taxonomy onto HTTP status codes.
// Anything unrecognized is a 500 and gets logged.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, service.ErrInvalidCredentials.Error())
	case errors.Is(err, service.ErrWrongPassword):
		writeError(w, http.StatusUnauthorized, service.ErrWrongPassword.Error())
	case errors.Is(err, service.ErrSecretContact):
		writeError(w, http.StatusForbidden, service.ErrSecretContact.Error())
	case errors.Is(err, service.ErrNoSecretPassword):
		writeError(w, http.StatusBadRequest, service.ErrNoSecretPassword.Error())
	default:
		slog.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error")
	}
}

// pageParams reads ?page and ?limit, falling back to page 1 and the given
// default limit. The pagination engine clamps further.
func pageParams(r *http.Request, defaultLimit int) (page, limit int) {
	page, limit = 1, defaultLimit
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	page, limit = pagination.Clamp(page, limit)
	return page, limit
}

// pathID parses the {id} path value as an int64.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
