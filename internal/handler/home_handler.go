package handler

import (
	"net/http"

	"github.com/sejongblog/backend/internal/service"
)

// HomeHandler serves the public landing page aggregate.
type HomeHandler struct {
	statsService service.StatsService
}

// NewHomeHandler creates a HomeHandler with the given service.
func NewHomeHandler(statsService service.StatsService) *HomeHandler {
	return &HomeHandler{statsService: statsService}
}

// Home handles GET /api/home: featured services plus the latest public
// posts in one response.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	home, err := h.statsService.Home(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, home)
}
