package handler

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"path"
	"strings"

	"github.com/sejongblog/backend/internal/storage"
)

// allowedUploadExts maps the accepted image extensions to the content types
// they are allowed to arrive with.
var allowedUploadExts = map[string][]string{
	".jpg":  {"image/jpeg"},
	".jpeg": {"image/jpeg"},
	".png":  {"image/png"},
	".gif":  {"image/gif"},
	".webp": {"image/webp"},
}

// UploadHandler stores admin-uploaded images for use as post thumbnails and
// service icons.
type UploadHandler struct {
	storage storage.Storage
	maxSize int64
}

// NewUploadHandler creates an UploadHandler with the given storage backend
// and size limit in bytes.
func NewUploadHandler(store storage.Storage, maxSize int64) *UploadHandler {
	return &UploadHandler{storage: store, maxSize: maxSize}
}

// Upload handles POST /api/admin/uploads (admin only). The image arrives as
// the multipart field "file"; on success the public URL comes back.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize+4096)
	if err := r.ParseMultipartForm(h.maxSize); err != nil {
		writeError(w, http.StatusBadRequest, "file_too_large")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file_required")
		return
	}
	defer file.Close()

	if header.Size > h.maxSize {
		writeError(w, http.StatusBadRequest, "file_too_large")
		return
	}

	ext := strings.ToLower(path.Ext(header.Filename))
	contentTypes, ok := allowedUploadExts[ext]
	if !ok {
		writeError(w, http.StatusBadRequest, "unsupported_file_type")
		return
	}
	if ct := header.Header.Get("Content-Type"); ct != "" && !matchesContentType(ct, contentTypes) {
		writeError(w, http.StatusBadRequest, "content_type_mismatch")
		return
	}

	b := make([]byte, 16)
	_, _ = rand.Read(b)
	key := hex.EncodeToString(b) + ext

	url, err := h.storage.Save(r.Context(), key, file)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"url": url})
}

func matchesContentType(ct string, allowed []string) bool {
	// Strip any parameters such as charset before comparing.
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	ct = strings.TrimSpace(strings.ToLower(ct))
	for _, a := range allowed {
		if ct == a {
			return true
		}
	}
	return false
}
