package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/sejongblog/backend/internal/model"
)

type contextKey string

const adminKey contextKey = "admin"

// AdminFromContext returns the authenticated admin, if any.
func AdminFromContext(ctx context.Context) (*model.Admin, bool) {
	a, ok := ctx.Value(adminKey).(*model.Admin)
	return a, ok
}

// WithAdmin stores the authenticated admin in the context.
func WithAdmin(ctx context.Context, admin *model.Admin) context.Context {
	return context.WithValue(ctx, adminKey, admin)
}

// AdminFinder resolves a token subject to a stored admin identity.
type AdminFinder interface {
	FindByUsername(ctx context.Context, username string) (*model.Admin, error)
}

// Guard gates requests on a verified bearer token whose subject resolves in
// the credential store.
type Guard struct {
	codec  *TokenCodec
	admins AdminFinder
}

// NewGuard creates a Guard from a token codec and a credential store.
func NewGuard(codec *TokenCodec, admins AdminFinder) *Guard {
	return &Guard{codec: codec, admins: admins}
}

// resolve returns the admin for the request's bearer token, or nil. A valid
// token whose subject no longer exists resolves to nil, same as no token.
func (g *Guard) resolve(r *http.Request) *model.Admin {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return nil
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))

	username, err := g.codec.Verify(token, time.Now())
	if err != nil {
		return nil
	}
	admin, err := g.admins.FindByUsername(r.Context(), username)
	if err != nil {
		return nil
	}
	return admin
}

// Require rejects the request with 401 unless a bearer token resolves to an
// admin. All failure modes produce the same response.
func (g *Guard) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		admin := g.resolve(r)
		if admin == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
			return
		}
		next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context(), admin)))
	})
}

// Optional stores the admin in the context when a token resolves and lets
// the request through anonymously otherwise. Used by endpoints that behave
// differently for admins without rejecting anonymous callers.
func (g *Guard) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if admin := g.resolve(r); admin != nil {
			r = r.WithContext(WithAdmin(r.Context(), admin))
		}
		next.ServeHTTP(w, r)
	})
}
