package rest

import (
	"net/http"

	"github.com/glibera/readlogger/internal/transport/middleware"
)

// Handlers bundles the route handlers the router wires up.
type Handlers struct {
	Auth    *AuthHandler
	Shelf   *ShelfHandler
	Catalog *CatalogHandler
	History *HistoryHandler
	Support *SupportHandler
	Health  *HealthHandler
}

// NewRouter assembles the route table. Auth endpoints get the rate limit,
// everything else under /api requires an authenticated user; probes stay
// open. The caller wraps the returned mux in the outer middleware chain
// (recovery, request id, logging, CORS, token resolution).
func NewRouter(h Handlers, limitAuth middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	limited := func(fn http.HandlerFunc) http.Handler { return limitAuth(fn) }
	protected := func(fn http.HandlerFunc) http.Handler { return middleware.RequireUser(fn) }

	mux.Handle("POST /api/auth/register", limited(h.Auth.Register))
	mux.Handle("POST /api/auth/login_check", limited(h.Auth.Login))
	mux.Handle("POST /api/auth/email-confirm", limited(h.Auth.ConfirmEmail))
	mux.Handle("GET /api/user/resend-confirmation-email", protected(h.Auth.ResendConfirmation))

	mux.Handle("POST /api/user-book", protected(h.Shelf.Create))
	mux.Handle("GET /api/user-books", protected(h.Shelf.List))
	mux.Handle("GET /api/user-book/{id}", protected(h.Shelf.Get))
	mux.Handle("PUT /api/user-book/{id}", protected(h.Shelf.Update))
	mux.Handle("DELETE /api/user-book/{id}", protected(h.Shelf.Delete))

	mux.Handle("GET /api/authors/{query}", protected(h.Catalog.SearchAuthors))
	mux.Handle("GET /api/books/{query}", protected(h.Catalog.SearchBooks))

	mux.Handle("GET /api/log/{id}", protected(h.History.List))

	mux.Handle("GET /api/support/{resources}", protected(h.Support.Dictionaries))

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	return mux
}
