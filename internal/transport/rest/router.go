package rest

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/cultour-backend/internal/transport/middleware"
)

// Routes groups everything the router mounts.
type Routes struct {
	Health *HealthHandler
	Public *PublicHandler
	Admin  *AdminHandler
	Static http.Handler

	// StaticPrefix is the URL path assets are served under, e.g. "/uploads".
	StaticPrefix string

	// Common wraps every /api route. PublicLimit and AdminLimit are applied
	// to their route groups after it; nil means no limit.
	Common      middleware.Middleware
	PublicLimit middleware.Middleware
	AdminLimit  middleware.Middleware
}

// NewRouter builds the HTTP routing table.
func NewRouter(rt Routes) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)

	public := middleware.Chain(rt.Common, rt.PublicLimit)
	admin := middleware.Chain(rt.Common, rt.AdminLimit, middleware.RequireAdmin)

	// /api/admin/{kind} is more specific than /api/{kind}/{id}, so "admin"
	// never reaches the public handlers as a kind.
	mux.Handle("GET /api/admin/{kind}", admin(http.HandlerFunc(rt.Admin.List)))
	mux.Handle("POST /api/admin/{kind}", admin(http.HandlerFunc(rt.Admin.Create)))
	mux.Handle("GET /api/admin/{kind}/{id}", admin(http.HandlerFunc(rt.Admin.Get)))
	mux.Handle("PUT /api/admin/{kind}/{id}", admin(http.HandlerFunc(rt.Admin.Update)))
	mux.Handle("DELETE /api/admin/{kind}/{id}", admin(http.HandlerFunc(rt.Admin.Delete)))
	mux.Handle("DELETE /api/admin/{kind}/{id}/image", admin(http.HandlerFunc(rt.Admin.RemoveImage)))
	mux.Handle("OPTIONS /api/", rt.Common(http.NotFoundHandler()))

	mux.Handle("GET /api/{kind}", public(http.HandlerFunc(rt.Public.List)))
	mux.Handle("GET /api/{kind}/{id}", public(http.HandlerFunc(rt.Public.Get)))

	prefix := strings.TrimRight(rt.StaticPrefix, "/")
	mux.Handle("GET "+prefix+"/", http.StripPrefix(prefix, rt.Static))

	return mux
}
