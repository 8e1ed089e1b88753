package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/verdantlabs/identity/internal/identity/domain"
	"github.com/verdantlabs/identity/internal/identity/service"
	"github.com/verdantlabs/identity/internal/identity/store"
	"github.com/verdantlabs/identity/pkg/httpx"
	"github.com/verdantlabs/identity/pkg/slogx"

	_ "github.com/verdantlabs/identity/api/users" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store        store.Store
	Guard        *service.Guard
	UsersService *service.UsersService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Identity Users Service API
//	@version		0.1.0
//	@description	Role-guarded user directory: self-lookup for any active principal and
//	@description	full administrative CRUD for ADMIN principals.
//
//	@contact.name				Verdant Labs
//	@contact.url				https://github.com/verdantlabs/identity
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8081
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UsersService: r.UsersService}
	me := &MeHandler{}

	// Self lookup: any active principal, no role requirement.
	r.Mux.Handle("GET /v1/users/me", httpx.Chain(me, r.guarded()))

	// Read endpoints: ADMIN everywhere, single-record reads also MANAGER.
	r.Mux.Handle("GET /v1/users/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet), r.guarded(domain.RoleAdmin, domain.RoleManager)))
	r.Mux.Handle("GET /v1/users",
		httpx.Chain(http.HandlerFunc(h.HandleList), r.guarded(domain.RoleAdmin)))

	// Mutations: ADMIN only.
	admin := r.guarded(domain.RoleAdmin)
	r.Mux.Handle("POST /v1/users", httpx.Chain(http.HandlerFunc(h.HandleCreate), admin))
	r.Mux.Handle("PATCH /v1/users/{id}", httpx.Chain(http.HandlerFunc(h.HandlePatch), admin))
	r.Mux.Handle("PUT /v1/users/{id}", httpx.Chain(http.HandlerFunc(h.HandleReplace), admin))
	r.Mux.Handle("PUT /v1/users/{id}/roles", httpx.Chain(http.HandlerFunc(h.HandleSetRoles), admin))
	r.Mux.Handle("PUT /v1/users/{id}/active", httpx.Chain(http.HandlerFunc(h.HandleSetActive), admin))
	r.Mux.Handle("DELETE /v1/users/{id}", httpx.Chain(http.HandlerFunc(h.HandleDelete), admin))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
