package router

import (
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"gobeer/internal/api/beer"
	"gobeer/internal/api/user"
	"gobeer/internal/domain"
	"gobeer/internal/pkg/cache"
	"gobeer/internal/pkg/logger"
	"gobeer/internal/pkg/middleware"
)

// Options controla autenticação e rate limit do roteador.
type Options struct {
	// AuthRequired exige Bearer token (role admin ou user) em POST, PUT e PATCH de cervejas.
	AuthRequired bool
	TokenService middleware.TokenService

	// RateLimitCache nil ou RateLimitMaxRequests <= 0 desliga o rate limit.
	RateLimitCache       cache.Client
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration

	Logger logger.Logger
}

// NewRouter configura e retorna o roteador HTTP principal.
// Recebe os Handlers já inicializados por injeção de dependências.
func NewRouter(beerHandler *beer.Handler, userHandler *user.Handler, opts Options) http.Handler {
	mux := http.NewServeMux()

	// --- 1. Health Check e documentação ---
	mux.HandleFunc("GET /ping", PingHandler)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// --- 2. Autenticação ---
	if userHandler != nil {
		mux.HandleFunc("POST /api/v1/register", userHandler.RegisterUserHandler)
		mux.HandleFunc("POST /api/v1/login", userHandler.LoginUserHandler)
	}

	// --- 3. Cervejas (com e sem barra final) ---
	protect := writeGuard(opts)

	mux.HandleFunc("GET /api/v1/beer", beerHandler.ListBeersHandler)
	mux.HandleFunc("GET /api/v1/beer/{$}", beerHandler.ListBeersHandler)
	mux.HandleFunc("POST /api/v1/beer", protect(beerHandler.CreateBeerHandler))
	mux.HandleFunc("POST /api/v1/beer/{$}", protect(beerHandler.CreateBeerHandler))

	mux.HandleFunc("GET /api/v1/beer/{beerId}", beerHandler.GetBeerByIDHandler)
	mux.HandleFunc("GET /api/v1/beer/{beerId}/{$}", beerHandler.GetBeerByIDHandler)
	mux.HandleFunc("PUT /api/v1/beer/{beerId}", protect(beerHandler.UpdateBeerHandler))
	mux.HandleFunc("PUT /api/v1/beer/{beerId}/{$}", protect(beerHandler.UpdateBeerHandler))
	mux.HandleFunc("PATCH /api/v1/beer/{beerId}", protect(beerHandler.PatchBeerHandler))
	mux.HandleFunc("PATCH /api/v1/beer/{beerId}/{$}", protect(beerHandler.PatchBeerHandler))

	// --- 4. Middlewares globais ---
	var handler http.Handler = mux
	if opts.RateLimitCache != nil && opts.RateLimitMaxRequests > 0 {
		handler = middleware.RateLimiter(opts.RateLimitCache, opts.RateLimitMaxRequests, opts.RateLimitPeriod, opts.Logger)(handler)
	}
	return middleware.RequestLogger(opts.Logger)(handler)
}

// writeGuard aplica autenticação e permissão às rotas de escrita quando AuthRequired está ligado.
func writeGuard(opts Options) func(http.HandlerFunc) http.HandlerFunc {
	if !opts.AuthRequired || opts.TokenService == nil {
		return func(h http.HandlerFunc) http.HandlerFunc { return h }
	}
	auth := middleware.NewAuthMiddleware(opts.TokenService)
	perm := middleware.PermissionMiddleware(domain.RoleAdmin, domain.RoleUser)
	return func(h http.HandlerFunc) http.HandlerFunc {
		return auth(perm(h))
	}
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
