// Package app assembles the store's HTTP surface from the domain packages.
package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"QualityStore/internal/auth"
	"QualityStore/internal/cart"
	"QualityStore/internal/catalog"
	"QualityStore/internal/customer"
	"QualityStore/internal/owner"
	"QualityStore/internal/session"
	"QualityStore/internal/users"
	"QualityStore/pkg/kit"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string
}

// Stores left nil default to in-memory implementations.
type Stores struct {
	Catalog   catalog.Store
	Customers customer.Store
	Carts     cart.Store
	Users     users.Store
	Sessions  session.Store
}

// RateLimit bounds credential requests per client IP. A zero Requests
// disables limiting.
type RateLimit struct {
	Requests int
	Window   time.Duration

	TrustForwardedFor bool
}

type Deps struct {
	Stores Stores

	JWTSecret      string
	OwnerKeySecret string
	OwnerPhones    []string
	CORSOrigins    []string

	RateLimit RateLimit

	// Now overrides the clock used for owner keys and tokens.
	Now func() time.Time
}

const readyTimeout = 2 * time.Second

func NewHandler(deps Deps, httpDeps HTTPDeps) http.Handler {
	log := httpDeps.Log
	if log == nil {
		log = zap.NewNop()
	}
	st := withDefaults(deps.Stores)

	tokens := auth.NewTokenMaker(deps.JWTSecret)
	if deps.Now != nil {
		tokens = tokens.WithClock(deps.Now)
	}
	owners := auth.NewPhoneAllowlist(deps.OwnerPhones)

	customerSvc := &customer.Service{Store: st.Customers, Tokens: tokens, Sessions: st.Sessions, Log: log, Now: deps.Now}
	guard := &auth.Guard{Tokens: tokens, Owners: owners, Customers: customerSvc, Log: log}

	catalogSrv := &catalog.Server{Store: st.Catalog, Log: log}
	customerSrv := &customer.Server{
		Svc:             customerSvc,
		Guard:           guard,
		Log:             log,
		LoginLimiter:    deps.RateLimit.limiter(),
		RegisterLimiter: deps.RateLimit.limiter(),
	}
	cartSrv := &cart.Server{
		Svc:   &cart.Service{Store: st.Carts, Products: st.Catalog, Log: log, Now: deps.Now},
		Guard: guard,
		Log:   log,
	}
	ownerSrv := &owner.Server{
		Svc: &owner.Service{
			Keys:     &owner.Keyring{Owners: owners, Secret: deps.OwnerKeySecret, Now: deps.Now},
			Tokens:   tokens,
			Sessions: st.Sessions,
			Products: st.Catalog,
			Log:      log,
		},
		Guard:        guard,
		Log:          log,
		KeyLimiter:   deps.RateLimit.limiter(),
		LoginLimiter: deps.RateLimit.limiter(),
	}
	usersSrv := &users.Server{Store: st.Users, Log: log}

	r := chi.NewRouter()
	setupMiddleware(r, deps, log)
	setupMetrics(r, httpDeps)

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Get("/healthz", healthz)
	r.Get("/readyz", readyz(st, log))

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", health)

		api.Route("/customer", func(cr chi.Router) {
			cr.Mount("/cart", cartSrv.Routes())
			cr.Mount("/", customerSrv.Routes())
		})
		api.Mount("/owner", ownerSrv.Routes())
		api.Mount("/users", usersSrv.Routes())
		api.Mount("/", catalogSrv.Routes())
	})

	return r
}

func withDefaults(s Stores) Stores {
	if s.Catalog == nil {
		s.Catalog = catalog.NewMemStore()
	}
	if s.Customers == nil {
		s.Customers = customer.NewMemStore()
	}
	if s.Carts == nil {
		s.Carts = cart.NewMemStore()
	}
	if s.Users == nil {
		s.Users = users.NewMemStore()
	}
	if s.Sessions == nil {
		s.Sessions = session.NewMemStore()
	}
	return s
}

func (rl RateLimit) limiter() *kit.IPRateLimiter {
	if rl.Requests <= 0 || rl.Window <= 0 {
		return nil
	}
	l := kit.NewIPRateLimiter(rl.Requests, rl.Window)
	l.TrustForwardedFor = rl.TrustForwardedFor
	return l
}

func setupMiddleware(r *chi.Mux, deps Deps, log *zap.Logger) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(log))
	r.Use(kit.CORS(kit.DefaultCORSConfig(deps.CORSOrigins)))
}

func setupMetrics(r *chi.Mux, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

type healthResp struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func health(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, healthResp{Status: "healthy", Timestamp: time.Now().UTC()})
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

type pinger interface {
	Ping(ctx context.Context) error
}

func readyz(st Stores, log *zap.Logger) http.HandlerFunc {
	checks := []struct {
		name string
		p    pinger
	}{
		{"catalog", st.Catalog},
		{"customers", st.Customers},
		{"carts", st.Carts},
		{"users", st.Users},
		{"sessions", st.Sessions},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		for _, c := range checks {
			if err := c.p.Ping(ctx); err != nil {
				log.Warn("readyz failed", zap.String("store", c.name), zap.Error(err))
				kit.WriteError(w, r, http.StatusServiceUnavailable, c.name+" not ready", nil)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	kit.WriteError(w, r, http.StatusNotFound, "not found", nil)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	kit.WriteError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
}
