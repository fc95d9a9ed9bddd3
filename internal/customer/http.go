package customer

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"QualityStore/internal/auth"
	"QualityStore/pkg/kit"
)

type Server struct {
	Svc   *Service
	Guard *auth.Guard
	Log   *zap.Logger

	LoginLimiter    *kit.IPRateLimiter
	RegisterLimiter *kit.IPRateLimiter
}

// Routes serves registration, login and profile. Mount under /api/customer.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.With(limit(s.RegisterLimiter)).Post("/register", s.handleRegister)
	r.With(limit(s.LoginLimiter)).Post("/login", s.handleLogin)
	r.With(s.Guard.RequireCustomer).Get("/profile", s.handleProfile)

	return r
}

func limit(l *kit.IPRateLimiter) func(http.Handler) http.Handler {
	if l == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return l.Middleware
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type registerResp struct {
	Message    string `json:"message"`
	CustomerID string `json:"customer_id"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := kit.DecodeJSON(w, r, kit.DefaultMaxBodyBytes, &req); err != nil {
		kit.Fail(w, r, s.Log, err)
		return
	}

	c, err := s.Svc.Register(r.Context(), RegisterInput(req))
	if err != nil {
		kit.Fail(w, r, s.Log, err)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, registerResp{
		Message:    "Customer registered successfully",
		CustomerID: c.ID,
	})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResp struct {
	Message  string  `json:"message"`
	Token    string  `json:"token"`
	Customer Profile `json:"customer"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := kit.DecodeJSON(w, r, kit.DefaultMaxBodyBytes, &req); err != nil {
		kit.Fail(w, r, s.Log, err)
		return
	}
	if req.Email == "" || req.Password == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "email/password required", nil)
		return
	}

	c, iss, err := s.Svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		kit.Fail(w, r, s.Log, err)
		return
	}

	p := c.Profile()
	p.Phone = ""
	kit.WriteJSON(w, http.StatusOK, loginResp{
		Message:  "Login successful",
		Token:    iss.Token,
		Customer: p,
	})
}

type profileResp struct {
	Customer Profile `json:"customer"`
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		kit.Fail(w, r, s.Log, auth.ErrUnknownCaller)
		return
	}

	p, err := s.Svc.Profile(r.Context(), id.CustomerID)
	if err != nil {
		kit.Fail(w, r, s.Log, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, profileResp{Customer: p})
}
