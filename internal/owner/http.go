package owner

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"QualityStore/internal/auth"
	"QualityStore/internal/catalog"
	"QualityStore/pkg/kit"
)

// MaxUploadBytes caps upload bodies, which carry base64 images.
const MaxUploadBytes = 8 << 20

type Server struct {
	Svc   *Service
	Guard *auth.Guard
	Log   *zap.Logger

	KeyLimiter   *kit.IPRateLimiter
	LoginLimiter *kit.IPRateLimiter
}

// Routes serves owner key exchange and product management. Mount under /api/owner.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.With(limit(s.KeyLimiter)).Post("/generate-key", s.handleGenerateKey)
	r.With(limit(s.LoginLimiter)).Post("/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.Guard.RequireOwner)
		r.Get("/verify", s.handleVerify)
		r.Post("/upload-grocery-image", s.handleUpload)
		r.Get("/products", s.handleList)
		r.Delete("/products/{id}", s.handleDelete)
	})

	return r
}

func limit(l *kit.IPRateLimiter) func(http.Handler) http.Handler {
	if l == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return l.Middleware
}

type keyReq struct {
	PhoneNumber string `json:"phone_number"`
}

type keyResp struct {
	Message     string `json:"message"`
	SecurityKey string `json:"security_key"`
	PhoneNumber string `json:"phone_number"`
	ValidUntil  string `json:"valid_until"`
}

func (s *Server) handleGenerateKey(w http.ResponseWriter, r *http.Request) {
	var req keyReq
	if err := kit.DecodeJSON(w, r, kit.DefaultMaxBodyBytes, &req); err != nil {
		kit.Fail(w, r, s.Log, err)
		return
	}

	phone := strings.TrimSpace(req.PhoneNumber)
	key, err := s.Svc.Keys.RequestKey(phone)
	if err != nil {
		kit.Fail(w, r, s.Log, err)
		return
	}

	kit.WriteJSON(w, http.StatusOK, keyResp{
		Message:     "Security key generated successfully",
		SecurityKey: key,
		PhoneNumber: phone,
		ValidUntil:  "End of day (keys refresh daily)",
	})
}

type loginReq struct {
	PhoneNumber string `json:"phone_number"`
	SecurityKey string `json:"security_key"`
}

type loginResp struct {
	Message     string `json:"message"`
	Token       string `json:"token"`
	PhoneNumber string `json:"phone_number"`
	IsOwner     bool   `json:"is_owner"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := kit.DecodeJSON(w, r, kit.DefaultMaxBodyBytes, &req); err != nil {
		kit.Fail(w, r, s.Log, err)
		return
	}

	phone := strings.TrimSpace(req.PhoneNumber)
	iss, err := s.Svc.Login(r.Context(), phone, req.SecurityKey)
	if err != nil {
		kit.Fail(w, r, s.Log, err)
		return
	}

	kit.WriteJSON(w, http.StatusOK, loginResp{
		Message:     "Owner login successful",
		Token:       iss.Token,
		PhoneNumber: phone,
		IsOwner:     true,
	})
}

type verifyResp struct {
	IsOwner     bool       `json:"is_owner"`
	PhoneNumber string     `json:"phone_number"`
	Message     string     `json:"message"`
	LoginTime   *time.Time `json:"login_time,omitempty"`
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	phone, ok := s.caller(w, r)
	if !ok {
		return
	}

	resp := verifyResp{IsOwner: true, PhoneNumber: phone, Message: "Owner access verified"}
	if t, found := s.Svc.LoginTime(r.Context(), phone); found {
		resp.LoginTime = &t
	}
	kit.WriteJSON(w, http.StatusOK, resp)
}

type uploadReq struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageData   string  `json:"image_data"`
	Stock       int     `json:"stock"`
}

type uploadResp struct {
	Message   string `json:"message"`
	ProductID string `json:"product_id"`
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	phone, ok := s.caller(w, r)
	if !ok {
		return
	}

	var req uploadReq
	if err := kit.DecodeJSON(w, r, MaxUploadBytes, &req); err != nil {
		kit.Fail(w, r, s.Log, err)
		return
	}

	p, err := s.Svc.Upload(r.Context(), phone, catalog.Product{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageData,
		Stock:       req.Stock,
	})
	if err != nil {
		kit.Fail(w, r, s.Log, err)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, uploadResp{Message: "Product uploaded successfully", ProductID: p.ID})
}

type productsResp struct {
	Products []catalog.Product `json:"products"`
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	phone, ok := s.caller(w, r)
	if !ok {
		return
	}

	ps, err := s.Svc.List(r.Context(), phone)
	if err != nil {
		kit.Fail(w, r, s.Log, err)
		return
	}
	if ps == nil {
		ps = []catalog.Product{}
	}
	kit.WriteJSON(w, http.StatusOK, productsResp{Products: ps})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	phone, ok := s.caller(w, r)
	if !ok {
		return
	}

	if err := s.Svc.Delete(r.Context(), phone, chi.URLParam(r, "id")); err != nil {
		kit.Fail(w, r, s.Log, err)
		return
	}
	kit.WriteMessage(w, http.StatusOK, "Product deleted successfully")
}

func (s *Server) caller(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := auth.IdentityFromContext(r.Context())
	if !ok || id.Phone == "" {
		kit.Fail(w, r, s.Log, auth.ErrUnknownCaller)
		return "", false
	}
	return id.Phone, true
}
