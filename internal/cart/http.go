package cart

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"QualityStore/internal/auth"
	"QualityStore/pkg/kit"
)

type Server struct {
	Svc   *Service
	Guard *auth.Guard
	Log   *zap.Logger
}

// Routes serves the caller's cart. Mount under /api/customer/cart.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.Guard.RequireCustomer)

	r.Get("/", s.handleGet)
	r.Post("/add", s.handleAdd)
	r.Put("/{product_id}", s.handleUpdate)
	r.Delete("/{product_id}", s.handleRemove)

	return r
}

type itemReq struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	customerID, ok := s.caller(w, r)
	if !ok {
		return
	}

	var req itemReq
	if err := kit.DecodeJSON(w, r, kit.DefaultMaxBodyBytes, &req); err != nil {
		kit.Fail(w, r, s.Log, err)
		return
	}
	req.ProductID = strings.TrimSpace(req.ProductID)
	if req.ProductID == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "product_id required", nil)
		return
	}

	if err := s.Svc.Add(r.Context(), customerID, req.ProductID, req.Quantity); err != nil {
		kit.Fail(w, r, s.Log, err)
		return
	}
	kit.WriteMessage(w, http.StatusOK, "Item added to cart successfully")
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	customerID, ok := s.caller(w, r)
	if !ok {
		return
	}

	v, err := s.Svc.View(r.Context(), customerID)
	if err != nil {
		kit.Fail(w, r, s.Log, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, v)
}

// handleUpdate takes the quantity from the body; a product_id in the body, if
// any, must agree with the path.
func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	customerID, ok := s.caller(w, r)
	if !ok {
		return
	}
	productID := chi.URLParam(r, "product_id")

	var req itemReq
	if err := kit.DecodeJSON(w, r, kit.DefaultMaxBodyBytes, &req); err != nil {
		kit.Fail(w, r, s.Log, err)
		return
	}
	if req.ProductID != "" && strings.TrimSpace(req.ProductID) != productID {
		kit.WriteError(w, r, http.StatusBadRequest, "product_id mismatch", map[string]any{"path": productID})
		return
	}

	if err := s.Svc.Update(r.Context(), customerID, productID, req.Quantity); err != nil {
		kit.Fail(w, r, s.Log, err)
		return
	}
	kit.WriteMessage(w, http.StatusOK, "Cart updated successfully")
}

func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	customerID, ok := s.caller(w, r)
	if !ok {
		return
	}

	if err := s.Svc.Remove(r.Context(), customerID, chi.URLParam(r, "product_id")); err != nil {
		kit.Fail(w, r, s.Log, err)
		return
	}
	kit.WriteMessage(w, http.StatusOK, "Item removed from cart")
}

func (s *Server) caller(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := auth.IdentityFromContext(r.Context())
	if !ok || id.CustomerID == "" {
		kit.Fail(w, r, s.Log, auth.ErrUnknownCaller)
		return "", false
	}
	return id.CustomerID, true
}
