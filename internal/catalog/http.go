package catalog

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"QualityStore/pkg/kit"
)

type Server struct {
	Store Store
	Log   *zap.Logger
}

// Routes serves the public catalog. Mount under /api.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/categories", s.categories)
	r.Get("/products", s.list)
	r.Get("/products/{id}", s.get)

	return r
}

type categoriesResp struct {
	Categories []string `json:"categories"`
}

type productsResp struct {
	Products []Product `json:"products"`
}

func (s *Server) categories(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, categoriesResp{Categories: Categories})
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := Filter{
		Search:   strings.TrimSpace(q.Get("search")),
		Category: strings.TrimSpace(q.Get("category")),
	}

	products, err := s.Store.List(r.Context(), f)
	if err != nil {
		kit.Fail(w, r, s.Log, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, productsResp{Products: products})
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, ok, err := s.Store.Get(r.Context(), id)
	if err != nil {
		kit.Fail(w, r, s.Log, err)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, ErrProductNotFound.Error(), map[string]any{"id": id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}
