package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"QualityStore/pkg/kit"
)

type Server struct {
	Store Store
	Log   *zap.Logger
}

// Routes serves user creation. Mount under /api/users.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Post("/", s.handleCreate)
	return r
}

type createReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsOwner bool   `json:"is_owner"`
}

type createResp struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createReq
	if err := kit.DecodeJSON(w, r, kit.DefaultMaxBodyBytes, &req); err != nil {
		kit.Fail(w, r, s.Log, err)
		return
	}

	u, err := Validate(User{Name: req.Name, Email: req.Email, IsOwner: req.IsOwner})
	if err != nil {
		kit.Fail(w, r, s.Log, err)
		return
	}

	u, err = s.Store.Create(r.Context(), u)
	if err != nil {
		kit.Fail(w, r, s.Log, err)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, createResp{UserID: u.ID, Message: "User created successfully"})
}
