// Package admin serves the JSON API used by the review UI.
package admin

import (
	"net/http"
	"strconv"

	"github.com/Sagaustus/spyral-translation/internal/access"
	"github.com/Sagaustus/spyral-translation/internal/apisrv/response"
	gerr "github.com/Sagaustus/spyral-translation/internal/errors"
	"github.com/Sagaustus/spyral-translation/internal/form"
	"github.com/Sagaustus/spyral-translation/internal/l10n"
	"github.com/go-chi/chi/v5"
)

// Server implements the admin and reviewer endpoints. Every handler expects
// a principal in the request context.
type Server struct {
	svc *l10n.Service
}

// New creates a new admin server.
func New(svc *l10n.Service) *Server {
	return &Server{svc: svc}
}

// Routes returns the router mounted under /api behind authentication.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/translations", func(r chi.Router) {
		r.Get("/", s.ListTranslations)
		r.Post("/", s.CreateTranslation)
		r.Post("/bulk", s.BulkAction)
		r.Get("/{id}", s.GetTranslation)
		r.Put("/{id}", s.UpdateTranslation)
		r.Post("/{id}/approve", s.ApproveTranslation)
	})
	r.Get("/locales", s.ListLocales)
	r.Put("/string-units", s.SaveStringUnit)
	r.Get("/string-units/{id}", s.GetStringUnit)
	r.Route("/assignments", func(r chi.Router) {
		r.Get("/", s.ListAssignments)
		r.Post("/", s.AssignLocale)
		r.Delete("/", s.UnassignLocale)
	})
	return r
}

func principal(r *http.Request) (*access.Principal, error) {
	p, ok := access.FromContext(r.Context())
	if !ok {
		return nil, gerr.NotAuthenticated
	}
	return p, nil
}

func idParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		v := form.Violations{}
		v.Add("id", "must be a positive integer")
		return 0, v.Err()
	}
	return id, nil
}

// validator is implemented by every request form.
type validator interface {
	Validate() error
}

func decodeValid(r *http.Request, req validator) error {
	if err := response.Decode(r, req); err != nil {
		return err
	}
	return req.Validate()
}

func (s *Server) ListLocales(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	if !p.IsSuperadmin() && !p.IsReviewer() {
		response.Error(w, r, gerr.RoleRequired)
		return
	}
	enabledOnly := r.URL.Query().Get("enabled") != "all"
	locales, err := s.svc.ListLocales(r.Context(), enabledOnly)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	out := make([]LocaleView, 0, len(locales))
	for _, l := range locales {
		out = append(out, newLocaleView(l))
	}
	response.JSON(w, r, http.StatusOK, out)
}
