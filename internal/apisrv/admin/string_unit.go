package admin

import (
	"net/http"

	"github.com/Sagaustus/spyral-translation/internal/apisrv/response"
	"github.com/Sagaustus/spyral-translation/internal/form"
)

func (s *Server) SaveStringUnit(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	req := &form.SaveStringUnitRequest{}
	if err := decodeValid(r, req); err != nil {
		response.Error(w, r, err)
		return
	}
	res, err := s.svc.SaveStringUnit(r.Context(), p, req.Insert())
	if err != nil {
		response.Error(w, r, err)
		return
	}
	code := http.StatusOK
	if res.Created {
		code = http.StatusCreated
	}
	response.JSON(w, r, code, newSaveStringUnitResponse(res))
}

func (s *Server) GetStringUnit(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	id, err := idParam(r)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	su, err := s.svc.GetStringUnit(r.Context(), p, id)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, newStringUnitView(su))
}

func (s *Server) ListAssignments(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	list, err := s.svc.ListAssignments(r.Context(), p)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	out := make([]AssignmentView, 0, len(list))
	for _, a := range list {
		out = append(out, newAssignmentView(a))
	}
	response.JSON(w, r, http.StatusOK, out)
}

func (s *Server) AssignLocale(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	req := &form.AssignmentRequest{}
	if err := decodeValid(r, req); err != nil {
		response.Error(w, r, err)
		return
	}
	id, err := s.svc.AssignLocale(r.Context(), p, req.Username, req.LocaleCode)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusCreated, map[string]int{"id": id})
}

func (s *Server) UnassignLocale(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	req := &form.AssignmentRequest{}
	if err := decodeValid(r, req); err != nil {
		response.Error(w, r, err)
		return
	}
	if err := s.svc.UnassignLocale(r.Context(), p, req.Username, req.LocaleCode); err != nil {
		response.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
