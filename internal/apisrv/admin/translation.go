package admin

import (
	"net/http"

	"github.com/Sagaustus/spyral-translation/internal/apisrv/response"
	"github.com/Sagaustus/spyral-translation/internal/form"
)

func (s *Server) ListTranslations(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	f, err := form.ParseTranslationFilter(r.URL.Query())
	if err != nil {
		response.Error(w, r, err)
		return
	}
	items, total, err := s.svc.ListTranslations(r.Context(), p, f)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	resp := &ListTranslationsResponse{
		Items: make([]TranslationView, 0, len(items)),
		Total: total,
	}
	for i := range items {
		resp.Items = append(resp.Items, newTranslationView(&items[i]))
	}
	response.JSON(w, r, http.StatusOK, resp)
}

func (s *Server) GetTranslation(w http.ResponseWriter, r *http.Request) {
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
	t, err := s.svc.GetTranslation(r.Context(), p, id)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, newTranslationView(t))
}

func (s *Server) CreateTranslation(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	req := &form.CreateTranslationRequest{}
	if err := decodeValid(r, req); err != nil {
		response.Error(w, r, err)
		return
	}
	t, err := s.svc.CreateTranslation(r.Context(), p, req.Insert())
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusCreated, newTranslationView(t))
}

func (s *Server) UpdateTranslation(w http.ResponseWriter, r *http.Request) {
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
	req := &form.UpdateTranslationRequest{}
	if err := decodeValid(r, req); err != nil {
		response.Error(w, r, err)
		return
	}
	t, warnings, err := s.svc.UpdateTranslation(r.Context(), p, id, req.Edit())
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, &UpdateTranslationResponse{
		Translation: newTranslationView(t),
		Warnings:    warnings,
	})
}

func (s *Server) ApproveTranslation(w http.ResponseWriter, r *http.Request) {
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
	t, changed, err := s.svc.Approve(r.Context(), p, id)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, &ApproveResponse{
		Translation: newTranslationView(t),
		Changed:     changed,
	})
}

func (s *Server) BulkAction(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	req := &form.BulkActionRequest{}
	if err := decodeValid(r, req); err != nil {
		response.Error(w, r, err)
		return
	}

	var affected int64
	switch req.Action {
	case form.BulkApprove:
		var n int
		n, err = s.svc.BulkApprove(r.Context(), p, req.Ids)
		affected = int64(n)
	case form.BulkMarkInReview:
		affected, err = s.svc.MarkInReview(r.Context(), p, req.Ids)
	case form.BulkFlag:
		affected, err = s.svc.Flag(r.Context(), p, req.Ids)
	}
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, &BulkActionResponse{Action: req.Action, Affected: affected})
}
