package admin

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Sagaustus/spyral-translation/internal/access"
	"github.com/Sagaustus/spyral-translation/internal/dependency"
	"github.com/Sagaustus/spyral-translation/internal/dependency/mocks"
	"github.com/Sagaustus/spyral-translation/internal/entity"
	gerr "github.com/Sagaustus/spyral-translation/internal/errors"
	"github.com/Sagaustus/spyral-translation/internal/l10n"
	"github.com/Sagaustus/spyral-translation/internal/sourcehash"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	repo        *mocks.Repository
	units       *mocks.StringUnits
	trs         *mocks.Translations
	locales     *mocks.Locales
	users       *mocks.Users
	assignments *mocks.Assignments
	srv         *Server
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		repo:        mocks.NewRepository(t),
		units:       mocks.NewStringUnits(t),
		trs:         mocks.NewTranslations(t),
		locales:     mocks.NewLocales(t),
		users:       mocks.NewUsers(t),
		assignments: mocks.NewAssignments(t),
	}
	f.repo.EXPECT().StringUnits().Return(f.units).Maybe()
	f.repo.EXPECT().Translations().Return(f.trs).Maybe()
	f.repo.EXPECT().Locales().Return(f.locales).Maybe()
	f.repo.EXPECT().Users().Return(f.users).Maybe()
	f.repo.EXPECT().Assignments().Return(f.assignments).Maybe()
	f.repo.EXPECT().IsErrUniqueViolation(mock.Anything).Return(false).Maybe()
	f.repo.EXPECT().Tx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context, dependency.Repository) error) error {
			return fn(ctx, f.repo)
		}).Maybe()
	f.srv = New(l10n.New(f.repo))
	return f
}

// do sends a request through the admin routes as p. A nil principal leaves
// the request unauthenticated.
func (f *fixture) do(t *testing.T, p *access.Principal, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if p != nil {
				req = req.WithContext(access.NewContext(req.Context(), p))
			}
			next.ServeHTTP(w, req)
		})
	})
	r.Mount("/", f.srv.Routes())

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func superadmin() *access.Principal {
	return &access.Principal{UserId: 1, Username: "root", Superadmin: true}
}

func reviewer(localeIds ...int) *access.Principal {
	return &access.Principal{UserId: 7, Username: "rev", Reviewer: true, LocaleIds: localeIds}
}

func ns(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func full(id, localeId int, status entity.TranslationStatus) *entity.TranslationFull {
	return &entity.TranslationFull{
		Translation: entity.Translation{
			Id:                     id,
			StringUnitId:           3,
			LocaleId:               localeId,
			ApprovedText:           ns("Bonjour"),
			Status:                 status,
			Provenance:             entity.ProvenanceHuman,
			SourceHashAtLastUpdate: sourcehash.Compute("Hello"),
			QAFlags:                entity.QAFlags{},
		},
		LocaleCode: "fr",
		Location:   "home",
		MessageId:  "title",
		SourceText: "Hello",
		SourceHash: sourcehash.Compute("Hello"),
	}
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestUnauthenticated(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, nil, http.MethodGet, "/translations", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decode[map[string]any](t, rec)
	assert.Equal(t, "Unauthenticated", body["code"])
}

func TestListTranslationsScopedToReviewer(t *testing.T) {
	f := newFixture(t)
	f.trs.EXPECT().ListTranslations(mock.Anything, mock.MatchedBy(func(fl entity.TranslationFilter) bool {
		return !fl.Scope.Unrestricted && assert.ObjectsAreEqual([]int{2}, fl.Scope.LocaleIds) &&
			fl.LocaleCode == "fr" && fl.Limit == 10
	})).Return([]entity.TranslationFull{*full(11, 2, entity.StatusApproved)}, 1, nil)

	rec := f.do(t, reviewer(2), http.MethodGet, "/translations?locale=fr&limit=10", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode[ListTranslationsResponse](t, rec)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 11, resp.Items[0].Id)
	assert.Equal(t, "APPROVED", resp.Items[0].Status)
	assert.False(t, resp.Items[0].Stale)
	require.NotNil(t, resp.Items[0].ApprovedText)
	assert.Equal(t, "Bonjour", *resp.Items[0].ApprovedText)
	assert.Nil(t, resp.Items[0].ReviewerText)
}

func TestListTranslationsBadFilter(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, superadmin(), http.MethodGet, "/translations?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTranslationOutsideScope(t *testing.T) {
	f := newFixture(t)
	f.trs.EXPECT().GetTranslationById(mock.Anything, 11).Return(full(11, 5, entity.StatusApproved), nil)

	rec := f.do(t, reviewer(2), http.MethodGet, "/translations/11", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetTranslationBadId(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, superadmin(), http.MethodGet, "/translations/zero", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode[map[string]any](t, rec)
	assert.Contains(t, body["fields"], "id")
}

func TestUpdateTranslationReviewerApproveDowngraded(t *testing.T) {
	f := newFixture(t)
	persisted := full(11, 2, entity.StatusInReview)
	f.trs.EXPECT().GetTranslationForUpdate(mock.Anything, 11).Return(persisted, nil)
	f.trs.EXPECT().UpdateTranslation(mock.Anything, mock.MatchedBy(func(tr *entity.Translation) bool {
		return tr.Status == entity.StatusInReview &&
			tr.ReviewerText.String == "Salut" &&
			tr.ApprovedText.String == "Bonjour" &&
			tr.ReviewerId.Int64 == 7
	})).Return(nil)
	f.trs.EXPECT().GetTranslationById(mock.Anything, 11).Return(persisted, nil)

	rec := f.do(t, reviewer(2), http.MethodPut, "/translations/11",
		`{"reviewer_text":"Salut","approved_text":"Hacked","status":"APPROVED"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode[UpdateTranslationResponse](t, rec)
	assert.Equal(t, 11, resp.Translation.Id)
	assert.NotEmpty(t, resp.Warnings)
}

func TestUpdateTranslationSourceHashReadOnly(t *testing.T) {
	f := newFixture(t)
	persisted := full(11, 2, entity.StatusInReview)
	f.trs.EXPECT().GetTranslationForUpdate(mock.Anything, 11).Return(persisted, nil)
	f.trs.EXPECT().UpdateTranslation(mock.Anything, mock.MatchedBy(func(tr *entity.Translation) bool {
		return tr.SourceHashAtLastUpdate == sourcehash.Compute("Hello") &&
			tr.ApprovedText.String == "Salut"
	})).Return(nil)
	f.trs.EXPECT().GetTranslationById(mock.Anything, 11).Return(persisted, nil)

	rec := f.do(t, superadmin(), http.MethodPut, "/translations/11",
		`{"approved_text":"Salut","source_hash_at_last_update":"forged"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestUpdateTranslationInvalidStatus(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, superadmin(), http.MethodPut, "/translations/11", `{"status":"DONE"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode[map[string]any](t, rec)
	assert.Contains(t, body["fields"], "status")
}

func TestUpdateTranslationMalformedBody(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, superadmin(), http.MethodPut, "/translations/11", `{"status":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApproveTranslation(t *testing.T) {
	f := newFixture(t)
	tr := full(11, 2, entity.StatusInReview)
	f.trs.EXPECT().GetTranslationForUpdate(mock.Anything, 11).Return(tr, nil)
	f.trs.EXPECT().UpdateTranslation(mock.Anything, mock.MatchedBy(func(t *entity.Translation) bool {
		return t.Status == entity.StatusApproved
	})).Return(nil)
	f.trs.EXPECT().GetTranslationById(mock.Anything, 11).Return(full(11, 2, entity.StatusApproved), nil)

	rec := f.do(t, superadmin(), http.MethodPost, "/translations/11/approve", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode[ApproveResponse](t, rec)
	assert.True(t, resp.Changed)
	assert.Equal(t, "APPROVED", resp.Translation.Status)
}

func TestApproveTranslationReviewerDenied(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, reviewer(2), http.MethodPost, "/translations/11/approve", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateTranslation(t *testing.T) {
	f := newFixture(t)
	f.units.EXPECT().GetStringUnitById(mock.Anything, 3).Return(&entity.StringUnit{
		Id:               3,
		StringUnitInsert: entity.StringUnitInsert{Location: "home", MessageId: "title", SourceText: "Hello"},
		SourceHash:       sourcehash.Compute("Hello"),
	}, nil)
	f.locales.EXPECT().GetLocaleById(mock.Anything, 2).Return(&entity.Locale{Id: 2}, nil)
	f.trs.EXPECT().AddTranslation(mock.Anything, mock.MatchedBy(func(t *entity.Translation) bool {
		return t.MachineDraft.String == "Bonjour" && t.Provenance == entity.ProvenanceMT
	})).Return(11, nil)
	f.trs.EXPECT().GetTranslationById(mock.Anything, 11).Return(full(11, 2, entity.StatusMachineDraft), nil)

	rec := f.do(t, superadmin(), http.MethodPost, "/translations",
		`{"string_unit_id":3,"locale_id":2,"machine_draft":"Bonjour","status":"MACHINE_DRAFT","provenance":"MT"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, 11, decode[TranslationView](t, rec).Id)
}

func TestBulkActions(t *testing.T) {
	t.Run("flag", func(t *testing.T) {
		f := newFixture(t)
		f.trs.EXPECT().SetStatusBulk(mock.Anything, []int{1, 2}, entity.StatusFlagged, entity.LocaleScope{LocaleIds: []int{2}}).Return(1, nil)

		rec := f.do(t, reviewer(2), http.MethodPost, "/translations/bulk", `{"action":"flag","ids":[1,2]}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, BulkActionResponse{Action: "flag", Affected: 1}, decode[BulkActionResponse](t, rec))
	})

	t.Run("mark in review", func(t *testing.T) {
		f := newFixture(t)
		f.trs.EXPECT().SetStatusBulk(mock.Anything, []int{4}, entity.StatusInReview, entity.LocaleScope{Unrestricted: true}).Return(1, nil)

		rec := f.do(t, superadmin(), http.MethodPost, "/translations/bulk", `{"action":"mark_in_review","ids":[4]}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, int64(1), decode[BulkActionResponse](t, rec).Affected)
	})

	t.Run("approve skips missing", func(t *testing.T) {
		f := newFixture(t)
		f.trs.EXPECT().GetTranslationForUpdate(mock.Anything, 1).Return(full(1, 2, entity.StatusInReview), nil)
		f.trs.EXPECT().GetTranslationForUpdate(mock.Anything, 2).Return(nil, gerr.TranslationNotFound)
		f.trs.EXPECT().UpdateTranslation(mock.Anything, mock.Anything).Return(nil)

		rec := f.do(t, superadmin(), http.MethodPost, "/translations/bulk", `{"action":"approve","ids":[1,2]}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, int64(1), decode[BulkActionResponse](t, rec).Affected)
	})

	t.Run("approve denied for reviewer", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(t, reviewer(2), http.MethodPost, "/translations/bulk", `{"action":"approve","ids":[1]}`)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unknown action", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(t, superadmin(), http.MethodPost, "/translations/bulk", `{"action":"delete","ids":[1]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListLocales(t *testing.T) {
	f := newFixture(t)
	f.locales.EXPECT().ListLocales(mock.Anything, false).Return([]entity.Locale{
		{Id: 1, LocaleInsert: entity.LocaleInsert{Code: "ar", Bcp47: "ar", Name: "Arabic", IsRtl: true}},
		{Id: 2, LocaleInsert: entity.LocaleInsert{Code: "fr", Bcp47: "fr", Name: "French", Enabled: true}},
	}, nil)

	rec := f.do(t, reviewer(2), http.MethodGet, "/locales?enabled=all", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	out := decode[[]LocaleView](t, rec)
	require.Len(t, out, 2)
	assert.True(t, out[0].IsRtl)
	assert.Equal(t, "fr", out[1].Code)
}

func TestListLocalesRoleRequired(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, &access.Principal{UserId: 9, Username: "nobody"}, http.MethodGet, "/locales", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSaveStringUnit(t *testing.T) {
	f := newFixture(t)
	in := &entity.StringUnitInsert{Location: "home", MessageId: "title", SourceText: "Hello"}
	f.units.EXPECT().GetStringUnitByKey(mock.Anything, "home", "title").Return(nil, gerr.StringUnitNotFound)
	f.units.EXPECT().AddStringUnit(mock.Anything, in, sourcehash.Compute("Hello")).Return(3, nil)

	rec := f.do(t, superadmin(), http.MethodPut, "/string-units",
		`{"location":"home","message_id":"title","source_text":"Hello"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	resp := decode[SaveStringUnitResponse](t, rec)
	assert.True(t, resp.Created)
	assert.Equal(t, 3, resp.StringUnit.Id)
	assert.Equal(t, sourcehash.Compute("Hello"), resp.StringUnit.SourceHash)
}

func TestSaveStringUnitMissingKey(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, superadmin(), http.MethodPut, "/string-units", `{"source_text":"Hello"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode[map[string]any](t, rec)
	assert.Contains(t, body["fields"], "location")
	assert.Contains(t, body["fields"], "message_id")
}

func TestGetStringUnit(t *testing.T) {
	f := newFixture(t)
	f.units.EXPECT().GetStringUnitById(mock.Anything, 3).Return(&entity.StringUnit{
		Id:               3,
		StringUnitInsert: entity.StringUnitInsert{Location: "home", MessageId: "title", SourceText: "Hello"},
	}, nil)

	rec := f.do(t, reviewer(2), http.MethodGet, "/string-units/3", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "title", decode[StringUnitView](t, rec).MessageId)
}

func TestAssignments(t *testing.T) {
	t.Run("assign", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetByUsername(mock.Anything, "rev").Return(&entity.User{Id: 7, Username: "rev"}, nil)
		f.locales.EXPECT().GetLocaleByCode(mock.Anything, "fr").Return(&entity.Locale{Id: 2}, nil)
		f.assignments.EXPECT().Assign(mock.Anything, 7, 2).Return(5, nil)

		rec := f.do(t, superadmin(), http.MethodPost, "/assignments", `{"username":"rev","locale_code":"fr"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, map[string]int{"id": 5}, decode[map[string]int](t, rec))
	})

	t.Run("already assigned", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetByUsername(mock.Anything, "rev").Return(&entity.User{Id: 7, Username: "rev"}, nil)
		f.locales.EXPECT().GetLocaleByCode(mock.Anything, "fr").Return(&entity.Locale{Id: 2}, nil)
		f.assignments.EXPECT().Assign(mock.Anything, 7, 2).Return(0, gerr.AlreadyAssigned)

		rec := f.do(t, superadmin(), http.MethodPost, "/assignments", `{"username":"rev","locale_code":"fr"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("reviewer cannot manage", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(t, reviewer(2), http.MethodGet, "/assignments", "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		f := newFixture(t)
		f.assignments.EXPECT().ListAssignments(mock.Anything).Return([]entity.LocaleAssignmentFull{{
			LocaleAssignment: entity.LocaleAssignment{Id: 5, UserId: 7, LocaleId: 2},
			Username:         "rev",
			LocaleCode:       "fr",
			LocaleName:       "French",
		}}, nil)

		rec := f.do(t, superadmin(), http.MethodGet, "/assignments", "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		out := decode[[]AssignmentView](t, rec)
		require.Len(t, out, 1)
		assert.Equal(t, "fr", out[0].LocaleCode)
	})

	t.Run("unassign", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetByUsername(mock.Anything, "rev").Return(&entity.User{Id: 7, Username: "rev"}, nil)
		f.locales.EXPECT().GetLocaleByCode(mock.Anything, "fr").Return(&entity.Locale{Id: 2}, nil)
		f.assignments.EXPECT().Unassign(mock.Anything, 7, 2).Return(nil)

		rec := f.do(t, superadmin(), http.MethodDelete, "/assignments", `{"username":"rev","locale_code":"fr"}`)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
