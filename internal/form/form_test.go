package form

import (
	"net/url"
	"testing"

	"github.com/Sagaustus/spyral-translation/internal/entity"
	gerr "github.com/Sagaustus/spyral-translation/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

func TestLoginRequestValidate(t *testing.T) {
	assert.NoError(t, (&LoginRequest{Username: "ana", Password: "pw"}).Validate())

	err := (&LoginRequest{Username: "ana"}).Validate()
	assert.Equal(t, codes.InvalidArgument, gerr.Code(err))
	assert.Contains(t, FieldViolations(err), "password")
}

func TestParseTranslationFilter(t *testing.T) {
	q := url.Values{
		"locale":          {"fr"},
		"status":          {"approved, stale"},
		"provenance":      {"imported"},
		"has_qa_warnings": {"yes"},
		"q":               {" title "},
		"limit":           {"20"},
		"offset":          {"40"},
	}
	f, err := ParseTranslationFilter(q)
	require.NoError(t, err)
	assert.Equal(t, "fr", f.LocaleCode)
	assert.Equal(t, []entity.TranslationStatus{entity.StatusApproved, entity.StatusStale}, f.Statuses)
	assert.Equal(t, entity.ProvenanceImported, f.Provenance)
	require.NotNil(t, f.HasQAWarnings)
	assert.True(t, *f.HasQAWarnings)
	assert.Equal(t, "title", f.Search)
	assert.Equal(t, 20, f.Limit)
	assert.Equal(t, 40, f.Offset)
	assert.False(t, f.Scope.Unrestricted)
}

func TestParseTranslationFilterDefaults(t *testing.T) {
	f, err := ParseTranslationFilter(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, DefaultPageLimit, f.Limit)
	assert.Nil(t, f.HasQAWarnings)
}

func TestParseTranslationFilterInvalid(t *testing.T) {
	_, err := ParseTranslationFilter(url.Values{
		"status":          {"DONE"},
		"has_qa_warnings": {"maybe"},
		"limit":           {"100000"},
		"offset":          {"-1"},
	})
	assert.Equal(t, codes.InvalidArgument, gerr.Code(err))
	v := FieldViolations(err)
	assert.Contains(t, v, "status")
	assert.Contains(t, v, "has_qa_warnings")
	assert.Contains(t, v, "limit")
	assert.Contains(t, v, "offset")
}

func TestUpdateTranslationRequest(t *testing.T) {
	status := "APPROVED"
	text := "Bonjour"
	r := &UpdateTranslationRequest{Status: &status, ReviewerText: &text}
	require.NoError(t, r.Validate())

	e := r.Edit()
	require.NotNil(t, e.Status)
	assert.Equal(t, entity.StatusApproved, *e.Status)
	assert.Equal(t, "Bonjour", *e.ReviewerText)
	assert.Nil(t, e.Provenance)

	bad := "DONE"
	err := (&UpdateTranslationRequest{Status: &bad}).Validate()
	assert.Contains(t, FieldViolations(err), "status")
}

func TestCreateTranslationRequest(t *testing.T) {
	assert.NoError(t, (&CreateTranslationRequest{StringUnitId: 1, LocaleId: 2}).Validate())

	err := (&CreateTranslationRequest{StringUnitId: 1, LocaleId: 2, Status: "DONE"}).Validate()
	assert.Contains(t, FieldViolations(err), "status")

	err = (&CreateTranslationRequest{}).Validate()
	v := FieldViolations(err)
	assert.Contains(t, v, "string_unit_id")
	assert.Contains(t, v, "locale_id")
}

func TestBulkActionRequest(t *testing.T) {
	assert.NoError(t, (&BulkActionRequest{Action: BulkApprove, Ids: []int{1, 2}}).Validate())

	err := (&BulkActionRequest{Action: "delete", Ids: []int{1}}).Validate()
	assert.Contains(t, FieldViolations(err), "action")

	err = (&BulkActionRequest{Action: BulkFlag}).Validate()
	assert.Contains(t, FieldViolations(err), "ids")
}

func TestSaveStringUnitRequest(t *testing.T) {
	err := (&SaveStringUnitRequest{Location: "home"}).Validate()
	assert.Contains(t, FieldViolations(err), "message_id")

	r := &SaveStringUnitRequest{Location: "home", MessageId: "title", SourceText: "Hi"}
	require.NoError(t, r.Validate())
	assert.Equal(t, "title", r.Insert().MessageId)
}

func TestViolationsMessageFormat(t *testing.T) {
	v := Violations{}
	v.Add("name", "must be set")
	v.Add("name", "ignored")
	assert.Equal(t, "Must be set.", FieldViolations(v.Err())["name"])
	assert.Nil(t, Violations{}.Err())
}
