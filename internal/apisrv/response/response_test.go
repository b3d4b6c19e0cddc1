package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	gerr "github.com/Sagaustus/spyral-translation/internal/errors"
	"github.com/Sagaustus/spyral-translation/internal/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrResponse(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{gerr.TranslationNotFound, http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", gerr.ApproveDenied), http.StatusForbidden},
		{gerr.NotAuthenticated, http.StatusUnauthorized},
		{gerr.TranslationExists, http.StatusConflict},
		{gerr.LoginRateLimited, http.StatusTooManyRequests},
		{gerr.InvalidArgument("bad"), http.StatusBadRequest},
		{gerr.FailedPrecondition("no"), http.StatusBadRequest},
		{errors.New("db is down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, NewErrResponse(tc.err).HTTPStatusCode, tc.err.Error())
	}

	internal := NewErrResponse(errors.New("secret dsn"))
	assert.Equal(t, "internal error", internal.ErrorText)
}

func TestNewErrResponseFields(t *testing.T) {
	v := form.Violations{}
	v.Add("status", "unknown")
	resp := NewErrResponse(v.Err())
	assert.Equal(t, http.StatusBadRequest, resp.HTTPStatusCode)
	assert.Equal(t, "Unknown.", resp.Fields["status"])
	assert.Equal(t, "InvalidArgument", resp.Code)
}

func TestErrorWritesJSON(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/translations/9", nil)
	Error(w, r, gerr.TranslationNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"status":"Not Found","code":"NotFound","error":"translation not found"}`, w.Body.String())
}

func TestDecode(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
	require.NoError(t, Decode(r, &v))
	assert.Equal(t, "x", v.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	assert.Equal(t, http.StatusBadRequest, NewErrResponse(Decode(r, &v)).HTTPStatusCode)
}
