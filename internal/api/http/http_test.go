package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Sagaustus/spyral-translation/internal/apisrv/admin"
	"github.com/Sagaustus/spyral-translation/internal/apisrv/auth"
	"github.com/Sagaustus/spyral-translation/internal/auth/jwt"
	"github.com/Sagaustus/spyral-translation/internal/dependency/mocks"
	"github.com/Sagaustus/spyral-translation/internal/entity"
	"github.com/Sagaustus/spyral-translation/internal/l10n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type pinger struct {
	err error
}

func (p pinger) Ping(context.Context) error {
	return p.err
}

type fixture struct {
	repo        *mocks.Repository
	locales     *mocks.Locales
	users       *mocks.Users
	assignments *mocks.Assignments
	authS       *auth.Server
	handler     http.Handler
}

func newFixture(t *testing.T, db Pinger) *fixture {
	f := &fixture{
		repo:        mocks.NewRepository(t),
		locales:     mocks.NewLocales(t),
		users:       mocks.NewUsers(t),
		assignments: mocks.NewAssignments(t),
	}
	f.repo.EXPECT().Locales().Return(f.locales).Maybe()

	var err error
	f.authS, err = auth.New(&auth.Config{
		JWTSecret:        "secret",
		PasswordHashCost: bcrypt.MinCost,
	}, f.users, f.assignments)
	require.NoError(t, err)
	t.Cleanup(f.authS.Stop)

	s := New(&Config{Port: "0", AllowedOrigins: []string{"https://l10n.example.org"}})
	f.handler = s.Handler(admin.New(l10n.New(f.repo)), f.authS, db)
	return f
}

func TestHealthz(t *testing.T) {
	f := newFixture(t, pinger{})
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	f = newFixture(t, pinger{err: errors.New("down")})
	rec = httptest.NewRecorder()
	f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestApiRequiresToken(t *testing.T) {
	f := newFixture(t, pinger{})
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/locales", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/locales", nil)
	req.Header.Set(auth.AuthHeader, "Bearer garbage")
	rec = httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestApiWithToken(t *testing.T) {
	f := newFixture(t, pinger{})
	token, err := jwt.NewTokenWithSubject(f.authS.JwtAuth, time.Hour, "root")
	require.NoError(t, err)

	f.users.EXPECT().GetByUsername(mock.Anything, "root").Return(&entity.User{Id: 1, Username: "root", IsSuperuser: true}, nil)
	f.users.EXPECT().GroupsOf(mock.Anything, 1).Return(nil, nil)
	f.assignments.EXPECT().LocaleIdsOf(mock.Anything, 1).Return(nil, nil)
	f.locales.EXPECT().ListLocales(mock.Anything, true).Return([]entity.Locale{
		{Id: 2, LocaleInsert: entity.LocaleInsert{Code: "fr", Bcp47: "fr", Name: "French", Enabled: true}},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/locales", nil)
	req.Header.Set(auth.AuthHeader, "Bearer "+token)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"code":"fr"`)
	assert.NotEmpty(t, rec.Header().Get("Content-Type"))
}

func TestLoginRoute(t *testing.T) {
	f := newFixture(t, pinger{})
	f.users.EXPECT().PasswordHashByUsername(mock.Anything, "ghost").Return("", errors.New("boom"))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"ghost","password":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestCors(t *testing.T) {
	f := newFixture(t, pinger{})

	req := httptest.NewRequest(http.MethodOptions, "/api/locales", nil)
	req.Header.Set("Origin", "https://l10n.example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	assert.Equal(t, "https://l10n.example.org", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/locales", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec = httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestIsOriginAllowed(t *testing.T) {
	allowed := []string{"https://l10n.example.org"}
	assert.True(t, isOriginAllowed("http://localhost:3000", allowed))
	assert.True(t, isOriginAllowed("https://l10n.example.org", allowed))
	assert.False(t, isOriginAllowed("https://l10n.example.org.evil", allowed))
	assert.True(t, isOriginAllowed("https://any.example", []string{"*"}))
}

func TestUnknownRoute(t *testing.T) {
	f := newFixture(t, pinger{})
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
