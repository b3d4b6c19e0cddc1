package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Sagaustus/spyral-translation/internal/access"
	"github.com/Sagaustus/spyral-translation/internal/apisrv/response"
	"github.com/Sagaustus/spyral-translation/internal/auth/jwt"
	"github.com/Sagaustus/spyral-translation/internal/auth/pwhash"
	"github.com/Sagaustus/spyral-translation/internal/dependency"
	gerr "github.com/Sagaustus/spyral-translation/internal/errors"
	"github.com/Sagaustus/spyral-translation/internal/form"
	"github.com/Sagaustus/spyral-translation/internal/middleware"
	"github.com/Sagaustus/spyral-translation/internal/ratelimit"
	"github.com/go-chi/jwtauth/v5"
)

// AuthHeader carries the bearer token.
const AuthHeader = "Authorization"

// Config contains the configuration for the auth server.
type Config struct {
	JWTSecret        string                `mapstructure:"jwt_secret"`
	JWTTTL           string                `mapstructure:"jwt_ttl"`
	PasswordHashCost int                   `mapstructure:"password_hash_cost"`
	LoginLimit       ratelimit.LoginConfig `mapstructure:"login_limit"`
}

// Server issues tokens and turns them back into principals.
type Server struct {
	users       dependency.Users
	assignments dependency.Assignments
	pwhash      *pwhash.PasswordHasher
	JwtAuth     *jwtauth.JWTAuth
	jwtTTL      time.Duration
	limiter     *ratelimit.LoginLimiter
}

// New creates a new auth server.
func New(c *Config, users dependency.Users, assignments dependency.Assignments) (*Server, error) {
	if c.JWTSecret == "" {
		return nil, fmt.Errorf("auth: jwt secret is required")
	}
	ph, err := pwhash.New(c.PasswordHashCost)
	if err != nil {
		return nil, err
	}
	ttl := 24 * time.Hour
	if c.JWTTTL != "" {
		ttl, err = time.ParseDuration(c.JWTTTL)
		if err != nil {
			return nil, fmt.Errorf("auth: invalid jwt ttl %q: %w", c.JWTTTL, err)
		}
	}
	return &Server{
		users:       users,
		assignments: assignments,
		pwhash:      ph,
		JwtAuth:     jwtauth.New("HS256", []byte(c.JWTSecret), nil),
		jwtTTL:      ttl,
		limiter:     ratelimit.NewLoginLimiter(c.LoginLimit),
	}, nil
}

// Stop releases the limiter.
func (s *Server) Stop() {
	s.limiter.Stop()
}

// Login returns a token for valid credentials. Unknown users and wrong
// passwords are indistinguishable to the caller.
func (s *Server) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.ToLower(strings.TrimSpace(username))

	if err := s.limiter.CheckLogin(middleware.GetClientIP(ctx), username); err != nil {
		slog.Default().WarnContext(ctx, "login throttled",
			slog.String("username", username),
			slog.String("ip", middleware.GetClientIP(ctx)),
		)
		return "", err
	}

	pwHash, err := s.users.PasswordHashByUsername(ctx, username)
	if errors.Is(err, gerr.UserNotFound) {
		return "", gerr.BadCredentials
	}
	if err != nil {
		return "", err
	}
	if err := s.pwhash.Validate(password, pwHash); err != nil {
		return "", gerr.BadCredentials
	}

	token, err := jwt.NewTokenWithSubject(s.JwtAuth, s.jwtTTL, username)
	if err != nil {
		return "", fmt.Errorf("can't issue token: %w", err)
	}
	s.limiter.LoginSucceeded(username)
	return token, nil
}

type LoginResponse struct {
	Token string `json:"token"`
}

// HandleLogin serves POST /api/auth/login.
func (s *Server) HandleLogin(w http.ResponseWriter, r *http.Request) {
	req := &form.LoginRequest{}
	if err := response.Decode(r, req); err != nil {
		response.Error(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(w, r, err)
		return
	}
	token, err := s.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, &LoginResponse{Token: token})
}

// Principal resolves a bearer token into the acting principal.
func (s *Server) Principal(ctx context.Context, token string) (*access.Principal, error) {
	if token == "" {
		return nil, gerr.NotAuthenticated
	}
	username, err := jwt.VerifyToken(s.JwtAuth, token)
	if err != nil {
		return nil, gerr.NotAuthenticated
	}
	p, err := access.Load(ctx, s.users, s.assignments, username)
	if errors.Is(err, gerr.UserNotFound) {
		return nil, gerr.NotAuthenticated
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// WithAuth middleware rejects requests without a valid token and stores the
// principal in the request context.
func (s *Server) WithAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(strings.TrimPrefix(r.Header.Get(AuthHeader), "Bearer "))
		p, err := s.Principal(r.Context(), token)
		if err != nil {
			response.Error(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(access.NewContext(r.Context(), p)))
	})
}
