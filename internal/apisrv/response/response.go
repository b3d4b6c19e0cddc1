// Package response renders JSON bodies and status-coded errors for the API.
package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/Sagaustus/spyral-translation/internal/form"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type ErrResponse struct {
	HTTPStatusCode int `json:"-"`

	StatusText string            `json:"status"`          // http status text
	Code       string            `json:"code"`            // status code name, e.g. PermissionDenied
	ErrorText  string            `json:"error,omitempty"` // user facing message
	Fields     map[string]string `json:"fields,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

// NewErrResponse converts err into a response. Errors without a status
// code become 500 with a generic message.
func NewErrResponse(err error) *ErrResponse {
	st, ok := statusOf(err)
	if !ok {
		st = status.New(codes.Internal, "internal error")
	}
	httpCode := runtime.HTTPStatusFromCode(st.Code())
	return &ErrResponse{
		HTTPStatusCode: httpCode,
		StatusText:     http.StatusText(httpCode),
		Code:           st.Code().String(),
		ErrorText:      st.Message(),
		Fields:         form.FieldViolations(st.Err()),
	}
}

func statusOf(err error) (*status.Status, bool) {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if st, ok := status.FromError(e); ok && st.Code() != codes.Unknown {
			return st, true
		}
	}
	return nil, false
}

// Error writes err as JSON and logs server side failures.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrResponse(err)
	if resp.HTTPStatusCode >= http.StatusInternalServerError {
		slog.Default().ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("err", err.Error()),
		)
	}
	_ = render.Render(w, r, resp)
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, r *http.Request, code int, v any) {
	render.Status(r, code)
	render.JSON(w, r, v)
}

// Decode reads a JSON body into v; malformed bodies become InvalidArgument.
func Decode(r *http.Request, v any) error {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		return status.Errorf(codes.InvalidArgument, "invalid JSON body: %v", err)
	}
	return nil
}
