package gerr

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	LocaleNotFound      = status.Error(codes.NotFound, "locale not found")
	StringUnitNotFound  = status.Error(codes.NotFound, "string unit not found")
	TranslationNotFound = status.Error(codes.NotFound, "translation not found")
	UserNotFound        = status.Error(codes.NotFound, "user not found")
	AssignmentNotFound  = status.Error(codes.NotFound, "locale assignment not found")

	ApproveDenied     = status.Error(codes.PermissionDenied, "only superadmins can approve translations")
	WriteDenied       = status.Error(codes.PermissionDenied, "translation locale is not assigned to you")
	ManageDenied      = status.Error(codes.PermissionDenied, "only superadmins can manage string units, locales and assignments")
	RoleRequired      = status.Error(codes.PermissionDenied, "user has neither the superadmin nor the reviewer role")
	NotAuthenticated  = status.Error(codes.Unauthenticated, "not authenticated")
	BadCredentials    = status.Error(codes.Unauthenticated, "invalid username or password")
	AlreadyAssigned   = status.Error(codes.AlreadyExists, "locale already assigned to user")
	UserAlreadyExists = status.Error(codes.AlreadyExists, "user already exists")
	TranslationExists = status.Error(codes.AlreadyExists, "translation for this string unit and locale already exists")
	LoginRateLimited  = status.Error(codes.ResourceExhausted, "too many login attempts")
)

// InvalidArgument builds an InvalidArgument status error.
func InvalidArgument(msg string) error {
	return status.Error(codes.InvalidArgument, msg)
}

// FailedPrecondition builds a FailedPrecondition status error.
func FailedPrecondition(msg string) error {
	return status.Error(codes.FailedPrecondition, msg)
}

// Code unwraps err and returns its status code, or codes.Unknown.
func Code(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	for e := err; e != nil; e = errors.Unwrap(e) {
		if s, ok := status.FromError(e); ok {
			return s.Code()
		}
	}
	return codes.Unknown
}
