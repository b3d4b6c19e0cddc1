// Package access decides what a principal may see and change.
//
// Superadmins (is_superuser or the L10N_SUPERADMIN group) see every locale and
// may approve. Reviewers (the L10N_REVIEWER group) see only the locales
// assigned to them and may only touch reviewer_text and status.
package access

import (
	"context"
	"fmt"

	"github.com/Sagaustus/spyral-translation/internal/dependency"
	"github.com/Sagaustus/spyral-translation/internal/entity"
)

// Principal is the authenticated actor behind a request or command.
type Principal struct {
	UserId     int
	Username   string
	Superadmin bool
	Reviewer   bool
	LocaleIds  []int
}

// FromUser builds a principal from a stored user, its groups and its
// assigned locales.
func FromUser(u *entity.User, groups []entity.Group, localeIds []int) *Principal {
	p := &Principal{
		UserId:     u.Id,
		Username:   u.Username,
		Superadmin: u.IsSuperuser,
		LocaleIds:  localeIds,
	}
	for _, g := range groups {
		switch g {
		case entity.GroupSuperadmin:
			p.Superadmin = true
		case entity.GroupReviewer:
			p.Reviewer = true
		}
	}
	return p
}

// System is the principal used by CLI commands. It is a superadmin without a
// user row.
func System() *Principal {
	return &Principal{Username: "system", Superadmin: true}
}

func (p *Principal) IsSuperadmin() bool {
	return p != nil && p.Superadmin
}

func (p *Principal) IsReviewer() bool {
	return p != nil && p.Reviewer
}

// Restricted reports whether writes by p go through reviewer clamping.
// A principal in both groups is treated as a superadmin.
func (p *Principal) Restricted() bool {
	return !p.IsSuperadmin()
}

// Scope returns the locale scope for read queries. Anyone who is neither a
// superadmin nor a reviewer gets an empty scope.
func (p *Principal) Scope() entity.LocaleScope {
	if p.IsSuperadmin() {
		return entity.LocaleScope{Unrestricted: true}
	}
	if p.IsReviewer() {
		ids := make([]int, len(p.LocaleIds))
		copy(ids, p.LocaleIds)
		return entity.LocaleScope{LocaleIds: ids}
	}
	return entity.LocaleScope{}
}

// CanView reports whether p may read translations in localeId.
func (p *Principal) CanView(localeId int) bool {
	return p.Scope().Contains(localeId)
}

// CanWrite reports whether p may submit edits to translations in localeId.
func (p *Principal) CanWrite(localeId int) bool {
	return p.CanView(localeId)
}

// CanApprove reports whether p holds the elevated approve capability.
func (p *Principal) CanApprove() bool {
	return p.IsSuperadmin()
}

// CanManage reports whether p may edit string units, locales and assignments.
func (p *Principal) CanManage() bool {
	return p.IsSuperadmin()
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// FromContext returns the principal stored in ctx, if any.
func FromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(contextKey{}).(*Principal)
	return p, ok && p != nil
}

// Load resolves a username into a principal using the store.
func Load(ctx context.Context, users dependency.Users, assignments dependency.Assignments, username string) (*Principal, error) {
	u, err := users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("can't get user %s: %w", username, err)
	}
	groups, err := users.GroupsOf(ctx, u.Id)
	if err != nil {
		return nil, fmt.Errorf("can't get groups of %s: %w", username, err)
	}
	localeIds, err := assignments.LocaleIdsOf(ctx, u.Id)
	if err != nil {
		return nil, fmt.Errorf("can't get assigned locales of %s: %w", username, err)
	}
	return FromUser(u, groups, localeIds), nil
}
