// Package l10n runs the translation workflow against the store: string unit
// saves with staleness propagation, translation edits, approvals and bulk
// status actions. Every multi-step mutation runs inside one transaction.
package l10n

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Sagaustus/spyral-translation/internal/access"
	"github.com/Sagaustus/spyral-translation/internal/dependency"
	"github.com/Sagaustus/spyral-translation/internal/entity"
	gerr "github.com/Sagaustus/spyral-translation/internal/errors"
)

// Service is the entry point of every workflow operation.
type Service struct {
	repo dependency.Repository
}

// New returns a service over repo. When repo is a transaction, every
// operation joins it.
func New(repo dependency.Repository) *Service {
	return &Service{repo: repo}
}

// Repository exposes the underlying store to callers that batch work.
func (s *Service) Repository() dependency.Repository {
	return s.repo
}

// ResolveLocale finds a locale by code, preferring the cache.
func (s *Service) ResolveLocale(ctx context.Context, code string) (*entity.Locale, error) {
	if c := s.repo.Cache(); c != nil {
		if l, ok := c.GetLocaleByCode(code); ok {
			return l, nil
		}
	}
	return s.repo.Locales().GetLocaleByCode(ctx, code)
}

// ListLocales returns locales ordered by code.
func (s *Service) ListLocales(ctx context.Context, enabledOnly bool) ([]entity.Locale, error) {
	return s.repo.Locales().ListLocales(ctx, enabledOnly)
}

// RefreshLocaleCache reloads the locale cache from the store. Call it after
// a transaction that wrote locales has committed.
func (s *Service) RefreshLocaleCache(ctx context.Context) error {
	c := s.repo.Cache()
	if c == nil {
		return nil
	}
	locales, err := s.repo.Locales().ListLocales(ctx, false)
	if err != nil {
		return fmt.Errorf("can't reload locales: %w", err)
	}
	c.RefreshLocales(locales)
	return nil
}

// AssignLocale gives a reviewer access to a locale.
func (s *Service) AssignLocale(ctx context.Context, p *access.Principal, username, localeCode string) (int, error) {
	if !p.CanManage() {
		return 0, gerr.ManageDenied
	}
	var id int
	err := s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		u, err := rep.Users().GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		l, err := rep.Locales().GetLocaleByCode(ctx, localeCode)
		if err != nil {
			return err
		}
		id, err = rep.Assignments().Assign(ctx, u.Id, l.Id)
		return err
	})
	if err != nil {
		return 0, err
	}
	slog.Default().InfoContext(ctx, "locale assigned",
		slog.String("username", username),
		slog.String("locale", localeCode),
		slog.String("by", p.Username),
	)
	return id, nil
}

// UnassignLocale removes a reviewer's access to a locale.
func (s *Service) UnassignLocale(ctx context.Context, p *access.Principal, username, localeCode string) error {
	if !p.CanManage() {
		return gerr.ManageDenied
	}
	return s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		u, err := rep.Users().GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		l, err := rep.Locales().GetLocaleByCode(ctx, localeCode)
		if err != nil {
			return err
		}
		return rep.Assignments().Unassign(ctx, u.Id, l.Id)
	})
}

// ListAssignments returns every locale assignment.
func (s *Service) ListAssignments(ctx context.Context, p *access.Principal) ([]entity.LocaleAssignmentFull, error) {
	if !p.CanManage() {
		return nil, gerr.ManageDenied
	}
	return s.repo.Assignments().ListAssignments(ctx)
}
