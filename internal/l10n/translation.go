package l10n

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Sagaustus/spyral-translation/internal/access"
	"github.com/Sagaustus/spyral-translation/internal/dependency"
	"github.com/Sagaustus/spyral-translation/internal/entity"
	gerr "github.com/Sagaustus/spyral-translation/internal/errors"
	"github.com/Sagaustus/spyral-translation/internal/workflow"
)

// ListTranslations returns the page of translations visible to p.
func (s *Service) ListTranslations(ctx context.Context, p *access.Principal, f entity.TranslationFilter) ([]entity.TranslationFull, int, error) {
	f.Scope = p.Scope()
	return s.repo.Translations().ListTranslations(ctx, f)
}

// GetTranslation returns a translation when p may see its locale. A
// translation outside the scope is reported as not found.
func (s *Service) GetTranslation(ctx context.Context, p *access.Principal, id int) (*entity.TranslationFull, error) {
	t, err := s.repo.Translations().GetTranslationById(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.CanView(t.LocaleId) {
		return nil, gerr.TranslationNotFound
	}
	return t, nil
}

// CreateTranslation stores a new candidate for a (string unit, locale) pair,
// typically a machine draft.
func (s *Service) CreateTranslation(ctx context.Context, p *access.Principal, in *entity.TranslationInsert) (*entity.TranslationFull, error) {
	if !p.CanManage() {
		return nil, gerr.ManageDenied
	}
	t := workflow.NewTranslation(*in)
	if err := validateEnums(t.Status, t.Provenance); err != nil {
		return nil, err
	}

	var id int
	err := s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		su, err := rep.StringUnits().GetStringUnitById(ctx, in.StringUnitId)
		if err != nil {
			return err
		}
		if _, err := rep.Locales().GetLocaleById(ctx, in.LocaleId); err != nil {
			return err
		}

		workflow.RecomputeFlags(&t, su.SourceText)
		id, err = rep.Translations().AddTranslation(ctx, &t)
		if rep.IsErrUniqueViolation(err) {
			return gerr.TranslationExists
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.repo.Translations().GetTranslationById(ctx, id)
}

// UpdateTranslation applies edit to a translation. Restricted principals get
// their edit clamped to reviewer_text and status; the returned warnings
// describe any downgrade applied.
func (s *Service) UpdateTranslation(ctx context.Context, p *access.Principal, id int, edit *entity.TranslationEdit) (*entity.TranslationFull, []string, error) {
	var warnings []string
	err := s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		persisted, err := rep.Translations().GetTranslationForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !p.CanView(persisted.LocaleId) {
			return gerr.TranslationNotFound
		}

		proposed := edit.Apply(persisted.Translation)
		if p.Restricted() {
			proposed, warnings = workflow.ClampReviewerEdit(persisted.Translation, proposed, p.UserId)
		}
		if err := validateEnums(proposed.Status, proposed.Provenance); err != nil {
			return err
		}

		source := persisted.SourceText
		if proposed.StringUnitId != persisted.StringUnitId {
			su, err := rep.StringUnits().GetStringUnitById(ctx, proposed.StringUnitId)
			if err != nil {
				return err
			}
			source = su.SourceText
		}
		if proposed.LocaleId != persisted.LocaleId {
			if _, err := rep.Locales().GetLocaleById(ctx, proposed.LocaleId); err != nil {
				return err
			}
		}

		workflow.RecomputeFlags(&proposed, source)
		err = rep.Translations().UpdateTranslation(ctx, &proposed)
		if rep.IsErrUniqueViolation(err) {
			return gerr.TranslationExists
		}
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	for _, w := range warnings {
		slog.Default().WarnContext(ctx, w,
			slog.Int("translation_id", id),
			slog.String("username", p.Username),
		)
	}
	t, err := s.repo.Translations().GetTranslationById(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return t, warnings, nil
}

// Approve runs the approval action on one translation. It reports whether
// anything was written; approving an approved, synced translation writes
// nothing.
func (s *Service) Approve(ctx context.Context, p *access.Principal, id int) (*entity.TranslationFull, bool, error) {
	if !p.CanApprove() {
		return nil, false, gerr.ApproveDenied
	}
	var changed bool
	err := s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		var err error
		changed, err = approveOne(ctx, rep, id)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	t, err := s.repo.Translations().GetTranslationById(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return t, changed, nil
}

func approveOne(ctx context.Context, rep dependency.Repository, id int) (bool, error) {
	full, err := rep.Translations().GetTranslationForUpdate(ctx, id)
	if err != nil {
		return false, err
	}
	t := full.Translation
	if !workflow.Approve(&t, full.SourceHash) {
		return false, nil
	}
	workflow.RecomputeFlags(&t, full.SourceText)
	if err := rep.Translations().UpdateTranslation(ctx, &t); err != nil {
		return false, err
	}
	return true, nil
}

// BulkApprove approves every listed translation in one transaction and
// returns how many were written. Without the approve capability nothing is
// touched. Ids that no longer exist are skipped.
func (s *Service) BulkApprove(ctx context.Context, p *access.Principal, ids []int) (int, error) {
	if !p.CanApprove() {
		return 0, gerr.ApproveDenied
	}
	updated := 0
	err := s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		updated = 0
		for _, id := range ids {
			changed, err := approveOne(ctx, rep, id)
			if errors.Is(err, gerr.TranslationNotFound) {
				continue
			}
			if err != nil {
				return fmt.Errorf("can't approve translation %d: %w", id, err)
			}
			if changed {
				updated++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	slog.Default().InfoContext(ctx, "bulk approve",
		slog.Int("requested", len(ids)),
		slog.Int("updated", updated),
		slog.String("username", p.Username),
	)
	return updated, nil
}

// MarkInReview sets IN_REVIEW on the listed translations inside p's scope.
func (s *Service) MarkInReview(ctx context.Context, p *access.Principal, ids []int) (int64, error) {
	return s.setStatus(ctx, p, ids, entity.StatusInReview)
}

// Flag sets FLAGGED on the listed translations inside p's scope.
func (s *Service) Flag(ctx context.Context, p *access.Principal, ids []int) (int64, error) {
	return s.setStatus(ctx, p, ids, entity.StatusFlagged)
}

func (s *Service) setStatus(ctx context.Context, p *access.Principal, ids []int, status entity.TranslationStatus) (int64, error) {
	if !p.IsSuperadmin() && !p.IsReviewer() {
		return 0, gerr.RoleRequired
	}
	var n int64
	err := s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		var err error
		n, err = rep.Translations().SetStatusBulk(ctx, ids, status, p.Scope())
		return err
	})
	return n, err
}

// ImportResult tells whether an imported cell created or changed a row.
type ImportResult struct {
	Created bool
	Updated bool
}

// ImportTranslation records text as the approved, imported translation of
// unit in localeId. Reviewer text and machine draft are left as they are.
func (s *Service) ImportTranslation(ctx context.Context, unit *entity.StringUnit, localeId int, text string) (ImportResult, error) {
	var res ImportResult
	err := s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		t, err := rep.Translations().GetTranslationByKey(ctx, unit.Id, localeId)
		if errors.Is(err, gerr.TranslationNotFound) {
			nt := entity.Translation{
				StringUnitId: unit.Id,
				LocaleId:     localeId,
				QAFlags:      entity.QAFlags{},
			}
			workflow.Imported(&nt, text, unit.SourceHash)
			workflow.RecomputeFlags(&nt, unit.SourceText)
			if _, err := rep.Translations().AddTranslation(ctx, &nt); err != nil {
				return err
			}
			res.Created = true
			return nil
		}
		if err != nil {
			return err
		}
		if !workflow.Imported(t, text, unit.SourceHash) {
			return nil
		}
		workflow.RecomputeFlags(t, unit.SourceText)
		if err := rep.Translations().UpdateTranslation(ctx, t); err != nil {
			return err
		}
		res.Updated = true
		return nil
	})
	return res, err
}

func validateEnums(status entity.TranslationStatus, provenance entity.Provenance) error {
	if !entity.ValidTranslationStatuses[status] {
		return gerr.InvalidArgument(fmt.Sprintf("invalid status %q", status))
	}
	if !entity.ValidProvenances[provenance] {
		return gerr.InvalidArgument(fmt.Sprintf("invalid provenance %q", provenance))
	}
	return nil
}
