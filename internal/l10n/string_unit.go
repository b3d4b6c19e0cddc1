package l10n

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Sagaustus/spyral-translation/internal/access"
	"github.com/Sagaustus/spyral-translation/internal/dependency"
	"github.com/Sagaustus/spyral-translation/internal/entity"
	gerr "github.com/Sagaustus/spyral-translation/internal/errors"
	"github.com/Sagaustus/spyral-translation/internal/sourcehash"
)

// StringUnitResult reports what a save did.
type StringUnitResult struct {
	StringUnit  *entity.StringUnit
	Created     bool
	Updated     bool
	StaleMarked int64
}

// SaveStringUnit creates or updates the unit keyed by (location, message_id).
// The hash is always derived from the source text. When the hash stored
// before the write differs from the new one, translations of the unit that
// carry approved text are moved to STALE in the same transaction.
func (s *Service) SaveStringUnit(ctx context.Context, p *access.Principal, in *entity.StringUnitInsert) (*StringUnitResult, error) {
	if !p.CanManage() {
		return nil, gerr.ManageDenied
	}
	if in.Location == "" || in.MessageId == "" {
		return nil, gerr.InvalidArgument("location and message_id are required")
	}

	var res *StringUnitResult
	err := s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		var err error
		res, err = saveStringUnit(ctx, rep, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	if res.StaleMarked > 0 {
		slog.Default().InfoContext(ctx, "source changed, translations marked stale",
			slog.Int("string_unit_id", res.StringUnit.Id),
			slog.Int64("count", res.StaleMarked),
		)
	}
	return res, nil
}

func saveStringUnit(ctx context.Context, rep dependency.Repository, in *entity.StringUnitInsert) (*StringUnitResult, error) {
	newHash := sourcehash.Compute(in.SourceText)

	existing, err := rep.StringUnits().GetStringUnitByKey(ctx, in.Location, in.MessageId)
	if errors.Is(err, gerr.StringUnitNotFound) {
		id, err := rep.StringUnits().AddStringUnit(ctx, in, newHash)
		if err != nil {
			return nil, err
		}
		return &StringUnitResult{
			StringUnit: &entity.StringUnit{
				Id:               id,
				StringUnitInsert: *in,
				SourceHash:       newHash,
			},
			Created: true,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	// Re-read under lock so the old hash is the committed one.
	locked, err := rep.StringUnits().GetStringUnitForUpdate(ctx, existing.Id)
	if err != nil {
		return nil, err
	}

	res := &StringUnitResult{StringUnit: locked}
	if locked.SourceText == in.SourceText &&
		locked.SourceUpdatedOn == in.SourceUpdatedOn &&
		locked.SourceHash == newHash {
		return res, nil
	}

	oldHash := locked.SourceHash
	if err := rep.StringUnits().UpdateStringUnit(ctx, locked.Id, in, newHash); err != nil {
		return nil, err
	}
	locked.SourceText = in.SourceText
	locked.SourceUpdatedOn = in.SourceUpdatedOn
	locked.SourceHash = newHash
	res.Updated = true

	if oldHash != "" && oldHash != newHash {
		n, err := rep.Translations().MarkStaleByStringUnit(ctx, locked.Id)
		if err != nil {
			return nil, err
		}
		res.StaleMarked = n
	}
	return res, nil
}

// GetStringUnit returns a unit by id to any principal with a role.
func (s *Service) GetStringUnit(ctx context.Context, p *access.Principal, id int) (*entity.StringUnit, error) {
	if !p.IsSuperadmin() && !p.IsReviewer() {
		return nil, gerr.RoleRequired
	}
	return s.repo.StringUnits().GetStringUnitById(ctx, id)
}
