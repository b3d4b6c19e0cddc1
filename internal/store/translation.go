package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/Sagaustus/spyral-translation/internal/dependency"
	"github.com/Sagaustus/spyral-translation/internal/entity"
	gerr "github.com/Sagaustus/spyral-translation/internal/errors"
)

type translationStore struct {
	*MYSQLStore
}

// Translations returns an object implementing translations interface
func (ms *MYSQLStore) Translations() dependency.Translations {
	return &translationStore{
		MYSQLStore: ms,
	}
}

const translationColumns = `t.id, t.string_unit_id, t.locale_id, t.approved_text, t.reviewer_text, t.machine_draft,
	t.status, t.provenance, t.source_hash_at_last_update, t.qa_flags, t.reviewer_id, t.created_at, t.updated_at`

const translationFullColumns = translationColumns + `,
	l.code AS locale_code, su.location, su.message_id, su.source_text, su.source_hash, su.source_updated_on`

const translationFullFrom = `translation t
	JOIN locale l ON l.id = t.locale_id
	JOIN string_unit su ON su.id = t.string_unit_id`

func translationParams(t *entity.Translation, now any) map[string]any {
	return map[string]any{
		"id":                     t.Id,
		"stringUnitId":           t.StringUnitId,
		"localeId":               t.LocaleId,
		"approvedText":           t.ApprovedText,
		"reviewerText":           t.ReviewerText,
		"machineDraft":           t.MachineDraft,
		"status":                 t.Status.String(),
		"provenance":             t.Provenance.String(),
		"sourceHashAtLastUpdate": t.SourceHashAtLastUpdate,
		"qaFlags":                t.QAFlags,
		"reviewerId":             t.ReviewerId,
		"now":                    now,
	}
}

func (ts *translationStore) AddTranslation(ctx context.Context, t *entity.Translation) (int, error) {
	id, err := ExecNamedLastId(ctx, ts.db, `
		INSERT INTO translation (
			string_unit_id, locale_id, approved_text, reviewer_text, machine_draft,
			status, provenance, source_hash_at_last_update, qa_flags, reviewer_id, created_at, updated_at
		) VALUES (
			:stringUnitId, :localeId, :approvedText, :reviewerText, :machineDraft,
			:status, :provenance, :sourceHashAtLastUpdate, :qaFlags, :reviewerId, :now, :now
		)`, translationParams(t, ts.Now()))
	if err != nil {
		return 0, fmt.Errorf("can't add translation for unit %d locale %d: %w", t.StringUnitId, t.LocaleId, err)
	}
	return id, nil
}

func (ts *translationStore) UpdateTranslation(ctx context.Context, t *entity.Translation) error {
	_, err := ExecNamed(ctx, ts.db, `
		UPDATE translation SET
			string_unit_id = :stringUnitId,
			locale_id = :localeId,
			approved_text = :approvedText,
			reviewer_text = :reviewerText,
			machine_draft = :machineDraft,
			status = :status,
			provenance = :provenance,
			source_hash_at_last_update = :sourceHashAtLastUpdate,
			qa_flags = :qaFlags,
			reviewer_id = :reviewerId,
			updated_at = :now
		WHERE id = :id`, translationParams(t, ts.Now()))
	if err != nil {
		return fmt.Errorf("can't update translation %d: %w", t.Id, err)
	}
	return nil
}

func (ts *translationStore) getFull(ctx context.Context, id int, lock bool) (*entity.TranslationFull, error) {
	query := `SELECT ` + translationFullColumns + ` FROM ` + translationFullFrom + ` WHERE t.id = :id`
	if lock {
		query += ` FOR UPDATE`
	}
	t, err := QueryNamedOne[entity.TranslationFull](ctx, ts.db, query, map[string]any{"id": id})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, gerr.TranslationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get translation %d: %w", id, err)
	}
	return &t, nil
}

func (ts *translationStore) GetTranslationById(ctx context.Context, id int) (*entity.TranslationFull, error) {
	return ts.getFull(ctx, id, false)
}

func (ts *translationStore) GetTranslationForUpdate(ctx context.Context, id int) (*entity.TranslationFull, error) {
	return ts.getFull(ctx, id, true)
}

func (ts *translationStore) GetTranslationByKey(ctx context.Context, stringUnitId, localeId int) (*entity.Translation, error) {
	t, err := QueryNamedOne[entity.Translation](ctx, ts.db, `
		SELECT `+translationColumns+` FROM translation t
		WHERE t.string_unit_id = :stringUnitId AND t.locale_id = :localeId`,
		map[string]any{"stringUnitId": stringUnitId, "localeId": localeId})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, gerr.TranslationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get translation for unit %d locale %d: %w", stringUnitId, localeId, err)
	}
	return &t, nil
}

// scopeCondition restricts t.locale_id to the scope. An empty restricted
// scope matches nothing.
func scopeCondition(scope entity.LocaleScope) sq.Sqlizer {
	if scope.Unrestricted {
		return nil
	}
	if len(scope.LocaleIds) == 0 {
		return sq.Expr("1 = 0")
	}
	return sq.Eq{"t.locale_id": scope.LocaleIds}
}

// translationFilterConditions turns a filter into WHERE conditions.
func translationFilterConditions(f entity.TranslationFilter) sq.And {
	conds := sq.And{}
	if c := scopeCondition(f.Scope); c != nil {
		conds = append(conds, c)
	}
	if f.LocaleCode != "" {
		conds = append(conds, sq.Eq{"l.code": f.LocaleCode})
	}
	if f.StringUnitId > 0 {
		conds = append(conds, sq.Eq{"t.string_unit_id": f.StringUnitId})
	}
	if len(f.Statuses) > 0 {
		statuses := make([]string, 0, len(f.Statuses))
		for _, s := range f.Statuses {
			statuses = append(statuses, s.String())
		}
		conds = append(conds, sq.Eq{"t.status": statuses})
	}
	if f.Provenance != "" {
		conds = append(conds, sq.Eq{"t.provenance": f.Provenance.String()})
	}
	if f.HasQAWarnings != nil {
		if *f.HasQAWarnings {
			conds = append(conds, sq.Expr("JSON_LENGTH(t.qa_flags) > 0"))
		} else {
			conds = append(conds, sq.Expr("JSON_LENGTH(t.qa_flags) = 0"))
		}
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		conds = append(conds, sq.Or{
			sq.Like{"su.location": like},
			sq.Like{"su.message_id": like},
			sq.Like{"su.source_text": like},
			sq.Like{"t.approved_text": like},
			sq.Like{"t.reviewer_text": like},
			sq.Like{"t.machine_draft": like},
		})
	}
	return conds
}

func listTranslationsQuery(f entity.TranslationFilter) sq.SelectBuilder {
	q := sq.Select(translationFullColumns).
		From(translationFullFrom).
		Where(translationFilterConditions(f)).
		OrderBy("l.code", "su.location", "su.message_id")
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
		if f.Offset > 0 {
			q = q.Offset(uint64(f.Offset))
		}
	}
	return q
}

func countTranslationsQuery(f entity.TranslationFilter) sq.SelectBuilder {
	return sq.Select("COUNT(*)").
		From(translationFullFrom).
		Where(translationFilterConditions(f))
}

func (ts *translationStore) ListTranslations(ctx context.Context, f entity.TranslationFilter) ([]entity.TranslationFull, int, error) {
	query, args, err := listTranslationsQuery(f).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("can't build translations query: %w", err)
	}
	var list []entity.TranslationFull
	if err := ts.db.SelectContext(ctx, &list, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list translations: %w", err)
	}

	query, args, err = countTranslationsQuery(f).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("can't build translations count query: %w", err)
	}
	var total int
	if err := ts.db.GetContext(ctx, &total, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count translations: %w", err)
	}
	return list, total, nil
}

func setStatusBulkQuery(ids []int, status entity.TranslationStatus, scope entity.LocaleScope) sq.UpdateBuilder {
	conds := sq.And{sq.Eq{"t.id": ids}}
	if c := scopeCondition(scope); c != nil {
		conds = append(conds, c)
	}
	return sq.Update("translation t").
		Set("t.status", status.String()).
		Where(conds)
}

func (ts *translationStore) SetStatusBulk(ctx context.Context, ids []int, status entity.TranslationStatus, scope entity.LocaleScope) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query, args, err := setStatusBulkQuery(ids, status, scope).ToSql()
	if err != nil {
		return 0, fmt.Errorf("can't build bulk status query: %w", err)
	}
	res, err := ts.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("can't set status %s: %w", status, err)
	}
	return res.RowsAffected()
}

func (ts *translationStore) MarkStaleByStringUnit(ctx context.Context, stringUnitId int) (int64, error) {
	n, err := ExecNamed(ctx, ts.db, `
		UPDATE translation SET status = :stale
		WHERE string_unit_id = :stringUnitId
			AND approved_text IS NOT NULL
			AND approved_text <> ''`,
		map[string]any{
			"stale":        entity.StatusStale.String(),
			"stringUnitId": stringUnitId,
		})
	if err != nil {
		return 0, fmt.Errorf("can't mark translations of unit %d stale: %w", stringUnitId, err)
	}
	return n, nil
}

func (ts *translationStore) MarkDriftedStale(ctx context.Context) (int64, error) {
	n, err := ExecNamed(ctx, ts.db, `
		UPDATE translation t
		JOIN string_unit su ON su.id = t.string_unit_id
		SET t.status = :stale
		WHERE t.status = :approved
			AND t.source_hash_at_last_update <> ''
			AND t.source_hash_at_last_update <> su.source_hash`,
		map[string]any{
			"stale":    entity.StatusStale.String(),
			"approved": entity.StatusApproved.String(),
		})
	if err != nil {
		return 0, fmt.Errorf("can't mark drifted translations stale: %w", err)
	}
	return n, nil
}

func (ts *translationStore) ListApprovedByLocale(ctx context.Context, localeId int) ([]entity.ApprovedRow, error) {
	rows, err := QueryListNamed[entity.ApprovedRow](ctx, ts.db, `
		SELECT string_unit_id, approved_text, updated_at
		FROM translation
		WHERE locale_id = :localeId`,
		map[string]any{
			"localeId": localeId,
		})
	if err != nil {
		return nil, fmt.Errorf("failed to list translations of locale %d: %w", localeId, err)
	}
	return rows, nil
}
