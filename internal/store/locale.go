package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Sagaustus/spyral-translation/internal/dependency"
	"github.com/Sagaustus/spyral-translation/internal/entity"
	gerr "github.com/Sagaustus/spyral-translation/internal/errors"
)

type localeStore struct {
	*MYSQLStore
}

// Locales returns an object implementing locales interface
func (ms *MYSQLStore) Locales() dependency.Locales {
	return &localeStore{
		MYSQLStore: ms,
	}
}

const localeColumns = `id, code, bcp47, name, script, is_rtl, enabled, legacy_column`

func localeParams(l *entity.LocaleInsert) map[string]any {
	return map[string]any{
		"code":         l.Code,
		"bcp47":        l.Bcp47,
		"name":         l.Name,
		"script":       l.Script,
		"isRtl":        l.IsRtl,
		"enabled":      l.Enabled,
		"legacyColumn": l.LegacyColumn,
	}
}

func (ls *localeStore) AddLocale(ctx context.Context, l *entity.LocaleInsert) (int, error) {
	id, err := ExecNamedLastId(ctx, ls.db, `
		INSERT INTO locale (code, bcp47, name, script, is_rtl, enabled, legacy_column)
		VALUES (:code, :bcp47, :name, :script, :isRtl, :enabled, :legacyColumn)`,
		localeParams(l))
	if err != nil {
		return 0, fmt.Errorf("can't add locale %s: %w", l.Code, err)
	}
	return id, nil
}

func (ls *localeStore) UpdateLocale(ctx context.Context, id int, l *entity.LocaleInsert) error {
	params := localeParams(l)
	params["id"] = id
	_, err := ExecNamed(ctx, ls.db, `
		UPDATE locale SET
			code = :code,
			bcp47 = :bcp47,
			name = :name,
			script = :script,
			is_rtl = :isRtl,
			enabled = :enabled,
			legacy_column = :legacyColumn
		WHERE id = :id`, params)
	if err != nil {
		return fmt.Errorf("can't update locale %d: %w", id, err)
	}
	return nil
}

func (ls *localeStore) GetLocaleById(ctx context.Context, id int) (*entity.Locale, error) {
	l, err := QueryNamedOne[entity.Locale](ctx, ls.db, `SELECT `+localeColumns+` FROM locale WHERE id = :id`,
		map[string]any{"id": id})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, gerr.LocaleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get locale by id %d: %w", id, err)
	}
	return &l, nil
}

// GetLocaleByCode returns a locale by its code
func (ls *localeStore) GetLocaleByCode(ctx context.Context, code string) (*entity.Locale, error) {
	l, err := QueryNamedOne[entity.Locale](ctx, ls.db, `SELECT `+localeColumns+` FROM locale WHERE code = :code`,
		map[string]any{"code": code})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, gerr.LocaleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get locale by code %s: %w", code, err)
	}
	return &l, nil
}

func (ls *localeStore) ListLocales(ctx context.Context, enabledOnly bool) ([]entity.Locale, error) {
	query := `SELECT ` + localeColumns + ` FROM locale`
	if enabledOnly {
		query += ` WHERE enabled = TRUE`
	}
	query += ` ORDER BY code`

	var locales []entity.Locale
	if err := ls.db.SelectContext(ctx, &locales, query); err != nil {
		return nil, fmt.Errorf("failed to list locales: %w", err)
	}
	return locales, nil
}
