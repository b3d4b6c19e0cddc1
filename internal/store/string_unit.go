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

type stringUnitStore struct {
	*MYSQLStore
}

// StringUnits returns an object implementing string units interface
func (ms *MYSQLStore) StringUnits() dependency.StringUnits {
	return &stringUnitStore{
		MYSQLStore: ms,
	}
}

const stringUnitColumns = `id, location, message_id, source_text, source_updated_on, source_hash, created_at, updated_at`

func (ss *stringUnitStore) AddStringUnit(ctx context.Context, su *entity.StringUnitInsert, sourceHash string) (int, error) {
	id, err := ExecNamedLastId(ctx, ss.db, `
		INSERT INTO string_unit (location, message_id, source_text, source_updated_on, source_hash, created_at, updated_at)
		VALUES (:location, :messageId, :sourceText, :sourceUpdatedOn, :sourceHash, :now, :now)`,
		map[string]any{
			"location":        su.Location,
			"messageId":       su.MessageId,
			"sourceText":      su.SourceText,
			"sourceUpdatedOn": su.SourceUpdatedOn,
			"sourceHash":      sourceHash,
			"now":             ss.Now(),
		})
	if err != nil {
		return 0, fmt.Errorf("can't add string unit %s :: %s: %w", su.Location, su.MessageId, err)
	}
	return id, nil
}

func (ss *stringUnitStore) UpdateStringUnit(ctx context.Context, id int, su *entity.StringUnitInsert, sourceHash string) error {
	_, err := ExecNamed(ctx, ss.db, `
		UPDATE string_unit SET
			location = :location,
			message_id = :messageId,
			source_text = :sourceText,
			source_updated_on = :sourceUpdatedOn,
			source_hash = :sourceHash,
			updated_at = :now
		WHERE id = :id`,
		map[string]any{
			"id":              id,
			"location":        su.Location,
			"messageId":       su.MessageId,
			"sourceText":      su.SourceText,
			"sourceUpdatedOn": su.SourceUpdatedOn,
			"sourceHash":      sourceHash,
			"now":             ss.Now(),
		})
	if err != nil {
		return fmt.Errorf("can't update string unit %d: %w", id, err)
	}
	return nil
}

func (ss *stringUnitStore) getOne(ctx context.Context, query string, params map[string]any) (*entity.StringUnit, error) {
	su, err := QueryNamedOne[entity.StringUnit](ctx, ss.db, query, params)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, gerr.StringUnitNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get string unit: %w", err)
	}
	return &su, nil
}

func (ss *stringUnitStore) GetStringUnitById(ctx context.Context, id int) (*entity.StringUnit, error) {
	return ss.getOne(ctx, `SELECT `+stringUnitColumns+` FROM string_unit WHERE id = :id`,
		map[string]any{"id": id})
}

func (ss *stringUnitStore) GetStringUnitByKey(ctx context.Context, location, messageId string) (*entity.StringUnit, error) {
	return ss.getOne(ctx, `SELECT `+stringUnitColumns+` FROM string_unit WHERE location = :location AND message_id = :messageId`,
		map[string]any{"location": location, "messageId": messageId})
}

func (ss *stringUnitStore) GetStringUnitForUpdate(ctx context.Context, id int) (*entity.StringUnit, error) {
	return ss.getOne(ctx, `SELECT `+stringUnitColumns+` FROM string_unit WHERE id = :id FOR UPDATE`,
		map[string]any{"id": id})
}

func (ss *stringUnitStore) ListStringUnits(ctx context.Context) ([]entity.StringUnit, error) {
	var units []entity.StringUnit
	err := ss.db.SelectContext(ctx, &units, `SELECT `+stringUnitColumns+` FROM string_unit ORDER BY location, message_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list string units: %w", err)
	}
	return units, nil
}
