package store

import (
	"context"
	"fmt"

	"github.com/Sagaustus/spyral-translation/internal/dependency"
	"github.com/Sagaustus/spyral-translation/internal/entity"
	gerr "github.com/Sagaustus/spyral-translation/internal/errors"
)

type assignmentStore struct {
	*MYSQLStore
}

// Assignments returns an object implementing dependency.Assignments interface
func (ms *MYSQLStore) Assignments() dependency.Assignments {
	return &assignmentStore{
		MYSQLStore: ms,
	}
}

func (as *assignmentStore) Assign(ctx context.Context, userId, localeId int) (int, error) {
	id, err := ExecNamedLastId(ctx, as.db, `
		INSERT INTO locale_assignment (user_id, locale_id, created_at)
		VALUES (:userId, :localeId, :now)`,
		map[string]any{
			"userId":   userId,
			"localeId": localeId,
			"now":      as.Now(),
		})
	if as.IsErrUniqueViolation(err) {
		return 0, gerr.AlreadyAssigned
	}
	if err != nil {
		return 0, fmt.Errorf("can't assign locale %d to user %d: %w", localeId, userId, err)
	}
	return id, nil
}

func (as *assignmentStore) Unassign(ctx context.Context, userId, localeId int) error {
	n, err := ExecNamed(ctx, as.db, `
		DELETE FROM locale_assignment WHERE user_id = :userId AND locale_id = :localeId`,
		map[string]any{
			"userId":   userId,
			"localeId": localeId,
		})
	if err != nil {
		return fmt.Errorf("can't unassign locale %d from user %d: %w", localeId, userId, err)
	}
	if n == 0 {
		return gerr.AssignmentNotFound
	}
	return nil
}

func (as *assignmentStore) LocaleIdsOf(ctx context.Context, userId int) ([]int, error) {
	var ids []int
	err := as.db.SelectContext(ctx, &ids, `SELECT locale_id FROM locale_assignment WHERE user_id = ? ORDER BY locale_id`, userId)
	if err != nil {
		return nil, fmt.Errorf("can't get assigned locales of user %d: %w", userId, err)
	}
	return ids, nil
}

func (as *assignmentStore) ListAssignments(ctx context.Context) ([]entity.LocaleAssignmentFull, error) {
	list, err := QueryListNamed[entity.LocaleAssignmentFull](ctx, as.db, `
		SELECT a.id, a.user_id, a.locale_id, a.created_at,
			u.username, l.code AS locale_code, l.name AS locale_name
		FROM locale_assignment a
		JOIN app_user u ON u.id = a.user_id
		JOIN locale l ON l.id = a.locale_id
		ORDER BY l.code, u.username`, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't list locale assignments: %w", err)
	}
	return list, nil
}
