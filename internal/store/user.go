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

type userStore struct {
	*MYSQLStore
}

// Users returns an object implementing dependency.Users interface
func (ms *MYSQLStore) Users() dependency.Users {
	return &userStore{
		MYSQLStore: ms,
	}
}

// AddUser creates a new user
func (us *userStore) AddUser(ctx context.Context, username, pwHash string, superuser bool) (int, error) {
	id, err := ExecNamedLastId(ctx, us.db, `
		INSERT INTO app_user (username, password_hash, is_superuser, created_at)
		VALUES (:username, :pwHash, :superuser, :now)`,
		map[string]any{
			"username":  username,
			"pwHash":    pwHash,
			"superuser": superuser,
			"now":       us.Now(),
		})
	if us.IsErrUniqueViolation(err) {
		return 0, gerr.UserAlreadyExists
	}
	if err != nil {
		return 0, fmt.Errorf("can't add user %s: %w", username, err)
	}
	return id, nil
}

func (us *userStore) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	u, err := QueryNamedOne[entity.User](ctx, us.db, `
		SELECT id, username, password_hash, is_superuser, created_at
		FROM app_user WHERE username = :username`,
		map[string]any{"username": username})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, gerr.UserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't get user %s: %w", username, err)
	}
	return &u, nil
}

// PasswordHashByUsername returns password hash of a user
func (us *userStore) PasswordHashByUsername(ctx context.Context, username string) (string, error) {
	var hash string
	err := us.db.GetContext(ctx, &hash, `SELECT password_hash FROM app_user WHERE username = ?`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return "", gerr.UserNotFound
	}
	if err != nil {
		return "", fmt.Errorf("can't get password hash of %s: %w", username, err)
	}
	return hash, nil
}

func (us *userStore) GroupsOf(ctx context.Context, userId int) ([]entity.Group, error) {
	var groups []entity.Group
	err := us.db.SelectContext(ctx, &groups, `
		SELECT g.name
		FROM user_group g
		JOIN user_group_member m ON m.group_id = g.id
		WHERE m.user_id = ?
		ORDER BY g.name`, userId)
	if err != nil {
		return nil, fmt.Errorf("can't get groups of user %d: %w", userId, err)
	}
	return groups, nil
}

func (us *userStore) AddToGroup(ctx context.Context, userId int, group entity.Group) error {
	n, err := ExecNamed(ctx, us.db, `
		INSERT IGNORE INTO user_group_member (user_id, group_id)
		SELECT :userId, id FROM user_group WHERE name = :group`,
		map[string]any{
			"userId": userId,
			"group":  string(group),
		})
	if err != nil {
		return fmt.Errorf("can't add user %d to group %s: %w", userId, group, err)
	}
	if n == 0 && !entity.ValidGroups[group] {
		return gerr.InvalidArgument(fmt.Sprintf("unknown group %s", group))
	}
	return nil
}
