package store

import (
	"context"
	"testing"

	"github.com/Sagaustus/spyral-translation/internal/entity"
	gerr "github.com/Sagaustus/spyral-translation/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCRUD(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	us := db.Users()

	id, err := us.AddUser(ctx, "testusername", "hash", true)
	require.NoError(t, err)

	// can't create more than one user with same user name
	_, err = us.AddUser(ctx, "testusername", "other", false)
	assert.ErrorIs(t, err, gerr.UserAlreadyExists)

	u, err := us.GetByUsername(ctx, "testusername")
	require.NoError(t, err)
	assert.Equal(t, id, u.Id)
	assert.Equal(t, "hash", u.PasswordHash)
	assert.True(t, u.IsSuperuser)

	hash, err := us.PasswordHashByUsername(ctx, "testusername")
	assert.NoError(t, err)
	assert.Equal(t, "hash", hash)

	_, err = us.GetByUsername(ctx, "not exist")
	assert.ErrorIs(t, err, gerr.UserNotFound)
	_, err = us.PasswordHashByUsername(ctx, "not exist")
	assert.ErrorIs(t, err, gerr.UserNotFound)

	// adding a group twice is a no-op
	assert.NoError(t, us.AddToGroup(ctx, id, entity.GroupSuperadmin))
	assert.NoError(t, us.AddToGroup(ctx, id, entity.GroupSuperadmin))
	groups, err := us.GroupsOf(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, []entity.Group{entity.GroupSuperadmin}, groups)
}
