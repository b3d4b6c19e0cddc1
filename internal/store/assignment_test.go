package store

import (
	"context"
	"testing"

	gerr "github.com/Sagaustus/spyral-translation/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignments_AssignUnassign(t *testing.T) {
	db := newTestDB(t)
	as := db.Assignments()
	ctx := context.Background()

	fr := addLocale(t, db, "fr")
	sw := addLocale(t, db, "sw")
	uid, err := db.Users().AddUser(ctx, "reviewer", "hash", false)
	require.NoError(t, err)

	_, err = as.Assign(ctx, uid, fr)
	assert.NoError(t, err)
	_, err = as.Assign(ctx, uid, sw)
	assert.NoError(t, err)

	list, err := as.ListAssignments(ctx)
	assert.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "reviewer", list[0].Username)
	assert.ElementsMatch(t, []string{"fr", "sw"}, []string{list[0].LocaleCode, list[1].LocaleCode})

	err = as.Unassign(ctx, uid, fr)
	assert.NoError(t, err)

	ids, err := as.LocaleIdsOf(ctx, uid)
	assert.NoError(t, err)
	assert.Equal(t, []int{sw}, ids)

	_, err = as.Assign(ctx, uid, 999999)
	assert.Error(t, err)
	assert.ErrorIs(t, as.Unassign(ctx, uid, fr), gerr.AssignmentNotFound)
}
