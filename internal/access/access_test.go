package access

import (
	"context"
	"testing"

	"github.com/Sagaustus/spyral-translation/internal/dependency/mocks"
	"github.com/Sagaustus/spyral-translation/internal/entity"
	gerr "github.com/Sagaustus/spyral-translation/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFromUser(t *testing.T) {
	u := &entity.User{Id: 4, Username: "ana"}

	rev := FromUser(u, []entity.Group{entity.GroupReviewer}, []int{2, 3})
	assert.True(t, rev.IsReviewer())
	assert.False(t, rev.IsSuperadmin())
	assert.True(t, rev.Restricted())

	both := FromUser(u, []entity.Group{entity.GroupReviewer, entity.GroupSuperadmin}, nil)
	assert.True(t, both.IsSuperadmin())
	assert.False(t, both.Restricted())

	su := FromUser(&entity.User{Id: 1, IsSuperuser: true}, nil, nil)
	assert.True(t, su.CanApprove())
	assert.True(t, su.CanManage())
}

func TestScope(t *testing.T) {
	sa := &Principal{Superadmin: true}
	assert.True(t, sa.Scope().Unrestricted)
	assert.True(t, sa.CanView(99))

	rev := &Principal{Reviewer: true, LocaleIds: []int{2, 3}}
	scope := rev.Scope()
	assert.False(t, scope.Unrestricted)
	assert.Equal(t, []int{2, 3}, scope.LocaleIds)
	assert.True(t, rev.CanView(2))
	assert.True(t, rev.CanWrite(3))
	assert.False(t, rev.CanView(4))
	assert.False(t, rev.CanApprove())

	// the scope is a copy
	scope.LocaleIds[0] = 4
	assert.False(t, rev.CanView(4))

	nobody := &Principal{LocaleIds: []int{2}}
	assert.False(t, nobody.CanView(2))
	assert.Empty(t, nobody.Scope().LocaleIds)

	var nilP *Principal
	assert.False(t, nilP.CanView(1))
	assert.False(t, nilP.CanManage())
}

func TestContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	p := System()
	got, ok := FromContext(NewContext(context.Background(), p))
	require.True(t, ok)
	assert.Same(t, p, got)
	assert.True(t, got.IsSuperadmin())
}

func TestLoad(t *testing.T) {
	users := mocks.NewUsers(t)
	assignments := mocks.NewAssignments(t)
	ctx := context.Background()

	users.EXPECT().GetByUsername(mock.Anything, "ana").Return(&entity.User{Id: 4, Username: "ana"}, nil)
	users.EXPECT().GroupsOf(mock.Anything, 4).Return([]entity.Group{entity.GroupReviewer}, nil)
	assignments.EXPECT().LocaleIdsOf(mock.Anything, 4).Return([]int{7}, nil)

	p, err := Load(ctx, users, assignments, "ana")
	require.NoError(t, err)
	assert.Equal(t, 4, p.UserId)
	assert.True(t, p.CanView(7))
	assert.False(t, p.CanView(8))
}

func TestLoadUnknownUser(t *testing.T) {
	users := mocks.NewUsers(t)
	assignments := mocks.NewAssignments(t)

	users.EXPECT().GetByUsername(mock.Anything, "ghost").Return(nil, gerr.UserNotFound)

	_, err := Load(context.Background(), users, assignments, "ghost")
	assert.ErrorIs(t, err, gerr.UserNotFound)
}
