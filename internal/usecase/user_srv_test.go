package usecase

import (
	"context"
	"fmt"
	"testing"

	"filmorate/internal/data/repository"
	"filmorate/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userReq(email, login string) *request.UserRequest {
	return &request.UserRequest{
		Email:    email,
		Login:    login,
		Birthday: "1990-05-01",
	}
}

func TestCreateUser_DefaultsNameToLogin(t *testing.T) {
	tests := []struct {
		name     string
		reqName  string
		wantName string
	}{
		{name: "absent name", reqName: "", wantName: "neo"},
		{name: "blank name", reqName: "   ", wantName: "neo"},
		{name: "explicit name", reqName: "Thomas Anderson", wantName: "Thomas Anderson"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, svc := newFixture()

			req := userReq("neo@example.com", "neo")
			req.Name = tt.reqName

			created, err := svc.CreateUser(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, created.Name)
		})
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newFixture()

	_, err := svc.CreateUser(ctx, userReq("same@example.com", "first"))
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, userReq("same@example.com", "second"))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateUser_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*request.UserRequest)
	}{
		{name: "bad email", mutate: func(r *request.UserRequest) { r.Email = "not-an-email" }},
		{name: "empty login", mutate: func(r *request.UserRequest) { r.Login = "" }},
		{name: "login with space", mutate: func(r *request.UserRequest) { r.Login = "bad login" }},
		{name: "login with tab", mutate: func(r *request.UserRequest) { r.Login = "bad\tlogin" }},
		{name: "login with newline", mutate: func(r *request.UserRequest) { r.Login = "bad\nlogin" }},
		{name: "login with carriage return", mutate: func(r *request.UserRequest) { r.Login = "bad\rlogin" }},
		{name: "login with no-break space", mutate: func(r *request.UserRequest) { r.Login = "bad login" }},
		{name: "future birthday", mutate: func(r *request.UserRequest) { r.Birthday = "2150-01-01" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, svc := newFixture()

			req := userReq("ok@example.com", "ok")
			tt.mutate(req)

			_, err := svc.CreateUser(context.Background(), req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestUpdateUser_KeepsOwnEmail(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newFixture()

	created, err := svc.CreateUser(ctx, userReq("keep@example.com", "keeper"))
	require.NoError(t, err)

	// updating without changing the email must not trip the uniqueness check
	updated, err := svc.UpdateUser(ctx, &request.UserUpdateRequest{
		ID:    created.ID,
		Email: "keep@example.com",
		Login: "keeper",
		Name:  "Keeper",
	})
	require.NoError(t, err)
	assert.Equal(t, "Keeper", updated.Name)
}

func TestUpdateUser_EmailTaken(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newFixture()

	_, err := svc.CreateUser(ctx, userReq("taken@example.com", "first"))
	require.NoError(t, err)
	created, err := svc.CreateUser(ctx, userReq("mine@example.com", "second"))
	require.NoError(t, err)

	_, err = svc.UpdateUser(ctx, &request.UserUpdateRequest{
		ID:    created.ID,
		Email: "taken@example.com",
		Login: "second",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateUser_EmailRenameFreesOldEmail(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newFixture()

	created, err := svc.CreateUser(ctx, userReq("old@example.com", "renamer"))
	require.NoError(t, err)

	_, err = svc.UpdateUser(ctx, &request.UserUpdateRequest{
		ID:    created.ID,
		Email: "new@example.com",
		Login: "renamer",
	})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, userReq("old@example.com", "newcomer"))
	require.NoError(t, err)
}

func TestUpdateUser_UnknownID(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newFixture()

	_, err := svc.UpdateUser(ctx, &request.UserUpdateRequest{
		ID:    404,
		Email: "ghost@example.com",
		Login: "ghost",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPatchUser_BlankNameResetsToLogin(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newFixture()

	req := userReq("patch@example.com", "patcher")
	req.Name = "Full Name"
	created, err := svc.CreateUser(ctx, req)
	require.NoError(t, err)

	blank := "  "
	patched, err := svc.PatchUser(ctx, &request.UserPatchRequest{
		ID:   created.ID,
		Name: &blank,
	})
	require.NoError(t, err)
	assert.Equal(t, "patcher", patched.Name)
}

func TestPatchUser_NilFieldsKeepValues(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newFixture()

	created, err := svc.CreateUser(ctx, userReq("keepall@example.com", "keepall"))
	require.NoError(t, err)

	newLogin := "changed"
	patched, err := svc.PatchUser(ctx, &request.UserPatchRequest{
		ID:    created.ID,
		Login: &newLogin,
	})
	require.NoError(t, err)
	assert.Equal(t, "changed", patched.Login)
	assert.Equal(t, created.Email, patched.Email)
	assert.Equal(t, created.Birthday, patched.Birthday)
}

func TestAddFriends_Symmetric(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newFixture()

	a, err := svc.CreateUser(ctx, userReq("a@example.com", "a"))
	require.NoError(t, err)
	b, err := svc.CreateUser(ctx, userReq("b@example.com", "b"))
	require.NoError(t, err)

	require.NoError(t, svc.AddFriends(ctx, a.ID, b.ID))

	aFriends, err := svc.GetFriends(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, aFriends, 1)
	assert.Equal(t, b.ID, aFriends[0].ID)

	bFriends, err := svc.GetFriends(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, bFriends, 1)
	assert.Equal(t, a.ID, bFriends[0].ID)
}

func TestAddFriends_SelfFails(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newFixture()

	a, err := svc.CreateUser(ctx, userReq("self@example.com", "self"))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.AddFriends(ctx, a.ID, a.ID), ErrValidation)

	friends, err := svc.GetFriends(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, friends)
}

func TestAddFriends_AlreadyFriends(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newFixture()

	a, err := svc.CreateUser(ctx, userReq("a@example.com", "a"))
	require.NoError(t, err)
	b, err := svc.CreateUser(ctx, userReq("b@example.com", "b"))
	require.NoError(t, err)

	require.NoError(t, svc.AddFriends(ctx, a.ID, b.ID))
	assert.ErrorIs(t, svc.AddFriends(ctx, a.ID, b.ID), ErrValidation)
	assert.ErrorIs(t, svc.AddFriends(ctx, b.ID, a.ID), ErrValidation)
}

// wrappingFriendshipRepo adds context to repository errors the way the
// postgres backend does, so the sentinel arrives wrapped.
type wrappingFriendshipRepo struct {
	repository.FriendshipRepository
}

func (w wrappingFriendshipRepo) Add(ctx context.Context, userID, friendID int64) error {
	if err := w.FriendshipRepository.Add(ctx, userID, friendID); err != nil {
		return fmt.Errorf("add friendship: %w", err)
	}
	return nil
}

func TestAddFriends_AlreadyFriendsWrapped(t *testing.T) {
	ctx := context.Background()
	repo, _, svc := newFixture()
	repo.Friendship = wrappingFriendshipRepo{repo.Friendship}

	a, err := svc.CreateUser(ctx, userReq("a@example.com", "a"))
	require.NoError(t, err)
	b, err := svc.CreateUser(ctx, userReq("b@example.com", "b"))
	require.NoError(t, err)

	require.NoError(t, svc.AddFriends(ctx, a.ID, b.ID))
	assert.ErrorIs(t, svc.AddFriends(ctx, a.ID, b.ID), ErrValidation)
}

func TestAddFriends_MissingUser(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newFixture()

	a, err := svc.CreateUser(ctx, userReq("a@example.com", "a"))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.AddFriends(ctx, a.ID, 77), ErrNotFound)
	assert.ErrorIs(t, svc.AddFriends(ctx, 77, a.ID), ErrNotFound)
}

func TestRemoveFriends(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newFixture()

	a, err := svc.CreateUser(ctx, userReq("a@example.com", "a"))
	require.NoError(t, err)
	b, err := svc.CreateUser(ctx, userReq("b@example.com", "b"))
	require.NoError(t, err)

	require.NoError(t, svc.AddFriends(ctx, a.ID, b.ID))
	require.NoError(t, svc.RemoveFriends(ctx, b.ID, a.ID))

	aFriends, err := svc.GetFriends(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, aFriends)

	bFriends, err := svc.GetFriends(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, bFriends)

	// removing friends that are not linked is not an error
	require.NoError(t, svc.RemoveFriends(ctx, a.ID, b.ID))
}

func TestGetCommonFriends(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newFixture()

	a, err := svc.CreateUser(ctx, userReq("a@example.com", "a"))
	require.NoError(t, err)
	b, err := svc.CreateUser(ctx, userReq("b@example.com", "b"))
	require.NoError(t, err)
	c, err := svc.CreateUser(ctx, userReq("c@example.com", "c"))
	require.NoError(t, err)

	require.NoError(t, svc.AddFriends(ctx, a.ID, c.ID))
	require.NoError(t, svc.AddFriends(ctx, b.ID, c.ID))

	common, err := svc.GetCommonFriends(ctx, a.ID, b.ID)
	require.NoError(t, err)
	require.Len(t, common, 1)
	assert.Equal(t, c.ID, common[0].ID)

	// a and c share no friends: b is a friend of c only
	common, err = svc.GetCommonFriends(ctx, a.ID, c.ID)
	require.NoError(t, err)
	assert.Empty(t, common)
}

func TestGetFriends_UnknownUser(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newFixture()

	_, err := svc.GetFriends(ctx, 500)
	assert.ErrorIs(t, err, ErrNotFound)
}
