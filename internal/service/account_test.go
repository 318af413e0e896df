package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"library-management/internal/errs"
	"library-management/internal/model"
	mock_repository "library-management/internal/repository/mocks"
	"library-management/internal/service"
)

func newAccountService(t *testing.T) (*service.Account, *mock_repository.MockStore) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	store := mock_repository.NewMockStore(c)
	return service.NewAccount(store, zap.NewNop()), store
}

func TestAccount_CreateUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, store := newAccountService(t)

	store.EXPECT().CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u model.User) (model.User, error) {
			require.Equal(t, "reader", u.Username)
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("s3cret")))
			u.ID = 1
			return u, nil
		})

	user, err := svc.CreateUser(ctx, model.UserCreateRequest{
		Username: "reader",
		Email:    "reader@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), user.ID)
}

func TestAccount_CheckUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("known username", func(t *testing.T) {
		t.Parallel()
		svc, store := newAccountService(t)
		store.EXPECT().GetUserByUsername(ctx, "reader").Return(model.User{ID: 42, Username: "reader"}, nil)

		id, err := svc.CheckUser(ctx, "reader")
		require.NoError(t, err)
		require.Equal(t, int64(42), id)
	})

	t.Run("unknown username yields zero, not an error", func(t *testing.T) {
		t.Parallel()
		svc, store := newAccountService(t)
		store.EXPECT().GetUserByUsername(ctx, "ghost").Return(model.User{}, errs.ErrNotFound)

		id, err := svc.CheckUser(ctx, "ghost")
		require.NoError(t, err)
		require.Zero(t, id)
	})
}

func TestAccount_SignInLibrarian(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("valid credentials put the librarian on duty", func(t *testing.T) {
		t.Parallel()
		svc, store := newAccountService(t)
		store.EXPECT().GetLibrarianByName(ctx, "marian").
			Return(model.Librarian{ID: 7, Name: "marian", Password: string(hash)}, nil)
		store.EXPECT().SetLibrarianActive(ctx, int64(7), true).Return(nil)

		lib, err := svc.SignInLibrarian(ctx, model.CredentialsRequest{Name: "marian", Password: "s3cret"})
		require.NoError(t, err)
		require.True(t, lib.Active)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		svc, store := newAccountService(t)
		store.EXPECT().GetLibrarianByName(ctx, "marian").
			Return(model.Librarian{ID: 7, Name: "marian", Password: string(hash)}, nil)

		_, err := svc.SignInLibrarian(ctx, model.CredentialsRequest{Name: "marian", Password: "wrong"})
		require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("unknown librarian", func(t *testing.T) {
		t.Parallel()
		svc, store := newAccountService(t)
		store.EXPECT().GetLibrarianByName(ctx, "ghost").Return(model.Librarian{}, errs.ErrNotFound)

		_, err := svc.SignInLibrarian(ctx, model.CredentialsRequest{Name: "ghost", Password: "s3cret"})
		require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}

func TestAccount_SignOutLibrarian(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, store := newAccountService(t)
	store.EXPECT().GetActiveLibrarian(ctx).Return(model.Librarian{ID: 7, Active: true}, nil)
	store.EXPECT().SetLibrarianActive(ctx, int64(7), false).Return(nil)

	require.NoError(t, svc.SignOutLibrarian(ctx))
}

func TestAccount_UpdateUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, store := newAccountService(t)

	store.EXPECT().GetUser(ctx, int64(1)).
		Return(model.User{ID: 1, Username: "old", Email: "old@example.com", Password: "oldhash", HasIssued: true}, nil)
	store.EXPECT().UpdateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u model.User) (model.User, error) {
			require.Equal(t, "new", u.Username)
			// password untouched when not supplied
			require.Equal(t, "oldhash", u.Password)
			// the flag stays with the ledger
			require.True(t, u.HasIssued)
			return u, nil
		})

	_, err := svc.UpdateUser(ctx, 1, model.UserUpdateRequest{Username: "new", Email: "new@example.com"})
	require.NoError(t, err)
}
