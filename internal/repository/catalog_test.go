package repository

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"library-management/internal/errs"
)

func newSQLMockStore(t *testing.T) (*store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s, err := NewStore(sqlx.NewDb(db, "pgx"), zap.NewNop())
	require.NoError(t, err)
	return s, mock
}

func TestStore_AdjustCopies(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("debit succeeds", func(t *testing.T) {
		t.Parallel()
		s, mock := newSQLMockStore(t)
		mock.ExpectQuery(`update books`).
			WithArgs(int64(7), -1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

		require.NoError(t, s.AdjustCopies(ctx, 7, -1))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no copies left", func(t *testing.T) {
		t.Parallel()
		s, mock := newSQLMockStore(t)
		mock.ExpectQuery(`update books`).
			WithArgs(int64(7), -1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery(`select exists`).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		require.ErrorIs(t, s.AdjustCopies(ctx, 7, -1), errs.ErrUnavailable)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("book vanished surfaces not found", func(t *testing.T) {
		t.Parallel()
		s, mock := newSQLMockStore(t)
		mock.ExpectQuery(`update books`).
			WithArgs(int64(7), 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery(`select exists`).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		require.ErrorIs(t, s.AdjustCopies(ctx, 7, 1), errs.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
