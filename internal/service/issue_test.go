package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"library-management/internal/errs"
	"library-management/internal/model"
	"library-management/internal/repository"
	mock_repository "library-management/internal/repository/mocks"
	"library-management/internal/service"
)

// queueStub records published lifecycle events in order.
type queueStub struct {
	events []string
}

func (q *queueStub) Enqueue(topic string, v any) error {
	msg, ok := v.(model.IssueEventMessage)
	if !ok {
		return nil
	}
	q.events = append(q.events, msg.Event)
	return nil
}

func newIssueService(t *testing.T) (*service.Issue, *mock_repository.MockStore, *queueStub) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	store := mock_repository.NewMockStore(c)
	store.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(repository.Store) error) error {
			return fn(store)
		}).
		AnyTimes()
	queue := &queueStub{}
	return service.NewIssue(store, queue, zap.NewNop()), store, queue
}

func TestIssue_RequestIssue(t *testing.T) {
	t.Parallel()
	const (
		bookID = int64(1)
		userID = int64(2)
	)
	ctx := context.Background()
	req := model.IssueRequest{BookID: bookID, UserID: userID}

	tests := []struct {
		name         string
		mockBehavior func(st *mock_repository.MockStore)
		wantStatus   model.IssueStatus
		wantIssuedBy *int64
		wantEvents   []string
		wantErr      error
	}{
		{
			name: "pending when nobody on duty",
			mockBehavior: func(st *mock_repository.MockStore) {
				st.EXPECT().GetBook(ctx, bookID).Return(model.Book{ID: bookID, Copies: 3}, nil)
				st.EXPECT().GetUser(ctx, userID).Return(model.User{ID: userID}, nil)
				st.EXPECT().HasActiveIssue(ctx, bookID, userID).Return(false, nil)
				st.EXPECT().GetActiveLibrarian(ctx).Return(model.Librarian{}, errs.ErrNotFound)
				st.EXPECT().CreateIssue(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, rec model.IssueRecord) (model.IssueRecord, error) {
						rec.ID = 10
						return rec, nil
					})
			},
			wantStatus: model.StatusPending,
			wantEvents: []string{model.EventRequested},
		},
		{
			name: "issued directly when a librarian is on duty",
			mockBehavior: func(st *mock_repository.MockStore) {
				st.EXPECT().GetBook(ctx, bookID).Return(model.Book{ID: bookID, Copies: 3}, nil)
				st.EXPECT().GetUser(ctx, userID).Return(model.User{ID: userID}, nil)
				st.EXPECT().HasActiveIssue(ctx, bookID, userID).Return(false, nil)
				st.EXPECT().GetActiveLibrarian(ctx).Return(model.Librarian{ID: 7, Active: true}, nil)
				st.EXPECT().CreateIssue(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, rec model.IssueRecord) (model.IssueRecord, error) {
						return rec, nil
					})
				st.EXPECT().AdjustCopies(ctx, bookID, -1).Return(nil)
				st.EXPECT().SetHasIssued(ctx, userID, true).Return(nil)
			},
			wantStatus:   model.StatusIssued,
			wantIssuedBy: ptr(int64(7)),
			wantEvents:   []string{model.EventIssued},
		},
		{
			name: "no copies available",
			mockBehavior: func(st *mock_repository.MockStore) {
				st.EXPECT().GetBook(ctx, bookID).Return(model.Book{ID: bookID, Copies: 0}, nil)
			},
			wantErr: errs.ErrUnavailable,
		},
		{
			name: "unknown book",
			mockBehavior: func(st *mock_repository.MockStore) {
				st.EXPECT().GetBook(ctx, bookID).Return(model.Book{}, errs.ErrNotFound)
			},
			wantErr: errs.ErrNotFound,
		},
		{
			name: "user already holds a book",
			mockBehavior: func(st *mock_repository.MockStore) {
				st.EXPECT().GetBook(ctx, bookID).Return(model.Book{ID: bookID, Copies: 3}, nil)
				st.EXPECT().GetUser(ctx, userID).Return(model.User{ID: userID, HasIssued: true}, nil)
			},
			wantErr: errs.ErrConflict,
		},
		{
			name: "duplicate active request",
			mockBehavior: func(st *mock_repository.MockStore) {
				st.EXPECT().GetBook(ctx, bookID).Return(model.Book{ID: bookID, Copies: 3}, nil)
				st.EXPECT().GetUser(ctx, userID).Return(model.User{ID: userID}, nil)
				st.EXPECT().HasActiveIssue(ctx, bookID, userID).Return(true, nil)
			},
			wantErr: errs.ErrConflict,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, store, queue := newIssueService(t)
			tt.mockBehavior(store)

			rec, err := svc.RequestIssue(ctx, req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Empty(t, queue.events)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantStatus, rec.Status)
			require.Equal(t, tt.wantIssuedBy, rec.IssuedBy)
			require.NotEmpty(t, rec.IssueUID)
			require.Equal(t, tt.wantEvents, queue.events)
		})
	}
}

func TestIssue_ApproveIssue(t *testing.T) {
	t.Parallel()
	const (
		issueUID    = "a2eea79e-9a3f-4c4f-8b7f-2f51b0b5a111"
		librarianID = int64(7)
		bookID      = int64(1)
		userID      = int64(2)
	)
	ctx := context.Background()

	tests := []struct {
		name         string
		mockBehavior func(st *mock_repository.MockStore)
		wantStatus   model.IssueStatus
		wantEvents   []string
		wantErr      error
	}{
		{
			name: "pending record gets issued",
			mockBehavior: func(st *mock_repository.MockStore) {
				st.EXPECT().GetLibrarian(ctx, librarianID).Return(model.Librarian{ID: librarianID, Active: true}, nil)
				st.EXPECT().GetIssue(ctx, issueUID).
					Return(model.IssueRecord{IssueUID: issueUID, BookID: bookID, UserID: userID, Status: model.StatusPending}, nil)
				st.EXPECT().GetUser(ctx, userID).Return(model.User{ID: userID}, nil)
				st.EXPECT().GetBook(ctx, bookID).Return(model.Book{ID: bookID, Copies: 1}, nil)
				st.EXPECT().UpdateIssueStatus(ctx, issueUID, model.StatusIssued, gomock.Any()).Return(nil)
				st.EXPECT().AdjustCopies(ctx, bookID, -1).Return(nil)
				st.EXPECT().SetHasIssued(ctx, userID, true).Return(nil)
			},
			wantStatus: model.StatusIssued,
			wantEvents: []string{model.EventIssued},
		},
		{
			name: "re-approving an issued record is a no-op",
			mockBehavior: func(st *mock_repository.MockStore) {
				st.EXPECT().GetLibrarian(ctx, librarianID).Return(model.Librarian{ID: librarianID, Active: true}, nil)
				st.EXPECT().GetIssue(ctx, issueUID).
					Return(model.IssueRecord{IssueUID: issueUID, BookID: bookID, UserID: userID, Status: model.StatusIssued}, nil)
			},
			wantStatus: model.StatusIssued,
			wantEvents: nil,
		},
		{
			name: "inventory exhausted since the request",
			mockBehavior: func(st *mock_repository.MockStore) {
				st.EXPECT().GetLibrarian(ctx, librarianID).Return(model.Librarian{ID: librarianID, Active: true}, nil)
				st.EXPECT().GetIssue(ctx, issueUID).
					Return(model.IssueRecord{IssueUID: issueUID, BookID: bookID, UserID: userID, Status: model.StatusPending}, nil)
				st.EXPECT().GetUser(ctx, userID).Return(model.User{ID: userID}, nil)
				st.EXPECT().GetBook(ctx, bookID).Return(model.Book{ID: bookID, Copies: 0}, nil)
			},
			wantErr: errs.ErrConflict,
		},
		{
			name: "user became ineligible",
			mockBehavior: func(st *mock_repository.MockStore) {
				st.EXPECT().GetLibrarian(ctx, librarianID).Return(model.Librarian{ID: librarianID, Active: true}, nil)
				st.EXPECT().GetIssue(ctx, issueUID).
					Return(model.IssueRecord{IssueUID: issueUID, BookID: bookID, UserID: userID, Status: model.StatusPending}, nil)
				st.EXPECT().GetUser(ctx, userID).Return(model.User{ID: userID, HasIssued: true}, nil)
			},
			wantErr: errs.ErrConflict,
		},
		{
			name: "off-duty librarian cannot approve",
			mockBehavior: func(st *mock_repository.MockStore) {
				st.EXPECT().GetLibrarian(ctx, librarianID).Return(model.Librarian{ID: librarianID, Active: false}, nil)
			},
			wantErr: errs.ErrUnauthenticated,
		},
		{
			name: "unknown librarian cannot approve",
			mockBehavior: func(st *mock_repository.MockStore) {
				st.EXPECT().GetLibrarian(ctx, librarianID).Return(model.Librarian{}, errs.ErrNotFound)
			},
			wantErr: errs.ErrUnauthenticated,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, store, queue := newIssueService(t)
			tt.mockBehavior(store)

			rec, err := svc.ApproveIssue(ctx, issueUID, librarianID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Empty(t, queue.events)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantStatus, rec.Status)
			require.Equal(t, tt.wantEvents, queue.events)
		})
	}
}

func TestIssue_ReturnIssue(t *testing.T) {
	t.Parallel()
	const (
		issueUID = "a2eea79e-9a3f-4c4f-8b7f-2f51b0b5a111"
		bookID   = int64(1)
		userID   = int64(2)
	)
	ctx := context.Background()

	tests := []struct {
		name         string
		mockBehavior func(st *mock_repository.MockStore)
		wantEvents   []string
	}{
		{
			name: "returning an issued book credits inventory",
			mockBehavior: func(st *mock_repository.MockStore) {
				st.EXPECT().GetIssue(ctx, issueUID).
					Return(model.IssueRecord{IssueUID: issueUID, BookID: bookID, UserID: userID, Status: model.StatusIssued}, nil)
				st.EXPECT().UpdateIssueStatus(ctx, issueUID, model.StatusReturned, nil).Return(nil)
				st.EXPECT().AdjustCopies(ctx, bookID, 1).Return(nil)
				st.EXPECT().SetHasIssued(ctx, userID, false).Return(nil)
			},
			wantEvents: []string{model.EventReturned},
		},
		{
			name: "second return is a no-op",
			mockBehavior: func(st *mock_repository.MockStore) {
				st.EXPECT().GetIssue(ctx, issueUID).
					Return(model.IssueRecord{IssueUID: issueUID, BookID: bookID, UserID: userID, Status: model.StatusReturned}, nil)
			},
			wantEvents: nil,
		},
		{
			name: "closing a pending request consumes no inventory",
			mockBehavior: func(st *mock_repository.MockStore) {
				st.EXPECT().GetIssue(ctx, issueUID).
					Return(model.IssueRecord{IssueUID: issueUID, BookID: bookID, UserID: userID, Status: model.StatusPending}, nil)
				st.EXPECT().UpdateIssueStatus(ctx, issueUID, model.StatusReturned, nil).Return(nil)
			},
			wantEvents: []string{model.EventReturned},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, store, queue := newIssueService(t)
			tt.mockBehavior(store)

			require.NoError(t, svc.ReturnIssue(ctx, issueUID))
			require.Equal(t, tt.wantEvents, queue.events)
		})
	}
}

func TestIssue_DeleteReturnedIssue(t *testing.T) {
	t.Parallel()
	const (
		issueUID    = "a2eea79e-9a3f-4c4f-8b7f-2f51b0b5a111"
		librarianID = int64(7)
	)
	ctx := context.Background()

	t.Run("returned record is deleted", func(t *testing.T) {
		t.Parallel()
		svc, store, queue := newIssueService(t)
		store.EXPECT().GetLibrarian(ctx, librarianID).Return(model.Librarian{ID: librarianID, Active: true}, nil)
		store.EXPECT().GetIssue(ctx, issueUID).
			Return(model.IssueRecord{IssueUID: issueUID, Status: model.StatusReturned}, nil)
		store.EXPECT().DeleteIssue(ctx, issueUID).Return(nil)

		require.NoError(t, svc.DeleteReturnedIssue(ctx, issueUID, librarianID))
		require.Equal(t, []string{model.EventDeleted}, queue.events)
	})

	t.Run("issued record is refused", func(t *testing.T) {
		t.Parallel()
		svc, store, queue := newIssueService(t)
		store.EXPECT().GetLibrarian(ctx, librarianID).Return(model.Librarian{ID: librarianID, Active: true}, nil)
		store.EXPECT().GetIssue(ctx, issueUID).
			Return(model.IssueRecord{IssueUID: issueUID, Status: model.StatusIssued}, nil)

		err := svc.DeleteReturnedIssue(ctx, issueUID, librarianID)
		require.ErrorIs(t, err, errs.ErrConflict)
		require.Empty(t, queue.events)
	})
}

func TestIssue_ForceDeleteIssue(t *testing.T) {
	t.Parallel()
	const (
		issueUID = "a2eea79e-9a3f-4c4f-8b7f-2f51b0b5a111"
		bookID   = int64(1)
		userID   = int64(2)
	)
	ctx := context.Background()

	t.Run("issued record reverses inventory", func(t *testing.T) {
		t.Parallel()
		svc, store, queue := newIssueService(t)
		store.EXPECT().GetIssue(ctx, issueUID).
			Return(model.IssueRecord{IssueUID: issueUID, BookID: bookID, UserID: userID, Status: model.StatusIssued}, nil)
		store.EXPECT().DeleteIssue(ctx, issueUID).Return(nil)
		store.EXPECT().AdjustCopies(ctx, bookID, 1).Return(nil)
		store.EXPECT().SetHasIssued(ctx, userID, false).Return(nil)

		require.NoError(t, svc.ForceDeleteIssue(ctx, issueUID))
		require.Equal(t, []string{model.EventDeleted}, queue.events)
	})

	t.Run("returned record is deleted without touching inventory", func(t *testing.T) {
		t.Parallel()
		svc, store, _ := newIssueService(t)
		store.EXPECT().GetIssue(ctx, issueUID).
			Return(model.IssueRecord{IssueUID: issueUID, BookID: bookID, UserID: userID, Status: model.StatusReturned}, nil)
		store.EXPECT().DeleteIssue(ctx, issueUID).Return(nil)

		require.NoError(t, svc.ForceDeleteIssue(ctx, issueUID))
	})

	t.Run("pending record is deleted without touching inventory", func(t *testing.T) {
		t.Parallel()
		svc, store, _ := newIssueService(t)
		store.EXPECT().GetIssue(ctx, issueUID).
			Return(model.IssueRecord{IssueUID: issueUID, BookID: bookID, UserID: userID, Status: model.StatusPending}, nil)
		store.EXPECT().DeleteIssue(ctx, issueUID).Return(nil)

		require.NoError(t, svc.ForceDeleteIssue(ctx, issueUID))
	})
}

func TestIssue_Lifecycle(t *testing.T) {
	t.Parallel()
	const (
		bookID      = int64(1)
		userID      = int64(2)
		librarianID = int64(7)
	)
	ctx := context.Background()
	svc, store, queue := newIssueService(t)

	copies := 2
	hasIssued := false
	var ledger *model.IssueRecord

	store.EXPECT().GetBook(ctx, bookID).
		DoAndReturn(func(context.Context, int64) (model.Book, error) {
			return model.Book{ID: bookID, Copies: copies}, nil
		}).
		AnyTimes()
	store.EXPECT().GetUser(ctx, userID).
		DoAndReturn(func(context.Context, int64) (model.User, error) {
			return model.User{ID: userID, HasIssued: hasIssued}, nil
		}).
		AnyTimes()
	store.EXPECT().AdjustCopies(ctx, bookID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, delta int) error {
			copies += delta
			return nil
		}).
		AnyTimes()
	store.EXPECT().SetHasIssued(ctx, userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, v bool) error {
			hasIssued = v
			return nil
		}).
		AnyTimes()
	store.EXPECT().HasActiveIssue(ctx, bookID, userID).
		DoAndReturn(func(context.Context, int64, int64) (bool, error) {
			return ledger != nil && ledger.Status != model.StatusReturned, nil
		}).
		AnyTimes()
	store.EXPECT().GetActiveLibrarian(ctx).Return(model.Librarian{}, errs.ErrNotFound).AnyTimes()
	store.EXPECT().GetLibrarian(ctx, librarianID).Return(model.Librarian{ID: librarianID, Active: true}, nil).AnyTimes()
	store.EXPECT().CreateIssue(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rec model.IssueRecord) (model.IssueRecord, error) {
			ledger = &rec
			return rec, nil
		})
	store.EXPECT().GetIssue(ctx, gomock.Any()).
		DoAndReturn(func(context.Context, string) (model.IssueRecord, error) {
			if ledger == nil {
				return model.IssueRecord{}, errs.ErrNotFound
			}
			return *ledger, nil
		}).
		AnyTimes()
	store.EXPECT().UpdateIssueStatus(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, status model.IssueStatus, issuedBy *int64) error {
			ledger.Status = status
			if issuedBy != nil {
				ledger.IssuedBy = issuedBy
			}
			return nil
		}).
		AnyTimes()
	store.EXPECT().DeleteIssue(ctx, gomock.Any()).
		DoAndReturn(func(context.Context, string) error {
			ledger = nil
			return nil
		})

	// request with nobody on duty: pending, inventory untouched
	rec, err := svc.RequestIssue(ctx, model.IssueRequest{BookID: bookID, UserID: userID})
	require.NoError(t, err)
	require.Equal(t, model.StatusPending, rec.Status)
	require.Equal(t, 2, copies)
	require.False(t, hasIssued)

	// approve: one copy consumed, user flagged
	approved, err := svc.ApproveIssue(ctx, rec.IssueUID, librarianID)
	require.NoError(t, err)
	require.Equal(t, model.StatusIssued, approved.Status)
	require.Equal(t, 1, copies)
	require.True(t, hasIssued)

	// approve again: no-op, no double decrement
	_, err = svc.ApproveIssue(ctx, rec.IssueUID, librarianID)
	require.NoError(t, err)
	require.Equal(t, 1, copies)

	// return: copy credited back, user cleared
	require.NoError(t, svc.ReturnIssue(ctx, rec.IssueUID))
	require.Equal(t, 2, copies)
	require.False(t, hasIssued)

	// return again: idempotent, no double credit
	require.NoError(t, svc.ReturnIssue(ctx, rec.IssueUID))
	require.Equal(t, 2, copies)

	// delete the closed record
	require.NoError(t, svc.DeleteReturnedIssue(ctx, rec.IssueUID, librarianID))
	require.Nil(t, ledger)
	require.Equal(t, 2, copies)

	require.Equal(t,
		[]string{model.EventRequested, model.EventIssued, model.EventReturned, model.EventDeleted},
		queue.events)
}

func ptr[T any](v T) *T { return &v }
