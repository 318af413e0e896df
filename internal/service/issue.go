package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"library-management/internal/errs"
	"library-management/internal/model"
	"library-management/internal/repository"
	"library-management/pkg/kafka"
)

// Issue owns the book-issue lifecycle. It is the sole writer of the
// derived consistency fields: a record's status, the book's remaining
// copies and the user's has_issued flag always move together inside one
// serializable transaction.
type Issue struct {
	log   *zap.Logger
	store repository.Store
	queue Enqueuer
}

func NewIssue(store repository.Store, queue Enqueuer, log *zap.Logger) *Issue {
	return &Issue{
		log:   log.Named("issue"),
		store: store,
		queue: queue,
	}
}

// RequestIssue records an issue request. When a librarian is on duty the
// record is issued immediately: copies drop by one and the user is
// flagged as holding a book. Otherwise the record stays pending and
// consumes no inventory.
func (s *Issue) RequestIssue(ctx context.Context, req model.IssueRequest) (model.IssueRecord, error) {
	var rec model.IssueRecord
	err := s.store.WithinTx(ctx, func(st repository.Store) error {
		book, err := st.GetBook(ctx, req.BookID)
		if err != nil {
			return errors.Wrap(err, "book for issue")
		}
		if book.Copies == 0 {
			return errs.ErrUnavailable
		}
		user, err := st.GetUser(ctx, req.UserID)
		if err != nil {
			return errors.Wrap(err, "user for issue")
		}
		if user.HasIssued {
			return errors.Wrap(errs.ErrConflict, "user is not eligible to issue a book")
		}
		dup, err := st.HasActiveIssue(ctx, book.ID, user.ID)
		if err != nil {
			return err
		}
		if dup {
			return errors.Wrap(errs.ErrConflict, "user has already requested this book")
		}

		rec = model.IssueRecord{
			IssueUID:  uuid.NewString(),
			BookID:    book.ID,
			UserID:    user.ID,
			IssueTime: time.Now().UTC(),
			Status:    model.StatusPending,
		}
		onDuty, err := st.GetActiveLibrarian(ctx)
		switch {
		case err == nil:
			rec.Status = model.StatusIssued
			rec.IssuedBy = &onDuty.ID
		case errors.Is(err, errs.ErrNotFound):
			// nobody on duty, the request awaits approval
		default:
			return err
		}

		created, err := st.CreateIssue(ctx, rec)
		if err != nil {
			return err
		}
		rec = created

		if rec.Status == model.StatusIssued {
			if err := st.AdjustCopies(ctx, book.ID, -1); err != nil {
				return err
			}
			if err := st.SetHasIssued(ctx, user.ID, true); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return model.IssueRecord{}, err
	}

	event := model.EventRequested
	if rec.Status == model.StatusIssued {
		event = model.EventIssued
	}
	s.publish(rec, event)
	return rec, nil
}

// ApproveIssue moves a pending record to issued on behalf of the acting
// librarian. Approving a record that is not pending is a no-op.
func (s *Issue) ApproveIssue(ctx context.Context, issueUID string, librarianID int64) (model.IssueRecord, error) {
	var (
		rec     model.IssueRecord
		applied bool
	)
	err := s.store.WithinTx(ctx, func(st repository.Store) error {
		lib, err := st.GetLibrarian(ctx, librarianID)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return errs.ErrUnauthenticated
			}
			return err
		}
		if !lib.Active {
			return errs.ErrUnauthenticated
		}

		rec, err = st.GetIssue(ctx, issueUID)
		if err != nil {
			return errors.Wrap(err, "issue record")
		}
		if rec.Status != model.StatusPending {
			return nil
		}

		user, err := st.GetUser(ctx, rec.UserID)
		if err != nil {
			return err
		}
		if user.HasIssued {
			return errors.Wrap(errs.ErrConflict, "user is not eligible to issue a book")
		}

		// inventory may have been exhausted since the request was made
		book, err := st.GetBook(ctx, rec.BookID)
		if err != nil {
			return err
		}
		if book.Copies < 1 {
			return errors.Wrap(errs.ErrConflict, "insufficient inventory")
		}

		if err := st.UpdateIssueStatus(ctx, issueUID, model.StatusIssued, &lib.ID); err != nil {
			return err
		}
		if err := st.AdjustCopies(ctx, rec.BookID, -1); err != nil {
			return err
		}
		if err := st.SetHasIssued(ctx, rec.UserID, true); err != nil {
			return err
		}
		rec.Status = model.StatusIssued
		rec.IssuedBy = &lib.ID
		applied = true
		return nil
	})
	if err != nil {
		return model.IssueRecord{}, err
	}
	if applied {
		s.publish(rec, model.EventIssued)
	}
	return rec, nil
}

// ReturnIssue closes a record. Returning an already-returned record is a
// no-op: the inventory credit is applied exactly once. A pending record
// never consumed a copy, so closing it changes no inventory.
func (s *Issue) ReturnIssue(ctx context.Context, issueUID string) error {
	var (
		rec     model.IssueRecord
		applied bool
	)
	err := s.store.WithinTx(ctx, func(st repository.Store) error {
		var err error
		rec, err = st.GetIssue(ctx, issueUID)
		if err != nil {
			return errors.Wrap(err, "issue record")
		}
		if rec.Status == model.StatusReturned {
			return nil
		}
		wasIssued := rec.Status == model.StatusIssued
		if err := st.UpdateIssueStatus(ctx, issueUID, model.StatusReturned, nil); err != nil {
			return err
		}
		if wasIssued {
			if err := st.AdjustCopies(ctx, rec.BookID, 1); err != nil {
				return err
			}
			if err := st.SetHasIssued(ctx, rec.UserID, false); err != nil {
				return err
			}
		}
		applied = true
		return nil
	})
	if err != nil {
		return err
	}
	if applied {
		s.publish(rec, model.EventReturned)
	}
	return nil
}

// DeleteReturnedIssue removes a returned record. The inventory and user
// flag were already settled at return time, so deletion has no side
// effects.
func (s *Issue) DeleteReturnedIssue(ctx context.Context, issueUID string, librarianID int64) error {
	var rec model.IssueRecord
	err := s.store.WithinTx(ctx, func(st repository.Store) error {
		lib, err := st.GetLibrarian(ctx, librarianID)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return errs.ErrUnauthenticated
			}
			return err
		}
		if !lib.Active {
			return errs.ErrUnauthenticated
		}
		rec, err = st.GetIssue(ctx, issueUID)
		if err != nil {
			return errors.Wrap(err, "issue record")
		}
		if rec.Status != model.StatusReturned {
			return errors.Wrap(errs.ErrConflict, "book has not been returned to the library")
		}
		return st.DeleteIssue(ctx, issueUID)
	})
	if err != nil {
		return err
	}
	s.publish(rec, model.EventDeleted)
	return nil
}

// ForceDeleteIssue removes a record in any state. The inventory credit
// and user-flag reversal apply only when the record was actually issued;
// a returned record was already credited and a pending one never consumed
// a copy.
func (s *Issue) ForceDeleteIssue(ctx context.Context, issueUID string) error {
	var rec model.IssueRecord
	err := s.store.WithinTx(ctx, func(st repository.Store) error {
		var err error
		rec, err = st.GetIssue(ctx, issueUID)
		if err != nil {
			return errors.Wrap(err, "issue record")
		}
		if err := st.DeleteIssue(ctx, issueUID); err != nil {
			return err
		}
		if rec.Status == model.StatusIssued {
			if err := st.AdjustCopies(ctx, rec.BookID, 1); err != nil {
				return err
			}
			if err := st.SetHasIssued(ctx, rec.UserID, false); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.publish(rec, model.EventDeleted)
	return nil
}

func (s *Issue) ListIssues(ctx context.Context) ([]model.IssueDetails, error) {
	return s.store.ListIssues(ctx)
}

func (s *Issue) GetIssue(ctx context.Context, issueUID string) (model.IssueDetails, error) {
	return s.store.GetIssueDetails(ctx, issueUID)
}

func (s *Issue) GetIssuesByUser(ctx context.Context, userID int64) ([]model.IssueDetails, error) {
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return nil, errors.Wrap(err, "user")
	}
	return s.store.ListIssuesByUser(ctx, userID)
}

func (s *Issue) ListIssueEvents(ctx context.Context) ([]model.IssueEvent, error) {
	return s.store.ListIssueEvents(ctx)
}

// publish emits a lifecycle event for the stats consumer, best effort.
func (s *Issue) publish(rec model.IssueRecord, event string) {
	msg := model.IssueEventMessage{
		IssueUID:   rec.IssueUID,
		BookID:     rec.BookID,
		UserID:     rec.UserID,
		Event:      event,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.queue.Enqueue(kafka.IssueEventsTopic, msg); err != nil {
		s.log.Error("enqueue issue event", zap.String("issueUid", rec.IssueUID), zap.Error(err))
	}
}
