package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"library-management/internal/model"
)

func (s *store) CreateIssue(ctx context.Context, rec model.IssueRecord) (model.IssueRecord, error) {
	q, args, err := qb.Insert(issuesTableName).
		Columns("issue_uid", "book_id", "user_id", "issued_by", "issue_time", "issue_status").
		Values(rec.IssueUID, rec.BookID, rec.UserID, rec.IssuedBy, rec.IssueTime, rec.Status).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.IssueRecord{}, err
	}
	var created model.IssueRecord
	if err := s.q.GetContext(ctx, &created, q, args...); err != nil {
		s.log.Error("CreateIssue", zap.String("q", q), zap.Any("args", args))
		return model.IssueRecord{}, wrapErr(err)
	}
	return created, nil
}

func (s *store) GetIssue(ctx context.Context, issueUID string) (model.IssueRecord, error) {
	q, args, err := qb.Select("id", "issue_uid", "book_id", "user_id", "issued_by", "issue_time", "issue_status").
		From(issuesTableName).
		Where(sq.Eq{"issue_uid": issueUID}).
		ToSql()
	if err != nil {
		return model.IssueRecord{}, err
	}
	var rec model.IssueRecord
	if err := s.q.GetContext(ctx, &rec, q, args...); err != nil {
		return model.IssueRecord{}, wrapErr(err)
	}
	return rec, nil
}

func (s *store) UpdateIssueStatus(ctx context.Context, issueUID string, status model.IssueStatus, issuedBy *int64) error {
	q := `
update book_issues
    set issue_status = $2,
        issued_by = coalesce($3, issued_by)
where issue_uid = $1`
	_, err := s.q.ExecContext(ctx, q, issueUID, status, issuedBy)
	return wrapErr(err)
}

func (s *store) DeleteIssue(ctx context.Context, issueUID string) error {
	q, args, err := qb.Delete(issuesTableName).Where(sq.Eq{"issue_uid": issueUID}).ToSql()
	if err != nil {
		return err
	}
	_, err = s.q.ExecContext(ctx, q, args...)
	return wrapErr(err)
}

// HasActiveIssue reports whether a non-returned record already pairs
// this book and user.
func (s *store) HasActiveIssue(ctx context.Context, bookID, userID int64) (bool, error) {
	q := `
select count(*) from book_issues
where book_id = $1 and user_id = $2 and issue_status in ('PENDING', 'ISSUED')`
	var count int
	if err := s.q.GetContext(ctx, &count, q, bookID, userID); err != nil {
		return false, wrapErr(err)
	}
	return count > 0, nil
}

const issueDetailsQuery = `
select i.issue_uid, b.title as book_title, u.username, l.name as issued_by, i.issue_time, i.issue_status
from book_issues i
join books b on b.id = i.book_id
join users u on u.id = i.user_id
left join librarians l on l.id = i.issued_by`

func (s *store) ListIssues(ctx context.Context) ([]model.IssueDetails, error) {
	var items []model.IssueDetails
	if err := s.q.SelectContext(ctx, &items, issueDetailsQuery+" order by i.id"); err != nil {
		return nil, wrapErr(err)
	}
	return items, nil
}

func (s *store) ListIssuesByUser(ctx context.Context, userID int64) ([]model.IssueDetails, error) {
	var items []model.IssueDetails
	if err := s.q.SelectContext(ctx, &items, issueDetailsQuery+" where i.user_id = $1 order by i.id", userID); err != nil {
		return nil, wrapErr(err)
	}
	return items, nil
}

func (s *store) GetIssueDetails(ctx context.Context, issueUID string) (model.IssueDetails, error) {
	var item model.IssueDetails
	if err := s.q.GetContext(ctx, &item, issueDetailsQuery+" where i.issue_uid = $1", issueUID); err != nil {
		return model.IssueDetails{}, wrapErr(err)
	}
	return item, nil
}

func (s *store) InsertIssueEvent(ctx context.Context, ev model.IssueEvent) error {
	q, args, err := qb.Insert(issueEventsTableName).
		Columns("issue_uid", "book_id", "user_id", "event", "occurred_at").
		Values(ev.IssueUID, ev.BookID, ev.UserID, ev.Event, ev.OccurredAt).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.q.ExecContext(ctx, q, args...)
	return wrapErr(err)
}

func (s *store) ListIssueEvents(ctx context.Context) ([]model.IssueEvent, error) {
	q, args, err := qb.Select("id", "issue_uid", "book_id", "user_id", "event", "occurred_at").
		From(issueEventsTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	var events []model.IssueEvent
	if err := s.q.SelectContext(ctx, &events, q, args...); err != nil {
		return nil, wrapErr(err)
	}
	return events, nil
}
