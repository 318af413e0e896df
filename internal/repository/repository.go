package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"library-management/internal/errs"
	"library-management/internal/model"
)

type Catalog interface {
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	GetBookByTitle(ctx context.Context, title string) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	UpdateBook(ctx context.Context, book model.Book) (model.Book, error)
	DeleteBook(ctx context.Context, id int64) error
	AdjustCopies(ctx context.Context, bookID int64, delta int) error
	ListBookDetails(ctx context.Context) ([]model.BookDetails, error)
	GetBookDetails(ctx context.Context, id int64) (model.BookDetails, error)

	FindOrCreateAuthor(ctx context.Context, name string) (model.Author, error)
	FindOrCreatePublisher(ctx context.Context, name string) (model.Publisher, error)
	FindOrCreateCategory(ctx context.Context, name string) (model.Category, error)

	CreateAuthor(ctx context.Context, name string) (model.Author, error)
	ListAuthors(ctx context.Context) ([]model.Author, error)
	GetAuthor(ctx context.Context, id int64) (model.Author, error)
	UpdateAuthor(ctx context.Context, id int64, name string) (model.Author, error)
	DeleteAuthor(ctx context.Context, id int64) error

	CreatePublisher(ctx context.Context, name string) (model.Publisher, error)
	ListPublishers(ctx context.Context) ([]model.Publisher, error)
	GetPublisher(ctx context.Context, id int64) (model.Publisher, error)
	UpdatePublisher(ctx context.Context, id int64, name string) (model.Publisher, error)
	DeletePublisher(ctx context.Context, id int64) error

	CreateCategory(ctx context.Context, name string) (model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, id int64) (model.Category, error)
	UpdateCategory(ctx context.Context, id int64, name string) (model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type Account interface {
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, user model.User) (model.User, error)
	DeleteUser(ctx context.Context, id int64) error
	SetHasIssued(ctx context.Context, userID int64, hasIssued bool) error

	CreateLibrarian(ctx context.Context, name, password string, active bool) (model.Librarian, error)
	GetLibrarian(ctx context.Context, id int64) (model.Librarian, error)
	GetLibrarianByName(ctx context.Context, name string) (model.Librarian, error)
	ListLibrarians(ctx context.Context) ([]model.Librarian, error)
	SetLibrarianActive(ctx context.Context, id int64, active bool) error
	GetActiveLibrarian(ctx context.Context) (model.Librarian, error)
}

type Issue interface {
	CreateIssue(ctx context.Context, rec model.IssueRecord) (model.IssueRecord, error)
	GetIssue(ctx context.Context, issueUID string) (model.IssueRecord, error)
	UpdateIssueStatus(ctx context.Context, issueUID string, status model.IssueStatus, issuedBy *int64) error
	DeleteIssue(ctx context.Context, issueUID string) error
	HasActiveIssue(ctx context.Context, bookID, userID int64) (bool, error)
	ListIssues(ctx context.Context) ([]model.IssueDetails, error)
	ListIssuesByUser(ctx context.Context, userID int64) ([]model.IssueDetails, error)
	GetIssueDetails(ctx context.Context, issueUID string) (model.IssueDetails, error)

	InsertIssueEvent(ctx context.Context, ev model.IssueEvent) error
	ListIssueEvents(ctx context.Context) ([]model.IssueEvent, error)
}

// Store is the full persistence surface. WithinTx runs fn against a
// store bound to a single serializable transaction; fn's effects are
// all-or-nothing.
type Store interface {
	Catalog
	Account
	Issue
	WithinTx(ctx context.Context, fn func(s Store) error) error
}

// database is satisfied by both *sqlx.DB and *sqlx.Tx.
type database interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type store struct {
	db  *sqlx.DB
	q   database
	log *zap.Logger
}

func NewStore(db *sqlx.DB, log *zap.Logger) (*store, error) {
	return &store{
		db:  db,
		q:   db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName       = `books`
	authorsTableName     = `authors`
	publishersTableName  = `publishers`
	categoriesTableName  = `categories`
	usersTableName       = `users`
	librariansTableName  = `librarians`
	issuesTableName      = `book_issues`
	issueEventsTableName = `issue_events`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (s *store) WithinTx(ctx context.Context, fn func(st Store) error) error {
	if _, ok := s.q.(*sqlx.Tx); ok {
		// already inside a transaction
		return fn(s)
	}
	tx, err := s.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	txStore := &store{db: s.db, q: tx, log: s.log}
	if err := fn(txStore); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.log.Error("tx rollback", zap.Error(rbErr))
		}
		return err
	}
	return errors.Wrap(tx.Commit(), "commit tx")
}

// wrapErr maps driver errors onto the service error taxonomy.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return errs.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return errors.Wrap(errs.ErrConflict, pgErr.ConstraintName)
	}
	return err
}
