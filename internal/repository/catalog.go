package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"library-management/internal/errs"
	"library-management/internal/model"
)

func (s *store) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	q, args, err := qb.Insert(booksTableName).
		Columns("title", "author_id", "publisher_id", "category_id", "copies").
		Values(book.Title, book.AuthorID, book.PublisherID, book.CategoryID, book.Copies).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var created model.Book
	if err := s.q.GetContext(ctx, &created, q, args...); err != nil {
		s.log.Error("CreateBook", zap.String("q", q), zap.Any("args", args))
		return model.Book{}, wrapErr(err)
	}
	return created, nil
}

func (s *store) GetBook(ctx context.Context, id int64) (model.Book, error) {
	q, args, err := qb.Select("id", "title", "author_id", "publisher_id", "category_id", "copies").
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := s.q.GetContext(ctx, &book, q, args...); err != nil {
		return model.Book{}, wrapErr(err)
	}
	return book, nil
}

func (s *store) GetBookByTitle(ctx context.Context, title string) (model.Book, error) {
	q, args, err := qb.Select("id", "title", "author_id", "publisher_id", "category_id", "copies").
		From(booksTableName).
		Where(sq.Eq{"title": title}).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := s.q.GetContext(ctx, &book, q, args...); err != nil {
		return model.Book{}, wrapErr(err)
	}
	return book, nil
}

func (s *store) ListBooks(ctx context.Context) ([]model.Book, error) {
	q, args, err := qb.Select("id", "title", "author_id", "publisher_id", "category_id", "copies").
		From(booksTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	var books []model.Book
	if err := s.q.SelectContext(ctx, &books, q, args...); err != nil {
		return nil, wrapErr(err)
	}
	return books, nil
}

const bookDetailsQuery = `
select b.id, b.title, a.name as author, p.name as publisher, c.name as category, b.copies
from books b
join authors a on a.id = b.author_id
join publishers p on p.id = b.publisher_id
join categories c on c.id = b.category_id`

func (s *store) ListBookDetails(ctx context.Context) ([]model.BookDetails, error) {
	var books []model.BookDetails
	if err := s.q.SelectContext(ctx, &books, bookDetailsQuery+" order by b.id"); err != nil {
		return nil, wrapErr(err)
	}
	return books, nil
}

func (s *store) GetBookDetails(ctx context.Context, id int64) (model.BookDetails, error) {
	var book model.BookDetails
	if err := s.q.GetContext(ctx, &book, bookDetailsQuery+" where b.id = $1", id); err != nil {
		return model.BookDetails{}, wrapErr(err)
	}
	return book, nil
}

func (s *store) UpdateBook(ctx context.Context, book model.Book) (model.Book, error) {
	q, args, err := qb.Update(booksTableName).
		Set("title", book.Title).
		Set("author_id", book.AuthorID).
		Set("publisher_id", book.PublisherID).
		Set("category_id", book.CategoryID).
		Set("copies", book.Copies).
		Where(sq.Eq{"id": book.ID}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var updated model.Book
	if err := s.q.GetContext(ctx, &updated, q, args...); err != nil {
		return model.Book{}, wrapErr(err)
	}
	return updated, nil
}

func (s *store) DeleteBook(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, booksTableName, id)
}

// AdjustCopies shifts the remaining copy count, refusing to take it
// below zero.
func (s *store) AdjustCopies(ctx context.Context, bookID int64, delta int) error {
	q := `
update books
    set copies = copies + $2
where id = $1 and copies + $2 >= 0
returning id`
	var id int64
	err := s.q.GetContext(ctx, &id, q, bookID, delta)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return wrapErr(err)
	}
	// nothing updated: either the book row is gone or the delta would
	// drive copies negative
	var exists bool
	if err := s.q.GetContext(ctx, &exists, `select exists (select 1 from books where id = $1)`, bookID); err != nil {
		return wrapErr(err)
	}
	if !exists {
		return errs.ErrNotFound
	}
	return errs.ErrUnavailable
}

func (s *store) FindOrCreateAuthor(ctx context.Context, name string) (model.Author, error) {
	id, err := s.findOrCreateRef(ctx, authorsTableName, name)
	return model.Author{ID: id, Name: name}, err
}

func (s *store) FindOrCreatePublisher(ctx context.Context, name string) (model.Publisher, error) {
	id, err := s.findOrCreateRef(ctx, publishersTableName, name)
	return model.Publisher{ID: id, Name: name}, err
}

func (s *store) FindOrCreateCategory(ctx context.Context, name string) (model.Category, error) {
	id, err := s.findOrCreateRef(ctx, categoriesTableName, name)
	return model.Category{ID: id, Name: name}, err
}

// findOrCreateRef resolves a name in one of the reference tables,
// inserting the row on first reference.
func (s *store) findOrCreateRef(ctx context.Context, table, name string) (int64, error) {
	q := fmt.Sprintf(`
insert into %s (name) values ($1)
on conflict (name) do update set name = excluded.name
returning id`, table)
	var id int64
	if err := s.q.GetContext(ctx, &id, q, name); err != nil {
		return 0, wrapErr(err)
	}
	return id, nil
}

type ref struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

func (s *store) createRef(ctx context.Context, table, name string) (ref, error) {
	q, args, err := qb.Insert(table).
		Columns("name").
		Values(name).
		Suffix("returning id, name").
		ToSql()
	if err != nil {
		return ref{}, err
	}
	var r ref
	if err := s.q.GetContext(ctx, &r, q, args...); err != nil {
		return ref{}, wrapErr(err)
	}
	return r, nil
}

func (s *store) listRefs(ctx context.Context, table string) ([]ref, error) {
	q, args, err := qb.Select("id", "name").From(table).OrderBy("id").ToSql()
	if err != nil {
		return nil, err
	}
	var rr []ref
	if err := s.q.SelectContext(ctx, &rr, q, args...); err != nil {
		return nil, wrapErr(err)
	}
	return rr, nil
}

func (s *store) getRef(ctx context.Context, table string, id int64) (ref, error) {
	q, args, err := qb.Select("id", "name").From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return ref{}, err
	}
	var r ref
	if err := s.q.GetContext(ctx, &r, q, args...); err != nil {
		return ref{}, wrapErr(err)
	}
	return r, nil
}

func (s *store) updateRef(ctx context.Context, table string, id int64, name string) (ref, error) {
	q, args, err := qb.Update(table).
		Set("name", name).
		Where(sq.Eq{"id": id}).
		Suffix("returning id, name").
		ToSql()
	if err != nil {
		return ref{}, err
	}
	var r ref
	if err := s.q.GetContext(ctx, &r, q, args...); err != nil {
		return ref{}, wrapErr(err)
	}
	return r, nil
}

func (s *store) deleteByID(ctx context.Context, table string, id int64) error {
	q, args, err := qb.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	res, err := s.q.ExecContext(ctx, q, args...)
	if err != nil {
		return wrapErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (s *store) CreateAuthor(ctx context.Context, name string) (model.Author, error) {
	r, err := s.createRef(ctx, authorsTableName, name)
	return model.Author(r), err
}

func (s *store) ListAuthors(ctx context.Context) ([]model.Author, error) {
	rr, err := s.listRefs(ctx, authorsTableName)
	if err != nil {
		return nil, err
	}
	authors := make([]model.Author, 0, len(rr))
	for _, r := range rr {
		authors = append(authors, model.Author(r))
	}
	return authors, nil
}

func (s *store) GetAuthor(ctx context.Context, id int64) (model.Author, error) {
	r, err := s.getRef(ctx, authorsTableName, id)
	return model.Author(r), err
}

func (s *store) UpdateAuthor(ctx context.Context, id int64, name string) (model.Author, error) {
	r, err := s.updateRef(ctx, authorsTableName, id, name)
	return model.Author(r), err
}

func (s *store) DeleteAuthor(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, authorsTableName, id)
}

func (s *store) CreatePublisher(ctx context.Context, name string) (model.Publisher, error) {
	r, err := s.createRef(ctx, publishersTableName, name)
	return model.Publisher(r), err
}

func (s *store) ListPublishers(ctx context.Context) ([]model.Publisher, error) {
	rr, err := s.listRefs(ctx, publishersTableName)
	if err != nil {
		return nil, err
	}
	publishers := make([]model.Publisher, 0, len(rr))
	for _, r := range rr {
		publishers = append(publishers, model.Publisher(r))
	}
	return publishers, nil
}

func (s *store) GetPublisher(ctx context.Context, id int64) (model.Publisher, error) {
	r, err := s.getRef(ctx, publishersTableName, id)
	return model.Publisher(r), err
}

func (s *store) UpdatePublisher(ctx context.Context, id int64, name string) (model.Publisher, error) {
	r, err := s.updateRef(ctx, publishersTableName, id, name)
	return model.Publisher(r), err
}

func (s *store) DeletePublisher(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, publishersTableName, id)
}

func (s *store) CreateCategory(ctx context.Context, name string) (model.Category, error) {
	r, err := s.createRef(ctx, categoriesTableName, name)
	return model.Category(r), err
}

func (s *store) ListCategories(ctx context.Context) ([]model.Category, error) {
	rr, err := s.listRefs(ctx, categoriesTableName)
	if err != nil {
		return nil, err
	}
	categories := make([]model.Category, 0, len(rr))
	for _, r := range rr {
		categories = append(categories, model.Category(r))
	}
	return categories, nil
}

func (s *store) GetCategory(ctx context.Context, id int64) (model.Category, error) {
	r, err := s.getRef(ctx, categoriesTableName, id)
	return model.Category(r), err
}

func (s *store) UpdateCategory(ctx context.Context, id int64, name string) (model.Category, error) {
	r, err := s.updateRef(ctx, categoriesTableName, id, name)
	return model.Category(r), err
}

func (s *store) DeleteCategory(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, categoriesTableName, id)
}
