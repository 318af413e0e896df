package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"library-management/internal/errs"
	"library-management/internal/model"
	"library-management/internal/repository"
)

type Catalog struct {
	log   *zap.Logger
	store repository.Store
}

func NewCatalog(store repository.Store, log *zap.Logger) *Catalog {
	return &Catalog{
		log:   log.Named("catalog"),
		store: store,
	}
}

// AddBook registers a title, auto-creating author, publisher and category
// rows on first reference. Re-submitting an existing title adds its
// copies to the shelf instead of creating a duplicate.
func (s *Catalog) AddBook(ctx context.Context, req model.BookRequest) (model.Book, error) {
	if req.Copies == 0 {
		req.Copies = 1
	}
	var book model.Book
	err := s.store.WithinTx(ctx, func(st repository.Store) error {
		existing, err := st.GetBookByTitle(ctx, req.Title)
		switch {
		case err == nil:
			if err := st.AdjustCopies(ctx, existing.ID, req.Copies); err != nil {
				return err
			}
			book, err = st.GetBook(ctx, existing.ID)
			return err
		case errors.Is(err, errs.ErrNotFound):
			resolved, err := s.resolveRefs(ctx, st, req)
			if err != nil {
				return err
			}
			book, err = st.CreateBook(ctx, resolved)
			return err
		default:
			return err
		}
	})
	if err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func (s *Catalog) UpdateBook(ctx context.Context, id int64, req model.BookRequest) (model.Book, error) {
	var book model.Book
	err := s.store.WithinTx(ctx, func(st repository.Store) error {
		if _, err := st.GetBook(ctx, id); err != nil {
			return err
		}
		resolved, err := s.resolveRefs(ctx, st, req)
		if err != nil {
			return err
		}
		resolved.ID = id
		book, err = st.UpdateBook(ctx, resolved)
		return err
	})
	if err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func (s *Catalog) resolveRefs(ctx context.Context, st repository.Store, req model.BookRequest) (model.Book, error) {
	author, err := st.FindOrCreateAuthor(ctx, req.Author)
	if err != nil {
		return model.Book{}, err
	}
	publisher, err := st.FindOrCreatePublisher(ctx, req.Publisher)
	if err != nil {
		return model.Book{}, err
	}
	category, err := st.FindOrCreateCategory(ctx, req.Category)
	if err != nil {
		return model.Book{}, err
	}
	return model.Book{
		Title:       req.Title,
		AuthorID:    author.ID,
		PublisherID: publisher.ID,
		CategoryID:  category.ID,
		Copies:      req.Copies,
	}, nil
}

func (s *Catalog) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.store.ListBooks(ctx)
}

func (s *Catalog) ListBookDetails(ctx context.Context) ([]model.BookDetails, error) {
	return s.store.ListBookDetails(ctx)
}

func (s *Catalog) GetBookDetails(ctx context.Context, id int64) (model.BookDetails, error) {
	return s.store.GetBookDetails(ctx, id)
}

func (s *Catalog) DeleteBook(ctx context.Context, id int64) error {
	return s.store.DeleteBook(ctx, id)
}

func (s *Catalog) CreateAuthor(ctx context.Context, name string) (model.Author, error) {
	return s.store.CreateAuthor(ctx, name)
}

func (s *Catalog) ListAuthors(ctx context.Context) ([]model.Author, error) {
	return s.store.ListAuthors(ctx)
}

func (s *Catalog) GetAuthor(ctx context.Context, id int64) (model.Author, error) {
	return s.store.GetAuthor(ctx, id)
}

func (s *Catalog) UpdateAuthor(ctx context.Context, id int64, name string) (model.Author, error) {
	return s.store.UpdateAuthor(ctx, id, name)
}

func (s *Catalog) DeleteAuthor(ctx context.Context, id int64) error {
	return s.store.DeleteAuthor(ctx, id)
}

func (s *Catalog) CreatePublisher(ctx context.Context, name string) (model.Publisher, error) {
	return s.store.CreatePublisher(ctx, name)
}

func (s *Catalog) ListPublishers(ctx context.Context) ([]model.Publisher, error) {
	return s.store.ListPublishers(ctx)
}

func (s *Catalog) GetPublisher(ctx context.Context, id int64) (model.Publisher, error) {
	return s.store.GetPublisher(ctx, id)
}

func (s *Catalog) UpdatePublisher(ctx context.Context, id int64, name string) (model.Publisher, error) {
	return s.store.UpdatePublisher(ctx, id, name)
}

func (s *Catalog) DeletePublisher(ctx context.Context, id int64) error {
	return s.store.DeletePublisher(ctx, id)
}

func (s *Catalog) CreateCategory(ctx context.Context, name string) (model.Category, error) {
	return s.store.CreateCategory(ctx, name)
}

func (s *Catalog) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.store.ListCategories(ctx)
}

func (s *Catalog) GetCategory(ctx context.Context, id int64) (model.Category, error) {
	return s.store.GetCategory(ctx, id)
}

func (s *Catalog) UpdateCategory(ctx context.Context, id int64, name string) (model.Category, error) {
	return s.store.UpdateCategory(ctx, id, name)
}

func (s *Catalog) DeleteCategory(ctx context.Context, id int64) error {
	return s.store.DeleteCategory(ctx, id)
}
