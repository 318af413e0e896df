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

func newCatalogService(t *testing.T) (*service.Catalog, *mock_repository.MockStore) {
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
	return service.NewCatalog(store, zap.NewNop()), store
}

func TestCatalog_AddBook(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	req := model.BookRequest{
		Title:     "Dune",
		Author:    "Frank Herbert",
		Publisher: "Ace Books",
		Category:  "Fiction",
		Copies:    3,
	}

	t.Run("new title creates references and the book", func(t *testing.T) {
		t.Parallel()
		svc, store := newCatalogService(t)
		store.EXPECT().GetBookByTitle(ctx, "Dune").Return(model.Book{}, errs.ErrNotFound)
		store.EXPECT().FindOrCreateAuthor(ctx, "Frank Herbert").Return(model.Author{ID: 1, Name: "Frank Herbert"}, nil)
		store.EXPECT().FindOrCreatePublisher(ctx, "Ace Books").Return(model.Publisher{ID: 2, Name: "Ace Books"}, nil)
		store.EXPECT().FindOrCreateCategory(ctx, "Fiction").Return(model.Category{ID: 3, Name: "Fiction"}, nil)
		store.EXPECT().CreateBook(ctx, model.Book{
			Title:       "Dune",
			AuthorID:    1,
			PublisherID: 2,
			CategoryID:  3,
			Copies:      3,
		}).DoAndReturn(func(_ context.Context, b model.Book) (model.Book, error) {
			b.ID = 10
			return b, nil
		})

		book, err := svc.AddBook(ctx, req)
		require.NoError(t, err)
		require.Equal(t, int64(10), book.ID)
		require.Equal(t, 3, book.Copies)
	})

	t.Run("existing title gains the submitted copies", func(t *testing.T) {
		t.Parallel()
		svc, store := newCatalogService(t)
		store.EXPECT().GetBookByTitle(ctx, "Dune").Return(model.Book{ID: 10, Title: "Dune", Copies: 2}, nil)
		store.EXPECT().AdjustCopies(ctx, int64(10), 3).Return(nil)
		store.EXPECT().GetBook(ctx, int64(10)).Return(model.Book{ID: 10, Title: "Dune", Copies: 5}, nil)

		book, err := svc.AddBook(ctx, req)
		require.NoError(t, err)
		require.Equal(t, 5, book.Copies)
	})

	t.Run("copies default to one", func(t *testing.T) {
		t.Parallel()
		svc, store := newCatalogService(t)
		noCopies := req
		noCopies.Copies = 0
		store.EXPECT().GetBookByTitle(ctx, "Dune").Return(model.Book{ID: 10, Title: "Dune", Copies: 2}, nil)
		store.EXPECT().AdjustCopies(ctx, int64(10), 1).Return(nil)
		store.EXPECT().GetBook(ctx, int64(10)).Return(model.Book{ID: 10, Title: "Dune", Copies: 3}, nil)

		_, err := svc.AddBook(ctx, noCopies)
		require.NoError(t, err)
	})
}

func TestCatalog_UpdateBook(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("unknown book", func(t *testing.T) {
		t.Parallel()
		svc, store := newCatalogService(t)
		store.EXPECT().GetBook(ctx, int64(99)).Return(model.Book{}, errs.ErrNotFound)

		_, err := svc.UpdateBook(ctx, 99, model.BookRequest{Title: "x", Author: "a", Publisher: "p", Category: "c"})
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("references re-resolved on update", func(t *testing.T) {
		t.Parallel()
		svc, store := newCatalogService(t)
		store.EXPECT().GetBook(ctx, int64(10)).Return(model.Book{ID: 10, Title: "Dune"}, nil)
		store.EXPECT().FindOrCreateAuthor(ctx, "Frank Herbert").Return(model.Author{ID: 1}, nil)
		store.EXPECT().FindOrCreatePublisher(ctx, "Ace Books").Return(model.Publisher{ID: 2}, nil)
		store.EXPECT().FindOrCreateCategory(ctx, "Fiction").Return(model.Category{ID: 3}, nil)
		store.EXPECT().UpdateBook(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, b model.Book) (model.Book, error) {
				require.Equal(t, int64(10), b.ID)
				return b, nil
			})

		_, err := svc.UpdateBook(ctx, 10, model.BookRequest{
			Title:     "Dune Messiah",
			Author:    "Frank Herbert",
			Publisher: "Ace Books",
			Category:  "Fiction",
			Copies:    1,
		})
		require.NoError(t, err)
	})
}
