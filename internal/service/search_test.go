package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"library-management/internal/errs"
	"library-management/internal/model"
	mock_repository "library-management/internal/repository/mocks"
	"library-management/internal/service"
)

var shelf = []model.BookDetails{
	{ID: 1, Title: "The Go Programming Language", Author: "Alan Donovan", Publisher: "Addison-Wesley", Category: "Programming", Copies: 2},
	{ID: 2, Title: "Designing Data-Intensive Applications", Author: "Martin Kleppmann", Publisher: "O'Reilly", Category: "Programming", Copies: 1},
	{ID: 3, Title: "Dune", Author: "Frank Herbert", Publisher: "Ace Books", Category: "Fiction", Copies: 4},
}

func newSearchService(t *testing.T) (*service.Search, *mock_repository.MockStore) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	store := mock_repository.NewMockStore(c)
	return service.NewSearch(store, zap.NewNop()), store
}

func TestSearch_SearchBooks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name                     string
		title, author, publisher string
		wantIDs                  []int64
	}{
		{
			name:    "title term only",
			title:   "go programming",
			wantIDs: []int64{1},
		},
		{
			name:    "author term is case-insensitive",
			author:  "KLEPPMANN",
			wantIDs: []int64{2},
		},
		{
			name:      "terms combine with AND",
			title:     "d",
			publisher: "ace",
			wantIDs:   []int64{3},
		},
		{
			name:    "empty terms match everything",
			wantIDs: []int64{1, 2, 3},
		},
		{
			name:    "no match",
			title:   "zzz",
			wantIDs: []int64{},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, store := newSearchService(t)
			store.EXPECT().ListBookDetails(ctx).Return(shelf, nil)

			books, err := svc.SearchBooks(ctx, tt.title, tt.author, tt.publisher)
			require.NoError(t, err)
			require.Equal(t, tt.wantIDs, ids(books))
		})
	}
}

func TestSearch_SearchAny(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, store := newSearchService(t)
	store.EXPECT().ListBookDetails(ctx).Return(shelf, nil).Times(3)

	// matches a single title
	books, err := svc.SearchAny(ctx, "dune")
	require.NoError(t, err)
	require.Equal(t, []int64{3}, ids(books))

	// "an" sits in Alan, Kleppmann and Frank, so every author matches
	books, err = svc.SearchAny(ctx, "an")
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, ids(books))

	// publisher-only match
	books, err = svc.SearchAny(ctx, "wesley")
	require.NoError(t, err)
	require.Equal(t, []int64{1}, ids(books))
}

func TestSearch_BooksByCategory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("category filter", func(t *testing.T) {
		t.Parallel()
		svc, store := newSearchService(t)
		store.EXPECT().GetCategory(ctx, int64(5)).Return(model.Category{ID: 5, Name: "Programming"}, nil)
		store.EXPECT().ListBookDetails(ctx).Return(shelf, nil)

		books, err := svc.BooksByCategory(ctx, 5, "")
		require.NoError(t, err)
		require.Equal(t, []int64{1, 2}, ids(books))
	})

	t.Run("category filter narrowed by term", func(t *testing.T) {
		t.Parallel()
		svc, store := newSearchService(t)
		store.EXPECT().GetCategory(ctx, int64(5)).Return(model.Category{ID: 5, Name: "Programming"}, nil)
		store.EXPECT().ListBookDetails(ctx).Return(shelf, nil)

		books, err := svc.BooksByCategory(ctx, 5, "kleppmann")
		require.NoError(t, err)
		require.Equal(t, []int64{2}, ids(books))
	})

	t.Run("unknown category", func(t *testing.T) {
		t.Parallel()
		svc, store := newSearchService(t)
		store.EXPECT().GetCategory(ctx, int64(9)).Return(model.Category{}, errs.ErrNotFound)

		_, err := svc.BooksByCategory(ctx, 9, "")
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestSearch_IssuedUsers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, store := newSearchService(t)
	store.EXPECT().ListUsers(ctx).Return([]model.User{
		{ID: 1, Username: "ann"},
		{ID: 2, Username: "bob", HasIssued: true},
		{ID: 3, Username: "eve"},
	}, nil)

	users, err := svc.IssuedUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "bob", users[0].Username)
}

func ids(books []model.BookDetails) []int64 {
	out := make([]int64, 0, len(books))
	for _, b := range books {
		out = append(out, b.ID)
	}
	return out
}
