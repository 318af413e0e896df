package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"library-management/internal/model"
	"library-management/internal/repository"
)

// Search is the read-only query façade: it materializes display-shaped
// records and applies case-insensitive substring filters in memory. The
// catalog is small, no indexing.
type Search struct {
	log   *zap.Logger
	store repository.Store
}

func NewSearch(store repository.Store, log *zap.Logger) *Search {
	return &Search{
		log:   log.Named("search"),
		store: store,
	}
}

// SearchBooks filters by any combination of title, author and publisher
// terms; empty terms match everything.
func (s *Search) SearchBooks(ctx context.Context, title, author, publisher string) ([]model.BookDetails, error) {
	books, err := s.store.ListBookDetails(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]model.BookDetails, 0, len(books))
	for _, b := range books {
		if containsFold(b.Title, title) && containsFold(b.Author, author) && containsFold(b.Publisher, publisher) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

// SearchAny matches books whose title, author or publisher contains the
// term.
func (s *Search) SearchAny(ctx context.Context, term string) ([]model.BookDetails, error) {
	books, err := s.store.ListBookDetails(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]model.BookDetails, 0, len(books))
	for _, b := range books {
		if matchesAny(b, term) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

// BooksByCategory lists the category's books, optionally narrowed by a
// free-text term.
func (s *Search) BooksByCategory(ctx context.Context, categoryID int64, term string) ([]model.BookDetails, error) {
	category, err := s.store.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	books, err := s.store.ListBookDetails(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]model.BookDetails, 0, len(books))
	for _, b := range books {
		if b.Category != category.Name {
			continue
		}
		if term == "" || matchesAny(b, term) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

// IssuedUsers lists users currently holding a book.
func (s *Search) IssuedUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	issued := make([]model.User, 0, len(users))
	for _, u := range users {
		if u.HasIssued {
			issued = append(issued, u)
		}
	}
	return issued, nil
}

func matchesAny(b model.BookDetails, term string) bool {
	return containsFold(b.Title, term) || containsFold(b.Author, term) || containsFold(b.Publisher, term)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
