package handler

import (
	"context"

	"library-management/internal/model"
	"library-management/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CatalogService interface {
	AddBook(ctx context.Context, req model.BookRequest) (model.Book, error)
	UpdateBook(ctx context.Context, id int64, req model.BookRequest) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	ListBookDetails(ctx context.Context) ([]model.BookDetails, error)
	GetBookDetails(ctx context.Context, id int64) (model.BookDetails, error)
	DeleteBook(ctx context.Context, id int64) error

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

type AccountService interface {
	CreateUser(ctx context.Context, req model.UserCreateRequest) (model.User, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	CheckUser(ctx context.Context, username string) (int64, error)
	UpdateUser(ctx context.Context, id int64, req model.UserUpdateRequest) (model.User, error)
	DeleteUser(ctx context.Context, id int64) error

	SignUpLibrarian(ctx context.Context, req model.CredentialsRequest) (model.Librarian, error)
	SignInLibrarian(ctx context.Context, req model.CredentialsRequest) (model.Librarian, error)
	SignOutLibrarian(ctx context.Context) error
	GetLibrarian(ctx context.Context, id int64) (model.Librarian, error)
	ListLibrarians(ctx context.Context) ([]model.Librarian, error)
}

type IssueService interface {
	RequestIssue(ctx context.Context, req model.IssueRequest) (model.IssueRecord, error)
	ApproveIssue(ctx context.Context, issueUID string, librarianID int64) (model.IssueRecord, error)
	ReturnIssue(ctx context.Context, issueUID string) error
	DeleteReturnedIssue(ctx context.Context, issueUID string, librarianID int64) error
	ForceDeleteIssue(ctx context.Context, issueUID string) error
	ListIssues(ctx context.Context) ([]model.IssueDetails, error)
	GetIssue(ctx context.Context, issueUID string) (model.IssueDetails, error)
	GetIssuesByUser(ctx context.Context, userID int64) ([]model.IssueDetails, error)
	ListIssueEvents(ctx context.Context) ([]model.IssueEvent, error)
}

type SearchService interface {
	SearchBooks(ctx context.Context, title, author, publisher string) ([]model.BookDetails, error)
	SearchAny(ctx context.Context, term string) ([]model.BookDetails, error)
	BooksByCategory(ctx context.Context, categoryID int64, term string) ([]model.BookDetails, error)
	IssuedUsers(ctx context.Context) ([]model.User, error)
}

var (
	_ CatalogService = (*service.Catalog)(nil)
	_ AccountService = (*service.Account)(nil)
	_ IssueService   = (*service.Issue)(nil)
	_ SearchService  = (*service.Search)(nil)
)
