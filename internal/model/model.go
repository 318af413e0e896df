package model

import (
	"time"
)

type Book struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	AuthorID    int64  `json:"authorId" db:"author_id"`
	PublisherID int64  `json:"publisherId" db:"publisher_id"`
	CategoryID  int64  `json:"categoryId" db:"category_id"`
	Copies      int    `json:"copies" db:"copies"`
}

// BookDetails is the display-shaped book projection with references
// resolved to names.
type BookDetails struct {
	ID        int64  `json:"id" db:"id"`
	Title     string `json:"title" db:"title"`
	Author    string `json:"author" db:"author"`
	Publisher string `json:"publisher" db:"publisher"`
	Category  string `json:"category" db:"category"`
	Copies    int    `json:"copies" db:"copies"`
}

// BookRequest carries author/publisher/category by name; missing rows are
// auto-created on first reference.
type BookRequest struct {
	Title     string `json:"title" validate:"required"`
	Author    string `json:"author" validate:"required"`
	Publisher string `json:"publisher" validate:"required"`
	Category  string `json:"category" validate:"required"`
	Copies    int    `json:"copies" validate:"omitempty,min=1"`
}

type Author struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type Publisher struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type Category struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type NameRequest struct {
	Name string `json:"name" validate:"required"`
}

type User struct {
	ID        int64  `json:"id" db:"id"`
	Username  string `json:"username" db:"username"`
	Email     string `json:"email" db:"email"`
	Password  string `json:"-" db:"password"`
	HasIssued bool   `json:"hasIssued" db:"has_issued"`
}

type UserCreateRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

// UserUpdateRequest deliberately has no hasIssued field: the flag is owned
// by the issue ledger and never writable through generic update.
type UserUpdateRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=4"`
}

type Librarian struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Password string `json:"-" db:"password"`
	Active   bool   `json:"active" db:"active"`
}

type CredentialsRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=4"`
}

type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
}

type IssueStatus string

const (
	StatusPending  IssueStatus = "PENDING"
	StatusIssued   IssueStatus = "ISSUED"
	StatusReturned IssueStatus = "RETURNED"
)

type IssueRecord struct {
	ID        int64       `json:"-" db:"id"`
	IssueUID  string      `json:"issueUid" db:"issue_uid"`
	BookID    int64       `json:"bookId" db:"book_id"`
	UserID    int64       `json:"userId" db:"user_id"`
	IssuedBy  *int64      `json:"issuedBy" db:"issued_by"`
	IssueTime time.Time   `json:"issueTime" db:"issue_time"`
	Status    IssueStatus `json:"status" db:"issue_status"`
}

type IssueRequest struct {
	BookID int64 `json:"bookId" validate:"required"`
	UserID int64 `json:"userId" validate:"required"`
}

// IssueDetails is the display-shaped issue projection.
type IssueDetails struct {
	IssueUID  string      `json:"issueUid" db:"issue_uid"`
	BookTitle string      `json:"bookTitle" db:"book_title"`
	Username  string      `json:"username" db:"username"`
	IssuedBy  *string     `json:"issuedBy" db:"issued_by"`
	IssueTime time.Time   `json:"issueTime" db:"issue_time"`
	Status    IssueStatus `json:"status" db:"issue_status"`
}

const (
	EventRequested = "REQUESTED"
	EventIssued    = "ISSUED"
	EventReturned  = "RETURNED"
	EventDeleted   = "DELETED"
)

// IssueEventMessage is the kafka payload published on every ledger mutation.
type IssueEventMessage struct {
	IssueUID   string    `json:"issueUid"`
	BookID     int64     `json:"bookId"`
	UserID     int64     `json:"userId"`
	Event      string    `json:"event"`
	OccurredAt time.Time `json:"occurredAt"`
}

// IssueEvent is the persisted audit row written by the stats consumer.
type IssueEvent struct {
	ID         int64     `json:"id" db:"id"`
	IssueUID   string    `json:"issueUid" db:"issue_uid"`
	BookID     int64     `json:"bookId" db:"book_id"`
	UserID     int64     `json:"userId" db:"user_id"`
	Event      string    `json:"event" db:"event"`
	OccurredAt time.Time `json:"occurredAt" db:"occurred_at"`
}
