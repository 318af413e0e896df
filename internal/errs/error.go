package errs

import (
	"errors"
)

var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnavailable is returned when a book has no copies left to issue.
	ErrUnavailable = errors.New("book is not available to issue")
	// ErrConflict is returned when a state-machine precondition is violated:
	// ineligible user, duplicate request, not-yet-returned record on delete,
	// or a unique value that already exists.
	ErrConflict = errors.New("conflict")
	// ErrUnauthenticated is returned when an operation requires an acting
	// librarian and none is on duty.
	ErrUnauthenticated = errors.New("no acting librarian")
	// ErrInvalidCredentials is returned on a failed sign-in.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
