package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"library-management/internal/errs"
	"library-management/internal/model"
	"library-management/internal/repository"
)

type Account struct {
	log   *zap.Logger
	store repository.Store
}

func NewAccount(store repository.Store, log *zap.Logger) *Account {
	return &Account{
		log:   log.Named("account"),
		store: store,
	}
}

func (s *Account) CreateUser(ctx context.Context, req model.UserCreateRequest) (model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, errors.Wrap(err, "hash password")
	}
	return s.store.CreateUser(ctx, model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hash),
	})
}

func (s *Account) GetUser(ctx context.Context, id int64) (model.User, error) {
	return s.store.GetUser(ctx, id)
}

func (s *Account) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.store.ListUsers(ctx)
}

// CheckUser returns the user's id, or 0 when the username is unknown.
func (s *Account) CheckUser(ctx context.Context, username string) (int64, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return user.ID, nil
}

// UpdateUser overwrites the user's own fields. The has_issued flag is
// owned by the issue ledger and is not touched here.
func (s *Account) UpdateUser(ctx context.Context, id int64, req model.UserUpdateRequest) (model.User, error) {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return model.User{}, err
	}
	user.Username = req.Username
	user.Email = req.Email
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return model.User{}, errors.Wrap(err, "hash password")
		}
		user.Password = string(hash)
	}
	return s.store.UpdateUser(ctx, user)
}

func (s *Account) DeleteUser(ctx context.Context, id int64) error {
	return s.store.DeleteUser(ctx, id)
}

// SignUpLibrarian registers a librarian and puts them on duty right away.
func (s *Account) SignUpLibrarian(ctx context.Context, req model.CredentialsRequest) (model.Librarian, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.Librarian{}, errors.Wrap(err, "hash password")
	}
	return s.store.CreateLibrarian(ctx, req.Name, string(hash), true)
}

// SignInLibrarian verifies credentials and marks the librarian on duty.
func (s *Account) SignInLibrarian(ctx context.Context, req model.CredentialsRequest) (model.Librarian, error) {
	lib, err := s.store.GetLibrarianByName(ctx, req.Name)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Librarian{}, errs.ErrInvalidCredentials
		}
		return model.Librarian{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(lib.Password), []byte(req.Password)); err != nil {
		return model.Librarian{}, errs.ErrInvalidCredentials
	}
	if err := s.store.SetLibrarianActive(ctx, lib.ID, true); err != nil {
		return model.Librarian{}, err
	}
	lib.Active = true
	return lib, nil
}

// SignOutLibrarian takes the on-duty librarian off duty.
func (s *Account) SignOutLibrarian(ctx context.Context) error {
	lib, err := s.store.GetActiveLibrarian(ctx)
	if err != nil {
		return err
	}
	return s.store.SetLibrarianActive(ctx, lib.ID, false)
}

func (s *Account) GetLibrarian(ctx context.Context, id int64) (model.Librarian, error) {
	return s.store.GetLibrarian(ctx, id)
}

func (s *Account) ListLibrarians(ctx context.Context) ([]model.Librarian, error) {
	return s.store.ListLibrarians(ctx)
}
