package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"library-management/internal/model"
)

func (s *store) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	q, args, err := qb.Insert(usersTableName).
		Columns("username", "email", "password").
		Values(user.Username, user.Email, user.Password).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var created model.User
	if err := s.q.GetContext(ctx, &created, q, args...); err != nil {
		s.log.Error("CreateUser", zap.String("q", q))
		return model.User{}, wrapErr(err)
	}
	return created, nil
}

func (s *store) GetUser(ctx context.Context, id int64) (model.User, error) {
	q, args, err := qb.Select("id", "username", "email", "password", "has_issued").
		From(usersTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := s.q.GetContext(ctx, &user, q, args...); err != nil {
		return model.User{}, wrapErr(err)
	}
	return user, nil
}

func (s *store) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	q, args, err := qb.Select("id", "username", "email", "password", "has_issued").
		From(usersTableName).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := s.q.GetContext(ctx, &user, q, args...); err != nil {
		return model.User{}, wrapErr(err)
	}
	return user, nil
}

func (s *store) ListUsers(ctx context.Context) ([]model.User, error) {
	q, args, err := qb.Select("id", "username", "email", "password", "has_issued").
		From(usersTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	var users []model.User
	if err := s.q.SelectContext(ctx, &users, q, args...); err != nil {
		return nil, wrapErr(err)
	}
	return users, nil
}

func (s *store) UpdateUser(ctx context.Context, user model.User) (model.User, error) {
	q, args, err := qb.Update(usersTableName).
		Set("username", user.Username).
		Set("email", user.Email).
		Set("password", user.Password).
		Where(sq.Eq{"id": user.ID}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var updated model.User
	if err := s.q.GetContext(ctx, &updated, q, args...); err != nil {
		return model.User{}, wrapErr(err)
	}
	return updated, nil
}

func (s *store) DeleteUser(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, usersTableName, id)
}

func (s *store) SetHasIssued(ctx context.Context, userID int64, hasIssued bool) error {
	q := `
update users
    set has_issued = $2
where id = $1`
	_, err := s.q.ExecContext(ctx, q, userID, hasIssued)
	return wrapErr(err)
}

func (s *store) CreateLibrarian(ctx context.Context, name, password string, active bool) (model.Librarian, error) {
	q, args, err := qb.Insert(librariansTableName).
		Columns("name", "password", "active").
		Values(name, password, active).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Librarian{}, err
	}
	var created model.Librarian
	if err := s.q.GetContext(ctx, &created, q, args...); err != nil {
		return model.Librarian{}, wrapErr(err)
	}
	return created, nil
}

func (s *store) GetLibrarian(ctx context.Context, id int64) (model.Librarian, error) {
	q, args, err := qb.Select("id", "name", "password", "active").
		From(librariansTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Librarian{}, err
	}
	var lib model.Librarian
	if err := s.q.GetContext(ctx, &lib, q, args...); err != nil {
		return model.Librarian{}, wrapErr(err)
	}
	return lib, nil
}

func (s *store) GetLibrarianByName(ctx context.Context, name string) (model.Librarian, error) {
	q, args, err := qb.Select("id", "name", "password", "active").
		From(librariansTableName).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return model.Librarian{}, err
	}
	var lib model.Librarian
	if err := s.q.GetContext(ctx, &lib, q, args...); err != nil {
		return model.Librarian{}, wrapErr(err)
	}
	return lib, nil
}

func (s *store) ListLibrarians(ctx context.Context) ([]model.Librarian, error) {
	q, args, err := qb.Select("id", "name", "password", "active").
		From(librariansTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	var libs []model.Librarian
	if err := s.q.SelectContext(ctx, &libs, q, args...); err != nil {
		return nil, wrapErr(err)
	}
	return libs, nil
}

func (s *store) SetLibrarianActive(ctx context.Context, id int64, active bool) error {
	q := `
update librarians
    set active = $2
where id = $1`
	_, err := s.q.ExecContext(ctx, q, id, active)
	return wrapErr(err)
}

// GetActiveLibrarian returns the single on-duty librarian, ErrNotFound
// when nobody has signed in.
func (s *store) GetActiveLibrarian(ctx context.Context) (model.Librarian, error) {
	q, args, err := qb.Select("id", "name", "password", "active").
		From(librariansTableName).
		Where(sq.Eq{"active": true}).
		OrderBy("id").
		Limit(1).
		ToSql()
	if err != nil {
		return model.Librarian{}, err
	}
	var lib model.Librarian
	if err := s.q.GetContext(ctx, &lib, q, args...); err != nil {
		return model.Librarian{}, wrapErr(err)
	}
	return lib, nil
}
