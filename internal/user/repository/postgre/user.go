package postgres

import (
	"context"
	"database/sql"

	"github.com/aarondl/null/v8"
	"github.com/friendsofgo/errors"
	"github.com/lib/pq"

	"ledgerly-api/internal/model"
	"ledgerly-api/internal/user/repository"
	postgresPkg "ledgerly-api/pkg/postgre"
)

const userColumns = `id, username, email, password, role, refresh_token, created_at`

func scanUser(row interface{ Scan(...interface{}) error }) (model.User, error) {
	var (
		usr          model.User
		refreshToken null.String
	)

	if err := row.Scan(&usr.ID, &usr.Username, &usr.Email, &usr.Password, &usr.Role, &refreshToken, &usr.CreatedAt); err != nil {
		return model.User{}, err
	}

	if refreshToken.Valid {
		usr.RefreshToken = &refreshToken.String
	}

	return usr, nil
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.User, error) {
	usr := opts.User
	if usr.ID == "" {
		usr.ID = postgresPkg.NewUUID()
	}
	usr.CreatedAt = r.clock()

	const query = `
		INSERT INTO users (id, username, email, password, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := r.db.ExecContext(ctx, query,
		usr.ID, usr.Username, usr.Email, usr.Password, usr.Role, usr.CreatedAt); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Create: %v", err)
		return model.User{}, errors.Wrap(err, "insert user")
	}

	return usr, nil
}

func (r *implRepository) GetOne(ctx context.Context, sc model.Scope, opts repository.GetOneOptions) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE `

	var arg interface{}
	switch {
	case opts.ID != "":
		if err := postgresPkg.IsUUID(opts.ID); err != nil {
			r.l.Errorf(ctx, "internal.user.repository.postgres.GetOne.IsUUID: %v", err)
			return model.User{}, err
		}
		query += `id = $1`
		arg = opts.ID
	case opts.Username != "":
		query += `username = $1`
		arg = opts.Username
	case opts.Email != "":
		query += `email = $1`
		arg = opts.Email
	case opts.RefreshToken != "":
		query += `refresh_token = $1`
		arg = opts.RefreshToken
	default:
		return model.User{}, repository.ErrNotFound
	}

	usr, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgres.GetOne: %v", err)
		return model.User{}, errors.Wrap(err, "select user")
	}

	return usr, nil
}

func (r *implRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users`
	args := []interface{}{}

	if len(opts.Filter.Emails) > 0 {
		query += ` WHERE email = ANY($1)`
		args = append(args, pq.Array(opts.Filter.Emails))
	}

	query += ` ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.List: %v", err)
		return nil, errors.Wrap(err, "select users")
	}
	defer rows.Close()

	var res []model.User
	for rows.Next() {
		usr, err := scanUser(rows)
		if err != nil {
			r.l.Errorf(ctx, "internal.user.repository.postgres.List.Scan: %v", err)
			return nil, errors.Wrap(err, "scan user")
		}
		res = append(res, usr)
	}

	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.List.Rows: %v", err)
		return nil, errors.Wrap(err, "iterate users")
	}

	return res, nil
}

func (r *implRepository) UpdateRefreshToken(ctx context.Context, sc model.Scope, userID string, refreshToken *string) error {
	if err := postgresPkg.IsUUID(userID); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.UpdateRefreshToken.IsUUID: %v", err)
		return err
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET refresh_token = $1 WHERE id = $2`,
		null.StringFromPtr(refreshToken), userID)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.UpdateRefreshToken: %v", err)
		return errors.Wrap(err, "update refresh token")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Delete.IsUUID: %v", err)
		return err
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Delete: %v", err)
		return errors.Wrap(err, "delete user")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}
