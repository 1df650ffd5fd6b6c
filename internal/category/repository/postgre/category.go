package postgres

import (
	"context"
	"database/sql"

	"github.com/friendsofgo/errors"
	"github.com/lib/pq"

	"ledgerly-api/internal/category/repository"
	"ledgerly-api/internal/model"
	postgresPkg "ledgerly-api/pkg/postgre"
)

const categoryColumns = "id, type, color, created_at"

func scanCategory(row interface{ Scan(...interface{}) error }) (model.Category, error) {
	var cat model.Category
	if err := row.Scan(&cat.ID, &cat.Type, &cat.Color, &cat.CreatedAt); err != nil {
		return model.Category{}, err
	}
	return cat, nil
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Category, error) {
	cat := model.Category{
		ID:        postgresPkg.NewUUID(),
		Type:      opts.Type,
		Color:     opts.Color,
		CreatedAt: r.clock(),
	}

	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (id, type, color, created_at) VALUES ($1, $2, $3, $4)`,
		cat.ID, cat.Type, cat.Color, cat.CreatedAt); err != nil {
		r.l.Errorf(ctx, "internal.category.repository.postgres.Create: %v", err)
		return model.Category{}, errors.Wrap(err, "insert category")
	}

	return cat, nil
}

func (r *implRepository) GetOne(ctx context.Context, sc model.Scope, opts repository.GetOneOptions) (model.Category, error) {
	if opts.Type == "" {
		return model.Category{}, repository.ErrNotFound
	}

	cat, err := scanCategory(r.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE type = $1`, opts.Type))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Category{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.category.repository.postgres.GetOne: %v", err)
		return model.Category{}, errors.Wrap(err, "select category")
	}

	return cat, nil
}

func (r *implRepository) List(ctx context.Context, sc model.Scope) ([]model.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+categoryColumns+` FROM categories ORDER BY created_at`)
	if err != nil {
		r.l.Errorf(ctx, "internal.category.repository.postgres.List: %v", err)
		return nil, errors.Wrap(err, "select categories")
	}
	defer rows.Close()

	var res []model.Category
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			r.l.Errorf(ctx, "internal.category.repository.postgres.List.Scan: %v", err)
			return nil, errors.Wrap(err, "scan category")
		}
		res = append(res, cat)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.category.repository.postgres.List.Rows: %v", err)
		return nil, errors.Wrap(err, "iterate categories")
	}

	return res, nil
}

func (r *implRepository) Count(ctx context.Context, sc model.Scope) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		r.l.Errorf(ctx, "internal.category.repository.postgres.Count: %v", err)
		return 0, errors.Wrap(err, "count categories")
	}

	return count, nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, oldType string, opts repository.UpdateOptions) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE categories SET type = $1, color = $2 WHERE type = $3`,
		opts.Type, opts.Color, oldType)
	if err != nil {
		r.l.Errorf(ctx, "internal.category.repository.postgres.Update: %v", err)
		return errors.Wrap(err, "update category")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.category.repository.postgres.Update.RowsAffected: %v", err)
		return errors.Wrap(err, "rows affected")
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, categoryType string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM categories WHERE type = $1`, categoryType)
	if err != nil {
		r.l.Errorf(ctx, "internal.category.repository.postgres.Delete: %v", err)
		return errors.Wrap(err, "delete category")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.category.repository.postgres.Delete.RowsAffected: %v", err)
		return errors.Wrap(err, "rows affected")
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *implRepository) GetOldest(ctx context.Context, sc model.Scope, excluding []string) (model.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories`
	args := []interface{}{}
	if len(excluding) > 0 {
		query += ` WHERE type <> ALL($1)`
		args = append(args, pq.Array(excluding))
	}
	query += ` ORDER BY created_at LIMIT 1`

	cat, err := scanCategory(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Category{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.category.repository.postgres.GetOldest: %v", err)
		return model.Category{}, errors.Wrap(err, "select oldest category")
	}

	return cat, nil
}
