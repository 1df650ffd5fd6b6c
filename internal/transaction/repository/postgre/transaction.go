package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aarondl/null/v8"
	"github.com/friendsofgo/errors"
	"github.com/lib/pq"

	"ledgerly-api/internal/model"
	"ledgerly-api/internal/transaction/repository"
	postgresPkg "ledgerly-api/pkg/postgre"
)

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Transaction, error) {
	tr := opts.Transaction
	tr.ID = postgresPkg.NewUUID()
	tr.Date = r.clock()

	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (id, username, type, amount, date) VALUES ($1, $2, $3, $4, $5)`,
		tr.ID, tr.Username, tr.Type, tr.Amount, tr.Date); err != nil {
		r.l.Errorf(ctx, "internal.transaction.repository.postgres.Create: %v", err)
		return model.Transaction{}, errors.Wrap(err, "insert transaction")
	}

	return tr, nil
}

func (r *implRepository) GetOne(ctx context.Context, sc model.Scope, opts repository.GetOneOptions) (model.Transaction, error) {
	if opts.ID == "" {
		return model.Transaction{}, repository.ErrNotFound
	}
	if err := postgresPkg.IsUUID(opts.ID); err != nil {
		return model.Transaction{}, repository.ErrNotFound
	}

	query := `SELECT id, username, type, amount, date, receipt_key FROM transactions WHERE id = $1`
	args := []interface{}{opts.ID}
	if opts.Username != "" {
		query += ` AND username = $2`
		args = append(args, opts.Username)
	}

	var (
		tr         model.Transaction
		receiptKey null.String
	)
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&tr.ID, &tr.Username, &tr.Type, &tr.Amount, &tr.Date, &receiptKey); err != nil {
		if err == sql.ErrNoRows {
			return model.Transaction{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.transaction.repository.postgres.GetOne: %v", err)
		return model.Transaction{}, errors.Wrap(err, "select transaction")
	}
	tr.ReceiptKey = receiptKey.Ptr()

	return tr, nil
}

func (r *implRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.Transaction, error) {
	query := `SELECT t.id, t.username, t.type, t.amount, t.date, c.color
		FROM transactions t JOIN categories c ON t.type = c.type`

	var (
		conds []string
		args  []interface{}
	)
	cond := func(clause string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(clause, len(args)))
	}

	f := opts.Filter
	if f.Username != "" {
		cond("t.username = $%d", f.Username)
	}
	if len(f.Usernames) > 0 {
		cond("t.username = ANY($%d)", pq.Array(f.Usernames))
	}
	if f.Type != "" {
		cond("t.type = $%d", f.Type)
	}
	if f.DateFrom != nil {
		cond("t.date >= $%d", *f.DateFrom)
	}
	if f.DateTo != nil {
		cond("t.date <= $%d", *f.DateTo)
	}
	if f.MinAmount != nil {
		cond("t.amount >= $%d", *f.MinAmount)
	}
	if f.MaxAmount != nil {
		cond("t.amount <= $%d", *f.MaxAmount)
	}

	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY t.date"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.transaction.repository.postgres.List: %v", err)
		return nil, errors.Wrap(err, "select transactions")
	}
	defer rows.Close()

	var res []model.Transaction
	for rows.Next() {
		var tr model.Transaction
		if err := rows.Scan(&tr.ID, &tr.Username, &tr.Type, &tr.Amount, &tr.Date, &tr.Color); err != nil {
			r.l.Errorf(ctx, "internal.transaction.repository.postgres.List.Scan: %v", err)
			return nil, errors.Wrap(err, "scan transaction")
		}
		res = append(res, tr)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.transaction.repository.postgres.List.Rows: %v", err)
		return nil, errors.Wrap(err, "iterate transactions")
	}

	return res, nil
}

func (r *implRepository) CountByIDs(ctx context.Context, sc model.Scope, ids []string) (int64, error) {
	if err := postgresPkg.ValidateUUIDs(ids); err != nil {
		return 0, nil
	}

	var count int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transactions WHERE id = ANY($1)`, pq.Array(ids)).Scan(&count); err != nil {
		r.l.Errorf(ctx, "internal.transaction.repository.postgres.CountByIDs: %v", err)
		return 0, errors.Wrap(err, "count transactions")
	}

	return count, nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := postgresPkg.IsUUID(id); err != nil {
		return repository.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "internal.transaction.repository.postgres.Delete: %v", err)
		return errors.Wrap(err, "delete transaction")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.transaction.repository.postgres.Delete.RowsAffected: %v", err)
		return errors.Wrap(err, "rows affected")
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *implRepository) DeleteMany(ctx context.Context, sc model.Scope, ids []string) error {
	if err := postgresPkg.ValidateUUIDs(ids); err != nil {
		return repository.ErrNotFound
	}

	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM transactions WHERE id = ANY($1)`, pq.Array(ids)); err != nil {
		r.l.Errorf(ctx, "internal.transaction.repository.postgres.DeleteMany: %v", err)
		return errors.Wrap(err, "delete transactions")
	}

	return nil
}

func (r *implRepository) DeleteByUsername(ctx context.Context, sc model.Scope, username string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM transactions WHERE username = $1`, username)
	if err != nil {
		r.l.Errorf(ctx, "internal.transaction.repository.postgres.DeleteByUsername: %v", err)
		return 0, errors.Wrap(err, "delete transactions")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.transaction.repository.postgres.DeleteByUsername.RowsAffected: %v", err)
		return 0, errors.Wrap(err, "rows affected")
	}

	return rows, nil
}

func (r *implRepository) Retype(ctx context.Context, sc model.Scope, oldType, newType string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE transactions SET type = $1 WHERE type = $2`, newType, oldType)
	if err != nil {
		r.l.Errorf(ctx, "internal.transaction.repository.postgres.Retype: %v", err)
		return 0, errors.Wrap(err, "retype transactions")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.transaction.repository.postgres.Retype.RowsAffected: %v", err)
		return 0, errors.Wrap(err, "rows affected")
	}

	return rows, nil
}

func (r *implRepository) UpdateReceiptKey(ctx context.Context, sc model.Scope, id string, key *string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE transactions SET receipt_key = $1 WHERE id = $2`,
		null.StringFromPtr(key), id)
	if err != nil {
		r.l.Errorf(ctx, "internal.transaction.repository.postgres.UpdateReceiptKey: %v", err)
		return errors.Wrap(err, "update receipt key")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.transaction.repository.postgres.UpdateReceiptKey.RowsAffected: %v", err)
		return errors.Wrap(err, "rows affected")
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}
