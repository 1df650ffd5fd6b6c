package postgres

import (
	"context"
	"database/sql"

	"github.com/friendsofgo/errors"
	"github.com/lib/pq"

	"ledgerly-api/internal/group/repository"
	"ledgerly-api/internal/model"
	postgresPkg "ledgerly-api/pkg/postgre"
)

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Group, error) {
	grp := model.Group{
		ID:        postgresPkg.NewUUID(),
		Name:      opts.Name,
		Members:   opts.Members,
		CreatedAt: r.clock(),
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "internal.group.repository.postgres.Create.BeginTx: %v", err)
		return model.Group{}, errors.Wrap(err, "begin tx")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO groups (id, name, created_at) VALUES ($1, $2, $3)`,
		grp.ID, grp.Name, grp.CreatedAt); err != nil {
		r.l.Errorf(ctx, "internal.group.repository.postgres.Create.InsertGroup: %v", err)
		return model.Group{}, errors.Wrap(err, "insert group")
	}

	for _, m := range grp.Members {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO group_members (group_id, email, user_id) VALUES ($1, $2, $3)`,
			grp.ID, m.Email, m.UserID); err != nil {
			r.l.Errorf(ctx, "internal.group.repository.postgres.Create.InsertMember: %v", err)
			return model.Group{}, errors.Wrap(err, "insert member")
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "internal.group.repository.postgres.Create.Commit: %v", err)
		return model.Group{}, errors.Wrap(err, "commit")
	}

	return grp, nil
}

func (r *implRepository) GetOne(ctx context.Context, sc model.Scope, opts repository.GetOneOptions) (model.Group, error) {
	query := `SELECT id, name, created_at FROM groups WHERE `

	var arg interface{}
	switch {
	case opts.ID != "":
		if err := postgresPkg.IsUUID(opts.ID); err != nil {
			r.l.Errorf(ctx, "internal.group.repository.postgres.GetOne.IsUUID: %v", err)
			return model.Group{}, err
		}
		query += `id = $1`
		arg = opts.ID
	case opts.Name != "":
		query += `name = $1`
		arg = opts.Name
	case opts.MemberEmail != "":
		query += `id = (SELECT group_id FROM group_members WHERE email = $1)`
		arg = opts.MemberEmail
	default:
		return model.Group{}, repository.ErrNotFound
	}

	var grp model.Group
	if err := r.db.QueryRowContext(ctx, query, arg).Scan(&grp.ID, &grp.Name, &grp.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return model.Group{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.group.repository.postgres.GetOne: %v", err)
		return model.Group{}, errors.Wrap(err, "select group")
	}

	members, err := r.members(ctx, []string{grp.ID})
	if err != nil {
		return model.Group{}, err
	}
	grp.Members = members[grp.ID]

	return grp, nil
}

func (r *implRepository) List(ctx context.Context, sc model.Scope) ([]model.Group, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_at FROM groups ORDER BY created_at`)
	if err != nil {
		r.l.Errorf(ctx, "internal.group.repository.postgres.List: %v", err)
		return nil, errors.Wrap(err, "select groups")
	}
	defer rows.Close()

	var (
		res []model.Group
		ids []string
	)
	for rows.Next() {
		var grp model.Group
		if err := rows.Scan(&grp.ID, &grp.Name, &grp.CreatedAt); err != nil {
			r.l.Errorf(ctx, "internal.group.repository.postgres.List.Scan: %v", err)
			return nil, errors.Wrap(err, "scan group")
		}
		res = append(res, grp)
		ids = append(ids, grp.ID)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.group.repository.postgres.List.Rows: %v", err)
		return nil, errors.Wrap(err, "iterate groups")
	}

	if len(ids) == 0 {
		return res, nil
	}

	members, err := r.members(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range res {
		res[i].Members = members[res[i].ID]
	}

	return res, nil
}

func (r *implRepository) members(ctx context.Context, groupIDs []string) (map[string][]model.Member, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT group_id, email, user_id FROM group_members WHERE group_id = ANY($1) ORDER BY added_at`,
		pq.Array(groupIDs))
	if err != nil {
		r.l.Errorf(ctx, "internal.group.repository.postgres.members: %v", err)
		return nil, errors.Wrap(err, "select members")
	}
	defer rows.Close()

	res := make(map[string][]model.Member)
	for rows.Next() {
		var (
			groupID string
			m       model.Member
		)
		if err := rows.Scan(&groupID, &m.Email, &m.UserID); err != nil {
			r.l.Errorf(ctx, "internal.group.repository.postgres.members.Scan: %v", err)
			return nil, errors.Wrap(err, "scan member")
		}
		res[groupID] = append(res[groupID], m)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.group.repository.postgres.members.Rows: %v", err)
		return nil, errors.Wrap(err, "iterate members")
	}

	return res, nil
}

func (r *implRepository) AddMembers(ctx context.Context, sc model.Scope, groupID string, members []model.Member) error {
	if err := postgresPkg.IsUUID(groupID); err != nil {
		r.l.Errorf(ctx, "internal.group.repository.postgres.AddMembers.IsUUID: %v", err)
		return err
	}

	for _, m := range members {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO group_members (group_id, email, user_id) VALUES ($1, $2, $3)`,
			groupID, m.Email, m.UserID); err != nil {
			r.l.Errorf(ctx, "internal.group.repository.postgres.AddMembers: %v", err)
			return errors.Wrap(err, "insert member")
		}
	}

	return nil
}

func (r *implRepository) RemoveMembers(ctx context.Context, sc model.Scope, groupID string, emails []string) error {
	if err := postgresPkg.IsUUID(groupID); err != nil {
		r.l.Errorf(ctx, "internal.group.repository.postgres.RemoveMembers.IsUUID: %v", err)
		return err
	}

	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM group_members WHERE group_id = $1 AND email = ANY($2)`,
		groupID, pq.Array(emails)); err != nil {
		r.l.Errorf(ctx, "internal.group.repository.postgres.RemoveMembers: %v", err)
		return errors.Wrap(err, "delete members")
	}

	return nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.group.repository.postgres.Delete.IsUUID: %v", err)
		return err
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "internal.group.repository.postgres.Delete: %v", err)
		return errors.Wrap(err, "delete group")
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

func (r *implRepository) PruneMember(ctx context.Context, sc model.Scope, email string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM group_members WHERE email = $1`, email)
	if err != nil {
		r.l.Errorf(ctx, "internal.group.repository.postgres.PruneMember: %v", err)
		return false, errors.Wrap(err, "delete membership")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "rows affected")
	}

	// Drop groups that lost their last member.
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM groups WHERE NOT EXISTS (SELECT 1 FROM group_members WHERE group_id = groups.id)`); err != nil {
		r.l.Errorf(ctx, "internal.group.repository.postgres.PruneMember.DeleteEmpty: %v", err)
		return false, errors.Wrap(err, "delete empty groups")
	}

	return rows > 0, nil
}
