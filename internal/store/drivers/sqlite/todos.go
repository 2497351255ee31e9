package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/showcasify/showcasify/internal/domain"
)

type todosRepo struct {
	db dbtx
}

const todoColumns = `id, user_id, title, description, completed, created_at, updated_at`

func (r *todosRepo) scan(row interface{ Scan(...any) error }) (domain.Todo, error) {
	var (
		t           domain.Todo
		description sql.NullString
	)

	err := row.Scan(&t.ID, &t.UserID, &t.Title, &description, &t.Completed,
		&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.Todo{}, mapErr(err)
	}

	t.Description = mapNullStringPtr(description)
	return t, nil
}

func (r *todosRepo) GetByID(ctx context.Context, id string) (domain.Todo, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE id = ?`, id)
	return r.scan(row)
}

func (r *todosRepo) ListByUserID(ctx context.Context, userID string) ([]domain.Todo, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var out []domain.Todo
	for rows.Next() {
		t, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, mapErr(rows.Err())
}

func (r *todosRepo) Create(ctx context.Context, t domain.Todo) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO todos (id, user_id, title, description, completed, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.Title, mapOptionalString(t.Description), t.Completed, now, now)
	return mapErr(err)
}

func (r *todosRepo) Update(ctx context.Context, t domain.Todo) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE todos SET title = ?, description = ?, completed = ?, updated_at = ?
		 WHERE id = ?`,
		t.Title, mapOptionalString(t.Description), t.Completed, time.Now().UTC(), t.ID)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}

func (r *todosRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}
