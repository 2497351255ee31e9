package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/showcasify/showcasify/internal/domain"
)

type experiencesRepo struct {
	db dbtx
}

const experienceColumns = `id, user_id, title, company, start_date, end_date, description, created_at, updated_at`

func (r *experiencesRepo) scan(row interface{ Scan(...any) error }) (domain.Experience, error) {
	var (
		e           domain.Experience
		endDate     sql.NullTime
		description sql.NullString
	)

	err := row.Scan(&e.ID, &e.UserID, &e.Title, &e.Company, &e.StartDate,
		&endDate, &description, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return domain.Experience{}, mapErr(err)
	}

	e.EndDate = mapNullTimePtr(endDate)
	e.Description = mapNullStringPtr(description)
	return e, nil
}

func (r *experiencesRepo) GetByID(ctx context.Context, id string) (domain.Experience, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+experienceColumns+` FROM experiences WHERE id = ?`, id)
	return r.scan(row)
}

func (r *experiencesRepo) ListByUserID(ctx context.Context, userID string) ([]domain.Experience, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+experienceColumns+` FROM experiences WHERE user_id = ? ORDER BY start_date DESC`,
		userID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var out []domain.Experience
	for rows.Next() {
		e, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, mapErr(rows.Err())
}

func (r *experiencesRepo) Create(ctx context.Context, e domain.Experience) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO experiences (id, user_id, title, company, start_date, end_date, description, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, e.Title, e.Company, e.StartDate.UTC(),
		mapOptionalTime(e.EndDate), mapOptionalString(e.Description), now, now)
	return mapErr(err)
}

func (r *experiencesRepo) Update(ctx context.Context, e domain.Experience) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE experiences SET title = ?, company = ?, start_date = ?, end_date = ?, description = ?, updated_at = ?
		 WHERE id = ?`,
		e.Title, e.Company, e.StartDate.UTC(), mapOptionalTime(e.EndDate),
		mapOptionalString(e.Description), time.Now().UTC(), e.ID)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}

func (r *experiencesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM experiences WHERE id = ?`, id)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}
