package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/showcasify/showcasify/internal/domain"
)

type educationsRepo struct {
	db dbtx
}

const educationColumns = `id, user_id, school, degree, start_year, end_year, created_at, updated_at`

func (r *educationsRepo) scan(row interface{ Scan(...any) error }) (domain.Education, error) {
	var (
		e         domain.Education
		degree    sql.NullString
		startYear sql.NullInt64
		endYear   sql.NullInt64
	)

	err := row.Scan(&e.ID, &e.UserID, &e.School, &degree, &startYear, &endYear,
		&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return domain.Education{}, mapErr(err)
	}

	e.Degree = mapNullStringPtr(degree)
	e.StartYear = mapNullIntPtr(startYear)
	e.EndYear = mapNullIntPtr(endYear)
	return e, nil
}

func (r *educationsRepo) GetByID(ctx context.Context, id string) (domain.Education, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+educationColumns+` FROM educations WHERE id = ?`, id)
	return r.scan(row)
}

func (r *educationsRepo) ListByUserID(ctx context.Context, userID string) ([]domain.Education, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+educationColumns+` FROM educations WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var out []domain.Education
	for rows.Next() {
		e, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, mapErr(rows.Err())
}

func (r *educationsRepo) Create(ctx context.Context, e domain.Education) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO educations (id, user_id, school, degree, start_year, end_year, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, e.School, mapOptionalString(e.Degree),
		mapOptionalInt(e.StartYear), mapOptionalInt(e.EndYear), now, now)
	return mapErr(err)
}

func (r *educationsRepo) Update(ctx context.Context, e domain.Education) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE educations SET school = ?, degree = ?, start_year = ?, end_year = ?, updated_at = ?
		 WHERE id = ?`,
		e.School, mapOptionalString(e.Degree), mapOptionalInt(e.StartYear),
		mapOptionalInt(e.EndYear), time.Now().UTC(), e.ID)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}

func (r *educationsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM educations WHERE id = ?`, id)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}
