package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/showcasify/showcasify/internal/domain"
)

type projectsRepo struct {
	db dbtx
}

const projectColumns = `id, user_id, title, description, project_url, github_url, created_at, updated_at`

func (r *projectsRepo) scan(row interface{ Scan(...any) error }) (domain.Project, error) {
	var (
		p           domain.Project
		description sql.NullString
		projectURL  sql.NullString
		githubURL   sql.NullString
	)

	err := row.Scan(&p.ID, &p.UserID, &p.Title, &description, &projectURL, &githubURL,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Project{}, mapErr(err)
	}

	p.Description = mapNullStringPtr(description)
	p.ProjectURL = mapNullStringPtr(projectURL)
	p.GithubURL = mapNullStringPtr(githubURL)
	return p, nil
}

func (r *projectsRepo) GetByID(ctx context.Context, id string) (domain.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	return r.scan(row)
}

func (r *projectsRepo) ListByUserID(ctx context.Context, userID string) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var out []domain.Project
	for rows.Next() {
		p, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, mapErr(rows.Err())
}

func (r *projectsRepo) Create(ctx context.Context, p domain.Project) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (id, user_id, title, description, project_url, github_url, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.UserID, p.Title, mapOptionalString(p.Description),
		mapOptionalString(p.ProjectURL), mapOptionalString(p.GithubURL), now, now)
	return mapErr(err)
}

func (r *projectsRepo) Update(ctx context.Context, p domain.Project) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE projects SET title = ?, description = ?, project_url = ?, github_url = ?, updated_at = ?
		 WHERE id = ?`,
		p.Title, mapOptionalString(p.Description), mapOptionalString(p.ProjectURL),
		mapOptionalString(p.GithubURL), time.Now().UTC(), p.ID)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}

func (r *projectsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}
