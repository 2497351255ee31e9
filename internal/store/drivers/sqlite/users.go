package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/showcasify/showcasify/internal/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, email, name, password_hash, role, bio, avatar,
	reset_token, reset_token_expires, created_at, updated_at`

func (r *usersRepo) scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var (
		u           domain.User
		role        sql.NullString
		bio         sql.NullString
		avatar      sql.NullString
		resetToken  sql.NullString
		resetExpiry sql.NullTime
	)

	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &role, &bio, &avatar,
		&resetToken, &resetExpiry, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapErr(err)
	}

	u.Role = domain.Role(role.String).Normalize()
	u.Bio = mapNullStringPtr(bio)
	u.Avatar = mapNullStringPtr(avatar)
	u.ResetToken = mapNullStringPtr(resetToken)
	u.ResetTokenExpires = mapNullTimePtr(resetExpiry)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return r.scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return r.scanUser(row)
}

func (r *usersRepo) GetUserByResetToken(
	ctx context.Context,
	token string,
	now time.Time,
) (domain.User, error) {
	// Expired tokens are indistinguishable from unknown ones: both miss.
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE reset_token = ? AND reset_token_expires > ?`,
		token, now.UTC())
	return r.scanUser(row)
}

func (r *usersRepo) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := r.scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, mapErr(rows.Err())
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, email, name, password_hash, role, bio, avatar, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.Name, u.PasswordHash, string(u.Role.Normalize()),
		mapOptionalString(u.Bio), mapOptionalString(u.Avatar), now, now)
	return mapErr(err)
}

func (r *usersRepo) UpdateUser(ctx context.Context, u domain.User) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET email = ?, name = ?, role = ?, bio = ?, avatar = ?, updated_at = ?
		 WHERE id = ?`,
		u.Email, u.Name, string(u.Role.Normalize()),
		mapOptionalString(u.Bio), mapOptionalString(u.Avatar),
		time.Now().UTC(), u.ID)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID string, newHash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`,
		newHash, time.Now().UTC(), userID)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}

func (r *usersRepo) SetResetToken(
	ctx context.Context,
	userID, token string,
	expires time.Time,
) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET reset_token = ?, reset_token_expires = ?, updated_at = ?
		 WHERE id = ?`,
		token, expires.UTC(), time.Now().UTC(), userID)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}

func (r *usersRepo) ClearResetToken(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET reset_token = NULL, reset_token_expires = NULL, updated_at = ?
		 WHERE id = ?`,
		time.Now().UTC(), userID)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}
