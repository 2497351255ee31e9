package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/showcasify/showcasify/internal/domain"
)

type preferencesRepo struct {
	db dbtx
}

const preferenceColumns = `id, user_id, primary_color, secondary_color, font_style,
	layout_option, theme, language, created_at, updated_at`

func (r *preferencesRepo) scan(row interface{ Scan(...any) error }) (domain.Preference, error) {
	var (
		p              domain.Preference
		primaryColor   sql.NullString
		secondaryColor sql.NullString
		fontStyle      sql.NullString
		layoutOption   sql.NullString
	)

	err := row.Scan(&p.ID, &p.UserID, &primaryColor, &secondaryColor, &fontStyle,
		&layoutOption, &p.Theme, &p.Language, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Preference{}, mapErr(err)
	}

	p.PrimaryColor = mapNullStringPtr(primaryColor)
	p.SecondaryColor = mapNullStringPtr(secondaryColor)
	p.FontStyle = mapNullStringPtr(fontStyle)
	p.LayoutOption = mapNullStringPtr(layoutOption)
	return p, nil
}

func (r *preferencesRepo) GetByUserID(ctx context.Context, userID string) (domain.Preference, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+preferenceColumns+` FROM preferences WHERE user_id = ?`, userID)
	return r.scan(row)
}

func (r *preferencesRepo) Create(ctx context.Context, p domain.Preference) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO preferences
		 (id, user_id, primary_color, secondary_color, font_style, layout_option, theme, language, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.UserID, mapOptionalString(p.PrimaryColor), mapOptionalString(p.SecondaryColor),
		mapOptionalString(p.FontStyle), mapOptionalString(p.LayoutOption),
		p.Theme, p.Language, now, now)
	return mapErr(err)
}

func (r *preferencesRepo) Update(ctx context.Context, p domain.Preference) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE preferences
		 SET primary_color = ?, secondary_color = ?, font_style = ?, layout_option = ?,
		     theme = ?, language = ?, updated_at = ?
		 WHERE user_id = ?`,
		mapOptionalString(p.PrimaryColor), mapOptionalString(p.SecondaryColor),
		mapOptionalString(p.FontStyle), mapOptionalString(p.LayoutOption),
		p.Theme, p.Language, time.Now().UTC(), p.UserID)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}
