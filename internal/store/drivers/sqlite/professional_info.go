package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/showcasify/showcasify/internal/domain"
)

type professionalInfoRepo struct {
	db dbtx
}

const professionalInfoColumns = `id, user_id, full_name, professional_title, bio,
	contact_info, social_links, skills, profile_image_url, created_at, updated_at`

func (r *professionalInfoRepo) scan(row interface{ Scan(...any) error }) (domain.ProfessionalInfo, error) {
	var (
		p           domain.ProfessionalInfo
		title       sql.NullString
		bio         sql.NullString
		contactInfo sql.NullString
		socialLinks sql.NullString
		skills      sql.NullString
		imageURL    sql.NullString
	)

	err := row.Scan(
		&p.ID, &p.UserID, &p.FullName, &title, &bio,
		&contactInfo, &socialLinks, &skills, &imageURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.ProfessionalInfo{}, mapErr(err)
	}

	p.ProfessionalTitle = mapNullStringPtr(title)
	p.Bio = mapNullStringPtr(bio)
	p.ProfileImageURL = mapNullStringPtr(imageURL)

	if p.ContactInfo, err = decodeJSON[map[string]string](contactInfo); err != nil {
		return domain.ProfessionalInfo{}, err
	}
	if p.SocialLinks, err = decodeJSON[map[string]string](socialLinks); err != nil {
		return domain.ProfessionalInfo{}, err
	}
	if p.Skills, err = decodeJSON[[]string](skills); err != nil {
		return domain.ProfessionalInfo{}, err
	}
	return p, nil
}

func (r *professionalInfoRepo) GetByUserID(
	ctx context.Context,
	userID string,
) (domain.ProfessionalInfo, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+professionalInfoColumns+` FROM professional_info WHERE user_id = ?`, userID)
	return r.scan(row)
}

func (r *professionalInfoRepo) Create(ctx context.Context, p domain.ProfessionalInfo) error {
	contactInfo, err := encodeJSON(p.ContactInfo)
	if err != nil {
		return err
	}
	socialLinks, err := encodeJSON(p.SocialLinks)
	if err != nil {
		return err
	}
	skills, err := encodeJSON(p.Skills)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO professional_info
		 (id, user_id, full_name, professional_title, bio, contact_info, social_links, skills, profile_image_url, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.UserID, p.FullName, mapOptionalString(p.ProfessionalTitle),
		mapOptionalString(p.Bio), contactInfo, socialLinks, skills,
		mapOptionalString(p.ProfileImageURL), now, now)
	return mapErr(err)
}

func (r *professionalInfoRepo) Update(ctx context.Context, p domain.ProfessionalInfo) error {
	contactInfo, err := encodeJSON(p.ContactInfo)
	if err != nil {
		return err
	}
	socialLinks, err := encodeJSON(p.SocialLinks)
	if err != nil {
		return err
	}
	skills, err := encodeJSON(p.Skills)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE professional_info
		 SET full_name = ?, professional_title = ?, bio = ?, contact_info = ?,
		     social_links = ?, skills = ?, profile_image_url = ?, updated_at = ?
		 WHERE user_id = ?`,
		p.FullName, mapOptionalString(p.ProfessionalTitle), mapOptionalString(p.Bio),
		contactInfo, socialLinks, skills, mapOptionalString(p.ProfileImageURL),
		time.Now().UTC(), p.UserID)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}

func (r *professionalInfoRepo) DeleteByUserID(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM professional_info WHERE user_id = ?`, userID)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}
