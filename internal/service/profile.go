package service

import (
	"context"
	"errors"

	"github.com/showcasify/showcasify/internal/domain"
	"github.com/showcasify/showcasify/internal/store"
	"github.com/showcasify/showcasify/pkg/idx"
)

// ProfileService manages the one-per-user professional info record.
type ProfileService struct {
	Store store.Store
}

type ProfileInput struct {
	FullName          string
	ProfessionalTitle *string
	Bio               *string
	ContactInfo       map[string]string
	SocialLinks       map[string]string
	Skills            []string
	ProfileImageURL   *string
}

func (s *ProfileService) Get(ctx context.Context, userID string) (domain.ProfessionalInfo, error) {
	return s.Store.ProfessionalInfo().GetByUserID(ctx, userID)
}

// Put creates the professional info record on first write and updates it on
// every write after. The record is keyed by user, so the caller addresses it
// without knowing its ID.
func (s *ProfileService) Put(
	ctx context.Context,
	owner domain.User,
	in ProfileInput,
) (domain.ProfessionalInfo, error) {
	existing, err := s.Store.ProfessionalInfo().GetByUserID(ctx, owner.ID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		p := domain.ProfessionalInfo{
			ID:                idx.New().String(),
			UserID:            owner.ID,
			FullName:          in.FullName,
			ProfessionalTitle: in.ProfessionalTitle,
			Bio:               in.Bio,
			ContactInfo:       in.ContactInfo,
			SocialLinks:       in.SocialLinks,
			Skills:            in.Skills,
			ProfileImageURL:   in.ProfileImageURL,
		}
		if err := s.Store.ProfessionalInfo().Create(ctx, p); err != nil {
			return domain.ProfessionalInfo{}, err
		}
	case err != nil:
		return domain.ProfessionalInfo{}, err
	default:
		existing.FullName = in.FullName
		existing.ProfessionalTitle = in.ProfessionalTitle
		existing.Bio = in.Bio
		existing.ContactInfo = in.ContactInfo
		existing.SocialLinks = in.SocialLinks
		existing.Skills = in.Skills
		existing.ProfileImageURL = in.ProfileImageURL

		if err := s.Store.ProfessionalInfo().Update(ctx, existing); err != nil {
			return domain.ProfessionalInfo{}, err
		}
	}
	return s.Store.ProfessionalInfo().GetByUserID(ctx, owner.ID)
}

func (s *ProfileService) Delete(ctx context.Context, principal domain.User, userID string) error {
	if !principal.CanManage(userID) {
		return ErrForbidden
	}
	if _, err := s.Store.ProfessionalInfo().GetByUserID(ctx, userID); err != nil {
		return err
	}
	return s.Store.ProfessionalInfo().DeleteByUserID(ctx, userID)
}
