package service

import (
	"context"

	"github.com/showcasify/showcasify/internal/domain"
	"github.com/showcasify/showcasify/internal/store"
	"github.com/showcasify/showcasify/pkg/idx"
)

type EducationService struct {
	Store store.Store
}

type EducationInput struct {
	School    string
	Degree    *string
	StartYear *int
	EndYear   *int
}

func (s *EducationService) List(ctx context.Context, userID string) ([]domain.Education, error) {
	return s.Store.Educations().ListByUserID(ctx, userID)
}

func (s *EducationService) Create(
	ctx context.Context,
	owner domain.User,
	in EducationInput,
) (domain.Education, error) {
	e := domain.Education{
		ID:        idx.New().String(),
		UserID:    owner.ID,
		School:    in.School,
		Degree:    in.Degree,
		StartYear: in.StartYear,
		EndYear:   in.EndYear,
	}
	if err := s.Store.Educations().Create(ctx, e); err != nil {
		return domain.Education{}, err
	}
	return s.Store.Educations().GetByID(ctx, e.ID)
}

func (s *EducationService) Update(
	ctx context.Context,
	principal domain.User,
	id string,
	in EducationInput,
) (domain.Education, error) {
	e, err := s.Store.Educations().GetByID(ctx, id)
	if err != nil {
		return domain.Education{}, err
	}
	if !principal.CanManage(e.UserID) {
		return domain.Education{}, ErrForbidden
	}

	e.School = in.School
	e.Degree = in.Degree
	e.StartYear = in.StartYear
	e.EndYear = in.EndYear

	if err := s.Store.Educations().Update(ctx, e); err != nil {
		return domain.Education{}, err
	}
	return s.Store.Educations().GetByID(ctx, id)
}

func (s *EducationService) Delete(ctx context.Context, principal domain.User, id string) error {
	e, err := s.Store.Educations().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !principal.CanManage(e.UserID) {
		return ErrForbidden
	}
	return s.Store.Educations().Delete(ctx, id)
}
