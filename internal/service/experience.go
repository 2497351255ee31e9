package service

import (
	"context"
	"time"

	"github.com/showcasify/showcasify/internal/domain"
	"github.com/showcasify/showcasify/internal/store"
	"github.com/showcasify/showcasify/pkg/idx"
)

type ExperienceService struct {
	Store store.Store
}

type ExperienceInput struct {
	Title       string
	Company     string
	StartDate   time.Time
	EndDate     *time.Time
	Description *string
}

func (s *ExperienceService) List(ctx context.Context, userID string) ([]domain.Experience, error) {
	return s.Store.Experiences().ListByUserID(ctx, userID)
}

func (s *ExperienceService) Create(
	ctx context.Context,
	owner domain.User,
	in ExperienceInput,
) (domain.Experience, error) {
	e := domain.Experience{
		ID:          idx.New().String(),
		UserID:      owner.ID,
		Title:       in.Title,
		Company:     in.Company,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Description: in.Description,
	}
	if err := s.Store.Experiences().Create(ctx, e); err != nil {
		return domain.Experience{}, err
	}
	return s.Store.Experiences().GetByID(ctx, e.ID)
}

func (s *ExperienceService) Update(
	ctx context.Context,
	principal domain.User,
	id string,
	in ExperienceInput,
) (domain.Experience, error) {
	e, err := s.Store.Experiences().GetByID(ctx, id)
	if err != nil {
		return domain.Experience{}, err
	}
	if !principal.CanManage(e.UserID) {
		return domain.Experience{}, ErrForbidden
	}

	e.Title = in.Title
	e.Company = in.Company
	e.StartDate = in.StartDate
	e.EndDate = in.EndDate
	e.Description = in.Description

	if err := s.Store.Experiences().Update(ctx, e); err != nil {
		return domain.Experience{}, err
	}
	return s.Store.Experiences().GetByID(ctx, id)
}

func (s *ExperienceService) Delete(ctx context.Context, principal domain.User, id string) error {
	e, err := s.Store.Experiences().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !principal.CanManage(e.UserID) {
		return ErrForbidden
	}
	return s.Store.Experiences().Delete(ctx, id)
}
