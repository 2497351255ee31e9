package service

import (
	"context"

	"github.com/showcasify/showcasify/internal/domain"
	"github.com/showcasify/showcasify/internal/store"
	"github.com/showcasify/showcasify/pkg/idx"
)

type ProjectService struct {
	Store store.Store
}

type ProjectInput struct {
	Title       string
	Description *string
	ProjectURL  *string
	GithubURL   *string
}

func (s *ProjectService) List(ctx context.Context, userID string) ([]domain.Project, error) {
	return s.Store.Projects().ListByUserID(ctx, userID)
}

func (s *ProjectService) Create(
	ctx context.Context,
	owner domain.User,
	in ProjectInput,
) (domain.Project, error) {
	p := domain.Project{
		ID:          idx.New().String(),
		UserID:      owner.ID,
		Title:       in.Title,
		Description: in.Description,
		ProjectURL:  in.ProjectURL,
		GithubURL:   in.GithubURL,
	}
	if err := s.Store.Projects().Create(ctx, p); err != nil {
		return domain.Project{}, err
	}
	return s.Store.Projects().GetByID(ctx, p.ID)
}

func (s *ProjectService) Update(
	ctx context.Context,
	principal domain.User,
	id string,
	in ProjectInput,
) (domain.Project, error) {
	p, err := s.Store.Projects().GetByID(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	if !principal.CanManage(p.UserID) {
		return domain.Project{}, ErrForbidden
	}

	p.Title = in.Title
	p.Description = in.Description
	p.ProjectURL = in.ProjectURL
	p.GithubURL = in.GithubURL

	if err := s.Store.Projects().Update(ctx, p); err != nil {
		return domain.Project{}, err
	}
	return s.Store.Projects().GetByID(ctx, id)
}

func (s *ProjectService) Delete(ctx context.Context, principal domain.User, id string) error {
	p, err := s.Store.Projects().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !principal.CanManage(p.UserID) {
		return ErrForbidden
	}
	return s.Store.Projects().Delete(ctx, id)
}
