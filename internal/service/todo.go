package service

import (
	"context"

	"github.com/showcasify/showcasify/internal/domain"
	"github.com/showcasify/showcasify/internal/store"
	"github.com/showcasify/showcasify/pkg/idx"
)

type TodoService struct {
	Store store.Store
}

type TodoInput struct {
	Title       string
	Description *string
	Completed   bool
}

func (s *TodoService) List(ctx context.Context, userID string) ([]domain.Todo, error) {
	return s.Store.Todos().ListByUserID(ctx, userID)
}

func (s *TodoService) Create(
	ctx context.Context,
	owner domain.User,
	in TodoInput,
) (domain.Todo, error) {
	t := domain.Todo{
		ID:          idx.New().String(),
		UserID:      owner.ID,
		Title:       in.Title,
		Description: in.Description,
		Completed:   in.Completed,
	}
	if err := s.Store.Todos().Create(ctx, t); err != nil {
		return domain.Todo{}, err
	}
	return s.Store.Todos().GetByID(ctx, t.ID)
}

func (s *TodoService) Update(
	ctx context.Context,
	principal domain.User,
	id string,
	in TodoInput,
) (domain.Todo, error) {
	t, err := s.Store.Todos().GetByID(ctx, id)
	if err != nil {
		return domain.Todo{}, err
	}
	if !principal.CanManage(t.UserID) {
		return domain.Todo{}, ErrForbidden
	}

	t.Title = in.Title
	t.Description = in.Description
	t.Completed = in.Completed

	if err := s.Store.Todos().Update(ctx, t); err != nil {
		return domain.Todo{}, err
	}
	return s.Store.Todos().GetByID(ctx, id)
}

func (s *TodoService) Delete(ctx context.Context, principal domain.User, id string) error {
	t, err := s.Store.Todos().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !principal.CanManage(t.UserID) {
		return ErrForbidden
	}
	return s.Store.Todos().Delete(ctx, id)
}
