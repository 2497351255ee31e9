package service

import (
	"context"
	"errors"

	"github.com/showcasify/showcasify/internal/domain"
	"github.com/showcasify/showcasify/internal/store"
	"github.com/showcasify/showcasify/pkg/idx"
)

const (
	DefaultTheme    = "light"
	DefaultLanguage = "en"
)

// PreferenceService manages the one-per-user presentation settings record.
// Reads never fail with not-found: missing records resolve to defaults, so the
// frontend always has something to render.
type PreferenceService struct {
	Store store.Store
}

type PreferenceInput struct {
	PrimaryColor   *string
	SecondaryColor *string
	FontStyle      *string
	LayoutOption   *string
	Theme          string
	Language       string
}

func (s *PreferenceService) Get(ctx context.Context, userID string) (domain.Preference, error) {
	p, err := s.Store.Preferences().GetByUserID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Preference{
			UserID:   userID,
			Theme:    DefaultTheme,
			Language: DefaultLanguage,
		}, nil
	}
	return p, err
}

// Put creates the preference record on first write and updates it afterwards.
func (s *PreferenceService) Put(
	ctx context.Context,
	owner domain.User,
	in PreferenceInput,
) (domain.Preference, error) {
	if in.Theme == "" {
		in.Theme = DefaultTheme
	}
	if in.Language == "" {
		in.Language = DefaultLanguage
	}

	existing, err := s.Store.Preferences().GetByUserID(ctx, owner.ID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		p := domain.Preference{
			ID:             idx.New().String(),
			UserID:         owner.ID,
			PrimaryColor:   in.PrimaryColor,
			SecondaryColor: in.SecondaryColor,
			FontStyle:      in.FontStyle,
			LayoutOption:   in.LayoutOption,
			Theme:          in.Theme,
			Language:       in.Language,
		}
		if err := s.Store.Preferences().Create(ctx, p); err != nil {
			return domain.Preference{}, err
		}
	case err != nil:
		return domain.Preference{}, err
	default:
		existing.PrimaryColor = in.PrimaryColor
		existing.SecondaryColor = in.SecondaryColor
		existing.FontStyle = in.FontStyle
		existing.LayoutOption = in.LayoutOption
		existing.Theme = in.Theme
		existing.Language = in.Language

		if err := s.Store.Preferences().Update(ctx, existing); err != nil {
			return domain.Preference{}, err
		}
	}
	return s.Store.Preferences().GetByUserID(ctx, owner.ID)
}
