package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/showcasify/showcasify/internal/domain"
	"github.com/showcasify/showcasify/internal/service"
)

func TestProjectService_OwnershipGuard(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	alice := registerTestUser(t, st, "alice@example.com", "alice password", domain.RoleUser)
	bob := registerTestUser(t, st, "bob@example.com", "bob password", domain.RoleUser)
	admin := registerTestUser(t, st, "admin@example.com", "admin password", domain.RoleAdmin)

	projects := &service.ProjectService{Store: st}

	created, err := projects.Create(ctx, alice, service.ProjectInput{Title: "Showcase"})
	require.NoError(t, err)
	require.Equal(t, alice.ID, created.UserID)

	t.Run("owner can update", func(t *testing.T) {
		updated, err := projects.Update(ctx, alice, created.ID, service.ProjectInput{Title: "Showcase v2"})
		require.NoError(t, err)
		require.Equal(t, "Showcase v2", updated.Title)
	})

	t.Run("another user cannot update", func(t *testing.T) {
		_, err := projects.Update(ctx, bob, created.ID, service.ProjectInput{Title: "hijacked"})
		require.ErrorIs(t, err, service.ErrForbidden)
	})

	t.Run("another user cannot delete", func(t *testing.T) {
		err := projects.Delete(ctx, bob, created.ID)
		require.ErrorIs(t, err, service.ErrForbidden)
	})

	t.Run("admin can delete", func(t *testing.T) {
		require.NoError(t, projects.Delete(ctx, admin, created.ID))
	})
}

func TestEducationService_CRUD(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	alice := registerTestUser(t, st, "alice@example.com", "alice password", domain.RoleUser)

	educations := &service.EducationService{Store: st}

	degree := "BSc Computer Science"
	start, end := 2018, 2021
	created, err := educations.Create(ctx, alice, service.EducationInput{
		School:    "University of Somewhere",
		Degree:    &degree,
		StartYear: &start,
		EndYear:   &end,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	list, err := educations.List(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "University of Somewhere", list[0].School)

	require.NoError(t, educations.Delete(ctx, alice, created.ID))

	list, err = educations.List(ctx, alice.ID)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestExperienceService_Update(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	alice := registerTestUser(t, st, "alice@example.com", "alice password", domain.RoleUser)

	experiences := &service.ExperienceService{Store: st}

	start := time.Date(2022, 1, 10, 0, 0, 0, 0, time.UTC)
	created, err := experiences.Create(ctx, alice, service.ExperienceInput{
		Title:     "Backend Engineer",
		Company:   "Initech",
		StartDate: start,
	})
	require.NoError(t, err)

	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	updated, err := experiences.Update(ctx, alice, created.ID, service.ExperienceInput{
		Title:     "Senior Backend Engineer",
		Company:   "Initech",
		StartDate: start,
		EndDate:   &end,
	})
	require.NoError(t, err)
	require.Equal(t, "Senior Backend Engineer", updated.Title)
	require.NotNil(t, updated.EndDate)
	require.True(t, updated.EndDate.Equal(end))
}

func TestProfileService_Put(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	alice := registerTestUser(t, st, "alice@example.com", "alice password", domain.RoleUser)

	profiles := &service.ProfileService{Store: st}

	first, err := profiles.Put(ctx, alice, service.ProfileInput{
		FullName: "Alice Example",
		Skills:   []string{"go", "sql"},
		SocialLinks: map[string]string{
			"github": "https://github.com/alice",
		},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"go", "sql"}, first.Skills)

	second, err := profiles.Put(ctx, alice, service.ProfileInput{
		FullName: "Alice Example",
		Skills:   []string{"go", "sql", "sqlite"},
	})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, []string{"go", "sql", "sqlite"}, second.Skills)
}

func TestPreferenceService_Defaults(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	alice := registerTestUser(t, st, "alice@example.com", "alice password", domain.RoleUser)

	prefs := &service.PreferenceService{Store: st}

	t.Run("missing record resolves to defaults", func(t *testing.T) {
		p, err := prefs.Get(ctx, alice.ID)
		require.NoError(t, err)
		require.Equal(t, service.DefaultTheme, p.Theme)
		require.Equal(t, service.DefaultLanguage, p.Language)
	})

	t.Run("put then get round trip", func(t *testing.T) {
		color := "#336699"
		saved, err := prefs.Put(ctx, alice, service.PreferenceInput{
			PrimaryColor: &color,
			Theme:        "dark",
		})
		require.NoError(t, err)
		require.Equal(t, "dark", saved.Theme)
		require.Equal(t, service.DefaultLanguage, saved.Language)

		got, err := prefs.Get(ctx, alice.ID)
		require.NoError(t, err)
		require.Equal(t, saved.ID, got.ID)
		require.NotNil(t, got.PrimaryColor)
		require.Equal(t, "#336699", *got.PrimaryColor)
	})
}
