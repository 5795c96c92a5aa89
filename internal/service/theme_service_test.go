package service_test

import (
	"context"
	"testing"

	"sobanhang/internal/model"
	"sobanhang/internal/repository"
	"sobanhang/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTheme_DefaultThenToggle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := service.NewThemeService(f.storage, "dark")

	th, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.ThemeDark, th)

	th, err = svc.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.ThemeLight, th)

	raw, ok, _ := f.kv.Get(ctx, repository.ThemeKey)
	require.True(t, ok)
	assert.Equal(t, "light", raw)

	th, err = svc.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.ThemeDark, th)
}

func TestTheme_InvalidValues(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := service.NewThemeService(f.storage, "sepia")

	assert.ErrorIs(t, svc.Set(ctx, "blue"), service.ErrInvalidTheme)

	// Garbage in storage falls back to the default; an invalid default is light.
	require.NoError(t, f.kv.Set(ctx, repository.ThemeKey, "purple"))
	th, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.ThemeLight, th)
}
