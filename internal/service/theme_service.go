package service

import (
	"context"

	"sobanhang/internal/model"
	"sobanhang/internal/repository"
)

type ThemeService interface {
	Get(ctx context.Context) (model.Theme, error)
	Set(ctx context.Context, theme model.Theme) error
	Toggle(ctx context.Context) (model.Theme, error)
}

type themeService struct {
	storage  repository.ThemeStorage
	fallback model.Theme
}

// NewThemeService uses fallback whenever no valid theme is stored. An invalid
// fallback becomes light.
func NewThemeService(storage repository.ThemeStorage, fallback string) ThemeService {
	t := model.Theme(fallback)
	if !t.Valid() {
		t = model.ThemeLight
	}
	return &themeService{storage: storage, fallback: t}
}

func (s *themeService) Get(ctx context.Context) (model.Theme, error) {
	raw, ok, err := s.storage.LoadTheme(ctx)
	if err != nil {
		return "", err
	}
	if t := model.Theme(raw); ok && t.Valid() {
		return t, nil
	}
	return s.fallback, nil
}

func (s *themeService) Set(ctx context.Context, theme model.Theme) error {
	if !theme.Valid() {
		return ErrInvalidTheme
	}
	return s.storage.SaveTheme(ctx, string(theme))
}

func (s *themeService) Toggle(ctx context.Context) (model.Theme, error) {
	cur, err := s.Get(ctx)
	if err != nil {
		return "", err
	}
	next := model.ThemeDark
	if cur == model.ThemeDark {
		next = model.ThemeLight
	}
	if err := s.Set(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}
