package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/furqanmax/Simple-POS/internal/cache"
	"github.com/furqanmax/Simple-POS/internal/format"
	"github.com/furqanmax/Simple-POS/internal/models"
	"github.com/furqanmax/Simple-POS/internal/repositories"
)

type SettingService struct {
	SettingRepo *repositories.SettingRepository
}

func NewSettingService(settingRepo *repositories.SettingRepository) *SettingService {
	return &SettingService{SettingRepo: settingRepo}
}

func (s *SettingService) Get(ctx context.Context) (*models.Settings, error) {
	if cached, ok := cache.GetCachedSettings(ctx); ok {
		return cached, nil
	}
	settings, err := s.SettingRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	cache.CacheSettings(ctx, settings)
	return settings, nil
}

func (s *SettingService) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.Settings, error) {
	if req.DefaultTaxRate != nil && (*req.DefaultTaxRate < 0 || *req.DefaultTaxRate > 100) {
		return nil, errors.New("default tax rate must be between 0 and 100")
	}
	if req.PageSize != nil {
		if _, err := format.ParseBillSize(*req.PageSize); err != nil {
			return nil, fmt.Errorf("invalid page size: %w", err)
		}
	}

	settings, err := s.SettingRepo.Update(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	cache.InvalidateSettings(ctx)
	cache.CacheSettings(ctx, settings)
	return settings, nil
}
