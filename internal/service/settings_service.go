package service

import (
	"context"

	"github.com/carson-networks/budget-allocator/internal/currency"
	"github.com/carson-networks/budget-allocator/internal/operator/actions"
	"github.com/carson-networks/budget-allocator/internal/storage/sqlconfig"
)

type SettingsService struct {
	loader    *stateLoader
	processor ActionProcessor
}

func NewSettingsService(loader *stateLoader, processor ActionProcessor) *SettingsService {
	return &SettingsService{loader: loader, processor: processor}
}

// Currency returns the display currency, falling back to the configured
// default when none was stored.
func (s *SettingsService) Currency(ctx context.Context) (string, error) {
	code, ok, err := s.loader.storage.Settings.Get(ctx, sqlconfig.SettingCurrency)
	if err != nil {
		return "", err
	}
	if !ok {
		code = s.loader.defaultCurrency
	}
	if code, err = currency.Normalize(code); err != nil {
		return currency.Default, nil
	}
	return code, nil
}

// SetCurrency stores the display currency.
func (s *SettingsService) SetCurrency(ctx context.Context, code string) (string, error) {
	action := &actions.SetCurrency{Code: code}
	if err := s.processor.Process(ctx, action); err != nil {
		return "", err
	}
	return action.Result, nil
}
