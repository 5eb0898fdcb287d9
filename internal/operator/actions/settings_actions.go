package actions

import (
	"context"

	"github.com/carson-networks/budget-allocator/internal/currency"
	"github.com/carson-networks/budget-allocator/internal/storage"
	"github.com/carson-networks/budget-allocator/internal/storage/sqlconfig"
)

// SetCurrency changes the display currency. Stored amounts are not converted.
type SetCurrency struct {
	Code   string
	Result string
	IAction
}

func (a *SetCurrency) Perform(ctx context.Context, writer *storage.Writer) error {
	code, err := currency.Normalize(a.Code)
	if err != nil {
		return err
	}
	if err := writer.Settings.Set(ctx, sqlconfig.SettingCurrency, code); err != nil {
		return err
	}
	a.Result = code
	return nil
}
