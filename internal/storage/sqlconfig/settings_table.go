package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

// SettingCurrency holds the display currency code.
const SettingCurrency = "currency"

// ISettingsTable defines the interface for key/value user settings.
//
//go:generate mockery --name ISettingsTable --output mock_ISettingsTable.go
type ISettingsTable interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

var _ ISettingsTable = (*SettingsTable)(nil)

// SettingsTable provides access to the settings table.
type SettingsTable struct {
	exec bob.Executor
}

func NewSettingsTable(exec bob.Executor) *SettingsTable {
	return &SettingsTable{exec: exec}
}

// Get returns the value stored under key and whether it was set.
func (t *SettingsTable) Get(ctx context.Context, key string) (string, bool, error) {
	q := psql.Select(
		sm.Columns("value"),
		sm.From(settingsTable),
		sm.Where(psql.Quote("key").EQ(psql.Arg(key))),
	)
	value, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[string])
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (t *SettingsTable) Set(ctx context.Context, key, value string) error {
	q := psql.Insert(
		im.Into(settingsTable, "key", "value"),
		im.Values(psql.Arg(key, value)),
		im.OnConflict("key").DoUpdate(im.SetExcluded("value")),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}
