package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/budget-allocator/internal/amount"
	"github.com/carson-networks/budget-allocator/internal/currency"
	"github.com/carson-networks/budget-allocator/internal/ledger"
	"github.com/carson-networks/budget-allocator/internal/logging"
	"github.com/carson-networks/budget-allocator/internal/operator/actions"
	"github.com/carson-networks/budget-allocator/internal/savings"
	"github.com/carson-networks/budget-allocator/internal/storage"
	"github.com/carson-networks/budget-allocator/internal/storage/sqlconfig"
)

// State is everything the engine computes from. It is loaded fresh for every
// read and never shared between requests.
type State struct {
	Transactions []ledger.Transaction
	Budgets      amount.Map
	Currency     string
	Events       []savings.Event
	Planned      amount.Map
}

// LoadState reads the five independently stored slices concurrently.
// Missing budgets and currency fall back to their defaults.
func LoadState(ctx context.Context, tables storage.Tables, defaultCurrency string) (*State, error) {
	state := &State{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		txs, err := tables.Transactions.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to load transactions: %w", err)
		}
		state.Transactions = txs
		return nil
	})
	g.Go(func() error {
		budgets, err := actions.CurrentBudgets(gctx, tables.Budgets)
		if err != nil {
			return fmt.Errorf("failed to load budgets: %w", err)
		}
		state.Budgets = budgets
		return nil
	})
	g.Go(func() error {
		events, err := tables.Allocations.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to load savings allocations: %w", err)
		}
		state.Events = events
		return nil
	})
	g.Go(func() error {
		planned, err := tables.Planned.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to load planned savings: %w", err)
		}
		state.Planned = planned
		return nil
	})
	g.Go(func() error {
		code, ok, err := tables.Settings.Get(gctx, sqlconfig.SettingCurrency)
		if err != nil {
			return fmt.Errorf("failed to load currency: %w", err)
		}
		if !ok {
			code = defaultCurrency
		}
		if code, err = currency.Normalize(code); err != nil {
			code = currency.Default
		}
		state.Currency = code
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return state, nil
}

type stateLoader struct {
	storage         *storage.Storage
	defaultCurrency string
}

func (l *stateLoader) load(ctx context.Context) (*State, error) {
	if logData := logging.GetLogData(ctx); logData != nil {
		defer logData.AddToExistingTiming("loadStateMs")()
	}
	return LoadState(ctx, l.storage.Tables, l.defaultCurrency)
}
