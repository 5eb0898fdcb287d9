package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-allocator/internal/amount"
	"github.com/carson-networks/budget-allocator/internal/savings"
	"github.com/carson-networks/budget-allocator/internal/storage"
)

// AllocateSavings records the savings allocation of one income and adds its
// amounts onto the planned totals.
type AllocateSavings struct {
	IncomeID       uuid.UUID
	Percentages    amount.Map
	SavingsPercent decimal.Decimal
	On             time.Time

	Event   savings.Event
	Planned amount.Map
	IAction
}

func (a *AllocateSavings) Perform(ctx context.Context, writer *storage.Writer) error {
	income, err := writer.Transactions.FindByID(ctx, a.IncomeID)
	if err != nil {
		return err
	}

	events, err := writer.Allocations.List(ctx)
	if err != nil {
		return err
	}

	event, err := savings.RecordAllocationEvent(events, *income, a.Percentages, a.SavingsPercent, a.On)
	if err != nil {
		return err
	}
	if err := writer.Allocations.Insert(ctx, event); err != nil {
		return err
	}

	planned, err := writer.Planned.List(ctx)
	if err != nil {
		return err
	}
	planned = savings.AccumulatePlanned(planned, event)
	if err := writer.Planned.Upsert(ctx, planned); err != nil {
		return err
	}

	a.Event = event
	a.Planned = planned
	return nil
}

// SetPlannedSavings overwrites the planned total of one savings type.
type SetPlannedSavings struct {
	Category string
	Amount   decimal.Decimal
	Result   amount.Map
	IAction
}

func (a *SetPlannedSavings) Perform(ctx context.Context, writer *storage.Writer) error {
	planned, err := writer.Planned.List(ctx)
	if err != nil {
		return err
	}

	planned = savings.OverridePlanned(planned, a.Category, a.Amount)
	if err := writer.Planned.Upsert(ctx, planned); err != nil {
		return err
	}
	a.Result = planned
	return nil
}

// AddSavingsType registers a custom savings type with a zero planned total.
type AddSavingsType struct {
	Name   string
	Result amount.Map
	IAction
}

func (a *AddSavingsType) Perform(ctx context.Context, writer *storage.Writer) error {
	planned, err := writer.Planned.List(ctx)
	if err != nil {
		return err
	}

	types, err := savings.AddType(planned.Keys(), a.Name)
	if err != nil {
		return err
	}

	planned = savings.OverridePlanned(planned, types[len(types)-1], decimal.Zero)
	if err := writer.Planned.Upsert(ctx, planned); err != nil {
		return err
	}
	a.Result = planned
	return nil
}

// AutoAllocatePlanned resets the fixed planned totals to the default split
// of half of all recorded income.
type AutoAllocatePlanned struct {
	Result amount.Map
	IAction
}

func (a *AutoAllocatePlanned) Perform(ctx context.Context, writer *storage.Writer) error {
	log, err := writer.Transactions.List(ctx)
	if err != nil {
		return err
	}
	planned, err := writer.Planned.List(ctx)
	if err != nil {
		return err
	}

	planned = savings.AutoAllocatePlanned(planned, log)
	if err := writer.Planned.Upsert(ctx, planned); err != nil {
		return err
	}
	a.Result = planned
	return nil
}
