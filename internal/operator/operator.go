package operator

import (
	"context"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-allocator/internal/operator/actions"
	"github.com/carson-networks/budget-allocator/internal/storage"
)

// WriteOpener hands out a Writer bound to a fresh database transaction.
type WriteOpener interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage WriteOpener
	queue   chan ActionItem
	logger  *logrus.Logger
}

func NewOperator(s WriteOpener, queue chan ActionItem, logger *logrus.Logger) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
		logger:  logger,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	if o.logger.IsLevelEnabled(logrus.DebugLevel) {
		o.logger.WithField("action", spew.Sdump(item.action)).Debug("Operator.processItem.start")
	}

	// The caller gave up while the item was queued.
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err = item.action.Perform(item.ctx, writer)
	if err != nil {
		if rbErr := writer.Rollback(context.Background()); rbErr != nil {
			o.logger.WithError(rbErr).Error("Operator.processItem.rollback")
		}
		item.response <- ActionItemResponse{err: err}
		return
	}

	// Perform succeeded; a late cancellation must not abort the commit.
	if err = writer.Commit(context.WithoutCancel(item.ctx)); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	item.response <- ActionItemResponse{}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
