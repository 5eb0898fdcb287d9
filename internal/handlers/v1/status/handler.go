package status

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/carson-networks/budget-allocator/internal/logging"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Storage Pinger
}

func NewHandler(storage Pinger) Handler {
	return Handler{Storage: storage}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != "GET" {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	stop := logData.AddTiming("pingMs")
	err := h.Storage.Ping(req.Context())
	stop()
	if err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return fmt.Errorf("status: database unreachable: %w", err)
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
