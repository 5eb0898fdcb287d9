package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-allocator/internal/handlers/v1/allocation"
	"github.com/carson-networks/budget-allocator/internal/handlers/v1/budget"
	"github.com/carson-networks/budget-allocator/internal/handlers/v1/savings"
	"github.com/carson-networks/budget-allocator/internal/handlers/v1/settings"
	"github.com/carson-networks/budget-allocator/internal/handlers/v1/status"
	"github.com/carson-networks/budget-allocator/internal/handlers/v1/transaction"
	"github.com/carson-networks/budget-allocator/internal/logging"
	"github.com/carson-networks/budget-allocator/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Storage status.Pinger
	Service *service.Service
}

// Routes builds the handler tree: the plain status endpoint plus every v1
// operation registered on a Huma API.
func (r *Rest) Routes() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Storage)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("Budget Allocator", "1.0.0"))
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))

	svc := r.Service
	transaction.NewCreateTransactionHandler(svc.Transaction).Register(api)
	transaction.NewListTransactionsHandler(svc.Transaction).Register(api)
	transaction.NewDeleteTransactionHandler(svc.Transaction).Register(api)

	budget.NewOverviewHandler(svc.Budget).Register(api)
	budget.NewUpdateBudgetsHandler(svc.Budget).Register(api)
	budget.NewAddCategoryHandler(svc.Budget).Register(api)
	budget.NewSuggestionHandler(svc.Budget).Register(api)

	allocation.NewHandler(svc.Allocation).Register(api)

	savings.NewAllocateHandler(svc.Savings).Register(api)
	savings.NewReportHandler(svc.Savings).Register(api)
	savings.NewPlannedHandler(svc.Savings).Register(api)

	settings.NewCurrencyHandler(svc.Settings).Register(api)

	return mux
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Routes(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
