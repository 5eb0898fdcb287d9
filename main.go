package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-allocator/api"
	"github.com/carson-networks/budget-allocator/internal/config"
	"github.com/carson-networks/budget-allocator/internal/logging"
	"github.com/carson-networks/budget-allocator/internal/operator"
	"github.com/carson-networks/budget-allocator/internal/service"
	"github.com/carson-networks/budget-allocator/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.Info("budget-allocator starting")

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers, logger)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage, delegator, envConfig.DefaultCurrency)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpRest := api.Rest{
		Logger:  logger,
		Port:    envConfig.Port,
		Storage: dbStorage,
		Service: svc,
	}
	httpRest.Serve(ctx)
}
