package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fulfillment/cmd"
	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/payment"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/routerepo"
	"fulfillment/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// A .env file is optional; in containers the environment is set directly.
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("No .env file found, using environment variables")
	}

	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	gormDB, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}, &routerepo.RouteDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	gateway, err := payment.NewClient(config.PaymentBaseURL, config.PaymentAPIKey)
	if err != nil {
		log.Fatalf("Failed to create payment gateway client: %v", err)
	}

	root := cmd.NewCompositionRoot(gormDB, gateway)

	server := httpin.NewServer(
		root.CreateRequestCancelCommandHandler(),
		root.CreateApproveCancelCommandHandler(),
		root.CreateRejectCancelCommandHandler(),
		root.CreateRequestReturnCommandHandler(),
		root.CreateApproveReturnCommandHandler(),
		root.CreateRejectReturnCommandHandler(),
		root.CreateRefundOrderCommandHandler(),
		root.CreateAssignOrderCommandHandler(),
		root.CreateUnassignOrderCommandHandler(),
		root.CreateCreateRouteCommandHandler(),
		root.CreateDeleteRouteCommandHandler(),
		root.CreateChangeRouteStatusCommandHandler(),
		root.CreateExecuteAutoAssignCommandHandler(),
		root.CreateGetRoutesQueryHandler(),
		root.CreateGetUnassignedOrdersQueryHandler(),
		root.CreateAnalyzeAutoAssignQueryHandler(),
	)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	server.RegisterRoutes(e)

	if config.AutoAssignCron != "" {
		jobManager := jobs.NewJobManager(
			root.CreateExecuteAutoAssignCommandHandler(),
			config.AutoAssignCron,
			logger,
		)
		if err = jobManager.StartAll(); err != nil {
			log.Fatalf("Failed to start jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); startErr != nil {
			logger.Info("HTTP server stopped", "reason", startErr)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down HTTP server", "error", err)
	}
}
