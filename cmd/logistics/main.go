package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/totegamma/logistics-backend/internal/config"
	"github.com/totegamma/logistics-backend/internal/infra/providers"
	"github.com/totegamma/logistics-backend/internal/present/rest"
	"github.com/totegamma/logistics-backend/internal/present/rest/middleware"
	"github.com/totegamma/logistics-backend/internal/present/rest/presenter"
	"github.com/totegamma/logistics-backend/internal/service"
	"github.com/totegamma/logistics-backend/internal/telemetry"
	"github.com/totegamma/logistics-backend/internal/usecase"
)

const serviceName = "logistics"

var version = "dev"

func main() {
	var configPath string

	root := &cobra.Command{
		Use:           serviceName,
		Short:         "Logistics master data API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the YAML config file")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), configPath)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return migrate(configPath)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup(configPath string) (config.Config, *zap.Logger, *gorm.DB, error) {
	conf, err := config.Load(configPath)
	if err != nil {
		return conf, nil, nil, err
	}

	logger, err := telemetry.NewLogger(conf.Log.Level, conf.Log.Format, serviceName)
	if err != nil {
		return conf, nil, nil, err
	}

	db, err := providers.NewDatabase(conf.Server, logger)
	if err != nil {
		return conf, logger, nil, err
	}

	return conf, logger, db, nil
}

func migrate(configPath string) error {
	_, logger, db, err := setup(configPath)
	if logger != nil {
		defer logger.Sync()
	}
	if err != nil {
		return err
	}

	if err := providers.MigrateDatabase(db); err != nil {
		return err
	}
	logger.Info("database migrated")
	return nil
}

func serve(ctx context.Context, configPath string) error {
	conf, logger, db, err := setup(configPath)
	if logger != nil {
		defer logger.Sync()
	}
	if err != nil {
		return err
	}

	if err := providers.MigrateDatabase(db); err != nil {
		return err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = presenter.ErrorHandler(logger)

	if conf.Server.EnableTrace {
		shutdown, err := telemetry.SetupTraceProvider(ctx, conf.Server.TraceEndpoint, serviceName, version, conf.Server.TraceSampleRate)
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Warn("trace provider shutdown", zap.Error(err))
			}
		}()
		e.Use(otelecho.Middleware(serviceName))
	}

	signalService, closeSignal, err := providers.NewSignalService(ctx, conf.Server, logger)
	if err != nil {
		return err
	}
	defer closeSignal()

	effects := usecase.Effects{
		Logger: logger,
		Cache:  providers.NewDetailCache(conf),
	}
	if signalService != nil {
		effects.Publisher = signalService
	}
	usecases := providers.NewUsecases(db, effects)

	handler := rest.NewHandler(
		rest.Config{MaxPageSize: conf.API.MaxPageSize},
		usecases.Port,
		usecases.Vessel,
		usecases.Customer,
		usecases.Vendor,
		signalService,
		logger,
	)
	handler.AddHealthCheck("postgres", func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	})

	actor := middleware.NewActorMiddleware(service.NewAuthService(conf.API.JWTSecret), conf.API.DefaultActor)

	e.Use(echomw.RequestID())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(middleware.AccessLog(logger))
	e.Use(actor.IdentifyActor)

	handler.RegisterRoutes(e)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", conf.Server.Listen), zap.String("version", version))
		if err := e.Start(conf.Server.Listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
