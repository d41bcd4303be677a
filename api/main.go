package api

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"

	"github.com/vitalog-org/vitalog/config"
	"github.com/vitalog-org/vitalog/insights"
	"github.com/vitalog-org/vitalog/logger"
	"github.com/vitalog-org/vitalog/measurements"
	"github.com/vitalog-org/vitalog/medications"
	"github.com/vitalog-org/vitalog/store"
)

func Start(e *echo.Echo, cfg *config.Config, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(fmt.Sprintf(":%d", cfg.HttpPort)); err != nil {
					fmt.Println(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

func SetReady(healthCheck *HealthCheck, db *mongo.Database, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.Client().Ping(ctx, nil); err != nil {
				return err
			}

			// It's important this is set after mongo is initialized, which is ensured
			// by taking a dependency on mongo in the constructor, because lifecycle hooks
			// are executed in topological order
			healthCheck.SetReady(true)
			return nil
		},
		OnStop: nil,
	})
}

// NewInsightReporter wires insight generation into the measurement write path
func NewInsightReporter(generator *insights.Generator) measurements.InsightReporter {
	return generator
}

// Dependencies returns the service DI graph
func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Provide(
			logger.NewProductionLogger,
			logger.Sugar,
			config.NewConfig,
			store.NewConfig,
			store.GetConnectionString,
			store.NewClient,
			store.NewDatabase,
			measurements.NewRepository,
			measurements.NewService,
			insights.NewRepository,
			insights.NewGenerator,
			insights.NewService,
			NewInsightReporter,
			medications.NewSuggestionsRepository,
			medications.NewSchedulesRepository,
			medications.NewLogsRepository,
			medications.NewManager,
			NewHealthCheck,
			NewHandler,
			NewServer,
		),
	}
}

func MainLoop() {
	opts := append(
		Dependencies(),
		fx.Invoke(SetReady),
		fx.Invoke(Start),
	)
	fx.New(opts...).Run()
}
