package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Vets4Warriors/backend/config"
	"github.com/Vets4Warriors/backend/internal/delivery"
	"github.com/Vets4Warriors/backend/internal/delivery/http"
	"github.com/Vets4Warriors/backend/internal/delivery/http/middleware"
	"github.com/Vets4Warriors/backend/internal/delivery/http/router/handler"
	logs "github.com/Vets4Warriors/backend/internal/infra/log"
	"github.com/Vets4Warriors/backend/internal/infra/persistence/mongodb"
	"github.com/Vets4Warriors/backend/internal/usecase/impl"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			ensureIndexes,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		mongodb.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongodb.NewLocationRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLocationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewLocationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	return mongodb.EnsureIndexes(ctx, db)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
