package main

import (
	"context"
	"log/slog"
	"os"

	"capsule/config"
	"capsule/internal/delivery"
	"capsule/internal/delivery/http"
	"capsule/internal/delivery/http/middleware"
	"capsule/internal/delivery/http/router/handler"
	"capsule/internal/infra/auth"
	logs "capsule/internal/infra/log"
	"capsule/internal/infra/media"
	"capsule/internal/infra/payment"
	"capsule/internal/infra/persistence/postgres"
	"capsule/internal/infra/pubsub"
	"capsule/internal/usecase/impl"

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
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewProductRepository,
			postgres.NewDropRepository,
			postgres.NewCartRepository,
			postgres.NewOrderRepository,
			postgres.NewWishlistRepository,
			postgres.NewAddressRepository,
			postgres.NewBannerRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			pubsub.NewEventPublisher,
			media.NewBlobStorage,
			fx.Annotate(
				payment.NewStripeGateway,
				fx.ResultTags(`group:"gateways"`),
			),
			fx.Annotate(
				payment.NewRazorpayGateway,
				fx.ResultTags(`group:"gateways"`),
			),
			fx.Annotate(
				payment.NewCODGateway,
				fx.ResultTags(`group:"gateways"`),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewCatalogService,
			impl.NewDropService,
			impl.NewCartService,
			impl.NewCheckoutService,
			impl.NewWishlistService,
			impl.NewAddressService,
			impl.NewBannerService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewProductHandler,
			handler.NewDropHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewWishlistHandler,
			handler.NewAddressHandler,
			handler.NewBannerHandler,
			handler.NewUploadHandler,
			handler.NewSeedHandler,
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
