package main

import (
	"context"
	"log/slog"
	"os"

	"mealkit/config"
	"mealkit/internal/delivery"
	"mealkit/internal/delivery/http"
	"mealkit/internal/delivery/http/middleware"
	"mealkit/internal/delivery/http/router/handler"
	"mealkit/internal/domain/service"
	"mealkit/internal/infra/auth"
	logs "mealkit/internal/infra/log"
	"mealkit/internal/infra/persistence/postgres"
	"mealkit/internal/infra/pubsub"
	"mealkit/internal/infra/qrcode"
	"mealkit/internal/infra/storage"
	"mealkit/internal/usecase/impl"

	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"
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
			postgres.NewFoodPackageRepository,
			postgres.NewOrderRepository,
			postgres.NewPaymentRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewInventoryLogRepository,
			postgres.NewAddressRepository,
			postgres.NewDietProfileRepository,
			postgres.NewUploadRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newBcryptHasher,
			auth.NewJWTService,
			newQRCodeService,
			storage.New,
		),
		pubsub.Module,
	)
}

// newBcryptHasher creates the password hasher with the configured cost
func newBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return auth.NewBcryptHasher(cost)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewCatalogService,
			impl.NewOrderService,
			impl.NewSubscriptionService,
			impl.NewAddressService,
			impl.NewDietProfileService,
			impl.NewUploadService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewPackageHandler,
			handler.NewOrderHandler,
			handler.NewSubscriptionHandler,
			handler.NewAddressHandler,
			handler.NewDietProfileHandler,
			handler.NewUploadHandler,
			handler.NewAdminHandler,
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
