package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/isp-registry/internal/api/http"
	"github.com/spec-kit/isp-registry/internal/api/http/handlers"
	"github.com/spec-kit/isp-registry/internal/auth"
	"github.com/spec-kit/isp-registry/internal/config"
	"github.com/spec-kit/isp-registry/internal/events"
	"github.com/spec-kit/isp-registry/internal/observability"
	"github.com/spec-kit/isp-registry/internal/persistence"
	"github.com/spec-kit/isp-registry/internal/repository"
	"github.com/spec-kit/isp-registry/internal/service"
	"github.com/spec-kit/isp-registry/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	clientTypeRepo := repository.NewClientTypeRepository(pool)
	clientRepo := repository.NewClientRepository(pool)
	vendorRepo := repository.NewVendorRepository(pool)
	serviceTypeRepo := repository.NewServiceTypeRepository(pool)
	serviceRepo := repository.NewServiceRepository(pool)
	popRepo := repository.NewPopRepository(pool)
	contactRepo := repository.NewContactRepository(pool)
	addressRepo := repository.NewAddressRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	auditWorker := worker.NewAuditWorker(redis.Client, cfg.Audit, logger)
	auditWorker.Register(dispatcher)

	resolver := service.NewSearchResolver(clientRepo, vendorRepo, serviceRepo)
	validator := service.NewReferenceValidator(clientRepo, vendorRepo, serviceRepo)

	authService := service.NewAuthService(*cfg, userRepo)
	clientService := service.NewClientService(clientRepo, clientTypeRepo, serviceRepo, serviceTypeRepo, popRepo, resolver, dispatcher, logger)
	vendorService := service.NewVendorService(vendorRepo, popRepo, dispatcher, logger)
	contactService := service.NewContactService(contactRepo, validator, resolver, dispatcher, logger)
	addressService := service.NewAddressService(addressRepo, validator, resolver, dispatcher, logger)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:          handlers.NewUsersHandler(authService),
		Clients:        handlers.NewClientsHandler(clientService),
		Vendors:        handlers.NewVendorsHandler(vendorService),
		Services:       handlers.NewServicesHandler(clientService),
		Contacts:       handlers.NewContactsHandler(contactService),
		Addresses:      handlers.NewAddressesHandler(addressService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
