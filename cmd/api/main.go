package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/hrops/hr-admin-service/internal/api/http"
	"github.com/hrops/hr-admin-service/internal/api/http/handlers"
	"github.com/hrops/hr-admin-service/internal/auth"
	"github.com/hrops/hr-admin-service/internal/config"
	"github.com/hrops/hr-admin-service/internal/events"
	"github.com/hrops/hr-admin-service/internal/observability"
	"github.com/hrops/hr-admin-service/internal/persistence"
	"github.com/hrops/hr-admin-service/internal/repository"
	"github.com/hrops/hr-admin-service/internal/service"
	"github.com/hrops/hr-admin-service/internal/worker"
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
	employeeRepo := repository.NewEmployeeRepository(pool)
	departmentRepo := repository.NewCachingDepartmentRepository(
		redis.Client,
		cfg.Redis.CacheTTL(),
		repository.NewDepartmentRepository(pool),
	)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(dispatcher, logger)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{UserRepo: userRepo})
	departmentService := service.NewDepartmentService(service.DepartmentDependencies{
		DepartmentRepo: departmentRepo,
		EmployeeRepo:   employeeRepo,
	}, dispatcher)
	employeeService := service.NewEmployeeService(service.EmployeeDependencies{
		EmployeeRepo:   employeeRepo,
		DepartmentRepo: departmentRepo,
	}, dispatcher)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager())
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout(), cfg.App.IsDevelopment())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Departments:    handlers.NewDepartmentHandler(departmentService),
		Employees:      handlers.NewEmployeeHandler(employeeService),
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
