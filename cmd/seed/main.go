package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/hrops/hr-admin-service/internal/auth"
	"github.com/hrops/hr-admin-service/internal/config"
	"github.com/hrops/hr-admin-service/internal/domain"
	"github.com/hrops/hr-admin-service/internal/observability"
	"github.com/hrops/hr-admin-service/internal/persistence"
	"github.com/hrops/hr-admin-service/internal/repository"
)

// Seeds the initial admin account. The API itself has no user-creation
// endpoint; this command is the provisioning path.
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

	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		logger.Fatal("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD must be set")
	}

	ctx := context.Background()

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

	users := repository.NewUserRepository(pg.PoolHandle())

	if existing, err := users.GetByEmail(ctx, email); err == nil {
		logger.Info("admin already exists", zap.String("id", existing.ID))
		return
	}

	hash, err := auth.HashPassword(password, cfg.Auth.BcryptCost)
	if err != nil {
		logger.Fatal("failed to hash password", zap.Error(err))
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         domain.UserRoleAdmin,
	}
	if err := users.Create(ctx, user); err != nil {
		logger.Fatal("failed to create admin", zap.Error(err))
	}

	logger.Info("admin created", zap.String("id", user.ID), zap.String("email", user.Email))
}
