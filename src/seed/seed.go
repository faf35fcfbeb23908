package seed

import (
	"context"

	"github.com/especializacion-sena/sitios-backend/src/config"
	"github.com/especializacion-sena/sitios-backend/src/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Seed creates the configured default user. It does nothing when no seed
// user is configured and never overwrites an existing one.
func Seed(ctx context.Context, db *gorm.DB, cfg config.SeedConfig, log *zap.Logger) error {
	if cfg.Username == "" {
		log.Debug("No seed user configured")
		return nil
	}

	created, err := services.NewUserService(db).EnsureUser(ctx, cfg.Username, cfg.Password)
	if err != nil {
		log.Error("Failed to create seed user", zap.String("username", cfg.Username), zap.Error(err))
		return err
	}
	if created {
		log.Info("Seed user created", zap.String("username", cfg.Username))
	} else {
		log.Info("Seed user already exists", zap.String("username", cfg.Username))
	}
	return nil
}
