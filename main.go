package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/especializacion-sena/sitios-backend/src/config"
	"github.com/especializacion-sena/sitios-backend/src/db"
	"github.com/especializacion-sena/sitios-backend/src/logger"
	"github.com/especializacion-sena/sitios-backend/src/models"
	"github.com/especializacion-sena/sitios-backend/src/routes"
	"github.com/especializacion-sena/sitios-backend/src/seed"
	"github.com/especializacion-sena/sitios-backend/src/storage"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v\n", err)
	}

	logg, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Error creating logger: %v\n", err)
	}
	defer logg.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Database connection
	database, err := db.Connect(cfg.Database, cfg.IsProduction(), logg)
	if err != nil {
		logg.Fatal("Error connecting to database", zap.Error(err))
	}

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(models.All()...); err != nil {
			logg.Fatal("Error during auto-migration", zap.Error(err))
		}
	}

	if err := seed.Seed(ctx, database, cfg.Seed, logg); err != nil {
		logg.Fatal("Error seeding database", zap.Error(err))
	}

	// Blob store for site photos
	store, err := storage.New(ctx, cfg.Storage, logg)
	if err != nil {
		logg.Fatal("Error creating blob store", zap.String("backend", cfg.Storage.Backend), zap.Error(err))
	}
	if closer, ok := store.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	router := routes.NewRouter(database, store, logg, routes.RouterOptions{
		AllowedOrigins: cfg.Server.AllowedOrigins(),
		MaxUploadBytes: cfg.Storage.MaxUploadBytes,
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
		IdleTimeout:  cfg.Server.IdleTimeoutDuration(),
	}

	go func() {
		logg.Info("App listening", zap.String("addr", server.Addr), zap.String("env", cfg.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal("Error starting server", zap.String("addr", server.Addr), zap.Error(err))
		}
	}()

	<-ctx.Done()
	logg.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeoutDuration())
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logg.Error("Server forced to shutdown", zap.Error(err))
	}

	if sqlDB, err := database.DB(); err == nil {
		sqlDB.Close()
	}
}
