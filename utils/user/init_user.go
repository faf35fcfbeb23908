package main

import (
	"context"
	"flag"
	"log"

	"github.com/especializacion-sena/sitios-backend/src/config"
	"github.com/especializacion-sena/sitios-backend/src/db"
	"github.com/especializacion-sena/sitios-backend/src/logger"
	"github.com/especializacion-sena/sitios-backend/src/models"
	"github.com/especializacion-sena/sitios-backend/src/services"
	"go.uber.org/zap"
)

// Creates a user row for GET /usuarios, e.g.
//
//	go run ./utils/user -username sena -password sena
func main() {
	username := flag.String("username", "", "username to create")
	password := flag.String("password", "", "password to store")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("both -username and -password are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logg, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logg.Sync()

	database, err := db.Connect(cfg.Database, cfg.IsProduction(), logg)
	if err != nil {
		logg.Fatal("failed to connect database", zap.Error(err))
	}

	// Migrate schema if not exists
	if err := database.AutoMigrate(&models.UserModel{}); err != nil {
		logg.Fatal("failed to migrate user model", zap.Error(err))
	}

	created, err := services.NewUserService(database).EnsureUser(context.Background(), *username, *password)
	if err != nil {
		logg.Fatal("failed to create user", zap.Error(err))
	}
	if !created {
		logg.Info("User already exists", zap.String("username", *username))
		return
	}
	logg.Info("User created", zap.String("username", *username))
}
