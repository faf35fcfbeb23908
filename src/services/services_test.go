package services

import (
	"testing"

	"github.com/especializacion-sena/sitios-backend/src/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newSite(name string) *models.SiteModel {
	return &models.SiteModel{
		Name:   name,
		Info:   "Cascada de 40 metros",
		Photo:  "cascada.jpg",
		Rate:   5,
		Coords: "4.60971,-74.08175",
	}
}
