package db

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/especializacion-sena/sitios-backend/src/config"
	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const cloudSQLSocketDir = "/cloudsql"

// Connect opens the configured database. In production, when an instance
// connection name is set, the Cloud SQL unix socket is used instead of TCP.
func Connect(cfg config.DatabaseConfig, production bool, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := Dialector(cfg, production)
	if err != nil {
		return nil, err
	}

	level := gormlogger.Warn
	if !production {
		level = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(level),
	})
	if err != nil {
		log.Error("Error connecting to database", zap.String("driver", cfg.Driver), zap.Error(err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	log.Info("Sitios DB connected successfully", zap.String("driver", cfg.Driver), zap.String("database", cfg.Name))

	return db, nil
}

// Dialector picks the gorm driver for cfg.Driver.
func Dialector(cfg config.DatabaseConfig, production bool) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverMySQL:
		return gormmysql.Open(MySQLDSN(cfg, production)), nil
	case config.DriverPostgres:
		return postgres.Open(PostgresDSN(cfg, production)), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.Name), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func useCloudSQL(cfg config.DatabaseConfig, production bool) bool {
	return production && cfg.InstanceConnection != ""
}

func MySQLDSN(cfg config.DatabaseConfig, production bool) string {
	dsn := mysql.NewConfig()
	dsn.User = cfg.User
	dsn.Passwd = cfg.Password
	dsn.DBName = cfg.Name
	dsn.ParseTime = true
	// UPDATE reports matched rows, not only changed ones
	dsn.ClientFoundRows = true
	dsn.Params = map[string]string{"charset": "utf8mb4"}

	if useCloudSQL(cfg, production) {
		dsn.Net = "unix"
		dsn.Addr = cloudSQLSocketDir + "/" + cfg.InstanceConnection
	} else {
		port := cfg.Port
		if port == 0 {
			port = 3306
		}
		dsn.Net = "tcp"
		dsn.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(port))
	}

	return dsn.FormatDSN()
}

func PostgresDSN(cfg config.DatabaseConfig, production bool) string {
	host := cfg.Host
	port := cfg.Port
	if port == 0 {
		port = 5432
	}
	if useCloudSQL(cfg, production) {
		host = cloudSQLSocketDir + "/" + cfg.InstanceConnection
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		host, port, cfg.User, cfg.Password, cfg.Name)
}
