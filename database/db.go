package database

import (
	"context"
	"fmt"
	"log/slog" // use slog for structured logging
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"moviereview/internal/config"
	"moviereview/internal/microservices/http-api/models"
)

// Connect opens the database named by cfg.DatabaseURL and migrates the schema.
// postgres:// URLs use the pgx driver; anything else is a sqlite file path.
func Connect(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	gormLog := gormlogger.New(
		slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
	gormCfg := &gorm.Config{Logger: gormLog, TranslateError: true}

	var (
		db  *gorm.DB
		err error
	)
	driver := "sqlite"
	if IsPostgres(cfg.DatabaseURL) {
		driver = "postgres"
		db, err = gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
	} else {
		db, err = gorm.Open(sqlite.Open(SQLiteDSN(cfg.DatabaseURL)), gormCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	if driver == "sqlite" && isMemory(cfg.DatabaseURL) {
		// every new connection would get its own empty in-memory database
		sqlDB.SetMaxOpenConns(1)
	} else {
		if cfg.DBMaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
		}
		if cfg.DBMaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
		}
		if cfg.DBConnMaxLifetime > 0 {
			sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)
		}
	}

	// Verify the connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		// close the db handle if ping fails to avoid resource leak
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		sqlDB.Close()
		return nil, err
	}

	logger.Info("Connected to the database successfully", "driver", driver)
	return db, nil
}

// Migrate creates or updates the five tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// Ping is used by the health check.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func IsPostgres(url string) bool {
	return strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://")
}

// SQLiteDSN turns a path into a DSN with foreign key enforcement switched on.
func SQLiteDSN(path string) string {
	path = strings.TrimPrefix(path, "sqlite://")
	if isMemory(path) {
		path = "file::memory:"
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func isMemory(path string) bool {
	path = strings.TrimPrefix(path, "sqlite://")
	return path == ":memory:" || path == "file::memory:" || strings.HasPrefix(path, "file::memory:?")
}
