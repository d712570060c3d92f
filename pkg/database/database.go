package database

import (
	"fmt"
	"learnhub/internal/config"
	"learnhub/internal/model"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func dialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Type {
	case "postgres":
		dsn := cfg.URL
		if dsn == "" {
			dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
				cfg.Host,
				cfg.User,
				cfg.Password,
				cfg.DBName,
				cfg.Port,
				cfg.SSLMode,
			)
		}
		return postgres.Open(dsn), nil
	case "mysql":
		dsn := cfg.URL
		if dsn == "" {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
				cfg.User,
				cfg.Password,
				cfg.Host,
				cfg.Port,
				cfg.DBName,
				cfg.Charset,
				cfg.ParseTime,
			)
		}
		return mysql.Open(dsn), nil
	case "sqlite", "":
		path := cfg.Path
		if cfg.URL != "" {
			path = cfg.URL
		}
		return sqlite.Open(path), nil
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.Type)
	}
}

func logLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(d, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel(cfg.LogLevel)),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if cfg.Type == "sqlite" || cfg.Type == "" {
		// sqlite 只允许单写连接
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	log.Printf("Database connection established (%s)", db.Dialector.Name())
	return db, nil
}

// Migrate creates or updates the progress, event and quiz attempt tables.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.ModuleProgress{},
		&model.ProgressEvent{},
		&model.QuizAttempt{},
	)
	if err != nil {
		return err
	}

	log.Println("Database migration completed")
	return nil
}

// Ping runs the trivial query used by the health check.
func Ping(db *gorm.DB) error {
	return db.Exec("SELECT 1").Error
}
