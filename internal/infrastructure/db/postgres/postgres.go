// Package postgres implements the portal's repositories on PostgreSQL via
// gorm. Driver-level failures are mapped to domain sentinels here; nothing
// raw escapes to callers.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/brokerdesk/employee-portal/internal/core/domain"
)

// pgUniqueViolation is the PostgreSQL error code for a unique constraint hit.
const pgUniqueViolation = "23505"

// Connect opens a gorm connection and verifies it with a ping.
func Connect(ctx context.Context, dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres handle: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return db, nil
}

// Migrate creates the employees and customers tables and seeds the admin
// account when it does not exist yet.
func Migrate(ctx context.Context, db *gorm.DB, seedAdminPassword string) error {
	if err := db.WithContext(ctx).AutoMigrate(&domain.Employee{}, &domain.Customer{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return seedAdmin(ctx, db, seedAdminPassword)
}

func seedAdmin(ctx context.Context, db *gorm.DB, password string) error {
	var count int64
	if err := db.WithContext(ctx).Model(&domain.Employee{}).
		Where("username = ?", "admin").Count(&count).Error; err != nil {
		return fmt.Errorf("seed admin lookup: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed admin hash: %w", err)
	}

	admin := domain.Employee{
		Username:     "admin",
		PasswordHash: string(hash),
		FullName:     "System Administrator",
		IsActive:     true,
	}
	if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
		return fmt.Errorf("seed admin insert: %w", err)
	}
	return nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
