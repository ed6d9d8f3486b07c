package database

import (
	"fmt"
	"os"

	"port-pass/logger"
	"port-pass/models/audit"
	"port-pass/models/pass"
	"port-pass/models/staff"
	"port-pass/models/transaction"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB connects to Postgres and brings the schema up to date. The returned
// handle is the only one; callers thread it explicitly instead of reading a
// package global.
func InitDB() (*gorm.DB, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	user := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE")

	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, database, sslmode)

	// TranslateError surfaces unique violations as gorm.ErrDuplicatedKey so the
	// store can report DuplicateKey even when a concurrent insert wins the race.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(db); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := createForeignKeyConstraints(db); err != nil {
		logger.Error("Failed to create foreign key constraints", err)
		return nil, err
	}

	if err := createIndexes(db); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	return db, nil
}

// autoMigrate runs auto migration for all models in dependency order.
func autoMigrate(db *gorm.DB) error {
	// Stage 1: tables without foreign keys
	stage1Models := []interface{}{
		&transaction.Transaction{},
		&staff.Staff{},
	}

	for _, model := range stage1Models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: tables referencing stage 1
	stage2Models := []interface{}{
		&pass.Pass{},
		&audit.Audit{},
	}

	for _, model := range stage2Models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return nil
}

// createForeignKeyConstraints enforces pass-to-transaction linkage at the
// engine level as well; the store checks it anyway so a missing transaction is
// reported as NotFound rather than a constraint violation.
func createForeignKeyConstraints(db *gorm.DB) error {
	const constraint = "fk_passes_transaction"

	var count int64
	err := db.Raw(`SELECT COUNT(*) FROM information_schema.table_constraints
		WHERE constraint_name = ? AND table_name = 'passes'`, constraint).Scan(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Exec(`ALTER TABLE passes ADD CONSTRAINT fk_passes_transaction
		FOREIGN KEY (transaction_id) REFERENCES transactions(id)`).Error
}

// createIndexes adds the lookups the report and listing queries lean on.
func createIndexes(db *gorm.DB) error {
	statements := []string{
		`CREATE INDEX IF NOT EXISTS idx_passes_transaction_created ON passes (transaction_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_passes_created_at ON passes (created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_audits_created_at ON audits (created_at)`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
