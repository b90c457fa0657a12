package models

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ContextKey string

const (
	DBContextURL ContextKey = "fincontrol-backend-url"
)

func config() *gorm.Config {
	return &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},

		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Connect opens the SQLite database at dsn, migrates it and configures the connection pool.
func Connect(dsn string) (*gorm.DB, error) {
	// Migration runs with foreign keys disabled since sqlite does not
	// support ALTER COLUMN. Tables are copied to a temporary table,
	// then dropped and recreated.
	db, err := gorm.Open(sqlite.Open(dsn), config())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Now, reconnect with foreign keys enabled
	db, err = gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)), config())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors and serializes
	// all transactions.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = registerCallbacks(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// ConnectPostgres connects to a PostgreSQL database and migrates it.
func ConnectPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), config())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", Classify(err))
	}

	err = migrate(db)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	err = registerCallbacks(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// Open connects to PostgreSQL if dsn is set. Otherwise, it connects to the
// SQLite database at path, creating its directory if necessary.
func Open(dsn, path string) (*gorm.DB, error) {
	if dsn != "" {
		return ConnectPostgres(dsn)
	}

	err := os.MkdirAll(filepath.Dir(path), 0o750)
	if err != nil {
		return nil, fmt.Errorf("could not create data directory: %w", err)
	}

	return Connect(path)
}

// Close closes the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

func registerCallbacks(db *gorm.DB) error {
	cb := db.Callback()

	for _, err := range []error{
		cb.Query().After("*").Register("fincontrol:after_query", queryCallback),
		cb.Query().After("*").Register("fincontrol:after_query_general", generalCallback),
		cb.Create().After("*").Register("fincontrol:after_create", createUpdateCallback),
		cb.Create().After("*").Register("fincontrol:after_create_general", generalCallback),
		cb.Update().After("*").Register("fincontrol:after_update", createUpdateCallback),
		cb.Update().After("*").Register("fincontrol:after_update_general", generalCallback),
		cb.Delete().After("*").Register("fincontrol:after_delete_general", generalCallback),
		cb.Row().After("*").Register("fincontrol:after_row_general", generalCallback),
	} {
		if err != nil {
			return fmt.Errorf("could not register database callback: %w", err)
		}
	}

	return nil
}

var plural = regexp.MustCompile("ies$")

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// The table name is used as the resource name
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")
		name = plural.ReplaceAllString(name, "y")
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback replaces constraint violations with user friendly errors
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	msg := db.Error.Error()
	if strings.Contains(msg, "UNIQUE constraint failed: users.open_id") || strings.Contains(msg, "idx_users_open_id") {
		db.Error = ErrOpenIDNotUnique
	}
}

// generalCallback handles errors we cannot give users helpful messages for.
// The original error is logged and replaced.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	if errors.Is(db.Error, ErrGeneral) || errors.Is(db.Error, ErrUnavailable) {
		return
	}

	classified := Classify(db.Error)
	if errors.Is(classified, ErrGeneral) || errors.Is(classified, ErrUnavailable) {
		log.Error().Str("table", db.Statement.Table).Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = classified
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(append([]any{User{}}, Registry...)...)
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
