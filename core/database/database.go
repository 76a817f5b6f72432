package database

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the configured database and verifies it with a ping.
// Driver errors are translated by gorm, so uniqueness violations surface as
// gorm.ErrDuplicatedKey regardless of the dialect.
func Connect(cfg Config) (*gorm.DB, error) {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	cfg.TimeoutSeconds = timeout

	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	// gorm's own logger stays silent; the application logs through zap.
	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.IsMemory() {
		// Every sqlite connection to :memory: is a separate database.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Close releases the pool behind db. A nil db is a no-op.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Dialector returns the gorm dialector for the configured driver.
func Dialector(cfg Config) (gorm.Dialector, error) {
	switch cfg.Driver {
	case DriverSQLite, "":
		return sqlite.Open(SQLiteDSN(cfg)), nil
	case DriverMySQL:
		return mysql.Open(MySQLDSN(cfg)), nil
	case DriverPostgres:
		return postgres.Open(PostgresDSN(cfg)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
}

// SQLiteDSN builds the sqlite DSN with foreign key enforcement switched on.
// Transactions begin IMMEDIATE so concurrent writers wait on busy_timeout
// instead of failing when a read lock is upgraded.
func SQLiteDSN(cfg Config) string {
	name := cfg.Name
	if name == "" {
		name = "estoque.db"
	}
	sep := "?"
	if strings.Contains(name, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s_foreign_keys=on&_busy_timeout=%d&_txlock=immediate", name, sep, cfg.TimeoutSeconds*1000)
}

// MySQLDSN builds a go-sql-driver DSN. Special characters in the password are URL encoded.
func MySQLDSN(cfg Config) string {
	userInfo := url.UserPassword(cfg.User, cfg.Password).String()
	port := cfg.Port
	if port == 0 {
		port = 3306
	}
	t := cfg.TimeoutSeconds
	return fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
		userInfo, cfg.Host, port, cfg.Name, t, t, t)
}

// PostgresDSN builds a libpq style keyword/value DSN.
func PostgresDSN(cfg Config) string {
	port := cfg.Port
	if port == 0 {
		port = 5432
	}
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password='%s' dbname=%s sslmode=%s connect_timeout=%d",
		cfg.Host, port, cfg.User, strings.ReplaceAll(cfg.Password, "'", `\'`), cfg.Name, sslMode, cfg.TimeoutSeconds)
}
