package postgres

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to establish a Postgres
// connection.
type Config struct {
	URL     string
	Timeout time.Duration
}

// managedHostSuffixes identifies hosted database providers that require TLS.
var managedHostSuffixes = []string{
	".neon.tech",
	".rds.amazonaws.com",
	".postgres.database.azure.com",
	".supabase.co",
}

// NormalizeDSN rewrites legacy connection strings into the form the pgx
// driver expects and force-enables encrypted transport for managed hosted
// targets that do not specify an sslmode.
func NormalizeDSN(raw string) string {
	for _, prefix := range []string{"postgresql+psycopg://", "postgresql://"} {
		if strings.HasPrefix(raw, prefix) {
			raw = "postgres://" + strings.TrimPrefix(raw, prefix)
			break
		}
	}

	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	if isManagedHost(u.Hostname()) && u.Query().Get("sslmode") == "" {
		q := u.Query()
		q.Set("sslmode", "require")
		u.RawQuery = q.Encode()
	}
	return u.String()
}

func isManagedHost(host string) bool {
	for _, suffix := range managedHostSuffixes {
		if strings.HasSuffix(host, suffix) {
			return true
		}
	}
	return false
}

// Connect opens a GORM connection, verifies connectivity with a ping, and
// applies pool limits. A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*gorm.DB, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	db, err := gorm.Open(postgres.Open(NormalizeDSN(cfg.URL)), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return db, nil
}

// Migrate creates the users and goals tables when absent. Schema evolution
// beyond create-if-absent is out of scope.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&userRecord{}, &goalRecord{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
