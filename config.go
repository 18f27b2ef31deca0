package rowgroup

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
)

// ServiceConfig contains configuration for the grouped records service.
type ServiceConfig struct {
	// DB is the database handle grouping queries are executed on.
	// The engine must support ranking and cumulative-distribution window
	// functions, first/last-value with unbounded framing, json_object, and
	// common table expressions; DuckDB via duckdb-go satisfies all of them.
	// REQUIRED: MUST NOT be nil.
	DB *sql.DB

	// Logger for internal logging.
	// OPTIONAL: Uses slog.Default() if nil.
	// Note: If LogLevel is specified, a new logger will be created with that level.
	Logger *slog.Logger

	// LogLevel sets the logging level.
	// OPTIONAL: If nil, uses Info level.
	// If Logger is also provided, LogLevel is ignored (use pre-configured logger).
	LogLevel *slog.Level
}

// validateConfig checks required ServiceConfig fields.
func validateConfig(config ServiceConfig) error {
	if config.DB == nil {
		return fmt.Errorf("DB is required")
	}
	return nil
}

// configLogger resolves the logger from the config, applying defaults.
func configLogger(config ServiceConfig) *slog.Logger {
	if config.Logger != nil {
		return config.Logger
	}
	if config.LogLevel != nil {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: *config.LogLevel,
		}))
	}
	return slog.Default()
}
