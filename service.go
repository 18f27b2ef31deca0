package rowgroup

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hugr-lab/rowgroup-go/catalog"
)

// Service executes grouping queries and post-processes the materialized
// rows. Query construction stays pure; the service is the only component
// that touches the database. Safe for concurrent use: no state is shared
// between calls.
type Service struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a grouped records service.
// Returns ErrInvalidConfig if the config is invalid (e.g. nil DB).
func New(config ServiceConfig) (*Service, error) {
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return &Service{
		db:     config.DB,
		logger: configLogger(config),
	}, nil
}

// GroupedRecords builds the grouping query for table and spec, executes it,
// and returns the cleaned records in result order plus the deduplicated
// group table ascending by group id. Cancellation is delegated to the
// database through ctx; construction and extraction are synchronous.
func (s *Service) GroupedRecords(ctx context.Context, table *catalog.Table, spec GroupSpec) ([]Record, []Group, error) {
	query, err := BuildQuery(table, spec)
	if err != nil {
		return nil, nil, err
	}

	sqlText := query.SQL()
	s.logger.Debug("executing grouping query",
		"table", table.Name(),
		"mode", spec.Mode,
		"sql", sqlText,
	)

	rows, err := s.db.QueryContext(ctx, sqlText)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to execute grouping query: %w", err)
	}
	defer rows.Close()

	records, err := materializeRows(rows)
	if err != nil {
		return nil, nil, err
	}

	cleaned, groups, err := ExtractGroupMetadata(records, nil)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Debug("grouping query completed",
		"table", table.Name(),
		"rows", len(cleaned),
		"groups", len(groups),
	)
	return cleaned, groups, nil
}

// materializeRows scans all result rows into records, decoding the group
// metadata column into a nested object. Rows are emitted in result order
// with an empty metadata section for the extractor to fill.
func materializeRows(rows *sql.Rows) ([]Record, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	var records []Record
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		data := make(map[string]any, len(columns))
		for i, name := range columns {
			if name == GroupMetadataKey {
				decoded, err := decodeMetadataValue(values[i])
				if err != nil {
					return nil, err
				}
				data[name] = decoded
				continue
			}
			data[name] = values[i]
		}
		records = append(records, Record{
			DefaultDataKey:     data,
			DefaultMetadataKey: map[string]any{},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read result rows: %w", err)
	}
	return records, nil
}

// decodeMetadataValue decodes the group metadata column value. DuckDB
// returns JSON values as strings through database/sql.
func decodeMetadataValue(v any) (map[string]any, error) {
	var raw []byte
	switch val := v.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return val, nil
	case string:
		raw = []byte(val)
	case []byte:
		raw = val
	default:
		return nil, fmt.Errorf("unexpected group metadata value type %T", v)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode group metadata: %w", err)
	}
	return decoded, nil
}
