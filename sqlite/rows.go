// Package sqlite provides a SQLite-backed row source for report fills. It
// runs a caller-supplied query through database/sql and converts each result
// row into the core.Row mapping the templating core consumes.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/asaidimu/go-weft/core"
	"go.uber.org/zap"
)

// RowSource produces core.Row values from a SQLite database. It does not own
// the *sql.DB; closing the connection remains the caller's responsibility.
type RowSource struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewRowSource creates a RowSource on an open database connection.
func NewRowSource(db *sql.DB, logger *zap.Logger) *RowSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RowSource{
		db:     db,
		logger: logger,
	}
}

// Rows executes the query and returns every result row as a core.Row keyed
// by column name. BLOB and TEXT columns scan as []byte and are converted to
// strings so directive filters can consume them directly; numeric columns
// keep their scanned Go type.
func (s *RowSource) Rows(ctx context.Context, query string, args ...any) ([]core.Row, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}

	var results []core.Row
	for rows.Next() {
		values := make([]any, len(columns))
		scanArgs := make([]any, len(columns))
		for i := range values {
			scanArgs[i] = &values[i]
		}

		if err := rows.Scan(scanArgs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(core.Row, len(columns))
		for i, col := range columns {
			switch val := values[i].(type) {
			case []byte:
				row[col] = string(val)
			default:
				row[col] = val
			}
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration failed: %w", err)
	}

	s.logger.Debug("Fetched rows for report", zap.Int("count", len(results)))
	return results, nil
}
