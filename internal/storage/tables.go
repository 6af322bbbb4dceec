package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// ReplaceTable implements the analytical sink contract: drop any prior
// table of the same name and bulk-write header + rows as an all-TEXT
// table in one transaction. Returns the number of rows written. Not safe
// against a concurrent writer on the same table name; last writer wins.
func (s *SQLiteStorage) ReplaceTable(ctx context.Context, name string, header []string, rows [][]string) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateTableName(name); err != nil {
		return 0, err
	}
	if len(header) == 0 {
		return 0, fmt.Errorf("header cannot be empty")
	}
	for _, column := range header {
		if err := validateTableName(column); err != nil {
			return 0, fmt.Errorf("invalid column: %w", err)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DROP TABLE IF EXISTS %q`, name)); err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("failed to drop table %s: %w", name, err)
	}

	columns := make([]string, len(header))
	for i, column := range header {
		columns[i] = fmt.Sprintf("%q TEXT", column)
	}
	createQuery := fmt.Sprintf(`CREATE TABLE %q (%s)`, name, strings.Join(columns, ", "))
	if _, err := tx.ExecContext(ctx, createQuery); err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("failed to create table %s: %w", name, err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(header)), ", ")
	insertQuery := fmt.Sprintf(`INSERT INTO %q VALUES (%s)`, name, placeholders)

	var written int64
	for i, row := range rows {
		if len(row) != len(header) {
			_ = tx.Rollback()
			return 0, fmt.Errorf("row %d has %d values, want %d", i, len(row), len(header))
		}
		args := make([]any, len(row))
		for j, v := range row {
			args[j] = v
		}
		if _, err := tx.ExecContext(ctx, insertQuery, args...); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("failed to insert row %d into %s: %w", i, name, err)
		}
		written++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit table %s: %w", name, err)
	}

	slog.Info("replaced table", "table", name, "rows", written)
	return written, nil
}
