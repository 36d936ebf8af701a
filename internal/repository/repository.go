// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
// Every query uses an explicit column list and positional parameters.
package repository

import (
	"errors"
	"fmt"

	"github.com/deppfellow/portfolio-api/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// collectOne scans exactly one row into T, turning "no rows" into a
// not-found error named after table.
func collectOne[T any](rows pgx.Rows, table string, id int64) (*T, error) {
	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("id %d: %w", id, sqlerr.NotFound(table))
		}
		return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
	}
	return &item, nil
}

// collectAll scans every row into T.
func collectAll[T any](rows pgx.Rows, table string) ([]T, error) {
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s rows: %w", table, err)
	}
	return items, nil
}

// expectAffected reports a not-found error when a write matched no row.
func expectAffected(tag pgconn.CommandTag, table string, id int64) error {
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("id %d: %w", id, sqlerr.NotFound(table))
	}
	return nil
}
