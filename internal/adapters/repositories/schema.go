package repositories

import (
	"context"
	"database/sql"
	"delivery-estimate-service/internal/domain"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Dialect selects placeholder syntax for the SQL drivers in use.
type Dialect int

const (
	DialectPostgres Dialect = iota
	DialectSQLite
)

// placeholders renders n bind parameters: "$1, $2" for Postgres, "?, ?" for SQLite.
func (d Dialect) placeholders(n int) string {
	ph := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		if d == DialectPostgres {
			ph = append(ph, "$"+strconv.Itoa(i))
		} else {
			ph = append(ph, "?")
		}
	}
	return strings.Join(ph, ", ")
}

// InitSchema creates the offers table. The DDL is valid for both Postgres and SQLite.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createOffersQuery := `
	CREATE TABLE IF NOT EXISTS offers (
		position INTEGER PRIMARY KEY,
		code TEXT NOT NULL,
		min_weight DOUBLE PRECISION NOT NULL,
		max_weight DOUBLE PRECISION NOT NULL,
		min_distance DOUBLE PRECISION NOT NULL,
		max_distance DOUBLE PRECISION NOT NULL,
		discount_percent DOUBLE PRECISION NOT NULL,
		CHECK (min_weight <= max_weight),
		CHECK (min_distance <= max_distance),
		CHECK (discount_percent >= 0 AND discount_percent <= 100)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_offers_code
	ON offers(code);
	`

	statements := []string{
		createOffersQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// ReplaceOffers swaps the stored catalog for offers, keeping their order.
func ReplaceOffers(ctx context.Context, db *sql.DB, dialect Dialect, offers []domain.Offer) error {
	if db == nil {
		return errors.New("replace offers: DB is nil")
	}

	for i, o := range offers {
		if err := o.Validate(); err != nil {
			return fmt.Errorf("replace offers: offer #%d: %w", i+1, err)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("replace offers: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM offers;`); err != nil {
		return fmt.Errorf("replace offers: clear table: %w", err)
	}

	query := fmt.Sprintf(`
	INSERT INTO offers (
		position,
		code,
		min_weight,
		max_weight,
		min_distance,
		max_distance,
		discount_percent
	)
	VALUES (%s);
	`, dialect.placeholders(7))

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("replace offers: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, o := range offers {
		if _, err := stmt.ExecContext(ctx, i+1, o.Code, o.MinWeight, o.MaxWeight, o.MinDistance, o.MaxDistance, o.DiscountPercent); err != nil {
			return fmt.Errorf("replace offers: insert code=%q: %w", o.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace offers: commit tx: %w", err)
	}

	return nil
}

// SeedFromJSON populates the offers table from a JSON offer file.
func SeedFromJSON(ctx context.Context, db *sql.DB, dialect Dialect, jsonPath string) error {
	offers, err := ReadOffersJSON(jsonPath)
	if err != nil {
		return fmt.Errorf("seed offers: %w", err)
	}

	if err := ReplaceOffers(ctx, db, dialect, offers); err != nil {
		return fmt.Errorf("seed offers: %w", err)
	}

	return nil
}
