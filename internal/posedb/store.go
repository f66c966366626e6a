// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package posedb keeps loaded Datasets in a SQLite database so a trajectory
// can be re-exported with a different selection or reference without going
// back to the raw metadata file.
package posedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/gt-extractor/pkg/types"
)

const dbFile = "poses.db"

// ErrNotFound is returned by Load when no dataset has the requested name.
var ErrNotFound = errors.New("dataset not found")

// Store manages the dataset SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates cfg.Dir/poses.db and creates the schema if it
// does not exist.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS datasets (
			name TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			start_idx INTEGER NOT NULL,
			end_idx INTEGER NOT NULL,
			delimiter TEXT NOT NULL,
			records INTEGER NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS records (
			dataset TEXT NOT NULL REFERENCES datasets(name) ON DELETE CASCADE,
			row_idx INTEGER NOT NULL,
			fields TEXT NOT NULL,
			PRIMARY KEY (dataset, row_idx)
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save stores ds under name, replacing any dataset already saved with that
// name. The whole dataset is written in one transaction.
func (s *Store) Save(ctx context.Context, name, source string, cfg types.LoadConfig, ds types.Dataset) error {
	if name == "" {
		return errors.New("dataset name must not be empty")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM datasets WHERE name = ?`, name); err != nil {
		return fmt.Errorf("deleting old dataset: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO datasets (name, source, start_idx, end_idx, delimiter, records, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		name, source, cfg.StartIdx, cfg.EndIdx, cfg.Delimiter, len(ds),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting dataset: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO records (dataset, row_idx, fields) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range ds {
		if _, err := stmt.ExecContext(ctx, name, i, encodeRecord(rec)); err != nil {
			return fmt.Errorf("inserting row %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// Load returns the dataset saved under name, rows in their original order.
func (s *Store) Load(ctx context.Context, name string) (types.Dataset, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT records FROM datasets WHERE name = ?`, name).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying dataset: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT fields FROM records WHERE dataset = ? ORDER BY row_idx`, name)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	ds := make(types.Dataset, 0, count)
	for rows.Next() {
		var fields string
		if err := rows.Scan(&fields); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		rec, err := decodeRecord(fields)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(ds), err)
		}
		ds = append(ds, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ds) != count {
		return nil, fmt.Errorf("%s: stored %d rows, expected %d", name, len(ds), count)
	}
	return ds, nil
}

// List returns every stored dataset, ordered by name.
func (s *Store) List(ctx context.Context) ([]types.DatasetInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, source, start_idx, end_idx, delimiter, records, created_at
		 FROM datasets ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying datasets: %w", err)
	}
	defer rows.Close()

	var infos []types.DatasetInfo
	for rows.Next() {
		var info types.DatasetInfo
		if err := rows.Scan(&info.Name, &info.Source, &info.StartIdx, &info.EndIdx,
			&info.Delimiter, &info.Records, &info.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning dataset: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// Delete removes the dataset saved under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM datasets WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting dataset: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return nil
}

// encodeRecord stores values in shortest round-trip form, which keeps NaN
// and the infinities intact.
func encodeRecord(rec types.Record) string {
	parts := make([]string, len(rec))
	for i, v := range rec {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}

func decodeRecord(s string) (types.Record, error) {
	if s == "" {
		return types.Record{}, nil
	}
	parts := strings.Split(s, " ")
	rec := make(types.Record, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("decoding field %d: %w", i, err)
		}
		rec[i] = v
	}
	return rec, nil
}
