// Package sqlitestore keeps the roster in a SQLite database.
// Roster order is the position column, assigned on Replace.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/idilsaglam/superheroes/internal/model"
	"github.com/idilsaglam/superheroes/internal/repository"
)

const schema = `
CREATE TABLE IF NOT EXISTS superheroes (
	position    INTEGER PRIMARY KEY,
	name        TEXT    NOT NULL UNIQUE,
	image_url   TEXT    NOT NULL DEFAULT '',
	is_avenger  INTEGER NOT NULL DEFAULT 0,
	description TEXT    NOT NULL DEFAULT ''
);`

type Store struct {
	db *sql.DB
}

// Open creates the database file and schema if needed.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// one writer; avoids SQLITE_BUSY between pooled connections
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) GetAll(ctx context.Context) ([]model.Hero, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, image_url, is_avenger, description FROM superheroes ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query heroes: %w", err)
	}
	defer rows.Close()

	heroes := []model.Hero{}
	for rows.Next() {
		var h model.Hero
		if err := rows.Scan(&h.Name, &h.ImageURL, &h.IsAvenger, &h.Description); err != nil {
			return nil, fmt.Errorf("scan hero: %w", err)
		}
		heroes = append(heroes, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate heroes: %w", err)
	}
	return heroes, nil
}

func (s *Store) GetByName(ctx context.Context, name string) (model.Hero, error) {
	h := model.Hero{}
	err := s.db.QueryRowContext(ctx,
		`SELECT name, image_url, is_avenger, description FROM superheroes WHERE name = ?`, name).
		Scan(&h.Name, &h.ImageURL, &h.IsAvenger, &h.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Hero{}, repository.NotFound(name)
	}
	if err != nil {
		return model.Hero{}, fmt.Errorf("query hero %q: %w", name, err)
	}
	return h, nil
}

// Replace swaps the whole roster in one transaction.
func (s *Store) Replace(ctx context.Context, heroes []model.Hero) error {
	if err := repository.Validate(heroes); err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM superheroes`); err != nil {
		return fmt.Errorf("clear heroes: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO superheroes (position, name, image_url, is_avenger, description) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, h := range heroes {
		if _, err := stmt.ExecContext(ctx, i, h.Name, h.ImageURL, h.IsAvenger, h.Description); err != nil {
			return fmt.Errorf("insert %q: %w", h.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
