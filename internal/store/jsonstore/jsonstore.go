package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/superheroes/internal/model"
	"github.com/idilsaglam/superheroes/internal/repository"
)

// JSON-backed roster. Single file, human-readable, portable.
// The file is re-read on every call so edits show up on reload.

const dataFileName = "heroes.json"

// DefaultPath is heroes.json in the working directory.
func DefaultPath() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, dataFileName), nil
}

type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// Load reads the roster. A missing file is an empty roster.
func (s *Store) Load() ([]model.Hero, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Hero{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var heroes []model.Hero
	if err := json.Unmarshal(b, &heroes); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if heroes == nil {
		heroes = []model.Hero{}
	}
	if err := repository.Validate(heroes); err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return heroes, nil
}

// Save replaces the roster on disk.
func (s *Store) Save(heroes []model.Hero) error {
	if err := repository.Validate(heroes); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	b, err := json.MarshalIndent(heroes, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func (s *Store) GetAll(ctx context.Context) ([]model.Hero, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.Load()
}

func (s *Store) GetByName(ctx context.Context, name string) (model.Hero, error) {
	if err := ctx.Err(); err != nil {
		return model.Hero{}, err
	}
	heroes, err := s.Load()
	if err != nil {
		return model.Hero{}, err
	}
	return repository.Find(heroes, name)
}
