// Package memstore keeps a fixed roster in memory.
package memstore

import (
	"context"
	"slices"

	"github.com/idilsaglam/superheroes/internal/model"
	"github.com/idilsaglam/superheroes/internal/repository"
)

// Store is a read-only, in-memory repository.
type Store struct {
	heroes []model.Hero
}

// New copies heroes into a store after validating them.
func New(heroes []model.Hero) (*Store, error) {
	if err := repository.Validate(heroes); err != nil {
		return nil, err
	}
	return &Store{heroes: slices.Clone(heroes)}, nil
}

// GetAll returns a copy so callers cannot reorder the roster.
func (s *Store) GetAll(ctx context.Context) ([]model.Hero, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := slices.Clone(s.heroes)
	if out == nil {
		out = []model.Hero{}
	}
	return out, nil
}

func (s *Store) GetByName(ctx context.Context, name string) (model.Hero, error) {
	if err := ctx.Err(); err != nil {
		return model.Hero{}, err
	}
	return repository.Find(s.heroes, name)
}
