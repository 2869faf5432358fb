// Package repository defines the data contract the presentation layer reads
// heroes through, plus decorators shared by every store.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/idilsaglam/superheroes/internal/model"
)

var (
	// ErrNotFound is returned by GetByName when no hero has the given name.
	ErrNotFound = errors.New("super hero not found")
	// ErrDuplicateName is returned when a roster names the same hero twice.
	ErrDuplicateName = errors.New("duplicate super hero name")
	// ErrInvalidHero is returned for heroes without a name.
	ErrInvalidHero = errors.New("invalid super hero")
)

// Repository supplies the full roster and single-hero lookup by name.
// GetAll returns heroes in roster order; callers rely on that order.
type Repository interface {
	GetAll(ctx context.Context) ([]model.Hero, error)
	GetByName(ctx context.Context, name string) (model.Hero, error)
}

// Validate checks that every hero has a name and that names are unique.
func Validate(heroes []model.Hero) error {
	seen := make(map[string]struct{}, len(heroes))
	for i, h := range heroes {
		if strings.TrimSpace(h.Name) == "" {
			return fmt.Errorf("%w: entry %d has an empty name", ErrInvalidHero, i+1)
		}
		if _, dup := seen[h.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateName, h.Name)
		}
		seen[h.Name] = struct{}{}
	}
	return nil
}

// Find looks a hero up by exact name in an already loaded roster.
func Find(heroes []model.Hero, name string) (model.Hero, error) {
	for _, h := range heroes {
		if h.Name == name {
			return h, nil
		}
	}
	return model.Hero{}, NotFound(name)
}

// NotFound wraps ErrNotFound with the name that was asked for.
func NotFound(name string) error {
	return fmt.Errorf("%w: %q", ErrNotFound, name)
}
