package repository

import (
	"context"
	"time"

	"github.com/idilsaglam/superheroes/internal/model"
)

type slowRepository struct {
	next  Repository
	delay time.Duration
}

// WithLatency delays every call by d, like a remote data source would.
// A zero or negative d returns r unchanged.
func WithLatency(r Repository, d time.Duration) Repository {
	if d <= 0 {
		return r
	}
	return &slowRepository{next: r, delay: d}
}

func (s *slowRepository) wait(ctx context.Context) error {
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *slowRepository) GetAll(ctx context.Context) ([]model.Hero, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.next.GetAll(ctx)
}

func (s *slowRepository) GetByName(ctx context.Context, name string) (model.Hero, error) {
	if err := s.wait(ctx); err != nil {
		return model.Hero{}, err
	}
	return s.next.GetByName(ctx, name)
}
