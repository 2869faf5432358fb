package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/idilsaglam/superheroes/internal/model"
)

type loggingRepository struct {
	next Repository
	log  *zap.Logger
}

// WithLogging wraps r so every call is logged with its duration and outcome.
func WithLogging(r Repository, log *zap.Logger) Repository {
	if log == nil {
		log = zap.NewNop()
	}
	return &loggingRepository{next: r, log: log.Named("repository")}
}

func (l *loggingRepository) GetAll(ctx context.Context) ([]model.Hero, error) {
	start := time.Now()
	heroes, err := l.next.GetAll(ctx)
	if err != nil {
		l.log.Error("get all failed", zap.Duration("took", time.Since(start)), zap.Error(err))
		return nil, err
	}
	l.log.Debug("get all", zap.Int("count", len(heroes)), zap.Duration("took", time.Since(start)))
	return heroes, nil
}

func (l *loggingRepository) GetByName(ctx context.Context, name string) (model.Hero, error) {
	start := time.Now()
	h, err := l.next.GetByName(ctx, name)
	switch {
	case errors.Is(err, ErrNotFound):
		l.log.Info("hero not found", zap.String("name", name))
	case err != nil:
		l.log.Error("get by name failed", zap.String("name", name), zap.Error(err))
	default:
		l.log.Debug("get by name", zap.String("name", name), zap.Duration("took", time.Since(start)))
	}
	return h, err
}
