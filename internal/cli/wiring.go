package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/idilsaglam/superheroes/internal/config"
	"github.com/idilsaglam/superheroes/internal/repository"
	"github.com/idilsaglam/superheroes/internal/store/jsonstore"
	"github.com/idilsaglam/superheroes/internal/store/memstore"
	"github.com/idilsaglam/superheroes/internal/store/sqlitestore"
)

var errNothingToSeed = errors.New("the memory source is read-only; set source to json or sqlite")

func dataPath(cfg config.Config) (string, error) {
	if cfg.DataPath != "" {
		return cfg.DataPath, nil
	}
	switch cfg.Source {
	case config.SourceJSON:
		return jsonstore.DefaultPath()
	case config.SourceSQLite:
		dir, err := config.Dir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "heroes.db"), nil
	}
	return "", nil
}

// openRepository builds the configured store with latency and logging
// decorators. The returned func releases the store.
func openRepository(ctx context.Context, cfg config.Config, log *zap.Logger) (repository.Repository, func() error, error) {
	noop := func() error { return nil }
	path, err := dataPath(cfg)
	if err != nil {
		return nil, noop, err
	}

	var (
		repo    repository.Repository
		closeFn = noop
	)
	switch cfg.Source {
	case config.SourceMemory:
		s, err := memstore.New(memstore.Sample())
		if err != nil {
			return nil, noop, err
		}
		repo = s
	case config.SourceJSON:
		repo = jsonstore.New(path)
	case config.SourceSQLite:
		s, err := sqlitestore.Open(ctx, path)
		if err != nil {
			return nil, noop, err
		}
		repo, closeFn = s, s.Close
	default:
		return nil, noop, fmt.Errorf("%w: %q", config.ErrUnknownSource, cfg.Source)
	}

	latency, err := cfg.LatencyDuration()
	if err != nil {
		closeFn()
		return nil, noop, err
	}
	repo = repository.WithLatency(repo, latency)
	return repository.WithLogging(repo, log), closeFn, nil
}

// seed writes the sample roster to the configured writable store.
func seed(ctx context.Context, cfg config.Config) (int, string, error) {
	heroes := memstore.Sample()
	path, err := dataPath(cfg)
	if err != nil {
		return 0, "", err
	}
	switch cfg.Source {
	case config.SourceJSON:
		if err := jsonstore.New(path).Save(heroes); err != nil {
			return 0, path, err
		}
	case config.SourceSQLite:
		s, err := sqlitestore.Open(ctx, path)
		if err != nil {
			return 0, path, err
		}
		defer s.Close()
		if err := s.Replace(ctx, heroes); err != nil {
			return 0, path, err
		}
	default:
		return 0, "", errNothingToSeed
	}
	return len(heroes), path, nil
}
