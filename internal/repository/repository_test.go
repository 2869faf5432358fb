package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/idilsaglam/superheroes/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type sliceRepository []model.Hero

func (s sliceRepository) GetAll(context.Context) ([]model.Hero, error) { return s, nil }
func (s sliceRepository) GetByName(_ context.Context, name string) (model.Hero, error) {
	return Find(s, name)
}

var roster = sliceRepository{
	{Name: "Iron Man", IsAvenger: true},
	{Name: "Wolverine"},
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(nil))
	assert.NoError(t, Validate(roster))

	err := Validate([]model.Hero{{Name: "Hulk"}, {Name: "Hulk"}})
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Contains(t, err.Error(), `"Hulk"`)

	err = Validate([]model.Hero{{Name: "Hulk"}, {Name: "  "}})
	assert.ErrorIs(t, err, ErrInvalidHero)
	assert.Contains(t, err.Error(), "entry 2")
}

func TestFind(t *testing.T) {
	h, err := Find(roster, "Wolverine")
	require.NoError(t, err)
	assert.Equal(t, roster[1], h)

	_, err = Find(roster, "wolverine")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWithLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := WithLogging(roster, zap.New(core))

	heroes, err := r.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, heroes, 2)

	_, err = r.GetByName(context.Background(), "Thanos")
	assert.ErrorIs(t, err, ErrNotFound)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "get all", entries[0].Message)
	assert.Equal(t, int64(2), entries[0].ContextMap()["count"])
	assert.Equal(t, "hero not found", entries[1].Message)
	assert.Equal(t, "repository", entries[1].LoggerName)
}

func TestWithLatencyZeroIsPassthrough(t *testing.T) {
	assert.Equal(t, Repository(roster), WithLatency(roster, 0))
}

func TestWithLatencyDelays(t *testing.T) {
	r := WithLatency(roster, 20*time.Millisecond)

	start := time.Now()
	h, err := r.GetByName(context.Background(), "Iron Man")
	require.NoError(t, err)
	assert.True(t, h.IsAvenger)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestWithLatencyHonorsCancellation(t *testing.T) {
	r := WithLatency(roster, time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	heroes, err := r.GetAll(ctx)
	assert.Nil(t, heroes)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
