package navigation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/superheroes/internal/model"
)

type mockRouter struct {
	mock.Mock
}

func (m *mockRouter) Navigate(req Request) error {
	return m.Called(req).Error(0)
}

func givenThereAreSuperHeroes() []model.Hero {
	heroes := make([]model.Hero, 0, 10)
	for i := 0; i < 10; i++ {
		heroes = append(heroes, model.Hero{
			Name:      fmt.Sprintf("Superlopez %d", i),
			IsAvenger: i%2 == 0,
		})
	}
	return heroes
}

func TestSelectFirstRowOpensDetail(t *testing.T) {
	heroes := givenThereAreSuperHeroes()
	router := new(mockRouter)
	router.On("Navigate", mock.MatchedBy(func(r Request) bool {
		return r.Component == ComponentDetail && r.Extras[ExtraHeroName] == "Superlopez 0"
	})).Return(nil).Once()

	require.NoError(t, NewDispatcher(router).Select(heroes, 0))
	router.AssertExpectations(t)
}

func TestSelectUsesTheSameSequence(t *testing.T) {
	heroes := givenThereAreSuperHeroes()
	router := new(mockRouter)
	router.On("Navigate", DetailRequest("Superlopez 7")).Return(nil)

	require.NoError(t, NewDispatcher(router).Select(heroes, 7))
	router.AssertNumberOfCalls(t, "Navigate", 1)
}

func TestSelectReturnsRouterError(t *testing.T) {
	boom := errors.New("boom")
	router := new(mockRouter)
	router.On("Navigate", mock.Anything).Return(boom)

	err := NewDispatcher(router).Select(givenThereAreSuperHeroes(), 3)
	assert.ErrorIs(t, err, boom)
}

func TestSelectOutOfRangePanics(t *testing.T) {
	heroes := givenThereAreSuperHeroes()
	d := NewDispatcher(new(mockRouter))

	assert.Panics(t, func() { _ = d.Select(heroes, -1) })
	assert.Panics(t, func() { _ = d.Select(heroes, len(heroes)) })
	assert.Panics(t, func() { _ = d.Select(nil, 0) })
}

func TestHeroName(t *testing.T) {
	name, err := HeroName(DetailRequest("Hulk"))
	require.NoError(t, err)
	assert.Equal(t, "Hulk", name)

	_, err = HeroName(Request{Component: "settings"})
	assert.ErrorIs(t, err, ErrUnknownComponent)

	_, err = HeroName(Request{Component: ComponentDetail})
	assert.ErrorIs(t, err, ErrMissingExtra)
}

func TestStack(t *testing.T) {
	s := NewStack()
	assert.True(t, s.IsEmpty())
	_, ok := s.Pop()
	assert.False(t, ok)

	s.Push(DetailRequest("Storm"))
	s.Push(DetailRequest("Hulk"))
	assert.Equal(t, 2, s.Len())

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, "Hulk", top.Extras[ExtraHeroName])

	top, ok = s.Pop()
	require.True(t, ok)
	assert.Equal(t, "Hulk", top.Extras[ExtraHeroName])
	assert.Equal(t, 1, s.Len())
}
