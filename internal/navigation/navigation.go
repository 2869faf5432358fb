// Package navigation carries screen-to-screen requests.
//
// A screen never constructs the next screen itself. It hands a Request to a
// Router, which decides what to show. Requests name a target Component and
// carry string extras, so the list screen only has to agree with the detail
// screen on a component name and one key.
package navigation

import (
	"errors"
	"fmt"

	"github.com/idilsaglam/superheroes/internal/model"
)

// Component identifies a navigable screen.
type Component string

const (
	// ComponentDetail is the hero detail screen.
	ComponentDetail Component = "superheroes.detail"

	// ExtraHeroName is the key the detail screen reads the hero name from.
	ExtraHeroName = "super_hero_name_key"
)

var (
	ErrUnknownComponent = errors.New("unknown component")
	ErrMissingExtra     = errors.New("missing extra")
)

// Request is a navigation intent: a target plus its payload.
type Request struct {
	Component Component
	Extras    map[string]string
}

// Extra returns the value stored under key.
func (r Request) Extra(key string) (string, bool) {
	v, ok := r.Extras[key]
	return v, ok
}

// DetailRequest addresses the detail screen for the named hero.
func DetailRequest(name string) Request {
	return Request{
		Component: ComponentDetail,
		Extras:    map[string]string{ExtraHeroName: name},
	}
}

// HeroName extracts the hero name from a detail request.
func HeroName(r Request) (string, error) {
	if r.Component != ComponentDetail {
		return "", fmt.Errorf("%w: %q", ErrUnknownComponent, r.Component)
	}
	name, ok := r.Extra(ExtraHeroName)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingExtra, ExtraHeroName)
	}
	return name, nil
}

// Router consumes navigation requests.
type Router interface {
	Navigate(req Request) error
}

// Dispatcher turns a row selection into a navigation request.
type Dispatcher struct {
	router Router
}

func NewDispatcher(r Router) *Dispatcher {
	return &Dispatcher{router: r}
}

// Select resolves the hero at index in heroes, which must be the same
// sequence the rows were built from, and navigates to its detail screen.
// An index outside [0, len(heroes)) is a programming error and panics.
func (d *Dispatcher) Select(heroes []model.Hero, index int) error {
	if index < 0 || index >= len(heroes) {
		panic(fmt.Sprintf("navigation: row %d selected from %d heroes", index, len(heroes)))
	}
	return d.router.Navigate(DetailRequest(heroes[index].Name))
}
