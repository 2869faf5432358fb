// Package viewstate turns a hero roster into what the list screen renders.
package viewstate

import "github.com/idilsaglam/superheroes/internal/model"

// Row is one rendered line of the hero list.
type Row struct {
	Name         string
	ImageURL     string
	BadgeVisible bool
}

// State is everything the list screen needs to draw itself.
type State struct {
	LoadingVisible    bool
	EmptyStateVisible bool
	Rows              []Row
	Err               error
}

// Loading is the state before the first successful fetch.
func Loading() State {
	return State{LoadingVisible: true}
}

// Build produces the state for a fetched roster. Row order follows heroes.
func Build(heroes []model.Hero) State {
	rows := make([]Row, 0, len(heroes))
	for _, h := range heroes {
		rows = append(rows, Row{
			Name:         h.Name,
			ImageURL:     h.ImageURL,
			BadgeVisible: BadgeVisible(h),
		})
	}
	return State{
		EmptyStateVisible: len(heroes) == 0,
		Rows:              rows,
	}
}

// Failed is the state after a fetch error. It is neither loading nor empty.
func Failed(err error) State {
	return State{Err: err}
}

// BadgeVisible reports whether the avenger badge is shown for h.
func BadgeVisible(h model.Hero) bool { return h.IsAvenger }

// Avengers counts rows that carry the badge.
func (s State) Avengers() int {
	n := 0
	for _, r := range s.Rows {
		if r.BadgeVisible {
			n++
		}
	}
	return n
}
