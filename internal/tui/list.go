package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/superheroes/internal/localization"
	"github.com/idilsaglam/superheroes/internal/model"
	"github.com/idilsaglam/superheroes/internal/ui"
	"github.com/idilsaglam/superheroes/internal/viewstate"
)

// listScreen is the hero list. heroes is the exact sequence the rows were
// built from; selection resolves against it.
type listScreen struct {
	loc     *localization.Localizer
	keys    keyMap
	state   viewstate.State
	heroes  []model.Hero
	list    list.Model
	spinner spinner.Model
	width   int
	height  int

	// fetched is set by the first successful fetch; refreshing while a
	// reload of an already fetched roster is in flight.
	fetched    bool
	refreshing bool
}

func newListScreen(loc *localization.Localizer, keys keyMap) listScreen {
	t := ui.Current()

	l := list.New(nil, heroDelegate{}, 0, 0)
	l.Title = loc.T(localization.ListTitle)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	l.Styles.Title = t.Title
	l.Styles.HelpStyle = t.Muted
	l.Styles.PaginationStyle = t.Muted
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName(loc.T(localization.HeroSingular), loc.T(localization.HeroPlural))
	extra := func() []key.Binding { return []key.Binding{keys.Open, keys.Reload} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = t.Accent

	return listScreen{
		loc:     loc,
		keys:    keys,
		state:   viewstate.Loading(),
		list:    l,
		spinner: sp,
	}
}

// loaded applies a fetched roster.
func (s listScreen) loaded(heroes []model.Hero) listScreen {
	s.heroes = heroes
	s.state = viewstate.Build(heroes)
	s.fetched = true
	s.refreshing = false
	s.list.StopSpinner()
	s.list.ResetFilter()
	s.list.SetItems(toItems(s.state.Rows))
	s.list.Title = s.title()
	return s
}

func (s listScreen) failed(err error) listScreen {
	s.heroes = nil
	s.state = viewstate.Failed(err)
	s.refreshing = false
	s.list.StopSpinner()
	s.list.SetItems(nil)
	return s
}

// reloading starts a fetch. Once a roster has been fetched its rows stay on
// screen and only the refresh spinners run; before that it is a plain load.
func (s listScreen) reloading() (listScreen, tea.Cmd) {
	if !s.fetched {
		s.state = viewstate.Loading()
		return s, s.spinner.Tick
	}
	s.refreshing = true
	return s, tea.Batch(s.spinner.Tick, s.list.StartSpinner())
}

func (s listScreen) setSize(w, h int) listScreen {
	s.width, s.height = w, h
	s.list.SetSize(w, h)
	return s
}

func (s listScreen) filtering() bool {
	return s.list.FilterState() == list.Filtering
}

// selected returns the roster position of the highlighted row.
func (s listScreen) selected() (int, bool) {
	if len(s.state.Rows) == 0 {
		return 0, false
	}
	it, ok := s.list.SelectedItem().(heroItem)
	if !ok {
		return 0, false
	}
	return it.pos, true
}

func (s listScreen) title() string {
	t := ui.Current()
	return fmt.Sprintf("%s   %s %d  %s %d",
		s.loc.T(localization.ListTitle),
		ui.BadgeCell(true), s.state.Avengers(),
		t.Accent.Render(s.loc.T(localization.Total)), len(s.state.Rows),
	)
}

func (s listScreen) Update(msg tea.Msg) (listScreen, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var listCmd tea.Cmd
		if s.state.LoadingVisible || s.refreshing {
			s.spinner, cmd = s.spinner.Update(msg)
		}
		if s.refreshing {
			s.list, listCmd = s.list.Update(msg)
		}
		return s, tea.Batch(cmd, listCmd)
	}
	if s.state.LoadingVisible || s.state.EmptyStateVisible || s.state.Err != nil {
		return s, nil
	}
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

func (s listScreen) View() string {
	t := ui.Current()
	switch {
	case s.state.LoadingVisible:
		return s.centered(s.spinner.View() + " " + t.Muted.Render(s.loc.T(localization.Loading)))
	case s.state.Err != nil:
		return s.centered(t.Error.Render(s.loc.Tf(localization.LoadFailed, map[string]any{"Error": s.state.Err.Error()})))
	case s.state.EmptyStateVisible:
		return s.centered(s.loc.T(localization.EmptyCase))
	}
	return s.list.View()
}

// centered puts a single message in the middle of the screen, under the title.
func (s listScreen) centered(msg string) string {
	t := ui.Current()
	head := t.Title.Render(s.loc.T(localization.ListTitle))
	if s.refreshing {
		head += " " + s.spinner.View()
	}
	body := msg
	if s.width > 0 && s.height > 2 {
		body = lipgloss.Place(s.width, s.height-2, lipgloss.Center, lipgloss.Center, msg)
	}
	return strings.Join([]string{head, "", body}, "\n")
}
