// Package tui is the interactive hero browser: a list screen and a detail
// screen, connected through navigation requests.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/idilsaglam/superheroes/internal/localization"
	"github.com/idilsaglam/superheroes/internal/model"
	"github.com/idilsaglam/superheroes/internal/navigation"
	"github.com/idilsaglam/superheroes/internal/repository"
	"github.com/idilsaglam/superheroes/internal/ui"
)

type (
	heroesLoadedMsg struct{ heroes []model.Hero }
	heroesFailedMsg struct{ err error }
	heroLoadedMsg   struct {
		name string
		hero model.Hero
	}
	heroFailedMsg struct {
		name string
		err  error
	}
)

// navigator is the TUI's navigation.Router. The top of the stack is the
// screen on display; an empty stack means the list.
type navigator struct {
	stack *navigation.Stack
}

func (n *navigator) Navigate(req navigation.Request) error {
	if _, err := navigation.HeroName(req); err != nil {
		return err
	}
	n.stack.Push(req)
	return nil
}

func (n *navigator) back() bool {
	_, ok := n.stack.Pop()
	return ok
}

func (n *navigator) current() (navigation.Request, bool) {
	return n.stack.Peek()
}

// Model is the root Bubble Tea model.
type Model struct {
	ctx        context.Context
	repo       repository.Repository
	log        *zap.Logger
	loc        *localization.Localizer
	keys       keyMap
	nav        *navigator
	dispatcher *navigation.Dispatcher

	list   listScreen
	detail detailScreen
	width  int
	height int
}

// New builds the browser over repo. Pass zap.NewNop() to disable logging.
func New(ctx context.Context, repo repository.Repository, loc *localization.Localizer, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	keys := newKeyMap(loc.T(localization.HelpOpen), loc.T(localization.HelpReload), loc.T(localization.HelpBack))
	nav := &navigator{stack: navigation.NewStack()}
	m := Model{
		ctx:        ctx,
		repo:       repo,
		log:        log.Named("tui"),
		loc:        loc,
		keys:       keys,
		nav:        nav,
		dispatcher: navigation.NewDispatcher(nav),
		list:       newListScreen(loc, keys),
	}
	return m.resize(80, 24)
}

// Run starts the program and blocks until the user quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func (m Model) loadHeroes() tea.Cmd {
	ctx, repo := m.ctx, m.repo
	return func() tea.Msg {
		heroes, err := repo.GetAll(ctx)
		if err != nil {
			return heroesFailedMsg{err: err}
		}
		return heroesLoadedMsg{heroes: heroes}
	}
}

func (m Model) fetchHero(name string) tea.Cmd {
	ctx, repo := m.ctx, m.repo
	return func() tea.Msg {
		h, err := repo.GetByName(ctx, name)
		if err != nil {
			return heroFailedMsg{name: name, err: err}
		}
		return heroLoadedMsg{name: name, hero: h}
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.list.spinner.Tick, m.loadHeroes())
}

// resize gives both screens the space inside the frame.
func (m Model) resize(w, h int) Model {
	m.width, m.height = w, h
	m.list = m.list.setSize(w-4, h-2)
	m.detail.width = w - 4
	return m
}

func (m Model) onDetail() bool {
	_, ok := m.nav.current()
	return ok
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil

	case heroesLoadedMsg:
		m.list = m.list.loaded(msg.heroes)
		m.log.Debug("heroes loaded", zap.Int("count", len(msg.heroes)))
		return m, nil

	case heroesFailedMsg:
		m.list = m.list.failed(msg.err)
		m.log.Error("load heroes", zap.Error(msg.err))
		return m, nil

	case heroLoadedMsg:
		if m.onDetail() && m.detail.name == msg.name {
			m.detail = m.detail.loaded(msg.hero)
		}
		return m, nil

	case heroFailedMsg:
		if m.onDetail() && m.detail.name == msg.name {
			m.detail = m.detail.failed(msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.onDetail() {
			return m.updateDetailKeys(msg)
		}
		return m.updateListKeys(msg)
	}

	var listCmd, detailCmd tea.Cmd
	m.list, listCmd = m.list.Update(msg)
	if m.onDetail() {
		m.detail, detailCmd = m.detail.Update(msg)
	}
	return m, tea.Batch(listCmd, detailCmd)
}

func (m Model) updateListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.filtering() {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	switch {
	case key.Matches(msg, m.keys.Open):
		return m.open()
	case key.Matches(msg, m.keys.Reload):
		var cmd tea.Cmd
		m.list, cmd = m.list.reloading()
		return m, tea.Batch(cmd, m.loadHeroes())
	case msg.String() == "esc" && m.list.list.IsFiltered():
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// open dispatches the highlighted row and, once the router accepts the
// request, starts the detail screen for it.
func (m Model) open() (tea.Model, tea.Cmd) {
	pos, ok := m.list.selected()
	if !ok {
		return m, nil
	}
	if err := m.dispatcher.Select(m.list.heroes, pos); err != nil {
		m.log.Error("navigate", zap.Error(err))
		return m, nil
	}
	req, _ := m.nav.current()
	name, _ := navigation.HeroName(req)
	m.log.Debug("open detail", zap.String("name", name))
	m.detail = newDetailScreen(m.loc, m.keys, name, m.width-4)
	return m, tea.Batch(m.detail.spinner.Tick, m.fetchHero(name))
}

func (m Model) updateDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.nav.back()
		return m, nil
	case msg.String() == "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	if m.onDetail() {
		return ui.Box(m.detail.View())
	}
	return ui.Box(m.list.View())
}
