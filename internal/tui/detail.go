package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/superheroes/internal/localization"
	"github.com/idilsaglam/superheroes/internal/model"
	"github.com/idilsaglam/superheroes/internal/repository"
	"github.com/idilsaglam/superheroes/internal/ui"
)

// detailScreen shows one hero, looked up by the name it was opened with.
type detailScreen struct {
	loc     *localization.Localizer
	keys    keyMap
	name    string
	hero    model.Hero
	err     error
	loading bool
	spinner spinner.Model
	width   int
}

func newDetailScreen(loc *localization.Localizer, keys keyMap, name string, width int) detailScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = ui.Current().Accent
	return detailScreen{
		loc:     loc,
		keys:    keys,
		name:    name,
		loading: true,
		spinner: sp,
		width:   width,
	}
}

func (d detailScreen) loaded(h model.Hero) detailScreen {
	d.hero, d.err, d.loading = h, nil, false
	return d
}

func (d detailScreen) failed(err error) detailScreen {
	d.err, d.loading = err, false
	return d
}

func (d detailScreen) Update(msg tea.Msg) (detailScreen, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok && d.loading {
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(tick)
		return d, cmd
	}
	return d, nil
}

func (d detailScreen) View() string {
	t := ui.Current()
	var lines []string
	switch {
	case d.loading:
		lines = append(lines, d.spinner.View()+" "+t.Muted.Render(d.name))
	case errors.Is(d.err, repository.ErrNotFound):
		lines = append(lines, t.Error.Render(d.loc.Tf(localization.HeroNotFound, map[string]any{"Name": d.name})))
	case d.err != nil:
		lines = append(lines, t.Error.Render(d.loc.Tf(localization.LoadFailed, map[string]any{"Error": d.err.Error()})))
	default:
		lines = append(lines, d.heroLines()...)
	}
	lines = append(lines, "", t.Muted.Render(d.keys.Back.Help().Key+" "+d.keys.Back.Help().Desc))
	return strings.Join(lines, "\n")
}

func (d detailScreen) heroLines() []string {
	t := ui.Current()
	head := t.Title.Render(d.hero.Name)
	if d.hero.IsAvenger {
		head += "  " + ui.BadgeCell(true) + " " + t.Accent.Render(d.loc.T(localization.AvengerLabel))
	}
	lines := []string{head}
	if d.hero.ImageURL != "" {
		lines = append(lines, t.Muted.Render(d.hero.ImageURL))
	}
	if d.hero.Description != "" {
		wrap := lipgloss.NewStyle()
		if d.width > 10 {
			wrap = wrap.Width(d.width - 2)
		}
		lines = append(lines, "", wrap.Render(d.hero.Description))
	}
	return lines
}
