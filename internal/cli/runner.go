package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	"github.com/idilsaglam/superheroes/internal/config"
	"github.com/idilsaglam/superheroes/internal/localization"
	"github.com/idilsaglam/superheroes/internal/logging"
	"github.com/idilsaglam/superheroes/internal/model"
	"github.com/idilsaglam/superheroes/internal/repository"
	"github.com/idilsaglam/superheroes/internal/tui"
	"github.com/idilsaglam/superheroes/internal/ui"
	"github.com/idilsaglam/superheroes/internal/viewstate"
)

// Options tune output behavior from root flags.
type Options struct {
	Group      bool   // print grouped by avengers/others
	ConfigPath string // explicit config file; must exist when set
	Theme      string // overrides the configured theme
}

// session is what every subcommand runs with.
type session struct {
	cfg config.Config
	loc *localization.Localizer
	log *zap.Logger
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0
	case "ls", "print", "show", "seed":
	default:
		ui.Fail("unknown subcommand: " + cmd)
		fmt.Fprintln(os.Stderr)
		PrintHelp()
		return 2
	}

	s, err := newSession(opt)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	defer s.log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch cmd {
	case "ls":
		return s.doList(ctx)
	case "print":
		return s.doPrint(ctx, opt)
	case "show":
		if len(a) == 0 {
			ui.Fail("usage: superheroes show <name...>")
			return 2
		}
		return s.doShow(ctx, strings.Join(a, " "))
	case "seed":
		return s.doSeed(ctx)
	}
	return 2
}

func newSession(opt Options) (*session, error) {
	path, required := opt.ConfigPath, opt.ConfigPath != ""
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	cfg, err := config.Load(path, required)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if opt.Theme != "" {
		cfg.Theme = opt.Theme
	}
	ui.SetTheme(cfg.Theme)

	loc, err := localization.New(cfg.Language)
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, err
	}
	log.Debug("config loaded", zap.String("path", path), zap.String("source", cfg.Source))
	return &session{cfg: cfg, loc: loc, log: log}, nil
}

func PrintHelp() {
	fmt.Printf(`superheroes - browse a super hero roster

Usage:
  superheroes [flags] <subcommand> [args]

Flags:
  -config <path>     config file (YAML or TOML, default ~/.superheroes/config.yaml)
  -theme <name>      classic, neon or mono
  -group             print avengers and others separately

Subcommands:
  ls                 Browse heroes (interactive TUI)
  print              Print the roster
  show <name...>     Show one hero
  seed               Write the sample roster to the json/sqlite store

Examples:
  superheroes ls
  superheroes -group print
  superheroes show Iron Man
  SUPERHEROES_SOURCE=sqlite superheroes seed
`)
}

// -------------- subcommand impls ----------------

func (s *session) doList(ctx context.Context) int {
	repo, closeRepo, err := openRepository(ctx, s.cfg, s.log)
	if err != nil {
		ui.Fail("open: " + err.Error())
		return 1
	}
	defer closeRepo()

	if err := tui.Run(ctx, tui.New(ctx, repo, s.loc, s.log)); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

func (s *session) doPrint(ctx context.Context, opt Options) int {
	repo, closeRepo, err := openRepository(ctx, s.cfg, s.log)
	if err != nil {
		ui.Fail("open: " + err.Error())
		return 1
	}
	defer closeRepo()

	heroes, err := repo.GetAll(ctx)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	state := viewstate.Build(heroes)
	t := ui.Current()

	header := fmt.Sprintf("%s   %s %d  %s %d",
		t.Title.Render(s.loc.T(localization.ListTitle)),
		ui.BadgeCell(true), state.Avengers(),
		t.Accent.Render(s.loc.T(localization.Total)), len(state.Rows),
	)
	lines := []string{header, t.Muted.Render(ui.ShareBar(state.Avengers(), len(state.Rows), 28)), ""}

	switch {
	case state.EmptyStateVisible:
		lines = append(lines, s.loc.T(localization.EmptyCase))
	case opt.Group:
		lines = append(lines, s.groupLines(state.Rows)...)
	default:
		lines = append(lines, flatLines(state.Rows)...)
	}
	if !state.EmptyStateVisible {
		lines = append(lines, "", t.Muted.Render(s.loc.Tf(localization.PrintTip, map[string]any{"Name": state.Rows[0].Name})))
	}
	ui.Panel(lines)
	return 0
}

func (s *session) doShow(ctx context.Context, name string) int {
	repo, closeRepo, err := openRepository(ctx, s.cfg, s.log)
	if err != nil {
		ui.Fail("open: " + err.Error())
		return 1
	}
	defer closeRepo()

	h, err := repo.GetByName(ctx, name)
	if errors.Is(err, repository.ErrNotFound) {
		ui.Fail(s.loc.Tf(localization.HeroNotFound, map[string]any{"Name": name}))
		return 1
	}
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	ui.Panel(s.detailLines(h))
	return 0
}

func (s *session) doSeed(ctx context.Context) int {
	n, path, err := seed(ctx, s.cfg)
	if errors.Is(err, errNothingToSeed) {
		ui.Fail("seed: " + err.Error())
		return 2
	}
	if err != nil {
		ui.Fail("seed: " + err.Error())
		return 1
	}
	s.log.Info("seeded", zap.Int("count", n), zap.String("path", path))
	ui.OK(fmt.Sprintf("seeded %d heroes into %s", n, path))
	return 0
}

// -------------- rendering helpers --------------

func flatLines(rows []viewstate.Row) []string {
	out := make([]string, 0, len(rows))
	for i, r := range rows {
		idx := fmt.Sprintf("%2d.", i+1)
		name := truncate(r.Name, 60)
		out = append(out, fmt.Sprintf("%s %s %s",
			ui.Current().Muted.Render(idx), ui.BadgeCell(r.BadgeVisible), name))
	}
	return out
}

// truncate shortens s to at most n runes, ending in "..." when cut.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func (s *session) groupLines(rows []viewstate.Row) []string {
	var avengers, others []viewstate.Row
	for _, r := range rows {
		if r.BadgeVisible {
			avengers = append(avengers, r)
		} else {
			others = append(others, r)
		}
	}
	t := ui.Current()
	section := func(title string, rows []viewstate.Row) []string {
		lines := []string{t.Accent.Render(title)}
		if len(rows) == 0 {
			return append(lines, t.Muted.Render("(none)"))
		}
		return append(lines, flatLines(rows)...)
	}
	lines := section(s.loc.T(localization.Avengers), avengers)
	lines = append(lines, "")
	return append(lines, section(s.loc.T(localization.Others), others)...)
}

func (s *session) detailLines(h model.Hero) []string {
	t := ui.Current()
	head := t.Title.Render(h.Name)
	if viewstate.BadgeVisible(h) {
		head += "  " + ui.BadgeCell(true) + " " + t.Accent.Render(s.loc.T(localization.AvengerLabel))
	}
	lines := []string{head}
	if h.ImageURL != "" {
		lines = append(lines, t.Muted.Render(h.ImageURL))
	}
	if h.Description != "" {
		lines = append(lines, "", h.Description)
	}
	return lines
}
