package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/superheroes/internal/cli"
)

func main() {
	// Root flags (apply to every subcommand)
	groupAvengers := flag.Bool("group", false, "print avengers and others separately")
	configPath := flag.String("config", "", "config file (YAML or TOML)")
	theme := flag.String("theme", "", "classic, neon or mono")
	flag.Parse()

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		os.Exit(2)
	}

	code := cli.Run(args, cli.Options{
		Group:      *groupAvengers,
		ConfigPath: *configPath,
		Theme:      *theme,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
