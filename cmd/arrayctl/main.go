// Command arrayctl runs a scenario file of array operations and prints the
// resulting contents, one element per line.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"ringarray/internal/config"
	"ringarray/internal/logging"
	"ringarray/internal/scenario"
)

// Populated by ldflags
var (
	version    string
	commitHash string
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.Getenv, afero.NewOsFs()))
}

func run(args []string, stdout, stderr io.Writer, getenv func(string) string, fs afero.Fs) int {
	flagSet := flag.NewFlagSet("arrayctl", flag.ContinueOnError)
	flagSet.SetOutput(stderr)
	formatFlag := flagSet.String("format", "", "Scenario format: toml or yaml (default: from file extension)")
	levelFlag := flagSet.String("log-level", "", "Log level: trace, debug, info, warn, error")
	noColorFlag := flagSet.Bool("no-color", false, "Disable colored log output")
	versionFlag := flagSet.Bool("version", false, "Print version")
	if err := flagSet.Parse(args); err != nil {
		return 2
	}

	if *versionFlag {
		fmt.Fprintln(stdout, "arrayctl version:", version)
		fmt.Fprintln(stdout, "Commit hash:", commitHash)
		return 0
	}

	flags := config.Flags{Format: *formatFlag, LogLevel: *levelFlag}
	flagSet.Visit(func(f *flag.Flag) {
		if f.Name == "no-color" {
			flags.NoColor = noColorFlag
		}
	})

	cfg, err := config.New(flags, getenv)
	if err != nil {
		fmt.Fprintln(stderr, "Config initialization failed:", err)
		return 2
	}
	logger := logging.Initialize(stderr, logging.Options{Level: cfg.LogLevel, NoColor: cfg.NoColor})
	cli := logging.Component("arrayctl")

	if flagSet.NArg() != 1 {
		cli.Error().Int("args", flagSet.NArg()).Msg("Expected exactly one scenario file")
		flagSet.Usage()
		return 2
	}
	return execute(logger, fs, flagSet.Arg(0), cfg.Format, stdout)
}

func execute(logger zerolog.Logger, fs afero.Fs, path string, format string, stdout io.Writer) int {
	s, err := scenario.Load(fs, path, format)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Loading scenario failed")
		return 1
	}

	final, _, err := scenario.NewRunner(logger).Run(s)
	if err != nil {
		logger.Error().Err(err).Msg("Scenario failed")
		return 1
	}

	for v := range final.Values() {
		fmt.Fprintln(stdout, v)
	}
	return 0
}
