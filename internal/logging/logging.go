// Package logging sets up the zerolog console logger used by arrayctl.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	colorBold   = 1
	colorRed    = 31
	colorGreen  = 32
	colorYellow = 33
)

func colorize(s string, c int, disabled bool) string {
	if disabled {
		return s
	}
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", c, s)
}

// Options controls the console output.
type Options struct {
	Level   zerolog.Level
	NoColor bool
}

// New returns a console logger writing to w.
func New(w io.Writer, opts Options) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    opts.NoColor,
		TimeFormat: time.RFC3339,
	}
	output.FormatLevel = formatLevel(opts.NoColor)

	return zerolog.New(output).Level(opts.Level).With().Timestamp().Logger()
}

// Initialize installs a console logger on out as the global logger.
// Files such as os.Stderr are wrapped so colors also work on Windows consoles.
func Initialize(out io.Writer, opts Options) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if f, ok := out.(*os.File); ok {
		out = colorable.NewColorable(f)
	}
	logger := New(out, opts)
	log.Logger = logger
	return logger
}

// Component returns a child of the global logger tagged with name.
func Component(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// formatLevel renders the level as a fixed-width "| LEVEL |" column.
// arrayctl only logs at debug, info, warn and error; anything else is shown
// upper-cased without color.
func formatLevel(noColor bool) zerolog.Formatter {
	return func(i interface{}) string {
		level, _ := i.(string)
		var l string
		switch level {
		case zerolog.LevelDebugValue:
			l = colorize("DEBUG", colorYellow, noColor)
		case zerolog.LevelInfoValue:
			l = colorize("INFO ", colorGreen, noColor)
		case zerolog.LevelWarnValue:
			l = colorize("WARN ", colorRed, noColor)
		case zerolog.LevelErrorValue:
			l = colorize(colorize("ERROR", colorRed, noColor), colorBold, noColor)
		case "":
			l = "???  "
		default:
			l = fmt.Sprintf("%-5.5s", strings.ToUpper(level))
		}
		return fmt.Sprintf("| %s |", l)
	}
}
