package shared

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// SetupLogger creates a console logger on stderr
func SetupLogger(debug bool) *log.Logger {
	return NewLogger(os.Stderr, debug)
}

// NewLogger creates a console logger writing to w with colored level badges
func NewLogger(w io.Writer, debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
	logger.SetStyles(levelStyles())
	return logger
}

func levelStyles() *log.Styles {
	styles := log.DefaultStyles()
	badge := func(label, color string) lipgloss.Style {
		return lipgloss.NewStyle().
			SetString(label).
			Padding(0, 1).
			Background(lipgloss.Color(color)).
			Foreground(lipgloss.Color("0"))
	}
	styles.Levels[log.DebugLevel] = badge("DEBUG", "63")
	styles.Levels[log.InfoLevel] = badge("INFO", "86")
	styles.Levels[log.WarnLevel] = badge("WARN", "192")
	styles.Levels[log.ErrorLevel] = badge("ERROR", "204")
	styles.Keys["outcome"] = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	styles.Values["outcome"] = lipgloss.NewStyle().Bold(true)
	return styles
}
