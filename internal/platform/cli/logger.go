package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger builds the command logger writing to w at the named level.
func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "matchduel",
	})
	if level == "" {
		return logger, nil
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("cli: log level: %w", err)
	}
	logger.SetLevel(lvl)
	return logger, nil
}
