package main

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	FormatFlagName = "logformat"

	FormatJSON = "json"
	FormatText = "text"
)

const (
	LevelFlagName = "loglevel"

	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

var (
	formats = []string{FormatText, FormatJSON}
	levels  = []string{LevelWarn, LevelDebug, LevelInfo, LevelError}
)

// RegisterLoggingFlags adds the log format and level flags. Logs go to the
// command's error output so they never mix with converted records.
//
//	--logformat json   # structured logs
//	--loglevel debug   # include every field conversion failure
func RegisterLoggingFlags(flagset *pflag.FlagSet) {
	flagset.String(FormatFlagName, FormatText, fmt.Sprintf("set the log output format, one of %v", formats))
	flagset.String(LevelFlagName, LevelWarn, fmt.Sprintf("set the logging level, one of %v", levels))
}

// GetBaseLogger creates the logger described by the command's flags.
func GetBaseLogger(cmd *cobra.Command) (*slog.Logger, error) {
	level, err := loggerLevelFromCommand(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to get log level: %w", err)
	}

	format, err := cmd.Flags().GetString(FormatFlagName)
	if err != nil {
		return nil, fmt.Errorf("failed to get the log format from the command flag: %w", err)
	}

	return newLogger(cmd.ErrOrStderr(), format, level)
}

func newLogger(w io.Writer, format string, level slog.Level) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: level}

	switch format {
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case FormatText:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q, want one of %v", format, formats)
	}
}

func loggerLevelFromCommand(cmd *cobra.Command) (slog.Level, error) {
	name, err := cmd.Flags().GetString(LevelFlagName)
	if err != nil {
		return slog.LevelWarn, err
	}

	if !slices.Contains(levels, name) {
		return slog.LevelWarn, fmt.Errorf("invalid log level %q, want one of %v", name, levels)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log level %q: %w", name, err)
	}

	return level, nil
}
