package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"objmap/datetime"
	"objmap/field"
	"objmap/internal/demo"
	"objmap/record"
	"objmap/schema"
)

const (
	SchemaFlagName          = "schema"
	FormatterConfigFlagName = "formatter-config"
	CanonicalFlagName       = "canonical"
)

// ErrRepeatedStdin is returned when "-" is passed more than once.
var ErrRepeatedStdin = errors.New("standard input can be read only once")

// New creates the root command.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "objmap {load|dump}",
		Short: "Convert record files through a sample schema",
		Long: `objmap reads JSON or YAML records and converts them through one of the
  sample schemas, printing one JSON document per input file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}

	flags := cmd.PersistentFlags()
	flags.String(SchemaFlagName, "message", fmt.Sprintf("schema to convert with, one of %v", demo.Names()))
	flags.String(FormatterConfigFlagName, "", "YAML file configuring the date formatter (default_timezone)")
	flags.Bool(CanonicalFlagName, false, "print canonical JSON (RFC 8785) instead of indented JSON")
	RegisterLoggingFlags(flags)

	cmd.AddCommand(newConvertCommand(field.OpLoad, "Load remote records into local objects"))
	cmd.AddCommand(newConvertCommand(field.OpDump, "Dump local objects into remote records"))

	return cmd
}

func newConvertCommand(op field.Op, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(op) + " FILE...",
		Short: short,
		Long: `Files ending in .yaml or .yml are read as YAML, anything else as JSON.
  "-" reads a JSON record from standard input.`,
		Args: cobra.MatchAll(cobra.MinimumNArgs(1), stdinOnce),
		RunE: func(cmd *cobra.Command, args []string) error {
			return convert(cmd, op, args)
		},
	}
}

// stdinOnce rejects a repeated "-".
func stdinOnce(_ *cobra.Command, args []string) error {
	n := 0
	for _, arg := range args {
		if arg == "-" {
			n++
		}
	}

	if n > 1 {
		return fmt.Errorf("%w: \"-\" given %d times", ErrRepeatedStdin, n)
	}

	return nil
}

func convert(cmd *cobra.Command, op field.Op, paths []string) error {
	logger, err := GetBaseLogger(cmd)
	if err != nil {
		return err
	}

	s, err := setupSchema(cmd, logger)
	if err != nil {
		return err
	}

	canonical, err := cmd.Flags().GetBool(CanonicalFlagName)
	if err != nil {
		return fmt.Errorf("failed to get the canonical flag: %w", err)
	}

	outputs := make([][]byte, len(paths))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		g.Go(func() error {
			rec, err := readRecord(path, cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			out, err := apply(s, op, rec)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			if outputs[i], err = encode(out, canonical); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			logger.Info("record converted", slog.String("file", path), slog.String("op", string(op)))

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, out := range outputs {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), string(out)); err != nil {
			return err
		}
	}

	return nil
}

func setupSchema(cmd *cobra.Command, logger *slog.Logger) (*schema.Schema, error) {
	name, err := cmd.Flags().GetString(SchemaFlagName)
	if err != nil {
		return nil, fmt.Errorf("failed to get the schema from the command flag: %w", err)
	}

	path, err := cmd.Flags().GetString(FormatterConfigFlagName)
	if err != nil {
		return nil, fmt.Errorf("failed to get the formatter config from the command flag: %w", err)
	}

	var formatter datetime.Formatter

	if path != "" {
		cfg, err := datetime.LoadConfig(path)
		if err != nil {
			return nil, err
		}

		formatter = cfg.Formatter()
	}

	return demo.Lookup(name, formatter, schema.WithLogger(logger))
}

func readRecord(path string, stdin io.Reader) (map[string]any, error) {
	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read record: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return record.DecodeYAML(data)
	default:
		return record.DecodeJSON(data)
	}
}

func apply(s *schema.Schema, op field.Op, rec map[string]any) (any, error) {
	if op == field.OpLoad {
		return s.Load(rec)
	}

	return s.Dump(rec)
}

func encode(v any, canonical bool) ([]byte, error) {
	if canonical {
		return record.EncodeCanonical(v)
	}

	data, err := json.MarshalIndent(record.Normalize(v), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}

	return data, nil
}
