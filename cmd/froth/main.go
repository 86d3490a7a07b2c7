// Command froth is the entry point for the froth language core: an
// interactive REPL by default, or a one-shot evaluator over a source
// file with the eval subcommand.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/nikokozak/froth/internal/config"
	"github.com/nikokozak/froth/internal/eval"
	"github.com/nikokozak/froth/internal/interp"
	"github.com/nikokozak/froth/internal/platform"
	"github.com/nikokozak/froth/internal/repl"
)

var (
	configPath     string
	heapSize       uint64
	dsCapacity     int
	rsCapacity     int
	csCapacity     int
	slotTableSize  int
	lineBufferSize int
	tokenNameMax   int
	verbose        bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "froth",
		Short: "froth is a small concatenative, stack-based language core",
	}

	pf := root.PersistentFlags()
	// Accept heap_size as well as heap-size so a froth.toml key can be
	// pasted straight onto the command line.
	pf.SetNormalizeFunc(func(fs *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
	pf.StringVar(&configPath, "config", "", "path to a froth.toml configuration file")
	pf.Uint64Var(&heapSize, "heap-size", 0, "heap size in bytes (overrides config)")
	pf.IntVar(&dsCapacity, "ds-capacity", 0, "data stack capacity (overrides config)")
	pf.IntVar(&rsCapacity, "rs-capacity", 0, "return stack capacity (overrides config)")
	pf.IntVar(&csCapacity, "cs-capacity", 0, "call stack capacity (overrides config)")
	pf.IntVar(&slotTableSize, "slot-table-size", 0, "slot table capacity (overrides config)")
	pf.IntVar(&lineBufferSize, "line-buffer-size", 0, "REPL input line buffer size (overrides config)")
	pf.IntVar(&tokenNameMax, "token-name-max", 0, "maximum identifier length (overrides config)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")

	root.AddCommand(newReplCmd(), newEvalCmd())
	root.RunE = func(cmd *cobra.Command, args []string) error {
		return runRepl(cmd)
	}
	return root
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "start an interactive froth REPL",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd)
		},
	}
}

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <file>",
		Short: "evaluate a froth source file and print the resulting data stack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, args[0])
		},
	}
}

func buildLogger() (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "building logger")
	}
	return logger.Sugar(), nil
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, errors.Wrapf(err, "loading config from %q", configPath)
	}
	if heapSize != 0 {
		cfg.HeapSize = heapSize
	}
	if dsCapacity != 0 {
		cfg.DSCapacity = dsCapacity
	}
	if rsCapacity != 0 {
		cfg.RSCapacity = rsCapacity
	}
	if csCapacity != 0 {
		cfg.CSCapacity = csCapacity
	}
	if slotTableSize != 0 {
		cfg.SlotTableSize = slotTableSize
	}
	if lineBufferSize != 0 {
		cfg.LineBufferSize = lineBufferSize
	}
	if tokenNameMax != 0 {
		cfg.TokenNameMax = tokenNameMax
	}
	return cfg, nil
}

func runRepl(cmd *cobra.Command) error {
	logger, err := buildLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	it, err := interp.NewFromConfig(cfg)
	if err != nil {
		return errors.Wrap(err, "constructing interpreter")
	}

	io, closeIO := newInteractiveIO()
	defer closeIO()

	logger.Infow("starting repl",
		"heap_size", cfg.HeapSize,
		"ds_capacity", cfg.DSCapacity,
		"slot_table_size", cfg.SlotTableSize,
	)

	session := repl.New(io, logger, cfg.TokenNameMax, cfg.LineBufferSize)
	return session.Run(it)
}

// newInteractiveIO wires up peterh/liner when stdin is a real terminal,
// and falls back to the plain byte-oriented stdio adapter otherwise
// (piped input, go test, CI), matching std/compiler/main.go's own
// host-vs-target branching instinct applied here to input source
// instead of compile target.
func newInteractiveIO() (platform.IO, func()) {
	if fileInfo, err := os.Stdin.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		lineIO := platform.NewLinerIO()
		return lineIO, func() { lineIO.Close() } //nolint:errcheck
	}
	return platform.NewStdio(), func() {}
}

func runEval(cmd *cobra.Command, path string) error {
	logger, err := buildLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	it, err := interp.NewFromConfig(cfg)
	if err != nil {
		return errors.Wrap(err, "constructing interpreter")
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %q", path)
	}

	if err := eval.Evaluate(it, source, cfg.TokenNameMax); err != nil {
		logger.Errorw("evaluation failed", "file", path, "error", err)
		return errors.Wrapf(err, "evaluating %q", path)
	}

	fmt.Print(repl.RenderStack(it))
	return nil
}
