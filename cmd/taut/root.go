package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/user/tautology"
	"github.com/user/tautology/packages/config"
	"github.com/user/tautology/packages/logger"
)

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	cfg     *config.Config
	log     logger.Logger
	checker *tautology.Checker
	format  tautology.Format
	palette tautology.Palette
}

func RootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "taut",
		Short:        "Check propositional sentences for tautologies",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "path to a YAML config file")
	pf.String("log-level", "", "log level (debug, info, warn, error, disabled)")
	pf.Bool("log-json", false, "write logs as JSON")
	pf.StringP("format", "o", "", "output format (text, json, yaml)")
	pf.String("color", "", "colorize output (auto, always, never)")

	root.AddCommand(
		checkCmd(a),
		batchCmd(a),
		tableCmd(),
		treeCmd(),
		fmtCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger.NewLogger(&logger.Config{
		Level:      logger.LogLevel(cfg.Log.Level),
		Output:     cmd.ErrOrStderr(),
		JSON:       cfg.Log.JSON,
		TimeFormat: "15:04:05",
	})
	a.checker, err = tautology.NewFromConfig(cfg, a.log)
	if err != nil {
		return err
	}
	a.format, err = tautology.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	a.palette = setupColor(cfg.Output.Color, cmd.OutOrStdout())
	cmd.SetContext(logger.ContextWithLogger(cmd.Context(), a.log))

	a.log.Debug("configuration loaded",
		"file", path,
		"format", cfg.Output.Format,
		"max_variables", cfg.Check.MaxVariables,
		"cache_size", cfg.Check.CacheSize,
		"parallel", cfg.Check.Parallel,
	)
	return nil
}

// applyFlags overrides cfg with the flags set on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		v, err := flags.GetString("log-level")
		if err != nil {
			return fmt.Errorf("failed to get log-level flag: %w", err)
		}
		cfg.Log.Level = v
	}
	if flags.Changed("log-json") {
		v, err := flags.GetBool("log-json")
		if err != nil {
			return fmt.Errorf("failed to get log-json flag: %w", err)
		}
		cfg.Log.JSON = v
	}
	if flags.Changed("format") {
		v, err := flags.GetString("format")
		if err != nil {
			return fmt.Errorf("failed to get format flag: %w", err)
		}
		cfg.Output.Format = v
	}
	if flags.Changed("color") {
		v, err := flags.GetString("color")
		if err != nil {
			return fmt.Errorf("failed to get color flag: %w", err)
		}
		cfg.Output.Color = v
	}
	return nil
}

// setupColor decides whether text output is colored. In auto mode colors
// are only used when out is a terminal.
func setupColor(mode string, out io.Writer) tautology.Palette {
	switch mode {
	case "never":
		color.NoColor = true
		return tautology.PlainPalette()
	case "always":
		color.NoColor = false
	default:
		color.NoColor = !isTerminal(out)
	}
	return tautology.ColorPalette()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// readSentences returns the non-blank lines of r. With comments set, lines
// starting with '#' are skipped as well.
func readSentences(r io.Reader, comments bool) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || (comments && strings.HasPrefix(line, "#")) {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sentences: %w", err)
	}
	return out, nil
}
