package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"fsrx/internal/bionic"
	"fsrx/internal/config"
	"fsrx/internal/diag"
	"fsrx/internal/stream"
	"fsrx/ui/tui"
)

var version = "dev"

var pagerRun = tui.Run

const noInputMsg = "No input provided. Text must be provided via stdin or the path to a file."

// app carries the process environment so tests can replace it.
type app struct {
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	environ []string
	getenv  func(string) string
}

type cliFlags struct {
	config   string
	logLevel string
	fixation bionic.Intensity
	saccade  bionic.Intensity
	contrast bool
	coalesce bool
	pager    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := app{
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		environ: os.Environ(),
		getenv:  os.Getenv,
	}.run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

func (a app) run(ctx context.Context, args []string) int {
	cmd := a.newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	err := cmd.ExecuteContext(ctx)
	code := diag.Classify(err)
	if err != nil && code != diag.CodeCancel {
		fmt.Fprintf(a.stderr, "fsrx: %v\n", err)
		if code == diag.CodeUsage {
			fmt.Fprintln(a.stderr, cmd.UsageString())
		}
	}
	return diag.ExitCode(code)
}

func (a app) newRootCmd() *cobra.Command {
	f := cliFlags{fixation: bionic.Medium, saccade: bionic.High}
	cmd := &cobra.Command{
		Use:     "fsrx [path]",
		Short:   "flow state reading in the terminal",
		Long:    "fsrx renders text with a bionic reading emphasis.\nRead a file by path, or pipe text on stdin.",
		Version: version,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("%w: expected at most one path, got %d", diag.ErrUsage, len(args))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return a.execute(cmd, f, path)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", diag.ErrUsage, err)
	})

	fl := cmd.Flags()
	fl.BoolVarP(&f.contrast, "contrast", "c", false, "high contrast: bold the emphasized part of each word")
	fl.VarP(&f.fixation, "fixation", "f", "fixation intensity (l|m|h)")
	fl.VarP(&f.saccade, "saccade", "s", "saccade intensity (l|m|h)")
	fl.BoolVar(&f.coalesce, "coalesce", false, "merge adjacent graphemes of the same style into one escape sequence")
	fl.BoolVar(&f.pager, "pager", false, "show the result in a scrollable full-screen reader when stdout is a terminal")
	fl.StringVar(&f.config, "config", "", "config file (.toml or .yaml); defaults to $FSRX_CONFIG or the user config dir")
	fl.StringVar(&f.logLevel, "log-level", "", "log level on stderr (debug|info|warn|error)")
	return cmd
}

// flagOverlay keeps only the flags set on the command line, so config file
// and environment values are not clobbered by flag defaults.
func flagOverlay(cmd *cobra.Command, f cliFlags) config.Settings {
	var s config.Settings
	fl := cmd.Flags()
	if fl.Changed("fixation") {
		s.Fixation = f.fixation.String()
	}
	if fl.Changed("saccade") {
		s.Saccade = f.saccade.String()
	}
	if fl.Changed("contrast") {
		s.Contrast = config.Bool(f.contrast)
	}
	if fl.Changed("coalesce") {
		s.Coalesce = config.Bool(f.coalesce)
	}
	if fl.Changed("log-level") {
		s.LogLevel = f.logLevel
	}
	return s
}

func (a app) execute(cmd *cobra.Command, f cliFlags, path string) error {
	ctx := cmd.Context()
	cfgPath, explicit := config.Path(f.config, a.getenv)
	settings, err := config.Load(cfgPath, explicit, a.environ, flagOverlay(cmd, f))
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger := diag.NewLogger(a.stderr, settings.LogLevel)
	logger.Debug("effective settings", "comp", "config", "path", cfgPath,
		"fixation", settings.Fixation, "saccade", settings.Saccade,
		"contrast", *settings.Contrast, "coalesce", *settings.Coalesce)

	cfg, err := config.Resolve(settings)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	styler, err := bionic.New(cfg)
	if err != nil {
		return err
	}

	if path == "" && isTerminal(a.stdin) {
		return fmt.Errorf("%w: %s", diag.ErrUsage, noInputMsg)
	}
	in, name, err := a.open(path)
	if err != nil {
		logger.Error("open input", "comp", "cli", "path", path, "err", err)
		return fmt.Errorf("File not found: %w", err)
	}
	defer in.Close()

	if f.pager && isTerminal(a.stdout) {
		return a.page(ctx, logger, styler, in, name)
	}
	st, err := stream.Process(ctx, in, a.stdout, styler)
	if err != nil {
		logger.Error("stream failed", "comp", "stream", "input", name, "line", st.Lines+1, "err", err)
		return err
	}
	logger.Info("stream done", "comp", "stream", "input", name, "lines", st.Lines, "words", st.Words, "bytes", st.Bytes)
	return nil
}

func (a app) page(ctx context.Context, logger *slog.Logger, styler *bionic.Styler, in io.Reader, name string) error {
	lines, st, err := stream.Collect(ctx, in, styler)
	if err != nil {
		return err
	}
	logger.Info("pager start", "comp", "pager", "input", name, "lines", st.Lines)
	err = pagerRun(ctx, tui.Options{Title: name, Config: styler.Config(), Stats: st, Lines: lines, Output: a.stdout})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a app) open(path string) (io.ReadCloser, string, error) {
	if path == "" || path == "-" {
		return io.NopCloser(a.stdin), "stdin", nil
	}
	return stream.Open(path)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
