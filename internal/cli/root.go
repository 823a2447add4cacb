// Package cli implements the agecalc command-line front end.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/tartampluch/age-calculator/internal/config"
	"github.com/tartampluch/age-calculator/internal/engine"
	"github.com/tartampluch/age-calculator/internal/locale"
	"github.com/tartampluch/age-calculator/internal/perf"
	"github.com/tartampluch/age-calculator/internal/prefs"
)

type options struct {
	lang      string
	now       string
	prefsPath string
	debug     bool
	metrics   bool
}

// env holds the collaborators shared by every subcommand.
// It is filled once the persistent flags are parsed.
type env struct {
	loc       *locale.Localizer
	clock     engine.Clock
	prefs     *prefs.Manager
	lastInput *prefs.LastInputStore
	monitor   *perf.Monitor
}

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		return config.ExitCodeError
	}
	return config.ExitCodeSuccess
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	var opts options
	e := &env{}

	root := &cobra.Command{
		Use:           config.CLIName,
		Short:         config.CmdDescRoot,
		Version:       config.Version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.init(cmd, opts)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if e.monitor == nil {
				return nil
			}
			e.monitor.LogReport()
			if opts.metrics {
				return e.monitor.WriteMetrics(cmd.ErrOrStderr())
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.lang, config.FlagLang, "", config.FlagDescLang)
	pf.StringVar(&opts.now, config.FlagNow, "", config.FlagDescNow)
	pf.StringVar(&opts.prefsPath, config.FlagPrefs, "", config.FlagDescPrefs)
	pf.BoolVar(&opts.debug, config.FlagDebug, false, config.FlagDescDebug)
	pf.BoolVar(&opts.metrics, config.FlagMetrics, false, config.FlagDescMetrics)

	root.AddCommand(
		newCalcCommand(e),
		newValidateCommand(e),
		newExportCommand(e),
		newImportCommand(e),
		newPrefsCommand(e),
		newVersionCommand(),
	)
	return root
}

// init resolves flags over AGECALC_* variables over stored preferences.
func (e *env) init(cmd *cobra.Command, opts options) error {
	vars, err := config.LoadEnv()
	if err != nil {
		return err
	}
	setupLogging(cmd.ErrOrStderr(), opts.debug || vars.Debug)

	store, err := prefs.NewFileStore(firstNonEmpty(opts.prefsPath, vars.PrefsFile))
	if err != nil {
		return err
	}
	if e.prefs, err = prefs.NewManager(store); err != nil {
		return err
	}

	if e.clock, err = referenceClock(opts.now, vars); err != nil {
		return err
	}

	bundle, err := locale.NewBundle()
	if err != nil {
		return err
	}
	e.loc = bundle.Localizer(firstNonEmpty(opts.lang, vars.Language, e.prefs.Get().Language))

	e.lastInput = prefs.NewLastInputStore()
	e.monitor = perf.NewMonitor()

	// Turning the option off forgets the stored date.
	e.prefs.OnChange(func(p prefs.Preferences) {
		if p.RememberLastInput {
			return
		}
		if err := e.lastInput.Clear(); err != nil {
			slog.Warn(config.MsgLastInputFail,
				config.LogKeyComponent, config.CompKeyring,
				config.LogKeyError, err)
		}
	})
	return nil
}

// setupLogging writes text logs to w. Only warnings are shown unless debug is set.
func setupLogging(w io.Writer, debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// referenceClock returns a fixed clock when a reference date is given.
func referenceClock(now string, vars config.Env) (engine.Clock, error) {
	if now != "" {
		vars.Now = now
	}
	t, ok, err := vars.ReferenceTime()
	if err != nil {
		return nil, err
	}
	if !ok {
		return engine.RealClock{}, nil
	}
	return engine.FixedClock{Time: t}, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdVersion,
		Short: config.CmdDescVersion,
		Args:  cobra.NoArgs,
		// Printing the version needs no preferences or locales.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), config.MsgVersionOutput,
				config.AppName, config.Version, runtime.GOOS, runtime.GOARCH)
			return err
		},
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
