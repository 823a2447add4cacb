package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/tartampluch/age-calculator/internal/config"
	"github.com/tartampluch/age-calculator/internal/engine"
	"github.com/tartampluch/age-calculator/internal/share"
)

func newCalcCommand(e *env) *cobra.Command {
	var in dateInput
	var format string

	cmd := &cobra.Command{
		Use:   config.CmdCalc,
		Short: config.CmdDescCalc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != config.ShareText && format != config.ShareJSON {
				return fmt.Errorf("%w: %q", share.ErrUnknownFormat, format)
			}

			birth, err := e.birthDate(in)
			if err != nil {
				return err
			}
			r, err := e.report(birth)
			if err != nil {
				return err
			}
			if !in.last {
				e.remember(birth)
			}

			if format == config.ShareJSON {
				return share.EncodeJSON(cmd.OutOrStdout(), r)
			}
			return renderReport(cmd.OutOrStdout(), r, e.loc, e.prefs.Get())
		},
	}
	in.bind(cmd)
	cmd.Flags().StringVar(&format, config.FlagFormat, config.ShareText, config.FlagDescCalcFormat)
	return cmd
}

func newValidateCommand(e *env) *cobra.Command {
	var in dateInput

	cmd := &cobra.Command{
		Use:   config.CmdValidate,
		Short: config.CmdDescValidate,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, res, err := e.check(in)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.Valid() {
				_, err := fmt.Fprintln(out, e.loc.Msg(config.TKeyLblValid))
				return err
			}
			for _, msg := range e.loc.Issues(res) {
				fmt.Fprintln(out, msg)
			}
			return errInvalidInput
		},
	}
	in.bind(cmd)
	return cmd
}

// report runs the calculation under the performance monitor.
func (e *env) report(birth engine.CalendarDate) (engine.Report, error) {
	slog.Debug(config.MsgCalcRequested, config.LogKeyComponent, config.CompCLI)

	calc := e.loc.Calculator(birth, e.clock)
	var (
		r   engine.Report
		err error
	)
	e.monitor.Track(config.OpReport, func() { r, err = calc.Report() })
	if err != nil {
		return engine.Report{}, err
	}

	slog.Info(config.MsgCalcDone,
		config.LogKeyComponent, config.CompCLI,
		config.LogKeyYears, r.Age.Years,
	)
	return r, nil
}
