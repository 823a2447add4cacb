package cli

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/tartampluch/age-calculator/internal/config"
	"github.com/tartampluch/age-calculator/internal/engine"
	"github.com/tartampluch/age-calculator/internal/share"
)

func newExportCommand(e *env) *cobra.Command {
	var (
		in     dateInput
		format string
		output string
		name   string
	)

	cmd := &cobra.Command{
		Use:   config.CmdExport,
		Short: config.CmdDescExport,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, err := exportFormat(format, output, e.prefs.Get().ShareFormat)
			if err != nil {
				return err
			}

			birth, err := e.birthDate(in)
			if err != nil {
				return err
			}
			r, err := e.report(birth)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			opts := share.Options{Name: name, Translate: e.loc.Translate}
			if err := share.Encode(&buf, kind, r, opts); err != nil {
				return err
			}

			if output == config.StdoutPath {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if output == "" {
				output = share.FileName(kind)
			}
			if err := os.WriteFile(output, buf.Bytes(), config.FilePermUserRW); err != nil {
				return fmt.Errorf("%s: %w", config.ErrWriteFile, err)
			}

			slog.Info(config.MsgExported,
				config.LogKeyComponent, config.CompCLI,
				config.LogKeyFormat, kind,
				config.LogKeyPath, output,
			)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), e.loc.Format(config.TKeyNotifExported, map[string]any{"File": output}))
			return err
		},
	}
	in.bind(cmd)
	f := cmd.Flags()
	f.StringVar(&format, config.FlagFormat, "", config.FlagDescExportFormat)
	f.StringVarP(&output, config.FlagOutput, "o", "", config.FlagDescOutput)
	f.StringVar(&name, config.FlagName, "", config.FlagDescName)
	return cmd
}

// exportFormat picks the explicit format, then the output extension, then the preference.
func exportFormat(flag, output, preferred string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if output != "" && output != config.StdoutPath {
		if f, err := share.FormatFromPath(output); err == nil {
			return f, nil
		}
	}
	if preferred == "" {
		return "", fmt.Errorf("%w: %q", share.ErrUnknownFormat, preferred)
	}
	return preferred, nil
}

func newImportCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdImport,
		Short: config.CmdDescImport,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("%s: %w", config.ErrOpenFile, err)
			}
			defer func() { _ = f.Close() }()

			contact, err := share.DecodeVCardBirthday(f)
			if err != nil {
				return fmt.Errorf("%s: %w", config.ErrVCardParse, err)
			}

			b := contact.Birth
			var res engine.Result
			e.monitor.Track(config.OpValidate, func() {
				res = engine.NewValidator(e.clock).Validate(b.Day, b.Month, b.Year)
			})
			if !res.Valid() {
				return e.invalid(res)
			}

			r, err := e.report(b)
			if err != nil {
				return err
			}
			e.remember(b)

			slog.Info(config.MsgImported,
				config.LogKeyComponent, config.CompCLI,
				config.LogKeyName, contact.Name,
			)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, e.loc.Format(config.TKeyNotifImported, map[string]any{"File": path}))
			fmt.Fprintln(out, contact.Name)
			return renderReport(out, r, e.loc, e.prefs.Get())
		},
	}
}
