package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"github.com/tartampluch/age-calculator/internal/config"
)

func newPrefsCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.CmdPrefs,
		Short: config.CmdDescPrefs,
	}

	show := &cobra.Command{
		Use:   config.CmdPrefsShow,
		Short: config.CmdDescPrefsShow,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings := e.prefs.Get().Settings()
			keys := make([]string, 0, len(settings))
			for key := range settings {
				keys = append(keys, key)
			}
			slices.Sort(keys)
			for _, key := range keys {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), config.FormatSetting, key, settings[key]); err != nil {
					return err
				}
			}
			return nil
		},
	}

	set := &cobra.Command{
		Use:   config.CmdPrefsSet,
		Short: config.CmdDescPrefsSet,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.prefs.Set(args[0], args[1]); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), e.loc.Msg(config.TKeyNotifSaved))
			return err
		},
	}

	reset := &cobra.Command{
		Use:   config.CmdPrefsReset,
		Short: config.CmdDescPrefsRst,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := e.prefs.Reset(); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), e.loc.Msg(config.TKeyNotifSaved))
			return err
		},
	}

	cmd.AddCommand(show, set, reset)
	return cmd
}
