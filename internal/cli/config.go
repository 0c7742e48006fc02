package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/quickdaily/internal/config"
)

func newConfigCommand(ctx context.Context, st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the saved preferences.",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print every preference.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				settings, err := st.loadSettings()
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, key := range config.Keys() {
					value, err := settings.Get(key)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%-9s = %s\n", key, value)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "get <key>",
			Short: "Print one preference.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				settings, err := st.loadSettings()
				if err != nil {
					return err
				}
				value, err := settings.Get(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), value)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <key> <value...>",
			Short: "Change one preference. Keys: " + strings.Join(config.Keys(), ", "),
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				settings, err := st.loadSettings()
				if err != nil {
					return err
				}
				if err := settings.Set(args[0], strings.Join(args[1:], " ")); err != nil {
					return err
				}
				if err := settings.Save(st.settingsPath); err != nil {
					return fmt.Errorf("save settings: %w", err)
				}
				value, _ := settings.Get(args[0])
				st.logger.Debug().Str("key", args[0]).Str("path", st.settingsPath).Msg("setting saved")
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", strings.ToLower(args[0]), value)
				return nil
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the settings file location.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), st.settingsPath)
				return nil
			},
		},
		&cobra.Command{
			Use:   "toggle <timestamp|theme|collapsed>",
			Short: "Flip a two-state preference.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				settings, err := st.loadSettings()
				if err != nil {
					return err
				}
				var value string
				switch strings.ToLower(args[0]) {
				case "timestamp":
					settings.ToggleTimeStamp()
					value = onOff(settings.TimeStamp)
				case "collapsed":
					settings.ToggleCollapsed()
					value = onOff(settings.Collapsed)
				case "theme":
					settings.ToggleTheme()
					value = string(settings.Theme)
				default:
					return fmt.Errorf("%w %q (expected timestamp|theme|collapsed)", config.ErrUnknownKey, args[0])
				}
				if err := settings.Save(st.settingsPath); err != nil {
					return fmt.Errorf("save settings: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", strings.ToLower(args[0]), value)
				return nil
			},
		},
	)

	return cmd
}
