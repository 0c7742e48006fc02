package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/quickdaily/internal/dailyfmt"
)

func newResolveCommand(ctx context.Context, st *state) *cobra.Command {
	var (
		dateFlag   string
		timeFlag   string
		localeFlag string
	)

	cmd := &cobra.Command{
		Use:   "resolve <template>",
		Short: "Print the file name a template resolves to.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := resolveMoment(st.now(), dateFlag, timeFlag)
			if err != nil {
				return err
			}
			if at.IsZero() {
				at = st.now()
			}

			var locale dailyfmt.Locale
			if cmd.Flags().Changed("locale") {
				locale, err = dailyfmt.ParseLocale(localeFlag)
				if err != nil {
					return err
				}
			} else {
				settings, err := st.loadSettings()
				if err != nil {
					return err
				}
				locale = settings.DailyLocale()
			}

			fmt.Fprintln(cmd.OutOrStdout(), dailyfmt.Resolve(args[0], at, locale))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Date in YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&timeFlag, "time", "", "Time in HH:MM or HH:MM:SS (default: now)")
	cmd.Flags().StringVar(&localeFlag, "locale", "", "Weekday localization: zh or none (default: configured)")

	return cmd
}

func newTokensCommand(ctx context.Context, st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens",
		Short: "List the placeholders a daily format may contain.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, tok := range dailyfmt.Tokens() {
				fmt.Fprintf(out, "%-7s %s\n", tok.Text, tok.Description)
			}
			fmt.Fprintln(out, "Any other text, including strftime directives such as %B, is rendered as is.")
			return nil
		},
	}
}
