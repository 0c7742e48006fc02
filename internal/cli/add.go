package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/quickdaily/internal/quickadd"
)

func newAddCommand(ctx context.Context, st *state) *cobra.Command {
	var (
		dateFlag      string
		timeFlag      string
		blockFlag     string
		timestampFlag bool
		noTimestamp   bool
		clipboardFlag bool
		stdinFlag     bool
	)

	cmd := &cobra.Command{
		Use:   "add [text...]",
		Short: "Insert text under the configured block of today's daily note.",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := st.loadSettings()
			if err != nil {
				return err
			}

			text, err := st.readText(args, clipboardFlag, stdinFlag)
			if err != nil {
				return err
			}

			at, err := resolveMoment(st.now(), dateFlag, timeFlag)
			if err != nil {
				return err
			}

			req := quickadd.Request{Settings: *settings, Text: text, At: at}
			if cmd.Flags().Changed("timestamp") {
				req.Settings.TimeStamp = timestampFlag
			}
			if noTimestamp {
				req.Settings.TimeStamp = false
			}
			if blockFlag != "" {
				req.Settings.BlockName = blockFlag
			}

			res, err := st.service().Add(ctx, req)
			if err != nil {
				return err
			}

			settings.QuickAddText = text
			if err := settings.Save(st.settingsPath); err != nil {
				st.logger.Warn().Err(err).Str("path", st.settingsPath).Msg("save quick add text")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Added to %s under %s\n", res.Target.Name, res.Insertion.Section.Heading)
			if req.Settings.TimeStamp {
				fmt.Fprintf(out, "%s\n", res.Insertion.Text)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Target date in YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&timeFlag, "time", "", "Time in HH:MM or HH:MM:SS (default: now)")
	cmd.Flags().StringVar(&blockFlag, "block", "", "Block heading to insert under (default: configured block)")
	cmd.Flags().BoolVar(&timestampFlag, "timestamp", false, "Append [HH:MM:SS] to the text (default: configured)")
	cmd.Flags().BoolVar(&noTimestamp, "no-timestamp", false, "Do not append a timestamp")
	cmd.Flags().BoolVar(&clipboardFlag, "clipboard", false, "Read the text from the system clipboard")
	cmd.Flags().BoolVar(&stdinFlag, "stdin", false, "Read the text from standard input")
	cmd.MarkFlagsMutuallyExclusive("timestamp", "no-timestamp")

	return cmd
}
