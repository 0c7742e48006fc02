package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/quickdaily/internal/journal"
	"github.com/faizmokh/quickdaily/internal/quickadd"
)

func newPathCommand(ctx context.Context, st *state) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the daily note path for today or a specific date.",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := st.loadSettings()
			if err != nil {
				return err
			}
			at, err := resolveMoment(st.now(), dateFlag, "")
			if err != nil {
				return err
			}

			target, err := st.service().Resolve(*settings, at)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, target.Path)
			if !target.Exists {
				fmt.Fprintln(out, "(file does not exist yet)")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Target date in YYYY-MM-DD (default: today)")

	return cmd
}

func newBlocksCommand(ctx context.Context, st *state) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "blocks",
		Short: "List the headings of the daily note; * marks the configured block.",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := st.loadSettings()
			if err != nil {
				return err
			}
			at, err := resolveMoment(st.now(), dateFlag, "")
			if err != nil {
				return err
			}

			target, err := st.service().Resolve(*settings, at)
			if err != nil {
				return err
			}
			if !target.Exists {
				return fmt.Errorf("%w: %s", quickadd.ErrFileNotFound, target.Path)
			}

			data, err := os.ReadFile(target.Path)
			if err != nil {
				return &journal.IOError{Op: "read", Path: target.Path, Err: err}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", target.Name)
			headings := journal.Headings(journal.ParseDocument(data).Lines)
			if len(headings) == 0 {
				fmt.Fprintln(out, "(no headings)")
				return nil
			}

			configured := strings.TrimSpace(settings.BlockName)
			for _, h := range headings {
				marker := " "
				if h.Text == configured {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %4d  %s\n", marker, h.Index+1, h.Text)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Target date in YYYY-MM-DD (default: today)")

	return cmd
}
