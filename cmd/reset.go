package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathlab/internal/progress"
	"github.com/abhisek/mathlab/internal/topics"
)

var resetCmd = &cobra.Command{
	Use:   "reset [topic]",
	Short: "Delete saved progress of a topic, or of every topic with --all",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		if all == (len(args) == 1) {
			return errors.New("give either a topic or --all")
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()
		st, err := e.db()
		if err != nil {
			return err
		}

		targets := e.topics.All()
		if !all {
			t, err := e.topics.Find(args[0])
			if err != nil {
				return err
			}
			targets = []topics.Topic{t}
		}

		out := cmd.OutOrStdout()
		for _, t := range targets {
			n, err := st.DeletePrefix(cmd.Context(), progress.Key(t.Prefix, ""))
			if err != nil {
				return fmt.Errorf("reset %s: %w", t.ID, err)
			}
			e.log.WithField("topic", t.ID).WithField("keys", n).Info("progress reset")
			fmt.Fprintf(out, "%s: removed %d saved values\n", t.ID, n)
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Reset every topic")
}
