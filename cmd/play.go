package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mathlab/internal/app"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start practising",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		seed, _ := cmd.Flags().GetInt64("seed")
		return runApp(cmd, topic, seed)
	},
}

func init() {
	playCmd.Flags().String("topic", "", "Open a topic right away: ap, geo, inequalities or intervals")
	playCmd.Flags().Int64("seed", 0, "Seed for reproducible problems (0 picks a random seed)")
}

// runApp opens the store, builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command, topic string, seed int64) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	e.log.WithField("topic", topic).Info("starting")
	deps := app.Deps{
		Topics:  e.topics,
		Format:  e.format,
		Storage: e.storage,
		Log:     e.log,
		Seed:    seed,
	}
	return app.Run(deps, app.Options{StartTopic: topic})
}
