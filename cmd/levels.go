package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathlab/internal/progress"
)

var levelsCmd = &cobra.Command{
	Use:   "levels <topic>",
	Short: "List the levels of a topic and which are unlocked",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()
		st, err := e.db()
		if err != nil {
			return err
		}

		t, err := e.topics.Find(args[0])
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		current, err := savedFloat(ctx, st, t.Prefix, progress.FieldLevel)
		if err != nil {
			return err
		}
		unlocked, err := savedFloat(ctx, st, t.Prefix, progress.FieldMaxLevel)
		if err != nil {
			return err
		}
		maxLevel := max(int(unlocked), int(current))

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s)\n", color.New(color.Bold).Sprint(t.Title), t.Rule)
		for i, cat := range t.Levels.Categories() {
			var status string
			switch {
			case i == int(current):
				status = color.CyanString("current")
			case i > maxLevel:
				status = color.New(color.Faint).Sprint("locked")
			case i < maxLevel:
				status = color.GreenString("passed")
			default:
				status = "unlocked"
			}
			fmt.Fprintf(out, "  %2d. %-28s %s\n", i+1, cat, status)
		}
		return nil
	},
}
