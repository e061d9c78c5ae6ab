package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathlab/internal/progress"
	"github.com/abhisek/mathlab/internal/store"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List topics with saved progress",
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

		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		id := color.New(color.FgCyan, color.Bold).SprintFunc()
		dim := color.New(color.Faint).SprintFunc()

		for _, t := range e.topics.All() {
			pct, err := savedFloat(ctx, st, t.Prefix, progress.FieldProgress)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%-22s %-24s %s  %s\n",
				id(t.ID), t.Title, dim(fmt.Sprintf("%2d levels", t.Levels.Count())), progressColor(pct))
		}
		return nil
	},
}

func progressColor(pct float64) string {
	s := fmt.Sprintf("%3.0f%%", pct)
	switch {
	case pct >= 100:
		return color.GreenString(s)
	case pct > 0:
		return color.YellowString(s)
	default:
		return color.New(color.Faint).Sprint(s)
	}
}

// saved reads a progress field of prefix straight from the store.
func saved(ctx context.Context, st *store.Store, prefix, field string) (string, bool, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	v, err := st.Get(ctx, progress.Key(prefix, field))
	if errors.Is(err, store.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// savedFloat reads a numeric field; missing and malformed values read as 0.
func savedFloat(ctx context.Context, st *store.Store, prefix, field string) (float64, error) {
	v, ok, err := saved(ctx, st, prefix, field)
	if err != nil || !ok {
		return 0, err
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, nil
	}
	return f, nil
}
