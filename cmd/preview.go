package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/mathlab/internal/content"
	"github.com/abhisek/mathlab/internal/problem"
	"github.com/abhisek/mathlab/internal/topics"
)

var previewCmd = &cobra.Command{
	Use:   "preview <topic>",
	Short: "Print generated problems of a level (no database)",
	Long: `Generate problems of one level and print them with answers and hints.

This is a stateless developer tool: no database, no progress. Useful for
checking generators after a change.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("level", 1, "Level number, starting at 1")
	previewCmd.Flags().Int("count", 3, "Number of problems to generate")
	previewCmd.Flags().Int64("seed", 0, "Seed for reproducible output (0 picks a random seed)")
	previewCmd.Flags().Bool("yaml", false, "Print YAML instead of text")
}

// previewProblem is the YAML shape of a generated problem.
type previewProblem struct {
	ID        string   `yaml:"id"`
	Category  string   `yaml:"category"`
	Kind      string   `yaml:"kind"`
	Input     string   `yaml:"input,omitempty"`
	Question  string   `yaml:"question"`
	Options   []string `yaml:"options,omitempty"`
	Answer    string   `yaml:"answer,omitempty"`
	AnswerSet []string `yaml:"answer_set,omitempty"`
	Hints     []string `yaml:"hints"`
}

func runPreview(cmd *cobra.Command, args []string) error {
	level, _ := cmd.Flags().GetInt("level")
	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetInt64("seed")
	asYAML, _ := cmd.Flags().GetBool("yaml")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	t, err := newRegistry(cfg).Find(args[0])
	if err != nil {
		return err
	}
	if level < 1 || level > t.Levels.Count() {
		return fmt.Errorf("invalid level %d: %s has levels 1-%d", level, t.ID, t.Levels.Count())
	}
	if count < 1 {
		return fmt.Errorf("invalid count %d: must be at least 1", count)
	}

	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	format, err := content.New(cfg.Display.Locale, quiet)
	if err != nil {
		return err
	}

	r := problem.NewTimeRand()
	if seed != 0 {
		r = problem.NewRand(seed)
	}

	problems := make([]previewProblem, 0, count)
	for range count {
		p, err := t.Levels.Problem(level-1, r)
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}
		problems = append(problems, renderPreview(p, format))
	}

	out := cmd.OutOrStdout()
	if asYAML {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(problems); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	printPreview(out, t, level, problems)
	return nil
}

func renderPreview(p *problem.Problem, format *content.Formatter) previewProblem {
	pp := previewProblem{
		ID:       p.ID,
		Category: p.Category,
		Kind:     string(p.Kind),
		Input:    string(p.Input),
		Question: format.Text(p.Question),
		Answer:   p.Answer,
	}
	for _, o := range p.Options {
		pp.Options = append(pp.Options, format.Option(p, o))
	}
	if p.Kind == problem.KindMultiSelect {
		pp.Answer = ""
		pp.AnswerSet = p.AnswerSet
	} else if p.Kind != problem.KindChoice || p.OptionRender == problem.RenderMath {
		pp.Answer = format.Markup(p.Answer)
	}
	for _, h := range p.Hints {
		pp.Hints = append(pp.Hints, format.Text(h))
	}
	return pp
}

func printPreview(out io.Writer, t topics.Topic, level int, problems []previewProblem) {
	head := color.New(color.Bold).SprintFunc()
	good := color.New(color.FgGreen).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	fmt.Fprintf(out, "%s, level %d: %s\n\n", t.Title, level, problems[0].Category)
	for i, p := range problems {
		fmt.Fprintln(out, head(fmt.Sprintf("── Problem %d/%d ──", i+1, len(problems))))
		fmt.Fprintln(out, p.Question)
		for j, o := range p.Options {
			fmt.Fprintf(out, "  %d) %s\n", j+1, strings.ReplaceAll(o, "\n", "\n     "))
		}
		answer := p.Answer
		if len(p.AnswerSet) > 0 {
			answer = strings.Join(p.AnswerSet, ", ")
		}
		fmt.Fprintf(out, "Answer: %s\n", good(answer))
		for j, h := range p.Hints {
			fmt.Fprintf(out, "%s %s\n", dim(fmt.Sprintf("Hint %d:", j+1)), h)
		}
		fmt.Fprintln(out)
	}
}
