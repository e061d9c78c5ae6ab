package problem

// Choice builds a single-answer multiple choice problem.
func Choice(question Text, answer string, options []string, hints ...Text) *Problem {
	return &Problem{
		Kind:         KindChoice,
		Options:      options,
		OptionRender: RenderPlain,
		Question:     question,
		Answer:       answer,
		Hints:        hints,
	}
}

// MathChoice is Choice with options drawn as formulas.
func MathChoice(question Text, answer string, options []string, hints ...Text) *Problem {
	p := Choice(question, answer, options, hints...)
	p.OptionRender = RenderMath
	return p
}

// Number builds a typed numeric answer problem.
func Number(question Text, answer string, hints ...Text) *Problem {
	return &Problem{
		Kind:     KindInput,
		Input:    InputNumber,
		Question: question,
		Answer:   answer,
		Hints:    hints,
	}
}

// Inequality builds a typed "x <op> value" answer problem.
func Inequality(question Text, answer string, hints ...Text) *Problem {
	return &Problem{
		Kind:     KindInput,
		Input:    InputInequality,
		Question: question,
		Answer:   answer,
		Hints:    hints,
	}
}

// MultiSelect builds a pick-every-match problem.
func MultiSelect(question Text, answers, options []string, hints ...Text) *Problem {
	return &Problem{
		Kind:         KindMultiSelect,
		Options:      options,
		OptionRender: RenderPlain,
		Question:     question,
		AnswerSet:    answers,
		Hints:        hints,
	}
}

// MaxDistractorTries bounds the random phase of Distractors.
const MaxDistractorTries = 50

// Distractors collects options until there are n distinct non-empty ones,
// correct included. Random candidates come from gen; once MaxDistractorTries
// is spent, fallback(1), fallback(2), ... fill the rest. The result is
// shuffled.
func Distractors(r *Rand, correct string, n int, gen func() string, fallback func(i int) string) []string {
	opts := []string{correct}
	seen := map[string]bool{correct: true}
	add := func(s string) {
		if s != "" && !seen[s] {
			seen[s] = true
			opts = append(opts, s)
		}
	}
	for try := 0; len(opts) < n && try < MaxDistractorTries; try++ {
		add(gen())
	}
	for i := 1; len(opts) < n; i++ {
		add(fallback(i))
	}
	Shuffle(r, opts)
	return opts
}
