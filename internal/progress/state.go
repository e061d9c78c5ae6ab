package progress

import (
	"github.com/abhisek/mathlab/internal/answer"
	"github.com/abhisek/mathlab/internal/problem"
)

// Phase is the state of the current problem.
type Phase string

const (
	PhaseUnanswered        Phase = "unanswered"
	PhaseAnsweredWithHints Phase = "answered-with-hints"
	PhaseAnsweredClean     Phase = "answered-clean"
)

// Answered reports whether the problem is finished.
func (p Phase) Answered() bool {
	return p != PhaseUnanswered
}

// Action is a forward control the learner can take.
type Action string

const (
	ActionSubmit      Action = "submit"
	ActionHint        Action = "hint"
	ActionNextLevel   Action = "next-level"
	ActionNextProblem Action = "next-problem"
	ActionRepeat      Action = "repeat"
)

// Transition records a phase change caused by a submission.
type Transition struct {
	From    Phase
	To      Phase
	Trigger string // "wrong", "hinted", "after-mistake", "clean", "level-passed"

	// Unlocked is the level index unlocked by this transition, or -1.
	Unlocked int
}

// Outcome is the result of a submission.
type Outcome struct {
	// Ignored is set when the machine did not accept a submission in its
	// current state. The other fields are zero.
	Ignored bool

	Result     answer.Result
	Transition Transition

	// Feedback is the catalog text to show the learner.
	Feedback problem.Text
}
