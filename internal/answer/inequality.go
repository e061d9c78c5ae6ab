package answer

import (
	"strings"

	"github.com/abhisek/mathlab/internal/expr"
)

// inequality is a parsed "lhs op rhs".
type inequality struct {
	lhs string
	op  expr.Op
	rhs string
}

var opSpellings = strings.NewReplacer(
	`\leq`, "<=",
	`\geq`, ">=",
	`\le`, "<=",
	`\ge`, ">=",
	"≤", "<=",
	"≥", ">=",
	"=<", "<=",
	"=>", ">=",
	"−", "-",
)

// parseInequality splits on the first operator found, trying the two
// character spellings first. Exactly one operator is allowed.
func parseInequality(s string) (inequality, bool) {
	clean := opSpellings.Replace(strings.ToLower(s))
	clean = strings.Join(strings.Fields(clean), "")

	for _, tok := range []string{"<=", ">=", "<", ">"} {
		i := strings.Index(clean, tok)
		if i < 0 {
			continue
		}
		lhs, rhs := clean[:i], clean[i+len(tok):]
		if lhs == "" || rhs == "" || strings.ContainsAny(lhs+rhs, "<>=") {
			return inequality{}, false
		}
		op, _ := expr.ParseOp(tok)
		return inequality{lhs: lhs, op: op, rhs: rhs}, true
	}
	return inequality{}, false
}

// equivalent accepts the same inequality or its mirror image with the
// operator flipped (x > 5 and 5 < x).
func (a inequality) equivalent(b inequality) bool {
	if a.op == b.op && sameSide(a.lhs, b.lhs) && sameSide(a.rhs, b.rhs) {
		return true
	}
	return a.op == b.op.Flip() && sameSide(a.lhs, b.rhs) && sameSide(a.rhs, b.lhs)
}

func sameSide(a, b string) bool {
	if a == b {
		return true
	}
	x, okA := expr.ParseNum(a)
	y, okB := expr.ParseNum(b)
	return okA && okB && sameNumber(x, y)
}
