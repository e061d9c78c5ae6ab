// Package arithmetic generates arithmetic progression problems, one
// generator per level from the definition up to recovering a_n from S_n.
package arithmetic

import (
	"fmt"

	"github.com/abhisek/mathlab/internal/expr"
	"github.com/abhisek/mathlab/internal/levels"
	"github.com/abhisek/mathlab/internal/problem"
)

// Sequence returns the arithmetic progression ladder.
func Sequence() *levels.Sequence {
	return levels.New(
		levels.Level{Category: "Level 1: Definition", Generate: Definition},
		levels.Level{Category: "Level 2: Continue the sequence", Generate: Continuation},
		levels.Level{Category: "Level 3: n-th term formula", Generate: NthTerm},
		levels.Level{Category: "Level 4: Member check", Generate: Membership},
		levels.Level{Category: "Level 5: First term", Generate: FirstTerm},
		levels.Level{Category: "Level 6: Another term", Generate: OtherTerm},
		levels.Level{Category: "Level 7: Sum of the first terms", Generate: Sum},
		levels.Level{Category: "Level 8: Sum with a known last term", Generate: SumToLast},
		levels.Level{Category: "Level 9: Term from the sum formula", Generate: TermFromSum},
		levels.Level{Category: "Level 10: a_n from the sum formula", Generate: FormulaFromSum},
	)
}

// term returns a_n for first term a1 and difference d.
func term(a1, d, n int) int {
	return a1 + (n-1)*d
}

// seqText renders the first three terms followed by an ellipsis.
func seqText(a1, d int) string {
	return expr.JoinInts(a1, a1+d, a1+2*d) + `, \dots`
}

// Definition asks whether a formula defines an arithmetic progression.
func Definition(r *problem.Rand) *problem.Problem {
	if r.Chance(0.6) {
		return linearDefinition(r.Int(2, 6), r.Sign()*r.Int(1, 10))
	}
	return quadraticDefinition(r.Int(2, 4))
}

func linearDefinition(slope, intercept int) *problem.Problem {
	formula := "a_n = " + expr.Linear("n", slope, intercept)
	next := fmt.Sprintf("%d(n+1) %s", slope, expr.PlusInt(intercept))
	diff := fmt.Sprintf(`a_{n+1} - a_n = (%s) - (%s)`, next, expr.Linear("n", slope, intercept))
	expanded := fmt.Sprintf("= %dn + %d %s - %dn %s = %d",
		slope, slope, expr.PlusInt(intercept), slope, expr.PlusInt(-intercept), slope)
	return problem.Choice(
		problem.T("ap.definition.question", formula),
		problem.Yes,
		[]string{problem.Yes, problem.No},
		problem.T("ap.definition.hint.setup"),
		problem.T("ap.definition.hint.difference", diff),
		problem.T("ap.definition.hint.constant", expanded, expr.Int(slope), problem.Yes),
	)
}

func quadraticDefinition(c int) *problem.Problem {
	formula := "a_n = " + expr.Poly("n", expr.Term{Coef: c, Pow: 2}, expr.Term{Coef: 1, Pow: 0})
	diff := fmt.Sprintf(`a_{n+1} - a_n = (%d(n+1)^2 + 1) - (%dn^2 + 1)`, c, c)
	expanded := fmt.Sprintf(`= %d(n^2 + 2n + 1) + 1 - %dn^2 - 1 = %s`,
		c, c, expr.Linear("n", 2*c, c))
	return problem.Choice(
		problem.T("ap.definition.question", formula),
		problem.No,
		[]string{problem.Yes, problem.No},
		problem.T("ap.definition.hint.setup"),
		problem.T("ap.definition.hint.difference", diff),
		problem.T("ap.definition.hint.varies", expanded, problem.No),
	)
}

// Continuation shows three terms and asks for the fourth.
func Continuation(r *problem.Rand) *problem.Problem {
	return continuation(r.Int(1, 15), r.Int(2, 8))
}

func continuation(a1, d int) *problem.Problem {
	last := a1 + 2*d
	ans := expr.Int(a1 + 3*d)
	return problem.Number(
		problem.T("ap.continue.question", seqText(a1, d)),
		ans,
		problem.T("ap.continue.hint.find"),
		problem.T("ap.continue.hint.diff", fmt.Sprintf("%d - %d = %d", a1+d, a1, d), expr.Int(d)),
		problem.T("ap.continue.hint.add", expr.Int(last), expr.Int(d),
			fmt.Sprintf("%d + %d = %s", last, d, ans), ans),
	)
}

// NthTerm asks for a far term of a sequence given by its first terms.
func NthTerm(r *problem.Rand) *problem.Problem {
	return nthTerm(r.Int(2, 20), r.Int(3, 10), r.Int(15, 45))
}

func nthTerm(a1, d, n int) *problem.Problem {
	ans := expr.Int(term(a1, d, n))
	return problem.Number(
		problem.T("ap.nth.question", seqText(a1, d), expr.Int(n), fmt.Sprintf("a_{%d}", n)),
		ans,
		problem.T("ap.hint.formula"),
		problem.T("ap.nth.hint.values", fmt.Sprintf("a_1 = %d, d = %d, n = %d", a1, d, n)),
		problem.T("ap.nth.hint.compute",
			fmt.Sprintf(`a_{%d} = %d + %d \cdot (%d-1) = %s`, n, a1, d, n, ans), ans),
	)
}

// Membership asks whether a value is a term of the progression. Half-step
// differences get a 0.25 offset for non-members, whole ones 0.5, so n-1
// lands strictly between two integers.
func Membership(r *problem.Rand) *problem.Problem {
	member := r.Chance(0.5)
	a1 := r.Int(10, 50)
	decimal := r.Chance(0.6)
	d := float64(r.Sign() * r.Int(2, 8))
	offset := 0.5
	if decimal {
		d /= 2
		offset = 0.25
	}
	n := r.Int(5, 15)
	if member {
		offset = 0
	}
	return membership(float64(a1), d, n, offset)
}

func membership(a1, d float64, n int, offset float64) *problem.Problem {
	target := a1 + float64(n-1)*d + offset
	steps := (target - a1) / d
	member := expr.IsInteger(steps) && steps >= 0

	verdict := "ap.member.hint.natural"
	if !member {
		verdict = "ap.member.hint.notnatural"
	}
	ans := problem.YesNo(member)
	return problem.Choice(
		problem.T("ap.member.question", expr.Num(a1), expr.Num(d), expr.Num(target)),
		ans,
		[]string{problem.Yes, problem.No},
		problem.T("ap.hint.formula"),
		problem.T("ap.member.hint.substitute",
			fmt.Sprintf(`%s = %s + %s \cdot (n-1)`, expr.Num(target), expr.Num(a1), expr.Paren(d))),
		problem.T(verdict,
			fmt.Sprintf(`n - 1 = \frac{%s - %s}{%s} %s`, expr.Num(target), expr.Paren(a1), expr.Paren(d), expr.Approx(steps)),
			fmt.Sprintf(`n %s`, expr.Approx(steps+1)),
			ans),
	)
}

// FirstTerm gives a_n and d and asks for a_1.
func FirstTerm(r *problem.Rand) *problem.Problem {
	return firstTerm(r.Int(1, 20), r.Int(2, 6), r.Int(10, 25))
}

func firstTerm(a1, d, n int) *problem.Problem {
	val := term(a1, d, n)
	shift := (n - 1) * d
	ans := expr.Int(a1)
	return problem.Number(
		problem.T("ap.first.question", fmt.Sprintf("a_{%d} = %d", n, val), fmt.Sprintf("d = %d", d)),
		ans,
		problem.T("ap.hint.formula"),
		problem.T("ap.first.hint.substitute", fmt.Sprintf(`%d = a_1 + %d \cdot (%d-1)`, val, d, n)),
		problem.T("ap.first.hint.isolate",
			fmt.Sprintf("%d = a_1 + %d", val, shift),
			expr.Int(shift), expr.Int(val),
			fmt.Sprintf("a_1 = %d - %d = %s", val, shift, ans),
			ans),
	)
}

// OtherTerm gives one term and d and asks for a later term.
func OtherTerm(r *problem.Rand) *problem.Problem {
	return otherTerm(r.Int(1, 20), r.Int(2, 6), r.Int(5, 15), r.Int(16, 30))
}

func otherTerm(a1, d, known, target int) *problem.Problem {
	knownVal := term(a1, d, known)
	ans := expr.Int(term(a1, d, target))
	return problem.Number(
		problem.T("ap.other.question", fmt.Sprintf("a_{%d}", target),
			fmt.Sprintf("a_{%d} = %d", known, knownVal), fmt.Sprintf("d = %d", d)),
		ans,
		problem.T("ap.other.hint.plan"),
		problem.T("ap.other.hint.first",
			fmt.Sprintf("%d = a_1 + %d(%d-1)", knownVal, d, known),
			fmt.Sprintf("a_1 = %d - %d = %d", knownVal, d*(known-1), a1)),
		problem.T("ap.other.hint.target", fmt.Sprintf("a_{%d}", target),
			fmt.Sprintf("a_{%d} = %d + %d(%d-1) = %d + %d = %s", target, a1, d, target, a1, d*(target-1), ans),
			ans),
	)
}

// sumOf returns S_n of the progression.
func sumOf(a1, d, n int) int {
	return n * (2*a1 + (n-1)*d) / 2
}

// Sum asks for S_n, explained through one of two equivalent formulas.
func Sum(r *problem.Rand) *problem.Problem {
	return sum(r.Int(1, 10), r.Int(2, 5), r.Int(3, 50), r.Chance(0.5))
}

func sum(a1, d, n int, endpoints bool) *problem.Problem {
	s := sumOf(a1, d, n)
	ans := expr.Int(s)
	q := problem.T("ap.sum.question", expr.Int(n), fmt.Sprintf("S_{%d}", n), seqText(a1, d))
	if endpoints {
		an := term(a1, d, n)
		return problem.Number(q, ans,
			problem.T("ap.sum.hint.formula", `S_n = \frac{a_1 + a_n}{2} \cdot n`),
			problem.T("ap.sum.hint.last",
				fmt.Sprintf("a_1 = %d, n = %d", a1, n),
				fmt.Sprintf("a_{%d}", n),
				fmt.Sprintf(`a_{%d} = a_1 + d(n-1) = %d + %d \cdot %d = %d`, n, a1, d, n-1, an)),
			problem.T("ap.sum.hint.compute",
				fmt.Sprintf(`S_{%d} = \frac{%d + %d}{2} \cdot %d = \frac{%d}{2} \cdot %d = %s`, n, a1, an, n, a1+an, n, ans),
				ans),
		)
	}
	top := 2*a1 + (n-1)*d
	return problem.Number(q, ans,
		problem.T("ap.sum.hint.formula", `S_n = \frac{2a_1 + d(n-1)}{2} \cdot n`),
		problem.T("ap.sum.hint.values", fmt.Sprintf("a_1 = %d, d = %d, n = %d", a1, d, n)),
		problem.T("ap.sum.hint.compute",
			fmt.Sprintf(`S_{%d} = \frac{2 \cdot %d + %d(%d-1)}{2} \cdot %d = \frac{%d + %d}{2} \cdot %d = \frac{%d}{2} \cdot %d = %s`,
				n, a1, d, n, n, 2*a1, d*(n-1), n, top, n, ans),
			ans),
	)
}

// SumToLast asks for the sum of a finite progression given by its first
// terms and its last term. The hints derive n first.
func SumToLast(r *problem.Rand) *problem.Problem {
	return sumToLast(r.Int(-10, 10), r.NonZero(-5, 5), r.Int(15, 35))
}

func sumToLast(a1, d, n int) *problem.Problem {
	last := term(a1, d, n)
	ans := expr.Int(sumOf(a1, d, n))
	seq := fmt.Sprintf(`%s, \dots, %d`, expr.JoinInts(a1, a1+d, a1+2*d), last)
	return problem.Number(
		problem.T("ap.sumlast.question", seq),
		ans,
		problem.T("ap.sumlast.hint.known", fmt.Sprintf("a_1 = %d", a1), fmt.Sprintf("a_n = %d", last)),
		problem.T("ap.sumlast.hint.count",
			fmt.Sprintf("d = a_2 - a_1 = %d - %s = %d", a1+d, expr.ParenInt(a1), d),
			fmt.Sprintf(`%d = %d + %s \cdot (n-1)`, last, a1, expr.ParenInt(d)),
			fmt.Sprintf("%d = %d(n-1)", last-a1, d),
			fmt.Sprintf("n-1 = %d : %s = %d", last-a1, expr.ParenInt(d), n-1),
			fmt.Sprintf("n = %d", n)),
		problem.T("ap.sumlast.hint.compute",
			fmt.Sprintf(`S_{%d} = \frac{%d + %s}{2} \cdot %d = \frac{%d}{2} \cdot %d = %s`,
				n, a1, expr.ParenInt(last), n, a1+last, n, ans),
			ans),
	)
}

// sumCoefficients picks S_n = A·n² + B·n with a_1 = A + B in [1, 10] and
// A ≠ 0, so d = 2A is never zero.
func sumCoefficients(r *problem.Rand) (a, b int) {
	a = r.Int(-5, 5)
	if a == 0 {
		a = 2
	}
	return a, r.Int(1, 10) - a
}

func sumFormula(a, b int) string {
	return "S_n = " + expr.Poly("n", expr.Term{Coef: a, Pow: 2}, expr.Term{Coef: b, Pow: 1})
}

func evalSum(a, b, n int) int {
	return a*n*n + b*n
}

// TermFromSum gives S_n = A·n² + B·n and asks for a_k = S_k - S_{k-1}.
func TermFromSum(r *problem.Rand) *problem.Problem {
	a, b := sumCoefficients(r)
	return termFromSum(a, b, r.Int(3, 8))
}

func termFromSum(a, b, k int) *problem.Problem {
	sk := evalSum(a, b, k)
	sk1 := evalSum(a, b, k-1)
	ans := expr.Int(sk - sk1)
	sLine := func(n, s int) string {
		return fmt.Sprintf(`S_{%d} = %d \cdot %d^2 + %s \cdot %d = %d + %s = %d`,
			n, a, n, expr.ParenInt(b), n, a*n*n, expr.ParenInt(b*n), s)
	}
	return problem.Number(
		problem.T("ap.termsum.question", sumFormula(a, b), expr.Int(k), fmt.Sprintf("a_{%d}", k)),
		ans,
		problem.T("ap.termsum.hint.property", fmt.Sprintf("a_{%d} = S_{%d} - S_{%d}", k, k, k-1)),
		problem.T("ap.termsum.hint.sums", sLine(k, sk), sLine(k-1, sk1)),
		problem.T("ap.termsum.hint.subtract",
			fmt.Sprintf("a_{%d} = S_{%d} - S_{%d} = %d - %s = %s", k, k, k-1, sk, expr.ParenInt(sk1), ans),
			ans),
	)
}

// FormulaFromSum gives S_n and asks to pick the closed form of a_n.
func FormulaFromSum(r *problem.Rand) *problem.Problem {
	a, b := sumCoefficients(r)
	return formulaFromSum(r, a, b)
}

func formulaFromSum(r *problem.Rand, a, b int) *problem.Problem {
	a1 := a + b
	d := 2 * a
	c := a1 - d
	closed := func(coef, konst int) string {
		return "a_n = " + expr.Linear("n", coef, konst)
	}
	ans := closed(d, c)
	options := problem.Distractors(r, ans, 4,
		func() string { return closed(d+r.Int(-2, 2), c+r.Int(-5, 5)) },
		func(i int) string { return closed(d, c+10*i) },
	)

	s2 := evalSum(a, b, 2)
	a2 := s2 - a1
	return problem.MathChoice(
		problem.T("ap.formulasum.question", sumFormula(a, b)),
		ans,
		options,
		problem.T("ap.formulasum.hint.plan"),
		problem.T("ap.formulasum.hint.terms",
			fmt.Sprintf(`a_1 = S_1 = %d \cdot 1^2 + %s \cdot 1 = %d`, a, expr.ParenInt(b), a1),
			fmt.Sprintf(`S_2 = %d \cdot 2^2 + %s \cdot 2 = %d`, a, expr.ParenInt(b), s2),
			fmt.Sprintf("a_2 = S_2 - S_1 = %d - %s = %d", s2, expr.ParenInt(a1), a2)),
		problem.T("ap.formulasum.hint.close",
			fmt.Sprintf("d = a_2 - a_1 = %d - %s = %d", a2, expr.ParenInt(a1), d),
			fmt.Sprintf("a_n = %d + %s(n-1)", a1, expr.ParenInt(d)),
			ans),
	)
}
