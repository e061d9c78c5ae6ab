// Package geometric generates geometric progression problems. Numbers are
// kept small: ratios of 2 to 4 and indices below 10.
package geometric

import (
	"fmt"

	"github.com/abhisek/mathlab/internal/expr"
	"github.com/abhisek/mathlab/internal/levels"
	"github.com/abhisek/mathlab/internal/problem"
)

// Sequence returns the geometric progression ladder.
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
		levels.Level{Category: "Level 10: b_n from the sum formula", Generate: FormulaFromSum},
	)
}

func term(b1, q, n int) int {
	return b1 * expr.IntPow(q, n-1)
}

func sumOf(b1, q, n int) int {
	return b1 * (expr.IntPow(q, n) - 1) / (q - 1)
}

func seqText(b1, q int) string {
	return expr.JoinInts(b1, b1*q, b1*q*q) + `, \dots`
}

// Definition asks whether a formula defines a geometric progression.
func Definition(r *problem.Rand) *problem.Problem {
	if r.Chance(0.6) {
		return exponentialDefinition(r.Int(2, 4), r.Int(2, 5))
	}
	return quadraticDefinition(r.Int(2, 4))
}

func exponentialDefinition(m, base int) *problem.Problem {
	return problem.Choice(
		problem.T("geo.definition.question", fmt.Sprintf(`b_n = %d \cdot %d^n`, m, base)),
		problem.Yes,
		[]string{problem.Yes, problem.No},
		problem.T("geo.definition.hint.setup"),
		problem.T("geo.definition.hint.ratio",
			fmt.Sprintf(`\frac{b_{n+1}}{b_n} = \frac{%d \cdot %d^{n+1}}{%d \cdot %d^n}`, m, base, m, base)),
		problem.T("geo.definition.hint.constant",
			fmt.Sprintf(`= \frac{%d^{n+1}}{%d^n} = %d`, base, base, base), expr.Int(base), problem.Yes),
	)
}

func quadraticDefinition(c int) *problem.Problem {
	return problem.Choice(
		problem.T("geo.definition.question", fmt.Sprintf("b_n = %dn^2", c)),
		problem.No,
		[]string{problem.Yes, problem.No},
		problem.T("geo.definition.hint.setup"),
		problem.T("geo.definition.hint.ratio",
			fmt.Sprintf(`\frac{b_{n+1}}{b_n} = \frac{%d(n+1)^2}{%dn^2} = \frac{(n+1)^2}{n^2}`, c, c)),
		problem.T("geo.definition.hint.varies",
			`= (1 + \frac{1}{n})^2`, "n = 1", "4", "n = 2", "2.25", problem.No),
	)
}

// Continuation shows three terms and asks for the fourth.
func Continuation(r *problem.Rand) *problem.Problem {
	return continuation(r.Int(1, 5), r.Int(2, 4))
}

func continuation(b1, q int) *problem.Problem {
	last := b1 * q * q
	ans := expr.Int(last * q)
	return problem.Number(
		problem.T("geo.continue.question", seqText(b1, q)),
		ans,
		problem.T("geo.continue.hint.find"),
		problem.T("geo.continue.hint.ratio", fmt.Sprintf(`q = \frac{%d}{%d} = %d`, b1*q, b1, q), expr.Int(q)),
		problem.T("geo.continue.hint.multiply", expr.Int(last), expr.Int(q),
			fmt.Sprintf(`%d \cdot %d = %s`, last, q, ans), ans),
	)
}

// NthTerm asks for b_n of a sequence given by its first terms.
func NthTerm(r *problem.Rand) *problem.Problem {
	return nthTerm(r.Int(1, 5), r.Int(2, 3), r.Int(5, 8))
}

func nthTerm(b1, q, n int) *problem.Problem {
	ans := expr.Int(term(b1, q, n))
	return problem.Number(
		problem.T("geo.nth.question", seqText(b1, q), expr.Int(n), fmt.Sprintf("b_{%d}", n)),
		ans,
		problem.T("geo.hint.formula"),
		problem.T("geo.nth.hint.values", fmt.Sprintf("b_1 = %d, q = %d, n = %d", b1, q, n)),
		problem.T("geo.nth.hint.compute",
			fmt.Sprintf(`b_{%d} = %d \cdot %d^{%d-1} = %d \cdot %d%s = %s`, n, b1, q, n, b1, q, expr.Power(n-1), ans),
			ans),
	)
}

// powerOf returns k with q^k = v, or -1 when v is no power of q.
func powerOf(v, q int) int {
	for k, p := 0, 1; p <= v; k, p = k+1, p*q {
		if p == v {
			return k
		}
	}
	return -1
}

// Membership asks whether a value is a term. Non-members are a term plus
// a small offset, rejected again if the result happens to be a term.
func Membership(r *problem.Rand) *problem.Problem {
	b1 := r.Int(1, 5)
	q := r.Int(2, 3)
	n := r.Int(4, 7)
	target := term(b1, q, n)
	if r.Chance(0.5) {
		return membership(b1, q, target)
	}
	for {
		t := target + r.Int(1, q-1)
		if t%q == 0 {
			t++
		}
		if t%b1 != 0 || powerOf(t/b1, q) < 0 {
			return membership(b1, q, t)
		}
		target += b1
	}
}

func membership(b1, q, target int) *problem.Problem {
	ratio := float64(target) / float64(b1)
	solve := fmt.Sprintf(`%d^{n-1} = \frac{%d}{%d} %s`, q, target, b1, expr.Approx(ratio))

	var verdict problem.Text
	switch {
	case target%b1 != 0:
		verdict = problem.T("geo.member.hint.fraction", solve, expr.Num(expr.Round(ratio, 3)), expr.Int(q), problem.No)
	case powerOf(target/b1, q) >= 0:
		k := powerOf(target/b1, q)
		verdict = problem.T("geo.member.hint.power", solve,
			fmt.Sprintf("%d%s = %d", q, expr.Power(k), target/b1), fmt.Sprintf("n = %d", k+1), problem.Yes)
	default:
		v := target / b1
		k := 0
		for expr.IntPow(q, k+1) <= v {
			k++
		}
		verdict = problem.T("geo.member.hint.between", solve, expr.Int(v),
			fmt.Sprintf("%d%s = %d", q, expr.Power(k), expr.IntPow(q, k)),
			fmt.Sprintf("%d%s = %d", q, expr.Power(k+1), expr.IntPow(q, k+1)),
			problem.No)
	}
	return problem.Choice(
		problem.T("geo.member.question", expr.Int(b1), expr.Int(q), expr.Int(target)),
		verdict.LastArg(),
		[]string{problem.Yes, problem.No},
		problem.T("geo.hint.formula"),
		problem.T("geo.member.hint.substitute", fmt.Sprintf(`%d = %d \cdot %d^{n-1}`, target, b1, q)),
		verdict,
	)
}

// FirstTerm gives b_n and q and asks for b_1.
func FirstTerm(r *problem.Rand) *problem.Problem {
	return firstTerm(r.Int(1, 10), r.Int(2, 4), r.Int(3, 6))
}

func firstTerm(b1, q, n int) *problem.Problem {
	val := term(b1, q, n)
	pow := expr.IntPow(q, n-1)
	ans := expr.Int(b1)
	return problem.Number(
		problem.T("geo.first.question", fmt.Sprintf("b_{%d} = %d", n, val), fmt.Sprintf("q = %d", q)),
		ans,
		problem.T("geo.hint.formula"),
		problem.T("geo.first.hint.substitute", fmt.Sprintf(`%d = b_1 \cdot %d^{%d-1}`, val, q, n)),
		problem.T("geo.first.hint.isolate",
			fmt.Sprintf(`%d = b_1 \cdot %d`, val, pow),
			fmt.Sprintf("b_1 = %d : %d = %s", val, pow, ans),
			ans),
	)
}

// OtherTerm gives one term and q and asks for a later one.
func OtherTerm(r *problem.Rand) *problem.Problem {
	return otherTerm(r.Int(1, 5), r.Int(2, 3), r.Int(2, 4), r.Int(5, 7))
}

func otherTerm(b1, q, known, target int) *problem.Problem {
	knownVal := term(b1, q, known)
	ans := expr.Int(term(b1, q, target))
	gap := target - known
	return problem.Number(
		problem.T("geo.other.question", fmt.Sprintf("b_{%d}", target),
			fmt.Sprintf("b_{%d} = %d", known, knownVal), fmt.Sprintf("q = %d", q)),
		ans,
		problem.T("geo.other.hint.property", `b_k = b_m \cdot q^{k-m}`),
		problem.T("geo.other.hint.apply", fmt.Sprintf(`b_{%d} = b_{%d} \cdot q^{%d-%d}`, target, known, target, known)),
		problem.T("geo.other.hint.compute",
			fmt.Sprintf(`b_{%d} = %d \cdot %d%s = %d \cdot %d = %s`, target, knownVal, q, expr.Power(gap), knownVal, expr.IntPow(q, gap), ans),
			ans),
	)
}

// Sum asks for S_n of a sequence given by its first terms.
func Sum(r *problem.Rand) *problem.Problem {
	return sum(r.Int(1, 5), r.Int(2, 3), r.Int(4, 6))
}

func sum(b1, q, n int) *problem.Problem {
	ans := expr.Int(sumOf(b1, q, n))
	qn := expr.IntPow(q, n)
	return problem.Number(
		problem.T("geo.sum.question", expr.Int(n), fmt.Sprintf("S_{%d}", n), seqText(b1, q)),
		ans,
		problem.T("geo.sum.hint.formula", `S_n = \frac{b_1(q^n - 1)}{q - 1}`),
		problem.T("geo.sum.hint.values", fmt.Sprintf("b_1 = %d, q = %d, n = %d", b1, q, n)),
		problem.T("geo.sum.hint.compute",
			fmt.Sprintf(`S_{%d} = \frac{%d(%d%s - 1)}{%d - 1} = \frac{%d \cdot %d}{%d} = %s`,
				n, b1, q, expr.Power(n), q, b1, qn-1, q-1, ans),
			ans),
	)
}

// SumToLast asks for the sum of a finite progression ending in a known
// term, using S_n = (b_n·q - b_1)/(q - 1).
func SumToLast(r *problem.Rand) *problem.Problem {
	return sumToLast(r.Int(1, 5), r.Int(2, 3), r.Int(4, 6))
}

func sumToLast(b1, q, n int) *problem.Problem {
	last := term(b1, q, n)
	ans := expr.Int(sumOf(b1, q, n))
	formula := `S_n = \frac{b_n q - b_1}{q - 1}`
	return problem.Number(
		problem.T("geo.sumlast.question", fmt.Sprintf(`%d, %d, \dots, %d`, b1, b1*q, last)),
		ans,
		problem.T("geo.sumlast.hint.formula", formula),
		problem.T("geo.sumlast.hint.ratio",
			fmt.Sprintf("b_1 = %d, b_n = %d", b1, last),
			fmt.Sprintf("q = %d : %d = %d", b1*q, b1, q)),
		problem.T("geo.sumlast.hint.compute", formula,
			fmt.Sprintf(`S_n = \frac{%d \cdot %d - %d}{%d - 1} = \frac{%d - %d}{%d} = \frac{%d}{%d} = %s`,
				last, q, b1, q, last*q, b1, q-1, last*q-b1, q-1, ans),
			ans),
	)
}

func sumFormula(a int) string {
	return fmt.Sprintf("S_n = %d(2^n - 1)", a)
}

func evalSum(a, n int) int {
	return a * (expr.IntPow(2, n) - 1)
}

// TermFromSum gives S_n = A(2^n - 1) and asks for b_k = S_k - S_{k-1}.
func TermFromSum(r *problem.Rand) *problem.Problem {
	return termFromSum(r.Int(2, 5), r.Int(3, 5))
}

func termFromSum(a, k int) *problem.Problem {
	sk := evalSum(a, k)
	sk1 := evalSum(a, k-1)
	ans := expr.Int(sk - sk1)
	sLine := func(n, s int) string {
		return fmt.Sprintf("S_{%d} = %d(2%s - 1) = %d(%d - 1) = %d", n, a, expr.Power(n), a, expr.IntPow(2, n), s)
	}
	return problem.Number(
		problem.T("geo.termsum.question", sumFormula(a), expr.Int(k), fmt.Sprintf("b_{%d}", k)),
		ans,
		problem.T("geo.termsum.hint.property", fmt.Sprintf("b_{%d} = S_{%d} - S_{%d}", k, k, k-1)),
		problem.T("geo.termsum.hint.sums", sLine(k, sk), sLine(k-1, sk1)),
		problem.T("geo.termsum.hint.subtract", fmt.Sprintf("b_{%d} = %d - %d = %s", k, sk, sk1, ans), ans),
	)
}

// FormulaFromSum gives S_n = A(2^n - 1) and asks to pick b_n.
func FormulaFromSum(r *problem.Rand) *problem.Problem {
	return formulaFromSum(r, r.Int(2, 5))
}

func formulaFromSum(r *problem.Rand, a int) *problem.Problem {
	ans := fmt.Sprintf(`b_n = %d \cdot 2^{n-1}`, a)
	options := []string{
		ans,
		fmt.Sprintf(`b_n = %d \cdot 2^n`, a),
		fmt.Sprintf(`b_n = %d \cdot 2^{n-1}`, 3*a),
		fmt.Sprintf(`b_n = %d \cdot 2^{n+1}`, a),
	}
	problem.Shuffle(r, options)
	return problem.MathChoice(
		problem.T("geo.formulasum.question", sumFormula(a)),
		ans,
		options,
		problem.T("geo.formulasum.hint.plan"),
		problem.T("geo.formulasum.hint.terms",
			fmt.Sprintf("b_1 = S_1 = %d(2^1 - 1) = %d", a, a),
			fmt.Sprintf(`S_2 = %d(2^2 - 1) = %d \cdot 3 = %d`, a, a, 3*a),
			fmt.Sprintf("b_2 = S_2 - S_1 = %d - %d = %d", 3*a, a, 2*a)),
		problem.T("geo.formulasum.hint.close",
			fmt.Sprintf("q = b_2 : b_1 = %d : %d = 2", 2*a, a),
			ans),
	)
}
