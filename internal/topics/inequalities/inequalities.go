// Package inequalities generates linear inequality problems in one unknown.
// Every answer is written "x <op> <value>"; dividing or multiplying by a
// negative number and swapping sides flip the operator.
package inequalities

import (
	"fmt"

	"github.com/abhisek/mathlab/internal/expr"
	"github.com/abhisek/mathlab/internal/levels"
	"github.com/abhisek/mathlab/internal/problem"
)

// Sequence returns the inequalities ladder.
func Sequence() *levels.Sequence {
	return levels.New(
		levels.Level{Category: "Level 1: Comparing numbers", Generate: Compare},
		levels.Level{Category: "Level 2: One step (addition, subtraction)", Generate: AddSub},
		levels.Level{Category: "Level 3: One step (positive factor)", Generate: MultiplyPositive},
		levels.Level{Category: "Level 4: One step (negative factor)", Generate: MultiplyNegative},
		levels.Level{Category: "Level 5: Two steps", Generate: TwoStep},
		levels.Level{Category: "Level 6: Variable on the right", Generate: RightSide},
		levels.Level{Category: "Level 7: Negative x term", Generate: NegativeTerm},
		levels.Level{Category: "Level 8: Fractions", Generate: Fraction},
	)
}

// solution renders the canonical answer x op v.
func solution(op expr.Op, v float64) string {
	return fmt.Sprintf("x %s %s", op.Markup(), expr.Num(v))
}

func solve(q string) problem.Text {
	return problem.T("ineq.solve.question", q)
}

// Compare asks whether a numeric comparison is true. The hint chain draws
// both numbers on a number line.
func Compare(r *problem.Rand) *problem.Problem {
	a := r.Int(1, 20)
	if r.Chance(0.5) {
		a = -a
	}
	b := a + r.Sign()*r.Int(1, 10)
	return compare(a, b, problem.Pick(r, expr.Ops))
}

var claimKeys = map[expr.Op]string{
	expr.Lt: "ineq.compare.hint.claim.lt",
	expr.Gt: "ineq.compare.hint.claim.gt",
	expr.Le: "ineq.compare.hint.claim.le",
	expr.Ge: "ineq.compare.hint.claim.ge",
}

func compare(a, b int, op expr.Op) *problem.Problem {
	fa, fb := float64(a), float64(b)
	ans := problem.TrueFalse(op.Holds(fa, fb))

	recall := "ineq.compare.hint.positive"
	if a < 0 {
		recall = "ineq.compare.hint.negative"
	}
	side := "ineq.compare.hint.right"
	if a < b {
		side = "ineq.compare.hint.left"
	}
	return problem.Choice(
		problem.T("ineq.compare.question", fmt.Sprintf("%d %s %d", a, op.Markup(), b)),
		ans,
		[]string{problem.True, problem.False},
		problem.T(recall),
		problem.T(side, expr.Int(a), expr.Int(b)).WithFigure(&problem.Figure{Points: []float64{fa, fb}}),
		problem.T(claimKeys[op], expr.Int(a), expr.Int(b), ans),
	)
}

// AddSub solves x ± c op v.
func AddSub(r *problem.Rand) *problem.Problem {
	x := r.Int(-10, 10)
	c := r.Sign() * r.Int(1, 10)
	return addSub(c, x+c, problem.Pick(r, expr.Ops))
}

func addSub(c, val int, op expr.Op) *problem.Problem {
	ans := solution(op, float64(val-c))
	move := "ineq.addsub.hint.subtract"
	if c < 0 {
		move = "ineq.addsub.hint.add"
	}
	abs := c
	if abs < 0 {
		abs = -abs
	}
	return problem.Inequality(
		solve(fmt.Sprintf("x %s %s %d", expr.PlusInt(c), op.Markup(), val)),
		ans,
		problem.T("ineq.addsub.hint.move"),
		problem.T(move, expr.Int(abs)),
		problem.T("ineq.hint.result", fmt.Sprintf("x %s %d %s", op.Markup(), val, expr.PlusInt(-c)), ans),
	)
}

// MultiplyPositive solves kx op v for k > 0.
func MultiplyPositive(r *problem.Rand) *problem.Problem {
	k := r.Int(2, 6)
	return multiplyPositive(k, k*r.Int(-5, 5), problem.Pick(r, expr.Ops))
}

func multiplyPositive(k, val int, op expr.Op) *problem.Problem {
	ans := solution(op, float64(val)/float64(k))
	return problem.Inequality(
		solve(fmt.Sprintf("%dx %s %d", k, op.Markup(), val)),
		ans,
		problem.T("ineq.divide.hint.both", expr.Int(k)),
		problem.T("ineq.divide.hint.positive"),
		problem.T("ineq.hint.result", fmt.Sprintf("x %s %d : %d", op.Markup(), val, k), ans),
	)
}

// MultiplyNegative solves kx op v for k < 0, flipping op.
func MultiplyNegative(r *problem.Rand) *problem.Problem {
	k := -r.Int(2, 6)
	return multiplyNegative(k, k*r.Int(-5, 5), problem.Pick(r, expr.Ops))
}

func multiplyNegative(k, val int, op expr.Op) *problem.Problem {
	flipped := op.Flip()
	ans := solution(flipped, float64(val)/float64(k))
	return problem.Inequality(
		problem.T("ineq.solve.question.negative", fmt.Sprintf("%dx %s %d", k, op.Markup(), val)),
		ans,
		problem.T("ineq.divide.hint.both", expr.Int(k)),
		problem.T("ineq.divide.hint.negative", op.Markup(), flipped.Markup()),
		problem.T("ineq.hint.result", fmt.Sprintf("x %s %d : (%d)", flipped.Markup(), val, k), ans),
	)
}

// TwoStep solves kx ± b op v for k > 0.
func TwoStep(r *problem.Rand) *problem.Problem {
	k := r.Int(2, 5)
	b := r.Sign() * r.Int(1, 10)
	x := r.Int(-5, 5)
	return twoStep(k, b, k*x+b, problem.Pick(r, expr.Ops))
}

func twoStep(k, b, rhs int, op expr.Op) *problem.Problem {
	ans := solution(op, float64(rhs-b)/float64(k))
	return problem.Inequality(
		solve(fmt.Sprintf("%dx %s %s %d", k, expr.PlusInt(b), op.Markup(), rhs)),
		ans,
		problem.T("ineq.twostep.hint.constant", expr.Int(b)),
		problem.T("ineq.twostep.hint.moved",
			fmt.Sprintf("%dx %s %d %s", k, op.Markup(), rhs, expr.PlusInt(-b)),
			fmt.Sprintf("%dx %s %d", k, op.Markup(), rhs-b)),
		problem.T("ineq.twostep.hint.divide", expr.Int(k), ans),
	)
}

// RightSide solves v op x + b. Swapping sides flips op once.
func RightSide(r *problem.Rand) *problem.Problem {
	x := r.Int(-10, 10)
	b := r.Int(1, 10)
	return rightSide(x+b, b, problem.Pick(r, expr.Ops))
}

func rightSide(val, b int, op expr.Op) *problem.Problem {
	flipped := op.Flip()
	ans := solution(flipped, float64(val-b))
	return problem.Inequality(
		problem.T("ineq.solve.question.xleft", fmt.Sprintf("%d %s x + %d", val, op.Markup(), b)),
		ans,
		problem.T("ineq.rightside.hint.swap"),
		problem.T("ineq.rightside.hint.swapped", fmt.Sprintf("x + %d %s %d", b, flipped.Markup(), val)),
		problem.T("ineq.rightside.hint.subtract", expr.Int(b),
			fmt.Sprintf("x %s %d - %d", flipped.Markup(), val, b), ans),
	)
}

// NegativeTerm solves b - kx op v, flipping op when dividing by -k.
func NegativeTerm(r *problem.Rand) *problem.Problem {
	k := r.Int(2, 5)
	b := r.Int(1, 12)
	x := r.Int(-4, 4)
	return negativeTerm(k, b, b-k*x, problem.Pick(r, expr.Ops))
}

func negativeTerm(k, b, val int, op expr.Op) *problem.Problem {
	flipped := op.Flip()
	ans := solution(flipped, float64(val-b)/float64(-k))
	return problem.Inequality(
		solve(fmt.Sprintf("%d - %dx %s %d", b, k, op.Markup(), val)),
		ans,
		problem.T("ineq.negterm.hint.move", expr.Int(b)),
		problem.T("ineq.negterm.hint.moved",
			fmt.Sprintf("-%dx %s %d - %d", k, op.Markup(), val, b),
			fmt.Sprintf("-%dx %s %d", k, op.Markup(), val-b)),
		problem.T("ineq.negterm.hint.divide", expr.Int(-k), ans),
	)
}

// Fraction solves ±x/d ± b op v, multiplying through by ±d.
func Fraction(r *problem.Rand) *problem.Problem {
	negative := r.Chance(0.6)
	denom := r.Int(2, 5)
	b := r.Sign() * r.Int(1, 8)
	rhs := r.Int(-5, 10)
	mult := denom
	if negative {
		mult = -denom
	}
	return fraction(mult, b, rhs, problem.Pick(r, expr.Ops))
}

// fraction builds x/mult + b op rhs; a negative mult shows as -x/|mult|.
func fraction(mult, b, rhs int, op expr.Op) *problem.Problem {
	negative := mult < 0
	denom := mult
	if negative {
		denom = -mult
	}
	lhs := fmt.Sprintf(`\frac{x}{%d}`, denom)
	if negative {
		lhs = "-" + lhs
	}
	final := op.FlipIf(negative)
	step := rhs - b
	ans := solution(final, float64(step*mult))

	multiply := problem.T("ineq.fraction.hint.multiply.positive", expr.Int(mult),
		fmt.Sprintf(`x %s %d \cdot %s`, final.Markup(), step, expr.ParenInt(mult)), ans)
	if negative {
		multiply = problem.T("ineq.fraction.hint.multiply.negative", expr.Int(mult),
			fmt.Sprintf(`x %s %d \cdot %s`, final.Markup(), step, expr.ParenInt(mult)), ans)
	}
	return problem.Inequality(
		solve(fmt.Sprintf("%s %s %s %d", lhs, expr.PlusInt(b), op.Markup(), rhs)),
		ans,
		problem.T("ineq.twostep.hint.constant", expr.Int(b)),
		problem.T("ineq.twostep.hint.moved",
			fmt.Sprintf("%s %s %d %s", lhs, op.Markup(), rhs, expr.PlusInt(-b)),
			fmt.Sprintf("%s %s %d", lhs, op.Markup(), step)),
		multiply,
	)
}
