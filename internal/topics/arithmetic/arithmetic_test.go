package arithmetic

import (
	"strconv"
	"strings"
	"testing"

	"github.com/abhisek/mathlab/internal/expr"
	"github.com/abhisek/mathlab/internal/problem"
)

const seeds = 300

func TestSequence_AllLevelsValidate(t *testing.T) {
	seq := Sequence()
	if seq.Count() != 10 {
		t.Fatalf("Count() = %d, want 10", seq.Count())
	}
	for level := 0; level < seq.Count(); level++ {
		for seed := int64(0); seed < seeds; seed++ {
			p, err := seq.Problem(level, problem.NewRand(seed))
			if err != nil {
				t.Fatalf("level %d seed %d: %v", level, seed, err)
			}
			if p.Category != seq.CategoryAt(level) {
				t.Errorf("level %d: category %q", level, p.Category)
			}
		}
	}
}

func TestContinuation_Scenario(t *testing.T) {
	p := continuation(3, 4)
	if got := p.Question.Args[0]; !strings.HasPrefix(got, "3, 7, 11") {
		t.Errorf("sequence shown = %q", got)
	}
	if p.Answer != "15" {
		t.Errorf("Answer = %q, want 15", p.Answer)
	}
}

func TestNthTerm_ClosedForm(t *testing.T) {
	for seed := int64(0); seed < seeds; seed++ {
		r := problem.NewRand(seed)
		a1, d, n := r.Int(2, 20), r.Int(3, 10), r.Int(15, 45)
		p := nthTerm(a1, d, n)
		got, _ := strconv.Atoi(p.Answer)
		// Walk the recurrence instead of using the closed form.
		v := a1
		for i := 1; i < n; i++ {
			v += d
		}
		if got != v {
			t.Fatalf("a_%d of %d,+%d = %d, want %d", n, a1, d, got, v)
		}
	}
}

func TestMembership_NonMembersNeverNatural(t *testing.T) {
	for seed := int64(0); seed < 2000; seed++ {
		p := Membership(problem.NewRand(seed))
		a1, _ := expr.ParseNum(p.Question.Args[0])
		d, _ := expr.ParseNum(p.Question.Args[1])
		target, _ := expr.ParseNum(p.Question.Args[2])
		n := (target-a1)/d + 1
		natural := expr.IsInteger(n) && n >= 1
		if problem.YesNo(natural) != p.Answer {
			t.Fatalf("seed %d: a1=%v d=%v target=%v gives n=%v but answer %s", seed, a1, d, target, n, p.Answer)
		}
	}
}

func TestMembership_Decimal(t *testing.T) {
	p := membership(12, -1.5, 11, 0)
	if p.Answer != problem.Yes {
		t.Errorf("12 - 1.5*10 = -3 should be a member")
	}
	p = membership(12, -1.5, 11, 0.25)
	if p.Answer != problem.No {
		t.Errorf("-2.75 should not be a member")
	}
}

func TestFirstAndOtherTerm(t *testing.T) {
	if p := firstTerm(7, 3, 10); p.Answer != "7" || p.Question.Args[0] != "a_{10} = 34" {
		t.Errorf("firstTerm: %q / %v", p.Answer, p.Question.Args)
	}
	if p := otherTerm(2, 5, 10, 20); p.Answer != "97" || p.Question.Args[1] != "a_{10} = 47" {
		t.Errorf("otherTerm: %q / %v", p.Answer, p.Question.Args)
	}
}

func TestSum_VariantsAgree(t *testing.T) {
	for a1 := 1; a1 <= 10; a1++ {
		for d := 2; d <= 5; d++ {
			for n := 3; n <= 50; n += 7 {
				want := 0
				for i := 0; i < n; i++ {
					want += a1 + i*d
				}
				short := sum(a1, d, n, true)
				long := sum(a1, d, n, false)
				if short.Answer != strconv.Itoa(want) || long.Answer != short.Answer {
					t.Fatalf("S_%d(%d,%d): short %s long %s, want %d", n, a1, d, short.Answer, long.Answer, want)
				}
			}
		}
	}
}

func TestSumToLast_DerivesCount(t *testing.T) {
	p := sumToLast(6, -5, 24)
	if !strings.HasSuffix(p.Question.Args[0], "-109") {
		t.Errorf("sequence = %q", p.Question.Args[0])
	}
	// (6 + -109) / 2 * 24
	if p.Answer != "-1236" {
		t.Errorf("Answer = %q, want -1236", p.Answer)
	}
	if got := p.Hints[1].LastArg(); got != "n = 24" {
		t.Errorf("count hint ends with %q", got)
	}
}

func TestTermFromSum_Scenario(t *testing.T) {
	p := termFromSum(2, 3, 4)
	if p.Question.Args[0] != "S_n = 2n^2 + 3n" {
		t.Errorf("formula = %q", p.Question.Args[0])
	}
	terms, err := expr.ParsePoly(strings.TrimPrefix(p.Question.Args[0], "S_n = "), "n")
	if err != nil {
		t.Fatal(err)
	}
	want := expr.EvalPoly(terms, 4) - expr.EvalPoly(terms, 3)
	if p.Answer != strconv.Itoa(want) || want != 17 {
		t.Errorf("a_4 = %s, recomputed %d", p.Answer, want)
	}
}

func TestSumFormula_Edges(t *testing.T) {
	tests := []struct {
		a, b int
		want string
	}{
		{1, 4, "S_n = n^2 + 4n"},
		{-1, 6, "S_n = -n^2 + 6n"},
		{3, 0, "S_n = 3n^2"},
		{-2, -1, "S_n = -2n^2 - n"},
		{2, 1, "S_n = 2n^2 + n"},
	}
	for _, tc := range tests {
		if got := sumFormula(tc.a, tc.b); got != tc.want {
			t.Errorf("sumFormula(%d, %d) = %q, want %q", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestFormulaFromSum_MatchesDifferences(t *testing.T) {
	for seed := int64(0); seed < seeds; seed++ {
		r := problem.NewRand(seed)
		a, b := sumCoefficients(r)
		p := formulaFromSum(r, a, b)

		closed, err := expr.ParsePoly(strings.TrimPrefix(p.Answer, "a_n = "), "n")
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		for n := 1; n <= 6; n++ {
			want := evalSum(a, b, n) - evalSum(a, b, n-1)
			if got := expr.EvalPoly(closed, n); got != want {
				t.Fatalf("seed %d: %s at n=%d is %d, want %d", seed, p.Answer, n, got, want)
			}
		}
		if len(p.Options) != 4 {
			t.Errorf("seed %d: %d options", seed, len(p.Options))
		}
	}
}

func TestDefinition_Hints(t *testing.T) {
	p := linearDefinition(3, -4)
	if p.Question.Args[0] != "a_n = 3n - 4" {
		t.Errorf("formula = %q", p.Question.Args[0])
	}
	if got := p.Hints[2].Args[0]; got != "= 3n + 3 - 4 - 3n + 4 = 3" {
		t.Errorf("expansion = %q", got)
	}
	q := quadraticDefinition(2)
	if q.Answer != problem.No || q.Hints[2].Args[0] != "= 2(n^2 + 2n + 1) + 1 - 2n^2 - 1 = 4n + 2" {
		t.Errorf("quadratic: %q %q", q.Answer, q.Hints[2].Args[0])
	}
}
