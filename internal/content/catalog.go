package content

// catalog holds the English prose for every text key. Templates take
// their arguments by index (%[1]s) and are rendered as TeX-lite after
// substitution.
var catalog = map[string]string{
	// Arithmetic progression.
	"ap.definition.question":        `The n-th term of a sequence is a_n given by %[1]s for every n \in N. Is this sequence an arithmetic progression?`,
	"ap.definition.hint.setup":      `Let n be any natural number. We need to check that a_{n+1} - a_n = d is a constant.`,
	"ap.definition.hint.difference": `Compute the difference of neighbouring terms: %[1]s`,
	"ap.definition.hint.constant":   `Expand and simplify: %[1]s. The difference is %[2]s whatever n is, so the sequence is an arithmetic progression. Answer: %[3]s`,
	"ap.definition.hint.varies":     `Expand and simplify: %[1]s. The difference depends on n, so the sequence is not an arithmetic progression. Answer: %[2]s`,

	"ap.continue.question":  `Continue the arithmetic progression with its next term: %[1]s ?`,
	"ap.continue.hint.find": `Find the difference d between neighbouring terms.`,
	"ap.continue.hint.diff": `%[1]s, so the difference is %[2]s.`,
	"ap.continue.hint.add":  `Add %[2]s to the last term %[1]s: %[3]s. Answer: %[4]s`,

	"ap.hint.formula": `Use the n-th term formula: a_n = a_1 + d(n-1)`,

	"ap.nth.question":     `The sequence is %[1]s. Find its term number %[2]s (%[3]s).`,
	"ap.nth.hint.values":  `Here %[1]s.`,
	"ap.nth.hint.compute": `%[1]s. Answer: %[2]s`,

	"ap.member.question":         `An arithmetic progression has a_1 = %[1]s and difference d = %[2]s. Is %[3]s a term of this progression?`,
	"ap.member.hint.substitute":  `Substitute the known numbers: %[1]s`,
	"ap.member.hint.natural":     `Solve for n: %[1]s, so %[2]s. This is a natural number. Answer: %[3]s`,
	"ap.member.hint.notnatural":  `Solve for n: %[1]s, so %[2]s. This is not a natural number. Answer: %[3]s`,
	"ap.first.question":          `Find a_1 given %[1]s and %[2]s.`,
	"ap.first.hint.substitute":   `Substitute the numbers: %[1]s`,
	"ap.first.hint.isolate":      `%[1]s. Subtract %[2]s from %[3]s: %[4]s. Answer: %[5]s`,
	"ap.other.question":          `Find %[1]s given %[2]s and %[3]s.`,
	"ap.other.hint.plan":         `First find the first term a_1 with the formula a_n = a_1 + d(n-1).`,
	"ap.other.hint.first":        `Find a_1: %[1]s, so %[2]s.`,
	"ap.other.hint.target":       `Now compute %[1]s: %[2]s. Answer: %[3]s`,
	"ap.sum.question":            `Find the sum of the first %[1]s terms (%[2]s) of the arithmetic progression %[3]s`,
	"ap.sum.hint.formula":        `Formula: %[1]s`,
	"ap.sum.hint.last":           `Here %[1]s. First find %[2]s: %[3]s`,
	"ap.sum.hint.values":         `Here %[1]s.`,
	"ap.sum.hint.compute":        `Substitute into the sum formula: %[1]s. Answer: %[2]s`,
	"ap.sumlast.question":        `Find the sum of all terms of the arithmetic progression %[1]s`,
	"ap.sumlast.hint.known":      `The first term is %[1]s and the last term is %[2]s. Find the number of terms n.`,
	"ap.sumlast.hint.count":      `Find the difference: %[1]s. From a_n = a_1 + d(n-1): %[2]s, %[3]s, %[4]s, %[5]s.`,
	"ap.sumlast.hint.compute":    `Now use S_n = \frac{a_1 + a_n}{2} \cdot n: %[1]s. Answer: %[2]s`,
	"ap.termsum.question":        `The sum of the first n terms of an arithmetic progression is %[1]s. Find term number %[2]s (%[3]s).`,
	"ap.termsum.hint.property":   `Use a_n = S_n - S_{n-1}. Here %[1]s.`,
	"ap.termsum.hint.sums":       `Compute both sums: %[1]s and %[2]s.`,
	"ap.termsum.hint.subtract":   `Subtract: %[1]s. Answer: %[2]s`,
	"ap.formulasum.question":     `The sum of the first n terms of an arithmetic progression is %[1]s. Choose the formula of its n-th term.`,
	"ap.formulasum.hint.plan":    `To write a_n you need the first term a_1 and the difference d.`,
	"ap.formulasum.hint.terms":   `Find a_1 and a_2: %[1]s, %[2]s, %[3]s.`,
	"ap.formulasum.hint.close":   `The difference is %[1]s. Substitute into a_n = a_1 + d(n-1): %[2]s. Answer: %[3]s`,

	// Geometric progression.
	"geo.definition.question":      `The n-th term of a sequence is given by %[1]s for every n \in N. Is this sequence a geometric progression?`,
	"geo.definition.hint.setup":    `Let n be any natural number. Check whether the ratio \frac{b_{n+1}}{b_n} is a constant q.`,
	"geo.definition.hint.ratio":    `Compute the ratio: %[1]s`,
	"geo.definition.hint.constant": `Simplify: %[1]s. The ratio is %[2]s whatever n is, so the sequence is a geometric progression. Answer: %[3]s`,
	"geo.definition.hint.varies":   `Simplify: %[1]s. The ratio depends on n (%[2]s gives %[3]s, %[4]s gives %[5]s), so the sequence is not a geometric progression. Answer: %[6]s`,

	"geo.continue.question":      `Continue the geometric progression with its next term: %[1]s ?`,
	"geo.continue.hint.find":     `Find the ratio q between neighbouring terms.`,
	"geo.continue.hint.ratio":    `%[1]s, so the ratio is %[2]s.`,
	"geo.continue.hint.multiply": `Multiply the last term %[1]s by %[2]s: %[3]s. Answer: %[4]s`,

	"geo.hint.formula": `Use the n-th term formula: b_n = b_1 \cdot q^{n-1}`,

	"geo.nth.question":           `The sequence is %[1]s. Find its term number %[2]s (%[3]s).`,
	"geo.nth.hint.values":        `Here %[1]s.`,
	"geo.nth.hint.compute":       `%[1]s. Answer: %[2]s`,
	"geo.member.question":        `A geometric progression has b_1 = %[1]s and ratio q = %[2]s. Is %[3]s a term of this progression?`,
	"geo.member.hint.substitute": `Substitute the known numbers: %[1]s`,
	"geo.member.hint.power":      `Isolate the power: %[1]s. It is a power of q: %[2]s, so %[3]s. Answer: %[4]s`,
	"geo.member.hint.between":    `Isolate the power: %[1]s. %[2]s lies strictly between %[3]s and %[4]s, so it is not a power of q. Answer: %[5]s`,
	"geo.member.hint.fraction":   `Isolate the power: %[1]s. %[2]s is not a whole number, so it cannot be a power of %[3]s. Answer: %[4]s`,
	"geo.first.question":         `Find b_1 given %[1]s and %[2]s.`,
	"geo.first.hint.substitute":  `Substitute the numbers: %[1]s`,
	"geo.first.hint.isolate":     `%[1]s. Divide: %[2]s. Answer: %[3]s`,
	"geo.other.question":         `Find %[1]s given %[2]s and %[3]s.`,
	"geo.other.hint.property":    `You can find b_1 first, or use %[1]s directly.`,
	"geo.other.hint.apply":       `Using the property: %[1]s`,
	"geo.other.hint.compute":     `%[1]s. Answer: %[2]s`,
	"geo.sum.question":           `Find the sum of the first %[1]s terms (%[2]s) of the geometric progression %[3]s`,
	"geo.sum.hint.formula":       `Formula: %[1]s`,
	"geo.sum.hint.values":        `Here %[1]s.`,
	"geo.sum.hint.compute":       `Substitute into the formula: %[1]s. Answer: %[2]s`,
	"geo.sumlast.question":       `Find the sum of all terms of the geometric progression %[1]s`,
	"geo.sumlast.hint.formula":   `Use %[1]s, or find n first.`,
	"geo.sumlast.hint.ratio":     `We know %[1]s. The ratio is %[2]s.`,
	"geo.sumlast.hint.compute":   `Apply %[1]s: %[2]s. Answer: %[3]s`,
	"geo.termsum.question":       `The sum of the first n terms of a geometric progression is %[1]s. Find term number %[2]s (%[3]s).`,
	"geo.termsum.hint.property":  `Use b_n = S_n - S_{n-1}. Here %[1]s.`,
	"geo.termsum.hint.sums":      `Compute both sums: %[1]s and %[2]s.`,
	"geo.termsum.hint.subtract":  `Subtract: %[1]s. Answer: %[2]s`,
	"geo.formulasum.question":    `The sum of the first n terms of a geometric progression is %[1]s. Choose the formula of its n-th term.`,
	"geo.formulasum.hint.plan":   `To write b_n you need the first term b_1 and the ratio q.`,
	"geo.formulasum.hint.terms":  `Find b_1 and b_2: %[1]s, %[2]s, %[3]s.`,
	"geo.formulasum.hint.close":  `The ratio is %[1]s. Substitute into b_n = b_1 \cdot q^{n-1}. Answer: %[2]s`,

	// Inequalities.
	"ineq.compare.question":      `Is this inequality true? %[1]s`,
	"ineq.compare.hint.positive": `Think of the number line: the further right a number lies, the larger it is.`,
	"ineq.compare.hint.negative": `Think of the number line: for negative numbers, the further left of zero a number lies, the smaller it is.`,
	"ineq.compare.hint.left":     `On the number line %[1]s lies to the left of %[2]s.`,
	"ineq.compare.hint.right":    `On the number line %[1]s lies to the right of %[2]s.`,
	"ineq.compare.hint.claim.lt": `The inequality claims that %[1]s is less than %[2]s. Answer: %[3]s`,
	"ineq.compare.hint.claim.gt": `The inequality claims that %[1]s is greater than %[2]s. Answer: %[3]s`,
	"ineq.compare.hint.claim.le": `The inequality claims that %[1]s is less than or equal to %[2]s. Answer: %[3]s`,
	"ineq.compare.hint.claim.ge": `The inequality claims that %[1]s is greater than or equal to %[2]s. Answer: %[3]s`,

	"ineq.solve.question":          `Solve the inequality: %[1]s`,
	"ineq.solve.question.negative": `Solve the inequality: %[1]s. Careful, the factor of x is negative!`,
	"ineq.solve.question.xleft":    `Solve the inequality: %[1]s. Write the answer with x on the left.`,
	"ineq.hint.result":             `%[1]s. Answer: %[2]s`,

	"ineq.addsub.hint.move":     `Move the number next to x to the other side, changing its sign.`,
	"ineq.addsub.hint.subtract": `Here subtract %[1]s from both sides.`,
	"ineq.addsub.hint.add":      `Here add %[1]s to both sides.`,

	"ineq.divide.hint.both":     `Divide both sides by %[1]s.`,
	"ineq.divide.hint.positive": `Dividing by a positive number keeps the inequality sign.`,
	"ineq.divide.hint.negative": `Careful! Dividing by a negative number reverses the sign: %[1]s becomes %[2]s.`,

	"ineq.twostep.hint.constant": `First move the constant term (%[1]s) to the other side.`,
	"ineq.twostep.hint.moved":    `%[1]s, so %[2]s.`,
	"ineq.twostep.hint.divide":   `Now divide by %[1]s. The sign stays. Answer: %[2]s`,

	"ineq.rightside.hint.swap":     `Swap the sides so that x is on the left. Do not forget to reverse the sign!`,
	"ineq.rightside.hint.swapped":  `After swapping: %[1]s`,
	"ineq.rightside.hint.subtract": `Subtract %[1]s: %[2]s. Answer: %[3]s`,

	"ineq.negterm.hint.move":   `Keep the x term on the left and move %[1]s to the right.`,
	"ineq.negterm.hint.moved":  `%[1]s, so %[2]s.`,
	"ineq.negterm.hint.divide": `Divide by %[1]s and reverse the sign! Answer: %[2]s`,

	"ineq.fraction.hint.multiply.positive": `Multiply both sides by %[1]s. The sign stays: %[2]s. Answer: %[3]s`,
	"ineq.fraction.hint.multiply.negative": `Multiply both sides by %[1]s. Careful! Multiplying by a negative number reverses the sign: %[2]s. Answer: %[3]s`,

	// Intervals.
	"iv.values.question":        `Which numbers satisfy the inequality %[1]s? Select all that apply.`,
	"iv.values.hint.substitute": `Substitute each number for x and check whether the inequality holds.`,
	"iv.values.hint.example":    `For example, is %[1]s? %[2]s.`,
	"iv.values.hint.answer":     `The correct values are: %[1]s`,

	"iv.tointerval.question":       `Which interval matches the inequality %[1]s?`,
	"iv.tointerval.hint.strict":    `A strict inequality (< or >) matches round brackets ( ).`,
	"iv.tointerval.hint.nonstrict": `A non-strict inequality (\le or \ge) matches square brackets [ ].`,
	"iv.tointerval.hint.shape0":    `Here %[1]s. Both sides are strict, so both ends take round brackets. Answer: %[2]s`,
	"iv.tointerval.hint.shape1":    `Here %[1]s. Both sides are non-strict, so both ends take square brackets. Answer: %[2]s`,
	"iv.tointerval.hint.shape2":    `Here %[1]s. The left side is non-strict and the right side is strict. Answer: %[2]s`,
	"iv.tointerval.hint.shape3":    `Here %[1]s. The left side is strict and the right side is non-strict. Answer: %[2]s`,
	"iv.tointerval.hint.shape4":    `Here %[1]s. The inequality is strict, so the number takes a round bracket. Infinity always takes a round bracket. Answer: %[2]s`,
	"iv.tointerval.hint.shape5":    `Here %[1]s. The inequality is non-strict, so the number takes a square bracket. Infinity always takes a round bracket. Answer: %[2]s`,
	"iv.tointerval.hint.shape6":    `Here %[1]s. The inequality is strict, so the number takes a round bracket. Infinity always takes a round bracket. Answer: %[2]s`,
	"iv.tointerval.hint.shape7":    `Here %[1]s. The inequality is non-strict, so the number takes a square bracket. Infinity always takes a round bracket. Answer: %[2]s`,

	"iv.toinequality.question":      `Which inequality matches the interval %[1]s?`,
	"iv.toinequality.hint.parens":   `Round brackets ( ) mean a strict inequality (< or >).`,
	"iv.toinequality.hint.brackets": `Square brackets [ ] mean a non-strict inequality (\le or \ge).`,
	"iv.toinequality.hint.shape0":   `The interval is %[1]s. Round brackets on both ends mean strict inequalities. Answer: %[2]s`,
	"iv.toinequality.hint.shape1":   `The interval is %[1]s. Square brackets on both ends mean non-strict inequalities. Answer: %[2]s`,
	"iv.toinequality.hint.shape2":   `The interval is %[1]s. The square bracket on the left is non-strict, the round one on the right is strict. Answer: %[2]s`,
	"iv.toinequality.hint.shape3":   `The interval is %[1]s. The round bracket on the left is strict, the square one on the right is non-strict. Answer: %[2]s`,
	"iv.toinequality.hint.shape4":   `The interval is %[1]s. A round bracket at the number means a strict inequality, and the interval runs to plus infinity. Answer: %[2]s`,
	"iv.toinequality.hint.shape5":   `The interval is %[1]s. A square bracket at the number means a non-strict inequality, and the interval runs to plus infinity. Answer: %[2]s`,
	"iv.toinequality.hint.shape6":   `The interval is %[1]s. A round bracket at the number means a strict inequality, and the interval runs to minus infinity. Answer: %[2]s`,
	"iv.toinequality.hint.shape7":   `The interval is %[1]s. A square bracket at the number means a non-strict inequality, and the interval runs to minus infinity. Answer: %[2]s`,

	"iv.tograph.question":        `Which graph matches the inequality %[1]s?`,
	"iv.tograph.hint.strictness": `Is the inequality strict (<, >) or non-strict (\le, \ge)?`,
	"iv.tograph.hint.circles":    `A strict bound is drawn as an empty circle ○, a non-strict one as a filled circle ●.`,
	"iv.tograph.hint.answer":     `The graph of %[1]s is shown below. Answer: %[2]s`,

	"iv.fromgraph.question":      `Which inequality matches the graph?`,
	"iv.fromgraph.hint.circles":  `An empty circle means a strict inequality, a filled circle a non-strict one.`,
	"iv.fromgraph.hint.shading":  `Shading to the right means greater than, shading to the left means less than.`,
	"iv.fromgraph.hint.answer":   `Answer: %[1]s`,

	// Feedback shown after a submission.
	"feedback.passed":        `Correct! Level passed.`,
	"feedback.streak":        `Correct! %[1]s of %[2]s in a row.`,
	"feedback.hinted":        `Correct, but you used hints. Solve a new problem without hints to pass the level.`,
	"feedback.mistake":       `Correct, but not on the first try. Solve a new problem without mistakes to pass the level.`,
	"feedback.wrong":         `Not quite. Try again.`,
	"feedback.missing":       `Some correct values are missing.`,
	"feedback.extra":         `You picked values that do not satisfy the inequality.`,
	"feedback.both":          `Some correct values are missing and some picked values are wrong.`,
	"feedback.hints.spent":   `All hints are shown. Try a new problem.`,
	"feedback.game.complete": `You finished every level of %[1]s!`,
	"feedback.unlocked":      `Level %[1]s is unlocked.`,

	// Welcome message, shown until dismissed.
	"welcome.title":              `Ready to learn?`,
	"welcome.intro.ap":           `We will go from quick checks to harder formulas of arithmetic progressions.`,
	"welcome.intro.geo":          `We will go from quick checks to harder formulas of geometric progressions.`,
	"welcome.intro.inequalities": `Solve linear inequalities and pick the numbers that satisfy them.`,
	"welcome.intro.intervals":    `Learn to recognise intervals and inequalities.`,
	"welcome.rule.clean":         `Solve without hints to unlock the next level.`,
	"welcome.rule.streak":        `Answer %[1]s problems in a row without hints to pass a level.`,
	"welcome.rule.hints":         `Using hints means repeating the level.`,
	"welcome.rule.mistakes":      `A wrong attempt means repeating the level too.`,
	"welcome.start":              `Press any key to start level %[1]s.`,
}
