package smartcalc

import (
	"math"
	"strconv"
	"strings"
)

// Variable is the symbol that EvaluateEquation substitutes.
const Variable = 'x'

// EvaluateEquation evaluates an expression in x with the default limits.
func EvaluateEquation(text string, x float64) (float64, error) {
	return defaultCalc.EvaluateEquation(text, x)
}

// EvaluateEquation substitutes the decimal text of x for every occurrence of
// Variable in text, then evaluates the result as EvaluateExpression does.
// Callers sampling a function over a range call it once per point.
//
// A Variable directly preceded by a digit or another Variable (ignoring
// spaces) is ambiguous and fails with InvalidXExpr, as does a non-finite x.
// A Variable after a dot, as in "2.x", is rejected too. That goes beyond
// the digit rule; without it the splice would fuse into a longer literal. Columns in errors from the evaluation itself refer to the
// substituted text.
func (c *Calculator) EvaluateEquation(text string, x float64) (float64, error) {
	s, err := substitute(text, x)
	if err != nil {
		return 0, err
	}
	return c.EvaluateExpression(s)
}

// substitute replaces each Variable with the value of x followed by a space,
// so that no two literals can fuse into one. No operator is inserted: "2 x"
// is rejected and "x 2" becomes two adjacent numbers.
func substitute(text string, x float64) (string, error) {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return "", fail(InvalidXExpr, 0, strconv.FormatFloat(x, 'g', -1, 64))
	}
	if strings.IndexByte(text, Variable) < 0 {
		return text, nil
	}
	num := strconv.FormatFloat(x, 'f', -1, 64)
	var b strings.Builder
	b.Grow(len(text) + 4*len(num))
	var prev byte
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != Variable {
			b.WriteByte(c)
			if !isSpace(c) {
				prev = c
			}
			continue
		}
		if isDigit(prev) || prev == '.' || prev == Variable {
			return "", fail(InvalidXExpr, i+1, string(Variable))
		}
		b.WriteString(num)
		b.WriteByte(' ')
		prev = Variable
	}
	return b.String(), nil
}
