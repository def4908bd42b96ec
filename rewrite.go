package smartcalc

import "strings"

// regroup makes exponentiation right-associative for a reducer that folds
// equal priorities left to right. For each ^, it finds the run of tokens
// forming its right operand chain; if that run contains another ^, the run
// is wrapped in brackets, so a^b^c^d becomes a^(b^(c^d)). The input is not
// modified.
//
// A run is a maximal sequence of numbers, function names, mod, ^, and
// complete bracketed groups. Signs end a run, so 2^-3^2 is (2^-3)^2.
//
// Runs of ^ operators inside one run all end at the same token, so every
// wrap can be found on the input stream and the output is built once.
func regroup(toks []lexToken) []lexToken {
	end, nested := powruns(toks)
	closes := make([]int, len(toks)+1)
	wraps := 0
	for i, t := range toks {
		if t.isOp("^") && i+1 < len(toks) && nested[i+1] {
			closes[end[i+1]]++
			wraps++
		}
	}
	if wraps == 0 {
		return append([]lexToken(nil), toks...)
	}
	out := make([]lexToken, 0, len(toks)+2*wraps)
	for i, t := range toks {
		for ; closes[i] > 0; closes[i]-- {
			out = append(out, lexToken{text: ")", kind: tokenClose})
		}
		out = append(out, t)
		if t.isOp("^") && i+1 < len(toks) && nested[i+1] {
			out = append(out, lexToken{text: "(", kind: tokenOpen})
		}
	}
	for ; closes[len(toks)] > 0; closes[len(toks)]-- {
		out = append(out, lexToken{text: ")", kind: tokenClose})
	}
	return out
}

// powruns finds, for every index j, the index just past the exponent run
// starting at toks[j] and whether that run contains a ^ outside of brackets.
// Both slices have len(toks)+1 entries.
func powruns(toks []lexToken) (end []int, nested []bool) {
	match := matchclose(toks)
	end = make([]int, len(toks)+1)
	nested = make([]bool, len(toks)+1)
	end[len(toks)] = len(toks)
	for j := len(toks) - 1; j >= 0; j-- {
		t := toks[j]
		switch {
		case t.kind == tokenNum, t.kind == tokenFunc, t.isOp("mod"):
			end[j], nested[j] = end[j+1], nested[j+1]
		case t.isOp("^"):
			end[j], nested[j] = end[j+1], true
		case t.kind == tokenOpen && match[j] >= 0:
			k := match[j] + 1
			end[j], nested[j] = end[k], nested[k]
		default:
			// Signs, other operators, closing brackets, and unmatched
			// groups end the run. An unmatched group is left for the
			// evaluator to report.
			end[j] = j
		}
	}
	return end, nested
}

// matchclose pairs brackets. The result holds, for each open bracket, the
// index of its close bracket, or -1 if there is none.
func matchclose(toks []lexToken) []int {
	match := make([]int, len(toks))
	var open []int
	for k, t := range toks {
		match[k] = -1
		switch t.kind {
		case tokenOpen:
			open = append(open, k)
		case tokenClose:
			if len(open) > 0 {
				match[open[len(open)-1]] = k
				open = open[:len(open)-1]
			}
		}
	}
	return match
}

// Grouping shows how an expression will be grouped for evaluation: spaces
// are dropped and the brackets added around exponent chains are written
// out, so "2 ^ 3 ^ 2" gives "2^(3^2)". It fails only if text can't be
// scanned.
func Grouping(text string) (string, error) {
	var b strings.Builder
	for _, tok := range regroup(lex(text).tokens()) {
		switch tok.kind {
		case tokenInvalid:
			return "", fail(tok.code, tok.pos, tok.text)
		case tokenOp:
			if tok.text == "mod" {
				b.WriteString(" mod ")
				continue
			}
		}
		b.WriteString(tok.text)
	}
	return b.String(), nil
}
