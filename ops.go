package smartcalc

import "math"

// Arity is the number of operands an operation consumes.
type Arity int8

const (
	Unary Arity = iota
	Binary
)

// Priority is the precedence tier of an operation. Higher tiers reduce first.
type Priority int8

const (
	// PriorityBrace is the tier of the open-brace sentinel. Nothing reduces
	// past it.
	PriorityBrace Priority = iota
	// PrioritySimple is addition and subtraction.
	PrioritySimple
	// PriorityComplex is multiplication, division, and mod.
	PriorityComplex
	// PriorityFunction is exponentiation and named functions.
	PriorityFunction
	// PrioritySign is unary plus and minus.
	PrioritySign
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Arity,Priority -trimprefix=Priority -output=ops_string.go

// Operation describes an operator or function known to the calculator.
// Operations are values; the registry never hands out anything mutable.
type Operation struct {
	// Symbol is the text that names the operation in an expression.
	Symbol   string
	Arity    Arity
	Priority Priority

	unary  func(float64) float64
	binary func(a, b float64) float64
}

// apply1 calls a unary operation.
func (op Operation) apply1(x float64) float64 {
	return op.unary(x)
}

// apply2 calls a binary operation with a as the left-hand side.
func (op Operation) apply2(a, b float64) float64 {
	return op.binary(a, b)
}

// IsBrace reports whether op is the open-brace sentinel.
func (op Operation) IsBrace() bool {
	return op.Priority == PriorityBrace
}

func monadic(sym string, prio Priority, f func(float64) float64) Operation {
	return Operation{Symbol: sym, Arity: Unary, Priority: prio, unary: f}
}

func dyadic(sym string, prio Priority, f func(a, b float64) float64) Operation {
	return Operation{Symbol: sym, Arity: Binary, Priority: prio, binary: f}
}

// brace is the operator-stack sentinel for an open bracket.
var brace = Operation{Symbol: "(", Arity: Unary, Priority: PriorityBrace}

// operations holds binary operators and named functions by their symbol.
var operations = map[string]Operation{
	"+":   dyadic("+", PrioritySimple, func(a, b float64) float64 { return a + b }),
	"-":   dyadic("-", PrioritySimple, func(a, b float64) float64 { return a - b }),
	"*":   dyadic("*", PriorityComplex, func(a, b float64) float64 { return a * b }),
	"/":   dyadic("/", PriorityComplex, func(a, b float64) float64 { return a / b }),
	"mod": dyadic("mod", PriorityComplex, math.Mod),
	"^":   dyadic("^", PriorityFunction, math.Pow),

	"sqrt": monadic("sqrt", PriorityFunction, math.Sqrt),
	"sin":  monadic("sin", PriorityFunction, math.Sin),
	"cos":  monadic("cos", PriorityFunction, math.Cos),
	"tan":  monadic("tan", PriorityFunction, math.Tan),
	"asin": monadic("asin", PriorityFunction, math.Asin),
	"acos": monadic("acos", PriorityFunction, math.Acos),
	"atan": monadic("atan", PriorityFunction, math.Atan),
	"ln":   monadic("ln", PriorityFunction, math.Log),
	"log":  monadic("log", PriorityFunction, math.Log10),
}

// signs holds the unary prefix forms of + and -.
var signs = map[string]Operation{
	"+": monadic("+", PrioritySign, func(x float64) float64 { return x }),
	"-": monadic("-", PrioritySign, func(x float64) float64 { return -x }),
}

// keywords is the set of alphabetic symbols in the registry, i.e. the named
// functions plus mod.
var keywords = func() map[string]bool {
	m := make(map[string]bool)
	for k := range operations {
		if isLetter(k[0]) {
			m[k] = true
		}
	}
	return m
}()

// Lookup finds a binary operator or named function by its symbol. Unary
// signs are found with LookupSign instead.
func Lookup(symbol string) (Operation, bool) {
	op, ok := operations[symbol]
	return op, ok
}

// LookupSign finds the unary form of + or -.
func LookupSign(symbol string) (Operation, bool) {
	op, ok := signs[symbol]
	return op, ok
}

// IsFunction reports whether name is a named function, as opposed to an
// operator keyword like mod.
func IsFunction(name string) bool {
	op, ok := operations[name]
	return ok && op.Arity == Unary
}

// startsKeyword reports whether some keyword begins with c. Words that start
// like a keyword but aren't one are function misuse rather than garbage.
func startsKeyword(c byte) bool {
	for k := range keywords {
		if k[0] == c {
			return true
		}
	}
	return false
}
