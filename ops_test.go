package smartcalc_test

import (
	"math"
	"math/big"
	"strconv"
	"testing"

	"github.com/zephyrtronium/bigfloat"

	"github.com/zephyrtronium/smartcalc"
)

func TestRegistry(t *testing.T) {
	cases := []struct {
		sym   string
		arity smartcalc.Arity
		prio  smartcalc.Priority
	}{
		{"+", smartcalc.Binary, smartcalc.PrioritySimple},
		{"-", smartcalc.Binary, smartcalc.PrioritySimple},
		{"*", smartcalc.Binary, smartcalc.PriorityComplex},
		{"/", smartcalc.Binary, smartcalc.PriorityComplex},
		{"mod", smartcalc.Binary, smartcalc.PriorityComplex},
		{"^", smartcalc.Binary, smartcalc.PriorityFunction},
		{"sqrt", smartcalc.Unary, smartcalc.PriorityFunction},
		{"sin", smartcalc.Unary, smartcalc.PriorityFunction},
		{"cos", smartcalc.Unary, smartcalc.PriorityFunction},
		{"tan", smartcalc.Unary, smartcalc.PriorityFunction},
		{"asin", smartcalc.Unary, smartcalc.PriorityFunction},
		{"acos", smartcalc.Unary, smartcalc.PriorityFunction},
		{"atan", smartcalc.Unary, smartcalc.PriorityFunction},
		{"ln", smartcalc.Unary, smartcalc.PriorityFunction},
		{"log", smartcalc.Unary, smartcalc.PriorityFunction},
	}
	for _, c := range cases {
		op, ok := smartcalc.Lookup(c.sym)
		if !ok {
			t.Errorf("%q not registered", c.sym)
			continue
		}
		if op.Symbol != c.sym || op.Arity != c.arity || op.Priority != c.prio {
			t.Errorf("wrong operation for %q: want %v %v, got %q %v %v", c.sym, c.arity, c.prio, op.Symbol, op.Arity, op.Priority)
		}
		if op.IsBrace() {
			t.Errorf("%q is a brace", c.sym)
		}
		if got, want := smartcalc.IsFunction(c.sym), c.arity == smartcalc.Unary; got != want {
			t.Errorf("IsFunction(%q) is %t", c.sym, got)
		}
	}
	for _, sym := range []string{"+", "-"} {
		op, ok := smartcalc.LookupSign(sym)
		if !ok || op.Arity != smartcalc.Unary || op.Priority != smartcalc.PrioritySign {
			t.Errorf("wrong sign for %q: %+v %t", sym, op, ok)
		}
	}
	for _, sym := range []string{"", "(", ")", "x", "exp", "pi", "%", "Sin"} {
		if _, ok := smartcalc.Lookup(sym); ok {
			t.Errorf("%q is registered", sym)
		}
	}
	for _, sym := range []string{"*", "/", "^", "mod", "sin"} {
		if _, ok := smartcalc.LookupSign(sym); ok {
			t.Errorf("%q is a sign", sym)
		}
	}
}

func TestPriorityOrder(t *testing.T) {
	order := []smartcalc.Priority{
		smartcalc.PriorityBrace,
		smartcalc.PrioritySimple,
		smartcalc.PriorityComplex,
		smartcalc.PriorityFunction,
		smartcalc.PrioritySign,
	}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Errorf("%v is not below %v", order[i-1], order[i])
		}
	}
}

// oracle computes reference results at high precision.
type oracle struct {
	name string
	expr func(x string) string
	f    func(z, x *big.Float) *big.Float
	// max is the largest input to check, or 0 for all of them.
	max float64
}

const oracleprec = 256

var oracles = []oracle{
	{
		name: "ln",
		expr: func(x string) string { return "ln(" + x + ")" },
		f:    bigfloat.Log,
	},
	{
		name: "log",
		expr: func(x string) string { return "log(" + x + ")" },
		f: func(z, x *big.Float) *big.Float {
			var ten big.Float
			ten.SetPrec(oracleprec).SetInt64(10)
			bigfloat.Log(z, x)
			bigfloat.Log(&ten, &ten)
			return z.Quo(z, &ten)
		},
	},
	{
		name: "sqrt",
		expr: func(x string) string { return "sqrt(" + x + ")" },
		f:    (*big.Float).Sqrt,
	},
	{
		name: "pow",
		expr: func(x string) string { return x + "^1.75" },
		f: func(z, x *big.Float) *big.Float {
			y := new(big.Float).SetPrec(oracleprec).SetFloat64(1.75)
			return bigfloat.Pow(z, x, y)
		},
	},
	{
		name: "exp-base",
		expr: func(x string) string { return "1.5^" + x },
		f: func(z, x *big.Float) *big.Float {
			b := new(big.Float).SetPrec(oracleprec).SetFloat64(1.5)
			return bigfloat.Pow(z, b, x)
		},
		max: 100,
	},
}

func TestFunctionAccuracy(t *testing.T) {
	inputs := []float64{0.001, 0.25, 0.5, 0.9, 1.1, 2, 3, 7.5, 10, 123.456, 4096, 1e6}
	for _, o := range oracles {
		o := o
		t.Run(o.name, func(t *testing.T) {
			for _, x := range inputs {
				if o.max > 0 && x > o.max {
					continue
				}
				s := strconv.FormatFloat(x, 'f', -1, 64)
				got, err := smartcalc.EvaluateExpression(o.expr(s))
				if err != nil {
					t.Errorf("error evaluating %q: %v", o.expr(s), err)
					continue
				}
				bx := new(big.Float).SetPrec(oracleprec).SetFloat64(x)
				z := new(big.Float).SetPrec(oracleprec)
				want, _ := o.f(z, bx).Float64()
				if d := ulps(got, want); d > 4 {
					t.Errorf("%q is %v, off by %d ulps from %v", o.expr(s), got, d, want)
				}
			}
		})
	}
}

// ulps gives the distance between two finite floats of the same sign in
// units in the last place.
func ulps(a, b float64) uint64 {
	if a == b {
		return 0
	}
	if math.Signbit(a) != math.Signbit(b) {
		return math.MaxUint64
	}
	x, y := math.Float64bits(math.Abs(a)), math.Float64bits(math.Abs(b))
	if x > y {
		return x - y
	}
	return y - x
}
