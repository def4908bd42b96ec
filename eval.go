package smartcalc

import "math"

// Calculator evaluates expressions under a set of resource limits. A
// Calculator holds no per-evaluation state, so it is safe to use
// concurrently.
type Calculator struct {
	maxlen   int
	maxdepth int
}

var defaultCalc = NewCalculator()

// EvaluateExpression evaluates an infix expression with the default limits.
func EvaluateExpression(text string) (float64, error) {
	return defaultCalc.EvaluateExpression(text)
}

// EvaluateExpression evaluates an infix expression. On failure, the result
// is 0 and the error is an *Error whose code says what went wrong.
func (c *Calculator) EvaluateExpression(text string) (float64, error) {
	if c.maxlen > 0 && len(text) > c.maxlen {
		return 0, fail(AllocationFailure, 0, "")
	}
	toks := regroup(lex(text).tokens())
	m := newMachine(c.maxdepth)
	for i, tok := range toks {
		var err *Error
		switch tok.kind {
		case tokenNum:
			err = m.number(tok)
		case tokenOp:
			err = m.operator(tok)
		case tokenFunc:
			var next lexToken
			if i+1 < len(toks) {
				next = toks[i+1]
			}
			err = m.function(tok, next)
		case tokenOpen:
			err = m.open(tok)
		case tokenClose:
			err = m.close(tok)
		case tokenInvalid:
			err = fail(tok.code, tok.pos, tok.text)
		case tokenEOF:
			return m.finish(tok)
		default:
			panic("smartcalc: unknown token: " + tok.String())
		}
		if err != nil {
			return 0, err
		}
	}
	panic("smartcalc: token stream without end")
}

// parseState records whether the last token completed an operand.
type parseState int8

const (
	// expectOperand is the state at the start, after an operator, and after
	// an open bracket. + and - are signs here.
	expectOperand parseState = iota
	// expectOperator is the state after a number or a close bracket. + and -
	// are binary here.
	expectOperator
)

// machine is the shunting-yard state for a single evaluation.
type machine struct {
	nums     operandStack
	ops      operatorStack
	state    parseState
	maxdepth int
}

func newMachine(maxdepth int) *machine {
	return &machine{
		nums:     newOperandStack(),
		ops:      newOperatorStack(),
		state:    expectOperand,
		maxdepth: maxdepth,
	}
}

func (m *machine) number(tok lexToken) *Error {
	if m.state == expectOperator {
		return fail(IncorrectNumberUsage, tok.pos, tok.text)
	}
	if err := m.pushNum(tok.val, tok.pos); err != nil {
		return err
	}
	m.state = expectOperator
	return nil
}

func (m *machine) operator(tok lexToken) *Error {
	if m.state == expectOperand {
		sign, ok := LookupSign(tok.text)
		if !ok {
			return fail(IncorrectOperatorUsage, tok.pos, tok.text)
		}
		// Signs reduce like any operator, so a sign directly on another
		// sign fails for want of an operand.
		return m.pushOperator(sign, tok.pos)
	}
	op, ok := Lookup(tok.text)
	if !ok {
		panic("smartcalc: lexer produced unknown operator " + tok.String())
	}
	if err := m.pushOperator(op, tok.pos); err != nil {
		return err
	}
	m.state = expectOperand
	return nil
}

// function pushes a function name. The name must begin an operand and be
// followed by an open bracket; the bracket itself is handled as a separate
// token.
func (m *machine) function(tok, next lexToken) *Error {
	if m.state == expectOperator || next.kind != tokenOpen {
		return fail(IncorrectFunctionUsage, tok.pos, tok.text)
	}
	op, _ := Lookup(tok.text)
	return m.pushPrefix(op, tok.pos)
}

func (m *machine) open(tok lexToken) *Error {
	m.state = expectOperand
	return m.pushPrefix(brace, tok.pos)
}

func (m *machine) close(tok lexToken) *Error {
	for {
		top, ok := m.ops.top()
		if !ok {
			return fail(BracesNotMatching, tok.pos, tok.text)
		}
		if top.op.IsBrace() {
			break
		}
		if err := m.reduce(); err != nil {
			return err
		}
	}
	m.ops.pop()
	m.state = expectOperator
	return nil
}

// finish drains the operator stack once the input is exhausted.
func (m *machine) finish(eof lexToken) (float64, error) {
	for {
		top, ok := m.ops.top()
		if !ok {
			break
		}
		if top.op.IsBrace() {
			return 0, fail(BracesNotMatching, top.pos, top.op.Symbol)
		}
		if err := m.reduce(); err != nil {
			return 0, err
		}
	}
	if m.nums.len() != 1 {
		return 0, fail(InvalidExpr, eof.pos, "")
	}
	r, _ := m.nums.pop()
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return 0, fail(NonFinite, 0, "")
	}
	return r, nil
}

// pushOperator reduces every pending operation of equal or higher priority,
// then pushes op. Equal priorities therefore fold left to right.
func (m *machine) pushOperator(op Operation, pos int) *Error {
	for {
		top, ok := m.ops.top()
		if !ok || op.Priority > top.op.Priority {
			break
		}
		if err := m.reduce(); err != nil {
			return err
		}
	}
	return m.pushPrefix(op, pos)
}

// pushPrefix pushes op without reducing. Function names and open brackets
// can't complete anything already on the stack.
func (m *machine) pushPrefix(op Operation, pos int) *Error {
	if m.maxdepth > 0 && m.ops.len() >= m.maxdepth {
		return fail(AllocationFailure, pos, op.Symbol)
	}
	m.ops.push(pending{op: op, pos: pos})
	return nil
}

func (m *machine) pushNum(v float64, pos int) *Error {
	if m.maxdepth > 0 && m.nums.len() >= m.maxdepth {
		return fail(AllocationFailure, pos, "")
	}
	m.nums.push(v)
	return nil
}

// reduce applies the top pending operation to the operand stack. The right
// operand of a binary operation is the one pushed last.
func (m *machine) reduce() *Error {
	p, ok := m.ops.pop()
	if !ok {
		return fail(InvalidSyntax, 0, "")
	}
	a, ok := m.nums.pop()
	if !ok {
		return fail(InvalidSyntax, p.pos, p.op.Symbol)
	}
	if p.op.IsBrace() {
		return fail(BracesNotMatching, p.pos, p.op.Symbol)
	}
	if p.op.Arity == Unary {
		m.nums.push(p.op.apply1(a))
		return nil
	}
	b, ok := m.nums.pop()
	if !ok {
		return fail(InvalidSyntax, p.pos, p.op.Symbol)
	}
	m.nums.push(p.op.apply2(b, a))
	return nil
}
