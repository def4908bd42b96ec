package smartcalc

import "github.com/edwingeng/deque"

// operandStack is a LIFO of intermediate values.
type operandStack struct {
	d deque.Deque
}

func newOperandStack() operandStack {
	return operandStack{d: deque.NewDeque()}
}

func (s operandStack) push(v float64) {
	s.d.PushBack(v)
}

// pop removes the top value. The second result is false if the stack is
// empty.
func (s operandStack) pop() (float64, bool) {
	if s.d.Empty() {
		return 0, false
	}
	return s.d.PopBack().(float64), true
}

func (s operandStack) len() int {
	return s.d.Len()
}

// pending is an operation waiting on the operator stack, with the column it
// came from for error reporting.
type pending struct {
	op  Operation
	pos int
}

// operatorStack is a LIFO of pending operations, including brace sentinels.
type operatorStack struct {
	d deque.Deque
}

func newOperatorStack() operatorStack {
	return operatorStack{d: deque.NewDeque()}
}

func (s operatorStack) push(p pending) {
	s.d.PushBack(p)
}

func (s operatorStack) pop() (pending, bool) {
	if s.d.Empty() {
		return pending{}, false
	}
	return s.d.PopBack().(pending), true
}

// top returns the top of the stack without removing it.
func (s operatorStack) top() (pending, bool) {
	if s.d.Empty() {
		return pending{}, false
	}
	return s.d.Back().(pending), true
}

func (s operatorStack) len() int {
	return s.d.Len()
}
