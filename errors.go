package smartcalc

import (
	"errors"
	"strconv"
)

// ErrorCode classifies the outcome of an evaluation. Every non-Success code
// is also an error, so callers can match on it with errors.Is.
type ErrorCode int8

const (
	Success ErrorCode = iota
	// AllocationFailure means the input exceeded the calculator's resource
	// limits.
	AllocationFailure
	// InvalidSyntax means a reduction found too few operands or operators.
	InvalidSyntax
	// BracesNotMatching means an open or close bracket has no partner.
	BracesNotMatching
	// IncorrectNumberUsage means a malformed literal or two adjacent numbers.
	IncorrectNumberUsage
	// IncorrectOperatorUsage means a binary operator with no left operand.
	IncorrectOperatorUsage
	// IncorrectFunctionUsage means a misspelled or misplaced function name.
	IncorrectFunctionUsage
	// InvalidXExpr means the variable is placed where substitution would be
	// ambiguous, or its value cannot be written as a literal.
	InvalidXExpr
	// InvalidExpr means an unknown character or a leftover operand.
	InvalidExpr
	// NonFinite means the result is infinite or NaN, e.g. after a division
	// by zero.
	NonFinite
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=ErrorCode -output=errors_string.go

var codemsgs = [...]string{
	Success:                "success",
	AllocationFailure:      "allocation failure",
	InvalidSyntax:          "invalid expression syntax",
	BracesNotMatching:      "braces not matching",
	IncorrectNumberUsage:   "incorrect number usage",
	IncorrectOperatorUsage: "incorrect operator usage",
	IncorrectFunctionUsage: "incorrect function usage",
	InvalidXExpr:           "invalid equation",
	InvalidExpr:            "invalid expression",
	NonFinite:              "result is not finite",
}

func (c ErrorCode) Error() string {
	if c < 0 || int(c) >= len(codemsgs) {
		return c.String()
	}
	return codemsgs[c]
}

// Code returns the code of an error produced by the calculator. A nil error
// is Success. Errors that don't come from the calculator are InvalidExpr.
func Code(err error) ErrorCode {
	if err == nil {
		return Success
	}
	var c ErrorCode
	if errors.As(err, &c) {
		return c
	}
	return InvalidExpr
}

// Error is an evaluation failure with position information. It implements
// InputError and unwraps to its ErrorCode.
type Error struct {
	// Code classifies the failure.
	Code ErrorCode
	// Col is the 1-based byte column of the token that caused the failure,
	// or 0 when the failure belongs to the expression as a whole.
	Col int
	// Text is the offending token, if any.
	Text string
}

func (err *Error) Error() string {
	msg := err.Code.Error()
	if err.Text != "" {
		msg += ": " + strconv.Quote(err.Text)
	}
	if err.Col <= 0 {
		return msg
	}
	return errpos(err.Col, msg)
}

func (err *Error) Unwrap() error {
	return err.Code
}

func (err *Error) Pos() int {
	return err.Col
}

// fail is a shortcut to create an *Error.
func fail(code ErrorCode, col int, text string) *Error {
	return &Error{Code: code, Col: col, Text: text}
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the column of the token that caused the error, or 0 if
	// no single token is to blame.
	Pos() int
}

var _ InputError = (*Error)(nil)
