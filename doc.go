// Package smartcalc implements the expression engine of a calculator.
//
// Expressions are infix arithmetic on float64: + - * / ^ and mod, brackets,
// unary signs, and the functions sqrt, sin, cos, tan, asin, acos, atan, ln,
// and log, each applied to a bracketed operand as in "sin(x)". Exponentiation
// is right-associative, so "2^3^2" is 512. Signs bind tighter than anything
// else, so "-2^2" is 4.
//
// EvaluateEquation evaluates the same grammar after substituting a value for
// the variable x, which is meant for sampling a function over many points.
//
// Failures are *Error values carrying an ErrorCode; use errors.Is with a
// code, or Code, to classify them. Results that are infinite or NaN, such as
// after a division by zero, fail with NonFinite.
package smartcalc
