package smartcalc

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

type lexToken struct {
	text string
	kind tokenKind
	// pos is the 1-based byte column of the token, or 0 for tokens inserted
	// by the rewriter.
	pos int
	// val is the value of a number token.
	val float64
	// code is the failure carried by an invalid token.
	code ErrorCode
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

// isOp reports whether t is the operator token sym.
func (t lexToken) isOp(sym string) bool {
	return t.kind == tokenOp && t.text == sym
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a decimal literal.
	tokenNum
	// tokenOp is one of + - * / ^ or mod.
	tokenOp
	// tokenFunc is a function name.
	tokenFunc
	// tokenOpen is an open bracket.
	tokenOpen
	// tokenClose is a close bracket.
	tokenClose
	// tokenInvalid is text that can't be scanned. It is always the last
	// token the lexer produces.
	tokenInvalid
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token

// Operators contains the single-byte operators. mod is spelled out and is
// scanned as a word.
const Operators = "+-*/^"

type lexer struct {
	src  string
	off  int
	done bool
}

func lex(src string) *lexer {
	return &lexer{src: src}
}

// next scans the next token. After the lexer returns an EOF or invalid
// token, every subsequent call returns EOF.
func (l *lexer) next() lexToken {
	if l.done {
		return lexToken{kind: tokenEOF, pos: len(l.src) + 1}
	}
	for l.off < len(l.src) && isSpace(l.src[l.off]) {
		l.off++
	}
	tok := lexToken{pos: l.off + 1}
	if l.off >= len(l.src) {
		l.done = true
		tok.kind = tokenEOF
		return tok
	}
	c := l.src[l.off]
	switch {
	case isDigit(c), c == '.':
		return l.scanNum(tok)
	case isLetter(c):
		return l.scanWord(tok)
	case c == '(':
		l.off++
		tok.text, tok.kind = "(", tokenOpen
	case c == ')':
		l.off++
		tok.text, tok.kind = ")", tokenClose
	case strings.IndexByte(Operators, c) >= 0:
		l.off++
		tok.text, tok.kind = string(c), tokenOp
	default:
		// Report the whole rune so that the error message is readable.
		_, sz := utf8.DecodeRuneInString(l.src[l.off:])
		tok.text = l.src[l.off : l.off+sz]
		return l.invalid(tok, InvalidExpr)
	}
	return tok
}

// scanNum scans the longest decimal literal at the cursor: digits with at
// most one dot, and at least one digit. Exponents are not part of the
// grammar, so 1e5 is a number followed by a word.
func (l *lexer) scanNum(tok lexToken) lexToken {
	start := l.off
	dig, dot := false, false
	for ; l.off < len(l.src); l.off++ {
		c := l.src[l.off]
		if isDigit(c) {
			dig = true
			continue
		}
		if c == '.' && !dot {
			dot = true
			continue
		}
		break
	}
	tok.text = l.src[start:l.off]
	if !dig {
		return l.invalid(tok, IncorrectNumberUsage)
	}
	v, err := strconv.ParseFloat(tok.text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// Unreachable given the scan above, but don't trust it blindly.
		return l.invalid(tok, IncorrectNumberUsage)
	}
	// Out of range literals become ±Inf or 0 like any other overflow.
	tok.kind, tok.val = tokenNum, v
	return tok
}

// scanWord scans a run of letters and classifies it as mod, a function, or
// an error.
func (l *lexer) scanWord(tok lexToken) lexToken {
	start := l.off
	for l.off < len(l.src) && isLetter(l.src[l.off]) {
		l.off++
	}
	tok.text = l.src[start:l.off]
	switch {
	case tok.text == "mod":
		tok.kind = tokenOp
	case IsFunction(tok.text):
		tok.kind = tokenFunc
	case startsKeyword(tok.text[0]):
		return l.invalid(tok, IncorrectFunctionUsage)
	default:
		return l.invalid(tok, InvalidExpr)
	}
	return tok
}

func (l *lexer) invalid(tok lexToken, code ErrorCode) lexToken {
	l.done = true
	tok.kind = tokenInvalid
	tok.code = code
	return tok
}

// tokens scans the entire input. The result always ends with an EOF or an
// invalid token.
func (l *lexer) tokens() []lexToken {
	var toks []lexToken
	for {
		tok := l.next()
		toks = append(toks, tok)
		if tok.kind == tokenEOF || tok.kind == tokenInvalid {
			return toks
		}
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

