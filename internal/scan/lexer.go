// Package scan implements the lexical grammar shared by the block envelope
// and every domain body: whitespace and line comments, double-quoted string
// literals, decimal numbers, identifiers and operator punctuation.
//
// A single '/' is the division operator; only the two-character sequence
// "//" opens a comment. The lexer decides by peeking one rune ahead, so an
// expression such as 5x/3 is never swallowed as a comment start.
package scan

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Lexer turns source text into a stream of tokens.
type Lexer struct {
	src string

	pos    int // byte index of the rune after ch
	line   int
	column int

	ch    rune // current rune, 0 at EOF
	width int  // byte width of ch
	done  bool
}

// Error is a lexical error anchored to the offending rune.
type Error struct {
	Line   int
	Column int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
}

// New returns a lexer over src positioned at the first rune.
func New(src string) *Lexer {
	l := &Lexer{src: src, line: 1, column: 0}
	l.readRune()
	return l
}

func (l *Lexer) readRune() {
	if l.pos >= len(l.src) {
		l.ch = 0
		l.width = 0
		l.done = true
		return
	}
	r, w := utf8.DecodeRuneInString(l.src[l.pos:])
	l.ch = r
	l.width = w
	l.pos += w
	if r == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

func (l *Lexer) peekRune() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	return r
}

func (l *Lexer) token(tt Type, lexeme string, line, col int) Token {
	return Token{Type: tt, Lexeme: lexeme, Line: line, Column: col}
}

// Next returns the next token, or an *Error for malformed input. The final
// token is always EOF.
func (l *Lexer) Next() (Token, error) {
	for {
		if l.done {
			return l.token(EOF, "", l.line, l.column), nil
		}
		if l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
			l.readRune()
			continue
		}
		// "//" opens a comment; a lone '/' falls through as an operator.
		if l.ch == '/' && l.peekRune() == '/' {
			for !l.done && l.ch != '\n' {
				l.readRune()
			}
			continue
		}
		break
	}

	line, col := l.line, l.column

	switch {
	case isIdentStart(l.ch):
		return l.scanIdent(line, col), nil
	case unicode.IsDigit(l.ch):
		return l.scanNumber(line, col)
	case l.ch == '"':
		return l.scanString(line, col)
	}

	ch := l.ch
	l.readRune()

	switch ch {
	case '{':
		return l.token(LBRACE, "{", line, col), nil
	case '}':
		return l.token(RBRACE, "}", line, col), nil
	case '[':
		return l.token(LBRACKET, "[", line, col), nil
	case ']':
		return l.token(RBRACKET, "]", line, col), nil
	case '(':
		return l.token(LPAREN, "(", line, col), nil
	case ')':
		return l.token(RPAREN, ")", line, col), nil
	case ':':
		return l.token(COLON, ":", line, col), nil
	case ';':
		return l.token(SEMI, ";", line, col), nil
	case ',':
		return l.token(COMMA, ",", line, col), nil
	case '+':
		return l.token(PLUS, "+", line, col), nil
	case '-':
		return l.token(MINUS, "-", line, col), nil
	case '*':
		return l.token(STAR, "*", line, col), nil
	case '/':
		return l.token(SLASH, "/", line, col), nil
	case '=':
		return l.token(EQ, "=", line, col), nil
	case '<':
		if l.ch == '=' {
			l.readRune()
			return l.token(LE, "<=", line, col), nil
		}
		return l.token(LT, "<", line, col), nil
	case '>':
		if l.ch == '=' {
			l.readRune()
			return l.token(GE, ">=", line, col), nil
		}
		return l.token(GT, ">", line, col), nil
	}

	return Token{}, &Error{Line: line, Column: col, Msg: fmt.Sprintf("unexpected character %q", ch)}
}

func (l *Lexer) scanIdent(line, col int) Token {
	start := l.pos - l.width
	for !l.done && isIdentPart(l.ch) {
		l.readRune()
	}
	end := l.pos - l.width
	if l.done {
		end = len(l.src)
	}
	return l.token(IDENT, l.src[start:end], line, col)
}

func (l *Lexer) scanNumber(line, col int) (Token, error) {
	start := l.pos - l.width
	sawDot := false
	for !l.done && (unicode.IsDigit(l.ch) || l.ch == '.') {
		if l.ch == '.' {
			if sawDot || !unicode.IsDigit(l.peekRune()) {
				break
			}
			sawDot = true
		}
		l.readRune()
	}
	end := l.pos - l.width
	if l.done {
		end = len(l.src)
	}
	return l.token(NUMBER, l.src[start:end], line, col), nil
}

func (l *Lexer) scanString(line, col int) (Token, error) {
	l.readRune() // opening quote
	var out []rune
	for {
		if l.done || l.ch == '\n' {
			return Token{}, &Error{Line: line, Column: col, Msg: "unterminated string literal"}
		}
		if l.ch == '"' {
			l.readRune()
			return l.token(STRING, string(out), line, col), nil
		}
		if l.ch == '\\' {
			l.readRune()
			switch l.ch {
			case '"', '\\':
				out = append(out, l.ch)
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			default:
				return Token{}, &Error{Line: l.line, Column: l.column, Msg: fmt.Sprintf("unknown escape \\%c", l.ch)}
			}
			l.readRune()
			continue
		}
		out = append(out, l.ch)
		l.readRune()
	}
}

// All tokenizes src in full, including the terminal EOF token.
func All(src string) ([]Token, error) {
	l := New(src)
	var toks []Token
	for {
		t, err := l.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, t)
		if t.Type == EOF {
			return toks, nil
		}
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
