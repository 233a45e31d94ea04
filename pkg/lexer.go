package exprc

import (
	"strings"
	"unicode"
)

type TokenType int
type stateFunc func(l *Lexer) stateFunc

const (
	EOF rune = 0

	TokenNumber TokenType = iota
	TokenIdentifier
	TokenOperator
)

func (t TokenType) String() string {
	switch t {
	case TokenNumber:
		return "NUMBER"
	case TokenIdentifier:
		return "IDENT"
	case TokenOperator:
		return "OPERATOR"
	default:
		return "UNKNOWN"
	}
}

type Token struct {
	Typ   TokenType
	Value string
}

func (t Token) isOperator(op string) bool {
	return t.Typ == TokenOperator && t.Value == op
}

// Lexer scans an expression left to right with an explicit cursor. The
// cursor index doubles as the position reported in lexical errors.
type Lexer struct {
	input  []rune
	pos    int
	tokens []Token
	err    *LexicalError
}

func NewLexer(input string) *Lexer {
	return &Lexer{
		input: []rune(input),
	}
}

// Run drives the state machine until EOF or the first lexical error.
func (l *Lexer) Run() ([]Token, error) {
	for state := defaultState; state != nil; {
		state = state(l)
	}

	if l.err != nil {
		return nil, l.err
	}

	return l.tokens, nil
}

func defaultState(l *Lexer) stateFunc {
	for {
		switch r := l.peek(); {
		case r == EOF:
			return nil
		case unicode.IsSpace(r):
			l.next()
			continue
		case isDigit(r), r == '.' && isDigit(l.peekAt(1)):
			return numberState
		case unicode.IsLetter(r):
			return identifierState
		default:
			return operatorState
		}
	}
}

func numberState(l *Lexer) stateFunc {
	var num strings.Builder

	dots := 0
	for r := l.peek(); isDigit(r) || r == '.'; r = l.peek() {
		if r == '.' {
			dots++
		}

		num.WriteRune(l.next())
	}

	if dots > 1 {
		return l.errorf("Invalid number format: multiple dots")
	}

	return l.emit(TokenNumber, num.String())
}

func identifierState(l *Lexer) stateFunc {
	var id strings.Builder
	for r := l.peek(); unicode.IsLetter(r) || isDigit(r); r = l.peek() {
		id.WriteRune(l.next())
	}

	return l.emit(TokenIdentifier, id.String())
}

func operatorState(l *Lexer) stateFunc {
	pos := l.pos + 1 // positions are 1-based in error messages
	r := l.next()

	switch r {
	case '+', '-', '*', '/', '(', ')':
		return l.emit(TokenOperator, string(r))
	default:
		return l.errorf("Invalid character '%c' at position %d", r, pos)
	}
}

func (l *Lexer) errorf(format string, args ...interface{}) stateFunc {
	l.err = lexicalErrorf(format, args...)
	return nil
}

func (l *Lexer) emit(t TokenType, val string) stateFunc {
	l.tokens = append(l.tokens, Token{
		Typ:   t,
		Value: val,
	})

	return defaultState
}

func (l *Lexer) peek() rune {
	return l.peekAt(0)
}

func (l *Lexer) peekAt(offset int) rune {
	if l.pos+offset >= len(l.input) {
		return EOF
	}

	return l.input[l.pos+offset]
}

func (l *Lexer) next() rune {
	r := l.peek()
	if r != EOF {
		l.pos++
	}

	return r
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
