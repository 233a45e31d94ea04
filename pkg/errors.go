package exprc

import "fmt"

// LexicalError aborts scanning at the first offending character. The
// pipeline never recovers or collects further errors.
type LexicalError struct {
	Message string
}

func (e *LexicalError) Error() string {
	return e.Message
}

func lexicalErrorf(format string, args ...interface{}) *LexicalError {
	return &LexicalError{Message: fmt.Sprintf(format, args...)}
}

// SyntaxError aborts parsing at the first token that does not fit the
// grammar.
type SyntaxError struct {
	Message string
}

func (e *SyntaxError) Error() string {
	return e.Message
}

func syntaxErrorf(format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Message: fmt.Sprintf(format, args...)}
}
