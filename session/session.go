/*
File    : lox-mix/session/session.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package session implements the ambient reporting hook shared by every
pipeline stage (lexer, parser, resolver, interpreter): a single
Reporter value collects the had-error/had-runtime-error flags and
formats diagnostics to an injected io.Writer, rather than a global
mutable color var the way go-mix's repl/main packages do it. Keeping
the core reentrant and testable is the point. Diagnostics are written
as plain uncolored text; neither cmd/lox nor the REPL colorizes them.
*/
package session

import (
	"fmt"
	"io"

	"github.com/akashmaji946/lox-mix/interpreter"
	"github.com/akashmaji946/lox-mix/lexer"
)

// Reporter implements lexer.ErrorReporter, parser.ErrorReporter,
// resolver.ErrorReporter, and interpreter.ErrorReporter, giving every
// stage a single place to report through. HadError and HadRuntimeError
// are read by the driver (repl/cmd) to decide whether to keep going
// (REPL) or pick an exit code (cmd/lox).
type Reporter struct {
	HadError        bool
	HadRuntimeError bool
	writer          io.Writer
}

// New builds a Reporter writing every diagnostic to w (any io.Writer;
// io.WriteString picks the efficient WriteString path when w offers
// one, e.g. *os.File or *bytes.Buffer).
func New(w io.Writer) *Reporter {
	return &Reporter{writer: w}
}

// Reset clears both error flags, called once per REPL line so an
// earlier line's mistake never shadows a later line's success.
func (r *Reporter) Reset() {
	r.HadError = false
	r.HadRuntimeError = false
}

// Error reports a lexer-stage diagnostic keyed only by line number.
func (r *Reporter) Error(line int, message string) {
	r.report(line, "", message)
}

// TokenError reports a parser/resolver-stage diagnostic, rendering
// `<WHERE>` as " at end" for an EOF token, " at '<lexeme>'" otherwise
// — spec.md §6's exact compile-error format.
func (r *Reporter) TokenError(token lexer.Token, message string) {
	if token.Type == lexer.EOF_TYPE {
		r.report(token.Line, " at end", message)
	} else {
		r.report(token.Line, fmt.Sprintf(" at '%s'", token.Lexeme), message)
	}
}

func (r *Reporter) report(line int, where, message string) {
	io.WriteString(r.writer, fmt.Sprintf("[line %d] Error%s: %s\n", line, where, message))
	r.HadError = true
}

// RuntimeError reports a runtime diagnostic in spec.md §6's
// `<message>\n[line N]` shape.
func (r *Reporter) RuntimeError(err *interpreter.RuntimeError) {
	io.WriteString(r.writer, fmt.Sprintf("%s\n[line %d]\n", err.Message, err.Token.Line))
	r.HadRuntimeError = true
}
