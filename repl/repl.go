/*
File    : lox-mix/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for the Lox
interpreter. The REPL provides an interactive environment where users
can:
- Enter Lox code line by line
- See immediate results of their code execution
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

The REPL uses the readline library for enhanced line editing and wires
the lexer/parser/resolver/interpreter pipeline together per line.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/lox-mix/interpreter"
	"github.com/akashmaji946/lox-mix/lexer"
	"github.com/akashmaji946/lox-mix/parser"
	"github.com/akashmaji946/lox-mix/resolver"
	"github.com/akashmaji946/lox-mix/session"
	"github.com/akashmaji946/lox-mix/values"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output, matching the teacher's palette:
// - blueColor: Decorative lines and separators
// - yellowColor: Expression results and version info
// - redColor: Error messages and warnings
// - greenColor: Banner and success messages
// - cyanColor: Informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance, holding the
// banner/version/author/prompt text and the session config that
// governs prompt override, result echoing, and history file location.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the interpreter
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Config  session.Config
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner, version, author, line, license string, cfg session.Config) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Config: cfg}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to lox!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop. The pipeline (lexer -> parser ->
// resolver -> interpreter) runs fresh over every line, but the
// interpreter instance and its globals environment persist across
// lines so `var`/`fun`/`class` declarations accumulate the way a real
// session expects.
//
// The loop continues until the user types '.exit', EOF is reached
// (Ctrl+D), or readline itself errors — go-mix's exact REPL-exit
// convention, kept verbatim.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      r.Config.Prompt,
		HistoryFile: r.Config.HistoryFile,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	reporter := session.New(writer)
	interp := interpreter.New(nil, reporter, writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeLine(writer, line, reporter, interp)
	}
}

// executeLine runs one line through the full pipeline, resetting the
// reporter's error flags first (go-mix's executeWithRecovery does a
// fresh per-line evaluation; this session's equivalent is resetting
// the explicit flag fields rather than relying on panic/recover).
// Compile errors are already printed by the reporter itself and abort
// the line; a runtime error is likewise reported by the reporter. When
// Config.Echo is set and the line is a single bare expression
// statement that evaluated without error, its stringified value is
// echoed in yellow — the REPL convenience go-mix's evaluator always
// provides unconditionally.
func (r *Repl) executeLine(writer io.Writer, line string, reporter *session.Reporter, interp *interpreter.Interpreter) {
	reporter.Reset()

	tokens := lexer.NewLexer(line, reporter).ScanTokens()
	p := parser.NewParser(tokens, reporter)
	stmts := p.Parse()
	if p.HasErrors() || reporter.HadError {
		return
	}

	res := resolver.NewResolver(reporter)
	locals := res.Resolve(stmts)
	if res.HasErrors() || reporter.HadError {
		return
	}
	interp.MergeLocals(locals)

	value, hasValue := interp.InterpretREPLLine(stmts)
	if hasValue && !reporter.HadRuntimeError && r.Config.Echo {
		yellowColor.Fprintf(writer, "%s\n", values.Stringify(value))
	}
}
