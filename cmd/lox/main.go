/*
File    : lox-mix/cmd/lox/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the lox interpreter. It provides
two modes of operation:
1. REPL Mode (default, no argument): interactive Read-Eval-Print Loop
2. File Mode (one argument): execute a single Lox source file

The interpreter uses a lexer-parser-resolver-interpreter pipeline to
process Lox code.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/lox-mix/interpreter"
	"github.com/akashmaji946/lox-mix/lexer"
	"github.com/akashmaji946/lox-mix/parser"
	"github.com/akashmaji946/lox-mix/repl"
	"github.com/akashmaji946/lox-mix/resolver"
	"github.com/akashmaji946/lox-mix/session"
	"github.com/fatih/color"
)

// VERSION is the current version of the lox interpreter.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENSE specifies the software license.
var LICENSE = "MIT"

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
    ▄▄▄▄                      ██
  ██▀▀▀▀█                     ▀▀
 ██         ▄████▄   ▄████▄  ████   ▀██  ██▀
 ██  ▄▄▄▄  ██▀  ▀██ ██▀  ▀██   ██     ████
 ██  ▀▀██  ██    ██ ██    ██   ██     ▄██▄
  ██▄▄▄██  ▀██▄▄██▀ ▀██▄▄██▀▄▄▄██▄▄▄ ▄█▀▀█▄
    ▀▀▀▀     ▀▀▀▀     ▀▀▀▀  ▀▀▀▀▀▀▀▀▀▀▀  ▀▀▀
`

// LINE is a separator line used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

var redColor = color.New(color.FgRed)

// Exit codes, per spec.md §6: 0 success, 64 usage error, 65 compile
// error, 70 runtime error. A runtime error supersedes a compile error
// when a file run manages to set both (which it cannot: interpretation
// never starts once a had-error flag is set), mirroring go-mix's
// single os.Exit(1) generalized to these specific codes.
const (
	exitSuccess    = 0
	exitUsageError = 64
	exitDataError  = 65
	exitRuntime    = 70
)

// main dispatches to REPL or file mode based on argument count:
//
//	lox              - start the REPL
//	lox <script>     - interpret a single file
//	lox <a> <b> ...   - usage error
func main() {
	switch len(os.Args) {
	case 1:
		runRepl()
	case 2:
		runFile(os.Args[1])
	default:
		fmt.Fprintln(os.Stderr, "Usage: lox [script]")
		os.Exit(exitUsageError)
	}
}

// runRepl loads the optional session config and starts the REPL
// reading from stdin, writing to stdout.
func runRepl() {
	cfg, err := session.LoadConfig()
	if err != nil {
		redColor.Fprintf(os.Stderr, "[CONFIG ERROR] %v\n", err)
	}
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, cfg)
	repler.Start(os.Stdin, os.Stdout)
}

// runFile reads and interprets a single Lox source file, exiting with
// the exit code matching whichever stage (if any) reported an error.
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", path, err)
		os.Exit(exitUsageError)
	}
	os.Exit(interpretSource(string(source), os.Stdout, os.Stderr))
}

// interpretSource runs the full pipeline over source once, writing
// `print` output to stdout and diagnostics to stderr, and returns the
// exit code spec.md §6 prescribes. Factored out of runFile so it can
// be exercised directly in tests without going through os.Exit.
func interpretSource(source string, stdout, stderr io.Writer) int {
	reporter := session.New(stderr)

	tokens := lexer.NewLexer(source, reporter).ScanTokens()
	p := parser.NewParser(tokens, reporter)
	stmts := p.Parse()
	if reporter.HadError {
		return exitDataError
	}

	res := resolver.NewResolver(reporter)
	locals := res.Resolve(stmts)
	if reporter.HadError {
		return exitDataError
	}

	interp := interpreter.New(locals, reporter, stdout)
	interp.Interpret(stmts)
	if reporter.HadRuntimeError {
		return exitRuntime
	}
	return exitSuccess
}
