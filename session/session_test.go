/*
File    : lox-mix/session/session_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package session

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/lox-mix/interpreter"
	"github.com/akashmaji946/lox-mix/lexer"
	"github.com/stretchr/testify/assert"
)

func TestReporter_ErrorSetsFlagAndFormatsLine(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.Error(3, "Unexpected character.")
	assert.True(t, r.HadError)
	assert.Equal(t, "[line 3] Error: Unexpected character.\n", buf.String())
}

func TestReporter_TokenErrorAtEnd(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.TokenError(lexer.Token{Type: lexer.EOF_TYPE, Line: 5}, "Expect expression.")
	assert.Equal(t, "[line 5] Error at end: Expect expression.\n", buf.String())
}

func TestReporter_TokenErrorAtLexeme(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.TokenError(lexer.Token{Type: lexer.IDENTIFIER, Lexeme: "foo", Line: 5}, "Expect ';' after value.")
	assert.Equal(t, "[line 5] Error at 'foo': Expect ';' after value.\n", buf.String())
}

func TestReporter_RuntimeErrorSetsFlagAndFormat(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.RuntimeError(interpreter.NewRuntimeError(lexer.Token{Line: 7}, "Undefined variable 'x'."))
	assert.True(t, r.HadRuntimeError)
	assert.Equal(t, "Undefined variable 'x'.\n[line 7]\n", buf.String())
}

func TestReporter_ResetClearsBothFlags(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.Error(1, "boom")
	r.RuntimeError(interpreter.NewRuntimeError(lexer.Token{Line: 1}, "boom"))
	r.Reset()
	assert.False(t, r.HadError)
	assert.False(t, r.HadRuntimeError)
}

func TestDefault_HasSaneBuiltins(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "lox> ", cfg.Prompt)
	assert.False(t, cfg.Echo)
	assert.NotEmpty(t, cfg.HistoryFile)
}

func TestLoadConfig_NoFileYieldsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
