/*
File    : lox-mix/cmd/lox/main_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpretSource_SuccessPrintsAndExitsZero(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := interpretSource(`print 1 + 2;`, &stdout, &stderr)
	assert.Equal(t, exitSuccess, code)
	assert.Equal(t, "3\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestInterpretSource_ParseErrorExits65(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := interpretSource(`print ;`, &stdout, &stderr)
	assert.Equal(t, exitDataError, code)
	assert.NotEmpty(t, stderr.String())
}

func TestInterpretSource_ResolutionErrorExits65(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := interpretSource(`{ var a = a; }`, &stdout, &stderr)
	assert.Equal(t, exitDataError, code)
	assert.NotEmpty(t, stderr.String())
}

func TestInterpretSource_RuntimeErrorExits70(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := interpretSource(`print 1 + "a";`, &stdout, &stderr)
	assert.Equal(t, exitRuntime, code)
	assert.Contains(t, stderr.String(), "Operands must be two numbers or two strings.")
}

func TestInterpretSource_FullProgram(t *testing.T) {
	src := `
		class Greeter {
			init(name) { this.name = name; }
			greet() { return "hi " + this.name; }
		}
		print Greeter("lox").greet();
	`
	var stdout, stderr bytes.Buffer
	code := interpretSource(src, &stdout, &stderr)
	assert.Equal(t, exitSuccess, code)
	assert.Equal(t, "hi lox\n", stdout.String())
	assert.Empty(t, stderr.String())
}

// TestInterpretSource_GoldenScripts runs the testdata/*.lox scripts
// against the exact literal-input -> literal-stdout end-to-end
// scenarios: arithmetic, variable scoping, closure counters,
// recursion, class initializers, inheritance with method override,
// and the runtime type-error exit code.
func TestInterpretSource_GoldenScripts(t *testing.T) {
	cases := []struct {
		file       string
		wantStdout string
		wantCode   int
	}{
		{"01_arithmetic.lox", "7\n", exitSuccess},
		{"02_scoping.lox", "inner\nouter\n", exitSuccess},
		{"03_closure_counter.lox", "1\n2\n3\n", exitSuccess},
		{"04_fibonacci.lox", "55\n", exitSuccess},
		{"05_class_initializer.lox", "hi Lox\n", exitSuccess},
		{"06_inheritance_override.lox", "B\n", exitSuccess},
		{"07_runtime_type_error.lox", "", exitRuntime},
	}

	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			source, err := os.ReadFile(filepath.Join("..", "..", "testdata", tc.file))
			require.NoError(t, err)

			var stdout, stderr bytes.Buffer
			code := interpretSource(string(source), &stdout, &stderr)
			assert.Equal(t, tc.wantCode, code)
			assert.Equal(t, tc.wantStdout, stdout.String())
			if tc.wantCode == exitRuntime {
				assert.Contains(t, stderr.String(), "Operands must be")
			}
		})
	}
}
