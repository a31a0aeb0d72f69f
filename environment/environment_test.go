/*
File    : lox-mix/environment/environment_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironment_DefineAndGet(t *testing.T) {
	env := New(nil)
	env.Define("a", 1.0)
	v, err := env.Get("a")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestEnvironment_GetUndefinedFails(t *testing.T) {
	env := New(nil)
	_, err := env.Get("missing")
	require.Error(t, err)
	assert.Equal(t, "Undefined variable 'missing'.", err.Error())
}

func TestEnvironment_GetDelegatesToEnclosing(t *testing.T) {
	global := New(nil)
	global.Define("a", "global-value")
	local := New(global)

	v, err := local.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "global-value", v)
}

func TestEnvironment_ShadowingDoesNotMutateEnclosing(t *testing.T) {
	global := New(nil)
	global.Define("a", "outer")
	local := New(global)
	local.Define("a", "inner")

	localVal, err := local.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "inner", localVal)

	globalVal, err := global.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "outer", globalVal)
}

func TestEnvironment_AssignFindsEnclosingBinding(t *testing.T) {
	global := New(nil)
	global.Define("a", 1.0)
	local := New(global)

	require.NoError(t, local.Assign("a", 2.0))

	v, err := global.Get("a")
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestEnvironment_AssignUndefinedFails(t *testing.T) {
	env := New(nil)
	err := env.Assign("missing", 1.0)
	require.Error(t, err)
	assert.Equal(t, "Undefined variable 'missing'.", err.Error())
}

func TestEnvironment_GetAtAndAssignAtUseExactDistance(t *testing.T) {
	global := New(nil)
	global.Define("a", "global")
	middle := New(global)
	middle.Define("a", "middle")
	inner := New(middle)

	assert.Equal(t, "middle", inner.GetAt(1, "a"))
	assert.Equal(t, "global", inner.GetAt(2, "a"))

	inner.AssignAt(1, "a", "middle-updated")
	assert.Equal(t, "middle-updated", middle.values["a"])
}

// TestEnvironment_SharedPointerSeesMutationAcrossReferences is the
// property spec.md §8's closure-counter scenario depends on: two
// references to the same *Environment must observe each other's
// writes, unlike a copy-on-capture model.
func TestEnvironment_SharedPointerSeesMutationAcrossReferences(t *testing.T) {
	env := New(nil)
	env.Define("count", 0.0)

	captured := env // a closure would hold exactly this pointer
	require.NoError(t, env.Assign("count", 1.0))

	v, err := captured.Get("count")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}
