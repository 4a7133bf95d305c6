package environ

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// intVal is a minimal Value stand-in for these tests, avoiding a test
// dependency on the value package.
type intVal int

func (i intVal) Display() string { return "int" }

func TestDeclareAndGet(t *testing.T) {
	env := New()
	require.NoError(t, env.Declare("x", intVal(1), false))

	v, err := env.Get("x")
	require.NoError(t, err)
	assert.Equal(t, intVal(1), v)
}

func TestDeclare_DuplicateInSameScopeFails(t *testing.T) {
	env := New()
	require.NoError(t, env.Declare("x", intVal(1), false))

	err := env.Declare("x", intVal(2), false)
	require.Error(t, err)
	var declErr *DeclareError
	assert.ErrorAs(t, err, &declErr)
}

func TestDeclare_ShadowingInChildScopeSucceeds(t *testing.T) {
	parent := New()
	require.NoError(t, parent.Declare("x", intVal(1), false))

	child := NewEnclosed(parent)
	err := child.Declare("x", intVal(2), false)
	assert.NoError(t, err)

	v, _ := child.Get("x")
	assert.Equal(t, intVal(2), v)

	pv, _ := parent.Get("x")
	assert.Equal(t, intVal(1), pv)
}

func TestGet_WalksParentChain(t *testing.T) {
	parent := New()
	require.NoError(t, parent.Declare("x", intVal(7), false))
	child := NewEnclosed(parent)

	v, err := child.Get("x")
	require.NoError(t, err)
	assert.Equal(t, intVal(7), v)
}

func TestGet_UndefinedNameErrors(t *testing.T) {
	env := New()
	_, err := env.Get("missing")
	require.Error(t, err)
	var nameErr *NameError
	assert.ErrorAs(t, err, &nameErr)
}

func TestAssign_UpdatesOwningScope(t *testing.T) {
	parent := New()
	require.NoError(t, parent.Declare("x", intVal(1), false))
	child := NewEnclosed(parent)

	require.NoError(t, child.Assign("x", intVal(99)))

	v, _ := parent.Get("x")
	assert.Equal(t, intVal(99), v)
}

func TestAssign_ConstFails(t *testing.T) {
	env := New()
	require.NoError(t, env.Declare("pi", intVal(3), true))

	err := env.Assign("pi", intVal(4))
	require.Error(t, err)
	var constErr *ConstError
	assert.ErrorAs(t, err, &constErr)
}

func TestAssign_UndefinedNameErrors(t *testing.T) {
	env := New()
	err := env.Assign("missing", intVal(1))
	require.Error(t, err)
	var nameErr *NameError
	assert.ErrorAs(t, err, &nameErr)
}

func TestExistsAndIsConst(t *testing.T) {
	env := New()
	require.NoError(t, env.Declare("a", intVal(1), false))
	require.NoError(t, env.Declare("b", intVal(2), true))

	assert.True(t, env.Exists("a"))
	assert.False(t, env.Exists("z"))
	assert.False(t, env.IsConst("a"))
	assert.True(t, env.IsConst("b"))
	assert.False(t, env.IsConst("z"))
}

func TestTop_OnlyDirectScopeBindings(t *testing.T) {
	parent := New()
	require.NoError(t, parent.Declare("outer", intVal(1), false))
	child := NewEnclosed(parent)
	require.NoError(t, child.Declare("inner", intVal(2), false))

	top := child.Top()
	assert.Len(t, top, 1)
	assert.Contains(t, top, "inner")
	assert.NotContains(t, top, "outer")
}
