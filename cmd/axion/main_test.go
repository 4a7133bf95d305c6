package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) string {
	t.Helper()
	var buf bytes.Buffer
	err := execute(src, &buf)
	require.NoError(t, err)
	return buf.String()
}

func TestScenario1_Arithmetic(t *testing.T) {
	assert.Equal(t, "7\n", run(t, "set x = 2; logln(x * 3 + 1);"))
}

func TestScenario2_ConstReassignment(t *testing.T) {
	var buf bytes.Buffer
	err := execute("const pi = 3; pi = 4;", &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ConstError")
}

func TestScenario3_RecursiveFibonacci(t *testing.T) {
	out := run(t, `func fib(n) { if (n < 2) then { return n; } return fib(n-1) + fib(n-2); } logln(fib(10));`)
	assert.Equal(t, "55\n", out)
}

func TestScenario4_ArrayAutoExtend(t *testing.T) {
	out := run(t, `set a = [1,2,3]; a[5] = 9; logln(a);`)
	assert.Equal(t, "[1, 2, 3, null, null, 9]\n", out)
}

func TestScenario5_StringInterpolation(t *testing.T) {
	out := run(t, `set name = "Ada"; logln("hi {name}!");`)
	assert.Equal(t, "hi Ada!\n", out)
}

func TestScenario6_ForLoop(t *testing.T) {
	out := run(t, `loop (i from 1 to 3 step 1) { log(i); } logln("");`)
	assert.Equal(t, "123\n", out)
}
