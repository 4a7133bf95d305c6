// Package builtin registers the Go-implemented callables exposed to
// Axion programs: the one builtin spec.md §6 names directly
// (time_now), plus a small set of primitive string/array helpers with
// no pure-Axion equivalent (string length/slicing, array length) that
// back the bundled stdlib modules under stdlib/. Grounded on the
// teacher's std/builtins.go Builtin/CallbackFunc registration shape.
package builtin

import (
	"fmt"
	"time"

	"github.com/axion-lang/axion/value"
)

// CallbackFunc is the Go function signature backing a builtin.
type CallbackFunc func(args []value.Value) (value.Value, error)

// Builtin pairs a name with its implementation, mirroring the
// teacher's std.Builtin.
type Builtin struct {
	Name string
	Fn   CallbackFunc
}

// All returns every builtin binding the evaluator should register by
// name into its function table at interpreter construction.
func All() []*Builtin {
	return []*Builtin{
		{Name: "time_now", Fn: timeNow},
		{Name: "str_len", Fn: strLen},
		{Name: "str_slice", Fn: strSlice},
		{Name: "arr_len", Fn: arrLen},
	}
}

// timeNow returns integer milliseconds since the Unix epoch (spec.md
// §5/§6): the sole time-oriented builtin, a synchronous wall-clock
// read with no timers or cancellation.
func timeNow(args []value.Value) (value.Value, error) {
	return &value.Integer{Val: time.Now().UnixMilli()}, nil
}

// strLen returns the number of bytes in a string. Axion's core
// grammar has no string-indexing operator (Index applies to arrays —
// spec.md §7 TypeError "index on non-array"), so stdlib/strings.ax
// needs this host primitive to implement contains/startswith.
func strLen(args []value.Value) (value.Value, error) {
	s, err := requireString(args, 0, "str_len")
	if err != nil {
		return nil, err
	}
	return &value.Integer{Val: int64(len(s.Val))}, nil
}

// strSlice returns the substring [start, end) of a string.
func strSlice(args []value.Value) (value.Value, error) {
	s, err := requireString(args, 0, "str_slice")
	if err != nil {
		return nil, err
	}
	start, err := requireInt(args, 1, "str_slice")
	if err != nil {
		return nil, err
	}
	end, err := requireInt(args, 2, "str_slice")
	if err != nil {
		return nil, err
	}
	if start < 0 || end > int64(len(s.Val)) || start > end {
		return nil, fmt.Errorf("RuntimeError: str_slice bounds out of range")
	}
	return &value.String{Val: s.Val[start:end]}, nil
}

// arrLen returns the length of an array. Mirrors strLen's role for
// stdlib/strings.ax's join, which needs a loop bound the core grammar
// has no expression for.
func arrLen(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("RuntimeError: arr_len expects 1 argument")
	}
	a, ok := args[0].(*value.Array)
	if !ok {
		return nil, fmt.Errorf("TypeError: arr_len expects an array")
	}
	return &value.Integer{Val: int64(len(a.Elements))}, nil
}

func requireString(args []value.Value, i int, name string) (*value.String, error) {
	if i >= len(args) {
		return nil, fmt.Errorf("RuntimeError: %s expects an argument at position %d", name, i)
	}
	s, ok := args[i].(*value.String)
	if !ok {
		return nil, fmt.Errorf("TypeError: %s expects a string argument", name)
	}
	return s, nil
}

func requireInt(args []value.Value, i int, name string) (int64, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("RuntimeError: %s expects an argument at position %d", name, i)
	}
	n, ok := args[i].(*value.Integer)
	if !ok {
		return 0, fmt.Errorf("TypeError: %s expects an integer argument", name)
	}
	return n.Val, nil
}
