package builtin

import (
	"testing"

	"github.com/axion-lang/axion/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_RegistersExpectedNames(t *testing.T) {
	names := make([]string, 0)
	for _, b := range All() {
		names = append(names, b.Name)
	}
	assert.Contains(t, names, "time_now")
	assert.Contains(t, names, "str_len")
	assert.Contains(t, names, "str_slice")
	assert.Contains(t, names, "arr_len")
}

func TestTimeNow_ReturnsPositiveMillisInteger(t *testing.T) {
	v, err := timeNow(nil)
	require.NoError(t, err)
	i, ok := v.(*value.Integer)
	require.True(t, ok)
	assert.Greater(t, i.Val, int64(0))
}

func TestStrLen(t *testing.T) {
	v, err := strLen([]value.Value{&value.String{Val: "hello"}})
	require.NoError(t, err)
	assert.Equal(t, int64(5), v.(*value.Integer).Val)
}

func TestStrSlice(t *testing.T) {
	v, err := strSlice([]value.Value{
		&value.String{Val: "hello"},
		&value.Integer{Val: 1},
		&value.Integer{Val: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, "el", v.(*value.String).Val)
}

func TestStrSlice_OutOfRangeErrors(t *testing.T) {
	_, err := strSlice([]value.Value{
		&value.String{Val: "hi"},
		&value.Integer{Val: 0},
		&value.Integer{Val: 9},
	})
	assert.Error(t, err)
}

func TestArrLen(t *testing.T) {
	v, err := arrLen([]value.Value{value.NewArray([]value.Value{&value.Integer{Val: 1}, &value.Integer{Val: 2}})})
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.(*value.Integer).Val)
}

func TestArrLen_WrongTypeErrors(t *testing.T) {
	_, err := arrLen([]value.Value{&value.Integer{Val: 1}})
	assert.Error(t, err)
}
