package stdlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup_KnownModules(t *testing.T) {
	for _, name := range []string{"math", "strings"} {
		src, ok := Lookup(name)
		assert.True(t, ok, "expected module %q to be bundled", name)
		assert.Contains(t, src, "func")
	}
}

func TestLookup_UnknownModule(t *testing.T) {
	_, ok := Lookup("nope")
	assert.False(t, ok)
}
