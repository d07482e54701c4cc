package symbol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Geoffrey1014/svf-front-end-sub000/symbol"
)

func TestIntern(t *testing.T) {
	assert.Equal(t, symbol.Intern("abc"), symbol.Intern("abc"))
	assert.False(t, symbol.Intern("abc") == symbol.Intern("cde"))
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"_", "_3", "$x", "xyz"} {
		id := symbol.Intern(name)
		assert.Equal(t, name, id.Str())
	}
}

func TestInvalid(t *testing.T) {
	assert.False(t, symbol.Invalid.IsValid())
	assert.True(t, symbol.Intern("x").IsValid())
}

func BenchmarkInternExisting(b *testing.B) {
	symbol.Intern("abcdefghijk")
	for i := 0; i < b.N; i++ {
		symbol.Intern("abcdefghijk")
	}
}
