package exprc

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	res, err := NewCompiler().Compile("2+3*4")
	require.NoError(t, err)

	assert.Equal(t,
		"NUMBER   2\n"+
			"OPERATOR +\n"+
			"NUMBER   3\n"+
			"OPERATOR *\n"+
			"NUMBER   4",
		res.Tokens)

	assert.Equal(t,
		"+\n"+
			"  2\n"+
			"  *\n"+
			"    3\n"+
			"    4",
		res.SyntaxTree)

	assert.Contains(t, res.Semantic, "Classification: numeric")

	assert.Equal(t,
		"t0 = 3 * 4\n"+
			"t1 = 2 + t0\n"+
			"result = t1",
		res.Intermediate)

	assert.Equal(t,
		"MOV t0, 3 * 4\n"+
			"MOV t1, 2 + t0\n"+
			"MOV result, t1",
		res.Final)

	assert.Contains(t, res.LLVM, "define double @expr()")
}

func TestCompileSingleValue(t *testing.T) {
	res, err := NewCompiler().Compile("5")
	require.NoError(t, err)

	assert.Equal(t, "NUMBER   5", res.Tokens)
	assert.Equal(t, "5", res.SyntaxTree)
	assert.Equal(t, "result = 5", res.Intermediate)
	assert.Equal(t, noOperations, res.Final)
}

func TestCompileSymbolic(t *testing.T) {
	res, err := NewCompiler().Compile("x + 2")
	require.NoError(t, err)

	assert.Contains(t, res.Semantic, "Classification: symbolic")
	assert.Contains(t, res.Semantic, "Warning: x")
}

func TestCompileErrors(t *testing.T) {
	cases := []struct {
		data   string
		expect string
	}{
		{"3.1.4", "Invalid number format: multiple dots"},
		{"2 + $ 3", "Invalid character '$' at position 5"},
		{"(2+3", "unexpected end of input, expected ')'"},
		{"2 3", "extra tokens after expression, starting at '3'"},
	}

	for _, c := range cases {
		res, err := NewCompiler().Compile(c.data)

		assert.Nil(t, res, c.data)
		assert.EqualError(t, err, c.expect, c.data)
	}
}

// Compilations share no state: temporaries restart at t0 on every call,
// including concurrent ones.
func TestCompileConcurrent(t *testing.T) {
	c := NewCompiler()

	exprs := []string{"a+1", "b+2", "c*3", "d-4"}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)

		data := exprs[i%len(exprs)]
		go func() {
			defer wg.Done()

			res, err := c.Compile(data)
			assert.NoError(t, err)
			assert.Contains(t, res.Intermediate, "t0 = ")
			assert.NotContains(t, res.Intermediate, "t1 = ")
		}()
	}

	wg.Wait()
}
