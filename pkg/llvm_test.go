package exprc

import (
	"testing"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueLookup(t *testing.T) {
	vals := NewValueLookup()

	val1 := constant.NewFloat(types.Double, 1)
	val2 := constant.NewFloat(types.Double, 2)

	vals.Set("id1", val1)
	vals.Set("id2", val2)

	got1, ok := vals.Get("id1")
	assert.True(t, ok)
	assert.Equal(t, val1, got1)

	got2, ok := vals.Get("id2")
	assert.True(t, ok)
	assert.Equal(t, val2, got2)

	_, ok = vals.Get("missing")
	assert.False(t, ok)
}

func TestBuildLLVMModule(t *testing.T) {
	expr, err := NewParser(mustLex(t, "x+2*y")).Run()
	require.NoError(t, err)

	mod, err := BuildLLVMModule(expr)
	require.NoError(t, err)

	out := mod.String()
	assert.Contains(t, out, "define double @expr(double %x, double %y)")
	assert.Contains(t, out, "fmul double")
	assert.Contains(t, out, "fadd double")
	assert.Contains(t, out, "ret double")
}

func TestBuildLLVMModuleUnary(t *testing.T) {
	expr, err := NewParser(mustLex(t, "-x")).Run()
	require.NoError(t, err)

	mod, err := BuildLLVMModule(expr)
	require.NoError(t, err)

	// Negation lowers as a multiply by -1.
	out := mod.String()
	assert.Contains(t, out, "fmul double %x, -1")
}

func TestBuildLLVMModuleConstant(t *testing.T) {
	expr, err := NewParser(mustLex(t, "5")).Run()
	require.NoError(t, err)

	mod, err := BuildLLVMModule(expr)
	require.NoError(t, err)

	out := mod.String()
	assert.Contains(t, out, "define double @expr()")
	assert.Contains(t, out, "ret double")
}
