package exprc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintTree(t *testing.T) {
	cases := []struct {
		data   string
		expect string
	}{
		{
			"5",
			"5\n",
		},
		{
			"2+3*4",
			"+\n" +
				"  2\n" +
				"  *\n" +
				"    3\n" +
				"    4\n",
		},
		{
			"-x",
			"-\n" +
				"  x\n",
		},
		{
			"(8-3)-2",
			"-\n" +
				"  -\n" +
				"    8\n" +
				"    3\n" +
				"  2\n",
		},
	}

	for _, c := range cases {
		expr, err := NewParser(mustLex(t, c.data)).Run()
		assert.NoError(t, err, c.data)

		assert.Equal(t, c.expect, PrintTree(expr), c.data)
	}
}

func TestPrintTreeEmpty(t *testing.T) {
	assert.Equal(t, "(empty)", PrintTree(nil))
}
