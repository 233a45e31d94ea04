package exprc

import (
	"fmt"

	"github.com/pkg/errors"
)

// TACGenerator lowers the tree into three-address code. The temporary
// counter lives on the generator, which is built fresh per compile call:
// two concurrent compilations both start at t0.
type TACGenerator struct {
	count int
	lines []string
}

func NewTACGenerator() *TACGenerator {
	return &TACGenerator{}
}

// Generate emits instructions in post-order and closes with the result
// assignment, so even a bare literal produces one line.
func (g *TACGenerator) Generate(expr Expr) ([]string, error) {
	ref, err := g.walk(expr)
	if err != nil {
		return nil, err
	}

	g.lines = append(g.lines, "result = "+ref)

	return g.lines, nil
}

func (g *TACGenerator) walk(expr Expr) (string, error) {
	switch e := expr.(type) {
	case *LiteralExpr:
		return e.Value, nil
	case *Identifier:
		return e.Name, nil
	case *UnaryExpr:
		ref, err := g.walk(e.Operand)
		if err != nil {
			return "", err
		}

		t := g.temp()
		g.lines = append(g.lines, fmt.Sprintf("%s = -%s", t, ref))

		return t, nil
	case *BinaryExpr:
		// Left before right; the order shows in the temporary numbering.
		lhs, err := g.walk(e.Op1)
		if err != nil {
			return "", err
		}

		rhs, err := g.walk(e.Op2)
		if err != nil {
			return "", err
		}

		t := g.temp()
		g.lines = append(g.lines, fmt.Sprintf("%s = %s %s %s", t, lhs, e.Operation, rhs))

		return t, nil
	default:
		return "", errors.Errorf("unexpected node %T", expr)
	}
}

func (g *TACGenerator) temp() string {
	t := fmt.Sprintf("t%d", g.count)
	g.count++

	return t
}
