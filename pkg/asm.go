package exprc

import "strings"

const noOperations = "no operations: expression is a single value"

// EmitFinal turns every "target = expr" line of three-address code into a
// "MOV target, expr" line. A degenerate program whose only line is the
// result assignment has nothing to move, so a placeholder is emitted
// instead.
func EmitFinal(tac []string) string {
	if len(tac) <= 1 {
		return noOperations
	}

	var out []string
	for _, line := range tac {
		target, expr, found := strings.Cut(line, " = ")
		if !found {
			continue
		}

		out = append(out, "MOV "+target+", "+expr)
	}

	if len(out) == 0 {
		return noOperations
	}

	return strings.Join(out, "\n")
}
