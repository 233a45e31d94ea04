package exprc

import (
	"fmt"
	"strings"
)

// SemanticReport is a descriptive inventory of the tree. It never fails:
// the grammar admits no undefined operators or wrong arities, so there is
// nothing left to reject after parsing.
type SemanticReport struct {
	NodeCount int

	// Variables holds distinct names in first-seen order. Constants and
	// Operators keep duplicates, in encounter order; unary negation is
	// recorded as "unary -".
	Variables []string
	Constants []string
	Operators []string
}

type semanticAnalyzer struct {
	report *SemanticReport
	seen   map[string]bool
}

// Analyze walks the tree in pre-order and accumulates the report. All
// state is local to the call, so concurrent compilations cannot observe
// each other's variable ordering.
func Analyze(expr Expr) *SemanticReport {
	a := &semanticAnalyzer{
		report: &SemanticReport{},
		seen:   make(map[string]bool),
	}

	a.visit(expr)

	return a.report
}

func (a *semanticAnalyzer) visit(expr Expr) {
	if expr == nil {
		return
	}

	a.report.NodeCount++

	switch e := expr.(type) {
	case *Identifier:
		if !a.seen[e.Name] {
			a.seen[e.Name] = true
			a.report.Variables = append(a.report.Variables, e.Name)
		}
	case *LiteralExpr:
		a.report.Constants = append(a.report.Constants, e.Value)
	case *BinaryExpr:
		a.report.Operators = append(a.report.Operators, string(e.Operation))
		a.visit(e.Op1)
		a.visit(e.Op2)
	case *UnaryExpr:
		a.report.Operators = append(a.report.Operators, "unary "+string(e.Operation))
		a.visit(e.Operand)
	}
}

// Symbolic reports whether the expression references at least one
// variable and therefore cannot be evaluated without runtime input.
func (r *SemanticReport) Symbolic() bool {
	return len(r.Variables) > 0
}

func (r *SemanticReport) String() string {
	var str strings.Builder

	fmt.Fprintf(&str, "Nodes: %d\n", r.NodeCount)
	fmt.Fprintf(&str, "Variables: %s\n", orNone(r.Variables))
	fmt.Fprintf(&str, "Constants: %s\n", orNone(r.Constants))
	fmt.Fprintf(&str, "Operators: %s\n", orNone(r.Operators))

	if r.Symbolic() {
		str.WriteString("Classification: symbolic\n")
		fmt.Fprintf(&str, "Warning: %s must be given runtime values before the expression can be evaluated",
			strings.Join(r.Variables, ", "))
	} else {
		str.WriteString("Classification: numeric\n")
		str.WriteString("The expression is fully evaluable at compile time")
	}

	return str.String()
}

func orNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}

	return strings.Join(items, ", ")
}
