package exprc

import (
	"fmt"
	"strings"
)

// Result aggregates every phase's text output for one compile call.
// Nothing is cached between calls.
type Result struct {
	Tokens       string `json:"tokens"`
	SyntaxTree   string `json:"syntaxTree"`
	Semantic     string `json:"semantic"`
	Intermediate string `json:"intermediate"`
	Final        string `json:"final"`
	LLVM         string `json:"llvm,omitempty"`
}

type Compiler struct{}

func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile runs the whole pipeline over one expression. It fails fast: the
// first lexical or syntax error aborts the call and no partial result is
// returned. Every stage's state is local to the call, so the compiler is
// safe for concurrent use.
func (c *Compiler) Compile(expression string) (*Result, error) {
	toks, err := NewLexer(expression).Run()
	if err != nil {
		return nil, err
	}

	expr, err := NewParser(toks).Run()
	if err != nil {
		return nil, err
	}

	tac, err := NewTACGenerator().Generate(expr)
	if err != nil {
		return nil, err
	}

	mod, err := BuildLLVMModule(expr)
	if err != nil {
		return nil, err
	}

	return &Result{
		Tokens:       formatTokens(toks),
		SyntaxTree:   strings.TrimRight(PrintTree(expr), "\n"),
		Semantic:     Analyze(expr).String(),
		Intermediate: strings.Join(tac, "\n"),
		Final:        EmitFinal(tac),
		LLVM:         strings.TrimSpace(mod.String()),
	}, nil
}

func formatTokens(toks []Token) string {
	lines := make([]string, 0, len(toks))
	for _, tok := range toks {
		lines = append(lines, fmt.Sprintf("%-8s %s", tok.Typ, tok.Value))
	}

	return strings.Join(lines, "\n")
}
