package exprc

// Parser builds the syntax tree by recursive descent. Precedence comes
// from the rule ladder: additive above multiplicative above unary above
// primaries. Binary operators are left-associative; each extra operand
// wraps the tree built so far as the left child of a new node.
type Parser struct {
	toks []Token
	pos  int
}

func NewParser(toks []Token) *Parser {
	return &Parser{
		toks: toks,
	}
}

// Run parses the whole token sequence as one expression. Leftover tokens
// after a complete expression are an error, so inputs like "2 3" cannot
// silently parse as "2".
func (p *Parser) Run() (Expr, error) {
	expr, err := p.additiveExpr()
	if err != nil {
		return nil, err
	}

	if tok, ok := p.peek(); ok {
		return nil, syntaxErrorf("extra tokens after expression, starting at '%s'", tok.Value)
	}

	return expr, nil
}

func (p *Parser) peek() (Token, bool) {
	if p.pos >= len(p.toks) {
		return Token{}, false
	}

	return p.toks[p.pos], true
}

func (p *Parser) next() (Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}

	return tok, ok
}

func (p *Parser) checkOperator(ops ...string) (Token, bool) {
	tok, ok := p.peek()
	if !ok {
		return Token{}, false
	}

	for _, op := range ops {
		if tok.isOperator(op) {
			return tok, true
		}
	}

	return Token{}, false
}

func (p *Parser) additiveExpr() (Expr, error) {
	lhs, err := p.multiplicativeExpr()
	if err != nil {
		return nil, err
	}

	for {
		tok, ok := p.checkOperator("+", "-")
		if !ok {
			return lhs, nil
		}

		p.next()

		rhs, err := p.multiplicativeExpr()
		if err != nil {
			return nil, err
		}

		lhs = &BinaryExpr{
			Operation: BinaryOp(tok.Value),
			Op1:       lhs,
			Op2:       rhs,
		}
	}
}

func (p *Parser) multiplicativeExpr() (Expr, error) {
	lhs, err := p.unaryExpr()
	if err != nil {
		return nil, err
	}

	for {
		tok, ok := p.checkOperator("*", "/")
		if !ok {
			return lhs, nil
		}

		p.next()

		rhs, err := p.unaryExpr()
		if err != nil {
			return nil, err
		}

		lhs = &BinaryExpr{
			Operation: BinaryOp(tok.Value),
			Op1:       lhs,
			Op2:       rhs,
		}
	}
}

func (p *Parser) unaryExpr() (Expr, error) {
	if _, ok := p.checkOperator("-"); ok {
		p.next()

		// Recursing on the unary rule lets negations stack: --x is a
		// negation of a negation.
		operand, err := p.unaryExpr()
		if err != nil {
			return nil, err
		}

		return &UnaryExpr{
			Operation: UnaryNegative,
			Operand:   operand,
		}, nil
	}

	return p.primary()
}

func (p *Parser) primary() (Expr, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, syntaxErrorf("unexpected end of input")
	}

	switch {
	case tok.Typ == TokenNumber:
		p.next()
		return &LiteralExpr{Value: tok.Value}, nil
	case tok.Typ == TokenIdentifier:
		p.next()
		return &Identifier{Name: tok.Value}, nil
	case tok.isOperator("("):
		return p.parenthesisedExpression()
	default:
		return nil, syntaxErrorf("expected a number, identifier or '(', got '%s'", tok.Value)
	}
}

func (p *Parser) parenthesisedExpression() (Expr, error) {
	p.next() // opening parenthesis

	expr, err := p.additiveExpr()
	if err != nil {
		return nil, err
	}

	closer, ok := p.next()
	if !ok {
		return nil, syntaxErrorf("unexpected end of input, expected ')'")
	}

	if !closer.isOperator(")") {
		return nil, syntaxErrorf("expected ')', got '%s'", closer.Value)
	}

	return expr, nil
}
