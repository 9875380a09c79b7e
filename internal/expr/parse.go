package expr

// parse turns the token sequence into an expression tree: either a single
// bare atom or a bracketed S-expression.
func parse(text string, tokens []token) (Expr, *Error) {
	if len(tokens) == 0 {
		return nil, &Error{Span: newSpan(text, 0, 0), Kind: EmptyExpression}
	}

	if len(tokens) == 1 {
		t := tokens[0]
		switch t.kind {
		case tokenLiteral:
			return &LiteralExpr{span: t.span, Value: t.lit}, nil
		case tokenSymbol:
			return &SymbolExpr{span: t.span, Name: t.sym}, nil
		case tokenOpen:
			return nil, t.errorHere(UnmatchedOpen)
		default:
			return nil, t.errorHere(UnmatchedClose)
		}
	}

	switch tokens[0].kind {
	case tokenLiteral, tokenSymbol:
		return nil, tokens[1].errorHere(UnexpectedToken)
	case tokenClose:
		return nil, tokens[0].errorHere(UnmatchedClose)
	}

	p := &parser{tokens: tokens}
	parsed, err := p.parseCall()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.tokens) {
		return nil, p.tokens[p.pos].errorHere(UnexpectedToken)
	}
	return parsed, nil
}

type parser struct {
	tokens []token
	pos    int
}

// parseCall consumes one bracketed group starting at the current open
// bracket. The first element must be a symbol naming the function; the rest
// become its arguments in order.
func (p *parser) parseCall() (Expr, *Error) {
	p.pos++ // opening bracket

	var head Expr
	var args []Expr
	for {
		if p.pos >= len(p.tokens) {
			// Brackets still open at end of input.
			return nil, p.tokens[0].errorHere(UnexpectedToken)
		}

		t := p.tokens[p.pos]
		var node Expr
		switch t.kind {
		case tokenClose:
			p.pos++
			if head == nil {
				return nil, t.errorHere(EmptyExpression)
			}
			sym, ok := head.(*SymbolExpr)
			if !ok {
				return nil, &Error{Span: head.Span(), Kind: CallNonSymbol}
			}
			return &CallExpr{span: sym.span, Name: sym.Name, Args: args}, nil

		case tokenOpen:
			sub, err := p.parseCall()
			if err != nil {
				return nil, err
			}
			node = sub

		case tokenLiteral:
			node = &LiteralExpr{span: t.span, Value: t.lit}
			p.pos++

		default:
			node = &SymbolExpr{span: t.span, Name: t.sym}
			p.pos++
		}

		if head == nil {
			head = node
		} else {
			args = append(args, node)
		}
	}
}
