package expr

// resolveSymbols is the first resolution pass: every symbol leaf is replaced
// by its value from the context. Call nodes recurse into their arguments
// only; the function name itself is not a symbol lookup.
func resolveSymbols(e Expr, ctx Context) (Expr, *Error) {
	switch e := e.(type) {
	case *LiteralExpr:
		return e, nil

	case *SymbolExpr:
		value, ok := ctx[e.Name]
		if !ok {
			return nil, &Error{Span: e.span, Kind: UnknownSymbol, Name: e.Name}
		}
		return &LiteralExpr{span: e.span, Value: value}, nil

	case *CallExpr:
		args := make([]Expr, len(e.Args))
		for i, arg := range e.Args {
			resolved, err := resolveSymbols(arg, ctx)
			if err != nil {
				return nil, err
			}
			args[i] = resolved
		}
		return &CallExpr{span: e.span, Name: e.Name, Args: args}, nil

	default:
		return e, nil
	}
}

// applyFunctions is the second resolution pass: call nodes are evaluated
// bottom-up, replacing each with the result of its function.
func applyFunctions(e Expr, fns *Functions) (Expr, *Error) {
	call, ok := e.(*CallExpr)
	if !ok {
		return e, nil
	}

	args := make([]Expr, len(call.Args))
	for i, arg := range call.Args {
		applied, err := applyFunctions(arg, fns)
		if err != nil {
			return nil, err
		}
		args[i] = applied
	}

	fn, ok := fns.Lookup(call.Name)
	if !ok {
		return nil, &Error{Span: call.span, Kind: UnknownFunction, Name: call.Name}
	}
	return fn(call.span, args)
}
