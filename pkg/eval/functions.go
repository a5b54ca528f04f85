package eval

import (
	"github.com/conneroisu/gix-lisp/internal/types"
	"github.com/conneroisu/gix-lisp/internal/value"
)

// buildClosure validates formals and body (§4.E.4) and constructs a
// Closure capturing scope.
func buildClosure(name string, formals value.Value, body []value.Value, scope *value.Scope) (value.Value, error) {
	if len(body) == 0 {
		return nil, &types.EvalError{Kind: types.EmptyFunctionBody, Subject: name}
	}

	seen := make(map[string]bool)
	cur := formals
	for {
		switch f := cur.(type) {
		case value.Nil:
			return &value.Closure{Name: name, Formals: formals, Body: body, Env: scope}, nil
		case value.Symbol:
			if seen[string(f)] {
				return nil, &types.EvalError{Kind: types.ArgumentDuplication, Subject: string(f)}
			}

			return &value.Closure{Name: name, Formals: formals, Body: body, Env: scope}, nil
		case *value.Pair:
			name, ok := f.Car.(value.Symbol)
			if !ok {
				return nil, &types.EvalError{Kind: types.ExpectedSymbolForArgument}
			}
			if seen[string(name)] {
				return nil, &types.EvalError{Kind: types.ArgumentDuplication, Subject: string(name)}
			}
			seen[string(name)] = true
			cur = f.Cdr
		default:
			return nil, &types.EvalError{Kind: types.WrongArgsList}
		}
	}
}

// Apply invokes fn with already-evaluated args, returning either a
// finished value or a tailCall (for Closures, whose body runs in tail
// position) for the trampoline to consume.
func Apply(fn value.Function, args []value.Value) (value.Value, error) {
	switch f := fn.(type) {
	case *value.Builtin:
		return f.Fn(args)

	case *value.DynamicAccessor:
		return applyDynamicAccessor(f, args)

	case *value.Closure:
		child := f.Env.Extend()
		if err := bindFormals(f.Formals, args, child); err != nil {
			return nil, err
		}

		return evalBegin(f.Body, child)

	default:
		return nil, &types.EvalError{Kind: types.IllegalObjectAsAFunction, Subject: fn.String()}
	}
}

// bindFormals walks the formals list structurally against args (§4.E.3).
func bindFormals(formals value.Value, args []value.Value, scope *value.Scope) error {
	cur := formals
	i := 0
	for {
		switch f := cur.(type) {
		case value.Nil:
			if i != len(args) {
				return &types.EvalError{Kind: types.TooManyArguments}
			}

			return nil
		case value.Symbol:
			scope.Bind(string(f), value.List(args[i:]...))

			return nil
		case *value.Pair:
			name := f.Car.(value.Symbol)
			if i >= len(args) {
				return &types.EvalError{Kind: types.TooFewArguments, Subject: string(name)}
			}
			scope.Bind(string(name), args[i])
			i++
			cur = f.Cdr
		default:
			return &types.EvalError{Kind: types.WrongArgsList}
		}
	}
}

// applyDynamicAccessor folds a c<ops>r accessor's a/d run right to
// left over a single pair argument (§4.E.3).
func applyDynamicAccessor(acc *value.DynamicAccessor, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, &types.EvalError{Kind: types.WrongArgsNum, Subject: acc.Name}
	}

	cur := args[0]
	ops := acc.Ops
	for i := len(ops) - 1; i >= 0; i-- {
		pair, ok := cur.(*value.Pair)
		if !ok {
			return nil, &types.EvalError{Kind: types.PairRequired, Subject: acc.Name}
		}
		if ops[i] == 'a' {
			cur = pair.Car
		} else {
			cur = pair.Cdr
		}
	}

	return cur, nil
}
