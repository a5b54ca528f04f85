package eval

import (
	"regexp"

	"github.com/conneroisu/gix-lisp/internal/types"
	"github.com/conneroisu/gix-lisp/internal/value"
)

// tailCall is the internal continuation the evaluator loop consumes
// in place of a recursive Eval call. It never escapes to user code.
type tailCall struct {
	expr  value.Value
	scope *value.Scope
}

// Kind and String let a tailCall travel through value.Value results;
// the loop consumes it before either is consulted.
func (tailCall) Kind() value.Kind { return value.KindUndefined }
func (tailCall) String() string   { return "#<tail-call>" }

var cadrPattern = regexp.MustCompile(`^c[ad]{1,4}r$`)

// Eval runs expr to a value in scope. It is a loop, not recursion:
// special forms and closure/builtin invocation return either a
// finished value or a tailCall that the loop re-enters without
// growing the host stack, so tail-recursive Scheme programs run in
// O(1) Go stack regardless of recursion depth.
func Eval(expr value.Value, scope *value.Scope) (value.Value, error) {
	for {
		switch e := expr.(type) {
		case value.Symbol:
			return resolveSymbol(string(e), scope)

		case *value.Pair:
			result, err := evalPair(e, scope)
			if err != nil {
				return nil, err
			}
			if tc, ok := result.(tailCall); ok {
				expr, scope = tc.expr, tc.scope

				continue
			}

			return result, nil

		default:
			// Self-evaluating: Nil, Bool, String, Integer, Float, Function.
			return expr, nil
		}
	}
}

// resolveSymbol looks up a symbol. A name of the c[ad]{1,4}r shape
// yields a freshly synthesized dynamic accessor on every lookup,
// before the scope is consulted.
func resolveSymbol(name string, scope *value.Scope) (value.Value, error) {
	if cadrPattern.MatchString(name) {
		return &value.DynamicAccessor{Name: name, Ops: name[1 : len(name)-1]}, nil
	}
	if val, ok := scope.Get(name); ok {
		return val, nil
	}

	return nil, &types.EvalError{Kind: types.UnboundVariable, Subject: name}
}

// evalPair dispatches a pair (head . tail): a reserved special form if
// head is one of the form keywords, otherwise ordinary function
// application. The result is either a final value.Value or a tailCall.
func evalPair(p *value.Pair, scope *value.Scope) (value.Value, error) {
	args, ok := value.ToSlice(p.Cdr)
	if !ok {
		return nil, &types.EvalError{Kind: types.ListRequired}
	}

	if head, ok := p.Car.(value.Symbol); ok {
		if handler, ok := specialForms[string(head)]; ok {
			return handler(args, scope)
		}
	}

	fn, err := Eval(p.Car, scope)
	if err != nil {
		return nil, err
	}
	function, ok := fn.(value.Function)
	if !ok {
		return nil, &types.EvalError{Kind: types.IllegalObjectAsAFunction, Subject: fn.String()}
	}

	evaluated := make([]value.Value, len(args))
	for i, a := range args {
		v, err := Eval(a, scope)
		if err != nil {
			return nil, err
		}
		evaluated[i] = v
	}

	return Apply(function, evaluated)
}

// evalBegin evaluates a sequence of expressions for effect, returning
// the last one as a tailCall in scope. Zero expressions yields the
// undefined sentinel.
func evalBegin(exprs []value.Value, scope *value.Scope) (value.Value, error) {
	if len(exprs) == 0 {
		return value.Undefined{}, nil
	}
	for _, e := range exprs[:len(exprs)-1] {
		if _, err := Eval(e, scope); err != nil {
			return nil, err
		}
	}

	return tailCall{expr: exprs[len(exprs)-1], scope: scope}, nil
}
