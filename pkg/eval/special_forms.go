package eval

import (
	"github.com/conneroisu/gix-lisp/internal/types"
	"github.com/conneroisu/gix-lisp/internal/value"
)

type specialFormHandler func(args []value.Value, scope *value.Scope) (value.Value, error)

var specialForms map[string]specialFormHandler

// init fills specialForms; the handlers reach Eval, which reads the
// table, so it cannot be a package-level initializer.
func init() {
	specialForms = map[string]specialFormHandler{
		"quote":  evalQuote,
		"if":     evalIf,
		"cond":   evalCond,
		"and":    evalAnd,
		"or":     evalOr,
		"begin":  func(args []value.Value, scope *value.Scope) (value.Value, error) { return evalBegin(args, scope) },
		"let":    evalLet,
		"let*":   evalLetStar,
		"letrec": evalLetrec,
		"lambda": evalLambda,
		"define": evalDefine,
		"apply":  evalApplyForm,
	}
}

func evalQuote(args []value.Value, scope *value.Scope) (value.Value, error) {
	if len(args) != 1 {
		return nil, &types.EvalError{Kind: types.WrongArgsNum, Subject: "quote"}
	}

	return args[0], nil
}

func evalIf(args []value.Value, scope *value.Scope) (value.Value, error) {
	if len(args) != 3 {
		return nil, &types.EvalError{Kind: types.WrongArgsNum, Subject: "if"}
	}

	cond, err := Eval(args[0], scope)
	if err != nil {
		return nil, err
	}
	if value.Truthy(cond) {
		return tailCall{expr: args[1], scope: scope}, nil
	}

	return tailCall{expr: args[2], scope: scope}, nil
}

func evalCond(args []value.Value, scope *value.Scope) (value.Value, error) {
	if len(args) == 0 {
		return nil, &types.EvalError{Kind: types.CondNeedsClause, Subject: "cond"}
	}

	for _, clauseVal := range args {
		clause, ok := value.ToSlice(clauseVal)
		if !ok || len(clause) == 0 {
			return nil, &types.EvalError{Kind: types.CondEmptyClause, Subject: "cond"}
		}

		isElse := clause[0] == value.Symbol("else")
		var matched bool
		var test value.Value
		if isElse {
			matched = true
		} else {
			v, err := Eval(clause[0], scope)
			if err != nil {
				return nil, err
			}
			test = v
			matched = value.Truthy(v)
		}
		if !matched {
			continue
		}

		if len(clause) == 1 {
			return test, nil
		}

		return evalBegin(clause[1:], scope)
	}

	return value.Undefined{}, nil
}

func evalAnd(args []value.Value, scope *value.Scope) (value.Value, error) {
	if len(args) == 0 {
		return value.Bool(true), nil
	}
	for _, a := range args[:len(args)-1] {
		v, err := Eval(a, scope)
		if err != nil {
			return nil, err
		}
		if !value.Truthy(v) {
			return v, nil
		}
	}

	return tailCall{expr: args[len(args)-1], scope: scope}, nil
}

func evalOr(args []value.Value, scope *value.Scope) (value.Value, error) {
	if len(args) == 0 {
		return value.Bool(false), nil
	}
	for _, a := range args[:len(args)-1] {
		v, err := Eval(a, scope)
		if err != nil {
			return nil, err
		}
		if value.Truthy(v) {
			return v, nil
		}
	}

	return tailCall{expr: args[len(args)-1], scope: scope}, nil
}

func evalLet(args []value.Value, scope *value.Scope) (value.Value, error) {
	if len(args) < 2 {
		return nil, &types.EvalError{Kind: types.WrongArgsNum, Subject: "let"}
	}

	bindings, names, err := parseBindings(args[0])
	if err != nil {
		return nil, err
	}

	inits := make([]value.Value, len(bindings))
	for i, b := range bindings {
		v, err := Eval(b, scope)
		if err != nil {
			return nil, err
		}
		inits[i] = v
	}

	child := scope.Extend()
	for i, name := range names {
		child.Bind(name, inits[i])
	}

	return evalBegin(args[1:], child)
}

func evalLetStar(args []value.Value, scope *value.Scope) (value.Value, error) {
	if len(args) < 2 {
		return nil, &types.EvalError{Kind: types.WrongArgsNum, Subject: "let*"}
	}

	bindings, names, err := parseBindings(args[0])
	if err != nil {
		return nil, err
	}

	child := scope.Extend()
	for i, b := range bindings {
		v, err := Eval(b, child)
		if err != nil {
			return nil, err
		}
		child.Bind(names[i], v)
	}

	return evalBegin(args[1:], child)
}

func evalLetrec(args []value.Value, scope *value.Scope) (value.Value, error) {
	if len(args) < 2 {
		return nil, &types.EvalError{Kind: types.WrongArgsNum, Subject: "letrec"}
	}

	bindings, names, err := parseBindings(args[0])
	if err != nil {
		return nil, err
	}

	child := scope.Extend()
	for _, name := range names {
		child.Bind(name, value.Undefined{})
	}
	for i, b := range bindings {
		v, err := Eval(b, child)
		if err != nil {
			return nil, err
		}
		child.Bind(names[i], v)
	}

	return evalBegin(args[1:], child)
}

// parseBindings validates and splits a let-family binding list into
// parallel name/init-expression slices.
func parseBindings(bindingsVal value.Value) (inits []value.Value, names []string, err error) {
	entries, ok := value.ToSlice(bindingsVal)
	if !ok {
		return nil, nil, &types.EvalError{Kind: types.LetNeedListForBinding}
	}

	for _, entryVal := range entries {
		entry, ok := value.ToSlice(entryVal)
		if !ok || len(entry) < 2 {
			return nil, nil, &types.EvalError{Kind: types.LetNeedListForBinding}
		}
		name, ok := entry[0].(value.Symbol)
		if !ok {
			return nil, nil, &types.EvalError{Kind: types.LetNeedSymbolForBinding}
		}
		names = append(names, string(name))
		inits = append(inits, entry[1])
	}

	return inits, names, nil
}

func evalLambda(args []value.Value, scope *value.Scope) (value.Value, error) {
	if len(args) < 2 {
		return nil, &types.EvalError{Kind: types.EmptyFunctionBody, Subject: "lambda"}
	}

	return buildClosure("", args[0], args[1:], scope)
}

func evalDefine(args []value.Value, scope *value.Scope) (value.Value, error) {
	if len(args) < 1 {
		return nil, &types.EvalError{Kind: types.WrongDefineArgument}
	}

	switch target := args[0].(type) {
	case value.Symbol:
		if len(args) != 2 {
			return nil, &types.EvalError{Kind: types.WrongDefineArgument}
		}
		v, err := Eval(args[1], scope)
		if err != nil {
			return nil, err
		}
		scope.Bind(string(target), v)

		return value.Undefined{}, nil

	case *value.Pair:
		nameVal := target.Car
		name, ok := nameVal.(value.Symbol)
		if !ok {
			return nil, &types.EvalError{Kind: types.ExpectedSymbolForFunctionName}
		}
		if len(args) < 2 {
			return nil, &types.EvalError{Kind: types.EmptyFunctionBody, Subject: string(name)}
		}
		closure, err := buildClosure(string(name), target.Cdr, args[1:], scope)
		if err != nil {
			return nil, err
		}
		scope.Bind(string(name), closure)

		return value.Undefined{}, nil

	default:
		return nil, &types.EvalError{Kind: types.WrongDefineArgument}
	}
}

func evalApplyForm(args []value.Value, scope *value.Scope) (value.Value, error) {
	if len(args) < 2 {
		return nil, &types.EvalError{Kind: types.NeedAtLeastArgs, Subject: "apply"}
	}

	fnVal, err := Eval(args[0], scope)
	if err != nil {
		return nil, err
	}
	fn, ok := fnVal.(value.Function)
	if !ok {
		return nil, &types.EvalError{Kind: types.IllegalObjectAsAFunction, Subject: fnVal.String()}
	}

	middle := args[1 : len(args)-1]
	last := args[len(args)-1]

	evaluated := make([]value.Value, 0, len(middle)+1)
	for _, a := range middle {
		v, err := Eval(a, scope)
		if err != nil {
			return nil, err
		}
		evaluated = append(evaluated, v)
	}

	lastVal, err := Eval(last, scope)
	if err != nil {
		return nil, err
	}
	tail, ok := value.ToSlice(lastVal)
	if !ok {
		return nil, &types.EvalError{Kind: types.ApplyNeedsProperList, Subject: "apply"}
	}
	evaluated = append(evaluated, tail...)

	return Apply(fn, evaluated)
}
