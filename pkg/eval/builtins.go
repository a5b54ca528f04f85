package eval

import (
	"github.com/conneroisu/gix-lisp/internal/types"
	"github.com/conneroisu/gix-lisp/internal/value"
)

// NewGlobalScope returns a fresh top-level Scope pre-populated with #t,
// #f, and every named builtin from §4.G and §6.
func NewGlobalScope() *value.Scope {
	scope := value.NewScope()
	scope.Bind("#t", value.Bool(true))
	scope.Bind("#f", value.Bool(false))

	for name, fn := range builtinTable {
		scope.Bind(name, &value.Builtin{Name: name, Fn: fn})
	}

	return scope
}

var builtinTable = map[string]func(args []value.Value) (value.Value, error){
	"+":         builtinAdd,
	"-":         builtinSub,
	"*":         builtinMul,
	"/":         builtinDiv,
	"=":         builtinNumEq,
	"<":         builtinLess,
	">":         builtinGreater,
	"quotient":  builtinQuotient,
	"remainder": builtinRemainder,
	"modulo":    builtinModulo,

	"cons":     builtinCons,
	"car":      builtinCar,
	"cdr":      builtinCdr,
	"list":     builtinList,
	"length":   builtinLength,
	"pair?":    builtinIsPair,
	"list?":    builtinIsList,
	"null?":    builtinIsNull,
	"not":      builtinNot,
	"boolean?": builtinIsBoolean,
	"symbol?":  builtinIsSymbol,
	"string?":  builtinIsString,
	"number?":  builtinIsNumber,
	"integer?": builtinIsInteger,
	"real?":    builtinIsNumber,
	"eq?":      builtinEq,
	"eqv?":     builtinEqv,
	"equal?":   builtinEqual,
	"map":      builtinMap,
}

func builtinCons(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, &types.EvalError{Kind: types.WrongArgsNum, Subject: "cons"}
	}

	return value.NewPair(args[0], args[1]), nil
}

func builtinCar(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, &types.EvalError{Kind: types.WrongArgsNum, Subject: "car"}
	}
	p, ok := args[0].(*value.Pair)
	if !ok {
		return nil, &types.EvalError{Kind: types.PairRequired, Subject: "car"}
	}

	return p.Car, nil
}

func builtinCdr(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, &types.EvalError{Kind: types.WrongArgsNum, Subject: "cdr"}
	}
	p, ok := args[0].(*value.Pair)
	if !ok {
		return nil, &types.EvalError{Kind: types.PairRequired, Subject: "cdr"}
	}

	return p.Cdr, nil
}

func builtinList(args []value.Value) (value.Value, error) {
	return value.List(args...), nil
}

func builtinLength(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, &types.EvalError{Kind: types.WrongArgsNum, Subject: "length"}
	}
	elems, ok := value.ToSlice(args[0])
	if !ok {
		return nil, &types.EvalError{Kind: types.ListRequired, Subject: "length"}
	}

	return value.Integer(len(elems)), nil
}

func builtinIsPair(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, &types.EvalError{Kind: types.WrongArgsNum, Subject: "pair?"}
	}
	_, ok := args[0].(*value.Pair)

	return value.Bool(ok), nil
}

func builtinIsList(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, &types.EvalError{Kind: types.WrongArgsNum, Subject: "list?"}
	}

	return value.Bool(value.IsProperList(args[0])), nil
}

func builtinIsNull(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, &types.EvalError{Kind: types.WrongArgsNum, Subject: "null?"}
	}
	_, ok := args[0].(value.Nil)

	return value.Bool(ok), nil
}

func builtinNot(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, &types.EvalError{Kind: types.WrongArgsNum, Subject: "not"}
	}

	return value.Bool(!value.Truthy(args[0])), nil
}

func builtinIsBoolean(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, &types.EvalError{Kind: types.WrongArgsNum, Subject: "boolean?"}
	}
	_, ok := args[0].(value.Bool)

	return value.Bool(ok), nil
}

func builtinIsSymbol(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, &types.EvalError{Kind: types.WrongArgsNum, Subject: "symbol?"}
	}
	_, ok := args[0].(value.Symbol)

	return value.Bool(ok), nil
}

func builtinIsString(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, &types.EvalError{Kind: types.WrongArgsNum, Subject: "string?"}
	}
	_, ok := args[0].(value.String)

	return value.Bool(ok), nil
}

func builtinIsNumber(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, &types.EvalError{Kind: types.WrongArgsNum, Subject: "number?"}
	}
	_, isInt := args[0].(value.Integer)
	_, isFloat := args[0].(value.Float)

	return value.Bool(isInt || isFloat), nil
}

func builtinIsInteger(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, &types.EvalError{Kind: types.WrongArgsNum, Subject: "integer?"}
	}
	_, ok := args[0].(value.Integer)

	return value.Bool(ok), nil
}

func builtinEq(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, &types.EvalError{Kind: types.WrongArgsNum, Subject: "eq?"}
	}

	return value.Bool(value.Eq(args[0], args[1])), nil
}

func builtinEqv(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, &types.EvalError{Kind: types.WrongArgsNum, Subject: "eqv?"}
	}

	return value.Bool(value.Eqv(args[0], args[1])), nil
}

func builtinEqual(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, &types.EvalError{Kind: types.WrongArgsNum, Subject: "equal?"}
	}

	return value.Bool(value.Equal(args[0], args[1])), nil
}

// builtinMap applies fn across one or more equal-length proper lists
// in lockstep, collecting results into a new proper list (§6).
func builtinMap(args []value.Value) (value.Value, error) {
	if len(args) < 2 {
		return nil, &types.EvalError{Kind: types.NeedAtLeastArgs, Subject: "map"}
	}
	fn, ok := args[0].(value.Function)
	if !ok {
		return nil, &types.EvalError{Kind: types.IllegalObjectAsAFunction, Subject: args[0].String()}
	}

	lists := make([][]value.Value, len(args)-1)
	for i, la := range args[1:] {
		elems, ok := value.ToSlice(la)
		if !ok {
			return nil, &types.EvalError{Kind: types.ListRequired, Subject: "map"}
		}
		lists[i] = elems
	}
	for i := 1; i < len(lists); i++ {
		if len(lists[i]) != len(lists[0]) {
			return nil, &types.EvalError{Kind: types.UnequalMapLists, Subject: "map"}
		}
	}

	results := make([]value.Value, len(lists[0]))
	for i := range results {
		callArgs := make([]value.Value, len(lists))
		for j, l := range lists {
			callArgs[j] = l[i]
		}
		v, err := Apply(fn, callArgs)
		if err != nil {
			return nil, err
		}
		if tc, ok := v.(tailCall); ok {
			v, err = Eval(tc.expr, tc.scope)
			if err != nil {
				return nil, err
			}
		}
		results[i] = v
	}

	return value.List(results...), nil
}
