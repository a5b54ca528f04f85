package eval

import (
	"math"

	"github.com/conneroisu/gix-lisp/internal/types"
	"github.com/conneroisu/gix-lisp/internal/value"
)

func numericPair(v value.Value) (f float64, isInt bool, ok bool) {
	switch n := v.(type) {
	case value.Integer:
		return float64(n), true, true
	case value.Float:
		return float64(n), false, true
	default:
		return 0, false, false
	}
}

// builtinAdd is "+": variadic, identity 0.
func builtinAdd(args []value.Value) (value.Value, error) {
	var sum float64
	allInt := true
	for _, a := range args {
		f, isInt, ok := numericPair(a)
		if !ok {
			return nil, &types.EvalError{Kind: types.NumericArgsRequiredFor, Subject: "+"}
		}
		sum += f
		allInt = allInt && isInt
	}
	if allInt {
		return value.Integer(int64(sum)), nil
	}

	return value.Float(sum), nil
}

// builtinMul is "*": variadic, identity 1.
func builtinMul(args []value.Value) (value.Value, error) {
	product := 1.0
	allInt := true
	for _, a := range args {
		f, isInt, ok := numericPair(a)
		if !ok {
			return nil, &types.EvalError{Kind: types.NumericArgsRequiredFor, Subject: "*"}
		}
		product *= f
		allInt = allInt && isInt
	}
	if allInt {
		return value.Integer(int64(product)), nil
	}

	return value.Float(product), nil
}

// builtinSub is "-": one arg negates, ≥2 subtracts left to right.
func builtinSub(args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return nil, &types.EvalError{Kind: types.NeedAtLeastArgs, Subject: "-"}
	}
	first, firstIsInt, ok := numericPair(args[0])
	if !ok {
		return nil, &types.EvalError{Kind: types.NumericArgsRequiredFor, Subject: "-"}
	}
	if len(args) == 1 {
		if firstIsInt {
			return value.Integer(-int64(first)), nil
		}

		return value.Float(-first), nil
	}

	result := first
	allInt := firstIsInt
	for _, a := range args[1:] {
		f, isInt, ok := numericPair(a)
		if !ok {
			return nil, &types.EvalError{Kind: types.NumericArgsRequiredFor, Subject: "-"}
		}
		result -= f
		allInt = allInt && isInt
	}
	if allInt {
		return value.Integer(int64(result)), nil
	}

	return value.Float(result), nil
}

// builtinDiv is "/": one arg reciprocates, ≥2 divides left to right.
// The result is always a Float, then normalized back to Integer if it
// is integral.
func builtinDiv(args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return nil, &types.EvalError{Kind: types.NeedAtLeastArgs, Subject: "/"}
	}
	first, _, ok := numericPair(args[0])
	if !ok {
		return nil, &types.EvalError{Kind: types.NumericArgsRequiredFor, Subject: "/"}
	}

	result := first
	if len(args) == 1 {
		if first == 0 {
			return nil, &types.EvalError{Kind: types.DivisionByZero, Subject: "/"}
		}
		result = 1 / first
	} else {
		for _, a := range args[1:] {
			f, _, ok := numericPair(a)
			if !ok {
				return nil, &types.EvalError{Kind: types.NumericArgsRequiredFor, Subject: "/"}
			}
			if f == 0 {
				return nil, &types.EvalError{Kind: types.DivisionByZero, Subject: "/"}
			}
			result /= f
		}
	}

	return normalizeFloat(result), nil
}

func normalizeFloat(f float64) value.Value {
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		return value.Integer(int64(f))
	}

	return value.Float(f)
}

func asIntegers(name string, args []value.Value) ([]int64, error) {
	out := make([]int64, len(args))
	for i, a := range args {
		n, ok := a.(value.Integer)
		if !ok {
			return nil, &types.EvalError{Kind: types.IntegerArgsRequiredFor, Subject: name}
		}
		out[i] = int64(n)
	}

	return out, nil
}

func builtinQuotient(args []value.Value) (value.Value, error) {
	ints, err := asIntegers("quotient", args)
	if err != nil {
		return nil, err
	}
	if len(ints) != 2 {
		return nil, &types.EvalError{Kind: types.WrongArgsNum, Subject: "quotient"}
	}
	if ints[1] == 0 {
		return nil, &types.EvalError{Kind: types.DivisionByZero, Subject: "quotient"}
	}

	return value.Integer(ints[0] / ints[1]), nil
}

func builtinRemainder(args []value.Value) (value.Value, error) {
	ints, err := asIntegers("remainder", args)
	if err != nil {
		return nil, err
	}
	if len(ints) != 2 {
		return nil, &types.EvalError{Kind: types.WrongArgsNum, Subject: "remainder"}
	}
	if ints[1] == 0 {
		return nil, &types.EvalError{Kind: types.DivisionByZero, Subject: "remainder"}
	}

	return value.Integer(ints[0] % ints[1]), nil
}

func builtinModulo(args []value.Value) (value.Value, error) {
	ints, err := asIntegers("modulo", args)
	if err != nil {
		return nil, err
	}
	if len(ints) != 2 {
		return nil, &types.EvalError{Kind: types.WrongArgsNum, Subject: "modulo"}
	}
	a, b := ints[0], ints[1]
	if b == 0 {
		return nil, &types.EvalError{Kind: types.DivisionByZero, Subject: "modulo"}
	}
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}

	return value.Integer(m), nil
}

// numericCompare implements the variadic (≥2 args) pairwise chains
// for =, <, >.
func numericCompare(name string, args []value.Value, cmp func(a, b float64) bool) (value.Value, error) {
	if len(args) < 2 {
		return nil, &types.EvalError{Kind: types.NeedAtLeastArgs, Subject: name}
	}
	prev, _, ok := numericPair(args[0])
	if !ok {
		return nil, &types.EvalError{Kind: types.NumericArgsRequiredFor, Subject: name}
	}
	for _, a := range args[1:] {
		f, _, ok := numericPair(a)
		if !ok {
			return nil, &types.EvalError{Kind: types.NumericArgsRequiredFor, Subject: name}
		}
		if !cmp(prev, f) {
			return value.Bool(false), nil
		}
		prev = f
	}

	return value.Bool(true), nil
}

func builtinNumEq(args []value.Value) (value.Value, error) {
	return numericCompare("=", args, func(a, b float64) bool { return a == b })
}

func builtinLess(args []value.Value) (value.Value, error) {
	return numericCompare("<", args, func(a, b float64) bool { return a < b })
}

func builtinGreater(args []value.Value) (value.Value, error) {
	return numericCompare(">", args, func(a, b float64) bool { return a > b })
}
