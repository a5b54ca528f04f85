// Package eval implements the tree-walking, tail-call-trampolined
// evaluator over value.Value S-expressions.
//
// The evaluator is the final stage of the interpreter pipeline, taking
// the value.Value tree produced by the parser (there is no separate
// AST — code is data) and computing it to a value in a Scope.
//
// Architecture:
//
//   - evaluator.go: the Eval loop, symbol resolution, pair dispatch
//   - special_forms.go: quote, if, cond, and, or, begin, let family,
//     lambda, define, apply
//   - functions.go: closure construction and application, the dynamic
//     c[ad]+r accessor machinery
//   - operators.go: the numeric tower (+ - * / = < > quotient
//     remainder modulo)
//   - builtins.go: the rest of the standard procedure library and
//     NewGlobalScope
//
// Evaluation strategy:
//
// Arguments are evaluated eagerly, left to right, before a call is
// made. Special forms control their own subexpressions' evaluation
// (if evaluates only the taken branch; and/or short-circuit). Tail
// positions — the last expression of a body, a branch of if, a cond
// consequent, the let family's body — are returned to Eval's loop as
// a tailCall rather than through a recursive call, so tail-recursive
// programs run in constant Go stack space.
//
// Usage example:
//
//	exprs, err := parser.Parse(`(define (loop n acc) (if (= n 0) acc (loop (- n 1) (+ acc n)))) (loop 100000 0)`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	scope := eval.NewGlobalScope()
//	var result value.Value
//	for _, e := range exprs {
//	    result, err = eval.Eval(e, scope)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	}
//	fmt.Println(result.String())
package eval
