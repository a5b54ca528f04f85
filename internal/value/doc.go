// Package value provides the runtime value system for the Lisp interpreter.
//
// This package defines all value types that can result from evaluating
// Scheme-style S-expressions. The value system is designed to be
// immutable, type-safe, and homoiconic: a parsed program is itself a
// tree of these same values.
//
// Core Design Principles:
//
// Immutability:
//
//	Values are never mutated after creation. Pair.Car and Pair.Cdr are
//	exported for the evaluator's convenience, but no core operation
//	writes through an existing Pair — extension always allocates new
//	cells. This enables safe structural sharing between closures.
//
// Homoiconicity:
//
//	There is no separate AST type. Symbol, Pair, Integer and the other
//	Value variants are both the parser's output and the evaluator's
//	input; quote simply returns its argument unevaluated.
//
// Equality Semantics:
//
//	Three tiers are provided at package level: Equal ("equal?", deep
//	structural), Eqv ("eqv?", shallow but numeric-kind-agnostic), and Eq
//	("eq?", shallow and numeric-kind-strict).
//
// Value Types:
//
// Primitive Types:
//   - Nil: the empty list (distinct from Bool(false))
//   - Bool: #t / #f
//   - Symbol: identifiers
//   - String: string literals
//   - Integer: exact 64-bit signed integers
//   - Float: IEEE-754 doubles
//
// Composite Types:
//   - Pair: the (car . cdr) cell lists are built from
//
// Functional Types:
//   - Closure: user-defined functions with captured Scope
//   - Builtin: host-provided functions
//   - DynamicAccessor: a c[ad]+r accessor synthesized from its name
//
// The Scope type provides lexical scoping with proper closure
// semantics: each frame holds its own bindings map and a parent
// pointer, and lookup walks innermost to root.
package value
