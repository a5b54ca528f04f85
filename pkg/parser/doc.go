// Package parser implements a recursive descent parser for S-expressions.
//
// The parser is the second stage of the interpreter pipeline,
// transforming a stream of tokens from the lexer directly into
// value.Value objects — there is no separate AST: a parsed program IS
// its runtime value tree.
//
// Grammar:
//
//	program   ::= object*
//	object    ::= '(' list_body | "'" object | atom
//	list_body ::= ')' | '.' object ')' | object list_body
//
// Because S-expressions nest purely through parenthesization, there is
// no precedence to climb; parsing an object never needs to look beyond
// a one-token lookahead window.
//
// Quote sugar:
//
//	'X desugars at parse time to the two-element list (quote X).
//
// Dotted pairs:
//
//	(a . b) parses to a single Pair whose cdr is b directly, rather
//	than a proper list. Only the last position before the closing ')'
//	may use a dot.
//
// Error Handling:
//
// Parse returns on the first error — there is no multi-error
// accumulation or recovery mode. Errors are typed *types.ParseError
// values carrying a Kind (see package types) and a source Position.
//
// Usage Example:
//
//	objects, err := parser.Parse(`(define (square x) (* x x))`)
//	if err != nil {
//	    fmt.Printf("parse error: %v\n", err)
//	    return
//	}
//	// objects[0] is the parsed (define ...) form as a value.Value tree
package parser
