// Package types provides the shared position and error-kind vocabulary
// used by the lexer, parser, and evaluator. There is no AST type here:
// S-expressions are the runtime values themselves (see package value),
// so the only cross-cutting concerns left to name are source positions
// and the closed error taxonomies built on top of them.
package types

import "fmt"

// Position is a 1-indexed line/column pair into the source text.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}
