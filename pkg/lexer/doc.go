// Package lexer provides lexical analysis for the S-expression source
// language.
//
// The lexer is the first stage of the interpreter pipeline, converting
// raw source text into a stream of Tokens for the parser.
//
// Token Recognition:
//   - Structural: (, ), ', .
//   - Literals: integer, float, string (no escape processing)
//   - Symbol: any maximal run of alphanumerics plus the extended set
//     + - . * / < = > ! ? : $ % _ & ~ ^ #, tried first as an integer,
//     then as a float, and otherwise kept as a symbol
//
// Comment Handling:
//   - ';' starts a line comment that runs to the next newline
//
// Position Tracking:
//   - 1-based line and column, for error reporting
//
// String Processing:
//   - Double-quoted, no escape sequences; unclosed at EOF is reported
//     to the parser as an ILLEGAL token
//
// Non-ASCII letters are accepted inside a symbol-ish run without
// decoding runes: any byte with its high bit set is either the lead or
// a continuation byte of a multi-byte UTF-8 sequence, so treating all
// such bytes as symbol characters is sufficient.
//
// Usage Example:
//
//	l := lexer.New("(+ 1 2)")
//	for {
//	    tok := l.NextToken()
//	    if tok.Type == lexer.TOKEN_EOF {
//	        break
//	    }
//	    fmt.Printf("%s: %s\n", tok.Type, tok.Literal)
//	}
package lexer
