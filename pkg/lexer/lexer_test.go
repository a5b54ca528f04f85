package lexer

import "testing"

func runTokenTable(t *testing.T, input string, tests []struct {
	expectedType    TokenType
	expectedLiteral string
}) {
	t.Helper()

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextToken(t *testing.T) {
	input := `(define (square x) (* x x))`

	runTokenTable(t, input, []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_LPAREN, "("},
		{TOKEN_SYMBOL, "define"},
		{TOKEN_LPAREN, "("},
		{TOKEN_SYMBOL, "square"},
		{TOKEN_SYMBOL, "x"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_LPAREN, "("},
		{TOKEN_SYMBOL, "*"},
		{TOKEN_SYMBOL, "x"},
		{TOKEN_SYMBOL, "x"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_EOF, ""},
	})
}

func TestNumbers(t *testing.T) {
	input := "1 -3.5 1e2 4.5.2 --3.14 2-3 + #t #f"

	runTokenTable(t, input, []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_INT, "1"},
		{TOKEN_FLOAT, "-3.5"},
		{TOKEN_FLOAT, "1e2"},
		{TOKEN_SYMBOL, "4.5.2"},
		{TOKEN_SYMBOL, "--3.14"},
		{TOKEN_SYMBOL, "2-3"},
		{TOKEN_SYMBOL, "+"},
		{TOKEN_SYMBOL, "#t"},
		{TOKEN_SYMBOL, "#f"},
		{TOKEN_EOF, ""},
	})
}

func TestStrings(t *testing.T) {
	input := `"hello world" "second"`

	runTokenTable(t, input, []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_STRING, "hello world"},
		{TOKEN_STRING, "second"},
		{TOKEN_EOF, ""},
	})
}

func TestUnclosedString(t *testing.T) {
	l := New(`"unclosed`)
	tok := l.NextToken()

	if tok.Type != TOKEN_ILLEGAL {
		t.Fatalf("expected TOKEN_ILLEGAL for unclosed string, got %v", tok.Type)
	}
}

func TestQuoteAndDot(t *testing.T) {
	input := "'(a . b)"

	runTokenTable(t, input, []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_QUOTE, "'"},
		{TOKEN_LPAREN, "("},
		{TOKEN_SYMBOL, "a"},
		{TOKEN_DOT, "."},
		{TOKEN_SYMBOL, "b"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_EOF, ""},
	})
}

func TestLineComments(t *testing.T) {
	input := `; a leading comment
(+ 1 2) ; trailing comment
(* 3 4)`

	runTokenTable(t, input, []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_LPAREN, "("},
		{TOKEN_SYMBOL, "+"},
		{TOKEN_INT, "1"},
		{TOKEN_INT, "2"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_LPAREN, "("},
		{TOKEN_SYMBOL, "*"},
		{TOKEN_INT, "3"},
		{TOKEN_INT, "4"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_EOF, ""},
	})
}

func TestSymbolishExtendedChars(t *testing.T) {
	input := "car cdr cadr list? null? set!"

	runTokenTable(t, input, []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_SYMBOL, "car"},
		{TOKEN_SYMBOL, "cdr"},
		{TOKEN_SYMBOL, "cadr"},
		{TOKEN_SYMBOL, "list?"},
		{TOKEN_SYMBOL, "null?"},
		{TOKEN_SYMBOL, "set!"},
		{TOKEN_EOF, ""},
	})
}
