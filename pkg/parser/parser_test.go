package parser

import (
	"testing"

	"github.com/conneroisu/gix-lisp/internal/types"
	"github.com/conneroisu/gix-lisp/internal/value"
)

func testInteger(t *testing.T, v value.Value, want int64) bool {
	i, ok := v.(value.Integer)
	if !ok {
		t.Errorf("v not value.Integer. got=%T", v)

		return false
	}
	if int64(i) != want {
		t.Errorf("i not %d. got=%d", want, i)

		return false
	}

	return true
}

func testSymbol(t *testing.T, v value.Value, want string) bool {
	s, ok := v.(value.Symbol)
	if !ok {
		t.Errorf("v not value.Symbol. got=%T", v)

		return false
	}
	if string(s) != want {
		t.Errorf("s not %q. got=%q", want, s)

		return false
	}

	return true
}

func parseOne(t *testing.T, input string) value.Value {
	t.Helper()

	objs, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", input, err)
	}
	if len(objs) != 1 {
		t.Fatalf("Parse(%q) returned %d objects, want 1", input, len(objs))
	}

	return objs[0]
}

func TestIntegerLiteral(t *testing.T) {
	testInteger(t, parseOne(t, "5"), 5)
}

func TestSymbolLiteral(t *testing.T) {
	testSymbol(t, parseOne(t, "foobar"), "foobar")
}

func TestStringLiteral(t *testing.T) {
	s, ok := parseOne(t, `"hello world"`).(value.String)
	if !ok {
		t.Fatalf("not value.String. got=%T", s)
	}
	if string(s) != "hello world" {
		t.Fatalf("got %q", s)
	}
}

func TestFloatLiteral(t *testing.T) {
	f, ok := parseOne(t, "-3.5").(value.Float)
	if !ok {
		t.Fatalf("not value.Float. got=%T", f)
	}
	if float64(f) != -3.5 {
		t.Fatalf("got %v", f)
	}
}

func TestEmptyList(t *testing.T) {
	if _, ok := parseOne(t, "()").(value.Nil); !ok {
		t.Fatalf("() did not parse to Nil")
	}
}

func TestProperList(t *testing.T) {
	elems, ok := value.ToSlice(parseOne(t, "(1 2 3)"))
	if !ok {
		t.Fatalf("(1 2 3) is not a proper list")
	}
	if len(elems) != 3 {
		t.Fatalf("len(elems) not 3. got=%d", len(elems))
	}
	testInteger(t, elems[0], 1)
	testInteger(t, elems[1], 2)
	testInteger(t, elems[2], 3)
}

func TestDottedPair(t *testing.T) {
	p, ok := parseOne(t, "(1 . 2)").(*value.Pair)
	if !ok {
		t.Fatalf("not *value.Pair. got=%T", p)
	}
	testInteger(t, p.Car, 1)
	testInteger(t, p.Cdr, 2)
}

func TestQuoteSugar(t *testing.T) {
	elems, ok := value.ToSlice(parseOne(t, "'(1 2)"))
	if !ok {
		t.Fatalf("'(1 2) did not desugar to a proper list")
	}
	if len(elems) != 2 {
		t.Fatalf("len(elems) not 2. got=%d", len(elems))
	}
	testSymbol(t, elems[0], "quote")

	inner, ok := value.ToSlice(elems[1])
	if !ok {
		t.Fatalf("quoted payload is not a proper list")
	}
	testInteger(t, inner[0], 1)
	testInteger(t, inner[1], 2)
}

func TestNestedLists(t *testing.T) {
	elems, ok := value.ToSlice(parseOne(t, "(define (f x) (* x x))"))
	if !ok {
		t.Fatalf("not a proper list")
	}
	if len(elems) != 3 {
		t.Fatalf("len(elems) not 3. got=%d", len(elems))
	}
	testSymbol(t, elems[0], "define")
}

func TestMultipleTopLevelObjects(t *testing.T) {
	objs, err := Parse("1 2 3")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(objs) != 3 {
		t.Fatalf("len(objs) not 3. got=%d", len(objs))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  types.ParseErrorKind
	}{
		{"(1 2", types.UnexpectedEOFAfterOpenParen},
		{"(1 .", types.UnexpectedEOFAfterDot},
		{"(1 . 2 3)", types.ClosingParenExpected},
		{")", types.UnexpectedToken},
		{`"unterminated`, types.UnclosedString},
	}

	for _, tt := range tests {
		_, err := Parse(tt.input)
		if err == nil {
			t.Errorf("Parse(%q): expected error, got none", tt.input)

			continue
		}

		pe, ok := err.(*types.ParseError)
		if !ok {
			t.Errorf("Parse(%q): error is %T, want *types.ParseError", tt.input, err)

			continue
		}

		if pe.Kind != tt.kind {
			t.Errorf("Parse(%q): kind = %v, want %v", tt.input, pe.Kind, tt.kind)
		}
	}
}
