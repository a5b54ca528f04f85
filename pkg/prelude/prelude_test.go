package prelude

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/conneroisu/gix-lisp/internal/value"
	"github.com/conneroisu/gix-lisp/pkg/eval"
	"github.com/conneroisu/gix-lisp/pkg/parser"
)

// repoPreludeDir locates the repo-root prelude.scm relative to this
// test file, so tests exercise the shipped library itself rather than
// a reimplementation of it.
func repoPreludeDir(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}

	return filepath.Join(filepath.Dir(thisFile), "..", "..")
}

func writeTempPrelude(t *testing.T, text string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "prelude.scm"), []byte(text), 0o644); err != nil {
		t.Fatalf("writing temp prelude: %v", err)
	}

	return dir
}

func TestLoadParsesAndHashes(t *testing.T) {
	dir := writeTempPrelude(t, "(define (id x) x)")

	src, err := NewLoader("prelude.scm").SetDir(dir).Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(src.Forms) != 1 {
		t.Fatalf("wrong form count. got=%d, want=1", len(src.Forms))
	}
	if len(src.Hash) != 32 {
		t.Errorf("wrong hash length. got=%d, want=32", len(src.Hash))
	}
}

func TestInstallBindsIntoScope(t *testing.T) {
	dir := writeTempPrelude(t, "(define (twice x) (* 2 x))")

	src, err := NewLoader("prelude.scm").SetDir(dir).Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	scope := eval.NewGlobalScope()
	if err := src.Install(scope); err != nil {
		t.Fatalf("Install returned error: %v", err)
	}

	fn, ok := scope.Get("twice")
	if !ok {
		t.Fatal("twice was not bound after Install")
	}
	closure, ok := fn.(value.Function)
	if !ok {
		t.Fatalf("twice is not a Function: %T", fn)
	}

	result, err := eval.Eval(value.List(closure, value.Integer(21)), scope)
	if err != nil {
		t.Fatalf("apply returned error: %v", err)
	}
	i, ok := result.(value.Integer)
	if !ok {
		t.Fatalf("result is not Integer: %T", result)
	}
	if int64(i) != 42 {
		t.Errorf("wrong result. got=%d, want=42", i)
	}
}

func TestShippedPreludeListLibrary(t *testing.T) {
	scope, src, err := Bootstrap(repoPreludeDir(t), "prelude.scm")
	if err != nil {
		t.Fatalf("Bootstrap returned error: %v", err)
	}

	tests := []struct {
		name string
		expr string
		want value.Value
	}{
		{"append", "(append '(1 2) '(3 4))", value.List(value.Integer(1), value.Integer(2), value.Integer(3), value.Integer(4))},
		{"reverse", "(reverse '(1 2 3))", value.List(value.Integer(3), value.Integer(2), value.Integer(1))},
		{"list-ref", "(list-ref '(1 2 3) 1)", value.Integer(2)},
		{"list-tail", "(list-tail '(1 2 3) 2)", value.List(value.Integer(3))},
		{"filter", "(filter (lambda (x) (> x 1)) '(1 2 3))", value.List(value.Integer(2), value.Integer(3))},
		{"fold-left", "(fold-left + 0 '(1 2 3 4))", value.Integer(10)},
		{"fold-right", "(fold-right cons '() '(1 2 3))", value.List(value.Integer(1), value.Integer(2), value.Integer(3))},
		{"abs", "(abs -5)", value.Integer(5)},
		{"max", "(max 3 1 4 1 5)", value.Integer(5)},
		{"min", "(min 3 1 4 1 5)", value.Integer(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exprs, err := parser.Parse(tt.expr)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			var result value.Value
			for _, e := range exprs {
				result, err = eval.Eval(e, scope)
				if err != nil {
					t.Fatalf("eval error: %v", err)
				}
			}

			if !value.Equal(result, tt.want) {
				t.Errorf("%s = %v, want %v", tt.expr, result, tt.want)
			}
		})
	}

	if len(src.Hash) != 32 {
		t.Errorf("wrong hash length. got=%d, want=32", len(src.Hash))
	}
}

func TestBootstrapMissingFile(t *testing.T) {
	dir := t.TempDir()

	scope, _, err := Bootstrap(dir, "does-not-exist.scm")
	if err == nil {
		t.Fatal("expected error for missing prelude file")
	}
	if scope == nil {
		t.Fatal("Bootstrap should still return a usable global scope on error")
	}
	if !os.IsNotExist(errors.Unwrap(err)) {
		t.Errorf("expected a not-exist error, got: %v", err)
	}
}
