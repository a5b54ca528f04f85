// Package prelude loads the library of Scheme-defined procedures that
// sits on top of the Go-native builtins (§6's external interface).
package prelude

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/conneroisu/gix-lisp/internal/value"
	"github.com/conneroisu/gix-lisp/pkg/eval"
	"github.com/conneroisu/gix-lisp/pkg/parser"
)

// Source represents a loaded, parsed, and content-hashed prelude file.
type Source struct {
	Path  string
	Text  string
	Hash  string
	Forms []value.Value
}

// Loader locates and prepares a prelude file for evaluation.
type Loader struct {
	name string
	dir  string
}

// NewLoader starts a loader for the named prelude file (conventionally
// "prelude.scm"), resolved against "." unless SetDir overrides it.
func NewLoader(name string) *Loader {
	return &Loader{name: name, dir: "."}
}

// SetDir overrides the directory the prelude file is resolved against.
func (l *Loader) SetDir(dir string) *Loader {
	l.dir = dir

	return l
}

// Load reads, hashes, and parses the prelude file into a Source.
func (l *Loader) Load() (*Source, error) {
	path := filepath.Join(l.dir, l.name)

	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading prelude %s: %w", path, err)
	}

	forms, err := parser.Parse(string(text))
	if err != nil {
		return nil, fmt.Errorf("parsing prelude %s: %w", path, err)
	}

	return &Source{
		Path:  path,
		Text:  string(text),
		Hash:  computeHash(string(text)),
		Forms: forms,
	}, nil
}

// computeHash fingerprints a prelude's text content so a REPL session
// can report which revision of the prelude it booted with.
func computeHash(content string) string {
	sum := sha256.Sum256([]byte(content))

	return hex.EncodeToString(sum[:])[:32]
}

// Install evaluates every top-level form of src into scope in order,
// discarding their results. A define in src binds into scope directly.
func (s *Source) Install(scope *value.Scope) error {
	for _, form := range s.Forms {
		if _, err := eval.Eval(form, scope); err != nil {
			return fmt.Errorf("evaluating prelude form: %w", err)
		}
	}

	return nil
}

// Bootstrap loads name from dir and installs it into a fresh global
// scope, returning the populated scope and the loaded Source (useful
// for reporting s.Hash to the user). If the file does not exist, the
// returned scope is still usable — callers that want "no prelude" as
// a hard requirement should check errors.Is(err, fs.ErrNotExist)
// themselves (err wraps the underlying file error).
func Bootstrap(dir, name string) (*value.Scope, *Source, error) {
	scope := eval.NewGlobalScope()

	src, err := NewLoader(name).SetDir(dir).Load()
	if err != nil {
		return scope, nil, err
	}

	if err := src.Install(scope); err != nil {
		return scope, src, err
	}

	return scope, src, nil
}
