// Package replcli implements the interactive REPL, single-expression,
// and file-evaluation modes shared by the gix-lisp CLI's subcommands.
package replcli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/conneroisu/gix-lisp/internal/value"
	"github.com/conneroisu/gix-lisp/pkg/eval"
	"github.com/conneroisu/gix-lisp/pkg/parser"
	"github.com/conneroisu/gix-lisp/pkg/prelude"
)

// Options control prelude loading, shared across all three modes.
type Options struct {
	PreludeDir  string
	PreludeName string
	NoPrelude   bool
}

// NewScope builds the global scope for a session, installing the
// prelude unless the caller opted out. A missing prelude file is
// reported as a warning on out but does not abort startup (§6:
// "reporting but not aborting on failure").
func NewScope(out io.Writer, opts Options) *value.Scope {
	if opts.NoPrelude {
		return eval.NewGlobalScope()
	}

	scope, src, err := prelude.Bootstrap(opts.PreludeDir, opts.PreludeName)
	if err != nil {
		fmt.Fprintf(out, "warning: prelude not loaded: %v\n", err)

		return scope
	}
	fmt.Fprintf(out, "prelude loaded: %s (%s)\n", src.Path, src.Hash[:8])

	return scope
}

// EvalExpr evaluates a single expression string against scope,
// returning its printed form.
func EvalExpr(expr string, scope *value.Scope) (string, error) {
	exprs, err := parser.Parse(expr)
	if err != nil {
		return "", fmt.Errorf("parse error: %w", err)
	}

	var result value.Value = value.Undefined{}
	for _, e := range exprs {
		result, err = eval.Eval(e, scope)
		if err != nil {
			return "", fmt.Errorf("eval error: %w", err)
		}
	}

	return result.String(), nil
}

// EvalFile reads filename and evaluates its contents against scope.
func EvalFile(filename string, scope *value.Scope) (string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", filename, err)
	}

	return EvalExpr(string(content), scope)
}

// Run starts an interactive read-eval-print loop over in, printing
// prompts and results to out. It exits on EOF or a ":quit"/":q" line.
func Run(in io.Reader, out io.Writer, scope *value.Scope) {
	fmt.Fprintln(out, "gix-lisp repl - Type :quit to exit")
	fmt.Fprintln(out)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "gix-lisp> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == ":quit" || line == ":q" {
			break
		}
		if strings.HasPrefix(line, ":") {
			handleCommand(out, line)

			continue
		}

		result, err := EvalExpr(line, scope)
		if err != nil {
			fmt.Fprintln(out, err)

			continue
		}
		fmt.Fprintln(out, result)
	}
}

func handleCommand(out io.Writer, cmd string) {
	switch cmd {
	case ":help", ":h":
		fmt.Fprintln(out, "Available commands:")
		fmt.Fprintln(out, "  :help, :h    Show this help")
		fmt.Fprintln(out, "  :quit, :q    Exit the REPL")
	default:
		fmt.Fprintf(out, "Unknown command: %s\n", cmd)
		fmt.Fprintln(out, "Type :help for available commands")
	}
}
