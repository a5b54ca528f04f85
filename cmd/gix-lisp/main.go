// Command gix-lisp is a pure Go Scheme-family interpreter: a lexer,
// parser, and tail-call-trampolined evaluator over S-expressions.
//
// Three subcommands are provided:
//
//	gix-lisp repl            start an interactive session
//	gix-lisp eval EXPR        evaluate a single expression
//	gix-lisp run FILE         evaluate a file
//
// On startup (unless --no-prelude is given) it locates prelude.scm
// relative to --prelude-dir and installs its definitions into the
// global scope before running. For run, a --prelude-dir left at its
// default "." is replaced by the directory containing FILE.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/conneroisu/gix-lisp/internal/replcli"
)

var (
	preludeDir  string
	preludeName string
	noPrelude   bool
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gix-lisp",
		Short: "A pure Go Scheme-family interpreter",
		Long: `gix-lisp is a pure Go implementation of a small Scheme-family
language: a lexer, a recursive-descent parser, and a tail-call-
trampolined evaluator over S-expressions.`,
	}

	root.PersistentFlags().StringVar(&preludeDir, "prelude-dir", ".", "directory to resolve the prelude file against")
	root.PersistentFlags().StringVar(&preludeName, "prelude", "prelude.scm", "name of the prelude file to load")
	root.PersistentFlags().BoolVar(&noPrelude, "no-prelude", false, "skip loading the prelude")

	root.AddCommand(newReplCmd(), newEvalCmd(), newRunCmd())

	return root
}

func options() replcli.Options {
	return replcli.Options{PreludeDir: preludeDir, PreludeName: preludeName, NoPrelude: noPrelude}
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive read-eval-print loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			scope := replcli.NewScope(cmd.OutOrStdout(), options())
			replcli.Run(cmd.InOrStdin(), cmd.OutOrStdout(), scope)

			return nil
		},
	}
}

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR",
		Short: "Evaluate a single expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope := replcli.NewScope(cmd.OutOrStdout(), options())
			result, err := replcli.EvalExpr(args[0], scope)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)

			return nil
		},
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE",
		Short: "Evaluate a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := options()
			if opts.PreludeDir == "." {
				opts.PreludeDir = filepath.Dir(args[0])
			}
			scope := replcli.NewScope(cmd.OutOrStdout(), opts)
			result, err := replcli.EvalFile(args[0], scope)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)

			return nil
		},
	}
}
