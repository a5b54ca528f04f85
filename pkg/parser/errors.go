package parser

import "github.com/conneroisu/gix-lisp/internal/types"

func errUnexpectedEOF(pos types.Position) error {
	return &types.ParseError{Kind: types.UnexpectedEOF, Pos: pos}
}

func errUnexpectedEOFAfterOpenParen(pos types.Position) error {
	return &types.ParseError{Kind: types.UnexpectedEOFAfterOpenParen, Pos: pos}
}

func errUnexpectedEOFAfterDot(pos types.Position) error {
	return &types.ParseError{Kind: types.UnexpectedEOFAfterDot, Pos: pos}
}

func errClosingParenExpected(pos types.Position, got string) error {
	return &types.ParseError{Kind: types.ClosingParenExpected, Pos: pos, Detail: got}
}

func errClosingParenExpectedEOF(pos types.Position) error {
	return &types.ParseError{Kind: types.ClosingParenExpectedEOF, Pos: pos}
}

func errUnexpectedToken(pos types.Position, text string) error {
	return &types.ParseError{Kind: types.UnexpectedToken, Pos: pos, Detail: text}
}

func errUnclosedString(pos types.Position) error {
	return &types.ParseError{Kind: types.UnclosedString, Pos: pos}
}
