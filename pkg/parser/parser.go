// Package parser turns a lexer.Token stream into a vector of
// value.Value objects — the top-level grammar is
//
//	program   ::= object*
//	object    ::= '(' list_body | "'" object | atom
//	list_body ::= ')' | '.' object ')' | object list_body
//
// There is no precedence to climb: S-expressions nest purely by
// parenthesization, so this is a plain recursive descent over a
// two-token (cur/peek) lookahead window.
package parser

import (
	"strconv"

	"github.com/conneroisu/gix-lisp/internal/types"
	"github.com/conneroisu/gix-lisp/internal/value"
	"github.com/conneroisu/gix-lisp/pkg/lexer"
)

// Parser holds the lookahead window over a lexer's token stream.
type Parser struct {
	l    *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token
}

// New creates a Parser primed with the first two tokens of l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.advance()
	p.advance()

	return p
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) pos() types.Position {
	return types.Position{Line: p.cur.Line, Column: p.cur.Column}
}

// Parse reads every top-level object from the token stream. It stops
// at the first error (first-error-wins; there is no recovery mode).
func Parse(src string) ([]value.Value, error) {
	return New(lexer.New(src)).Parse()
}

// Parse reads every top-level object from p's token stream.
func (p *Parser) Parse() ([]value.Value, error) {
	var objects []value.Value

	for p.cur.Type != lexer.TOKEN_EOF {
		obj, err := p.parseObject()
		if err != nil {
			return nil, err
		}
		objects = append(objects, obj)
	}

	return objects, nil
}

// parseObject parses a single object and advances past it.
func (p *Parser) parseObject() (value.Value, error) {
	switch p.cur.Type {
	case lexer.TOKEN_EOF:
		return nil, errUnexpectedEOF(p.pos())
	case lexer.TOKEN_LPAREN:
		return p.parseList()
	case lexer.TOKEN_QUOTE:
		pos := p.pos()
		p.advance()

		inner, err := p.parseObjectAt(pos)
		if err != nil {
			return nil, err
		}

		return value.List(value.Symbol("quote"), inner), nil
	case lexer.TOKEN_INT:
		return p.parseInt()
	case lexer.TOKEN_FLOAT:
		return p.parseFloat()
	case lexer.TOKEN_STRING:
		return p.parseString()
	case lexer.TOKEN_SYMBOL:
		return p.parseSymbol()
	case lexer.TOKEN_DOT:
		return nil, errUnexpectedToken(p.pos(), p.cur.Literal)
	case lexer.TOKEN_RPAREN:
		return nil, errUnexpectedToken(p.pos(), p.cur.Literal)
	case lexer.TOKEN_ILLEGAL:
		return nil, errUnclosedString(p.pos())
	default:
		return nil, errUnexpectedToken(p.pos(), p.cur.Literal)
	}
}

// parseObjectAt reports EOF using a quote's own start position, since
// "'" followed immediately by EOF has nothing else to blame.
func (p *Parser) parseObjectAt(quotePos types.Position) (value.Value, error) {
	if p.cur.Type == lexer.TOKEN_EOF {
		return nil, errUnexpectedEOF(quotePos)
	}

	return p.parseObject()
}

// parseList parses everything from the opening '(' already at p.cur
// through its matching ')'.
func (p *Parser) parseList() (value.Value, error) {
	openPos := p.pos()
	p.advance() // consume '('

	return p.parseListBody(openPos)
}

func (p *Parser) parseListBody(openPos types.Position) (value.Value, error) {
	if p.cur.Type == lexer.TOKEN_RPAREN {
		p.advance()

		return value.Nil{}, nil
	}
	if p.cur.Type == lexer.TOKEN_EOF {
		return nil, errUnexpectedEOFAfterOpenParen(openPos)
	}
	if p.cur.Type == lexer.TOKEN_DOT {
		return nil, errUnexpectedToken(p.pos(), p.cur.Literal)
	}

	head, err := p.parseObject()
	if err != nil {
		return nil, err
	}

	if p.cur.Type == lexer.TOKEN_DOT {
		dotPos := p.pos()
		p.advance()
		if p.cur.Type == lexer.TOKEN_EOF {
			return nil, errUnexpectedEOFAfterDot(dotPos)
		}

		tail, err := p.parseObject()
		if err != nil {
			return nil, err
		}

		if p.cur.Type != lexer.TOKEN_RPAREN {
			if p.cur.Type == lexer.TOKEN_EOF {
				return nil, errClosingParenExpectedEOF(p.pos())
			}

			return nil, errClosingParenExpected(p.pos(), p.cur.Literal)
		}
		p.advance()

		return value.NewPair(head, tail), nil
	}

	rest, err := p.parseListBody(openPos)
	if err != nil {
		return nil, err
	}

	return value.NewPair(head, rest), nil
}

func (p *Parser) parseInt() (value.Value, error) {
	n, err := strconv.ParseInt(p.cur.Literal, 10, 64)
	if err != nil {
		return nil, errUnexpectedToken(p.pos(), p.cur.Literal)
	}
	p.advance()

	return value.Integer(n), nil
}

func (p *Parser) parseFloat() (value.Value, error) {
	f, err := strconv.ParseFloat(p.cur.Literal, 64)
	if err != nil {
		return nil, errUnexpectedToken(p.pos(), p.cur.Literal)
	}
	p.advance()

	return value.Float(f), nil
}

func (p *Parser) parseString() (value.Value, error) {
	s := value.String(p.cur.Literal)
	p.advance()

	return s, nil
}

func (p *Parser) parseSymbol() (value.Value, error) {
	s := value.Symbol(p.cur.Literal)
	p.advance()

	return s, nil
}
