package stlparse

import (
	"fmt"

	"github.com/katalvlaran/stlmon/transducer"
)

type parser struct {
	lex     *lexer
	tok     token
	signals map[string]int // signal name -> trace column, 1-based
}

// Parse reads a monitor source program and returns the declared signal
// names (in declaration order) and the transducer.Node tree for its "phi"
// formula. Named interval-parameter bounds are carried on the tree as
// AParam/BParam and resolved later against a symbol table via
// transducer.Node.SetTraceDataPtr, not here.
func Parse(src string) (signalNames []string, root *transducer.Node, err error) {
	p := &parser{lex: newLexer(src), signals: map[string]int{}}
	if err := p.advance(); err != nil {
		return nil, nil, err
	}

	if err := p.expect(tokSignal); err != nil {
		return nil, nil, err
	}
	names, err := p.parseSignalList()
	if err != nil {
		return nil, nil, err
	}

	if err := p.expect(tokPhi); err != nil {
		return nil, nil, err
	}
	if err := p.expect(tokColonEq); err != nil {
		return nil, nil, err
	}

	node, err := p.parseOr()
	if err != nil {
		return nil, nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, nil, fmt.Errorf("%w: unexpected trailing input at position %d", ErrParse, p.tok.pos)
	}

	return names, node, nil
}

func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

func (p *parser) expect(kind tokenKind) error {
	if p.tok.kind != kind {
		return fmt.Errorf("%w: unexpected token at position %d", ErrParse, p.tok.pos)
	}
	return p.advance()
}

func (p *parser) parseSignalList() ([]string, error) {
	var names []string
	for {
		if p.tok.kind != tokIdent {
			return nil, fmt.Errorf("%w: expected signal name at position %d", ErrParse, p.tok.pos)
		}
		name := p.tok.text
		p.signals[name] = len(names) + 1
		names = append(names, name)
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.kind != tokComma {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return names, nil
}

func (p *parser) parseOr() (*transducer.Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokOr {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = transducer.NewOr(left, right)
	}
	return left, nil
}

func (p *parser) parseAnd() (*transducer.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokAnd {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = transducer.NewAnd(left, right)
	}
	return left, nil
}

func (p *parser) parseUnary() (*transducer.Node, error) {
	switch p.tok.kind {
	case tokNot:
		if err := p.advance(); err != nil {
			return nil, err
		}
		child, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return transducer.NewNot(child), nil
	case tokEv, tokAlw:
		return p.parseTemporal()
	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return inner, nil
	case tokIdent:
		return p.parseAtom()
	default:
		return nil, fmt.Errorf("%w: expected formula at position %d", ErrParse, p.tok.pos)
	}
}

func (p *parser) parseTemporal() (*transducer.Node, error) {
	isEv := p.tok.kind == tokEv
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(tokUnderscore); err != nil {
		return nil, err
	}
	if err := p.expect(tokLBracket); err != nil {
		return nil, err
	}
	aLit, aParam, err := p.parseBound()
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokComma); err != nil {
		return nil, err
	}
	bLit, bParam, err := p.parseBound()
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokRBracket); err != nil {
		return nil, err
	}
	child, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if isEv {
		return transducer.NewEventually(child, aLit, bLit, aParam, bParam), nil
	}
	return transducer.NewAlways(child, aLit, bLit, aParam, bParam), nil
}

// parseBound returns (literal, paramName). A bare number sets literal with
// no paramName; a bare identifier sets paramName with a zero-value literal
// fallback (resolveParam only reaches the literal on a symbol-table miss).
func (p *parser) parseBound() (float64, string, error) {
	switch p.tok.kind {
	case tokNumber:
		v := p.tok.number
		if err := p.advance(); err != nil {
			return 0, "", err
		}
		return v, "", nil
	case tokIdent:
		name := p.tok.text
		if err := p.advance(); err != nil {
			return 0, "", err
		}
		return 0, name, nil
	default:
		return 0, "", fmt.Errorf("%w: expected interval bound at position %d", ErrParse, p.tok.pos)
	}
}

func (p *parser) parseAtom() (*transducer.Node, error) {
	name := p.tok.text
	pos := p.tok.pos
	column, known := p.signals[name]
	if !known {
		return nil, fmt.Errorf("%w: unknown signal %q at position %d", ErrParse, name, pos)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	var comp transducer.Comparator
	switch p.tok.kind {
	case tokLt:
		comp = transducer.LessThan
	case tokGt:
		comp = transducer.GreaterThan
	default:
		return nil, fmt.Errorf("%w: expected '<' or '>' at position %d", ErrParse, p.tok.pos)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	var rhs transducer.ValueExpr
	switch p.tok.kind {
	case tokNumber:
		rhs = transducer.ValueExpr{Literal: p.tok.number}
	case tokIdent:
		rcol, ok := p.signals[p.tok.text]
		if !ok {
			return nil, fmt.Errorf("%w: unknown signal %q at position %d", ErrParse, p.tok.text, p.tok.pos)
		}
		rhs = transducer.ValueExpr{IsColumn: true, Column: rcol}
	default:
		return nil, fmt.Errorf("%w: expected number or signal name at position %d", ErrParse, p.tok.pos)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	return transducer.NewAtom(name, column, comp, rhs), nil
}
