package cubealg

import (
	"fmt"
	"strings"
)

// Parse parses a move-sequence expression into an Expr tree.
//
// Grammar:
//
//	expr := item { item }
//	item := MOVE | "[" expr ( "," | ":" ) expr "]"
//
// Whitespace separates moves and is otherwise ignored. Errors are returned
// as *ParseError wrapping ErrEmptyExpression, ErrInvalidToken,
// ErrMalformedExpression, ErrTooDeep or ErrTooLong.
func Parse(s string, opts ...Option) (Expr, error) {
	cfg := newConfig(opts)

	if strings.TrimSpace(s) == "" {
		return nil, &ParseError{Input: s, Pos: 0, Msg: "no moves", Err: ErrEmptyExpression}
	}

	toks, err := lex(s)
	if err != nil {
		return nil, err
	}

	p := &parser{src: s, toks: toks, maxDepth: cfg.maxDepth, maxMoves: cfg.maxMoves}
	e, err := p.expr(0)
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.kind != tokEOF {
		return nil, p.errorf(tok, ErrMalformedExpression, "unexpected %s", tok.kind)
	}

	return e, nil
}

type parser struct {
	src      string
	toks     []token
	i        int
	maxDepth int
	maxMoves int
}

func (p *parser) peek() token {
	return p.toks[p.i]
}

func (p *parser) next() token {
	tok := p.toks[p.i]
	if tok.kind != tokEOF {
		p.i++
	}
	return tok
}

func (p *parser) errorf(tok token, sentinel error, format string, args ...any) error {
	return &ParseError{
		Input: p.src,
		Pos:   tok.pos,
		Msg:   fmt.Sprintf(format, args...),
		Err:   sentinel,
	}
}

// expr parses one or more items at the given bracket depth.
// Adjacent moves are collected into a single Sequence. Every level checks
// its expanded length, so operands of an enclosing bracket are already bounded.
func (p *parser) expr(depth int) (Expr, error) {
	var parts Concat
	var run Sequence
	start := p.peek()

	flush := func() {
		if len(run) > 0 {
			parts = append(parts, run)
			run = nil
		}
	}

loop:
	for {
		tok := p.peek()
		switch tok.kind {
		case tokMove:
			p.next()
			run = append(run, tok.move)
		case tokLBracket:
			flush()
			e, err := p.bracket(depth)
			if err != nil {
				return nil, err
			}
			parts = append(parts, e)
		default:
			break loop
		}
	}
	flush()

	var e Expr
	switch len(parts) {
	case 0:
		tok := p.peek()
		return nil, p.errorf(tok, ErrMalformedExpression, "expected move or '[', found %s", tok.kind)
	case 1:
		e = parts[0]
	default:
		e = parts
	}

	if n := e.Len(); n > p.maxMoves {
		return nil, p.errorf(start, ErrTooLong, "expands to more than %d moves", p.maxMoves)
	}
	return e, nil
}

// bracket parses "[A, B]" or "[A: B]" starting at the opening bracket.
func (p *parser) bracket(depth int) (Expr, error) {
	open := p.next()
	if depth+1 > p.maxDepth {
		return nil, p.errorf(open, ErrTooDeep, "nesting exceeds %d levels", p.maxDepth)
	}

	a, err := p.expr(depth + 1)
	if err != nil {
		return nil, err
	}

	sep := p.next()
	if sep.kind != tokComma && sep.kind != tokColon {
		return nil, p.errorf(sep, ErrMalformedExpression, "expected ',' or ':', found %s", sep.kind)
	}

	b, err := p.expr(depth + 1)
	if err != nil {
		return nil, err
	}

	if tok := p.next(); tok.kind != tokRBracket {
		return nil, p.errorf(tok, ErrMalformedExpression, "expected ']' to close '[' at offset %d, found %s", open.pos, tok.kind)
	}

	if sep.kind == tokComma {
		return &Commutator{A: a, B: b}, nil
	}
	return &Conjugate{A: a, B: b}, nil
}
