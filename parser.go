package venn

import goerrors "gopkg.in/src-d/go-errors.v1"

// parser is a recursive-descent parser over a token slice. A new parser is
// built for every call so no state survives between parses.
//
//	Event      := SetLiteral Operator
//	SetLiteral := NAME | 'U' | '∅' | '(' Event ')'
//	Operator   := '∪' Event | '∩' Event | '\'' Operator | ε
type parser struct {
	expr   string
	toks   []Token
	pos    int
	isName func(rune) bool
}

func parse(expr string, isName func(rune) bool) (Node, error) {
	p := &parser{expr: expr, toks: Tokenize(expr), isName: isName}
	if p.peek().Kind == EOF {
		return &Literal{Name: RuneEmpty}, nil
	}
	n, err := p.event()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Kind != EOF {
		return nil, p.fail(tok, ErrUnexpectedToken)
	}
	return n, nil
}

func (p *parser) peek() Token {
	return p.toks[p.pos]
}

func (p *parser) next() Token {
	tok := p.toks[p.pos]
	if tok.Kind != EOF {
		p.pos++
	}
	return tok
}

func (p *parser) fail(tok Token, kind *goerrors.Kind) error {
	if tok.Kind == EOF && kind == ErrUnexpectedToken {
		kind = ErrUnexpectedEnd
	}
	return newSyntaxError(p.expr, tok, kind)
}

func (p *parser) event() (Node, error) {
	lit, err := p.literal()
	if err != nil {
		return nil, err
	}
	return p.operator(lit)
}

func (p *parser) literal() (Node, error) {
	tok := p.next()
	switch tok.Kind {
	case Universal, Empty:
		return &Literal{Name: tok.Rune, Pos: tok.Pos}, nil
	case SetName:
		if !p.isName(tok.Rune) {
			return nil, p.fail(tok, ErrUnexpectedToken)
		}
		return &Literal{Name: tok.Rune, Pos: tok.Pos}, nil
	case LParen:
		inner, err := p.event()
		if err != nil {
			return nil, err
		}
		switch closing := p.peek(); closing.Kind {
		case RParen:
			p.next()
			return inner, nil
		case EOF:
			return nil, p.fail(tok, ErrUnclosedParen)
		default:
			return nil, p.fail(closing, ErrUnexpectedToken)
		}
	default:
		return nil, p.fail(tok, ErrUnexpectedToken)
	}
}

func (p *parser) operator(left Node) (Node, error) {
	switch p.peek().Kind {
	case Union:
		p.next()
		right, err := p.event()
		if err != nil {
			return nil, err
		}
		return &UnionNode{Left: left, Right: right}, nil
	case Intersect:
		p.next()
		right, err := p.event()
		if err != nil {
			return nil, err
		}
		return &IntersectNode{Left: left, Right: right}, nil
	case Complement:
		p.next()
		return p.operator(&ComplementNode{X: left})
	default:
		return left, nil
	}
}
