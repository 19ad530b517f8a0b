package circuit

import "fmt"

// Parse reads the circuit description surface syntax:
//
//	circ NAME {
//	    inputs: a, b, cin
//	    outputs: s, cout
//	    t1 = a ^ b
//	    s  = t1 ^ cin
//	    cout = (a & b) | (cin & t1)
//	}
//
// and returns the resulting Circuit, running the same construction-time
// validation New does. Expression precedence, loosest to tightest, is
// esop (|) > minterm (^) > literal (&) > primary (~), all left-
// associative, exactly matching the Python original's recursive-descent
// grammar (parser.py's expr/esop/minterm/literal/primary rules).
func Parse(src string) (*Circuit, error) {
	p := &parser{lex: newLexer(src), arena: NewArena()}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p.parseCircuit()
}

type parser struct {
	lex   *lexer
	tok   token
	arena *Arena
	vars  map[string]Ref // memoized Variable nodes, one per referenced name
}

func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

func (p *parser) errorf(format string, args ...any) error {
	return ParseError{
		Line: p.tok.line, Col: p.tok.col, Token: p.tok.text,
		LineSource: p.tok.lineSource,
		Message:    fmt.Sprintf(format, args...),
	}
}

func (p *parser) expectOp(op string) error {
	if p.tok.kind != tokOp || p.tok.text != op {
		return p.errorf("expected %q", op)
	}
	return p.advance()
}

func (p *parser) expectIdent(keyword string) error {
	if p.tok.kind != tokIdent || p.tok.text != keyword {
		return p.errorf("expected keyword %q", keyword)
	}
	return p.advance()
}

func (p *parser) identList() ([]string, error) {
	var names []string
	if p.tok.kind != tokIdent {
		return nil, p.errorf("expected an identifier")
	}
	for {
		if p.tok.kind != tokIdent {
			return nil, p.errorf("expected an identifier")
		}
		names = append(names, p.tok.text)
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.kind == tokOp && p.tok.text == "," {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	return names, nil
}

func (p *parser) parseCircuit() (*Circuit, error) {
	p.vars = make(map[string]Ref)

	if err := p.expectIdent("circ"); err != nil {
		return nil, err
	}
	if p.tok.kind != tokIdent {
		return nil, p.errorf("expected a circuit name")
	}
	name := p.tok.text
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expectOp("{"); err != nil {
		return nil, err
	}

	if err := p.expectIdent("inputs"); err != nil {
		return nil, err
	}
	if err := p.expectOp(":"); err != nil {
		return nil, err
	}
	inputs, err := p.identList()
	if err != nil {
		return nil, err
	}

	if err := p.expectIdent("outputs"); err != nil {
		return nil, err
	}
	if err := p.expectOp(":"); err != nil {
		return nil, err
	}
	outputs, err := p.identList()
	if err != nil {
		return nil, err
	}

	for _, name := range inputs {
		p.vars[name] = p.arena.Var(name)
	}

	var eqs []Equation
	for p.tok.kind == tokIdent {
		lhs := p.tok.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectOp("="); err != nil {
			return nil, err
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		eqs = append(eqs, Equation{Name: lhs, Expr: expr})
	}

	if err := p.expectOp("}"); err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, p.errorf("unexpected trailing input")
	}

	return New(name, p.arena, inputs, outputs, eqs)
}

// parseExpr implements the esop rule: minterm ('|' minterm)*.
func (p *parser) parseExpr() (Ref, error) {
	left, err := p.parseMinterm()
	if err != nil {
		return 0, err
	}
	for p.tok.kind == tokOp && p.tok.text == "|" {
		if err := p.advance(); err != nil {
			return 0, err
		}
		right, err := p.parseMinterm()
		if err != nil {
			return 0, err
		}
		left = p.arena.Or(left, right)
	}
	return left, nil
}

// parseMinterm implements literal ('^' literal)*.
func (p *parser) parseMinterm() (Ref, error) {
	left, err := p.parseLiteral()
	if err != nil {
		return 0, err
	}
	for p.tok.kind == tokOp && p.tok.text == "^" {
		if err := p.advance(); err != nil {
			return 0, err
		}
		right, err := p.parseLiteral()
		if err != nil {
			return 0, err
		}
		left = p.arena.Xor(left, right)
	}
	return left, nil
}

// parseLiteral implements primary ('&' primary)*.
func (p *parser) parseLiteral() (Ref, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for p.tok.kind == tokOp && p.tok.text == "&" {
		if err := p.advance(); err != nil {
			return 0, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		left = p.arena.And(left, right)
	}
	return left, nil
}

// parseUnary implements '~' unary | primary, so negations may repeat.
func (p *parser) parseUnary() (Ref, error) {
	if p.tok.kind == tokOp && p.tok.text == "~" {
		if err := p.advance(); err != nil {
			return 0, err
		}
		x, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return p.arena.Not(x), nil
	}
	return p.parsePrimary()
}

// parsePrimary implements '0' | '1' | ID | '(' expr ')'.
func (p *parser) parsePrimary() (Ref, error) {
	switch {
	case p.tok.kind == tokNumber:
		v := p.tok.text == "1"
		if err := p.advance(); err != nil {
			return 0, err
		}
		return p.arena.Lit(v), nil

	case p.tok.kind == tokIdent:
		name := p.tok.text
		if err := p.advance(); err != nil {
			return 0, err
		}
		if r, ok := p.vars[name]; ok {
			return r, nil
		}
		r := p.arena.Var(name)
		p.vars[name] = r
		return r, nil

	case p.tok.kind == tokOp && p.tok.text == "(":
		if err := p.advance(); err != nil {
			return 0, err
		}
		inner, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if err := p.expectOp(")"); err != nil {
			return 0, err
		}
		return inner, nil

	default:
		return 0, p.errorf("expected a literal, identifier, or parenthesized expression")
	}
}
