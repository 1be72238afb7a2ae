package classpath

import (
	"fmt"
	"strings"
)

// typeRef is a parsed, unresolved type reference from a manifest.
type typeRef struct {
	name     string     // qualified or simple name; "?" for wildcards
	args     []*typeRef // type arguments
	dims     int        // array dimensions
	bound    *typeRef   // wildcard bound
	superOf  bool       // wildcard bound is a lower bound
	wildcard bool
}

// parseTypeRef parses references such as
//
//	void
//	int[]
//	com.example.Box<java.lang.String, ? extends T>
func parseTypeRef(s string) (*typeRef, error) {
	p := &refParser{toks: tokenize(s)}

	ref, err := p.parseType()
	if err != nil {
		return nil, fmt.Errorf("type %q: %w", s, err)
	}
	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("type %q: unexpected %q", s, p.toks[p.pos])
	}

	return ref, nil
}

func tokenize(s string) []string {
	var toks []string
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case strings.IndexByte("<>,.[]?", c) >= 0:
			toks = append(toks, s[i:i+1])
			i++
		default:
			j := i
			for j < len(s) && isIdentByte(s[j]) {
				j++
			}
			if j == i {
				j = i + 1
			}
			toks = append(toks, s[i:j])
			i = j
		}
	}

	return toks
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' ||
		'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

func isIdent(tok string) bool {
	if tok == "" || '0' <= tok[0] && tok[0] <= '9' {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if !isIdentByte(tok[i]) {
			return false
		}
	}

	return true
}

type refParser struct {
	toks []string
	pos  int
}

func (p *refParser) peek() string {
	if p.pos < len(p.toks) {
		return p.toks[p.pos]
	}

	return ""
}

func (p *refParser) next() string {
	tok := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}

	return tok
}

func (p *refParser) expect(tok string) error {
	if got := p.next(); got != tok {
		if got == "" {
			return fmt.Errorf("expected %q, got end of input", tok)
		}
		return fmt.Errorf("expected %q, got %q", tok, got)
	}

	return nil
}

func (p *refParser) parseType() (*typeRef, error) {
	if p.peek() == "?" {
		return p.parseWildcard()
	}

	ref, err := p.parseName()
	if err != nil {
		return nil, err
	}

	if p.peek() == "<" {
		p.next()
		for {
			arg, err := p.parseType()
			if err != nil {
				return nil, err
			}
			ref.args = append(ref.args, arg)

			if p.peek() != "," {
				break
			}
			p.next()
		}
		if err := p.expect(">"); err != nil {
			return nil, err
		}
	}

	for p.peek() == "[" {
		p.next()
		if err := p.expect("]"); err != nil {
			return nil, err
		}
		ref.dims++
	}

	return ref, nil
}

func (p *refParser) parseName() (*typeRef, error) {
	first := p.next()
	if !isIdent(first) {
		if first == "" {
			return nil, fmt.Errorf("expected type name, got end of input")
		}
		return nil, fmt.Errorf("expected type name, got %q", first)
	}

	parts := []string{first}
	for p.peek() == "." {
		p.next()
		part := p.next()
		if !isIdent(part) {
			return nil, fmt.Errorf("invalid name segment %q", part)
		}
		parts = append(parts, part)
	}

	return &typeRef{name: strings.Join(parts, ".")}, nil
}

func (p *refParser) parseWildcard() (*typeRef, error) {
	p.next()
	ref := &typeRef{name: "?", wildcard: true}

	switch p.peek() {
	case "extends", "super":
		ref.superOf = p.next() == "super"

		bound, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if bound.wildcard {
			return nil, fmt.Errorf("wildcard bound cannot be a wildcard")
		}
		ref.bound = bound
	}

	return ref, nil
}
