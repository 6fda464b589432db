package config

import (
	"fmt"
	"strings"
)

// tokenize splits raw configuration text into whitespace-delimited tokens.
// The format is strictly word-based: there is no quoting or escaping, and
// "{", "}" and ";" are grammar symbols only when they stand alone as their
// own whitespace-separated word, so "host{" is a single token.
func tokenize(src string) []string {
	return strings.FieldsFunc(src, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\r' || r == '\n'
	})
}

// parser walks the token sequence with one token of lookahead. Grammar
// rules are written against these cursor methods; none of them index the
// token slice directly.
type parser struct {
	source string
	toks   []string
	pos    int
	cfg    *Config
}

// atEnd reports whether every token has been consumed.
func (p *parser) atEnd() bool {
	return p.pos >= len(p.toks)
}

// cur returns the current token. Callers check atEnd or need first.
func (p *parser) cur() string {
	return p.toks[p.pos]
}

// skip unconditionally steps past the current token.
func (p *parser) skip() {
	p.pos++
}

// need fails with ErrUnexpectedEOF when no token remains.
func (p *parser) need() error {
	if p.atEnd() {
		return p.errEOF()
	}
	return nil
}

// advance steps to the next token and fails if the input ends there.
func (p *parser) advance() error {
	p.pos++
	return p.need()
}

// eq reports whether the current token equals v. At the end of the input
// it reports false.
func (p *parser) eq(v string) bool {
	return !p.atEnd() && p.cur() == v
}

// eqAdvance consumes the current token if it equals v.
func (p *parser) eqAdvance(v string) bool {
	if !p.eq(v) {
		return false
	}
	p.pos++
	return true
}

// expect fails unless the current token equals v. It does not consume.
func (p *parser) expect(v string) error {
	if err := p.need(); err != nil {
		return err
	}
	if p.cur() != v {
		return p.errExpect(v)
	}
	return nil
}

// expectAdvance fails unless the current token equals v, consuming it on
// success.
func (p *parser) expectAdvance(v string) error {
	if err := p.expect(v); err != nil {
		return err
	}
	p.pos++
	return nil
}

func (p *parser) errEOF() error {
	return &ParseError{Source: p.source, Detail: "unexpected end of input", Err: ErrUnexpectedEOF}
}

func (p *parser) errExpect(want string) error {
	return &ParseError{
		Source: p.source,
		Detail: fmt.Sprintf("expected %q, have %q", want, p.cur()),
		Err:    ErrUnexpectedToken,
	}
}

func (p *parser) errUnknown() error {
	return &ParseError{
		Source: p.source,
		Detail: fmt.Sprintf("unknown token %q", p.cur()),
		Err:    ErrUnknownToken,
	}
}

func (p *parser) errNumber(what, reason string) error {
	return &ParseError{
		Source: p.source,
		Detail: fmt.Sprintf("bad %s %q: %s", what, p.cur(), reason),
		Err:    ErrBadNumber,
	}
}
