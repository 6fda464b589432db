package config

import (
	"errors"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		in       string
		expected []string
	}{
		{"waittime", []string{"waittime"}},
		{"waittime \t60\r\n;", []string{"waittime", "60", ";"}},
		{"servers a\r\nb ;\r\n", []string{"servers", "a", "b", ";"}},
		{"layout  {  host  }  ;", []string{"layout", "{", "host", "}", ";"}},
	}
	for _, tt := range tests {
		got := tokenize(tt.in)
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("tokenize(%q) = %v, want %v", tt.in, got, tt.expected)
		}
	}
}

func TestTokenizeBlankInput(t *testing.T) {
	for _, in := range []string{"", " \t\r\n", "\n\n\n"} {
		if got := tokenize(in); len(got) != 0 {
			t.Errorf("tokenize(%q) = %v, want no tokens", in, got)
		}
	}
}

func TestTokenizePunctuationMustStandAlone(t *testing.T) {
	// No punctuation-aware splitting: attached braces and semicolons stay
	// part of the word.
	got := tokenize("layout{ host } ;")
	expected := []string{"layout{", "host", "}", ";"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("tokenize() = %v, want %v", got, expected)
	}
}

func TestCursorAtEndOfInput(t *testing.T) {
	p := &parser{source: "test.conf", toks: tokenize("waittime")}

	if !p.eq("waittime") {
		t.Error("eq() should match the current token")
	}
	if p.eq("servers") {
		t.Error("eq() should not match a different token")
	}

	p.skip()
	if !p.atEnd() {
		t.Fatal("expected cursor at end after skipping the only token")
	}
	if p.eq(";") {
		t.Error("eq() at end of input should report false")
	}
	if p.eqAdvance(";") {
		t.Error("eqAdvance() at end of input should report false")
	}
	if err := p.expect(";"); !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("expect() at end of input: got %v, want ErrUnexpectedEOF", err)
	}
	if err := p.need(); !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("need() at end of input: got %v, want ErrUnexpectedEOF", err)
	}
}

func TestCursorExpectAdvance(t *testing.T) {
	p := &parser{source: "test.conf", toks: tokenize("{ header }")}

	if err := p.expectAdvance("{"); err != nil {
		t.Fatalf("expectAdvance({) error: %v", err)
	}
	err := p.expectAdvance(";")
	if !errors.Is(err, ErrUnexpectedToken) {
		t.Fatalf("expected ErrUnexpectedToken, got %v", err)
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatal("expected a *ParseError")
	}
	if pe.Source != "test.conf" {
		t.Errorf("expected source 'test.conf', got %q", pe.Source)
	}
}
