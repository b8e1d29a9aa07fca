package parser

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/ori-rando/seedcore/pkgs/lexer"
)

// ErrorKind categorizes a logic-graph parse failure.
type ErrorKind int

const (
	ErrWrongToken ErrorKind = iota
	ErrWrongAmount
	ErrWrongRequirement
	ErrParseInt
)

func (k ErrorKind) String() string {
	switch k {
	case ErrWrongToken:
		return "wrong token"
	case ErrWrongAmount:
		return "wrong amount"
	case ErrWrongRequirement:
		return "wrong requirement"
	case ErrParseInt:
		return "invalid integer"
	default:
		return "parse error"
	}
}

// ParseError carries location information so Error() can render a
// Rust/Clang-style code snippet pointing at the offending token.
type ParseError struct {
	Kind    ErrorKind
	Message string
	Token   lexer.Token
	Input   string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s: %s\n%s", e.Kind, e.Message, e.snippet())
}

func (e ParseError) snippet() string {
	if e.Input == "" || e.Token.Line == 0 {
		return ""
	}
	lines := strings.Split(e.Input, "\n")
	if e.Token.Line > len(lines) {
		return ""
	}
	lineContent := lines[e.Token.Line-1]

	var b strings.Builder
	fmt.Fprintf(&b, "  --> %d:%d\n", e.Token.Line, e.Token.Column)
	b.WriteString("   |\n")
	fmt.Fprintf(&b, "%2d | %s\n", e.Token.Line, lineContent)
	b.WriteString("   | ")
	if e.Token.Column > 0 && e.Token.Column <= len(lineContent)+1 {
		b.WriteString(strings.Repeat(" ", e.Token.Column-1) + "^")
	}
	return b.String()
}

// withInput attaches source text to a ParseError so Error() can render
// its code snippet; other error types pass through unchanged.
func withInput(err error, input string) error {
	if pe, ok := err.(ParseError); ok {
		pe.Input = input
		return pe
	}
	return err
}

func wrongToken(got lexer.Token, expected string) error {
	return ParseError{Kind: ErrWrongToken, Message: fmt.Sprintf("expected %s, got %s", expected, got.Type), Token: got}
}

func wrongAmount(tok lexer.Token) error {
	return ParseError{Kind: ErrWrongAmount, Message: fmt.Sprintf("%q requires an amount", tok.Value), Token: tok}
}

func notInt(tok lexer.Token) error {
	return ParseError{Kind: ErrParseInt, Message: fmt.Sprintf("%q is not an integer", tok.Value), Token: tok}
}

// wrongRequirement reports an unrecognized requirement keyword, enriched
// with a fuzzy-matched suggestion from the fixed keyword table plus
// whatever names the preprocess pass collected, when one is close enough
// to plausibly be a typo.
func wrongRequirement(tok lexer.Token, known []string) error {
	msg := fmt.Sprintf("unknown requirement %q", tok.Value)
	if best := closestMatch(tok.Value, known); best != "" {
		msg = fmt.Sprintf("%s; did you mean %q?", msg, best)
	}
	return ParseError{Kind: ErrWrongRequirement, Message: msg, Token: tok}
}

func closestMatch(word string, candidates []string) string {
	ranks := fuzzy.RankFindFold(word, candidates)
	if len(ranks) == 0 {
		return ""
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	// A distance more than two past half the word's length is too far to
	// be a useful suggestion rather than noise.
	if best.Distance > len(word)/2+2 {
		return ""
	}
	return best.Target
}
