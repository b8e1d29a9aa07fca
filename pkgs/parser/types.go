package parser

import "github.com/ori-rando/seedcore/pkgs/lexer"

// context carries the cursor and the name sets the preprocess pass
// collects, so the process pass can disambiguate a bare identifier
// between Definition/Pathset/State/Quest in that priority order.
type context struct {
	tokens      []lexer.Token
	pos         int
	input       string
	definitions map[string]struct{}
	pathsets    map[string]struct{}
	quests      map[string]struct{}
	states      map[string]struct{}
}

func newContext(tokens []lexer.Token) *context {
	return &context{
		tokens:      tokens,
		definitions: map[string]struct{}{},
		pathsets:    map[string]struct{}{},
		quests:      map[string]struct{}{},
		states:      map[string]struct{}{},
	}
}

func (c *context) current() lexer.Token { return c.tokens[c.pos] }

func (c *context) peekType() lexer.TokenType { return c.tokens[c.pos].Type }

func (c *context) advance() lexer.Token {
	t := c.tokens[c.pos]
	if t.Type != lexer.EOF {
		c.pos++
	}
	return t
}

func (c *context) check(t lexer.TokenType) bool { return c.peekType() == t }

func (c *context) eat(t lexer.TokenType) (lexer.Token, error) {
	if !c.check(t) {
		return lexer.Token{}, wrongToken(c.current(), t.String())
	}
	return c.advance(), nil
}

// checkKeyword reports whether the current token is an IDENTIFIER whose
// value matches word exactly (used for the line-leading section
// keywords: region/anchor/definition/pathsets/refill/state/quest/pickup/conn).
func (c *context) checkKeyword(word string) bool {
	return c.check(lexer.IDENTIFIER) && c.current().Value == word
}
