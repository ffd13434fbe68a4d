package lexer

import (
	"github.com/funvibe/simplelang/internal/diagnostics"
	"github.com/funvibe/simplelang/internal/token"
)

// TokenStream is a fully buffered token sequence ending in EOF.
type TokenStream struct {
	tokens []token.Token
	pos    int
}

// NewTokenStream wraps tokens. A trailing EOF is added if missing.
func NewTokenStream(tokens []token.Token) *TokenStream {
	if n := len(tokens); n == 0 || tokens[n-1].Type != token.EOF {
		line := 1
		if n > 0 {
			line = tokens[n-1].Line
		}
		tokens = append(tokens, token.Token{Type: token.EOF, Line: line})
	}
	return &TokenStream{tokens: tokens}
}

// Tokenize runs l to the end of input. It stops at the first ILLEGAL token
// and returns it alongside what was read so far.
func Tokenize(l *Lexer) ([]token.Token, *token.Token) {
	var tokens []token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.ILLEGAL {
			return tokens, &tok
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens, nil
		}
	}
}

// Any reports whether tokens other than EOF remain.
func (s *TokenStream) Any() bool {
	return s.Peek().Type != token.EOF
}

func (s *TokenStream) Peek() token.Token {
	return s.tokens[s.pos]
}

// Next consumes one token. At EOF it keeps returning EOF.
func (s *TokenStream) Next() token.Token {
	tok := s.tokens[s.pos]
	if s.pos < len(s.tokens)-1 {
		s.pos++
	}
	return tok
}

func (s *TokenStream) Remaining() []token.Token {
	return append([]token.Token(nil), s.tokens[s.pos:]...)
}

// Expect consumes the next token if it has type t.
func (s *TokenStream) Expect(t token.TokenType) (token.Token, error) {
	tok := s.Peek()
	if tok.Type != t {
		return tok, diagnostics.NewError(diagnostics.ErrP001, tok,
			"expected %s, got %s", describeType(t), tok.Describe())
	}
	return s.Next(), nil
}

func describeType(t token.TokenType) string {
	switch t {
	case token.IDENT:
		return "identifier"
	case token.NUMBER:
		return "number"
	case token.OPERATOR:
		return "operator"
	case token.VAR:
		return "'var'"
	case token.PRINT:
		return "'print'"
	case token.EOF:
		return "end of input"
	}
	return "'" + string(t) + "'"
}
