package token

type TokenType string

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	IDENT  TokenType = "IDENT"
	NUMBER TokenType = "NUMBER"

	// OPERATOR covers every binary operator lexeme. The parser resolves the
	// concrete operator through the operator table, not the token type.
	OPERATOR TokenType = "OPERATOR"

	ASSIGN    TokenType = "="
	SEMICOLON TokenType = ";"
	LPAREN    TokenType = "("
	RPAREN    TokenType = ")"

	// Keywords
	VAR   TokenType = "VAR"
	PRINT TokenType = "PRINT"
)

var keywords = map[string]TokenType{
	"var":   VAR,
	"print": PRINT,
}

// Token is a lexical unit with its source position. Tokens are values and
// are copied freely.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Column int
}

// LookupIdent returns the keyword type for ident, or IDENT.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Describe renders a token for diagnostics.
func (t Token) Describe() string {
	if t.Type == EOF {
		return "end of input"
	}
	return "'" + t.Lexeme + "'"
}
