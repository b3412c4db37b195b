package token

// Type is the type of a token.
type Type string

// Token represents a lexical token. For STRING, BINARY and TIMESTAMP tokens
// Literal holds the decoded payload, not the source text.
type Token struct {
	Type    Type
	Literal string
	Line    int
	Column  int
}

const (
	// Special tokens
	EOF Type = "EOF" // End of file

	// Literals
	IDENT     Type = "IDENT"     // a, key, name
	NUMBER    Type = "NUMBER"    // 12, 0x1F, 1.5e3, inf, nan
	STRING    Type = "STRING"    // "hello world", 'hi'
	BASE64    Type = "BASE64"    // b64"SGk="
	HEX       Type = "HEX"       // hex"4869"
	TIMESTAMP Type = "TIMESTAMP" // ts"2024-01-15T10:30:00Z"

	// Delimiters
	LBRACE Type = "{"
	RBRACE Type = "}"
	LBRACK Type = "["
	RBRACK Type = "]"
	COMMA  Type = ","
	COLON  Type = ":"
	DASH   Type = "-" // JAML list item marker

	// Keywords
	TRUE  Type = "TRUE"
	FALSE Type = "FALSE"
	NULL  Type = "NULL"

	// JAML structure
	NEWLINE Type = "NEWLINE"
	INDENT  Type = "INDENT"
	DEDENT  Type = "DEDENT"
)

var keywords = map[string]Type{
	"true":  TRUE,
	"false": FALSE,
	"null":  NULL,
}

// LookupIdent checks the keywords table for an identifier.
// If the identifier is a keyword, it returns the keyword's token type.
// Otherwise, it returns IDENT.
func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKey reports whether a token of type t can name a map key. Keywords are
// permitted because a key position is never a value position.
func IsKey(t Type) bool {
	switch t {
	case IDENT, STRING, TRUE, FALSE, NULL:
		return true
	}
	return false
}

// Describe returns a short human readable form of tok for error messages.
func Describe(tok Token) string {
	switch tok.Type {
	case EOF:
		return "end of input"
	case NEWLINE:
		return "end of line"
	case INDENT:
		return "indent"
	case DEDENT:
		return "dedent"
	case STRING:
		return "string"
	}
	if tok.Literal == "" {
		return string(tok.Type)
	}
	return "'" + tok.Literal + "'"
}
