package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid is the zero Kind; the lexer never emits it.
	Invalid Kind = iota

	Hash         // #
	LParenthesis // (
	RParenthesis // )
	LBracket     // [
	RBracket     // ]
	LBrace       // {
	RBrace       // }
	LCarat       // <
	RCarat       // >
	Colon        // :
	DoubleColon  // ::
	Period       // .
	Comma        // ,
	Equals       // =

	Plus          // +
	Minus         // -
	Astrisk       // *
	Slash         // /
	DoubleAstrisk // **
	Bang          // !

	// Identifier carries its name in Token.Text.
	Identifier
	// Character carries its value in Token.Char.
	Character
	// String carries its decoded value in Token.Text.
	String
	// Integer carries its value in Token.Int.
	Integer
	// Float carries its value in Token.Float.
	Float

	// Eol is produced by ';'.
	Eol
	// Eof marks the end of the source input.
	Eof
)

var kindNames = [...]string{
	Invalid:       "Invalid",
	Hash:          "Hash",
	LParenthesis:  "LParenthesis",
	RParenthesis:  "RParenthesis",
	LBracket:      "LBracket",
	RBracket:      "RBracket",
	LBrace:        "LBrace",
	RBrace:        "RBrace",
	LCarat:        "LCarat",
	RCarat:        "RCarat",
	Colon:         "Colon",
	DoubleColon:   "DoubleColon",
	Period:        "Period",
	Comma:         "Comma",
	Equals:        "Equals",
	Plus:          "Plus",
	Minus:         "Minus",
	Astrisk:       "Astrisk",
	Slash:         "Slash",
	DoubleAstrisk: "DoubleAstrisk",
	Bang:          "Bang",
	Identifier:    "Identifier",
	Character:     "Character",
	String:        "String",
	Integer:       "Integer",
	Float:         "Float",
	Eol:           "Eol",
	Eof:           "Eof",
}

var kindLexemes = [...]string{
	Hash:          "#",
	LParenthesis:  "(",
	RParenthesis:  ")",
	LBracket:      "[",
	RBracket:      "]",
	LBrace:        "{",
	RBrace:        "}",
	LCarat:        "<",
	RCarat:        ">",
	Colon:         ":",
	DoubleColon:   "::",
	Period:        ".",
	Comma:         ",",
	Equals:        "=",
	Plus:          "+",
	Minus:         "-",
	Astrisk:       "*",
	Slash:         "/",
	DoubleAstrisk: "**",
	Bang:          "!",
	Eol:           ";",
	Eof:           "<EOF>",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Lexeme returns the fixed source form of k, or "" for literal kinds.
func (k Kind) Lexeme() string {
	if int(k) < len(kindLexemes) {
		return kindLexemes[k]
	}
	return ""
}

// IsLiteral reports whether tokens of kind k carry a payload.
func (k Kind) IsLiteral() bool {
	switch k {
	case Identifier, Character, String, Integer, Float:
		return true
	default:
		return false
	}
}

// IsOperator reports whether k is an arithmetic or logical operator.
func (k Kind) IsOperator() bool {
	switch k {
	case Plus, Minus, Astrisk, Slash, DoubleAstrisk, Bang:
		return true
	default:
		return false
	}
}

// Kinds returns every kind the lexer can emit, in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, int(Eof))
	for k := Hash; k <= Eof; k++ {
		out = append(out, k)
	}
	return out
}
