package assembler

import (
	"bufio"
	"fmt"
	"io"
)

// TokenType tags a lexical unit.
type TokenType int

const (
	// TokenNone is the zero value and never appears in a token stream.
	TokenNone TokenType = iota
	// TokenDotID is a directive or condition suffix, such as .8byte or .eq.
	TokenDotID
	// TokenLabel is a label definition, such as loop:.
	TokenLabel
	// TokenID is a mnemonic, a label reference or sp.
	TokenID
	// TokenHexInt is a 0x-prefixed hexadecimal literal.
	TokenHexInt
	// TokenReg is a register x0 to x30.
	TokenReg
	// TokenZReg is the zero register, xzr.
	TokenZReg
	// TokenInt is a signed decimal literal.
	TokenInt
	// TokenComma separates operands.
	TokenComma
	// TokenLBrack opens a memory operand.
	TokenLBrack
	// TokenRBrack closes a memory operand.
	TokenRBrack
	// TokenNewline ends a statement. It carries no lexeme.
	TokenNewline
)

var tokenNames = map[TokenType]string{
	TokenDotID:   "DOTID",
	TokenLabel:   "LABEL",
	TokenID:      "ID",
	TokenHexInt:  "HEXINT",
	TokenReg:     "REG",
	TokenZReg:    "ZREG",
	TokenInt:     "INT",
	TokenComma:   "COMMA",
	TokenLBrack:  "LBRACK",
	TokenRBrack:  "RBRACK",
	TokenNewline: "NEWLINE",
}

var tokenTypes = func() map[string]TokenType {
	m := make(map[string]TokenType, len(tokenNames))
	for t, s := range tokenNames {
		m[s] = t
	}
	return m
}()

func (t TokenType) String() string {
	if s, ok := tokenNames[t]; ok {
		return s
	}
	return "NONE"
}

// ParseTokenType converts a tag such as "REG" to its TokenType.
func ParseTokenType(s string) (TokenType, error) {
	t, ok := tokenTypes[s]
	if !ok {
		return TokenNone, grammarf("invalid token type %q", s)
	}
	return t, nil
}

// Token is one lexical unit.
type Token struct {
	Type   TokenType
	Lexeme string
}

func (t Token) String() string {
	if t.Type == TokenNewline {
		return t.Type.String()
	}
	return t.Type.String() + " " + t.Lexeme
}

// ReadTokens reads whitespace-separated "<TYPE> <LEXEME>" pairs.
// NEWLINE is the only type without a lexeme.
func ReadTokens(r io.Reader) ([]Token, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	var tokens []Token
	for sc.Scan() {
		t, err := ParseTokenType(sc.Text())
		if err != nil {
			return nil, err
		}
		tok := Token{Type: t}
		if t != TokenNewline {
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return nil, err
				}
				return nil, grammarf("token %s is missing its lexeme", t)
			}
			tok.Lexeme = sc.Text()
		}
		tokens = append(tokens, tok)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading tokens: %w", err)
	}
	return tokens, nil
}
