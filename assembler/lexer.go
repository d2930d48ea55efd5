package assembler

import (
	"regexp"
	"strings"
)

const (
	reOperandText = `#?(?:0[xX][0-9a-fA-F]+|-?[0-9]+)|x[0-9]+|xzr|sp|[A-Za-z_][A-Za-z0-9_]*`
	reBaseText    = `x[0-9]+|xzr|sp`
	reOffsetText  = `#?(?:0[xX][0-9a-fA-F]+|-?[0-9]+)`
)

var (
	reLabelLine     = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*):$`)
	reDirectiveLine = regexp.MustCompile(`^(\.[A-Za-z0-9_]+)\s+(` + reOperandText + `)$`)
	reInstruction   = regexp.MustCompile(`(?i)^([a-z]+(?:\.[a-z]+)?)` +
		`(?:\s+(` + reOperandText + `)\s*` +
		`(?:` +
		`,\s*\[\s*(` + reBaseText + `)\s*(?:,\s*(` + reOffsetText + `)\s*)?\]` +
		`|` +
		`(?:,\s*(` + reOperandText + `))?\s*(?:,\s*(` + reOperandText + `))?` +
		`))?$`)
	reDecimal = regexp.MustCompile(`^-?[0-9]+$`)
	reRegName = regexp.MustCompile(`(?i)^x[0-9]+$`)
)

// Lex turns assembly text into tokens, one statement per line. Comments
// start with ';' or "//". Every source line ends with a NEWLINE token so
// that line numbers in errors match the text.
func Lex(src string) ([]Token, error) {
	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")
	var tokens []Token
	for i, raw := range lines {
		line := raw
		if idx := strings.IndexRune(line, ';'); idx != -1 {
			line = line[:idx]
		}
		if idx := strings.Index(line, "//"); idx != -1 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)

		if line != "" {
			lineTokens, err := lexLine(line)
			if err != nil {
				return nil, lineError(i+1, err)
			}
			tokens = append(tokens, lineTokens...)
		}
		if i < len(lines)-1 {
			tokens = append(tokens, Token{Type: TokenNewline})
		}
	}
	return tokens, nil
}

// lexLine converts one non-empty, comment-free line.
func lexLine(line string) ([]Token, error) {
	if m := reLabelLine.FindStringSubmatch(line); m != nil {
		return []Token{{Type: TokenLabel, Lexeme: m[1] + ":"}}, nil
	}
	if m := reDirectiveLine.FindStringSubmatch(line); m != nil {
		return []Token{{Type: TokenDotID, Lexeme: m[1]}, operandToken(m[2])}, nil
	}

	m := reInstruction.FindStringSubmatch(line)
	if m == nil {
		return nil, grammarf("unable to parse line: %q", line)
	}

	var tokens []Token
	mnemonic := strings.ToLower(m[1])
	if base, cond, ok := strings.Cut(mnemonic, "."); ok {
		tokens = append(tokens, Token{Type: TokenID, Lexeme: base}, Token{Type: TokenDotID, Lexeme: "." + cond})
	} else {
		tokens = append(tokens, Token{Type: TokenID, Lexeme: mnemonic})
	}

	if m[2] == "" {
		return tokens, nil
	}
	tokens = append(tokens, operandToken(m[2]))

	if m[3] != "" {
		tokens = append(tokens, Token{Type: TokenComma, Lexeme: ","}, Token{Type: TokenLBrack, Lexeme: "["}, operandToken(m[3]))
		if m[4] != "" {
			tokens = append(tokens, Token{Type: TokenComma, Lexeme: ","}, operandToken(m[4]))
		}
		return append(tokens, Token{Type: TokenRBrack, Lexeme: "]"}), nil
	}

	for _, op := range m[5:7] {
		if op != "" {
			tokens = append(tokens, Token{Type: TokenComma, Lexeme: ","}, operandToken(op))
		}
	}
	return tokens, nil
}

// operandToken classifies operand text the way a tokenizer would.
func operandToken(s string) Token {
	s = strings.TrimPrefix(s, "#")
	lower := strings.ToLower(s)
	switch {
	case lower == "xzr":
		return Token{Type: TokenZReg, Lexeme: lower}
	case reRegName.MatchString(s):
		return Token{Type: TokenReg, Lexeme: lower}
	case strings.HasPrefix(lower, "0x"):
		return Token{Type: TokenHexInt, Lexeme: s}
	case reDecimal.MatchString(s):
		return Token{Type: TokenInt, Lexeme: s}
	default:
		return Token{Type: TokenID, Lexeme: s}
	}
}
