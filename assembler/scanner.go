package assembler

import "strings"

// scanner cuts a token sequence into Nodes. Both passes run their own
// scanner over the same tokens, so they always agree on statement
// boundaries and therefore on offsets.
type scanner struct {
	tokens []Token
	pos    int
	line   int
}

func newScanner(tokens []Token) *scanner {
	return &scanner{tokens: tokens, line: 1}
}

func (s *scanner) peek() (Token, bool) {
	if s.pos >= len(s.tokens) {
		return Token{}, false
	}
	return s.tokens[s.pos], true
}

// endStatement requires a NEWLINE or end of input and consumes it.
func (s *scanner) endStatement(what string) error {
	tok, ok := s.peek()
	if !ok {
		return nil
	}
	if tok.Type != TokenNewline {
		return grammarf("%s must be followed by a newline, found %s", what, tok)
	}
	s.pos++
	s.line++
	return nil
}

// next returns the next statement, or nil at end of input.
func (s *scanner) next() (*Node, error) {
	for {
		tok, ok := s.peek()
		if !ok {
			return nil, nil
		}
		if tok.Type != TokenNewline {
			break
		}
		s.pos++
		s.line++
	}

	tok := s.tokens[s.pos]
	n := &Node{Line: s.line}
	switch tok.Type {
	case TokenLabel:
		n.Type = NodeLabel
		n.Label = strings.TrimSuffix(tok.Lexeme, ":")
		s.pos++
		if err := s.endStatement("label " + n.Label); err != nil {
			return nil, err
		}

	case TokenDotID:
		n.Type = NodeDirective
		n.Name = strings.ToLower(tok.Lexeme)
		if !isDirective(n.Name) {
			return nil, grammarf("unknown directive: %s", tok.Lexeme)
		}
		s.pos++
		val, ok := s.peek()
		if !ok || (val.Type != TokenInt && val.Type != TokenHexInt && val.Type != TokenID) {
			return nil, grammarf("expected integer after %s", n.Name)
		}
		n.Operands = []Token{val}
		s.pos++
		if err := s.endStatement(n.Name); err != nil {
			return nil, err
		}

	case TokenID:
		n.Type = NodeInstruction
		n.Mnemonic = strings.ToLower(tok.Lexeme)
		if len(n.Mnemonic) > 2 && strings.HasPrefix(n.Mnemonic, "b.") {
			return nil, grammarf("conditional branch must be tokenized as ID b followed by DOTID %s", n.Mnemonic[1:])
		}
		s.pos++
		if suffix, ok := s.peek(); ok && n.Mnemonic == "b" && suffix.Type == TokenDotID {
			n.Mnemonic += strings.ToLower(suffix.Lexeme)
			s.pos++
		}
		for {
			op, ok := s.peek()
			if !ok {
				break
			}
			if op.Type == TokenNewline {
				s.pos++
				s.line++
				break
			}
			n.Operands = append(n.Operands, op)
			s.pos++
		}

	default:
		return nil, grammarf("unexpected token: %s", tok.Type)
	}
	return n, nil
}
