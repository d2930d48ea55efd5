package assembler

import (
	"strings"
)

// directiveSize returns the byte size of a directive for the sizing pass.
func directiveSize(name string) int64 {
	switch strings.ToLower(name) {
	case ".8byte":
		return 8
	default:
		return 0
	}
}

func isDirective(name string) bool {
	return directiveSize(name) != 0
}

// directiveValue resolves the single operand of a .8byte directive.
// A label operand yields the label's absolute offset, not a distance.
func (asm *Assembler) directiveValue(n *Node) (uint64, error) {
	tok := n.Operands[0]
	switch tok.Type {
	case TokenID:
		off, ok := asm.symbols.Lookup(tok.Lexeme)
		if !ok {
			return 0, semanticf("undefined label: %s", tok.Lexeme)
		}
		return uint64(off), nil
	case TokenHexInt:
		return parseHex(tok.Lexeme)
	default:
		v, err := parseDecimal(tok.Lexeme)
		return uint64(v), err
	}
}

// generateDirectiveCode emits the data for a directive.
func (asm *Assembler) generateDirectiveCode(n *Node, pc int64) error {
	v, err := asm.directiveValue(n)
	if err != nil {
		return err
	}
	asm.listing = append(asm.listing, Instruction{
		Offset:   pc,
		Line:     n.Line,
		Mnemonic: n.Name,
		Operands: [3]int64{int64(v)},
	})
	return asm.out.Dword(v)
}
