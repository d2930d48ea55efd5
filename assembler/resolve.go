package assembler

import (
	"strings"

	"github.com/Urethramancer/a64/cpu"
)

// Operand shapes, one character per position:
//
//	r  register x0-x30 or sp
//	z  register, xzr allowed
//	i  immediate, or a label for branches
//	o  optional immediate, 0 when absent
//	   (blank) nothing allowed
var operandShapes = map[string]string{
	"add":   "rrz",
	"sub":   "rrz",
	"mul":   "rrz",
	"smulh": "rrz",
	"umulh": "rrz",
	"sdiv":  "rrz",
	"udiv":  "rrz",
	"cmp":   "rz ",
	"br":    "r  ",
	"blr":   "r  ",
	"ldur":  "rro",
	"stur":  "rro",
	"ldr":   "ri ",
	"b":     "i  ",
}

const condShape = "i  "

// shapeOf returns the operand shape of a mnemonic.
func shapeOf(mnemonic string) (string, bool) {
	if s, ok := operandShapes[mnemonic]; ok {
		return s, true
	}
	if _, ok := conditionOf(mnemonic); ok {
		return condShape, true
	}
	return "", false
}

// conditionOf decodes the condition of a b.xx mnemonic.
func conditionOf(mnemonic string) (uint32, bool) {
	suffix, ok := strings.CutPrefix(mnemonic, "b.")
	if !ok {
		return 0, false
	}
	cond, ok := cpu.ConditionCodes[suffix]
	return cond, ok
}

// allowsLabel reports whether a mnemonic takes a branch target.
func allowsLabel(mnemonic string) bool {
	if mnemonic == "b" {
		return true
	}
	_, ok := conditionOf(mnemonic)
	return ok
}

type operandKind int

const (
	kindRegister operandKind = iota
	kindImmediate
)

type operand struct {
	kind  operandKind
	text  string
	value int64
}

// classify turns operand tokens into register names and numeric values,
// dropping commas and brackets. Label references become the byte distance
// from pc to the label.
func (asm *Assembler) classify(mnemonic string, tokens []Token, pc int64) ([]operand, error) {
	var ops []operand
	for _, tok := range tokens {
		switch tok.Type {
		case TokenComma, TokenLBrack, TokenRBrack:
			continue

		case TokenReg, TokenZReg:
			ops = append(ops, operand{kind: kindRegister, text: tok.Lexeme})

		case TokenInt:
			v, err := parseDecimal(tok.Lexeme)
			if err != nil {
				return nil, err
			}
			ops = append(ops, operand{kind: kindImmediate, text: tok.Lexeme, value: v})

		case TokenHexInt:
			v, err := parseHex(tok.Lexeme)
			if err != nil {
				return nil, err
			}
			ops = append(ops, operand{kind: kindImmediate, text: tok.Lexeme, value: int64(v)})

		case TokenID:
			label := allowsLabel(mnemonic)
			if !label && strings.EqualFold(tok.Lexeme, cpu.NameSP) {
				ops = append(ops, operand{kind: kindRegister, text: tok.Lexeme})
				continue
			}
			if !label {
				return nil, grammarf("unexpected token %s while processing %s", tok.Lexeme, mnemonic)
			}
			target, ok := asm.symbols.Lookup(tok.Lexeme)
			if !ok {
				return nil, semanticf("undefined label: %s", tok.Lexeme)
			}
			ops = append(ops, operand{kind: kindImmediate, text: tok.Lexeme, value: target - pc})

		default:
			return nil, grammarf("unexpected token: %s", tok.Type)
		}
	}
	return ops, nil
}

// resolveOperands classifies the operands of an instruction and checks them
// against its shape, returning the three values the encoder expects.
func (asm *Assembler) resolveOperands(mnemonic string, tokens []Token, pc int64) ([3]int64, error) {
	var values [3]int64
	shape, ok := shapeOf(mnemonic)
	if !ok {
		return values, semanticf("unknown instruction: %s", mnemonic)
	}

	ops, err := asm.classify(mnemonic, tokens, pc)
	if err != nil {
		return values, err
	}
	if len(ops) > len(shape) {
		return values, semanticf("instruction '%s' has extraneous arguments", mnemonic)
	}

	for i, c := range shape {
		present := i < len(ops)
		switch c {
		case 'r', 'z':
			if !present {
				return values, semanticf("instruction '%s' is missing a register value", mnemonic)
			}
			if ops[i].kind != kindRegister {
				return values, semanticf("instruction '%s' expects a register, found '%s'", mnemonic, ops[i].text)
			}
			reg, err := parseRegister(ops[i].text, c == 'z')
			if err != nil {
				return values, err
			}
			values[i] = reg

		case 'i', 'o':
			if !present {
				if c == 'o' {
					continue
				}
				return values, semanticf("instruction '%s' is missing an immediate value", mnemonic)
			}
			if ops[i].kind != kindImmediate {
				return values, semanticf("instruction '%s' expects an immediate, found '%s'", mnemonic, ops[i].text)
			}
			values[i] = ops[i].value

		default:
			if present {
				return values, semanticf("instruction '%s' has extraneous arguments", mnemonic)
			}
		}
	}
	return values, nil
}
