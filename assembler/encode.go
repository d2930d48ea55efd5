package assembler

// Encode returns the instruction word for a mnemonic and up to three
// resolved operands, in the order destination, first source, second
// source or immediate. Unused operands should be 0. Branch operands are
// byte distances from the instruction itself.
func Encode(mnemonic string, one, two, three int64) (uint32, error) {
	switch mnemonic {
	case "add", "sub", "mul", "smulh", "umulh", "sdiv", "udiv", "cmp":
		return assembleMath(mnemonic, one, two, three)
	case "ldur", "stur":
		return assembleUnscaled(mnemonic, one, two, three)
	case "ldr":
		return assembleLiteral(mnemonic, one, two)
	default:
		return assembleFlow(mnemonic, one)
	}
}
