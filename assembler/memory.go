package assembler

import (
	"github.com/Urethramancer/a64/cpu"
)

// assembleUnscaled encodes LDUR and STUR: rt, [rn, #imm9].
func assembleUnscaled(mnemonic string, rt, rn, imm int64) (uint32, error) {
	base := uint32(cpu.OPLDUR)
	if mnemonic == "stur" {
		base = cpu.OPSTUR
	}
	if err := checkRegisters(mnemonic, rt, rn); err != nil {
		return 0, err
	}
	if !cpu.FitsSigned(imm, cpu.WidthImm9) {
		return 0, rangef("%s immediate out of range : %d", mnemonic, imm)
	}
	return base +
		cpu.Residue(imm, cpu.WidthImm9)<<cpu.ShiftImm9 +
		uint32(rn)<<cpu.ShiftRn +
		uint32(rt), nil
}

// assembleLiteral encodes LDR (literal): rt, pc-relative byte offset.
func assembleLiteral(mnemonic string, rt, offset int64) (uint32, error) {
	if err := checkRegisters(mnemonic, rt); err != nil {
		return 0, err
	}
	words, err := wordOffset(mnemonic, offset, cpu.WidthImm19)
	if err != nil {
		return 0, err
	}
	return cpu.OPLDRLit + words<<cpu.ShiftImm19 + uint32(rt), nil
}

// wordOffset checks that a byte distance is word aligned and fits a signed
// field once divided by 4, and returns its field residue.
func wordOffset(mnemonic string, offset int64, width uint) (uint32, error) {
	if offset%4 != 0 {
		return 0, alignf("%s immediate must be a multiple of 4 bytes: %d", mnemonic, offset)
	}
	words := offset / 4
	if !cpu.FitsSigned(words, width) {
		return 0, rangef("%s immediate out of range : %d", mnemonic, offset)
	}
	return cpu.Residue(words, width), nil
}
