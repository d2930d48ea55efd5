package assembler

import (
	"github.com/Urethramancer/a64/cpu"
)

// assembleFlow dispatches to the correct flow-control assembly function.
func assembleFlow(mnemonic string, one int64) (uint32, error) {
	switch mnemonic {
	case "br", "blr":
		return assembleBranchRegister(mnemonic, one)
	case "b":
		return assembleB(one)
	}
	if cond, ok := conditionOf(mnemonic); ok {
		return assembleBCond(mnemonic, cond, one)
	}
	return 0, semanticf("unknown instruction: %s", mnemonic)
}

// BR / BLR

func assembleBranchRegister(mnemonic string, rn int64) (uint32, error) {
	if err := checkRegisters(mnemonic, rn); err != nil {
		return 0, err
	}
	base := uint32(cpu.OPBR)
	if mnemonic == "blr" {
		base = cpu.OPBLR
	}
	return base + uint32(rn)<<cpu.ShiftRn, nil
}

// B

func assembleB(offset int64) (uint32, error) {
	imm26, err := wordOffset("b", offset, cpu.WidthImm26)
	if err != nil {
		return 0, err
	}
	return cpu.OPB + imm26, nil
}

// B.cond

func assembleBCond(mnemonic string, cond uint32, offset int64) (uint32, error) {
	imm19, err := wordOffset(mnemonic, offset, cpu.WidthImm19)
	if err != nil {
		return 0, err
	}
	return cpu.OPBCond + imm19<<cpu.ShiftImm19 + cond, nil
}
