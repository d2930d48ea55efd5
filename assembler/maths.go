package assembler

import (
	"github.com/Urethramancer/a64/cpu"
)

var mathOpcodes = map[string]uint32{
	"add":   cpu.OPADD,
	"sub":   cpu.OPSUB,
	"mul":   cpu.OPMUL,
	"smulh": cpu.OPSMULH,
	"umulh": cpu.OPUMULH,
	"sdiv":  cpu.OPSDIV,
	"udiv":  cpu.OPUDIV,
}

// encodeR3 places Rd, Rn and Rm on top of a base pattern.
func encodeR3(base uint32, rd, rn, rm int64) uint32 {
	return base + uint32(rm)<<cpu.ShiftRm + uint32(rn)<<cpu.ShiftRn + uint32(rd)<<cpu.ShiftRd
}

// assembleMath encodes the three-register arithmetic group and CMP.
func assembleMath(mnemonic string, one, two, three int64) (uint32, error) {
	if mnemonic == "cmp" {
		// cmp xn, xm is subs xzr, xn, xm
		if err := checkRegisters(mnemonic, one, two); err != nil {
			return 0, err
		}
		return encodeR3(cpu.OPSUBS, cpu.RegZero, one, two), nil
	}

	base, ok := mathOpcodes[mnemonic]
	if !ok {
		return 0, semanticf("unknown instruction: %s", mnemonic)
	}
	if err := checkRegisters(mnemonic, one, two, three); err != nil {
		return 0, err
	}
	return encodeR3(base, one, two, three), nil
}

// checkRegisters rejects register numbers that do not fit a 5-bit field.
func checkRegisters(mnemonic string, regs ...int64) error {
	for _, r := range regs {
		if r < 0 || r > cpu.RegZero {
			return semanticf("%s register number %d out of range", mnemonic, r)
		}
	}
	return nil
}
