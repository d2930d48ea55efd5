package assembler

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Urethramancer/a64/cpu"
)

var reRegister = regexp.MustCompile(`^x([0-9]+)$`)

// parseDecimal converts a signed decimal literal.
func parseDecimal(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, semanticf("invalid number format: %s", s)
	}
	return v, nil
}

// parseHex converts an unsigned hexadecimal literal with a 0x or 0X prefix.
func parseHex(s string) (uint64, error) {
	digits, ok := strings.CutPrefix(s, "0x")
	if !ok {
		digits, ok = strings.CutPrefix(s, "0X")
	}
	if !ok || digits == "" {
		return 0, semanticf("invalid hex format: %s", s)
	}
	v, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, semanticf("invalid hex format: %s", s)
	}
	return v, nil
}

// parseRegister converts xN, xzr or sp to a register number. The zero
// register is only accepted when zeroable is set; every caller makes that
// decision through the operand shape of the mnemonic.
func parseRegister(s string, zeroable bool) (int64, error) {
	s = strings.ToLower(s)
	switch s {
	case cpu.NameZero:
		if !zeroable {
			return 0, semanticf("register '%s' is not allowed in a non-zero position", s)
		}
		return cpu.RegZero, nil
	case cpu.NameSP:
		return cpu.RegSP, nil
	}

	m := reRegister.FindStringSubmatch(s)
	if m == nil {
		return 0, semanticf("invalid register value '%s'", s)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n > cpu.RegMax {
		return 0, semanticf("register value '%s' is too large", s)
	}
	return int64(n), nil
}
