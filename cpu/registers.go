package cpu

// General purpose register numbering.
const (
	// RegMax is the highest numbered register that can be named as xN.
	RegMax = 30
	// RegZero is XZR, the zero register.
	RegZero = 31
	// RegSP is the stack pointer. It shares its encoding with XZR.
	RegSP = 31
)

// Register aliases accepted in operand position.
const (
	NameZero = "xzr"
	NameSP   = "sp"
)
