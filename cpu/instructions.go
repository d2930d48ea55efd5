package cpu

// Base opcode patterns. Field contributions are added on top of these.
const (
	// Data processing, three registers
	OPADD   = 0x8B206000 // ADD (extended register)
	OPSUB   = 0xCB206000 // SUB (extended register)
	OPSUBS  = 0xEB206000 // SUBS (extended register), used by CMP
	OPMUL   = 0x9B007C00 // MUL (MADD with Ra = XZR)
	OPSMULH = 0x9B407C00 // SMULH
	OPUMULH = 0x9BC07C00 // UMULH
	OPSDIV  = 0x9AC00C00 // SDIV
	OPUDIV  = 0x9AC00800 // UDIV

	// Branch to register
	OPBR  = 0xD61F0000 // BR
	OPBLR = 0xD63F0000 // BLR

	// Loads and stores
	OPLDUR   = 0xF8400000 // LDUR (unscaled immediate)
	OPSTUR   = 0xF8000000 // STUR (unscaled immediate)
	OPLDRLit = 0x58000000 // LDR (literal)

	// Immediate branches
	OPB     = 0x14000000 // B
	OPBCond = 0x54000000 // B.cond (condition code added)
)

// Field widths of the signed immediates.
const (
	WidthImm9  = 9
	WidthImm19 = 19
	WidthImm26 = 26
)

// Bit positions of the fields.
const (
	ShiftRd    = 0
	ShiftRn    = 5
	ShiftRm    = 16
	ShiftImm9  = 12
	ShiftImm19 = 5
)

// ConditionCodes maps condition suffixes for B.cond to their 4-bit codes.
var ConditionCodes = map[string]uint32{
	"eq": 0x0, // equal
	"ne": 0x1, // not equal
	"hs": 0x2, // unsigned higher or same
	"lo": 0x3, // unsigned lower
	"hi": 0x8, // unsigned higher
	"ls": 0x9, // unsigned lower or same
	"ge": 0xA, // signed greater or equal
	"lt": 0xB, // signed less than
	"gt": 0xC, // signed greater than
	"le": 0xD, // signed less or equal
}
