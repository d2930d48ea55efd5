package assembler_test

import (
	"errors"
	"testing"
	"testing/quick"

	"github.com/Urethramancer/a64/assembler"
	"github.com/Urethramancer/a64/cpu"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name            string
		mnemonic        string
		one, two, three int64
		want            uint32
	}{
		{"ADD", "add", 0, 1, 2, 0x8B226020},
		{"ADD_XZR", "add", 0, 1, 31, 0x8B3F6020},
		{"SUB", "sub", 3, 4, 5, 0xCB256083},
		{"MUL", "mul", 0, 1, 2, 0x9B027C20},
		{"SMULH", "smulh", 0, 1, 2, 0x9B427C20},
		{"UMULH", "umulh", 0, 1, 2, 0x9BC27C20},
		{"SDIV", "sdiv", 0, 1, 2, 0x9AC20C20},
		{"UDIV", "udiv", 0, 1, 2, 0x9AC20820},
		{"CMP", "cmp", 3, 4, 0, 0xEB24607F},
		{"BR", "br", 30, 0, 0, 0xD61F03C0},
		{"BLR", "blr", 1, 0, 0, 0xD63F0020},
		{"LDUR_Max", "ldur", 0, 1, 255, 0xF84FF020},
		{"LDUR_Min", "ldur", 0, 1, -256, 0xF8500020},
		{"STUR_SP", "stur", 2, 31, 8, 0xF80083E2},
		{"LDR_Literal", "ldr", 5, 16, 0, 0x58000085},
		{"B_Forward", "b", 8, 0, 0, 0x14000002},
		{"B_Back", "b", -4, 0, 0, 0x17FFFFFF},
		{"BEQ_Back", "b.eq", -8, 0, 0, 0x54FFFFC0},
		{"BNE_Self", "b.ne", 0, 0, 0, 0x54000001},
		{"BLE_Forward", "b.le", 4, 0, 0, 0x5400002D},
	}
	for _, tc := range tests {
		got, err := assembler.Encode(tc.mnemonic, tc.one, tc.two, tc.three)
		if err != nil {
			t.Errorf("[%s] unexpected error: %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("[%s] got %#08x, want %#08x", tc.name, got, tc.want)
		}
	}
}

func TestEncodeCmpIsSubsToZero(t *testing.T) {
	cmp, err := assembler.Encode("cmp", 3, 4, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := uint32(cpu.OPSUBS) + 4<<16 + 3<<5 + cpu.RegZero
	if cmp != want {
		t.Errorf("cmp x3, x4 = %#08x, want %#08x", cmp, want)
	}
}

func TestEncodeConditionCodes(t *testing.T) {
	for suffix, cond := range cpu.ConditionCodes {
		got, err := assembler.Encode("b."+suffix, 0, 0, 0)
		if err != nil {
			t.Errorf("b.%s: %v", suffix, err)
			continue
		}
		if got != cpu.OPBCond+cond {
			t.Errorf("b.%s = %#08x, want %#08x", suffix, got, cpu.OPBCond+cond)
		}
	}
}

// Register fields hold the operands and the opcode bits never move.
func TestEncodeRegisterFields(t *testing.T) {
	for _, mn := range []string{"add", "sub", "mul", "smulh", "umulh", "sdiv", "udiv"} {
		base, err := assembler.Encode(mn, 0, 0, 0)
		if err != nil {
			t.Fatalf("%s: %v", mn, err)
		}
		f := func(a, b, c uint8) bool {
			rd, rn, rm := int64(a%32), int64(b%32), int64(c%32)
			w, err := assembler.Encode(mn, rd, rn, rm)
			if err != nil {
				return false
			}
			fields := uint32(rm)<<16 | uint32(rn)<<5 | uint32(rd)
			return int64(w&0x1F) == rd &&
				int64(w>>5&0x1F) == rn &&
				int64(w>>16&0x1F) == rm &&
				w-fields == base
		}
		if err := quick.Check(f, nil); err != nil {
			t.Errorf("%s: %v", mn, err)
		}
	}
}

func TestEncodeBoundaries(t *testing.T) {
	tests := []struct {
		name            string
		mnemonic        string
		one, two, three int64
		ok              bool
	}{
		{"LDUR_255", "ldur", 0, 1, 255, true},
		{"LDUR_-256", "ldur", 0, 1, -256, true},
		{"LDUR_256", "ldur", 0, 1, 256, false},
		{"LDUR_-257", "ldur", 0, 1, -257, false},
		{"STUR_256", "stur", 0, 1, 256, false},
		{"STUR_-257", "stur", 0, 1, -257, false},
		{"LDR_Max", "ldr", 0, (1<<18 - 1) * 4, 0, true},
		{"LDR_Min", "ldr", 0, -(1 << 18) * 4, 0, true},
		{"LDR_Over", "ldr", 0, (1 << 18) * 4, 0, false},
		{"LDR_Under", "ldr", 0, -(1<<18 + 1) * 4, 0, false},
		{"B_Max", "b", (1<<25 - 1) * 4, 0, 0, true},
		{"B_Min", "b", -(1 << 25) * 4, 0, 0, true},
		{"B_Over", "b", (1 << 25) * 4, 0, 0, false},
		{"B_Under", "b", -(1<<25 + 1) * 4, 0, 0, false},
		{"BGT_Max", "b.gt", (1<<18 - 1) * 4, 0, 0, true},
		{"BGT_Min", "b.gt", -(1 << 18) * 4, 0, 0, true},
		{"BGT_Over", "b.gt", (1 << 18) * 4, 0, 0, false},
		{"BGT_Under", "b.gt", -(1<<18 + 1) * 4, 0, 0, false},
	}
	for _, tc := range tests {
		_, err := assembler.Encode(tc.mnemonic, tc.one, tc.two, tc.three)
		if tc.ok && err != nil {
			t.Errorf("[%s] unexpected error: %v", tc.name, err)
		}
		if !tc.ok {
			if !errors.Is(err, assembler.ErrRange) {
				t.Errorf("[%s] expected a range error, got %v", tc.name, err)
			}
			if errors.Is(err, assembler.ErrAlignment) {
				t.Errorf("[%s] aligned offset reported as misaligned: %v", tc.name, err)
			}
		}
	}
}

func TestEncodeAlignment(t *testing.T) {
	for _, mn := range []string{"b", "b.eq", "b.lt", "ldr"} {
		f := func(v int32) bool {
			off := int64(v)
			if off%4 == 0 {
				off++
			}
			var err error
			if mn == "ldr" {
				_, err = assembler.Encode(mn, 0, off, 0)
			} else {
				_, err = assembler.Encode(mn, off, 0, 0)
			}
			return errors.Is(err, assembler.ErrAlignment) && errors.Is(err, assembler.ErrRange)
		}
		if err := quick.Check(f, nil); err != nil {
			t.Errorf("%s: %v", mn, err)
		}
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		name            string
		mnemonic        string
		one, two, three int64
	}{
		{"Unknown", "mov", 0, 1, 0},
		{"UnknownCondition", "b.vs", 0, 0, 0},
		{"RegisterTooLarge", "add", 32, 0, 0},
		{"RegisterNegative", "br", -1, 0, 0},
	}
	for _, tc := range tests {
		_, err := assembler.Encode(tc.mnemonic, tc.one, tc.two, tc.three)
		if !errors.Is(err, assembler.ErrSemantic) {
			t.Errorf("[%s] expected a semantic error, got %v", tc.name, err)
		}
	}
}
