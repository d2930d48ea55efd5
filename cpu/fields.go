package cpu

// Residue reduces v into [0, 2^width) with a true modulo, so negative
// values land in the positive residue class.
func Residue(v int64, width uint) uint32 {
	m := int64(1) << width
	r := v % m
	if r < 0 {
		r += m
	}
	return uint32(r)
}

// FitsSigned reports whether v is representable as a two's complement
// number of the given width.
func FitsSigned(v int64, width uint) bool {
	lo := -(int64(1) << (width - 1))
	hi := int64(1)<<(width-1) - 1
	return v >= lo && v <= hi
}

// SignedRange returns the inclusive bounds of a signed field.
func SignedRange(width uint) (int64, int64) {
	return -(int64(1) << (width - 1)), int64(1)<<(width-1) - 1
}
