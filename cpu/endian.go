package cpu

// AppendLE appends the n least significant bytes of v to dst, least
// significant byte first.
func AppendLE(dst []byte, v uint64, n int) []byte {
	for i := 0; i < n; i++ {
		dst = append(dst, byte(v>>(8*i)))
	}
	return dst
}

// WordsToBytes converts instruction words to their little-endian byte stream.
func WordsToBytes(words []uint32) []byte {
	out := make([]byte, 0, len(words)*4)
	for _, w := range words {
		out = AppendLE(out, uint64(w), 4)
	}
	return out
}

// SwapWord reverses the byte order of a 32-bit word.
func SwapWord(w uint32) uint32 {
	return w>>24 | (w>>8)&0xFF00 | (w<<8)&0xFF0000 | w<<24
}
