package assembler

import (
	"io"

	"github.com/Urethramancer/a64/cpu"
)

// Emitter writes instruction words and literals to a byte stream, both
// least significant byte first. Bytes already written are never retracted.
type Emitter struct {
	w   io.Writer
	buf []byte
	n   int64
}

// NewEmitter returns an Emitter writing to w.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w, buf: make([]byte, 0, 8)}
}

func (e *Emitter) emit(v uint64, size int) error {
	e.buf = cpu.AppendLE(e.buf[:0], v, size)
	n, err := e.w.Write(e.buf)
	e.n += int64(n)
	return err
}

// Word writes a 4-byte instruction word.
func (e *Emitter) Word(w uint32) error {
	return e.emit(uint64(w), 4)
}

// Dword writes an 8-byte literal.
func (e *Emitter) Dword(v uint64) error {
	return e.emit(v, 8)
}

// Written returns the number of bytes written so far.
func (e *Emitter) Written() int64 {
	return e.n
}
