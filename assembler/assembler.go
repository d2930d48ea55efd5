package assembler

import (
	"fmt"
	"io"

	"github.com/golang/glog"
)

// Assembler holds the state for the assembly process.
type Assembler struct {
	symbols      *SymbolTable
	out          *Emitter
	listing      []Instruction
	strictLabels bool
}

// Instruction is one resolved statement of the last run.
type Instruction struct {
	Offset   int64
	Line     int
	Mnemonic string
	Operands [3]int64
	Word     uint32
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithStrictLabels makes a second definition of a label an error instead
// of replacing the first one.
func WithStrictLabels() Option {
	return func(asm *Assembler) {
		asm.strictLabels = true
	}
}

// New creates a new Assembler instance.
func New(opts ...Option) *Assembler {
	asm := &Assembler{symbols: NewSymbolTable()}
	for _, o := range opts {
		o(asm)
	}
	return asm
}

// Symbols returns the symbol table built by the last run.
func (asm *Assembler) Symbols() *SymbolTable {
	return asm.symbols
}

// Listing returns the statements emitted by the last run.
func (asm *Assembler) Listing() []Instruction {
	return asm.listing
}

// Assemble reads a token stream from r and writes machine code to w.
func (asm *Assembler) Assemble(r io.Reader, w io.Writer) error {
	tokens, err := ReadTokens(r)
	if err != nil {
		return err
	}
	return asm.AssembleTokens(tokens, w)
}

// AssembleSource assembles assembly text and writes machine code to w.
func (asm *Assembler) AssembleSource(src string, w io.Writer) error {
	tokens, err := Lex(src)
	if err != nil {
		return err
	}
	return asm.AssembleTokens(tokens, w)
}

// AssembleTokens runs both passes over tokens. Nothing is written if pass
// one fails; otherwise bytes are written as each statement is encoded and
// stay written if a later statement fails.
func (asm *Assembler) AssembleTokens(tokens []Token, w io.Writer) error {
	asm.symbols = NewSymbolTable()
	asm.listing = nil
	asm.out = NewEmitter(w)

	if err := asm.buildSymbols(tokens); err != nil {
		return err
	}
	glog.V(1).Infof("pass one: %d labels", asm.symbols.Len())

	if err := asm.generate(tokens); err != nil {
		return err
	}
	glog.V(1).Infof("pass two: %d bytes", asm.out.Written())
	return nil
}

// buildSymbols is pass one: it records the offset of every label.
func (asm *Assembler) buildSymbols(tokens []Token) error {
	s := newScanner(tokens)
	var pc int64
	for {
		n, err := s.next()
		if err != nil {
			return lineError(s.line, err)
		}
		if n == nil {
			return nil
		}
		if n.Type == NodeLabel {
			if dup := asm.symbols.Define(n.Label, pc); dup && asm.strictLabels {
				return lineError(n.Line, grammarf("duplicate label: %s", n.Label))
			}
			glog.V(1).Infof("label %s = %d", n.Label, pc)
			continue
		}
		pc += n.Size()
	}
}

// generate is pass two: it resolves and emits every statement.
func (asm *Assembler) generate(tokens []Token) error {
	s := newScanner(tokens)
	var pc int64
	for {
		n, err := s.next()
		if err != nil {
			return lineError(s.line, err)
		}
		if n == nil {
			return nil
		}

		switch n.Type {
		case NodeLabel:
			// Labels do not emit code.
			continue
		case NodeDirective:
			err = asm.generateDirectiveCode(n, pc)
		case NodeInstruction:
			err = asm.generateInstructionCode(n, pc)
		}
		if err != nil {
			return lineError(n.Line, err)
		}
		pc += n.Size()
	}
}

// generateInstructionCode resolves the operands of one instruction, encodes
// it and writes the word.
func (asm *Assembler) generateInstructionCode(n *Node, pc int64) error {
	ops, err := asm.resolveOperands(n.Mnemonic, n.Operands, pc)
	if err != nil {
		return err
	}
	word, err := Encode(n.Mnemonic, ops[0], ops[1], ops[2])
	if err != nil {
		return err
	}
	asm.listing = append(asm.listing, Instruction{
		Offset:   pc,
		Line:     n.Line,
		Mnemonic: n.Mnemonic,
		Operands: ops,
		Word:     word,
	})
	if glog.V(2) {
		glog.Infof("%06x: %08x %s %v", pc, word, n.Mnemonic, ops)
	}
	return asm.out.Word(word)
}

func lineError(line int, err error) error {
	return fmt.Errorf("line %d: %w", line, err)
}
