package main

import (
	"io"
	"os"

	"github.com/Urethramancer/a64/assembler"
	"github.com/Urethramancer/a64/internal/cli"
)

func main() {
	cmd := cli.NewCommand("a64tok",
		"Assemble a tokenized A64 program to machine code",
		"a64tok reads whitespace separated \"TYPE LEXEME\" pairs as produced by the tokenizer.",
		func(asm *assembler.Assembler, in io.Reader, out io.Writer) error {
			return asm.Assemble(in, out)
		})
	os.Exit(cli.Execute(cmd))
}
