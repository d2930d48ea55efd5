package main

import (
	"io"
	"os"

	"github.com/Urethramancer/a64/assembler"
	"github.com/Urethramancer/a64/internal/cli"
)

func main() {
	cmd := cli.NewCommand("a64asm",
		"Assemble A64 source text to machine code",
		"a64asm reads one instruction, label or .8byte directive per line.",
		func(asm *assembler.Assembler, in io.Reader, out io.Writer) error {
			src, err := io.ReadAll(in)
			if err != nil {
				return err
			}
			return asm.AssembleSource(string(src), out)
		})
	os.Exit(cli.Execute(cmd))
}
