// Package cli holds the command line surface shared by the assembler binaries.
package cli

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/Urethramancer/a64/assembler"
)

// FrontEnd feeds input to an assembler in some source format.
type FrontEnd func(asm *assembler.Assembler, in io.Reader, out io.Writer) error

var errUsage = errors.New("usage")

type options struct {
	strictLabels bool
	symbols      bool
	dump         bool
}

// NewCommand builds the root command of an assembler binary.
func NewCommand(name, short, long string, run FrontEnd) *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   name + " [FILE]",
		Short: short,
		Long: long + `

If FILE is unspecified or if FILE is "-", read from standard in.
Machine code is written to standard out.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errUsage
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// glog reads its settings from the standard flag set.
			return flag.CommandLine.Parse(nil)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args, run)
		},
	}

	cmd.Flags().BoolVar(&o.strictLabels, "strict-labels", false, "Reject labels that are defined more than once.")
	cmd.Flags().BoolVarP(&o.symbols, "symbols", "s", false, "Print every label and its offset to standard error.")
	cmd.Flags().BoolVar(&o.dump, "dump", false, "Pretty-print the resolved listing to standard error.")

	if f := flag.Lookup("logtostderr"); f != nil {
		_ = f.Value.Set("true")
	}
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	return cmd
}

func (o *options) run(cmd *cobra.Command, args []string, run FrontEnd) error {
	in, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer in.Close()

	var opts []assembler.Option
	if o.strictLabels {
		opts = append(opts, assembler.WithStrictLabels())
	}
	asm := assembler.New(opts...)

	out := bufio.NewWriter(cmd.OutOrStdout())
	err = run(asm, in, out)
	if ferr := out.Flush(); err == nil {
		err = ferr
	}

	if o.symbols {
		printSymbols(cmd.ErrOrStderr(), asm.Symbols())
	}
	if o.dump {
		p := pp.New()
		p.SetColoringEnabled(false)
		p.SetOutput(cmd.ErrOrStderr())
		p.Println(asm.Listing())
	}
	return err
}

// openInput returns standard in for no argument or "-", else the named file.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		glog.V(1).Infof("open %s: %v", args[0], err)
		return nil, fmt.Errorf("file '%s' not found!", args[0])
	}
	return f, nil
}

func printSymbols(w io.Writer, st *assembler.SymbolTable) {
	for _, name := range st.Names() {
		off, _ := st.Lookup(name)
		fmt.Fprintf(w, "%s %d\n", name, off)
	}
}

// Execute runs the command and reports failures on standard error. It
// returns the process exit code.
func Execute(cmd *cobra.Command) int {
	defer glog.Flush()

	err := cmd.Execute()
	if err == nil {
		return 0
	}
	if errors.Is(err, errUsage) {
		fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
		return 1
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "ERROR: %s\n", err)
	return 1
}
