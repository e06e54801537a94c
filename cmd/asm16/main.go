// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ezrec/asm16/asm"
	"github.com/ezrec/asm16/isa"
	"github.com/ezrec/asm16/listing"
	"github.com/ezrec/asm16/translate"
)

var (
	output     string
	verbose    bool
	showList   bool
	showISA    bool
	isaFile    string
	jobs       int
	localeName string
)

var rootCmd = &cobra.Command{
	Use:   "asm16 [flags] [file.asm]",
	Short: "Assemble a program into 16-bit binary machine code",
	Long: `Assembles a program for the 8-register, 16-bit word machine.

Reads the program from the named file, or standard input if none or '-' is
given, and writes one 16 digit binary word per instruction. Nothing is
written if the program fails to assemble.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	flags := rootCmd.Flags()
	flags.StringVarP(&output, "output", "o", "-", "Machine code output")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Verbose mode")
	flags.BoolVarP(&showList, "listing", "l", false, "Write an annotated listing instead of bare words")
	flags.BoolVar(&showISA, "show-isa", false, "Print the instruction set and exit")
	flags.StringVar(&isaFile, "isa", "", "Starlark instruction set definitions to add to the built-in set")
	flags.IntVarP(&jobs, "jobs", "j", 1, "Lines to encode in parallel")
	flags.StringVar(&localeName, "locale", "", "Message locale, overriding the system locale")
}

func run(cmd *cobra.Command, args []string) (err error) {
	if len(localeName) != 0 {
		err = translate.Use(localeName)
		if err != nil {
			return errors.Wrap(err, "locale")
		}
	}

	table := isa.Default()
	if len(isaFile) != 0 {
		var extra *isa.Table
		extra, err = isa.Load(isaFile, nil)
		if err != nil {
			return errors.Wrap(err, isaFile)
		}
		table = table.Overlay(extra)
	}

	if showISA {
		_, err = io.WriteString(cmd.OutOrStdout(), table.String())
		return
	}

	var input io.Reader = os.Stdin
	name := "-"
	if len(args) == 1 && args[0] != "-" {
		name = args[0]
		inf, err := os.Open(name)
		if err != nil {
			return errors.Wrap(err, "open")
		}
		defer inf.Close()
		input = inf
	}

	assembler := &asm.Assembler{
		Verbose: verbose,
		ISA:     table,
		Jobs:    jobs,
	}

	prog, err := assembler.Parse(input)
	if err != nil {
		return errors.WithMessage(err, name)
	}

	lines := prog.Binary()
	if showList {
		lines = prog.Listing()
	}

	var out io.Writer = cmd.OutOrStdout()
	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			return errors.Wrap(err, "create")
		}
		defer ouf.Close()
		out = ouf
	}

	return listing.Write(out, lines)
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		log.Printf("%v: %v", rootCmd.Name(), err)
		os.Exit(asm.ExitCode(err))
	}
}
