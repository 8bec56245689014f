// This file is part of hackasm - https://github.com/db47h/hackasm
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/db47h/hackasm/asm"
	"github.com/db47h/hackasm/vm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newAsmCmd() *cobra.Command {
	var (
		output  string
		lenient bool
		listing bool
	)
	cmd := &cobra.Command{
		Use:   "asm file.asm",
		Short: "Assemble a Hack assembly program",
		Long: `Asm assembles file.asm into a .hack file with the same base name, one 16
digits binary word per line. Use -o to choose another output file, or -o - to
write to stdout. The output file is not created if assembly fails.

With --listing, asm writes an annotated listing instead: the address, binary
encoding and source line of each instruction. Its default output file name
ends with .lst.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []asm.Option
			if lenient {
				opts = append(opts, asm.Lenient())
			}
			return assembleFile(cmd, args[0], output, listing, opts...)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "", "write output to `file` (- for stdout)")
	f.BoolVar(&lenient, "lenient", false, "drop instructions with unknown mnemonics instead of failing")
	f.BoolVar(&listing, "listing", false, "write an annotated listing instead of machine code")
	return cmd
}

// outputName returns the name of the file generated from source file in.
func outputName(in, ext string) string {
	return strings.TrimSuffix(in, ".asm") + ext
}

// assemble reads and assembles source file name.
func assemble(name string, opts ...asm.Option) (*asm.Program, []string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	lines, err := asm.ReadLines(f)
	if err != nil {
		return nil, nil, errors.Wrap(err, name)
	}
	p, err := asm.AssembleLines(name, lines, opts...)
	if err != nil {
		return nil, nil, err
	}
	return p, lines, nil
}

func assembleFile(cmd *cobra.Command, in, out string, listing bool, opts ...asm.Option) error {
	p, lines, err := assemble(in, opts...)
	if err != nil {
		return err
	}
	for _, w := range p.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", w)
	}
	debugDump("symbols", p.Symbols.Symbols(asm.Label, asm.Variable))

	write := func(w io.Writer) error {
		if listing {
			return asm.WriteListing(w, p, lines)
		}
		return vm.WriteImage(w, p.Words)
	}
	switch {
	case out == "-":
		return write(cmd.OutOrStdout())
	case out == "" && listing:
		out = outputName(in, ".lst")
	case out == "":
		out = outputName(in, ".hack")
	}
	if !listing {
		return vm.Save(out, p.Words)
	}
	return createFile(out, write)
}

// createFile creates file name and fills it with write. The file is removed if
// any error occurs.
func createFile(name string, write func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	bw := bufio.NewWriter(f)
	err = write(bw)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(name)
		return errors.Wrapf(err, "write %s failed", name)
	}
	return nil
}
