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
	"fmt"
	"io"
	"strconv"

	"github.com/db47h/hackasm/asm"
	"github.com/db47h/hackasm/internal/hio"
	"github.com/spf13/cobra"
)

func newSymbolsCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "symbols file.asm",
		Short: "List the symbols of a Hack assembly program",
		Long: `Symbols assembles file.asm and lists its labels and variables with their
addresses, in binding order. With --all, predefined symbols are listed too.

When the output is a terminal, symbols are laid out in columns.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := assemble(args[0])
			if err != nil {
				return err
			}
			var syms []asm.Symbol
			if all {
				syms = p.Symbols.Symbols()
			} else {
				syms = p.Symbols.Symbols(asm.Label, asm.Variable)
			}
			out := cmd.OutOrStdout()
			if isTerminal(out) {
				return writeColumns(out, syms, terminalWidth(out))
			}
			return writeSymbols(out, syms)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include predefined symbols")
	return cmd
}

// writeSymbols writes one symbol per line: name, address and kind separated by
// tabs.
func writeSymbols(w io.Writer, syms []asm.Symbol) error {
	ew := hio.NewErrWriter(w)
	for _, s := range syms {
		fmt.Fprintf(ew, "%s\t%d\t%s\n", s.Name, s.Addr, s.Kind)
		if ew.Err != nil {
			break
		}
	}
	return ew.Err
}

// writeColumns lays out "name addr" cells in as many columns as fit in width,
// filling rows first.
func writeColumns(w io.Writer, syms []asm.Symbol, width int) error {
	if len(syms) == 0 {
		return nil
	}
	nameW, addrW := 0, 0
	for _, s := range syms {
		if l := len(s.Name); l > nameW {
			nameW = l
		}
		if l := len(strconv.Itoa(s.Addr)); l > addrW {
			addrW = l
		}
	}
	const gap = 3
	cellW := nameW + 1 + addrW
	cols := (width + gap) / (cellW + gap)
	if cols < 1 {
		cols = 1
	}
	ew := hio.NewErrWriter(w)
	for n, s := range syms {
		fmt.Fprintf(ew, "%-*s %*d", nameW, s.Name, addrW, s.Addr)
		if (n+1)%cols == 0 || n == len(syms)-1 {
			ew.Write([]byte{'\n'})
		} else {
			fmt.Fprintf(ew, "%*s", gap, "")
		}
		if ew.Err != nil {
			break
		}
	}
	return ew.Err
}
