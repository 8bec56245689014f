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
	"path/filepath"
	"strconv"
	"strings"

	"github.com/db47h/hackasm/asm"
	"github.com/db47h/hackasm/vm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var (
		steps int64
		dump  string
		pokes []string
	)
	cmd := &cobra.Command{
		Use:   "run file",
		Short: "Run a Hack program on the emulator",
		Long: `Run executes a Hack program on an emulated Hack CPU. Files with a .hack
extension are loaded as machine code, anything else is assembled first.

The program runs until it leaves ROM, enters its final loop ("(END) @END 0;JMP"
or a jump to itself), or the step limit is reached. The contents of the RAM
range given with --dump are then printed.

RAM can be initialized with --poke, given as address=value, where address is a
number or a predefined symbol:

	hackasm run --poke R0=6 --poke R1=7 --dump R2 mult.asm`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseRange(dump)
			if err != nil {
				return err
			}
			opts := []vm.Option{vm.MaxSteps(steps)}
			for _, p := range pokes {
				addr, v, err := parsePoke(p)
				if err != nil {
					return err
				}
				opts = append(opts, vm.Poke(addr, v))
			}
			rom, err := loadProgram(args[0])
			if err != nil {
				return err
			}
			i, err := vm.New(rom, opts...)
			if err != nil {
				return err
			}
			err = i.Run()
			debugDump("machine state", stateOf(i))
			if err != nil {
				return err
			}
			return dumpRAM(cmd.OutOrStdout(), i, from, to)
		},
	}
	f := cmd.Flags()
	f.Int64Var(&steps, "steps", 10000000, "maximum number of instructions to execute (0 for no limit)")
	f.StringVar(&dump, "dump", "R0-R15", "RAM `range` to print after the run, as from-to or a single address")
	f.StringArrayVar(&pokes, "poke", nil, "set RAM `address=value` before the run (repeatable)")
	return cmd
}

func loadProgram(name string) (vm.Image, error) {
	if filepath.Ext(name) == ".hack" {
		return vm.Load(name)
	}
	p, _, err := assemble(name)
	if err != nil {
		return nil, err
	}
	return p.Words, nil
}

var predefined = asm.NewSymbolTable()

// parseAddr parses a RAM address given as a decimal number or a predefined
// symbol.
func parseAddr(s string) (int, error) {
	if sym, ok := predefined.Lookup(s); ok {
		return sym.Addr, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n >= vm.RAMSize {
		return 0, errors.Errorf("invalid RAM address %q", s)
	}
	return n, nil
}

func parseRange(s string) (from, to int, err error) {
	lo, hi, isRange := strings.Cut(s, "-")
	if from, err = parseAddr(lo); err != nil {
		return 0, 0, err
	}
	if !isRange {
		return from, from, nil
	}
	if to, err = parseAddr(hi); err != nil {
		return 0, 0, err
	}
	if to < from {
		return 0, 0, errors.Errorf("invalid RAM range %q", s)
	}
	return from, to, nil
}

func parsePoke(s string) (int, vm.Cell, error) {
	a, v, ok := strings.Cut(s, "=")
	if !ok {
		return 0, 0, errors.Errorf("invalid poke %q, expected address=value", s)
	}
	addr, err := parseAddr(a)
	if err != nil {
		return 0, 0, err
	}
	n, err := strconv.ParseInt(v, 10, 16)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid poke value %q", v)
	}
	return addr, vm.Cell(n), nil
}
