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

	"github.com/db47h/hackasm/asm"
	"github.com/db47h/hackasm/vm"
	"github.com/spf13/cobra"
)

func newDisasmCmd() *cobra.Command {
	var base int
	cmd := &cobra.Command{
		Use:   "disasm file.hack",
		Short: "Disassemble Hack machine code",
		Long: `Disasm prints the assembly text of each word in file.hack, preceded by its
address. Words that are not valid instructions are shown as ???.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := vm.Load(args[0])
			if err != nil {
				return err
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			if err = asm.DisassembleAll(img, base, w); err != nil {
				return err
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&base, "base", 0, "`address` of the first word")
	return cmd
}
