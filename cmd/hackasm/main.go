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
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

var debug bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hackasm",
		Short: "Hack assembler, disassembler and CPU emulator",
		Long: `Hackasm translates Hack assembly programs into Hack machine code, and back.
It can also run programs on an emulated Hack CPU.

Log verbosity is controlled with the -v flag: -v=1 logs a summary of each
assembly pass, -v=2 logs every symbol binding.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	pf.AddGoFlagSet(flag.CommandLine)

	root.AddCommand(newAsmCmd(), newDisasmCmd(), newSymbolsCmd(), newRunCmd())
	return root
}

func atExit(err error) {
	glog.Flush()
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	os.Exit(1)
}

func main() {
	var err error
	defer func() {
		atExit(err)
	}()

	err = newRootCmd().Execute()
}
