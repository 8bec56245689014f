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
	"os"

	"github.com/db47h/hackasm/internal/hio"
	"github.com/db47h/hackasm/vm"
	"github.com/k0kubun/pp/v3"
)

// debugDump pretty prints v to stderr when debug diagnostics are enabled.
func debugDump(label string, v interface{}) {
	if !debug {
		return
	}
	p := pp.New()
	p.SetOutput(os.Stderr)
	p.SetColoringEnabled(isTerminal(os.Stderr))
	fmt.Fprintf(os.Stderr, "%s: ", label)
	p.Println(v)
}

// dumpRAM writes the contents of RAM[from..to] to w, one address per line.
func dumpRAM(w io.Writer, i *vm.Instance, from, to int) error {
	ew := hio.NewErrWriter(w)
	for addr := from; addr <= to && ew.Err == nil; addr++ {
		fmt.Fprintf(ew, "RAM[%d] = %d\n", addr, i.Peek(addr))
	}
	return ew.Err
}

// machineState is what gets dumped of a vm.Instance in debug mode. RAM is left
// out.
type machineState struct {
	PC           int
	A, D         vm.Cell
	Instructions int64
}

func stateOf(i *vm.Instance) machineState {
	return machineState{i.PC, i.A, i.D, i.InstructionCount()}
}
