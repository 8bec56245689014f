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

package asm

import (
	"fmt"
	"io"
	"strconv"

	"github.com/db47h/hackasm/internal/hio"
	"github.com/db47h/hackasm/vm"
)

var (
	compNames [128]string
	destNames = [...]string{"", "M", "D", "MD", "A", "AM", "AD", "AMD"}
	jumpNames = [...]string{"", "JGT", "JEQ", "JGE", "JLT", "JNE", "JLE", "JMP"}
)

func init() {
	for k, v := range compTable {
		compNames[v] = k
	}
}

// DisassembleWord returns the assembly text for w. Words that are not valid
// instructions disassemble as "???".
func DisassembleWord(w vm.Word) string {
	if !w.IsCompute() {
		return "@" + strconv.Itoa(int(w))
	}
	comp := compNames[w.Comp()]
	if w&vm.CInstruction != vm.CInstruction || comp == "" {
		return "???"
	}
	s := comp
	if d := destNames[w.Dest()]; d != "" {
		s = d + "=" + s
	}
	if j := jumpNames[w.Jump()]; j != "" {
		s += ";" + j
	}
	return s
}

// Disassemble writes a disassembly of the word in the given image at position
// pc to the specified io.Writer and returns the position of the next
// instruction and any write error.
func Disassemble(img vm.Image, pc int, w io.Writer) (next int, err error) {
	ew := hio.NewErrWriter(w)
	io.WriteString(ew, DisassembleWord(img[pc]))
	return pc + 1, ew.Err
}

// DisassembleAll writes a disassembly of all words in the given image to
// the specified io.Writer. The base argument specifies the real address of the
// first word (img[0]). It will return any write error.
func DisassembleAll(img vm.Image, base int, w io.Writer) error {
	ew := hio.NewErrWriter(w)
	for pc := 0; pc < len(img); {
		fmt.Fprintf(ew, "% 10d\t", base+pc)
		pc, _ = Disassemble(img, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
