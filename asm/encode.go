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
	"strconv"
	"strings"
	"text/scanner"

	"github.com/db47h/hackasm/vm"
)

// comp field values, a bit included. The bit patterns are fixed by the
// hardware and listed as is.
var compTable = map[string]vm.Word{
	"0":   0b0101010,
	"1":   0b0111111,
	"-1":  0b0111010,
	"D":   0b0001100,
	"A":   0b0110000,
	"!D":  0b0001101,
	"!A":  0b0110001,
	"-D":  0b0001111,
	"-A":  0b0110011,
	"D+1": 0b0011111,
	"A+1": 0b0110111,
	"D-1": 0b0001110,
	"A-1": 0b0110010,
	"D+A": 0b0000010,
	"D-A": 0b0010011,
	"A-D": 0b0000111,
	"D&A": 0b0000000,
	"D|A": 0b0010101,
	"M":   0b1110000,
	"!M":  0b1110001,
	"-M":  0b1110011,
	"M+1": 0b1110111,
	"M-1": 0b1110010,
	"D+M": 0b1000010,
	"D-M": 0b1010011,
	"M-D": 0b1000111,
	"D&M": 0b1000000,
	"D|M": 0b1010101,
}

var jumpTable = map[string]vm.Word{
	"null": 0,
	"JGT":  vm.JumpGT,
	"JEQ":  vm.JumpEQ,
	"JGE":  vm.JumpGT | vm.JumpEQ,
	"JLT":  vm.JumpLT,
	"JNE":  vm.JumpLT | vm.JumpGT,
	"JLE":  vm.JumpLT | vm.JumpEQ,
	"JMP":  vm.JumpMask,
}

// destBits returns the dest field for s. Each of A, D and M sets its own bit
// whatever the order they are given in, and may appear only once.
func destBits(s string) (vm.Word, bool) {
	if s == "null" {
		return 0, true
	}
	var d vm.Word
	for i := 0; i < len(s); i++ {
		var b vm.Word
		switch s[i] {
		case 'A':
			b = vm.DestA
		case 'D':
			b = vm.DestD
		case 'M':
			b = vm.DestM
		default:
			return 0, false
		}
		if d&b != 0 {
			return 0, false
		}
		d |= b
	}
	return d >> vm.DestShift, d != 0
}

// Result is the outcome of encoding a single instruction: either a Word, or an
// error.
type Result struct {
	Pos  scanner.Position
	Word vm.Word
	Err  *Error
}

func encodeAddress(op string) (vm.Word, ErrKind, string) {
	if !isDecimal(op) {
		return 0, ErrSymbol, "unresolved symbol " + strconv.Quote(op)
	}
	n, err := strconv.ParseUint(op, 10, 16)
	if err != nil || n > vm.MaxAddress {
		return 0, ErrRange, "address " + op + " out of range [0, 32767]"
	}
	return vm.Word(n), 0, ""
}

func encodeCompute(text string) (vm.Word, ErrKind, string) {
	dest, rest, hasDest := strings.Cut(text, "=")
	if !hasDest {
		dest, rest = "null", text
	}
	comp, jump, hasJump := strings.Cut(rest, ";")
	if !hasJump {
		jump = "null"
	}
	switch {
	case comp == "":
		return 0, ErrMalformed, "missing comp field in " + strconv.Quote(text)
	case dest == "":
		return 0, ErrMalformed, "empty dest field in " + strconv.Quote(text)
	case jump == "":
		return 0, ErrMalformed, "empty jump field in " + strconv.Quote(text)
	}
	c, ok := compTable[comp]
	if !ok {
		return 0, ErrUnknownMnemonic, "unknown comp " + strconv.Quote(comp)
	}
	d, ok := destBits(dest)
	if !ok {
		return 0, ErrUnknownMnemonic, "unknown dest " + strconv.Quote(dest)
	}
	j, ok := jumpTable[jump]
	if !ok {
		return 0, ErrUnknownMnemonic, "unknown jump " + strconv.Quote(jump)
	}
	return vm.CInstruction | c<<vm.CompShift | d<<vm.DestShift | j, 0, ""
}

func encode(ins Instruction) Result {
	var (
		w    vm.Word
		kind ErrKind
		msg  string
	)
	if ins.Text == "" {
		return Result{Pos: ins.Pos, Err: &Error{ins.Pos, ErrMalformed, "empty instruction"}}
	}
	if ins.Text[0] == '@' {
		w, kind, msg = encodeAddress(ins.Text[1:])
	} else {
		w, kind, msg = encodeCompute(ins.Text)
	}
	if kind != 0 {
		return Result{Pos: ins.Pos, Err: &Error{ins.Pos, kind, msg}}
	}
	return Result{Pos: ins.Pos, Word: w}
}

// Encode encodes a single resolved instruction: address operands must be
// decimal literals. The returned error, if not nil, is an *Error.
func Encode(text string) (vm.Word, error) {
	r := encode(Instruction{Text: text})
	if r.Err != nil {
		return 0, r.Err
	}
	return r.Word, nil
}

// EncodeAll encodes each instruction of a resolved program. It returns one
// Result per instruction, in program order.
func EncodeAll(prog []Instruction) []Result {
	res := make([]Result, len(prog))
	for i, ins := range prog {
		res[i] = encode(ins)
	}
	return res
}
