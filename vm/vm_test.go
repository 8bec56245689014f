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

package vm_test

import (
	"strings"
	"testing"

	"github.com/db47h/hackasm/asm"
	"github.com/db47h/hackasm/vm"
	"github.com/pkg/errors"
)

const multS = `
	@R2
	M=0
(LOOP)
	@R1
	D=M
	@END
	D;JLE
	@R0
	D=M
	@R2
	M=D+M
	@R1
	M=M-1
	@LOOP
	0;JMP
(END)
	@END
	0;JMP
`

func setup(t *testing.T, code string, opts ...vm.Option) *vm.Instance {
	t.Helper()
	p, err := asm.Assemble(t.Name(), strings.NewReader(code))
	if err != nil {
		t.Fatal(err)
	}
	i, err := vm.New(p.Words, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return i
}

func run(t *testing.T, code string, opts ...vm.Option) *vm.Instance {
	t.Helper()
	i := setup(t, code, opts...)
	if err := i.Run(); err != nil {
		t.Fatalf("%+v", err)
	}
	return i
}

func TestRun_add(t *testing.T) {
	i := run(t, "@2\nD=A\n@3\nD=D+A\n@0\nM=D\n")
	if v := i.Peek(0); v != 5 {
		t.Errorf("expected RAM[0] = 5, got %d", v)
	}
	if i.PC != 6 {
		t.Errorf("expected PC = 6, got %d", i.PC)
	}
	if n := i.InstructionCount(); n != 6 {
		t.Errorf("expected 6 instructions, got %d", n)
	}
}

func TestRun_mult(t *testing.T) {
	var tests = [...]struct{ x, y, exp vm.Cell }{
		{0, 0, 0},
		{1, 0, 0},
		{0, 3, 0},
		{6, 7, 42},
		{-3, 5, -15},
		{181, 181, 32761},
	}
	for _, test := range tests {
		i := run(t, multS, vm.Poke(0, test.x), vm.Poke(1, test.y), vm.Poke(2, -1))
		if v := i.Peek(2); v != test.exp {
			t.Errorf("%d*%d: expected %d, got %d", test.x, test.y, test.exp, v)
		}
		if i.PC != 15 {
			t.Errorf("%d*%d: expected to halt at PC 15, got %d", test.x, test.y, i.PC)
		}
	}
}

func TestRun_alu(t *testing.T) {
	var tests = [...]struct {
		comp string
		exp  vm.Cell
	}{
		{"0", 0}, {"1", 1}, {"-1", -1},
		{"D", 17}, {"A", 5}, {"!D", -18}, {"!A", -6}, {"-D", -17}, {"-A", -5},
		{"D+1", 18}, {"A+1", 6}, {"D-1", 16}, {"A-1", 4},
		{"D+A", 22}, {"D-A", 12}, {"A-D", -12}, {"D&A", 1}, {"D|A", 21},
		{"M", 9}, {"!M", -10}, {"-M", -9}, {"M+1", 10}, {"M-1", 8},
		{"D+M", 26}, {"D-M", 8}, {"M-D", -8}, {"D&M", 1}, {"D|M", 25},
	}
	for _, test := range tests {
		code := "@17\nD=A\n@5\nD=" + test.comp + "\n@0\nM=D\n"
		i := run(t, code, vm.Poke(5, 9))
		if v := i.Peek(0); v != test.exp {
			t.Errorf("%s: expected %d, got %d", test.comp, test.exp, v)
		}
	}

	// 16 bits two's complement wrap around
	i := run(t, "@32767\nD=A\nD=D+1\n@0\nM=D\n")
	if v := i.Peek(0); v != -32768 {
		t.Errorf("expected -32768, got %d", v)
	}
}

func TestRun_dest(t *testing.T) {
	i := run(t, "@7\nAMD=A+1\n")
	if i.A != 8 || i.D != 8 || i.Peek(7) != 8 {
		t.Errorf("expected A = D = RAM[7] = 8, got A=%d D=%d RAM[7]=%d", i.A, i.D, i.Peek(7))
	}
	// M is written to the address held by A before the instruction.
	if i.Peek(8) != 0 {
		t.Errorf("RAM[8] overwritten: %d", i.Peek(8))
	}
}

func TestRun_halt(t *testing.T) {
	for _, code := range []string{
		"(END)\n@END\n0;JMP\n",
		"@1\n@1\n0;JMP\n",
		"@3\nD=A\n@2\n0;JMP\n",
	} {
		i := run(t, code, vm.MaxSteps(1000))
		if i.InstructionCount() >= 1000 {
			t.Errorf("%q: halt not detected", code)
		}
	}

	// a conditional jump to self is not a halt
	i := setup(t, "(L)\n@L\nD;JEQ\n", vm.MaxSteps(100))
	err := i.Run()
	if errors.Cause(err) != vm.ErrStepLimit {
		t.Fatalf("expected step limit error, got %v", err)
	}
	if n := i.InstructionCount(); n != 100 {
		t.Errorf("expected 100 instructions, got %d", n)
	}
}

func TestRun_errors(t *testing.T) {
	for _, code := range []string{
		"@KBD\nM=1\n",
		"@32767\nD=M\n",
		"@1\nA=-A\nM=0\n",
	} {
		i := setup(t, code)
		if err := i.Run(); err == nil {
			t.Errorf("%q: expected error", code)
		}
	}

	i, err := vm.New(vm.Image{0x8000})
	if err != nil {
		t.Fatal(err)
	}
	if err = i.Run(); err == nil || i.PC != 0 {
		t.Errorf("illegal instruction: got error %v at PC %d", err, i.PC)
	}
}

func TestOptions(t *testing.T) {
	if _, err := vm.New(nil, vm.Poke(vm.KeyboardAddr, 1)); err == nil {
		t.Error("Poke at KBD accepted")
	}
	if _, err := vm.New(nil, vm.Poke(-1, 1)); err == nil {
		t.Error("Poke at -1 accepted")
	}
	if _, err := vm.New(make(vm.Image, vm.ROMSize+1)); err == nil {
		t.Error("oversized ROM accepted")
	}

	keys := []vm.Cell{'h', 'i'}
	kbd := func() vm.Cell {
		k := keys[0]
		keys = keys[1:]
		return k
	}
	i := run(t, "@KBD\nD=M\n@0\nM=D\n@KBD\nD=M\n@1\nM=D\n", vm.Keyboard(kbd))
	if i.Peek(0) != 'h' || i.Peek(1) != 'i' {
		t.Errorf("bad keyboard input: %d %d", i.Peek(0), i.Peek(1))
	}
	if i.Peek(-1) != 0 || i.Peek(vm.RAMSize) != 0 {
		t.Error("Peek out of RAM must return 0")
	}
}
