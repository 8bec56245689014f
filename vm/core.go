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

package vm

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// ErrStepLimit is returned (wrapped) by Run when the step limit set with
// MaxSteps is reached. Use errors.Cause to check for it.
var ErrStepLimit = errors.New("step limit reached")

// alu computes the Hack ALU output for operands x and y given the six control
// bits zx nx zy ny f no (c1..c6, c1 being bit 5).
func alu(x, y Cell, c Word) Cell {
	if c&0x20 != 0 {
		x = 0
	}
	if c&0x10 != 0 {
		x = ^x
	}
	if c&0x08 != 0 {
		y = 0
	}
	if c&0x04 != 0 {
		y = ^y
	}
	var out Cell
	if c&0x02 != 0 {
		out = x + y
	} else {
		out = x & y
	}
	if c&0x01 != 0 {
		out = ^out
	}
	return out
}

func jumps(out Cell, j Word) bool {
	switch {
	case out < 0:
		return j&JumpLT != 0
	case out == 0:
		return j&JumpEQ != 0
	default:
		return j&JumpGT != 0
	}
}

func (i *Instance) load(addr Cell) (Cell, error) {
	if addr < 0 || int(addr) >= len(i.RAM) {
		return 0, errors.Errorf("pc=%d: read from invalid address %d", i.PC, addr)
	}
	if addr == KeyboardAddr && i.kbd != nil {
		return i.kbd(), nil
	}
	return i.RAM[addr], nil
}

func (i *Instance) store(addr, v Cell) error {
	if addr < 0 || int(addr) >= KeyboardAddr {
		return errors.Errorf("pc=%d: write to invalid address %d", i.PC, addr)
	}
	i.RAM[addr] = v
	return nil
}

// halts reports whether an unconditional jump to target from the current PC is
// the canonical end of program loop, either a jump to itself or
//
//	(END)
//	@END
//	0;JMP
func (i *Instance) halts(target int) bool {
	return target == i.PC || (target == i.PC-1 && i.ROM[target] == Word(target))
}

// Step executes the instruction at PC. It returns true if the program has
// entered its final loop.
func (i *Instance) Step() (halted bool, err error) {
	if i.PC < 0 || i.PC >= len(i.ROM) {
		return true, nil
	}
	w := i.ROM[i.PC]
	i.insCount++
	if !w.IsCompute() {
		i.A = Cell(w)
		i.PC++
		return false, nil
	}
	if w&CInstruction != CInstruction {
		return false, errors.Errorf("pc=%d: illegal instruction %s", i.PC, w)
	}
	a := i.A
	y := a
	if w&ABit != 0 {
		if y, err = i.load(a); err != nil {
			return false, err
		}
	}
	out := alu(i.D, y, w.Comp())
	if w&DestM != 0 {
		if err = i.store(a, out); err != nil {
			return false, err
		}
	}
	if w&DestA != 0 {
		i.A = out
	}
	if w&DestD != 0 {
		i.D = out
	}
	if !jumps(out, w.Jump()) {
		i.PC++
		return false, nil
	}
	target := int(uint16(a))
	if w.Jump() == JumpMask && w.Dest() == 0 && i.halts(target) {
		return true, nil
	}
	i.PC = target
	return false, nil
}

// Run starts execution of the program at the current PC.
//
// Run returns nil once PC moves past the end of ROM or the program enters its
// final loop (see Step). If an error occurs, the PC will point to the
// instruction that triggered the error.
func (i *Instance) Run() error {
	i.insCount = 0
	for {
		if i.maxSteps > 0 && i.insCount >= i.maxSteps {
			return errors.Wrapf(ErrStepLimit, "pc=%d after %d instructions", i.PC, i.insCount)
		}
		halted, err := i.Step()
		if err != nil {
			return err
		}
		if halted {
			glog.V(1).Infof("halted at pc=%d after %d instructions", i.PC, i.insCount)
			return nil
		}
	}
}
