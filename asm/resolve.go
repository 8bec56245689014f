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

	"github.com/db47h/hackasm/vm"
	"github.com/golang/glog"
)

// resolver replaces symbolic operands with addresses. It owns the symbol table
// for the duration of a single assembly run.
type resolver struct {
	syms *SymbolTable
	errs ErrAsm
}

func newResolver() *resolver {
	return &resolver{syms: NewSymbolTable()}
}

// bindLabels removes label pseudo-instructions from prog and binds each label to
// the address of the next real instruction. prog is not modified.
func (r *resolver) bindLabels(prog []Instruction) []Instruction {
	out := make([]Instruction, 0, len(prog))
	labels := 0
	for _, ins := range prog {
		if ins.Text[0] != '(' {
			out = append(out, ins)
			continue
		}
		if !strings.HasSuffix(ins.Text, ")") {
			if !r.errs.add(newError(ins.Pos, ErrMalformed, "unterminated label %q", ins.Text)) {
				break
			}
			continue
		}
		name := ins.Text[1 : len(ins.Text)-1]
		if !isSymbolName(name) {
			if !r.errs.add(newError(ins.Pos, ErrSymbol, "invalid label name %q", name)) {
				break
			}
			continue
		}
		if prev, ok := r.syms.defineLabel(name, len(out), ins.Pos); !ok {
			var err *Error
			if prev.Kind == Predefined {
				err = newError(ins.Pos, ErrRedefinition, "label %s redefines predefined symbol", name)
			} else {
				err = newError(ins.Pos, ErrRedefinition, "label %s redefined, previous definition here: %s", name, prev.Pos)
			}
			if !r.errs.add(err) {
				break
			}
			continue
		}
		labels++
		glog.V(2).Infof("label %s = %d", name, len(out))
	}
	if len(out) > vm.ROMSize {
		r.errs.add(newError(out[vm.ROMSize].Pos, ErrRange, "program exceeds %d instructions", vm.ROMSize))
	}
	glog.V(1).Infof("label pass: %d instructions, %d labels", len(out), labels)
	return out
}

// bindVariables replaces every symbolic address operand in prog with its
// address, allocating addresses to new variables in order of first use.
func (r *resolver) bindVariables(prog []Instruction) []Instruction {
	out := make([]Instruction, len(prog))
	vars := 0
	for n, ins := range prog {
		out[n] = ins
		if ins.Text[0] != '@' {
			continue
		}
		op := ins.Text[1:]
		if isDecimal(op) {
			continue
		}
		if !isSymbolName(op) {
			if !r.errs.add(newError(ins.Pos, ErrSymbol, "invalid symbol %q", op)) {
				break
			}
			continue
		}
		before := r.syms.nextVar
		addr, ok := r.syms.resolve(op, ins.Pos)
		if !ok {
			r.errs.add(newError(ins.Pos, ErrRange, "no address left for variable %s", op))
			break
		}
		if r.syms.nextVar != before {
			vars++
			glog.V(2).Infof("variable %s = %d", op, addr)
		}
		out[n].Text = "@" + strconv.Itoa(addr)
	}
	glog.V(1).Infof("variable pass: %d variables", vars)
	return out
}
