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
	"text/scanner"
	"unicode"

	"github.com/db47h/hackasm/vm"
)

// SymbolKind tells where a symbol comes from.
type SymbolKind int

// Symbol kinds.
const (
	Predefined SymbolKind = iota
	Label
	Variable
)

func (k SymbolKind) String() string {
	switch k {
	case Predefined:
		return "predefined"
	case Label:
		return "label"
	case Variable:
		return "variable"
	}
	return "unknown"
}

// Symbol is a name bound to an address.
type Symbol struct {
	Name string
	Addr int
	Kind SymbolKind
	Pos  scanner.Position // label definition or first use of a variable
}

// VarBase is the address of the first variable.
const VarBase = 16

var predefined = [...]Symbol{
	{Name: "SP", Addr: 0},
	{Name: "LCL", Addr: 1},
	{Name: "ARG", Addr: 2},
	{Name: "THIS", Addr: 3},
	{Name: "THAT", Addr: 4},
	{Name: "R0", Addr: 0},
	{Name: "R1", Addr: 1},
	{Name: "R2", Addr: 2},
	{Name: "R3", Addr: 3},
	{Name: "R4", Addr: 4},
	{Name: "R5", Addr: 5},
	{Name: "R6", Addr: 6},
	{Name: "R7", Addr: 7},
	{Name: "R8", Addr: 8},
	{Name: "R9", Addr: 9},
	{Name: "R10", Addr: 10},
	{Name: "R11", Addr: 11},
	{Name: "R12", Addr: 12},
	{Name: "R13", Addr: 13},
	{Name: "R14", Addr: 14},
	{Name: "R15", Addr: 15},
	{Name: "SCREEN", Addr: vm.ScreenAddr},
	{Name: "KBD", Addr: vm.KeyboardAddr},
}

// SymbolTable maps symbol names to addresses. A new table holds the predefined
// symbols only. Once bound, a name is never rebound.
type SymbolTable struct {
	syms    map[string]*Symbol
	order   []*Symbol
	nextVar int
}

// NewSymbolTable returns a table populated with the predefined symbols.
func NewSymbolTable() *SymbolTable {
	t := &SymbolTable{
		syms:    make(map[string]*Symbol, 2*len(predefined)),
		nextVar: VarBase,
	}
	for _, s := range predefined {
		t.bind(s)
	}
	return t
}

func (t *SymbolTable) bind(s Symbol) *Symbol {
	p := &s
	t.syms[s.Name] = p
	t.order = append(t.order, p)
	return p
}

// Lookup returns the symbol bound to name.
func (t *SymbolTable) Lookup(name string) (Symbol, bool) {
	s, ok := t.syms[name]
	if !ok {
		return Symbol{}, false
	}
	return *s, true
}

// Len returns the number of bound symbols, predefined ones included.
func (t *SymbolTable) Len() int { return len(t.order) }

// Symbols returns the symbols of the given kinds in binding order. With no kinds
// given, all symbols are returned.
func (t *SymbolTable) Symbols(kinds ...SymbolKind) []Symbol {
	var out []Symbol
	for _, s := range t.order {
		if len(kinds) == 0 || hasKind(kinds, s.Kind) {
			out = append(out, *s)
		}
	}
	return out
}

func hasKind(kinds []SymbolKind, k SymbolKind) bool {
	for _, v := range kinds {
		if v == k {
			return true
		}
	}
	return false
}

// defineLabel binds a label. If name is already bound, the existing symbol is
// returned and the table is left unchanged.
func (t *SymbolTable) defineLabel(name string, addr int, pos scanner.Position) (prev *Symbol, ok bool) {
	if s, found := t.syms[name]; found {
		return s, false
	}
	t.bind(Symbol{Name: name, Addr: addr, Kind: Label, Pos: pos})
	return nil, true
}

// resolve returns the address bound to name, allocating the next variable
// address if name is unbound. ok is false if the variable space is exhausted.
func (t *SymbolTable) resolve(name string, pos scanner.Position) (addr int, ok bool) {
	if s, found := t.syms[name]; found {
		return s.Addr, true
	}
	if t.nextVar > vm.MaxAddress {
		return 0, false
	}
	s := t.bind(Symbol{Name: name, Addr: t.nextVar, Kind: Variable, Pos: pos})
	t.nextVar++
	return s.Addr, true
}

// isSymbolName checks that s is made of letters, digits, '_', '.', '$' and ':'
// and does not start with a digit.
func isSymbolName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case unicode.IsLetter(r), r == '_', r == '.', r == '$', r == ':':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
