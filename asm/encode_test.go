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

package asm_test

import (
	"strconv"
	"testing"

	"github.com/db47h/hackasm/asm"
)

func TestEncode_address(t *testing.T) {
	for n := 0; n <= 32767; n++ {
		w, err := asm.Encode("@" + strconv.Itoa(n))
		if err != nil {
			t.Fatalf("@%d: %v", n, err)
		}
		s := w.String()
		if len(s) != 16 || s[0] != '0' {
			t.Fatalf("@%d: bad encoding %s", n, s)
		}
		v, err := strconv.ParseUint(s[1:], 2, 16)
		if err != nil || int(v) != n {
			t.Fatalf("@%d: decoded as %d (%v)", n, v, err)
		}
	}

	for _, s := range []string{"@32768", "@65536", "@100000000000000000000"} {
		_, err := asm.Encode(s)
		if e, ok := err.(*asm.Error); !ok || e.Kind != asm.ErrRange {
			t.Errorf("%s: expected range error, got %v", s, err)
		}
	}
	if _, err := asm.Encode("@foo"); err == nil {
		t.Error("@foo: unresolved symbol not rejected")
	}
}

var compBits = [...]struct {
	comp string
	bits string
}{
	{"0", "0101010"},
	{"1", "0111111"},
	{"-1", "0111010"},
	{"D", "0001100"},
	{"A", "0110000"},
	{"!D", "0001101"},
	{"!A", "0110001"},
	{"-D", "0001111"},
	{"-A", "0110011"},
	{"D+1", "0011111"},
	{"A+1", "0110111"},
	{"D-1", "0001110"},
	{"A-1", "0110010"},
	{"D+A", "0000010"},
	{"D-A", "0010011"},
	{"A-D", "0000111"},
	{"D&A", "0000000"},
	{"D|A", "0010101"},
	{"M", "1110000"},
	{"!M", "1110001"},
	{"-M", "1110011"},
	{"M+1", "1110111"},
	{"M-1", "1110010"},
	{"D+M", "1000010"},
	{"D-M", "1010011"},
	{"M-D", "1000111"},
	{"D&M", "1000000"},
	{"D|M", "1010101"},
}

func TestEncode_comp(t *testing.T) {
	for _, c := range compBits {
		w, err := asm.Encode(c.comp)
		if err != nil {
			t.Errorf("%s: %v", c.comp, err)
			continue
		}
		exp := "111" + c.bits + "000000"
		if w.String() != exp {
			t.Errorf("%s: expected %s, got %s", c.comp, exp, w)
		}
	}

	for _, s := range []string{"A+D", "M+D", "D+D", "2", "-2", "!1", "D*A", "m", "d+a", "D=M=A"} {
		_, err := asm.Encode(s)
		if e, ok := err.(*asm.Error); !ok || e.Kind != asm.ErrUnknownMnemonic {
			t.Errorf("%s: expected unknown mnemonic error, got %v", s, err)
		}
	}
}

func TestEncode_dest(t *testing.T) {
	var tests = [...]struct {
		dests []string
		bits  string
	}{
		{[]string{"null"}, "000"},
		{[]string{"M"}, "001"},
		{[]string{"D"}, "010"},
		{[]string{"MD", "DM"}, "011"},
		{[]string{"A"}, "100"},
		{[]string{"AM", "MA"}, "101"},
		{[]string{"AD", "DA"}, "110"},
		{[]string{"AMD", "ADM", "MAD", "MDA", "DAM", "DMA"}, "111"},
	}
	for _, test := range tests {
		for _, d := range test.dests {
			w, err := asm.Encode(d + "=0")
			if err != nil {
				t.Errorf("%s: %v", d, err)
				continue
			}
			exp := "1110101010" + test.bits + "000"
			if w.String() != exp {
				t.Errorf("%s: expected %s, got %s", d, exp, w)
			}
		}
	}
	for _, d := range []string{"MM", "AMDA", "X", "Null", "AMX"} {
		_, err := asm.Encode(d + "=0")
		if e, ok := err.(*asm.Error); !ok || e.Kind != asm.ErrUnknownMnemonic {
			t.Errorf("%s: expected unknown mnemonic error, got %v", d, err)
		}
	}
}

func TestEncode_jump(t *testing.T) {
	jumps := []string{"null", "JGT", "JEQ", "JGE", "JLT", "JNE", "JLE", "JMP"}
	for i, j := range jumps {
		w, err := asm.Encode("D;" + j)
		if err != nil {
			t.Errorf("%s: %v", j, err)
			continue
		}
		if int(w.Jump()) != i {
			t.Errorf("%s: expected %03b, got %s", j, i, w)
		}
	}
	if _, err := asm.Encode("D;jmp"); err == nil {
		t.Error("lower case jump accepted")
	}
}

func TestEncode_malformed(t *testing.T) {
	for _, s := range []string{"", "=D", "D=", ";JMP", "D;", "M=;JMP"} {
		_, err := asm.Encode(s)
		if e, ok := err.(*asm.Error); !ok || e.Kind != asm.ErrMalformed {
			t.Errorf("%q: expected malformed instruction error, got %v", s, err)
		}
	}
}

func TestEncodeAll(t *testing.T) {
	prog := asm.Normalize([]string{"@5", "D=Q", "0;JMP"})
	prog = append(prog, asm.Instruction{})
	res := asm.EncodeAll(prog)
	if len(res) != 4 {
		t.Fatalf("expected 4 results, got %d", len(res))
	}
	if res[0].Err != nil || res[0].Word != 5 {
		t.Errorf("bad result 0: %+v", res[0])
	}
	if res[1].Err == nil || res[1].Err.Pos.Line != 2 {
		t.Errorf("bad result 1: %+v", res[1])
	}
	if res[2].Err != nil || res[2].Word.String() != "1110101010000111" {
		t.Errorf("bad result 2: %+v", res[2])
	}
	if res[3].Err == nil || res[3].Err.Kind != asm.ErrMalformed {
		t.Errorf("bad result for empty instruction: %+v", res[3])
	}
}
