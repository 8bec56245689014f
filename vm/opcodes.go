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

import "strconv"

// Word is a 16 bits Hack instruction as stored in ROM.
type Word uint16

// Cell is the raw type stored in a RAM location or register.
type Cell int16

// Memory map.
const (
	ROMSize      = 32768
	MaxAddress   = 32767 // largest value an address instruction can load
	ScreenAddr   = 16384
	KeyboardAddr = 24576
	RAMSize      = KeyboardAddr + 1
)

// Instruction fields. A compute instruction is laid out as
//
//	111a cccc ccdd djjj
//
// where a selects M instead of A as the ALU's second operand.
const (
	CInstruction Word = 0xE000
	ABit         Word = 1 << 12
	CompShift         = 6
	CompMask     Word = 0x7F << CompShift
	DestShift         = 3
	DestA        Word = 1 << 5
	DestD        Word = 1 << 4
	DestM        Word = 1 << 3
	DestMask          = DestA | DestD | DestM
	JumpGT       Word = 1
	JumpEQ       Word = 1 << 1
	JumpLT       Word = 1 << 2
	JumpMask          = JumpGT | JumpEQ | JumpLT
)

// IsCompute returns true if w is a compute instruction (bit 15 set).
func (w Word) IsCompute() bool {
	return w&0x8000 != 0
}

// Comp returns the 7 bits comp field, a bit included.
func (w Word) Comp() Word { return (w & CompMask) >> CompShift }

// Dest returns the 3 bits dest field.
func (w Word) Dest() Word { return (w & DestMask) >> DestShift }

// Jump returns the 3 bits jump field.
func (w Word) Jump() Word { return w & JumpMask }

// String returns the 16 characters binary representation of w, most
// significant bit first.
func (w Word) String() string {
	var buf [16]byte
	s := strconv.AppendUint(buf[:0], uint64(w), 2)
	var out [16]byte
	n := copy(out[16-len(s):], s)
	for i := 0; i < 16-n; i++ {
		out[i] = '0'
	}
	return string(out[:])
}
