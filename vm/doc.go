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

// Package vm implements the Hack computer: its instruction word, the .hack text
// image format and a CPU emulator.
//
// The machine has a 32K words ROM holding the program and a separate data
// memory. RAM addresses 0 to 16383 are general purpose, 16384 to 24575 map the
// 512x256 monochrome screen and 24576 maps the keyboard. The CPU has two 16 bits
// registers, A and D, and a pseudo register M which denotes RAM[A].
//
// Instructions are 16 bits wide. An address instruction (bit 15 clear) loads its
// 15 low bits into A. A compute instruction has the form
//
//	111a cccc ccdd djjj
//
// The ALU computes a function of D and either A (a=0) or M (a=1) selected by the
// six c bits, stores the result in any combination of A, D and M (d bits) and
// jumps to the address in A depending on the sign of the result (j bits).
//
// The emulator is meant for testing assembled programs: it has no clock, no
// display and treats the usual infinite loop at the end of a program as a halt.
package vm
