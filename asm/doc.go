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

// Package asm provides utility functions to assemble and disassemble Hack
// machine code.
//
// Assembly runs in four stages over the whole program: normalization (comments
// and white space removal), label binding, variable binding and encoding. Each
// call to Assemble uses its own symbol table, so concurrent calls are safe.
//
// Instructions:
//
// There is one instruction per line. White space is not significant anywhere,
// so "D = D + A" is the same as "D=D+A".
//
//	@value          address instruction: load value into A. value is either a
//	                decimal literal in [0, 32767] or a symbol.
//	dest=comp;jump  compute instruction. dest and jump are optional, comp is
//	                mandatory.
//	(NAME)          label: binds NAME to the address of the next instruction.
//	                Labels do not occupy an address.
//
// comp is one of
//
//	0  1  -1  D  A  !D  !A  -D  -A  D+1  A+1  D-1  A-1  D+A  D-A  A-D  D&A  D|A
//	M  !M  -M  M+1  M-1  D+M  D-M  M-D  D&M  D|M
//
// dest is any combination of A, D and M, each given at most once, in any order
// (MD and DM are the same), or null. jump is one of JGT, JEQ, JGE, JLT, JNE,
// JLE, JMP or null.
//
// Comments:
//
// A comment starts with "//" and runs until the end of the line.
//
//	@i      // i is a variable
//	M=1     // i = 1
//
// Symbols:
//
// Symbol names are made of letters, digits, '_', '.', '$' and ':' and may not
// start with a digit. The following symbols are predefined:
//
//	SP      0       R0-R15  0-15
//	LCL     1       SCREEN  16384
//	ARG     2       KBD     24576
//	THIS    3
//	THAT    4
//
// A label may be used before its definition. A symbol that is neither
// predefined nor a label is a variable. Variables are allocated consecutive RAM
// addresses starting at 16, in order of first use.
//
// Redefining a label, or defining a label with the name of a predefined symbol,
// is an error.
//
// Errors:
//
// Assembly errors are reported as an ErrAsm, each entry giving the source
// position of the offending line and the kind of error. By default any error
// aborts the assembly. With the Lenient option, instructions with an unknown
// mnemonic are dropped from the output instead and reported as warnings.
package asm
