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


// The hackasm command line tool is a showcase for the packages
// github.com/db47h/hackasm/asm and github.com/db47h/hackasm/vm.
//
// Usage:
//
//	hackasm asm [-o file] [--lenient] [--listing] file.asm
//	hackasm disasm [--base address] file.hack
//	hackasm symbols [--all] file.asm
//	hackasm run [--steps n] [--dump range] [--poke address=value]... file
//
// Global flags:
//
//	--debug
//		  print a full stack trace on errors, and dump assembled symbols or
//		  the final machine state to stderr
//	-v level
//		  log verbosity; 1 for assembly pass summaries, 2 for symbol bindings
//	--logtostderr
//		  log to stderr instead of files
//
// asm: assembles file.asm into file.hack. Nothing is written if assembly fails.
// Errors are reported as file:line:column: kind: message, up to 10 of them.
// With --lenient, instructions with an unknown comp, dest or jump mnemonic are
// dropped with a warning. --listing writes the address, encoding and source
// line of each instruction to file.lst.
//
// run: loads file.hack, or assembles any other file, and runs it until it
// reaches its final loop. Then prints the RAM range given with --dump (R0-R15
// by default). For example, with a program computing R2 = R0*R1:
//
//	$ hackasm run --poke R0=6 --poke R1=7 --dump R2 mult.asm
//	RAM[2] = 42
package main
