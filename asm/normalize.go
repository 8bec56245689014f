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
	"strings"
	"text/scanner"
	"unicode"
)

// Instruction is a source line stripped of comments and white space, along with
// its position in the source.
type Instruction struct {
	Text string
	Pos  scanner.Position
}

// NormalizeLine removes all white space from line, as well as the comment
// starting at the first "//".
//
// Comment detection runs on the white space free text, so that "/ /" also
// starts a comment. This keeps NormalizeLine idempotent.
func NormalizeLine(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	slash := false
	for _, r := range line {
		if unicode.IsSpace(r) {
			continue
		}
		if r == '/' {
			if slash {
				s := b.String()
				return s[:len(s)-1]
			}
			slash = true
		} else {
			slash = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// column returns the 1-based byte column of the first non space character.
func column(line string) int {
	return strings.IndexFunc(line, func(r rune) bool { return !unicode.IsSpace(r) }) + 1
}

func normalize(name string, lines []string) []Instruction {
	prog := make([]Instruction, 0, len(lines))
	for n, l := range lines {
		t := NormalizeLine(l)
		if t == "" {
			continue
		}
		prog = append(prog, Instruction{
			Text: t,
			Pos:  scanner.Position{Filename: name, Line: n + 1, Column: column(l)},
		})
	}
	return prog
}

// Normalize strips comments and white space from each line and drops the lines
// left empty. Line numbers in the returned instructions are 1-based indices
// into lines.
func Normalize(lines []string) []Instruction {
	return normalize("", lines)
}
