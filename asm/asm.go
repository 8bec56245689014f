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
	"bufio"
	"fmt"
	"io"
	"text/scanner"

	"github.com/db47h/hackasm/internal/hio"
	"github.com/db47h/hackasm/vm"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Program is the result of a successful assembly.
type Program struct {
	Words    vm.Image           // encoded instructions
	Source   []scanner.Position // source position of each word
	Symbols  *SymbolTable       // symbols bound during assembly
	Warnings ErrAsm             // instructions dropped in lenient mode
}

type config struct {
	lenient bool
}

// Option configures an assembly run.
type Option func(*config)

// Lenient makes the assembler drop instructions with an unknown comp, dest or
// jump mnemonic instead of failing. Each dropped instruction is recorded in
// Program.Warnings. Note that the addresses of all following instructions
// shift down by one, while labels keep the address they were bound to before
// the instruction was dropped.
func Lenient() Option {
	return func(c *config) { c.lenient = true }
}

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting program and error if any.
//
// The name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, is either an I/O error or an ErrAsm value
// that will contain up to 10 entries. No partial program is returned on error.
func Assemble(name string, r io.Reader, opts ...Option) (*Program, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	return AssembleLines(name, lines, opts...)
}

// ReadLines reads all lines from r.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), 1<<20)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "read failed")
	}
	return lines, nil
}

// AssembleLines is like Assemble, with the whole source given as a slice of
// lines.
func AssembleLines(name string, lines []string, opts ...Option) (*Program, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	prog := normalize(name, lines)
	r := newResolver()
	prog = r.bindLabels(prog)
	if len(r.errs) > 0 {
		return nil, r.errs
	}
	prog = r.bindVariables(prog)
	if len(r.errs) > 0 {
		return nil, r.errs
	}

	p := &Program{
		Words:   make(vm.Image, 0, len(prog)),
		Source:  make([]scanner.Position, 0, len(prog)),
		Symbols: r.syms,
	}
	var errs ErrAsm
	for _, res := range EncodeAll(prog) {
		if res.Err == nil {
			p.Words = append(p.Words, res.Word)
			p.Source = append(p.Source, res.Pos)
			continue
		}
		if cfg.lenient && res.Err.Kind == ErrUnknownMnemonic {
			glog.V(1).Infof("dropped instruction: %v", res.Err)
			p.Warnings = append(p.Warnings, res.Err)
			continue
		}
		if !errs.add(res.Err) {
			break
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}
	glog.V(1).Infof("%s: %d words, %d symbols", name, len(p.Words), p.Symbols.Len())
	return p, nil
}

// WriteListing writes an annotated listing of p to w: one line per word with
// its address, binary encoding and the source line it was assembled from.
// lines must be the source that p was assembled from.
func WriteListing(w io.Writer, p *Program, lines []string) error {
	ew := hio.NewErrWriter(w)
	for addr, word := range p.Words {
		var src string
		if l := p.Source[addr].Line; l > 0 && l <= len(lines) {
			src = lines[l-1]
		}
		fmt.Fprintf(ew, "%5d  %s  %s\n", addr, word, src)
		if ew.Err != nil {
			break
		}
	}
	return ew.Err
}
