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
	"fmt"
	"strings"
	"text/scanner"
)

// ErrKind classifies assembly errors.
type ErrKind int

// Error kinds.
const (
	ErrMalformed       ErrKind = iota + 1 // instruction with no valid shape, e.g. missing comp
	ErrUnknownMnemonic                    // comp, dest or jump not in the instruction tables
	ErrRedefinition                       // label bound twice, or bound over a predefined symbol
	ErrRange                              // value or address out of the 15 bits range
	ErrSymbol                             // invalid symbol name
)

var kindNames = [...]string{
	ErrMalformed:       "malformed instruction",
	ErrUnknownMnemonic: "unknown mnemonic",
	ErrRedefinition:    "symbol redefinition",
	ErrRange:           "out of range",
	ErrSymbol:          "invalid symbol",
}

func (k ErrKind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrKind(%d)", int(k))
}

// Error is a single assembly error.
type Error struct {
	Pos  scanner.Position
	Kind ErrKind
	Msg  string
}

func (e *Error) Error() string {
	if !e.Pos.IsValid() {
		return e.Kind.String() + ": " + e.Msg
	}
	return e.Pos.String() + ": " + e.Kind.String() + ": " + e.Msg
}

// maxErrors is the maximum number of entries in an ErrAsm.
const maxErrors = 10

// ErrAsm is the error type returned by Assemble. It holds up to 10 errors
// in source order.
type ErrAsm []*Error

func (e ErrAsm) Error() string {
	s := make([]string, len(e))
	for i, err := range e {
		s[i] = err.Error()
	}
	return strings.Join(s, "\n")
}

// add appends err to the list. It returns false once the list is full.
func (e *ErrAsm) add(err *Error) bool {
	if len(*e) >= maxErrors {
		return false
	}
	*e = append(*e, err)
	return len(*e) < maxErrors
}

func newError(pos scanner.Position, kind ErrKind, format string, args ...interface{}) *Error {
	return &Error{pos, kind, fmt.Sprintf(format, args...)}
}
