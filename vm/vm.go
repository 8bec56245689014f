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

import (
	"github.com/pkg/errors"
)

// Instance represents a Hack CPU instance.
type Instance struct {
	PC       int    // Program Counter
	A        Cell   // Address register
	D        Cell   // Data register
	ROM      Image  // Program memory
	RAM      []Cell // Data memory, including the screen and keyboard maps
	maxSteps int64
	insCount int64
	kbd      func() Cell
}

// Option interface
type Option func(*Instance) error

// MaxSteps limits the number of instructions a single call to Run may execute.
// A value <= 0 disables the limit. The default is 10 million steps.
func MaxSteps(n int64) Option {
	return func(i *Instance) error {
		i.maxSteps = n
		return nil
	}
}

// Poke sets RAM[addr] to v before the program starts.
func Poke(addr int, v Cell) Option {
	return func(i *Instance) error {
		if addr < 0 || addr >= KeyboardAddr {
			return errors.Errorf("Poke: address %d out of range", addr)
		}
		i.RAM[addr] = v
		return nil
	}
}

// Keyboard sets the function called whenever the program reads the keyboard
// memory map. Without it, reads return RAM[KeyboardAddr], which is always 0.
func Keyboard(fn func() Cell) Option {
	return func(i *Instance) error {
		i.kbd = fn
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Hack CPU instance executing the given ROM image.
//
// Options will be set by calling SetOptions.
func New(rom Image, opts ...Option) (*Instance, error) {
	if len(rom) > ROMSize {
		return nil, errors.Errorf("ROM image of %d words exceeds %d words", len(rom), ROMSize)
	}
	i := &Instance{
		ROM:      rom,
		RAM:      make([]Cell, RAMSize),
		maxSteps: 10000000,
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Peek returns the value stored at RAM address addr. It returns 0 for
// addresses outside of RAM.
func (i *Instance) Peek(addr int) Cell {
	if addr < 0 || addr >= len(i.RAM) {
		return 0
	}
	return i.RAM[addr]
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}
