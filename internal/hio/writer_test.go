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

package hio

import (
	"bytes"
	"io"
	"testing"

	"github.com/pkg/errors"
)

type failWriter int

func (f *failWriter) Write(p []byte) (int, error) {
	*f++
	return 0, io.ErrShortWrite
}

func TestErrWriter(t *testing.T) {
	var b bytes.Buffer
	w := NewErrWriter(&b)
	if err := w.WriteLine("0000000000000010"); err != nil {
		t.Fatal(err)
	}
	if b.String() != "0000000000000010\n" {
		t.Errorf("got %q", b.String())
	}
	if NewErrWriter(w) != w {
		t.Error("NewErrWriter did not reuse existing ErrWriter")
	}
}

func TestErrWriter_sticky(t *testing.T) {
	var f failWriter
	w := NewErrWriter(&f)
	w.WriteLine("a")
	w.WriteLine("b")
	if errors.Cause(w.Err) != io.ErrShortWrite {
		t.Errorf("expected io.ErrShortWrite, got %v", w.Err)
	}
	if f != 1 {
		t.Errorf("underlying writer called %d times after error, expected 1", f)
	}
}
