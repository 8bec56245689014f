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
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/db47h/hackasm/internal/hio"
	"github.com/pkg/errors"
)

// Image encapsulates a program's ROM.
type Image []Word

// ReadImage reads a .hack text image: one instruction per line, each exactly 16
// binary digits. Blank lines are ignored.
func ReadImage(r io.Reader) (Image, error) {
	var img Image
	s := bufio.NewScanner(r)
	for line := 1; s.Scan(); line++ {
		t := strings.TrimSpace(s.Text())
		if t == "" {
			continue
		}
		if len(t) != 16 {
			return nil, errors.Errorf("line %d: expected 16 binary digits, got %q", line, t)
		}
		var w Word
		for _, c := range []byte(t) {
			switch c {
			case '0', '1':
				w = w<<1 | Word(c-'0')
			default:
				return nil, errors.Errorf("line %d: invalid binary digit %q", line, c)
			}
		}
		if len(img) >= ROMSize {
			return nil, errors.Errorf("line %d: image larger than %d words", line, ROMSize)
		}
		img = append(img, w)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "read failed")
	}
	return img, nil
}

// Load loads an image from file fileName.
func Load(fileName string) (Image, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	img, err := ReadImage(f)
	if err != nil {
		return nil, errors.Wrap(err, fileName)
	}
	return img, nil
}

// WriteImage writes img to w in .hack text format, one word per line.
func WriteImage(w io.Writer, img Image) error {
	ew := hio.NewErrWriter(w)
	for _, v := range img {
		if ew.WriteLine(v.String()) != nil {
			break
		}
	}
	return ew.Err
}

// Save writes img to file fileName. The file is removed if writing fails.
func Save(fileName string, img Image) error {
	if len(img) > ROMSize {
		return errors.Errorf("Save %v: image larger than %d words", fileName, ROMSize)
	}
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	bw := bufio.NewWriter(f)
	err = WriteImage(bw, img)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(fileName)
		return errors.Wrap(err, "save failed")
	}
	return nil
}
