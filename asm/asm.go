// This file is part of bfi - https://github.com/db47h/bfi
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
	"io"

	"github.com/db47h/bfi/internal/ngi"
	"github.com/db47h/bfi/vm"
	"github.com/pkg/errors"
)

// Assemble reads source code from the supplied io.Reader and returns the
// compiled program and error if any.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
func Assemble(name string, r io.Reader) (vm.Program, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: read failed", name)
	}
	return Compile(src), nil
}

// Disassemble writes a disassembly of the instruction in the given program at
// position pc to the specified io.Writer and returns the position of the next
// instruction and any write error.
func Disassemble(p vm.Program, pc int, w io.Writer) (next int, err error) {
	ew := ngi.NewErrWriter(w)
	if pc < 0 || pc >= len(p) {
		ew.WriteString("???")
		return pc + 1, ew.Err
	}
	ew.WriteString(p[pc].String())
	return pc + 1, ew.Err
}

// DisassembleAll writes a disassembly of all instructions in the given program
// to the specified io.Writer, one per line. It will return any write error.
func DisassembleAll(p vm.Program, w io.Writer) error {
	ew := ngi.NewErrWriter(w)
	for pc := 0; pc < len(p); {
		fmt.Fprintf(ew, "% 6d\t", pc)
		pc, _ = Disassemble(p, pc, ew)
		ew.WriteByte('\n')
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
