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

package main

import (
	"io"

	"github.com/db47h/bfi/asm"
	"github.com/db47h/bfi/internal/ngi"
	"github.com/db47h/bfi/vm"
)

// dumpVM dumps the VM state and the instruction at the program counter to the
// specified io.Writer.
func dumpVM(i *vm.Instance, w io.Writer) error {
	ew := ngi.NewErrWriter(w)
	ew.WriteString("\n")
	if err := i.Dump(ew); err != nil {
		return err
	}
	if i.PC < len(i.Program()) {
		ew.WriteString("instruction: ")
		asm.Disassemble(i.Program(), i.PC, ew)
		ew.WriteByte('\n')
	}
	return ew.Err
}
