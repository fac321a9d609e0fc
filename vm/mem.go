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

package vm

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
)

// recordSize is the size in bytes of an instruction in a program image: opcode,
// 16 bits run length and 32 bits jump target, little endian.
const recordSize = 7

// Load loads a compiled program image from file fileName.
func Load(fileName string) (Program, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "fstat failed")
	}
	sz := st.Size()
	if sz%recordSize != 0 {
		return nil, errors.Errorf("%v: bad image size %d", fileName, sz)
	}
	if sz/recordSize > math.MaxInt32 {
		return nil, errors.Errorf("%v: file too large", fileName)
	}
	p := make(Program, sz/recordSize)
	r := bufio.NewReader(f)
	var b [recordSize]byte
	for k := range p {
		if _, err = io.ReadFull(r, b[:]); err != nil {
			return nil, errors.Wrap(err, "instruction read failed")
		}
		ins := Instruction{
			Op:     Opcode(b[0]),
			N:      binary.LittleEndian.Uint16(b[1:]),
			Target: int(int32(binary.LittleEndian.Uint32(b[3:]))),
		}
		if int(ins.Op) >= len(opcodes) {
			return nil, errors.Errorf("invalid opcode %d at position %d", ins.Op, k)
		}
		if (ins.Op == OpInc || ins.Op == OpDec) && ins.N > math.MaxUint8 {
			return nil, errors.Errorf("invalid count %d at position %d", ins.N, k)
		}
		if ins.Target < NoTarget || ins.Target >= len(p) {
			return nil, errors.Errorf("invalid jump target %d at position %d", ins.Target, k)
		}
		p[k] = ins
	}
	return p, nil
}

// Save saves a compiled program to an image file. Jump targets are saved as
// well, so a program that went through jump resolution does not need to be
// resolved again after loading.
func Save(fileName string, p Program) (err error) {
	if len(p) > math.MaxInt32 {
		return errors.Errorf("program too large: %d instructions", len(p))
	}
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	w := bufio.NewWriter(f)
	defer func() {
		if e := w.Flush(); err == nil && e != nil {
			err = errors.Wrap(e, "flush failed")
		}
		f.Close()
		// delete file on error
		if err != nil {
			os.Remove(fileName)
		}
	}()
	var b [recordSize]byte
	for _, ins := range p {
		b[0] = byte(ins.Op)
		binary.LittleEndian.PutUint16(b[1:], ins.N)
		binary.LittleEndian.PutUint32(b[3:], uint32(int32(ins.Target)))
		if _, err = w.Write(b[:]); err != nil {
			return errors.Wrap(err, "write failed")
		}
	}
	return nil
}
