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

import "strconv"

// Opcode identifies one of the eight instruction variants.
type Opcode byte

// Virtual Machine Opcodes.
const (
	OpInc Opcode = iota
	OpDec
	OpLeft
	OpRight
	OpOut
	OpIn
	OpLoopStart
	OpLoopEnd
)

var opcodes = [...]string{
	"+",
	"-",
	"<",
	">",
	".",
	",",
	"[",
	"]",
}

func (op Opcode) String() string {
	if int(op) < len(opcodes) {
		return opcodes[op]
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// NoTarget is the jump target of a loop instruction that has not been
// resolved yet.
const NoTarget = -1

// Instruction is a single compiled instruction.
//
// N holds the run length of folded instructions. Only its low 8 bits are
// meaningful for OpInc and OpDec. Target is only meaningful for OpLoopStart and
// OpLoopEnd: it is the index of the matching bracket in the program, or
// NoTarget.
type Instruction struct {
	Op     Opcode
	N      uint16
	Target int
}

// Inc returns an instruction that adds n to the current cell.
func Inc(n uint8) Instruction { return Instruction{OpInc, uint16(n), NoTarget} }

// Dec returns an instruction that subtracts n from the current cell.
func Dec(n uint8) Instruction { return Instruction{OpDec, uint16(n), NoTarget} }

// Left returns an instruction that moves the tape cursor n cells to the left.
func Left(n uint16) Instruction { return Instruction{OpLeft, n, NoTarget} }

// Right returns an instruction that moves the tape cursor n cells to the right.
func Right(n uint16) Instruction { return Instruction{OpRight, n, NoTarget} }

// Out returns an instruction that writes the current cell to the output.
func Out() Instruction { return Instruction{OpOut, 0, NoTarget} }

// In returns an instruction that reads one byte of input into the current cell.
func In() Instruction { return Instruction{OpIn, 0, NoTarget} }

// LoopStart returns an unresolved loop start instruction.
func LoopStart() Instruction { return Instruction{OpLoopStart, 0, NoTarget} }

// LoopEnd returns an unresolved loop end instruction.
func LoopEnd() Instruction { return Instruction{OpLoopEnd, 0, NoTarget} }

// Resolved returns true if ins is a loop instruction with a known jump target.
func (ins Instruction) Resolved() bool {
	return (ins.Op == OpLoopStart || ins.Op == OpLoopEnd) && ins.Target != NoTarget
}

func (ins Instruction) String() string {
	switch ins.Op {
	case OpInc, OpDec, OpLeft, OpRight:
		return ins.Op.String() + " " + strconv.Itoa(int(ins.N))
	case OpLoopStart, OpLoopEnd:
		if ins.Target != NoTarget {
			return ins.Op.String() + " " + strconv.Itoa(ins.Target)
		}
	}
	return ins.Op.String()
}

// Program is a compiled instruction sequence. Jump targets are indices into
// the sequence.
type Program []Instruction

// Clone returns a copy of p.
func (p Program) Clone() Program {
	if p == nil {
		return nil
	}
	c := make(Program, len(p))
	copy(c, p)
	return c
}
