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
	"io"
	"strconv"

	"github.com/db47h/bfi/internal/ngi"
)

// TapeSize is the number of cells on the tape.
const TapeSize = 30000

// State is the run state of an Instance.
type State int

// Run states. Only Ready permits starting a run. Ended and Error are terminal
// until Reset is called.
const (
	Ready State = iota
	Running
	Ended
	Error
)

var states = [...]string{"ready", "running", "ended", "error"}

func (s State) String() string {
	if s >= 0 && int(s) < len(states) {
		return states[s]
	}
	return "state(" + strconv.Itoa(int(s)) + ")"
}

// Instance represents a VM instance.
type Instance struct {
	PC       int // Program Counter (aka. Instruction Pointer)
	prog     Program
	tape     []byte
	cursor   int
	state    State
	insCount int64
	input    io.ByteReader
	output   io.ByteWriter
	traceH   TraceHandler
}

// Option interface
type Option func(*Instance) error

// Input pushes the given Reader on top of the input stack.
func Input(r io.Reader) Option {
	return func(i *Instance) error { i.PushInput(r); return nil }
}

// Output configures the output Writer. Bytes are written one at a time, so
// w should be buffered if performance matters. Output is discarded if w is
// nil.
func Output(w io.Writer) Option {
	return func(i *Instance) error {
		i.output = newWriter(w)
		return nil
	}
}

// TraceHandler is the function prototype for trace handlers. It is called
// before the instruction ins at i.PC is executed. A non-nil error aborts
// execution and is returned by Step or Run.
type TraceHandler func(i *Instance, ins Instruction) error

// BindTraceHandler binds the provided trace handler to the VM. Only one trace
// handler can be bound at a time; a nil handler disables tracing.
func BindTraceHandler(handler TraceHandler) Option {
	return func(i *Instance) error {
		i.traceH = handler
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

// New creates a new Virtual Machine instance ready to run the program p. The
// program is used as is: loop instructions can be resolved or not. See the asm
// package for how to compile a program.
//
// Options will be set by calling SetOptions.
func New(p Program, opts ...Option) (*Instance, error) {
	i := &Instance{
		prog: p,
		tape: make([]byte, TapeSize),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Program returns the loaded program.
func (i *Instance) Program() Program {
	return i.prog
}

// Tape returns the tape. Note that value changes will be reflected in the
// instance's tape.
func (i *Instance) Tape() []byte {
	return i.tape
}

// Cursor returns the position of the tape cursor. After moving to the right
// past the end of the tape by more than one cell, it can be larger than the
// last valid cell index.
func (i *Instance) Cursor() int {
	return i.cursor
}

// State returns the run state of the VM.
func (i *Instance) State() State {
	return i.state
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Dump writes the VM state to the specified io.Writer: run state, program
// counter, tape cursor and the tape contents up to the last non-zero cell.
func (i *Instance) Dump(w io.Writer) error {
	ew := ngi.NewErrWriter(w)
	ew.WriteString("state: " + i.state.String())
	ew.WriteString("\npc: " + strconv.Itoa(i.PC) + "/" + strconv.Itoa(len(i.prog)))
	ew.WriteString("\ncursor: " + strconv.Itoa(i.cursor))
	ew.WriteString("\ntape:")
	end := len(i.tape)
	for end > 0 && i.tape[end-1] == 0 {
		end--
	}
	for _, c := range i.tape[:end] {
		ew.WriteByte(' ')
		ew.WriteString(strconv.Itoa(int(c)))
	}
	return ew.WriteByte('\n')
}
