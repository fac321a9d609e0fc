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

	"github.com/pkg/errors"
)

// Load replaces the VM's program with p and resets the VM.
func (i *Instance) Load(p Program) {
	i.prog = p
	i.Reset()
}

// Reset returns the VM to the Ready state. Unless the VM was already Ready,
// the tape is cleared and the tape cursor moved back to 0. The program counter
// is always reset to 0. The loaded program, including resolved jump targets, is
// left untouched, so that the same program can be run again.
func (i *Instance) Reset() {
	if i.state != Ready {
		for k := range i.tape {
			i.tape[k] = 0
		}
		i.cursor = 0
	}
	i.PC = 0
	i.state = Ready
}

// Step executes the instruction at i.PC and moves the PC to the next
// instruction. Stepping through an empty program is a no-op.
//
// ErrEndOfProgram is returned after the last instruction has been executed.
// Any other error leaves the PC pointing at the instruction that triggered it.
//
// A Ready VM is switched to Running. Stepping an Ended VM or a VM in the Error
// state fails with ErrNotReady. Unlike Run, Step never switches to Ended or
// Error.
func (i *Instance) Step() error {
	switch i.state {
	case Ready:
		i.state = Running
	case Running:
	default:
		return ErrNotReady
	}
	return i.step()
}

// Run starts execution of the VM until the end of the program or an error.
//
// Run requires the VM to be in the Ready state, otherwise it returns
// ErrNotReady. Reaching the end of the program switches the VM to the Ended
// state and Run returns nil. On any other error, the VM switches to the Error
// state and the PC will point to the instruction that triggered the error.
func (i *Instance) Run() (err error) {
	if i.state != Ready {
		return ErrNotReady
	}
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				err = errors.Wrapf(e, "Recovered error @pc=%d/%d, cursor %d", i.PC, len(i.prog), i.cursor)
			default:
				panic(e)
			}
		}
		if err != nil {
			i.state = Error
		}
	}()
	i.state = Running
	i.insCount = 0
	if len(i.prog) == 0 {
		i.state = Ended
		return nil
	}
	for {
		if err = i.step(); err != nil {
			break
		}
	}
	if errors.Cause(err) == ErrEndOfProgram {
		i.state = Ended
		return nil
	}
	return err
}

func (i *Instance) step() error {
	if len(i.prog) == 0 {
		return nil
	}
	if i.PC >= len(i.prog) {
		return ErrEndOfProgram
	}
	ins := i.prog[i.PC]
	if i.traceH != nil {
		if err := i.traceH(i, ins); err != nil {
			return err
		}
	}
	if ins.Op != OpLeft && ins.Op != OpRight && i.cursor >= len(i.tape) {
		return errors.Wrapf(ErrCursorOutOfRange, "@pc=%d, cursor %d", i.PC, i.cursor)
	}
	switch ins.Op {
	case OpInc:
		i.tape[i.cursor] += uint8(ins.N)
	case OpDec:
		i.tape[i.cursor] -= uint8(ins.N)
	case OpLeft:
		// no modulo here: moving left past 0 always lands on the last cell.
		i.cursor -= int(ins.N)
		if i.cursor < 0 || i.cursor >= len(i.tape) {
			i.cursor = len(i.tape) - 1
		}
	case OpRight:
		// wraps only when landing exactly one past the last cell.
		i.cursor += int(ins.N)
		if i.cursor == len(i.tape) {
			i.cursor = 0
		}
	case OpOut:
		if i.output != nil {
			if err := i.output.WriteByte(i.tape[i.cursor]); err != nil {
				return errors.Wrapf(err, "output failed @pc=%d", i.PC)
			}
		}
	case OpIn:
		if i.input == nil {
			return errors.Wrapf(ErrInputExhausted, "@pc=%d", i.PC)
		}
		c, err := i.input.ReadByte()
		if err != nil {
			if err == io.EOF {
				return errors.Wrapf(ErrInputExhausted, "@pc=%d", i.PC)
			}
			return errors.Wrapf(err, "input failed @pc=%d", i.PC)
		}
		i.tape[i.cursor] = c
	case OpLoopStart:
		if i.tape[i.cursor] == 0 {
			if err := i.jumpForward(ins.Target); err != nil {
				return err
			}
		}
	case OpLoopEnd:
		if i.tape[i.cursor] != 0 {
			if err := i.jumpBack(ins.Target); err != nil {
				return err
			}
		}
	default:
		return errors.Errorf("invalid opcode %d @pc=%d", ins.Op, i.PC)
	}
	i.insCount++
	i.PC++
	if i.PC >= len(i.prog) {
		return ErrEndOfProgram
	}
	return nil
}

// jumpForward moves the PC to the loop end matching the loop start at i.PC.
func (i *Instance) jumpForward(target int) error {
	if target != NoTarget {
		if target < 0 || target >= len(i.prog) {
			return errors.Wrapf(ErrMissingRightBracket, "jump target %d @pc=%d", target, i.PC)
		}
		i.PC = target
		return nil
	}
	depth := 0
	for pc := i.PC + 1; pc < len(i.prog); pc++ {
		switch i.prog[pc].Op {
		case OpLoopStart:
			depth++
		case OpLoopEnd:
			if depth == 0 {
				i.PC = pc
				return nil
			}
			depth--
		}
	}
	return errors.Wrapf(ErrMissingRightBracket, "@pc=%d", i.PC)
}

// jumpBack moves the PC to the loop start matching the loop end at i.PC.
func (i *Instance) jumpBack(target int) error {
	if target != NoTarget {
		switch {
		case target >= len(i.prog):
			return errors.Wrapf(ErrMissingRightBracket, "jump target %d @pc=%d", target, i.PC)
		case target < 0:
			return errors.Wrapf(ErrMissingLeftBracket, "jump target %d @pc=%d", target, i.PC)
		}
		i.PC = target
		return nil
	}
	depth := 0
	for pc := i.PC - 1; pc >= 0; pc-- {
		switch i.prog[pc].Op {
		case OpLoopEnd:
			depth++
		case OpLoopStart:
			if depth == 0 {
				i.PC = pc
				return nil
			}
			depth--
		}
	}
	return errors.Wrapf(ErrMissingLeftBracket, "@pc=%d", i.PC)
}
