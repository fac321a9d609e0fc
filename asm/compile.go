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
	"github.com/db47h/bfi/vm"
	"github.com/pkg/errors"
)

var symbols = [256]struct {
	op    vm.Opcode
	valid bool
}{
	'+': {vm.OpInc, true},
	'-': {vm.OpDec, true},
	'<': {vm.OpLeft, true},
	'>': {vm.OpRight, true},
	'.': {vm.OpOut, true},
	',': {vm.OpIn, true},
	'[': {vm.OpLoopStart, true},
	']': {vm.OpLoopEnd, true},
}

// Compile compiles source code into a program. Bytes other than the eight
// instruction symbols are ignored.
//
// Runs of +, -, < and > are folded into a single instruction, ignored bytes in
// between included. Cell counts wrap at 256 and move counts wrap at 65536, so
// that the folded instruction has the exact same effect as the original run.
// Loop instructions are never folded and are left unresolved: Compile does not
// check that brackets match. See ResolveJumps.
func Compile(src []byte) vm.Program {
	var p vm.Program
	for _, c := range src {
		s := symbols[c]
		if !s.valid {
			continue
		}
		last := len(p) - 1
		switch s.op {
		case vm.OpInc, vm.OpDec:
			if last >= 0 && p[last].Op == s.op {
				p[last].N = uint16(uint8(p[last].N) + 1)
				continue
			}
			p = append(p, vm.Instruction{Op: s.op, N: 1, Target: vm.NoTarget})
		case vm.OpLeft, vm.OpRight:
			if last >= 0 && p[last].Op == s.op {
				p[last].N++
				continue
			}
			p = append(p, vm.Instruction{Op: s.op, N: 1, Target: vm.NoTarget})
		default:
			p = append(p, vm.Instruction{Op: s.op, Target: vm.NoTarget})
		}
	}
	return p
}

// ResolveJumps sets the jump target of every unresolved loop start in p and of
// its matching loop end. Targets already set are left untouched, so calling
// ResolveJumps on a resolved program is a no-op.
//
// An error with cause vm.ErrMissingRightBracket is returned if a loop start has
// no matching loop end. Loop ends without a matching loop start are left
// unresolved; the VM reports them with vm.ErrMissingLeftBracket when executed.
func ResolveJumps(p vm.Program) error {
	for pc := range p {
		if p[pc].Op != vm.OpLoopStart || p[pc].Target != vm.NoTarget {
			continue
		}
		end := matchForward(p, pc)
		if end < 0 {
			return errors.Wrapf(vm.ErrMissingRightBracket, "unmatched [ at %d", pc)
		}
		p[pc].Target = end
		p[end].Target = pc
	}
	return nil
}

// matchForward returns the index of the loop end matching the loop start at
// pc, or -1.
func matchForward(p vm.Program, pc int) int {
	depth := 0
	for k := pc + 1; k < len(p); k++ {
		switch p[k].Op {
		case vm.OpLoopStart:
			depth++
		case vm.OpLoopEnd:
			if depth == 0 {
				return k
			}
			depth--
		}
	}
	return -1
}
