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

// Package vm implements a virtual machine for an eight instruction tape
// language, better known as Brainfuck.
//
// Programs run against a tape of TapeSize byte cells through a single tape
// cursor. The instructions are:
//
//	+	add N to the current cell (modulo 256)
//	-	subtract N from the current cell (modulo 256)
//	<	move the tape cursor N cells to the left
//	>	move the tape cursor N cells to the right
//	.	write the current cell to the output
//	,	read one byte of input into the current cell
//	[	if the current cell is 0, jump past the matching ]
//	]	if the current cell is not 0, jump back past the matching [
//
// Programs are compiled by the asm package, which folds runs of +, -, < and >
// into a single instruction and can optionally precompute the jump targets of
// loop instructions. Unresolved loops are matched at runtime by scanning the
// program, which is slower but behaves the same.
//
// The tape cursor does not wrap around like a ring buffer would: moving left
// past cell 0 always lands on the last cell, whatever the move count, while
// moving right only wraps to 0 when landing exactly one cell past the end.
// Moving further to the right leaves the cursor off the tape, and any
// subsequent cell access fails with ErrCursorOutOfRange. Real world programs
// rely on this behavior, so it is preserved as is.
//
// An Instance has an explicit run state: Ready, Running, Ended or Error. Run
// requires a Ready VM; call Reset to run the same program again.
//
// The VM is not safe for concurrent use and has no cancellation mechanism:
// a trace handler returning an error is the only way to stop a program that
// does not terminate.
package vm
