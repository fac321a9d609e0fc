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

// Package asm provides utility functions to compile and disassemble programs
// for the bfi VM.
//
// Source code is made of the eight instruction symbols. Any other byte is a
// comment:
//
//	symbol	opcode		arg	description
//	------	------		---	------------------------------------------------
//	+	OpInc		n	add n to the current cell, modulo 256
//	-	OpDec		n	subtract n from the current cell, modulo 256
//	<	OpLeft		n	move the tape cursor n cells to the left
//	>	OpRight		n	move the tape cursor n cells to the right
//	.	OpOut			write the current cell to the output
//	,	OpIn			read one byte from the input into the current cell
//	[	OpLoopStart	target	if the current cell is 0, jump past the matching ]
//	]	OpLoopEnd	target	if the current cell is not 0, jump past the matching [
//
// The n argument is the number of consecutive symbols folded into the
// instruction. The target argument is only set once the program has gone
// through ResolveJumps.
//
// The disassembly of an instruction is its symbol followed by its argument, if
// any. Unresolved loop instructions are shown without argument:
//
//	     0	+ 6
//	     1	[ 6
//	     2	> 1
//	     3	+ 10
//	     4	< 1
//	     5	- 1
//	     6	] 1
package asm
