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

// The bfi command line tool runs Brainfuck programs with the package
// github.com/db47h/bfi/vm.
//
// Usage:
//
//	bfi [<flags>] [<source>]
//
//	--with=FILE ...
//		  Add FILE to the input list (can be specified multiple times)
//	--image=FILE
//		  Run the compiled program image FILE instead of a source file
//	-o, --output=FILE
//		  Save the compiled program to image FILE and exit
//	--noresolve
//		  Do not precompute loop jump targets
//	--noraw
//		  Disable raw terminal IO
//	--disasm
//		  Print the compiled program and exit
//	--dump
//		  Dump the VM state upon exit
//	--debug
//		  Enable debug diagnostics
//	--trace
//		  Log every executed instruction to stderr
//	--trace-file=FILE
//		  Write JSON trace records to FILE
//
// Invoked without a source file or image, bfi prints its usage and exits. The
// exit status is 1 if the program fails, 0 otherwise.
//
// --with: input files are fed to the program in order of appearance on the
// command line, before the standard input. Reading past the end of the input
// is an error.
//
// --noraw: upon startup, bfi switches the terminal to unbuffered input so
// that the program gets each key as soon as it is pressed. Press CTRL-D to
// signal the end of the input. This flag disables this behavior.
//
// --noresolve: loops are matched at runtime by scanning the program. This is
// slower, but the program behaves the same.
//
// --output, --image: compiled programs, with their loop jump targets, can be
// saved to a program image and run later without going through compilation
// again:
//
//	bfi -o hello.bfi hello.b
//	bfi --image hello.bfi
//
// --debug: will print a full stacktrace should the VM fail.
package main
