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

import "github.com/pkg/errors"

// Errors returned by Step and Run. Errors returned by the VM are usually
// wrapped with the location where they occurred; use errors.Cause to get at the
// actual error value.
var (
	// ErrNotReady is returned by Run when the VM is not in the Ready state.
	// Call Reset to run the program again.
	ErrNotReady = errors.New("not ready (end of program or error encountered)")
	// ErrMissingLeftBracket is returned when a loop end has no matching loop
	// start.
	ErrMissingLeftBracket = errors.New("missing left bracket")
	// ErrMissingRightBracket is returned when a loop start has no matching
	// loop end.
	ErrMissingRightBracket = errors.New("missing right bracket")
	// ErrEndOfProgram is returned by Step when the last instruction has been
	// executed. Run treats it as a normal exit condition.
	ErrEndOfProgram = errors.New("last instruction reached")

	// ErrInputExhausted is returned when the program reads past the end of
	// its input.
	ErrInputExhausted = errors.New("input exhausted")
	// ErrCursorOutOfRange is returned when the program accesses a cell after
	// moving the tape cursor past the right end of the tape by more than one
	// cell.
	ErrCursorOutOfRange = errors.New("tape cursor out of range")
)
