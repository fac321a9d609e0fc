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
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/db47h/bfi/asm"
	"github.com/db47h/bfi/vm"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("bfi", "Brainfuck interpreter.")

	source    = app.Arg("source", "Program source file.").String()
	withFiles = app.Flag("with", "Add FILE to the input list (can be specified multiple times).").PlaceHolder("FILE").Strings()
	imageFile = app.Flag("image", "Run the compiled program image FILE instead of a source file.").PlaceHolder("FILE").String()
	outFile   = app.Flag("output", "Save the compiled program to image FILE and exit.").Short('o').PlaceHolder("FILE").String()
	noResolve = app.Flag("noresolve", "Do not precompute loop jump targets.").Bool()
	noRawIO   = app.Flag("noraw", "Disable raw terminal IO.").Bool()
	disasm    = app.Flag("disasm", "Print the compiled program and exit.").Bool()
	dump      = app.Flag("dump", "Dump the VM state upon exit.").Bool()
	debug     = app.Flag("debug", "Enable debug diagnostics.").Bool()
	trace     = app.Flag("trace", "Log every executed instruction to stderr.").Bool()
	traceFile = app.Flag("trace-file", "Write JSON trace records to FILE.").PlaceHolder("FILE").String()
)

// flushReader flushes w before blocking on a read from r, so that prompts
// written by the program show up before it waits for input.
type flushReader struct {
	r io.Reader
	w *bufio.Writer
}

func (f *flushReader) Read(p []byte) (int, error) {
	if err := f.w.Flush(); err != nil {
		return 0, err
	}
	return f.r.Read(p)
}

// rawReader handles CTRL-D when the terminal is in raw mode.
type rawReader struct {
	io.Reader
}

func (r rawReader) Read(p []byte) (int, error) {
	n, err := r.Reader.Read(p)
	for k := 0; k < n; k++ {
		if p[k] == 4 {
			if k == 0 {
				return 0, io.EOF
			}
			return k, nil
		}
	}
	return n, err
}

func setupIO() (raw bool, tearDown func()) {
	if *noRawIO {
		return false, nil
	}
	tearDown, err := setRawIO()
	if err != nil {
		return false, nil
	}
	return true, tearDown
}

func compile(fileName string, resolve bool) (vm.Program, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := asm.Assemble(fileName, bufio.NewReader(f))
	if err != nil {
		return nil, err
	}
	if resolve {
		if err = asm.ResolveJumps(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !*debug {
		fmt.Fprintf(os.Stderr, "\nAn error happened: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\nAn error happened: %+v\n", err)
	if i != nil {
		fmt.Fprintf(os.Stderr, "PC: %v/%v, State: %v, Cursor: %v\n", i.PC, len(i.Program()), i.State(), i.Cursor())
	}
	os.Exit(1)
}

func main() {
	var err error
	var i *vm.Instance

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		stdout.Flush()
		if i != nil && *dump {
			if e := dumpVM(i, os.Stderr); err == nil {
				err = e
			}
		}
		atExit(i, err)
	}()

	app.UsageWriter(os.Stdout)
	if _, err = app.Parse(os.Args[1:]); err != nil {
		return
	}

	if *source == "" && *imageFile == "" {
		app.Usage(nil)
		return
	}

	var p vm.Program
	if *imageFile != "" {
		p, err = vm.Load(*imageFile)
	} else {
		p, err = compile(*source, !*noResolve)
	}
	if err != nil {
		return
	}
	if *outFile != "" {
		err = vm.Save(*outFile, p)
		return
	}
	if *disasm {
		err = asm.DisassembleAll(p, stdout)
		return
	}

	var stdin io.Reader = os.Stdin
	// try to switch the terminal to raw mode.
	rawtty, ioTearDownFn := setupIO()
	if ioTearDownFn != nil {
		defer ioTearDownFn()
	}
	if rawtty {
		stdin = rawReader{stdin}
	}

	opts := []vm.Option{
		vm.Output(stdout),
		vm.Input(bufio.NewReader(&flushReader{stdin, stdout})),
	}

	// push -with files on the input stack in reverse order so that they are
	// read in order of appearance on the command line.
	for n := len(*withFiles) - 1; n >= 0; n-- {
		var f *os.File
		f, err = os.Open((*withFiles)[n])
		if err != nil {
			return
		}
		opts = append(opts, vm.Input(f))
	}

	if *trace || *traceFile != "" {
		var h vm.TraceHandler
		var closeTrace func() error
		h, closeTrace, err = newTracer(*trace, *traceFile)
		if err != nil {
			return
		}
		defer closeTrace()
		opts = append(opts, vm.BindTraceHandler(h))
	}

	i, err = vm.New(p, opts...)
	if err != nil {
		return
	}
	err = i.Run()
}
