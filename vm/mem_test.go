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

package vm_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/db47h/bfi/asm"
	"github.com/db47h/bfi/vm"
)

func TestSaveLoad(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "hello.bfi")
	p := asm.Compile([]byte(helloWorld))
	if err := asm.ResolveJumps(p); err != nil {
		t.Fatalf("%+v", err)
	}
	if err := vm.Save(fileName, p); err != nil {
		t.Fatalf("%+v", err)
	}
	l, err := vm.Load(fileName)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	assertEqualI(t, "Load size", len(p), len(l))
	for k := range p {
		if p[k] != l[k] {
			t.Fatalf("instruction %d: expected %v, got %v", k, p[k], l[k])
		}
	}

	var out bytes.Buffer
	i, err := vm.New(l, vm.Output(&out))
	if err != nil {
		t.Fatal(err)
	}
	if err = i.Run(); err != nil {
		t.Fatalf("%+v", err)
	}
	assertEqual(t, "Load run", "Hello World!\n", out.String())
}

func TestLoad_errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := vm.Load(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error loading missing file")
	}

	bad := map[string][]byte{
		"truncated": {byte(vm.OpInc), 1, 0, 0xff, 0xff, 0xff},
		"opcode":    {42, 1, 0, 0xff, 0xff, 0xff, 0xff},
		"target":    {byte(vm.OpLoopStart), 0, 0, 7, 0, 0, 0},
		"count":     {byte(vm.OpDec), 0, 1, 0xff, 0xff, 0xff, 0xff},
	}
	for name, data := range bad {
		fileName := filepath.Join(dir, name)
		if err := os.WriteFile(fileName, data, 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := vm.Load(fileName); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoad_moveCount(t *testing.T) {
	// 16 bit counts are valid for moves only.
	fileName := filepath.Join(t.TempDir(), "moves")
	data := []byte{byte(vm.OpRight), 0, 1, 0xff, 0xff, 0xff, 0xff}
	if err := os.WriteFile(fileName, data, 0644); err != nil {
		t.Fatal(err)
	}
	p, err := vm.Load(fileName)
	if err != nil {
		t.Fatal(err)
	}
	if p[0].N != 256 {
		t.Errorf("expected count 256, got %d", p[0].N)
	}
}
