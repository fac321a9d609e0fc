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
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

const runMainEnv = "BFI_RUN_MAIN"

// TestMain turns the test binary into bfi itself when runMainEnv is set, so
// that tests can check the exit status and output of the command.
func TestMain(m *testing.M) {
	if os.Getenv(runMainEnv) == "1" {
		os.Args = append([]string{"bfi"}, os.Args[1:]...)
		main()
		os.Exit(0)
	}
	os.Exit(m.Run())
}

func bfi(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	cmd := exec.Command(os.Args[0], args...)
	cmd.Env = append(os.Environ(), runMainEnv+"=1")
	cmd.Stdin = strings.NewReader("")
	var o, e bytes.Buffer
	cmd.Stdout = &o
	cmd.Stderr = &e
	err := cmd.Run()
	if err != nil {
		ee, ok := err.(*exec.ExitError)
		if !ok {
			t.Fatal(err)
		}
		code = ee.ExitCode()
	}
	return o.String(), e.String(), code
}

func writeSource(t *testing.T, dir, name, src string) string {
	t.Helper()
	fileName := filepath.Join(dir, name)
	if err := os.WriteFile(fileName, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	return fileName
}

func TestUsage(t *testing.T) {
	out, _, code := bfi(t)
	if code != 0 {
		t.Errorf("expected exit status 0, got %d", code)
	}
	if !strings.Contains(out, "usage: bfi") {
		t.Errorf("expected usage, got %q", out)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "one.b", "++++++++[>++++++<-]>+.")
	in := writeSource(t, dir, "in.txt", "a")
	echo := writeSource(t, dir, "echo.b", ",.")
	img := filepath.Join(dir, "one.bfi")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"source", []string{"--noraw", src}, "1"},
		{"noresolve", []string{"--noraw", "--noresolve", src}, "1"},
		{"with", []string{"--noraw", "--with", in, echo}, "a"},
		{"save", []string{"-o", img, src}, ""},
		{"image", []string{"--noraw", "--image", img}, "1"},
	}
	for _, test := range tests {
		out, errOut, code := bfi(t, test.args...)
		if code != 0 {
			t.Errorf("%s: exit status %d: %s", test.name, code, errOut)
			continue
		}
		if out != test.want {
			t.Errorf("%s: expected %q, got %q", test.name, test.want, out)
		}
	}
}

func TestDisasm(t *testing.T) {
	src := writeSource(t, t.TempDir(), "loop.b", "+[-]")
	out, _, code := bfi(t, "--disasm", src)
	if code != 0 {
		t.Fatalf("exit status %d", code)
	}
	if strings.Count(out, "\n") != 4 || !strings.Contains(out, "\t+ 1\n") {
		t.Errorf("unexpected disassembly: %q", out)
	}
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"unbalanced", []string{"--noraw", writeSource(t, dir, "open.b", "+[")}},
		{"unbalanced_noresolve", []string{"--noraw", "--noresolve", writeSource(t, dir, "close.b", "+]")}},
		{"missing", []string{"--noraw", filepath.Join(dir, "missing.b")}},
		{"input", []string{"--noraw", writeSource(t, dir, "read.b", ",")}},
	}
	for _, test := range tests {
		_, errOut, code := bfi(t, test.args...)
		if code != 1 {
			t.Errorf("%s: expected exit status 1, got %d", test.name, code)
		}
		if !strings.Contains(errOut, "An error happened") {
			t.Errorf("%s: unexpected error output %q", test.name, errOut)
		}
	}
}
