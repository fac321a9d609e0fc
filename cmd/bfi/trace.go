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
	"log/slog"
	"os"

	"github.com/db47h/bfi/vm"
	"github.com/pkg/errors"
	slogmulti "github.com/samber/slog-multi"
)

// newTracer returns a trace handler logging every executed instruction at
// debug level, to stderr if toStderr is set and as JSON records to fileName if
// not empty. The returned function closes the trace file.
func newTracer(toStderr bool, fileName string) (vm.TraceHandler, func() error, error) {
	var handlers []slog.Handler
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	closeFn := func() error { return nil }

	if toStderr {
		handlers = append(handlers, slog.NewTextHandler(os.Stderr, opts))
	}
	if fileName != "" {
		f, err := os.Create(fileName)
		if err != nil {
			return nil, nil, errors.Wrap(err, "trace file")
		}
		handlers = append(handlers, slog.NewJSONHandler(f, opts))
		closeFn = f.Close
	}

	logger := slog.New(slogmulti.Fanout(handlers...))
	return func(i *vm.Instance, ins vm.Instruction) error {
		attrs := []any{
			"pc", i.PC,
			"ins", ins.String(),
			"cursor", i.Cursor(),
		}
		if c := i.Cursor(); c < len(i.Tape()) {
			attrs = append(attrs, "cell", i.Tape()[c])
		}
		logger.Debug("step", attrs...)
		return nil
	}, closeFn, nil
}
