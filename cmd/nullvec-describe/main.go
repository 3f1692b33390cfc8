// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command nullvec-describe prints summary statistics of a column of values,
// some of which may be missing.
package main

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/docopt/docopt-go"
	nullvec "github.com/sinhrks/go-nullvec"
)

const usage = `Nullable Vector Describer.
Values are read one per line from stdin when none are given. The text null or
Null marks a missing value.
Usage:
  nullvec-describe -h | --help
  nullvec-describe [--kind=KIND] [--json] [--verbose] [<value>...]
Options:
  -h --help      Show this screen.
  --kind=KIND    Element kind of the values, e.g. i64, u8, f32, bool, str. [default: f64]
  --json         Format output as JSON instead of text.
  --verbose      Log debug messages to stderr.`

type config struct {
	Kind    string
	JSON    bool `docopt:"--json"`
	Verbose bool
	Value   []string `docopt:"<value>"`
}

func main() {
	opts, _ := docopt.ParseDoc(usage)
	var cfg config
	if err := opts.Bind(&cfg); err != nil {
		slog.Error("invalid arguments", "error", err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	kind, err := nullvec.ParseKind(cfg.Kind)
	if err != nil {
		logger.Error("unknown kind", "kind", cfg.Kind, "error", err)
		os.Exit(2)
	}

	values := cfg.Value
	if len(values) == 0 {
		if values, err = readLines(os.Stdin); err != nil {
			logger.Error("reading stdin", "error", err)
			os.Exit(1)
		}
	}

	d := describer{kind: kind, logger: logger}
	sum, err := d.describe(values)
	if err != nil {
		logger.Error("describing values", "error", err)
		os.Exit(1)
	}

	if cfg.JSON {
		err = sum.writeJSON(os.Stdout)
	} else {
		err = sum.writeText(os.Stdout)
	}
	if err != nil {
		logger.Error("writing output", "error", err)
		os.Exit(1)
	}
}

// readLines returns the lines of r with surrounding space removed, skipping
// blank lines.
func readLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}
	return out, sc.Err()
}
