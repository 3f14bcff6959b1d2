// Copyright 2025 The diffo authors
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

// diffo prints the difference between two files.
//
// Usage:
//
//	diffo diff <left-file> <right-file> [--interleaved] [--agg N]
//
// By default the diff is printed side by side; --interleaved prints one line per edit instead.
// --agg bounds the search on pathological inputs, 0 means an exact search.
package main

import (
	"flag"
	"fmt"
	"os"

	"mellow.io/diffo"
	"mellow.io/diffo/internal/render"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 1 || args[0] != "diff" {
		return fmt.Errorf("usage: diffo diff <left-file> <right-file> [--interleaved] [--agg N]")
	}
	fs := flag.NewFlagSet("diff", flag.ContinueOnError)
	interleaved := fs.Bool("interleaved", false, "print the diff interleaved instead of side by side")
	agg := fs.Int("agg", 1000, "aggressiveness bound for the search, 0 means exact")
	// Flags may follow the file arguments, so keep parsing after each positional argument.
	var files []string
	rest := args[1:]
	for {
		if err := fs.Parse(rest); err != nil {
			return err
		}
		rest = fs.Args()
		if len(rest) == 0 {
			break
		}
		files = append(files, rest[0])
		rest = rest[1:]
	}
	if len(files) != 2 {
		return fmt.Errorf("expected exactly two files, got %d", len(files))
	}

	chunks, err := diffo.DiffFiles(files[0], files[1], diffo.Aggressiveness(*agg))
	if err != nil {
		return err
	}

	size := 0
	for _, chunk := range chunks {
		for _, line := range chunk.Lines {
			if line.Action != diffo.Equal {
				size++
			}
		}
	}
	if size > 0 {
		fmt.Printf("Diff size: %d\n", size)
	}
	if *interleaved {
		render.Interleaved(os.Stdout, chunks)
	} else {
		render.SideBySide(os.Stdout, chunks)
	}
	return nil
}
