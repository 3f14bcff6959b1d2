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

package diffo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"mellow.io/diffo/internal/config"
	"mellow.io/diffo/internal/lineview"
	"mellow.io/diffo/internal/solve"
)

// Action describes what a diff line does.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Action
type Action int

const (
	Undefined  Action = iota // sentinel, never appears in results
	AddRight                 // a line added from the right document
	RemoveLeft               // a line removed from the left document
	Equal                    // a line present in both documents
)

// Prefix returns the conventional one-character diff marker for a.
func (a Action) Prefix() string {
	switch a {
	case AddRight:
		return "+"
	case RemoveLeft:
		return "-"
	case Equal:
		return " "
	default:
		return "?"
	}
}

// A DiffLine is a single line of a diff.
type DiffLine struct {
	// Line is the line content without its line terminator. It is a copy and does not alias the
	// input documents.
	Line string

	// Action describes whether the line was added, removed, or left unchanged.
	Action Action

	// LineNumber is the 1-based line number in the left document. For added lines it is the
	// left-side insertion point.
	LineNumber int
}

// A Chunk is a contiguous run of diff lines: one or more changes together with up to the
// configured number of unchanged context lines before, between, and after them.
type Chunk struct {
	Lines []DiffLine
}

// DiffStrings compares the lines of left and right and returns the changes as context-trimmed
// chunks, in order of increasing starting line number. Identical documents produce no chunks.
//
// The following options are supported: [Context], [Aggressiveness]
func DiffStrings(left, right string, opts ...Option) []Chunk {
	cfg := config.FromOptions(opts, config.Context|config.Agg)
	return diffStrings(left, right, cfg)
}

// DiffFiles reads two files and compares them like [DiffStrings].
//
// The following options are supported: [Context], [Aggressiveness], [MissingAsEmpty]
func DiffFiles(leftPath, rightPath string, opts ...Option) ([]Chunk, error) {
	cfg := config.FromOptions(opts, config.Context|config.Agg|config.MissingAsEmpty)
	left, err := readFile(leftPath, cfg.MissingAsEmpty)
	if err != nil {
		return nil, err
	}
	right, err := readFile(rightPath, cfg.MissingAsEmpty)
	if err != nil {
		return nil, err
	}
	return diffStrings(left, right, cfg), nil
}

func diffStrings(left, right string, cfg config.Config) []Chunk {
	if left == right {
		return nil
	}
	l := lineview.Split(normalize(left))
	r := lineview.Split(normalize(right))
	script := solve.Solve(l, r, cfg.Agg)
	return chunks(l, r, script, cfg)
}

// readFile reads a whole file. With missingAsEmpty, a file that does not exist reads as empty.
func readFile(path string, missingAsEmpty bool) (string, error) {
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		return string(b), nil
	case missingAsEmpty && errors.Is(err, fs.ErrNotExist):
		return "", nil
	default:
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
}

// normalize makes sure non-empty content ends in a newline so that the splitter sees only
// terminated lines.
func normalize(doc string) string {
	if doc != "" && !strings.HasSuffix(doc, "\n") {
		doc += "\n"
	}
	return doc
}
