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

// Package render prints chunks for terminal display, either interleaved or side by side.
//
// By default removals are red, additions green, and unchanged lines uncolored; the colors can be
// configured per action with [Deletes], [Inserts], and [Matches].
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"mellow.io/diffo"
)

// tabstop is the column multiple tabs expand to.
const tabstop = 8

// ColumnWidth is the display width of one side-by-side column.
const ColumnWidth = 50

func (o Options) actionColor(a diffo.Action) string {
	switch a {
	case diffo.RemoveLeft:
		return o.Delete
	case diffo.AddRight:
		return o.Insert
	default:
		return o.Match
	}
}

// Interleaved writes chunks one line per diff line, additions and removals mixed in script order.
// Each chunk is separated by a rule of '=' characters and opens with its starting line number.
func Interleaved(w io.Writer, chunks []diffo.Chunk, opts ...Option) {
	colors := fromOptions(opts)
	sep := strings.Repeat("=", 80)
	for _, chunk := range chunks {
		fmt.Fprintln(w, sep)
		fmt.Fprintf(w, "%d:\n", chunk.Lines[0].LineNumber)
		for _, line := range chunk.Lines {
			prefix := line.Action.Prefix()
			if color := colors.actionColor(line.Action); color != "" {
				prefix = color + prefix + colorReset
			}
			fmt.Fprintf(w, "%s %s\n", prefix, line.Line)
		}
	}
}

// SideBySide writes chunks in two columns: removals in the left column, additions in the right,
// unchanged lines in both. Cells are tab-expanded, wrapped, and padded to [ColumnWidth] display
// columns so that the columns align.
func SideBySide(w io.Writer, chunks []diffo.Chunk, opts ...Option) {
	colors := fromOptions(opts)
	sep := strings.Repeat("=", 2*ColumnWidth+1)
	for _, chunk := range chunks {
		fmt.Fprintln(w, sep)
		fmt.Fprintf(w, "%d:\n", chunk.Lines[0].LineNumber)
		var left, right []string
		for _, line := range chunk.Lines {
			cells := formatCells(colors, line.Action, line.Line)
			switch line.Action {
			case diffo.AddRight:
				right = append(right, cells...)
			case diffo.RemoveLeft:
				left = append(left, cells...)
			case diffo.Equal:
				left, right = equalize(colors, left, right)
				left = append(left, cells...)
				right = append(right, cells...)
			default:
				panic("never reached")
			}
		}
		left, right = equalize(colors, left, right)
		for i := range left {
			fmt.Fprintf(w, "%s|%s\n", left[i], right[i])
		}
	}
}

// formatCells renders one diff line as one or more fixed-width cells, wrapping long lines.
func formatCells(colors Options, a diffo.Action, line string) []string {
	line = ExpandTabs(line)
	if line == "" {
		return []string{formatCell(colors, a, "")}
	}
	var cells []string
	for line != "" {
		part := runewidth.Truncate(line, ColumnWidth-4, "")
		cells = append(cells, formatCell(colors, a, part))
		line = line[len(part):]
	}
	return cells
}

func formatCell(colors Options, a diffo.Action, s string) string {
	cell := a.Prefix() + " " + runewidth.FillRight(s, ColumnWidth-2)
	if color := colors.actionColor(a); color != "" {
		return color + cell + colorReset
	}
	return cell
}

// equalize pads the shorter column with blank cells until both have the same height.
func equalize(colors Options, left, right []string) ([]string, []string) {
	blank := formatCell(colors, diffo.Equal, "")
	for len(left) < len(right) {
		left = append(left, blank)
	}
	for len(right) < len(left) {
		right = append(right, blank)
	}
	return left, right
}

// ExpandTabs replaces tabs with spaces up to the next tabstop boundary.
func ExpandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := tabstop - col%tabstop
			for range n {
				b.WriteByte(' ')
			}
			col += n
			continue
		}
		b.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return b.String()
}
