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
	"slices"

	"mellow.io/diffo/internal/config"
	"mellow.io/diffo/internal/lineview"
	"mellow.io/diffo/internal/solve"
)

// chunks converts an edit script into context-trimmed chunks.
//
// A sliding buffer holds up to cfg.Context unchanged lines of leading context while outside a
// chunk. Once a change starts, unchanged lines accumulate; when cfg.Context of them have been seen
// in a row and another unchanged line follows, the chunk is flushed. Two changes separated by more
// than cfg.Context unchanged lines therefore end up in separate chunks.
func chunks(left, right []lineview.View, script []solve.Action, cfg config.Config) []Chunk {
	var out []Chunk
	var buf []DiffLine
	inChunk := false
	contextCount := 0 // unchanged lines since the last change while inChunk
	l, r := 0, 0
	for _, a := range script {
		var line DiffLine
		switch a {
		case solve.Equal:
			line = DiffLine{Line: left[l].String(), Action: Equal, LineNumber: l + 1}
		case solve.RemoveLeft:
			line = DiffLine{Line: left[l].String(), Action: RemoveLeft, LineNumber: l + 1}
		case solve.AddRight:
			line = DiffLine{Line: right[r].String(), Action: AddRight, LineNumber: l + 1}
		default:
			panic("never reached")
		}

		if a == solve.Equal && inChunk && contextCount == cfg.Context {
			out = append(out, Chunk{Lines: slices.Clone(buf)})
			buf = buf[:0]
			inChunk = false
			contextCount = 0
		}
		buf = append(buf, line)
		if a != solve.Equal {
			inChunk = true
			contextCount = 0
		} else if inChunk {
			contextCount++
		} else if len(buf) > cfg.Context {
			buf = buf[1:]
		}

		switch a {
		case solve.Equal:
			l++
			r++
		case solve.RemoveLeft:
			l++
		case solve.AddRight:
			r++
		}
	}
	if inChunk {
		out = append(out, Chunk{Lines: slices.Clone(buf)})
	}
	return out
}
