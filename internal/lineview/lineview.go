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

// Package lineview provides non-owning views of the lines of a document.
//
// The solver performs a large number of line comparisons; views avoid a per-line allocation and
// keep comparisons free of heap indirection. A view stays valid only as long as the document it
// was split from.
package lineview

import "strings"

// A View references a single line inside a document. It holds the document's tail starting at the
// line's first byte; the line ends at the first '\n' or at the end of the document.
type View struct {
	tail string
}

// Equal reports whether two views refer to the same line content. The comparison stops when both
// lines hit a newline or the end of their document; a mismatching byte before that means unequal.
func (v View) Equal(o View) bool {
	a, b := v.tail, o.tail
	for i := 0; ; i++ {
		aEnd := i >= len(a) || a[i] == '\n'
		bEnd := i >= len(b) || b[i] == '\n'
		if aEnd || bEnd {
			return aEnd && bEnd
		}
		if a[i] != b[i] {
			return false
		}
	}
}

// String copies the line content, excluding the line terminator.
func (v View) String() string {
	if i := strings.IndexByte(v.tail, '\n'); i >= 0 {
		return v.tail[:i]
	}
	return v.tail
}

// Split splits doc into line views. A view is emitted for every line start that precedes at least
// one newline; an unterminated final line is not emitted. Callers are expected to normalize the
// trailing newline first.
func Split(doc string) []View {
	views := make([]View, 0, strings.Count(doc, "\n"))
	for start := 0; start < len(doc); {
		i := strings.IndexByte(doc[start:], '\n')
		if i < 0 {
			break
		}
		views = append(views, View{doc[start:]})
		start += i + 1
	}
	return views
}
