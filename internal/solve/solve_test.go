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

package solve

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"mellow.io/diffo/internal/lineview"
)

// views joins lines into a newline-terminated document and splits it again.
func views(lines ...string) []lineview.View {
	if len(lines) == 0 {
		return nil
	}
	return lineview.Split(strings.Join(lines, "\n") + "\n")
}

// render writes a script as one character per action: '-' remove, '+' add, '=' equal.
func render(script []Action) string {
	var sb strings.Builder
	for _, a := range script {
		switch a {
		case RemoveLeft:
			sb.WriteByte('-')
		case AddRight:
			sb.WriteByte('+')
		case Equal:
			sb.WriteByte('=')
		default:
			sb.WriteByte('?')
		}
	}
	return sb.String()
}

// walk sums up the left/right consumption of a script.
func walk(script []Action) (left, right int) {
	for _, a := range script {
		switch a {
		case RemoveLeft:
			left++
		case AddRight:
			right++
		case Equal:
			left++
			right++
		}
	}
	return left, right
}

func TestSolve(t *testing.T) {
	tests := []struct {
		name        string
		left, right []string
		want        string
	}{
		{
			name:  "empty",
			left:  nil,
			right: nil,
			want:  "",
		},
		{
			name:  "identical",
			left:  []string{"a", "b", "c"},
			right: []string{"a", "b", "c"},
			want:  "===",
		},
		{
			name:  "left-empty",
			left:  nil,
			right: []string{"a", "b"},
			want:  "++",
		},
		{
			name:  "right-empty",
			left:  []string{"a", "b"},
			right: nil,
			want:  "--",
		},
		{
			name:  "same-prefix",
			left:  []string{"foo", "bar"},
			right: []string{"foo", "baz"},
			want:  "=-+",
		},
		{
			name:  "change-at-end",
			left:  []string{"a", "b", "c"},
			right: []string{"a", "b", "d"},
			want:  "==-+",
		},
		{
			name:  "change-in-middle",
			left:  []string{"a", "x", "b"},
			right: []string{"a", "y", "b"},
			want:  "=-+=",
		},
		{
			name:  "remove-before-add",
			left:  []string{"foo", "bar", "foobar"},
			right: []string{"bar", "barfoo"},
			want:  "-=-+",
		},
		{
			name:  "trailing-insert",
			left:  []string{"", "", "", ""},
			right: []string{"", "", "", "", "foo"},
			want:  "====+",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script := Solve(views(tt.left...), views(tt.right...), 0)
			if diff := cmp.Diff(tt.want, render(script)); diff != "" {
				t.Errorf("Solve(...) differs [-want,+got]:\n%s", diff)
			}
			l, r := walk(script)
			if l != len(tt.left) || r != len(tt.right) {
				t.Errorf("script consumes (%d, %d) lines, want (%d, %d)", l, r, len(tt.left), len(tt.right))
			}
		})
	}
}

func TestSolveEqualActionsMatch(t *testing.T) {
	left := views("one", "two", "three", "four", "five")
	right := views("zero", "two", "three", "3.5", "five", "six")
	script := Solve(left, right, 0)

	l, r := 0, 0
	for i, a := range script {
		switch a {
		case Equal:
			if !left[l].Equal(right[r]) {
				t.Errorf("action %d: equal action at (%d, %d) on non-matching lines %q, %q", i, l, r, left[l], right[r])
			}
			l++
			r++
		case RemoveLeft:
			l++
		case AddRight:
			r++
		}
	}
	if l != len(left) || r != len(right) {
		t.Errorf("script consumes (%d, %d) lines, want (%d, %d)", l, r, len(left), len(right))
	}
}

func TestSolveGiant(t *testing.T) {
	var lines []string
	for i := range 20000 {
		lines = append(lines, fmt.Sprint(i))
	}
	left := views(lines...)
	var rlines []string
	rlines = append(rlines, "bye", "bye", "bye")
	rlines = append(rlines, lines...)
	rlines = append(rlines, "EOF", "EOF", "EOF")
	right := views(rlines...)

	script := Solve(left, right, 0)
	edits := 0
	for _, a := range script {
		if a != Equal {
			edits++
		}
	}
	if edits != 6 {
		t.Errorf("got %d edits, want 6", edits)
	}
	l, r := walk(script)
	if l != len(left) || r != len(right) {
		t.Errorf("script consumes (%d, %d) lines, want (%d, %d)", l, r, len(left), len(right))
	}
}

func TestSolveGiantRepeated(t *testing.T) {
	lines := make([]string, 20000)
	for i := range lines {
		lines[i] = "hello"
	}
	left := views(lines...)
	var rlines []string
	rlines = append(rlines, "bye")
	rlines = append(rlines, lines...)
	rlines = append(rlines, "EOF", "EOF", "EOF")
	right := views(rlines...)

	script := Solve(left, right, 0)
	edits := 0
	for _, a := range script {
		if a != Equal {
			edits++
		}
	}
	if edits != 4 {
		t.Errorf("got %d edits, want 4", edits)
	}
}

func TestSolveAggressiveness(t *testing.T) {
	// With a tight bound the script may not be minimal, but it must still be a valid walk from
	// origin to goal with matching equal actions.
	lines := make([]string, 500)
	for i := range lines {
		lines[i] = "hello"
	}
	left := views(lines...)
	var rlines []string
	rlines = append(rlines, "bye")
	rlines = append(rlines, lines...)
	rlines = append(rlines, "EOF")
	right := views(rlines...)

	for _, agg := range []int{1, 2, 10, 1000} {
		script := Solve(left, right, agg)
		l, r := walk(script)
		if l != len(left) || r != len(right) {
			t.Errorf("agg=%d: script consumes (%d, %d) lines, want (%d, %d)", agg, l, r, len(left), len(right))
		}
		li, ri := 0, 0
		for _, a := range script {
			switch a {
			case Equal:
				if !left[li].Equal(right[ri]) {
					t.Fatalf("agg=%d: equal action on non-matching lines at (%d, %d)", agg, li, ri)
				}
				li++
				ri++
			case RemoveLeft:
				li++
			case AddRight:
				ri++
			}
		}
	}
}

func TestSolveAggressivenessStaysExactOnTypicalInput(t *testing.T) {
	left := views("foo", "bar", "foobar")
	right := views("bar", "barfoo")
	got := render(Solve(left, right, 1000))
	if want := "-=-+"; got != want {
		t.Errorf("Solve(..., 1000) = %q, want %q", got, want)
	}
}
