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

// Package solve computes a shortest edit script between two line sequences.
//
// # Model
//
// All possible edits that transform the left document into the right one form a grid. A node
// (l, r) means that l lines of the left document and r lines of the right document have been
// consumed. For the inputs x = "ABCABBA" and y = "CBABAC" the grid looks like this:
//
//	(0,0)   A   B   C   A   B   B   A
//	    ┌───┬───┬───┬───┬───┬───┬───┐ 0
//	    │   │   │ ╲ │   │   │   │   │
//	 C  ├───┼───┼───┼───┼───┼───┼───┤ 1
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 2
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 3
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 4
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 5
//	    │   │   │ ╲ │   │   │   │   │
//	 C  └───┴───┴───┴───┴───┴───┴───┘
//	    0   1   2   3   4   5   6     (7,6)
//
// A horizontal edge removes a line from the left document (cost 1), a vertical edge adds a line
// from the right document (cost 1), and where the two current lines match, a diagonal edge
// consumes one line from each (cost 0). A shortest edit script is a minimum-cost path from (0,0)
// to (len(left), len(right)).
//
// # Search
//
// With edge costs in {0, 1}, Dijkstra's algorithm with a bucket queue (Dial's algorithm)
// degenerates to a breadth-first search with priority layering: every push goes to the current or
// the next bucket, and the whole search runs in time linear in the number of nodes explored.
//
// Diagonal edges are never pushed. They cost nothing and taking them is always profitable, so the
// enqueue step follows each run of matching lines to its end and records the intermediate nodes
// directly. This collapses arbitrarily long matching runs into a single queue entry.
//
// Every reached node records the action that first reached it in a state table addressed by
// diagonal (r - l) and antidiagonal (r), holding 2-bit actions packed 32 per 64-bit word. A search
// that finds a distance-D script only ever touches diagonals in [-D, D], so per-diagonal storage
// stays narrow even for very large and very similar documents. The zero word means "not reached",
// which is why the Undefined action must encode as 0. The script is recovered by walking the
// recorded actions back from the goal.
//
// # Aggressiveness
//
// On pathological inputs, e.g. tens of thousands of identical lines, the frontier can grow with
// the product of the document sizes. The aggressiveness bound prunes any node whose l+r lags more
// than a fixed amount behind the furthest-reached node. This bounds the explored band at the cost
// of the minimality guarantee; the result is still a valid edit script.
//
// # References
//
// Dial, R.B. Algorithm 360: shortest-path forest with topological ordering. Communications of the
// ACM 12, 632-633 (1969). https://doi.org/10.1145/363269.363610
package solve
