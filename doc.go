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

// Package diffo compares two text documents line by line, similar to the Unix diff command line
// tool, and reports the differences as chunks: contiguous runs of added and removed lines together
// with a configurable amount of unchanged context around them.
//
// The main functions are [DiffStrings], which compares two in-memory documents, and [DiffFiles],
// which reads and compares two files. Both return the same chunk representation, which is suitable
// for interleaved or side-by-side display.
//
// By default the comparison is exact: the number of added and removed lines in the result is the
// minimum possible. Use [Aggressiveness] to bound the search on pathological inputs at the cost of
// that guarantee.
package diffo
