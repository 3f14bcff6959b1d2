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
	"slices"

	"mellow.io/diffo/internal/bucketq"
	"mellow.io/diffo/internal/lineview"
)

// Solve computes an edit script that transforms left into right: a sequence of actions whose
// prefix sums walk the edit grid from (0, 0) to (len(left), len(right)).
//
// With agg == 0 the script is a shortest one. agg > 0 enables the aggressiveness bound: a node
// whose Left+Right lags more than agg behind the furthest enqueued node is discarded instead of
// explored, which bounds the search on pathological inputs at the cost of minimality.
func Solve(left, right []lineview.View, agg int) []Action {
	s := &search{left: left, right: right, agg: agg}
	return s.run()
}

type search struct {
	left, right []lineview.View
	agg         int

	states   stateTable
	queue    bucketq.Queue[NodeKey]
	furthest int // largest Left+Right over all enqueued keys
}

func (s *search) run() []Action {
	origin := NodeKey{0, 0}
	goal := NodeKey{len(s.left), len(s.right)}

	s.enqueue(origin, 0, Undefined)
	for {
		k, dist := s.queue.Pop()
		if k == goal {
			break
		}
		// Remove before Add: with equal cost, this tie-break determines the canonical script.
		if k.Left < len(s.left) {
			s.enqueue(k.Walk(RemoveLeft), dist+1, RemoveLeft)
		}
		if k.Right < len(s.right) {
			s.enqueue(k.Walk(AddRight), dist+1, AddRight)
		}
	}

	return s.recover(origin, goal)
}

// enqueue records that key was reached by action at distance dist and schedules it for
// exploration. A key that was already reached is dropped, its first visit was at an equal or lower
// distance.
func (s *search) enqueue(key NodeKey, dist int, action Action) {
	if s.states.get(key) != Undefined {
		return
	}
	s.states.set(key, action)

	// Matching lines cost nothing and taking them is always profitable, so follow the run of
	// matches to its end before queueing anything.
	for s.matchAt(key) {
		key = key.Walk(Equal)
		if s.states.get(key) != Undefined {
			return
		}
		s.states.set(key, Equal)
	}

	if sum := key.Left + key.Right; sum > s.furthest {
		s.furthest = sum
	} else if s.agg > 0 && s.furthest-sum > s.agg {
		// Too far behind the frontier, give up on this node. The furthest node itself is never
		// pruned, so the goal stays reachable.
		return
	}
	s.queue.Push(dist, key)
}

func (s *search) matchAt(k NodeKey) bool {
	return k.Left < len(s.left) && k.Right < len(s.right) && s.left[k.Left].Equal(s.right[k.Right])
}

// recover walks the recorded actions back from goal to origin and returns them in application
// order.
func (s *search) recover(origin, goal NodeKey) []Action {
	var script []Action
	for k := goal; k != origin; {
		a := s.states.get(k)
		if a == Undefined {
			panic("solve: unreached node during path recovery")
		}
		script = append(script, a)
		k = k.Backout(a)
	}
	slices.Reverse(script)
	return script
}
