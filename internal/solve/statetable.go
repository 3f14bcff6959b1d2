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

import "mellow.io/diffo/internal/densemap"

const actionsPerWord = 32

// packedActions maps a non-negative index to a 2-bit Action, stored 32 per 64-bit word. Words live
// in a densemap keyed by idx/32 so that the store grows with the touched index range rather than
// with its upper bound.
type packedActions struct {
	words densemap.Map[uint64]
}

func (p *packedActions) get(idx int) Action {
	w := *p.words.Get(idx / actionsPerWord)
	return Action((w >> (2 * (idx % actionsPerWord))) & 3)
}

// set records a at idx by ORing the bits in. This is only correct while the slot still holds
// Undefined; callers check get first.
func (p *packedActions) set(idx int, a Action) {
	w := p.words.Get(idx / actionsPerWord)
	*w |= uint64(a) << (2 * (idx % actionsPerWord))
}

// stateTable records the action that first reached every visited node. Nodes are addressed by
// diagonal (Right-Left) and antidiagonal (Right): a search that finds a distance-D script only
// touches diagonals in [-D, D], so per-diagonal storage keeps memory proportional to the explored
// band instead of the full left×right rectangle.
type stateTable struct {
	diagonals densemap.Map[packedActions]
}

func (st *stateTable) get(k NodeKey) Action {
	return st.diagonals.Get(k.Right - k.Left).get(k.Right)
}

func (st *stateTable) set(k NodeKey, a Action) {
	st.diagonals.Get(k.Right - k.Left).set(k.Right, a)
}
