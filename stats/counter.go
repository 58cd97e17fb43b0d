// Copyright (c) 2025 Alexey Mayshev and contributors. All rights reserved.
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

package stats

import "sync/atomic"

// Counter is a goroutine-safe Recorder implementation.
//
// A single Counter may be shared by several lists.
type Counter struct {
	growths atomic.Uint64
	moves   atomic.Uint64
	shifts  atomic.Uint64
}

// NewCounter constructs a Counter instance with all counts initialized to zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Snapshot returns a snapshot of this recorder's values. Note that this may be an inconsistent view, as it
// may be interleaved with update operations.
//
// NOTE: the values saturate at math.MaxUint64 instead of wrapping around.
func (c *Counter) Snapshot() Stats {
	return Stats{
		growths: c.growths.Load(),
		moves:   c.moves.Load(),
		shifts:  c.shifts.Load(),
	}
}

// RecordGrowth records a reallocation of the backing buffer.
func (c *Counter) RecordGrowth(oldCapacity, newCapacity int) {
	saturatingAdd(&c.growths, 1)
}

// RecordMoves records a shift of count elements.
func (c *Counter) RecordMoves(count int) {
	saturatingAdd(&c.shifts, 1)
	if count > 0 {
		saturatingAdd(&c.moves, uint64(count))
	}
}

func saturatingAdd(v *atomic.Uint64, delta uint64) {
	for {
		old := v.Load()
		if v.CompareAndSwap(old, checkedAdd(old, delta)) {
			return
		}
	}
}
