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

// Recorder accumulates statistics during the operation of a ringlist.List.
type Recorder interface {
	// RecordGrowth records that the backing buffer was reallocated from oldCapacity to newCapacity.
	RecordGrowth(oldCapacity, newCapacity int)
	// RecordMoves records a single insert or remove that had to shift count elements
	// to open or close a gap. A zero count is still recorded as one shift.
	RecordMoves(count int)
}

// NoopRecorder is a Recorder that discards everything.
type NoopRecorder struct{}

func (np *NoopRecorder) RecordGrowth(oldCapacity, newCapacity int) {}
func (np *NoopRecorder) RecordMoves(count int)                     {}
