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

import "math"

// Stats are statistics about the internal work done by a ringlist.List.
type Stats struct {
	growths uint64
	moves   uint64
	shifts  uint64
}

// Growths returns the number of times the backing buffer was reallocated.
func (s Stats) Growths() uint64 {
	return s.growths
}

// Moves returns the total number of elements shifted by inserts and removes.
func (s Stats) Moves() uint64 {
	return s.moves
}

// Shifts returns the number of inserts and removes that went through the shift path.
//
// Appends at the back are not counted.
func (s Stats) Shifts() uint64 {
	return s.shifts
}

// AverageMoves returns the average number of elements moved per shift.
func (s Stats) AverageMoves() float64 {
	if s.shifts == 0 {
		return 0.0
	}
	return float64(s.moves) / float64(s.shifts)
}

// Minus returns a new Stats representing the difference between this Stats and other.
// Negative values, which aren't supported by Stats will be rounded up to zero.
func (s Stats) Minus(other Stats) Stats {
	return Stats{
		growths: subtractWithFloor(s.growths, other.growths),
		moves:   subtractWithFloor(s.moves, other.moves),
		shifts:  subtractWithFloor(s.shifts, other.shifts),
	}
}

func subtractWithFloor(a, b uint64) uint64 {
	if a < b {
		return 0
	}
	return a - b
}

func checkedAdd(a, b uint64) uint64 {
	s := a + b
	if s < a || s < b {
		return math.MaxUint64
	}
	return s
}
