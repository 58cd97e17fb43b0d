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

package xmath

// MinGrowCapacity is the smallest capacity a growing buffer is extended to.
const MinGrowCapacity = 4

// Mod returns x modulo n in the range [0, n).
//
// Unlike the % operator, the result is never negative. n must be positive.
func Mod(x, n int) int {
	r := x % n
	if r < 0 {
		r += n
	}
	return r
}

// NextCapacity returns the capacity a buffer of the given capacity should grow to,
// doubling it but never exceeding maxCapacity.
//
// The result equals capacity when the buffer cannot grow any further.
func NextCapacity(capacity, maxCapacity int) int {
	if capacity >= maxCapacity {
		return capacity
	}
	if capacity > maxCapacity/2 {
		return maxCapacity
	}
	return min(max(2*capacity, MinGrowCapacity), maxCapacity)
}
