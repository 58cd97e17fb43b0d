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

package ringlist

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is matched by every *IndexError via errors.Is.
	ErrIndexOutOfRange = errors.New("ringlist: index out of range")
	// ErrIllegalCapacity means that a negative initial capacity has been passed.
	ErrIllegalCapacity = errors.New("ringlist: initial capacity should not be negative")
	// ErrIllegalMaximumCapacity means that the maximum capacity is smaller than the initial capacity
	// or exceeds MaxCapacity.
	ErrIllegalMaximumCapacity = errors.New("ringlist: illegal maximum capacity")
	// ErrCapacityExhausted means that the list is full and its capacity cannot be increased any further.
	ErrCapacityExhausted = errors.New("ringlist: maximum capacity reached")
	// ErrConcurrentModification means that the list was structurally modified while being iterated.
	ErrConcurrentModification = errors.New("ringlist: list modified during iteration")
	// ErrShortBuffer means that the destination passed to CopyTo cannot hold all elements.
	ErrShortBuffer = errors.New("ringlist: destination is too short")
)

// IndexError is the panic value used when an operation receives an index outside its valid range.
type IndexError struct {
	// Op is the name of the List method.
	Op string
	// Index is the offending index.
	Index int
	// Len is the length of the list at the time of the call.
	Len int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("ringlist: %s: index %d out of range for length %d", e.Op, e.Index, e.Len)
}

// Is reports whether target is ErrIndexOutOfRange.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

func panicIndex(op string, index, length int) {
	panic(&IndexError{Op: op, Index: index, Len: length})
}
