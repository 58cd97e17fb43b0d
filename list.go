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
	"context"
	"fmt"
	"strings"

	"github.com/maypok86/ringlist/internal/xmath"
	"github.com/maypok86/ringlist/stats"
)

type direction int8

const (
	toFront direction = -1
	toBack  direction = 1
)

// List is a double-ended queue with random access, backed by a single circular buffer.
//
// Appending and prepending take amortized O(1) time. Inserting or removing at an arbitrary
// index k takes O(min(k, Len()-k)) time, because the list always shifts the shorter side of
// the buffer to open or close the gap. The buffer doubles when full and never shrinks.
//
// Out-of-range indexes and other contract violations panic with an *IndexError or one of the
// Err* values of this package.
//
// List is not safe for concurrent use. Callers that share a List between goroutines must
// guard every call with their own lock.
type List[T comparable] struct {
	buf []T
	// head is the physical slot of the first element.
	head int
	// tail is the physical slot of the last element, or -1 if the list is empty.
	tail  int
	count int
	// version is incremented by every structural modification.
	version  uint64
	maxCap   int
	logger   Logger
	recorder stats.Recorder
}

// New creates an empty List with room for initialCapacity elements.
//
// Panics if initialCapacity is negative or greater than MaxCapacity.
func New[T comparable](initialCapacity int) *List[T] {
	if initialCapacity < 0 {
		panic(ErrIllegalCapacity)
	}
	if initialCapacity > MaxCapacity {
		panic(ErrIllegalMaximumCapacity)
	}
	return newList[T](initialCapacity, MaxCapacity, &NoopLogger{}, &stats.NoopRecorder{})
}

// NewWithOptions creates a List from the given options.
//
// Returns an error if the options are invalid.
func NewWithOptions[T comparable](o *Options) (*List[T], error) {
	var opts Options
	if o != nil {
		opts = *o
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	opts.setDefaults()

	return newList[T](opts.getInitialCapacity(), opts.getMaximumCapacity(), opts.Logger, opts.StatsRecorder), nil
}

// Must creates a List from the given options.
//
// Panics if the options are invalid.
func Must[T comparable](o *Options) *List[T] {
	l, err := NewWithOptions[T](o)
	if err != nil {
		panic(err)
	}
	return l
}

func newList[T comparable](capacity, maxCapacity int, logger Logger, recorder stats.Recorder) *List[T] {
	return &List[T]{
		buf:      make([]T, capacity),
		tail:     -1,
		maxCap:   maxCapacity,
		logger:   logger,
		recorder: recorder,
	}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.count
}

// Cap returns the size of the backing buffer.
func (l *List[T]) Cap() int {
	return len(l.buf)
}

// At returns the element at index i.
func (l *List[T]) At(i int) T {
	l.checkIndex("At", i)
	return l.buf[l.physical(i)]
}

// Set replaces the element at index i.
//
// Set is not a structural modification, so it is allowed while iterating.
func (l *List[T]) Set(i int, v T) {
	l.checkIndex("Set", i)
	l.buf[l.physical(i)] = v
}

// Front returns the first element.
func (l *List[T]) Front() T {
	l.checkIndex("Front", 0)
	return l.buf[l.head]
}

// Back returns the last element.
func (l *List[T]) Back() T {
	l.checkIndex("Back", l.count-1)
	return l.buf[l.tail]
}

// Add appends v at the back of the list.
func (l *List[T]) Add(v T) {
	if l.count == len(l.buf) {
		l.grow()
	}
	l.tail = l.physical(l.count)
	l.buf[l.tail] = v
	l.count++
	l.version++
}

// PushBack is an alias of Add.
func (l *List[T]) PushBack(v T) {
	l.Add(v)
}

// PushFront prepends v at the front of the list.
func (l *List[T]) PushFront(v T) {
	l.Insert(0, v)
}

// Insert inserts v so that it ends up at index i, shifting the elements on the shorter side
// of i by one slot. Insert(Len(), v) is the same as Add(v).
//
// Panics unless 0 <= i <= Len().
func (l *List[T]) Insert(i int, v T) {
	if i < 0 || i > l.count {
		panicIndex("Insert", i, l.count)
	}
	if i == l.count {
		l.Add(v)
		return
	}
	if l.count == len(l.buf) {
		l.grow()
	}

	var moved int
	if l.shiftsFront(i) {
		moved = l.shift(l.head, i, toFront)
		l.head = l.wrap(l.head - 1)
	} else {
		moved = l.shift(l.physical(i), l.count-i, toBack)
		l.tail = l.wrap(l.tail + 1)
	}
	l.buf[l.physical(i)] = v
	l.count++
	l.version++
	l.recorder.RecordMoves(moved)
}

// RemoveAt removes and returns the element at index i, shifting the elements on the shorter
// side of i by one slot to close the gap.
//
// Panics unless 0 <= i < Len().
func (l *List[T]) RemoveAt(i int) T {
	l.checkIndex("RemoveAt", i)

	p := l.physical(i)
	v := l.buf[p]
	var zero T
	var moved int
	if l.shiftsFront(i) {
		moved = l.shift(l.head, i, toBack)
		l.buf[l.head] = zero
		l.head = l.wrap(l.head + 1)
	} else {
		moved = l.shift(l.wrap(p+1), l.count-1-i, toFront)
		l.buf[l.tail] = zero
		l.tail = l.wrap(l.tail - 1)
	}
	l.count--
	if l.count == 0 {
		l.head = 0
		l.tail = -1
	}
	l.version++
	l.recorder.RecordMoves(moved)
	return v
}

// PopFront removes and returns the first element.
func (l *List[T]) PopFront() T {
	if l.count == 0 {
		panicIndex("PopFront", 0, 0)
	}
	return l.RemoveAt(0)
}

// PopBack removes and returns the last element.
func (l *List[T]) PopBack() T {
	if l.count == 0 {
		panicIndex("PopBack", -1, 0)
	}
	return l.RemoveAt(l.count - 1)
}

// Remove removes the first element equal to v and reports whether one was found.
func (l *List[T]) Remove(v T) bool {
	i := l.IndexOf(v)
	if i < 0 {
		return false
	}
	l.RemoveAt(i)
	return true
}

// IndexOf returns the index of the first element equal to v, or -1 if there is none.
func (l *List[T]) IndexOf(v T) int {
	for i, p := 0, l.head; i < l.count; i++ {
		if l.buf[p] == v {
			return i
		}
		p = l.wrap(p + 1)
	}
	return -1
}

// Contains reports whether the list holds an element equal to v.
func (l *List[T]) Contains(v T) bool {
	return l.IndexOf(v) >= 0
}

// CopyTo copies the elements, front to back, into dst starting at dst[offset] and
// returns the number of copied elements.
//
// Panics if offset is outside dst or dst[offset:] is shorter than Len().
func (l *List[T]) CopyTo(dst []T, offset int) int {
	if offset < 0 || offset > len(dst) {
		panicIndex("CopyTo", offset, len(dst))
	}
	if len(dst)-offset < l.count {
		panic(ErrShortBuffer)
	}
	if l.count == 0 {
		return 0
	}

	if l.wrapped() {
		n := copy(dst[offset:], l.buf[l.head:l.largestUsedIndex()+1])
		copy(dst[offset+n:], l.buf[:l.tail+1])
	} else {
		copy(dst[offset:], l.buf[l.head:l.tail+1])
	}
	return l.count
}

// Slice returns the elements, front to back, in a newly allocated slice.
func (l *List[T]) Slice() []T {
	s := make([]T, l.count)
	l.CopyTo(s, 0)
	return s
}

// Clear removes all elements. The capacity of the list is kept.
func (l *List[T]) Clear() {
	if l.wrapped() {
		clear(l.buf[l.head:])
		clear(l.buf[:l.tail+1])
	} else if l.count > 0 {
		clear(l.buf[l.head : l.tail+1])
	}
	l.head = 0
	l.tail = -1
	l.count = 0
	l.version++
}

func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteString("ringlist.List[")
	for i, v := range l.All() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}

func (l *List[T]) checkIndex(op string, i int) {
	if i < 0 || i >= l.count {
		panicIndex(op, i, l.count)
	}
}

// wrap normalizes a physical index into [0, Cap()).
func (l *List[T]) wrap(p int) int {
	return xmath.Mod(p, len(l.buf))
}

func (l *List[T]) physical(i int) int {
	return l.wrap(l.head + i)
}

// wrapped reports whether the occupied region crosses the end of the buffer.
func (l *List[T]) wrapped() bool {
	return l.count > 0 && l.tail < l.head
}

// largestUsedIndex returns the highest physical slot that may hold an element.
func (l *List[T]) largestUsedIndex() int {
	if l.wrapped() {
		return len(l.buf) - 1
	}
	return l.tail
}

// shiftsFront reports whether a gap at index i is opened or closed by moving the front part
// of the list rather than the back part.
func (l *List[T]) shiftsFront(i int) bool {
	return i == 0 || i < (l.count-1)/2
}

// shift moves n elements held in consecutive (mod Cap()) physical slots starting at from by
// one slot in direction dir and returns n. The slot the block moves into must be free.
//
// The block is moved with at most two copies plus one element carried across the wrap point.
func (l *List[T]) shift(from, n int, dir direction) int {
	buf := l.buf
	c := len(buf)

	if dir == toFront {
		// Walk front to back so every destination has already been vacated.
		for left := n; left > 0; {
			if from == 0 {
				buf[c-1] = buf[0]
				from = 1
				left--
				continue
			}
			k := min(left, c-from)
			copy(buf[from-1:from-1+k], buf[from:from+k])
			from = xmath.Mod(from+k, c)
			left -= k
		}
		return n
	}

	// Walk back to front for the same reason.
	end := xmath.Mod(from+n-1, c)
	for left := n; left > 0; {
		if end == c-1 {
			buf[0] = buf[c-1]
			end = c - 2
			left--
			continue
		}
		k := min(left, end+1)
		start := end - k + 1
		copy(buf[start+1:end+2], buf[start:end+1])
		end = xmath.Mod(start-1, c)
		left -= k
	}
	return n
}

// grow reallocates the backing buffer with doubled capacity, moving the elements to the
// beginning of the new buffer in logical order.
func (l *List[T]) grow() {
	oldCap := len(l.buf)
	newCap := xmath.NextCapacity(oldCap, l.maxCap)
	if newCap == oldCap {
		err := fmt.Errorf("%w: %d elements", ErrCapacityExhausted, oldCap)
		l.logger.Error(context.Background(), "ringlist: list is full and cannot grow", err)
		panic(err)
	}
	if newCap == l.maxCap {
		l.logger.Warn(
			context.Background(),
			"ringlist: capacity clamped to the maximum",
			fmt.Errorf("the next growth beyond %d elements is going to fail: %w", newCap, ErrCapacityExhausted),
		)
	}

	buf := make([]T, newCap)
	l.CopyTo(buf, 0)
	l.buf = buf
	l.head = 0
	l.tail = l.count - 1
	l.recorder.RecordGrowth(oldCap, newCap)
}
