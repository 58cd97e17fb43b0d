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

import "iter"

// All returns an iterator over index-element pairs from front to back.
//
// Every call to the returned iterator observes the current contents of the list.
// A structural modification (Add, Insert, RemoveAt, Clear and their aliases) made while
// iterating causes the iterator to panic with ErrConcurrentModification. Set is allowed.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		version := l.version
		for i, p := 0, l.head; i < l.count; i++ {
			if !yield(i, l.buf[p]) {
				return
			}
			l.checkVersion(version)
			p = l.wrap(p + 1)
		}
	}
}

// Values returns an iterator over the elements from front to back.
//
// It follows the same rules as All.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-element pairs from back to front.
//
// It follows the same rules as All.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		version := l.version
		for i, p := l.count-1, l.tail; i >= 0; i-- {
			if !yield(i, l.buf[p]) {
				return
			}
			l.checkVersion(version)
			p = l.wrap(p - 1)
		}
	}
}

func (l *List[T]) checkVersion(version uint64) {
	if l.version != version {
		panic(ErrConcurrentModification)
	}
}
