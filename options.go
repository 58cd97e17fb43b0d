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
	"math"

	"github.com/maypok86/ringlist/stats"
)

const (
	// DefaultCapacity is the initial capacity used when Options.InitialCapacity is zero.
	DefaultCapacity = 16
	// MaxCapacity is the largest number of elements a List can hold.
	MaxCapacity = math.MaxInt32
)

// Options should be passed to NewWithOptions to construct a List.
//
// A nil *Options is equivalent to a zero Options.
type Options struct {
	// InitialCapacity specifies the size of the backing buffer allocated up front. Providing a large enough
	// estimate avoids the need for expensive resizing operations later.
	//
	// Zero means DefaultCapacity.
	InitialCapacity int
	// MaximumCapacity specifies the number of elements after which the list refuses to grow.
	// Once reached, every attempt to add one more element panics with ErrCapacityExhausted.
	//
	// Zero means MaxCapacity.
	MaximumCapacity int
	// Logger specifies the Logger implementation that will be used for logging warnings and errors.
	//
	// By default, nothing is logged.
	Logger Logger
	// StatsRecorder accumulates statistics about growths and element moves.
	//
	// By default, nothing is recorded.
	StatsRecorder stats.Recorder
}

func (o *Options) getInitialCapacity() int {
	if o.InitialCapacity > 0 {
		return o.InitialCapacity
	}
	return DefaultCapacity
}

func (o *Options) getMaximumCapacity() int {
	if o.MaximumCapacity > 0 {
		return o.MaximumCapacity
	}
	return MaxCapacity
}

func (o *Options) validate() error {
	if o.InitialCapacity < 0 {
		return ErrIllegalCapacity
	}
	if o.MaximumCapacity < 0 || o.MaximumCapacity > MaxCapacity {
		return ErrIllegalMaximumCapacity
	}
	if o.getInitialCapacity() > o.getMaximumCapacity() {
		return ErrIllegalMaximumCapacity
	}
	return nil
}

func (o *Options) setDefaults() {
	if o.Logger == nil {
		o.Logger = &NoopLogger{}
	}
	if o.StatsRecorder == nil {
		o.StatsRecorder = &stats.NoopRecorder{}
	}
}
