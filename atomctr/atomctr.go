// Copyright (c) 2018, Randall C. O'Reilly. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package atomctr implements a basic atomic int64 counter, used here to
// track how many tiles remain outstanding in a render pass. The
// renderer still updates and reads it under its own mutex, paired with
// its completion condition variable.
package atomctr

import (
	"sync/atomic"
)

// Ctr is an atomic int64 counter.
type Ctr int64

// Add adds inc and returns the new value.
func (a *Ctr) Add(inc int64) int64 {
	return atomic.AddInt64((*int64)(a), inc)
}

// Sub subtracts dec and returns the new value.
func (a *Ctr) Sub(dec int64) int64 {
	return atomic.AddInt64((*int64)(a), -dec)
}

// Dec decrements by one and returns the new value.
func (a *Ctr) Dec() int64 {
	return atomic.AddInt64((*int64)(a), -1)
}

// Value returns the current value.
func (a *Ctr) Value() int64 {
	return atomic.LoadInt64((*int64)(a))
}

// Set stores val, discarding the previous value.
func (a *Ctr) Set(val int64) {
	atomic.StoreInt64((*int64)(a), val)
}
