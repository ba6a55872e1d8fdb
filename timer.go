package mincache

import "time"

// Timer holds the clock used for expiration. Now returns milliseconds since
// the Unix epoch.
type Timer interface {
	Now() uint64
}

// defaultTimer reads the wall clock on every call.
type defaultTimer struct{}

func (timer defaultTimer) Now() uint64 {
	return uint64(time.Now().UnixMilli())
}
