package mincache

import "fmt"

// span is the index value: a 128-bit word holding the [start, end) range of
// a record, start in the high half and end in the low half.
type span struct {
	hi uint64
	lo uint64
}

func packSpan(start, end uint64) span {
	if start > end {
		panic(fmt.Sprintf("mincache: inverted range [%d, %d)", start, end))
	}
	return span{hi: start, lo: end}
}

func (s span) bounds() (start, end uint64) {
	return s.hi, s.lo
}

func (s span) size() uint64 {
	return s.lo - s.hi
}
