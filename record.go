package mincache

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

const (
	EXPIRATION_SIZE = 16
	KEY_LEN_SIZE    = 2
	// record header: expiration + key length, followed by key and value
	RECORD_HDR_SIZE = EXPIRATION_SIZE + KEY_LEN_SIZE
	MAX_KEY_LEN     = math.MaxUint16
)

var ErrLargeKey = errors.New("The key is larger than 65535")

// Expiration is either Never or an absolute instant in milliseconds since the
// Unix epoch.
type Expiration struct {
	at    uint64
	never bool
}

// Never returns the expiration of a record that lives until overwritten.
func Never() Expiration {
	return Expiration{never: true}
}

// At returns an expiration at ms milliseconds since the Unix epoch.
func At(ms uint64) Expiration {
	return Expiration{at: ms}
}

// expireAfter returns now + ttlSeconds, saturating at the last representable
// instant instead of wrapping.
func expireAfter(now, ttlSeconds uint64) Expiration {
	if ttlSeconds > (math.MaxUint64-now)/1000 {
		return At(math.MaxUint64)
	}
	return At(now + ttlSeconds*1000)
}

func (exp Expiration) IsNever() bool {
	return exp.never
}

// Millis returns the expiration instant. ok is false for Never.
func (exp Expiration) Millis() (ms uint64, ok bool) {
	return exp.at, !exp.never
}

func (exp Expiration) Expired(now uint64) bool {
	return !exp.never && exp.at < now
}

func (exp Expiration) String() string {
	if exp.never {
		return "never"
	}
	return fmt.Sprintf("at(%d)", exp.at)
}

// put writes the 128-bit little-endian wire form. Never is all ones.
func (exp Expiration) put(bs []byte) {
	if exp.never {
		binary.LittleEndian.PutUint64(bs[0:8], math.MaxUint64)
		binary.LittleEndian.PutUint64(bs[8:16], math.MaxUint64)
		return
	}
	binary.LittleEndian.PutUint64(bs[0:8], exp.at)
	binary.LittleEndian.PutUint64(bs[8:16], 0)
}

func readExpiration(bs []byte) Expiration {
	lo := binary.LittleEndian.Uint64(bs[0:8])
	hi := binary.LittleEndian.Uint64(bs[8:16])
	if hi == math.MaxUint64 && lo == math.MaxUint64 {
		return Never()
	}
	if hi != 0 {
		// past the 64-bit millisecond range, never reached by the clock
		return At(math.MaxUint64)
	}
	return At(lo)
}

// recordLen is the encoded size of one record.
func recordLen(key, value []byte) uint64 {
	return RECORD_HDR_SIZE + uint64(len(key)) + uint64(len(value))
}

// encodeRecord appends one record to buf and returns the number of bytes
// appended.
func encodeRecord(exp Expiration, key, value []byte, buf *buffer) (uint64, error) {
	if len(key) > MAX_KEY_LEN {
		return 0, ErrLargeKey
	}

	entryLen := recordLen(key, value)
	bs := buf.Alloc(entryLen)
	// 1. write header
	exp.put(bs[:EXPIRATION_SIZE])
	binary.LittleEndian.PutUint16(bs[EXPIRATION_SIZE:RECORD_HDR_SIZE], uint16(len(key)))

	// 2. write key
	copy(bs[RECORD_HDR_SIZE:], key)

	// 3. write value
	copy(bs[RECORD_HDR_SIZE+len(key):], value)

	return entryLen, nil
}

// decodeRecord returns the value held by record, a sub-slice of it.
// live is false when the record expired before now.
//
// record must be exactly one record produced by encodeRecord. Anything else
// means the index no longer matches the buffer and panics.
func decodeRecord(key string, record []byte, now uint64, strict bool) (value []byte, live bool) {
	if len(record) < RECORD_HDR_SIZE {
		panic(fmt.Sprintf("mincache: record of %d bytes is shorter than its header", len(record)))
	}

	if readExpiration(record).Expired(now) {
		return nil, false
	}

	keyLen := int(binary.LittleEndian.Uint16(record[EXPIRATION_SIZE:RECORD_HDR_SIZE]))
	if RECORD_HDR_SIZE+keyLen > len(record) {
		panic(fmt.Sprintf("mincache: key length %d overruns record of %d bytes", keyLen, len(record)))
	}

	if strict && string(record[RECORD_HDR_SIZE:RECORD_HDR_SIZE+keyLen]) != key {
		panic(fmt.Sprintf("mincache: record holds key %q, index asked for %q",
			record[RECORD_HDR_SIZE:RECORD_HDR_SIZE+keyLen], key))
	}

	return record[RECORD_HDR_SIZE+keyLen:], true
}
