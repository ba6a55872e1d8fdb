// Package mincache is an in-memory key-value store built as an append-only
// record log plus an index.
//
// Every write appends a self-describing record (expiration, key length, key,
// value) to one growing buffer, and the index maps the key to the byte range
// of its newest record. Overwritten and expired records stay in the buffer;
// nothing is ever reclaimed.
//
// A Cache is not safe for concurrent use. Callers sharing one across
// goroutines must hold a single lock around every call, since appends and
// index updates have to happen together.
package mincache

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"
)

var ErrEmptyName = errors.New("cache name cannot be empty")

// Status tells a Lookup result apart. Get folds everything but Found into a
// plain miss.
type Status uint8

const (
	NotFound Status = iota
	Found
	Expired
	DecodeError
)

func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case NotFound:
		return "not found"
	case Expired:
		return "expired"
	case DecodeError:
		return "decode error"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

type Result struct {
	Status Status
	// Value is a copy of the stored bytes, set only when Status is Found.
	Value []byte
}

// Text returns the value as a string. A found value that is not valid UTF-8
// reports DecodeError.
func (r Result) Text() (string, Status) {
	if r.Status != Found {
		return "", r.Status
	}
	if !utf8.Valid(r.Value) {
		return "", DecodeError
	}
	return string(r.Value), Found
}

// cache instance: one record log, the tail of that log and the key index
type Cache struct {
	Name   string
	buf    *buffer
	tail   uint64
	index  map[string]span
	strict bool
	timer  Timer

	hitCount       int64
	missCount      int64 // miss + hit = read
	expireCount    int64
	decodeErrCount int64
	writeCount     int64
	overwriteCount int64
	orphaned       uint64 // bytes of records no longer reachable from the index
}

// New returns an empty cache with the default config.
func New() *Cache {
	return newCache(DefaultConfig("mincache"))
}

func NewCache(config Config) (*Cache, error) {
	if len(config.Name) == 0 {
		return nil, ErrEmptyName
	}

	if config.InitialSize < 0 {
		return nil, fmt.Errorf("InitialSize must be >= 0, got %d", config.InitialSize)
	}

	if config.CustomTimer == nil {
		config.CustomTimer = defaultTimer{}
	}

	return newCache(config), nil
}

func newCache(config Config) *Cache {
	return &Cache{
		Name:   config.Name,
		buf:    newBuffer(config.InitialSize),
		index:  make(map[string]span),
		strict: config.StrictKeys,
		timer:  config.CustomTimer,
	}
}

// Put stores value under key. The record never expires.
func (cache *Cache) Put(key string, value []byte) error {
	return cache.set(key, value, Never())
}

// PutWithTTL stores value under key, expiring ttlSeconds after the call.
// The ttl is whole seconds; there is no sub-second precision.
func (cache *Cache) PutWithTTL(key string, value []byte, ttlSeconds uint64) error {
	return cache.set(key, value, expireAfter(cache.timer.Now(), ttlSeconds))
}

func (cache *Cache) set(key string, value []byte, exp Expiration) error {
	entryLen, err := encodeRecord(exp, []byte(key), value, cache.buf)
	if err != nil {
		return err
	}

	start := cache.tail
	cache.tail += entryLen
	if cache.tail != cache.buf.Len() {
		panic(fmt.Sprintf("mincache: tail %d out of sync with buffer length %d", cache.tail, cache.buf.Len()))
	}

	// the old record stays in the buffer, only the index moves on
	if old, ok := cache.index[key]; ok {
		cache.overwriteCount++
		cache.orphaned += old.size()
	}
	cache.index[key] = packSpan(start, cache.tail)
	cache.writeCount++
	return nil
}

// Get returns the value stored under key as text. A key that was never
// written, a record that expired and a value that is not valid UTF-8 all
// report false, and all count as misses.
func (cache *Cache) Get(key string) (string, bool) {
	status, value := cache.read(key)
	if status == Found && !utf8.Valid(value) {
		cache.decodeErrCount++
		status = DecodeError
	}
	cache.count(status)
	if status != Found {
		return "", false
	}
	return string(value), true
}

// Lookup returns the raw value under key and why it is missing when it is.
func (cache *Cache) Lookup(key string) Result {
	status, value := cache.read(key)
	cache.count(status)
	return cache.result(status, value)
}

// Peek is Lookup without touching the statistics.
func (cache *Cache) Peek(key string) Result {
	return cache.result(cache.read(key))
}

func (cache *Cache) result(status Status, value []byte) Result {
	if status != Found {
		return Result{Status: status}
	}
	return Result{Status: Found, Value: bytes.Clone(value)}
}

func (cache *Cache) count(status Status) {
	switch status {
	case Found:
		cache.hitCount++
	case Expired:
		cache.expireCount++
		cache.missCount++
	default:
		cache.missCount++
	}
}

// read returns a slice into the buffer, callers must copy before handing it
// out.
func (cache *Cache) read(key string) (Status, []byte) {
	ptr, ok := cache.index[key]
	if !ok {
		return NotFound, nil
	}

	start, end := ptr.bounds()
	value, live := decodeRecord(key, cache.buf.Slice(start, end), cache.timer.Now(), cache.strict)
	if !live {
		return Expired, nil
	}
	return Found, value
}
