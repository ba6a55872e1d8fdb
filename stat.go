package mincache

// statistics
// EntryCount returns the number of keys in the index, expired ones included.
func (cache *Cache) EntryCount() int64 {
	return int64(len(cache.index))
}

// HitCount is a metric that returns number of times a live record was found.
func (cache *Cache) HitCount() int64 {
	return cache.hitCount
}

// MissCount is a metric that returns the number of times a miss occurred in the cache.
// Expired records count as misses, and so does a Get of a value that is not
// valid UTF-8.
func (cache *Cache) MissCount() int64 {
	return cache.missCount
}

// LookupCount is a metric that returns the number of times a lookup for a given key occurred.
func (cache *Cache) LookupCount() int64 {
	return cache.hitCount + cache.missCount
}

// ExpiredCount is a metric indicating the number of reads that hit an expired record.
func (cache *Cache) ExpiredCount() int64 {
	return cache.expireCount
}

// DecodeErrCount is the number of Get calls whose value was not valid text.
func (cache *Cache) DecodeErrCount() int64 {
	return cache.decodeErrCount
}

// WriteCount is the number of records appended.
func (cache *Cache) WriteCount() int64 {
	return cache.writeCount
}

// OverwriteCount indicates the number of times entries have been overriden.
func (cache *Cache) OverwriteCount() int64 {
	return cache.overwriteCount
}

// HitRate is the ratio of hits over lookups.
func (cache *Cache) HitRate() float64 {
	lookupCount := cache.LookupCount()
	if lookupCount == 0 {
		return 0
	}
	return float64(cache.hitCount) / float64(lookupCount)
}

// MemStat returns the bytes appended to the buffer so far and how many of
// them belong to overwritten records.
func (cache *Cache) MemStat() (used int64, orphaned int64) {
	return int64(cache.tail), int64(cache.orphaned)
}

// ResetStatistics refreshes the current state of the statistics.
// Entry count and memory are not statistics and stay as they are.
func (cache *Cache) ResetStatistics() {
	cache.hitCount = 0
	cache.missCount = 0
	cache.expireCount = 0
	cache.decodeErrCount = 0
	cache.writeCount = 0
	cache.overwriteCount = 0
}
