package main

import (
	"fmt"
	"io"
	"time"

	"github.com/yuadsl3010/mincache"
)

func run(opts Opts, out io.Writer) error {
	config := mincache.DefaultConfig("mincache-demo")
	config.StrictKeys = opts.Strict
	cache, err := mincache.NewCache(config)
	if err != nil {
		return err
	}

	if err := cache.Put(opts.Key, []byte(opts.Value)); err != nil {
		return fmt.Errorf("put %q failed: %w", opts.Key, err)
	}
	printGet(out, cache, opts.Key)

	ttlKey := opts.Key + ttlSuffix
	if err := cache.PutWithTTL(ttlKey, []byte(opts.Value), opts.TTL); err != nil {
		return fmt.Errorf("put %q failed: %w", ttlKey, err)
	}
	printGet(out, cache, ttlKey)

	if opts.Wait > 0 {
		fmt.Fprintf(out, "sleep %s\n", opts.Wait)
		time.Sleep(opts.Wait)
		printGet(out, cache, opts.Key)
		printGet(out, cache, ttlKey)
	}

	used, orphaned := cache.MemStat()
	fmt.Fprintf(out, "entries=%d hits=%d misses=%d expired=%d used=%dB orphaned=%dB\n",
		cache.EntryCount(), cache.HitCount(), cache.MissCount(), cache.ExpiredCount(), used, orphaned)
	return nil
}

func printGet(out io.Writer, cache *mincache.Cache, key string) {
	value, ok := cache.Get(key)
	if !ok {
		fmt.Fprintf(out, "get %s: <none>\n", key)
		return
	}
	fmt.Fprintf(out, "get %s: %q\n", key, value)
}
