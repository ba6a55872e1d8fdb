package benchmark

import (
	"context"
	"time"

	"github.com/allegro/bigcache/v3"
	"github.com/gogo/protobuf/types"
)

// TestBigCache 使用 bigcache 包实现的 TestCacheIfc 接口
type TestBigCache struct {
	cache *bigcache.BigCache
}

// NewTestBigCache 创建一个新的 TestBigCache 实例
func NewTestBigCache(eviction time.Duration) (*TestBigCache, error) {
	config := bigcache.DefaultConfig(eviction)
	config.Verbose = false // 禁用日志输出
	cache, err := bigcache.New(context.Background(), config)
	if err != nil {
		return nil, err
	}

	return &TestBigCache{
		cache: cache,
	}, nil
}

// Get 实现 TestCacheIfc.Get 方法
func (b *TestBigCache) Get(key string) (*types.Struct, bool) {
	data, err := b.cache.Get(key)
	if err != nil {
		return nil, false
	}

	// 使用 protobuf 反序列化
	value, err := DeserializeTestValue(data)
	if err != nil || value == nil {
		return nil, false
	}

	return value, true
}

// Set 实现 TestCacheIfc.Set 方法
func (b *TestBigCache) Set(key string, value *types.Struct) error {
	// 使用 protobuf 序列化
	data, err := SerializeTestValue(value)
	if err != nil {
		return err
	}

	return b.cache.Set(key, data)
}

// Len 实现 TestCacheIfc.Len 方法
// bigcache 覆盖写会把旧 entry 清零并按 eviction 时间回收队列空间,
// mincache 覆盖写只移动 index, 旧 record 留在 buffer 里算作 orphaned
func (b *TestBigCache) Len() int64 {
	return int64(b.cache.Len())
}

// Close 停掉 bigcache 的后台清理协程, mincache 没有后台协程也就不需要 Close
func (b *TestBigCache) Close() error {
	return b.cache.Close()
}
