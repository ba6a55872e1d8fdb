package benchmark

import (
	"time"

	"github.com/gogo/protobuf/types"
	"github.com/patrickmn/go-cache"
)

// TestGoCache 使用 go-cache 包实现的 TestCacheIfc 接口
// go-cache 直接存指针, 不需要序列化
type TestGoCache struct {
	cache *cache.Cache
}

// NewTestGoCache 创建一个新的 TestGoCache 实例
func NewTestGoCache(defaultExpiration, cleanupInterval time.Duration) *TestGoCache {
	return &TestGoCache{
		cache: cache.New(defaultExpiration, cleanupInterval),
	}
}

// Get 实现 TestCacheIfc.Get 方法
func (g *TestGoCache) Get(key string) (*types.Struct, bool) {
	item, found := g.cache.Get(key)
	if !found {
		return nil, false
	}

	// 类型断言，将接口类型转换为 *types.Struct
	if value, ok := item.(*types.Struct); ok {
		return value, true
	}

	// 如果类型断言失败，返回 false
	return nil, false
}

// Len 实现 TestCacheIfc.Len 方法
// go-cache 有后台 janitor 按 cleanupInterval 删除过期 key, mincache 没有
func (g *TestGoCache) Len() int64 {
	return int64(g.cache.ItemCount())
}

// Set 实现 TestCacheIfc.Set 方法
func (g *TestGoCache) Set(key string, value *types.Struct) error {
	// 使用默认过期时间
	g.cache.Set(key, value, cache.DefaultExpiration)
	return nil
}
