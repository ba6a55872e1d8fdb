package benchmark

import (
	"github.com/coocood/freecache"
	"github.com/gogo/protobuf/types"
)

// TestFreeCache 使用 freecache 包实现的 TestCacheIfc 接口
type TestFreeCache struct {
	cache *freecache.Cache
}

// NewTestFreeCache 创建一个新的 TestFreeCache 实例
func NewTestFreeCache(cacheSize int) *TestFreeCache {
	return &TestFreeCache{
		cache: freecache.NewCache(cacheSize),
	}
}

// Get 实现 TestCacheIfc.Get 方法
func (f *TestFreeCache) Get(key string) (*types.Struct, bool) {
	data, err := f.cache.Get(StringToByte(key))
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

// Len 实现 TestCacheIfc.Len 方法
// freecache 是固定大小的环形 buffer, 写满后会淘汰旧 entry,
// 而 mincache 的 buffer 只增不减, 所以同样的写入量下 mincache 的 Len 不会变小
func (f *TestFreeCache) Len() int64 {
	return f.cache.EntryCount()
}

// Set 实现 TestCacheIfc.Set 方法
func (f *TestFreeCache) Set(key string, value *types.Struct) error {
	// 使用 protobuf 序列化
	data, err := SerializeTestValue(value)
	if err != nil {
		return err
	}

	// freecache 需要指定过期时间（秒），这里设置为0表示永不过期
	return f.cache.Set(StringToByte(key), data, 0)
}
