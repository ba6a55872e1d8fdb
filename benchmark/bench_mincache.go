package benchmark

import (
	"sync"

	"github.com/gogo/protobuf/types"
	"github.com/yuadsl3010/mincache"
)

// TestMinCache 使用 mincache 实现的 TestCacheIfc 接口
// mincache 本身没有锁, 这里用一把大锁包住整个 cache:
// 写入要同时修改 buffer 和 index, 读取也会更新统计, 所以不能用读写锁
type TestMinCache struct {
	Cache *mincache.Cache
	ttl   uint64 // seconds, 0 means never expire
	lock  sync.Mutex
}

// NewTestMinCache 创建一个新的 TestMinCache 实例
func NewTestMinCache(initialSizeMB int64, ttlSeconds uint64) (*TestMinCache, error) {
	config := mincache.DefaultConfig("TestMinCache")
	config.InitialSize = initialSizeMB * 1024 * 1024
	c, err := mincache.NewCache(config)
	if err != nil {
		return nil, err
	}

	return &TestMinCache{
		Cache: c,
		ttl:   ttlSeconds,
	}, nil
}

// Get 实现 TestCacheIfc.Get 方法
// protobuf 数据不一定是合法的 UTF-8, 所以用 Lookup 读原始字节而不是 Get
func (m *TestMinCache) Get(key string) (*types.Struct, bool) {
	m.lock.Lock()
	result := m.Cache.Lookup(key)
	m.lock.Unlock()
	if result.Status != mincache.Found {
		return nil, false
	}

	value, err := DeserializeTestValue(result.Value)
	if err != nil || value == nil {
		return nil, false
	}
	return value, true
}

// Set 实现 TestCacheIfc.Set 方法
func (m *TestMinCache) Set(key string, value *types.Struct) error {
	data, err := SerializeTestValue(value)
	if err != nil {
		return err
	}

	m.lock.Lock()
	defer m.lock.Unlock()
	if m.ttl > 0 {
		return m.Cache.PutWithTTL(key, data, m.ttl)
	}
	return m.Cache.Put(key, data)
}

// Len 实现 TestCacheIfc.Len 方法
// 过期的 key 只在读到时才被发现, 不会从 index 删除, 所以依然计入 Len
func (m *TestMinCache) Len() int64 {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.Cache.EntryCount()
}

// Stats 在锁内读取统计数据
func (m *TestMinCache) Stats() (hitRate float64, entries, used, orphaned int64) {
	m.lock.Lock()
	defer m.lock.Unlock()
	used, orphaned = m.Cache.MemStat()
	return m.Cache.HitRate(), m.Cache.EntryCount(), used, orphaned
}
