package benchmark

import (
	"sync"

	"github.com/gogo/protobuf/types"
)

type TestMap struct {
	c    map[string]*types.Struct
	lock sync.RWMutex
}

func NewTestMap(size int) *TestMap {
	return &TestMap{
		c: make(map[string]*types.Struct, size),
	}
}

func (m *TestMap) Get(key string) (*types.Struct, bool) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	v, ok := m.c[key]
	return v, ok
}

// Len map 覆盖写直接替换, 不会留下旧数据
func (m *TestMap) Len() int64 {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return int64(len(m.c))
}

func (m *TestMap) Set(key string, value *types.Struct) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.c[key] = value
	return nil
}
