package benchmark

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gogo/protobuf/types"
)

var (
	maxNum       = 1000000
	checkNum     = 100 // 1 write, 99 read times, the 100th time will check the data
	goroutineNum = 100 // 100 goroutines
)

type TestCacheIfc interface {
	Get(key string) (*types.Struct, bool)
	Set(key string, value *types.Struct) error
	// Len 返回当前能被索引到的 key 数量 (含已过期但还没清理的)
	Len() int64
}

type BenchResult struct {
	ReadSuccess  atomic.Uint64
	ReadMiss     atomic.Uint64
	WriteSuccess atomic.Uint64
	WriteFail    atomic.Uint64
	CheckSuccess atomic.Uint64
	CheckFail    atomic.Uint64
}

func rate(part, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func (result *BenchResult) String() string {
	readSuccess, readMiss := result.ReadSuccess.Load(), result.ReadMiss.Load()
	writeSuccess, writeFail := result.WriteSuccess.Load(), result.WriteFail.Load()
	checkSuccess, checkFail := result.CheckSuccess.Load(), result.CheckFail.Load()

	return fmt.Sprintf(
		"\nRead: success=%d miss=%d missRate=%.2f%%\nWrite: success=%d fail=%d failRate=%.2f%%\nCheck: success=%d fail=%d failRate=%.2f%%",
		readSuccess, readMiss, rate(readMiss, readSuccess+readMiss),
		writeSuccess, writeFail, rate(writeFail, writeSuccess+writeFail),
		checkSuccess, checkFail, rate(checkFail, checkSuccess+checkFail),
	)
}

// BenchIfc runs goroutineNum writers/readers against ifc: every round writes
// a key once, reads it checkNum-1 times and checks the last read.
func BenchIfc(b *testing.B, ifc TestCacheIfc) *BenchResult {
	result := &BenchResult{}
	wg := &sync.WaitGroup{}
	wg.Add(goroutineNum)
	for g := 0; g < goroutineNum; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < b.N; i++ {
				id := i % maxNum
				for j := 0; j < checkNum; j++ {
					if j%checkNum == 0 {
						// 1th set
						k, v := NewTestValue(id)
						if err := ifc.Set(k, v); err != nil {
							result.WriteFail.Add(1)
						} else {
							result.WriteSuccess.Add(1)
						}
						continue
					}

					// 2~100th get
					v, ok := ifc.Get(GetKey(id))
					if !ok {
						result.ReadMiss.Add(1)
						continue
					}
					result.ReadSuccess.Add(1)
					if j%checkNum == checkNum-1 {
						// 100th check
						if CheckTestValue(id, v) {
							result.CheckSuccess.Add(1)
						} else {
							result.CheckFail.Add(1)
						}
					}
				}
			}
		}()
	}
	wg.Wait()
	fmt.Println(result.String())
	fmt.Printf("Len: %d\n", ifc.Len())
	return result
}
