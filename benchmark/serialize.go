package benchmark

import (
	"unsafe"

	"github.com/gogo/protobuf/proto"
	"github.com/gogo/protobuf/types"
)

// SerializeTestValue 使用 protobuf 将测试数据序列化为字节数组
// byte 类的缓存 (freecache, bigcache, mincache) 只能存字节
func SerializeTestValue(value *types.Struct) ([]byte, error) {
	if value == nil {
		return nil, nil
	}
	return proto.Marshal(value)
}

// DeserializeTestValue 从字节数组反序列化测试数据
func DeserializeTestValue(data []byte) (*types.Struct, error) {
	if len(data) == 0 {
		return nil, nil
	}

	value := &types.Struct{}
	if err := proto.Unmarshal(data, value); err != nil {
		return nil, err
	}
	return value, nil
}

// StringToByte 高性能强转string->[]byte, 返回值不能被修改
func StringToByte(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
