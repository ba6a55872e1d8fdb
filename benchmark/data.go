package benchmark

import (
	"fmt"

	"github.com/gogo/protobuf/proto"
	"github.com/gogo/protobuf/types"
)

func GetKey(num int) string {
	// 创建一个唯一的键
	return fmt.Sprintf("test_key_%d", num)
}

func stringValue(s string) *types.Value {
	return &types.Value{Kind: &types.Value_StringValue{StringValue: s}}
}

func numberValue(n float64) *types.Value {
	return &types.Value{Kind: &types.Value_NumberValue{NumberValue: n}}
}

// NewTestValue 创建一个填充了数据的 protobuf Struct
// 参数 num 用于生成不同的测试数据
func NewTestValue(num int) (string, *types.Struct) {
	child := &types.Struct{
		Fields: map[string]*types.Value{
			"id":   numberValue(float64(num + 1000)),
			"name": stringValue(fmt.Sprintf("pb_child_string_%d", num)),
		},
	}

	tags := &types.ListValue{
		Values: []*types.Value{
			stringValue(fmt.Sprintf("pb_tag1_%d", num)),
			stringValue(fmt.Sprintf("pb_tag2_%d", num)),
			numberValue(float64(num) * 1.1),
		},
	}

	return GetKey(num), &types.Struct{
		Fields: map[string]*types.Value{
			"id":    numberValue(float64(num)),
			"name":  stringValue(fmt.Sprintf("test_name_%d", num)),
			"bytes": stringValue(fmt.Sprintf("bytes1_%d_00000000", num)),
			"tags":  {Kind: &types.Value_ListValue{ListValue: tags}},
			"child": {Kind: &types.Value_StructValue{StructValue: child}},
			"ok":    {Kind: &types.Value_BoolValue{BoolValue: num%2 == 0}},
		},
	}
}

// CheckTestValue 检查读到的数据是否和 num 生成的数据一致
func CheckTestValue(num int, data *types.Struct) bool {
	if data == nil {
		fmt.Println("CheckTestValue: data is nil")
		return false
	}

	_, right := NewTestValue(num)
	if !proto.Equal(data, right) {
		fmt.Printf("CheckTestValue: mismatch, got %v, want %v\n", data, right)
		return false
	}
	return true
}
