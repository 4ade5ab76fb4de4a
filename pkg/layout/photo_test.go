package layout

import (
	"math"
	"testing"

	"github.com/decker502/startree/pkg/shape"
	"github.com/decker502/startree/pkg/types"
)

// TestCompute_Deterministic 测试照片布局的确定性
// 同样的 (照片数, 造型) 两次计算，每个序号的聚合变换必须逐位相同
func TestCompute_Deterministic(t *testing.T) {
	for _, count := range []int{1, 24, 100} {
		a := Compute(count, types.ShapeTree)
		b := Compute(count, types.ShapeTree)
		if len(a) != len(b) {
			t.Fatalf("槽位数不一致: %d vs %d", len(a), len(b))
		}
		for i := range a {
			if a[i].Assembled != b[i].Assembled {
				t.Fatalf("序号 %d 的聚合变换不确定: %v vs %v", i, a[i].Assembled, b[i].Assembled)
			}
			if a[i].Exploded != b[i].Exploded {
				t.Fatalf("序号 %d 的散开变换不确定", i)
			}
		}
	}
}

// TestCompute_DefaultCount 测试照片数为 0/负数时回退到默认占位数
func TestCompute_DefaultCount(t *testing.T) {
	tests := []struct {
		name  string
		count int
	}{
		{"零", 0},
		{"负数", -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := Compute(tt.count, types.ShapeCrystal)
			if len(slots) != DefaultSlotCount {
				t.Errorf("槽位数 = %d, 期望 %d", len(slots), DefaultSlotCount)
			}
		})
	}
}

// TestCompute_AnglesDistinct 测试黄金角螺旋的角度分散
// 相邻序号的角度差（模 2π）不得小于一个小阈值（N ≤ 200）
func TestCompute_AnglesDistinct(t *testing.T) {
	slots := Compute(200, types.ShapeTree)

	angle := func(s Slot) float64 {
		return math.Atan2(s.Assembled.Pos.Z, s.Assembled.Pos.X)
	}
	for i := 1; i < len(slots); i++ {
		diff := math.Abs(angle(slots[i]) - angle(slots[i-1]))
		if diff > math.Pi {
			diff = 2*math.Pi - diff
		}
		if diff < 0.05 {
			t.Errorf("序号 %d 与 %d 的角度差 %v 过小", i-1, i, diff)
		}
	}
}

// TestCompute_OutsideSilhouette 测试相框浮在轮廓之外不与主体相交
func TestCompute_OutsideSilhouette(t *testing.T) {
	slots := Compute(24, types.ShapeTree)

	for _, s := range slots {
		r := math.Hypot(s.Assembled.Pos.X, s.Assembled.Pos.Z)
		profile := shape.RadiusAt(s.Assembled.Pos.Y, types.ShapeTree)
		if r < profile+photoOffset-0.001 {
			t.Errorf("序号 %d 的相框嵌进主体: r=%v, 轮廓=%v", s.Index, r, profile)
		}
	}
}

// TestCompute_ShortShapeHeights 测试矮造型的高度范围贴合自身轮廓
// 叠凳/雪人等轮廓顶端低于 ±9 的造型，任何槽位都不得落在
// 轮廓半径为零的高度（否则相框塌缩成主体上方的细柱）
func TestCompute_ShortShapeHeights(t *testing.T) {
	for _, s := range []types.ShapeKind{
		types.ShapeStool, types.ShapeSnowman, types.ShapeSanta, types.ShapeReindeer,
	} {
		for _, slot := range Compute(24, s) {
			y := slot.Assembled.Pos.Y
			profile := shape.RadiusAt(y, s)
			if profile <= 0 {
				t.Errorf("造型 %v 序号 %d 落在轮廓为零的高度 y=%v", s, slot.Index, y)
				continue
			}
			r := math.Hypot(slot.Assembled.Pos.X, slot.Assembled.Pos.Z)
			if math.Abs(r-(profile+photoOffset)) > 0.001 {
				t.Errorf("造型 %v 序号 %d 半径 %v 未贴合轮廓 %v", s, slot.Index, r, profile+photoOffset)
			}
		}
	}
}

// TestCompute_OutwardFacing 测试相框朝向背离中轴再翻转 180°
func TestCompute_OutwardFacing(t *testing.T) {
	slots := Compute(24, types.ShapeTree)

	for _, s := range slots {
		expected := math.Atan2(s.Assembled.Pos.X, s.Assembled.Pos.Z) + math.Pi
		if math.Abs(s.Assembled.Rot.Y-expected) > 0.001 {
			t.Errorf("序号 %d 朝向 %v, 期望 %v", s.Index, s.Assembled.Rot.Y, expected)
		}
	}
}

// TestTable_StableSlots 测试增删照片不影响其他槽位
func TestTable_StableSlots(t *testing.T) {
	photos := []Photo{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	table := NewTable(photos, types.ShapeTree)

	before := table.Slot(1).Assembled
	table.SetPhoto(0, "x")
	table.RemovePhoto(2)

	if table.Slot(1).Assembled != before {
		t.Error("槽位 1 的布局不应因其他槽位变动而改变")
	}
	if !table.Photo(2).Empty {
		t.Error("移除后槽位 2 应标记为空")
	}
	if table.Photo(2).Version != 1 {
		t.Errorf("移除应递增版本, got %d", table.Photo(2).Version)
	}
	if table.Photo(0).ID != "x" || table.Photo(0).Version != 1 {
		t.Errorf("SetPhoto 结果异常: %+v", table.Photo(0))
	}
}

// TestTable_EmptyPhotos 测试空照片列表建立默认占位槽位
func TestTable_EmptyPhotos(t *testing.T) {
	table := NewTable(nil, types.ShapeCrystal)
	if table.Len() != DefaultSlotCount {
		t.Fatalf("槽位数 = %d, 期望 %d", table.Len(), DefaultSlotCount)
	}
	for i := 0; i < table.Len(); i++ {
		if !table.Photo(i).Empty {
			t.Fatalf("槽位 %d 应为空", i)
		}
	}
}

// TestTable_OutOfRange 测试越界访问不崩溃
func TestTable_OutOfRange(t *testing.T) {
	table := NewTable(nil, types.ShapeTree)
	table.SetPhoto(-1, "x")
	table.SetPhoto(999, "y")
	table.RemovePhoto(-2)
	if s := table.Slot(999); s.Index != -1 {
		t.Error("越界槽位应返回无效序号")
	}
	if p := table.Photo(-1); !p.Empty {
		t.Error("越界照片应返回空照片")
	}
}
