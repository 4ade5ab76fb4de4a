package scene

import (
	"testing"

	"github.com/decker502/startree/pkg/geom"
)

// TestArena_CreateAndGet 测试元素登记与查询
func TestArena_CreateAndGet(t *testing.T) {
	a := NewArena()

	id := a.Create(AnimationState{
		Assembled: geom.Transform{Pos: geom.Vec3{X: 1}, Scale: 1},
		Exploded:  geom.Transform{Pos: geom.Vec3{X: 30}, Scale: 1},
		SlotIndex: -1,
	})
	if id == 0 {
		t.Fatal("ID 0 保留为无效 ID")
	}

	st, ok := a.Get(id)
	if !ok {
		t.Fatal("应能查到刚创建的元素")
	}
	// 首次挂载：Current 直接取聚合姿态
	if st.Current != st.Assembled {
		t.Errorf("首次挂载 Current 应等于聚合姿态: %v", st.Current)
	}
	if !st.HasTarget {
		t.Error("创建后目标数据应就绪")
	}
}

// TestArena_DeferredDestroy 测试延迟删除：Flush 前仍可访问
func TestArena_DeferredDestroy(t *testing.T) {
	a := NewArena()
	id1 := a.Create(AnimationState{SlotIndex: -1})
	id2 := a.Create(AnimationState{SlotIndex: -1})

	a.Destroy(id1)
	if _, ok := a.Get(id1); !ok {
		t.Error("Flush 之前元素应仍然存在")
	}

	a.Flush()
	if _, ok := a.Get(id1); ok {
		t.Error("Flush 之后元素应被删除")
	}
	if _, ok := a.Get(id2); !ok {
		t.Error("未标记的元素不应被删除")
	}
	if a.Len() != 1 {
		t.Errorf("Len = %d, 期望 1", a.Len())
	}
}

// TestArena_EachOrder 测试按创建顺序遍历
func TestArena_EachOrder(t *testing.T) {
	a := NewArena()
	var created []ElementID
	for i := 0; i < 5; i++ {
		created = append(created, a.Create(AnimationState{SlotIndex: i}))
	}

	var visited []ElementID
	a.Each(func(st *AnimationState) {
		visited = append(visited, st.ID)
	})

	if len(visited) != len(created) {
		t.Fatalf("遍历到 %d 个元素, 期望 %d", len(visited), len(created))
	}
	for i := range created {
		if visited[i] != created[i] {
			t.Fatalf("遍历顺序与创建顺序不一致: %v vs %v", visited, created)
		}
	}
}

// TestArena_Clear 测试整体清空
func TestArena_Clear(t *testing.T) {
	a := NewArena()
	a.Create(AnimationState{SlotIndex: -1})
	a.Create(AnimationState{SlotIndex: -1})
	a.Clear()
	if a.Len() != 0 {
		t.Errorf("清空后 Len = %d", a.Len())
	}
	// 清空后仍可继续创建
	if id := a.Create(AnimationState{SlotIndex: -1}); id == 0 {
		t.Error("清空后创建失败")
	}
}
