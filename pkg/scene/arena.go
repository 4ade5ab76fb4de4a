// Package scene 管理动画元素仲裁区与布局缓存
//
// 仲裁区（arena）持有所有实例化元素的动画状态记录，按稳定的元素 ID
// 索引；每帧的更新遍历仲裁区并写入新变换，渲染端只读当前快照。
// 生成器产出的静止姿态在创建时播种一次，之后归动画引擎独占可写。
package scene

import "github.com/decker502/startree/pkg/geom"

// ElementID 动画元素的唯一标识符
// ID 从 1 开始，0 保留为无效 ID
type ElementID uint64

// AnimationState 单个元素的动画状态记录
//
// Current 持续向当前选中的目标（聚合/散开）插值，除首次挂载外不跳变；
// Render 为每帧叠加闲置运动后的输出变换，渲染端读取它而非 Current
type AnimationState struct {
	ID ElementID

	// Current 当前插值位置（阻尼的基准姿态）
	Current geom.Transform
	// Assembled / Exploded 生成器播种的两个终点姿态（静止姿态，只读）
	Assembled geom.Transform
	Exploded  geom.Transform
	// Render 叠加闲置运动后的最终输出
	Render geom.Transform

	// Color 元素颜色（仲裁区持有，渲染端直接取用）
	Color geom.RGB

	// Phase/Speed 生成时随机的闲置动画参数
	Phase float64
	Speed float64
	// Spin 持续慢速自旋（宝石、水晶核心）
	Spin bool
	// Breathe 呼吸式缩放（花朵）
	Breathe bool

	// HasTarget 目标数据是否就绪；造型切换期间可能短暂为 false，
	// 引擎对这类元素跳过本帧更新，数据恢复后自动继续
	HasTarget bool

	// SlotIndex 照片槽位序号，非照片元素为 -1
	SlotIndex int

	// Scale 基准缩放（Render.Scale 在此基础上叠加呼吸）
	Scale float64
}

// Arena 动画状态仲裁区
// 记录按创建顺序遍历；销毁为延迟删除，帧末统一清理
type Arena struct {
	nextID    ElementID
	order     []ElementID
	states    map[ElementID]*AnimationState
	toDestroy []ElementID
}

// NewArena 创建空仲裁区
func NewArena() *Arena {
	return &Arena{
		nextID: 1,
		states: make(map[ElementID]*AnimationState),
	}
}

// Create 登记一个新元素并返回其 ID
// 首次挂载时 Current 直接取聚合姿态（唯一允许的"跳变"）
func (a *Arena) Create(st AnimationState) ElementID {
	id := a.nextID
	a.nextID++

	st.ID = id
	st.Current = st.Assembled
	st.Render = st.Assembled
	if st.Scale == 0 {
		st.Scale = st.Assembled.Scale
	}
	st.HasTarget = true

	a.states[id] = &st
	a.order = append(a.order, id)
	return id
}

// Get 按 ID 取元素状态
func (a *Arena) Get(id ElementID) (*AnimationState, bool) {
	st, ok := a.states[id]
	return st, ok
}

// Destroy 标记元素待删除（不立即删除，帧末 Flush 统一清理）
func (a *Arena) Destroy(id ElementID) {
	a.toDestroy = append(a.toDestroy, id)
}

// Flush 清理所有标记删除的元素
func (a *Arena) Flush() {
	if len(a.toDestroy) == 0 {
		return
	}
	dead := make(map[ElementID]bool, len(a.toDestroy))
	for _, id := range a.toDestroy {
		delete(a.states, id)
		dead[id] = true
	}
	a.toDestroy = a.toDestroy[:0]

	kept := a.order[:0]
	for _, id := range a.order {
		if !dead[id] {
			kept = append(kept, id)
		}
	}
	a.order = kept
}

// Each 按创建顺序遍历所有元素
func (a *Arena) Each(fn func(*AnimationState)) {
	for _, id := range a.order {
		if st, ok := a.states[id]; ok {
			fn(st)
		}
	}
}

// Len 当前元素数
func (a *Arena) Len() int {
	return len(a.states)
}

// Clear 清空仲裁区（造型切换时整体重建）
func (a *Arena) Clear() {
	a.states = make(map[ElementID]*AnimationState)
	a.order = a.order[:0]
	a.toDestroy = a.toDestroy[:0]
}
