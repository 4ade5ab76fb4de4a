// Package anim 每帧插值引擎
//
// 所有动画元素共享一个全局的聚合/散开标志，每帧向当前选中的目标姿态
// 做指数阻尼插值。混合因子与帧耗时成正比，帧率波动不影响过渡曲线；
// 标志可以在过渡中途翻转，插值只是掉头，不会跳变。
//
// 闲置运动（上下浮动/轻微摇摆/自旋/呼吸缩放）永远叠加在插值结果之上，
// 与聚合/散开无关。粒子云不进仲裁区，引擎为其维护扁平的位置缓冲，
// 稳态下每帧成本只有一次 O(粒子数) 的阻尼遍历。
package anim

import (
	"math"

	"github.com/decker502/startree/pkg/decor"
	"github.com/decker502/startree/pkg/geom"
	"github.com/decker502/startree/pkg/scene"
)

// 插值与闲置运动调参
const (
	// particleDampRate 粒子阻尼速率（完整过渡约 1.3 秒，
	// 60fps 下模拟 2 秒必须收敛到 0.01 以内）
	particleDampRate = 3.6
	// elementDampRate 装饰/照片阻尼速率（略快于粒子，有层次感）
	elementDampRate = 4.2

	// idleYawRate 容器基础自转速率 (rad/s)
	idleYawRate = 0.12
	// maxRotationBias 手势旋转偏置上限 (rad/s)
	maxRotationBias = 1.2

	bobAmplitude     = 0.25
	swayAmplitude    = 0.06
	breatheAmplitude = 0.12
	// spinRate 自旋元素的基础角速度 (rad/s), 乘以各自 Speed
	spinRate = 0.8

	// photoBobSpeed 照片相框统一的浮动速率（位置确定性，相位按槽位错开）
	photoBobSpeed  = 0.8
	photoPhaseStep = 0.7
)

// Engine 每帧插值引擎
//
// 单写者模型：输入路径只改 exploded/bias 两个标量，帧更新路径
// 在 Update 中独占读写全部动画状态，渲染端只读快照
type Engine struct {
	exploded   bool
	autoRotate bool
	bias       float64
	yaw        float64
	elapsed    float64

	result *scene.Result
	// pts/blocks 粒子与方块的当前插值位置，与 result 中的切片对齐
	pts    []geom.Vec3
	blocks []geom.Vec3

	arena *scene.Arena
	// kinds 与仲裁区创建顺序对齐的渲染分类
	kinds map[scene.ElementID]decor.Kind
}

// NewEngine 创建引擎，初始为聚合态、自转开启
func NewEngine() *Engine {
	return &Engine{
		autoRotate: true,
		arena:      scene.NewArena(),
		kinds:      make(map[scene.ElementID]decor.Kind),
	}
}

// Mount 挂载一份新的布局数据
//
// 旧数据在生成期间继续支撑动画，生成完成后由持有方调用本方法整体
// 替换。粒子当前位置尽量沿用（按下标对齐的前缀），多出的粒子从各自
// 的散开位起步飞入，少掉的直接丢弃——切换造型时没有任何跳变帧
func (e *Engine) Mount(r *scene.Result) {
	if r == nil {
		return
	}

	var npts, nblocks int
	if r.Cloud != nil {
		npts = len(r.Cloud.Points)
		nblocks = len(r.Cloud.Blocks)
	}

	pts := make([]geom.Vec3, npts)
	for i := range pts {
		if i < len(e.pts) {
			pts[i] = e.pts[i]
		} else {
			pts[i] = r.Cloud.Points[i].Exploded
		}
	}
	blocks := make([]geom.Vec3, nblocks)
	for i := range blocks {
		if i < len(e.blocks) {
			blocks[i] = e.blocks[i]
		} else {
			blocks[i] = r.Cloud.Blocks[i].Exploded
		}
	}

	e.result = r
	e.pts = pts
	e.blocks = blocks

	e.arena.Clear()
	e.kinds = make(map[scene.ElementID]decor.Kind)

	mount := func(p decor.Placement) {
		id := e.arena.Create(scene.AnimationState{
			Assembled: geom.Transform{Pos: p.Pos, Rot: p.Rot, Scale: p.Scale},
			Exploded:  geom.Transform{Pos: p.Exploded, Rot: p.Rot, Scale: p.Scale},
			Color:     p.Color,
			Phase:     p.Phase,
			Speed:     p.Speed,
			Spin:      p.Kind == decor.KindGem || p.Kind == decor.KindCore,
			Breathe:   p.Kind == decor.KindFlower,
			SlotIndex: -1,
		})
		e.kinds[id] = p.Kind
	}
	for _, p := range r.Decor.Baubles {
		mount(p)
	}
	for _, p := range r.Decor.Gifts {
		mount(p)
	}
	for _, p := range r.Decor.Flowers {
		mount(p)
	}
	for _, p := range r.Decor.Gems {
		mount(p)
	}
	for _, p := range r.Decor.Garland {
		mount(p)
	}
	for _, p := range r.Decor.Lights {
		mount(p)
	}
	if r.Decor.Core != nil {
		mount(*r.Decor.Core)
	}

	for _, slot := range r.Slots {
		id := e.arena.Create(scene.AnimationState{
			Assembled: slot.Assembled,
			Exploded:  slot.Exploded,
			Phase:     float64(slot.Index) * photoPhaseStep,
			Speed:     photoBobSpeed,
			SlotIndex: slot.Index,
		})
		e.kinds[id] = decor.KindPhoto
	}
}

// Result 当前挂载的布局数据（未挂载时为 nil）
func (e *Engine) Result() *scene.Result {
	return e.result
}

// SetExploded 设置全局聚合/散开标志
func (e *Engine) SetExploded(v bool) {
	e.exploded = v
}

// Exploded 当前标志
func (e *Engine) Exploded() bool {
	return e.exploded
}

// ToggleExploded 翻转标志（过渡中途翻转只是掉头）
func (e *Engine) ToggleExploded() {
	e.exploded = !e.exploded
}

// SetAutoRotate 开关容器基础自转
func (e *Engine) SetAutoRotate(v bool) {
	e.autoRotate = v
}

// AutoRotate 基础自转是否开启
func (e *Engine) AutoRotate() bool {
	return e.autoRotate
}

// SetRotationBias 设置手势驱动的旋转速度偏置 (rad/s)，超限截断
func (e *Engine) SetRotationBias(v float64) {
	if v > maxRotationBias {
		v = maxRotationBias
	} else if v < -maxRotationBias {
		v = -maxRotationBias
	}
	e.bias = v
}

// RotationBias 当前旋转偏置
func (e *Engine) RotationBias() float64 {
	return e.bias
}

// Yaw 容器累计旋转角 (rad)
func (e *Engine) Yaw() float64 {
	return e.yaw
}

// ParticlePositions 粒子当前插值位置（与 Cloud.Points 按下标对齐）
// 返回内部切片，调用方只读
func (e *Engine) ParticlePositions() []geom.Vec3 {
	return e.pts
}

// BlockPositions 几何方块当前插值位置（与 Cloud.Blocks 按下标对齐）
func (e *Engine) BlockPositions() []geom.Vec3 {
	return e.blocks
}

// Each 按创建顺序遍历全部仲裁区元素，附带渲染分类
func (e *Engine) Each(fn func(st *scene.AnimationState, kind decor.Kind)) {
	e.arena.Each(func(st *scene.AnimationState) {
		fn(st, e.kinds[st.ID])
	})
}

// Len 仲裁区元素数
func (e *Engine) Len() int {
	return e.arena.Len()
}

// Update 推进一帧
//
// dt 为上一帧耗时（秒）。布局数据缺席（切换中途）时跳过对应元素，
// 不报错，数据恢复后自动继续
func (e *Engine) Update(dt float64) {
	if dt <= 0 {
		return
	}
	e.elapsed += dt

	rate := idleYawRate
	if !e.autoRotate {
		rate = 0
	}
	e.yaw += dt * (rate + e.bias)

	e.updateParticles(dt)
	e.updateElements(dt)
	e.arena.Flush()
}

func (e *Engine) updateParticles(dt float64) {
	r := e.result
	if r == nil || r.Cloud == nil {
		return
	}

	factor := geom.DampFactor(dt, particleDampRate)
	for i := range e.pts {
		target := r.Cloud.Points[i].Pos
		if e.exploded {
			target = r.Cloud.Points[i].Exploded
		}
		e.pts[i] = geom.LerpVec(e.pts[i], target, factor)
	}
	for i := range e.blocks {
		target := r.Cloud.Blocks[i].Pos
		if e.exploded {
			target = r.Cloud.Blocks[i].Exploded
		}
		e.blocks[i] = geom.LerpVec(e.blocks[i], target, factor)
	}
}

func (e *Engine) updateElements(dt float64) {
	e.arena.Each(func(st *scene.AnimationState) {
		if !st.HasTarget {
			return
		}

		target := st.Assembled
		if e.exploded {
			target = st.Exploded
		}
		st.Current = geom.DampTransform(st.Current, target, dt, elementDampRate)

		// 闲置运动叠加在插值结果之上，与聚合/散开无关
		st.Render = st.Current
		st.Render.Pos.Y += bobAmplitude * math.Sin(e.elapsed*st.Speed+st.Phase)
		st.Render.Rot.Z = st.Current.Rot.Z + swayAmplitude*math.Sin(e.elapsed*st.Speed*0.7+st.Phase)
		if st.Spin {
			st.Render.Rot.Y = st.Current.Rot.Y + e.elapsed*spinRate*st.Speed
		}
		if st.Breathe {
			st.Render.Scale = st.Current.Scale * (1 + breatheAmplitude*math.Sin(e.elapsed*st.Speed+st.Phase))
		}
	})
}
