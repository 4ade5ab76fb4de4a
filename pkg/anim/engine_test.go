package anim

import (
	"math"
	"testing"

	"github.com/decker502/startree/pkg/decor"
	"github.com/decker502/startree/pkg/geom"
	"github.com/decker502/startree/pkg/layout"
	"github.com/decker502/startree/pkg/scene"
	"github.com/decker502/startree/pkg/shape"
)

const frameDt = 1.0 / 60.0

// testResult 构造一份最小布局数据：一个粒子、一个挂饰球、一个照片槽位
func testResult() *scene.Result {
	return &scene.Result{
		Cloud: &shape.Cloud{
			Points: []shape.Point{
				{Pos: geom.Vec3{Y: 2}, Exploded: geom.Vec3{X: 30, Y: 2}},
			},
		},
		Decor: decor.Set{
			Baubles: []decor.Placement{
				{
					Kind:     decor.KindBauble,
					Pos:      geom.Vec3{X: 3},
					Exploded: geom.Vec3{X: 28},
					Scale:    1,
					Phase:    0.5,
					Speed:    1.2,
				},
			},
		},
		Slots: []layout.Slot{
			{
				Index:     0,
				Assembled: geom.Transform{Pos: geom.Vec3{X: 5}, Scale: 1},
				Exploded:  geom.Transform{Pos: geom.Vec3{X: 32}, Scale: 1},
			},
		},
	}
}

func step(e *Engine, seconds float64) {
	n := int(seconds / frameDt)
	for i := 0; i < n; i++ {
		e.Update(frameDt)
	}
}

// TestEngine_Convergence 测试粒子从散开位收敛到聚合位
func TestEngine_Convergence(t *testing.T) {
	e := NewEngine()
	e.Mount(testResult())

	// 首次挂载粒子从散开位起步飞入
	if got := e.ParticlePositions()[0]; got.Dist(geom.Vec3{X: 30, Y: 2}) > 1e-9 {
		t.Fatalf("挂载后粒子应位于散开位, 实际 %v", got)
	}

	step(e, 3.0)
	if d := e.ParticlePositions()[0].Dist(geom.Vec3{Y: 2}); d > 0.05 {
		t.Errorf("3 秒后到聚合位距离 = %.4f, 期望 < 0.05", d)
	}
}

// TestEngine_ToggleNoJump 测试过渡中途翻转标志不会跳变
func TestEngine_ToggleNoJump(t *testing.T) {
	e := NewEngine()
	e.Mount(testResult())
	step(e, 0.5) // 收敛到一半左右

	before := e.ParticlePositions()[0]
	e.ToggleExploded()
	e.Update(frameDt)
	after := e.ParticlePositions()[0]

	// 单帧位移不超过 到新目标距离 × 混合因子
	target := geom.Vec3{X: 30, Y: 2}
	limit := before.Dist(target)*geom.DampFactor(frameDt, particleDampRate) + 1e-9
	if moved := after.Dist(before); moved > limit {
		t.Errorf("翻转后单帧位移 %.4f 超过上限 %.4f", moved, limit)
	}
}

// TestEngine_SkipMissingData 测试数据缺席时跳过更新而非崩溃
func TestEngine_SkipMissingData(t *testing.T) {
	e := NewEngine()
	// 未挂载任何数据
	e.Update(frameDt)
	e.Mount(nil)
	e.Update(frameDt)

	e.Mount(testResult())
	e.SetExploded(true)

	// 模拟切换中途目标数据缺席的元素
	var frozen geom.Transform
	e.Each(func(st *scene.AnimationState, _ decor.Kind) {
		if st.SlotIndex == 0 {
			st.HasTarget = false
			frozen = st.Current
		}
	})
	step(e, 1.0)

	e.Each(func(st *scene.AnimationState, _ decor.Kind) {
		if st.SlotIndex == 0 && st.Current != frozen {
			t.Errorf("缺席目标的元素不应被更新: %v -> %v", frozen, st.Current)
		}
	})
}

// TestEngine_IdleSuperimposed 测试闲置浮动叠加在插值结果之上
func TestEngine_IdleSuperimposed(t *testing.T) {
	e := NewEngine()
	e.Mount(testResult())
	step(e, 3.0) // 充分收敛

	var maxDev float64
	for i := 0; i < 240; i++ {
		e.Update(frameDt)
		e.Each(func(st *scene.AnimationState, kind decor.Kind) {
			if kind != decor.KindBauble {
				return
			}
			dev := math.Abs(st.Render.Pos.Y - st.Current.Pos.Y)
			if dev > maxDev {
				maxDev = dev
			}
		})
	}
	if maxDev < 0.05 {
		t.Errorf("浮动偏移峰值 = %.4f, 闲置运动未生效", maxDev)
	}
	if maxDev > bobAmplitude+1e-6 {
		t.Errorf("浮动偏移峰值 = %.4f 超过振幅 %.2f", maxDev, bobAmplitude)
	}
}

// TestEngine_ContainerRotation 测试容器旋转累计与偏置截断
func TestEngine_ContainerRotation(t *testing.T) {
	e := NewEngine()
	step(e, 2.0)
	want := 2.0 * idleYawRate
	if math.Abs(e.Yaw()-want) > 0.01 {
		t.Errorf("Yaw = %.4f, 期望约 %.4f", e.Yaw(), want)
	}

	e.SetAutoRotate(false)
	y := e.Yaw()
	step(e, 1.0)
	if e.Yaw() != y {
		t.Error("关闭自转且无偏置时旋转角不应变化")
	}

	e.SetRotationBias(10)
	if e.RotationBias() != maxRotationBias {
		t.Errorf("偏置应截断到 %.2f, 实际 %.2f", maxRotationBias, e.RotationBias())
	}
	e.SetRotationBias(-10)
	if e.RotationBias() != -maxRotationBias {
		t.Errorf("负偏置应截断到 %.2f, 实际 %.2f", -maxRotationBias, e.RotationBias())
	}
	step(e, 1.0)
	if e.Yaw() >= y {
		t.Error("负偏置下旋转角应减小")
	}
}

// TestEngine_RemountContinuity 测试重新挂载时粒子位置连续
func TestEngine_RemountContinuity(t *testing.T) {
	e := NewEngine()
	e.Mount(testResult())
	step(e, 0.5)
	mid := e.ParticlePositions()[0]

	// 新布局同样有一个粒子，当前位置应沿用
	next := testResult()
	next.Cloud.Points[0].Pos = geom.Vec3{X: -5}
	e.Mount(next)
	if got := e.ParticlePositions()[0]; got != mid {
		t.Errorf("重挂载后粒子位置应沿用 %v, 实际 %v", mid, got)
	}

	// 多出的粒子从散开位起步
	more := testResult()
	more.Cloud.Points = append(more.Cloud.Points, shape.Point{
		Pos: geom.Vec3{Y: 1}, Exploded: geom.Vec3{Z: 26},
	})
	e.Mount(more)
	if got := e.ParticlePositions()[1]; got != (geom.Vec3{Z: 26}) {
		t.Errorf("新增粒子应从散开位起步, 实际 %v", got)
	}
}

// TestEngine_MountElements 测试装饰与照片全部登记进仲裁区
func TestEngine_MountElements(t *testing.T) {
	e := NewEngine()
	e.Mount(testResult())

	counts := map[decor.Kind]int{}
	e.Each(func(_ *scene.AnimationState, kind decor.Kind) {
		counts[kind]++
	})
	if counts[decor.KindBauble] != 1 {
		t.Errorf("挂饰球数 = %d, 期望 1", counts[decor.KindBauble])
	}
	if counts[decor.KindPhoto] != 1 {
		t.Errorf("照片数 = %d, 期望 1", counts[decor.KindPhoto])
	}
	if e.Len() != 2 {
		t.Errorf("仲裁区元素数 = %d, 期望 2", e.Len())
	}
}
