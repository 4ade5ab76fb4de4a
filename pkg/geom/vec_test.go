package geom

import (
	"math"
	"testing"
)

// TestDampFactor 测试混合系数的截断行为
func TestDampFactor(t *testing.T) {
	tests := []struct {
		name     string
		dt       float64
		rate     float64
		expected float64
	}{
		{"正常帧", 1.0 / 60.0, 3.0, 0.05},
		{"超长帧截断到1", 2.0, 3.0, 1.0},
		{"负时间截断到0", -0.1, 3.0, 0.0},
		{"零时间", 0.0, 3.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DampFactor(tt.dt, tt.rate)
			if math.Abs(got-tt.expected) > 0.001 {
				t.Errorf("DampFactor(%v, %v) = %v, 期望 %v", tt.dt, tt.rate, got, tt.expected)
			}
		})
	}
}

// TestDampVec_Convergence 测试指数平滑收敛性
// 固定目标、固定帧时长反复更新时，到目标的距离必须严格递减，
// 并在模拟 2 秒（60fps）内收敛到 0.01 以内
func TestDampVec_Convergence(t *testing.T) {
	const (
		dt   = 1.0 / 60.0
		rate = 3.6
	)
	current := Vec3{10, -4, 7}
	target := Vec3{0, 0, 0}

	prevDist := current.Dist(target)
	for i := 0; i < 120; i++ {
		current = DampVec(current, target, dt, rate)
		d := current.Dist(target)
		if d >= prevDist {
			t.Fatalf("第 %d 帧距离未递减: %v >= %v", i, d, prevDist)
		}
		prevDist = d
	}
	if prevDist > 0.01 {
		t.Errorf("模拟 2 秒后距离 = %v, 期望 < 0.01", prevDist)
	}
}

// TestDampVec_ToggleNoJump 测试中途翻转目标不产生跳变
// 任何一帧的位移都不能超过该帧混合系数允许的最大步长
func TestDampVec_ToggleNoJump(t *testing.T) {
	const (
		dt   = 1.0 / 60.0
		rate = 3.6
	)
	assembled := Vec3{0, 0, 0}
	exploded := Vec3{20, 5, -12}

	current := assembled
	target := exploded
	for i := 0; i < 90; i++ {
		// 第 30 帧翻转目标，第 60 帧翻转回来
		if i == 30 {
			target = assembled
		}
		if i == 60 {
			target = exploded
		}
		next := DampVec(current, target, dt, rate)
		step := next.Dist(current)
		maxStep := current.Dist(target) * DampFactor(dt, rate)
		if step > maxStep+1e-9 {
			t.Fatalf("第 %d 帧步长 %v 超过上限 %v", i, step, maxStep)
		}
		current = next
	}
}

// TestQuadBlend 测试二次贝塞尔混合的端点与中点
func TestQuadBlend(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{1, 2, 0}
	c := Vec3{2, 0, 0}

	tests := []struct {
		name     string
		t        float64
		expected Vec3
	}{
		{"起点", 0.0, a},
		{"终点", 1.0, c},
		{"中点", 0.5, Vec3{1, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuadBlend(a, b, c, tt.t)
			if got.Dist(tt.expected) > 0.001 {
				t.Errorf("QuadBlend(t=%v) = %v, 期望 %v", tt.t, got, tt.expected)
			}
		})
	}
}

// TestNormalize_Zero 测试零向量归一化的回退方向
func TestNormalize_Zero(t *testing.T) {
	v := Vec3{}.Normalize()
	if v.Dist(Vec3{0, 1, 0}) > 0.001 {
		t.Errorf("零向量归一化 = %v, 期望 (0,1,0)", v)
	}
}

// TestRotateY 测试绕 Y 轴旋转
func TestRotateY(t *testing.T) {
	v := Vec3{1, 5, 0}.RotateY(math.Pi / 2)
	if math.Abs(v.Y-5) > 0.001 || math.Abs(v.Length()-math.Sqrt(26)) > 0.001 {
		t.Errorf("RotateY 改变了 Y 分量或长度: %v", v)
	}
}
