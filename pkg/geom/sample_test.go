package geom

import (
	"math"
	"math/rand"
	"testing"
)

// TestGoldenAngle_Value 测试黄金角字面值与公式 π(3-√5) 一致
func TestGoldenAngle_Value(t *testing.T) {
	expected := math.Pi * (3 - math.Sqrt(5))
	if math.Abs(GoldenAngle-expected) > 1e-12 {
		t.Errorf("GoldenAngle = %v, 期望 π(3-√5) = %v", GoldenAngle, expected)
	}
}

// TestSqrtDisk_Uniformity 测试 sqrt 圆盘采样的面密度均匀性
// 将半径分成若干环带，每个环带内的点数除以环带面积应近似相等
// （直接使用 uniform 采样会导致内环密度明显偏高）
func TestSqrtDisk_Uniformity(t *testing.T) {
	const (
		n       = 200000
		radius  = 10.0
		bins    = 10
		maxSkew = 0.1 // 各环带面密度偏离均值不超过 10%
	)
	rng := rand.New(rand.NewSource(42))

	counts := make([]int, bins)
	for i := 0; i < n; i++ {
		r := SqrtDisk(rng, radius)
		if r < 0 || r > radius {
			t.Fatalf("采样半径越界: %v", r)
		}
		bin := int(r / radius * bins)
		if bin == bins {
			bin = bins - 1
		}
		counts[bin]++
	}

	totalArea := math.Pi * radius * radius
	for i, c := range counts {
		inner := float64(i) / bins * radius
		outer := float64(i+1) / bins * radius
		area := math.Pi * (outer*outer - inner*inner)
		density := float64(c) / area
		expected := float64(n) / totalArea
		if math.Abs(density-expected)/expected > maxSkew {
			t.Errorf("环带 %d 面密度 %v 偏离期望 %v 超过 %v%%", i, density, expected, maxSkew*100)
		}
	}
}

// TestInSphere_Containment 测试球内拒绝采样的终止性与包含性
// 任何返回点到球心的距离都不得超过半径（包括回退情形）
func TestInSphere_Containment(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	center := Vec3{3, -2, 5}
	const radius = 2.5

	for i := 0; i < 10000; i++ {
		p := InSphere(rng, center, radius)
		if p.Dist(center) > radius+1e-9 {
			t.Fatalf("第 %d 个采样点越出球体: dist=%v", i, p.Dist(center))
		}
	}
}

// TestOnSphereSurface 测试球面采样的半径精度
func TestOnSphereSurface(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	center := Vec3{0, 4, 0}
	const radius = 1.7

	for i := 0; i < 5000; i++ {
		p := OnSphereSurface(rng, center, radius)
		if math.Abs(p.Dist(center)-radius) > 1e-9 {
			t.Fatalf("第 %d 个点不在球面上: dist=%v", i, p.Dist(center))
		}
	}
}

// TestSpiralAngle_Separation 测试黄金角螺旋相邻角度不聚集
// 对 N ≤ 200，任意相邻序号的角度差（模 2π）不得小于一个小阈值
func TestSpiralAngle_Separation(t *testing.T) {
	const (
		n       = 200
		epsilon = 0.05
	)
	for i := 1; i < n; i++ {
		a := math.Mod(SpiralAngle(i-1, 1.0), 2*math.Pi)
		b := math.Mod(SpiralAngle(i, 1.0), 2*math.Pi)
		diff := math.Abs(a - b)
		if diff > math.Pi {
			diff = 2*math.Pi - diff
		}
		if diff < epsilon {
			t.Errorf("序号 %d 与 %d 的角度差 %v 过小", i-1, i, diff)
		}
	}
}

// TestDrapePhase 测试垂挂相位的取值范围与周期
func TestDrapePhase(t *testing.T) {
	for a := 0.0; a < 4*math.Pi; a += 0.01 {
		p := DrapePhase(a, 6)
		if p < 0 || p > 1 {
			t.Fatalf("DrapePhase(%v) = %v 超出 [0,1]", a, p)
		}
	}
	// 峰值位置：sin = 1 时相位为 1
	if math.Abs(DrapePhase(math.Pi/12, 6)-1.0) > 0.001 {
		t.Errorf("频率 6 在 π/12 处应取峰值")
	}
}
