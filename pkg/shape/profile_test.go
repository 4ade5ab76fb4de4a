package shape

import (
	"math"
	"testing"

	"github.com/decker502/startree/pkg/types"
)

// TestRadiusAt_NonNegative 测试所有造型在全高度范围内半径非负
func TestRadiusAt_NonNegative(t *testing.T) {
	for s := types.ShapeTree; s < types.ShapeCount; s++ {
		for y := -20.0; y <= 20.0; y += 0.05 {
			if r := RadiusAt(y, s); r < 0 {
				t.Fatalf("RadiusAt(%v, %v) = %v < 0", y, s, r)
			}
		}
	}
}

// TestRadiusAt_ZeroOutside 测试超出造型高度区间时返回 0
func TestRadiusAt_ZeroOutside(t *testing.T) {
	tests := []struct {
		name  string
		y     float64
		shape types.ShapeKind
	}{
		{"树_顶上方", 20.0, types.ShapeTree},
		{"树_底下方", -20.0, types.ShapeTree},
		{"雪人_头顶上方", 5.0, types.ShapeSnowman},
		{"圣诞老人_上方", 7.0, types.ShapeSanta},
		{"驯鹿_上方", 6.0, types.ShapeReindeer},
		{"叠凳_上方", 4.0, types.ShapeStool},
		{"水晶_底下方", -9.5, types.ShapeCrystal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if r := RadiusAt(tt.y, tt.shape); r != 0 {
				t.Errorf("RadiusAt(%v, %v) = %v, 期望 0", tt.y, tt.shape, r)
			}
		})
	}
}

// TestRadiusAt_Cone 测试锥形轮廓公式
// radius = max(0, R0 * (1 - (y+9)/18))
func TestRadiusAt_Cone(t *testing.T) {
	tests := []struct {
		name     string
		y        float64
		expected float64
	}{
		{"底部", -9.0, ConeBaseRadius},
		{"中部", 0.0, ConeBaseRadius / 2},
		{"顶部", 9.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RadiusAt(tt.y, types.ShapeTree)
			if math.Abs(got-tt.expected) > 0.001 {
				t.Errorf("RadiusAt(%v, Tree) = %v, 期望 %v", tt.y, got, tt.expected)
			}
		})
	}
}

// TestRadiusAt_SnowmanBands 测试雪人三段球体截面
func TestRadiusAt_SnowmanBands(t *testing.T) {
	// 各球心处截面半径应等于球半径
	tests := []struct {
		name     string
		y        float64
		expected float64
	}{
		{"底座球心", snowmanBaseCY, snowmanBaseR},
		{"躯干球心", snowmanTorsoCY, snowmanTorsoR},
		{"头部球心", snowmanHeadCY, snowmanHeadR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RadiusAt(tt.y, types.ShapeSnowman)
			if math.Abs(got-tt.expected) > 0.001 {
				t.Errorf("RadiusAt(%v, Snowman) = %v, 期望 %v", tt.y, got, tt.expected)
			}
		})
	}
}

// TestRadiusAt_InvalidShape 测试非法造型回退到锥形轮廓
func TestRadiusAt_InvalidShape(t *testing.T) {
	if got := RadiusAt(-9.0, types.ShapeKind(99)); math.Abs(got-ConeBaseRadius) > 0.001 {
		t.Errorf("非法造型应按 Tree 处理, got %v", got)
	}
}

// TestVerticalExtent 测试轮廓非零区间与半径函数一致
// 区间内部（端点向内收 0.01）半径为正，区间上端之上为 0
func TestVerticalExtent(t *testing.T) {
	for s := types.ShapeTree; s < types.ShapeCount; s++ {
		minY, maxY := VerticalExtent(s)
		if minY >= maxY {
			t.Fatalf("造型 %v 的高度区间非法: [%v, %v]", s, minY, maxY)
		}
		for y := minY + 0.01; y < maxY; y += 0.1 {
			if RadiusAt(y, s) <= 0 {
				t.Fatalf("造型 %v 在区间内高度 %v 轮廓为零", s, y)
			}
		}
		if r := RadiusAt(maxY+0.5, s); r != 0 {
			t.Errorf("造型 %v 在区间上端之上轮廓应为零, got %v", s, r)
		}
	}
	if minY, maxY := VerticalExtent(types.ShapeKind(99)); minY != ShapeMinY || maxY != ShapeMaxY {
		t.Errorf("非法造型应按默认区间处理: [%v, %v]", minY, maxY)
	}
}

// TestRadiusAt_LightSkipBand 测试灯串布点约定：
// 每个造型顶端附近轮廓半径逐渐缩小到 0.1 以下（灯串在此处跳过）
func TestRadiusAt_LightSkipBand(t *testing.T) {
	if r := RadiusAt(8.99, types.ShapeTree); r > 0.1 {
		t.Errorf("树顶轮廓半径 %v 应低于灯串跳过阈值", r)
	}
}
