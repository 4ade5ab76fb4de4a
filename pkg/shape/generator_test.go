package shape

import (
	"math"
	"math/rand"
	"testing"

	"github.com/decker502/startree/pkg/config"
	"github.com/decker502/startree/pkg/types"
)

// TestGenerate_TreeClassicScenario 场景测试：
// Tree/Classic/Emerald(#064e3b) 应产出非空粒子云，
// 所有点 y ∈ [-9,9]，径向距离不超过该高度的轮廓半径
func TestGenerate_TreeClassicScenario(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cloud := Generate(rng, config.Default(), types.ShapeTree, types.StyleClassic, types.ColorEmerald)

	if len(cloud.Points) < 5000 || len(cloud.Points) > 15000 {
		t.Fatalf("粒子数 %d 不在预期范围 [5000, 15000]", len(cloud.Points))
	}
	if len(cloud.Blocks) != 0 {
		t.Errorf("经典风格不应产出几何方块")
	}

	const epsilon = 0.01
	for i, p := range cloud.Points {
		if p.Pos.Y < ShapeMinY-epsilon || p.Pos.Y > ShapeMaxY+epsilon {
			t.Fatalf("第 %d 个点高度越界: %v", i, p.Pos.Y)
		}
		r := math.Hypot(p.Pos.X, p.Pos.Z)
		if r > RadiusAt(p.Pos.Y, types.ShapeTree)+epsilon {
			t.Fatalf("第 %d 个点径向越界: r=%v, 轮廓=%v", i, r, RadiusAt(p.Pos.Y, types.ShapeTree))
		}
	}
}

// TestGenerate_AllShapesNonEmpty 测试所有 (造型, 风格) 组合都产出非空结果
func TestGenerate_AllShapesNonEmpty(t *testing.T) {
	cfg := config.Default()
	for s := types.ShapeTree; s < types.ShapeCount; s++ {
		for st := types.StyleClassic; st < types.StyleCount; st++ {
			rng := rand.New(rand.NewSource(int64(s)*10 + int64(st)))
			cloud := Generate(rng, cfg, s, st, types.ColorEmerald)
			if len(cloud.Points)+len(cloud.Blocks) == 0 {
				t.Errorf("Generate(%v, %v) 产出为空", s, st)
			}
		}
	}
}

// TestGenerate_GeometricFallback 测试几何风格的回退规则
// 通用树形产出方块；高密度造型仍产出粒子云
func TestGenerate_GeometricFallback(t *testing.T) {
	cfg := config.Default()

	tree := Generate(rand.New(rand.NewSource(2)), cfg, types.ShapeTree, types.StyleGeometric, types.ColorEmerald)
	if len(tree.Blocks) == 0 || len(tree.Points) != 0 {
		t.Errorf("几何风格的树应只产出方块: %d 方块, %d 粒子", len(tree.Blocks), len(tree.Points))
	}
	for i, b := range tree.Blocks {
		if b.Scale < blockMinScale || b.Scale > blockMaxScale {
			t.Fatalf("第 %d 个方块缩放越界: %v", i, b.Scale)
		}
		if b.Exploded.Length() < explodeMinDist-explodeYJitter {
			t.Fatalf("第 %d 个方块散开距离过近: %v", i, b.Exploded.Length())
		}
	}

	// 树形以外的造型在几何风格下都应回退为经典密度的粒子云，
	// 不能把方块数倍率误用在粒子云上生成稀疏残影
	for _, s := range []types.ShapeKind{
		types.ShapeSnowman, types.ShapeSanta, types.ShapeReindeer, types.ShapeCrystal,
		types.ShapeCherryTree, types.ShapeTwinTowers, types.ShapeStool,
	} {
		cloud := Generate(rand.New(rand.NewSource(3)), cfg, s, types.StyleGeometric, types.ColorEmerald)
		if len(cloud.Blocks) != 0 || len(cloud.Points) == 0 {
			t.Errorf("造型 %v 在几何风格下应回退为粒子云", s)
		}
		if want := cfg.ParticleCount(s, types.StyleClassic); len(cloud.Points) != want {
			t.Errorf("造型 %v 几何风格粒子数 = %d, 期望经典密度 %d", s, len(cloud.Points), want)
		}
	}
}

// TestGenerate_CrystalScenario 场景测试：
// 水晶粒子数等于 8000 上限，大部分采样贴近锥面，颜色做过强度提升
func TestGenerate_CrystalScenario(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	cloud := Generate(rng, config.Default(), types.ShapeCrystal, types.StyleClassic, types.ColorEmerald)

	if len(cloud.Points) != 8000 {
		t.Fatalf("水晶粒子数 = %d, 期望 8000", len(cloud.Points))
	}

	shell, measured := 0, 0
	boosted := false
	for _, p := range cloud.Points {
		maxR := RadiusAt(p.Pos.Y, types.ShapeCrystal)
		if maxR < 0.5 {
			continue // 锥尖附近半径太小，壳层占比无意义
		}
		measured++
		if math.Hypot(p.Pos.X, p.Pos.Z) >= maxR*crystalShellMin-0.001 {
			shell++
		}
		if p.Color.R > 1 || p.Color.G > 1 || p.Color.B > 1 {
			boosted = true
		}
	}
	if frac := float64(shell) / float64(measured); frac < 0.8 {
		t.Errorf("壳层采样占比 %v 过低, 期望约 0.9", frac)
	}
	if !boosted {
		t.Error("水晶颜色应做 1.5 倍强度提升")
	}
}

// TestGenerate_InvalidInputs 测试非法枚举输入回退到默认值而不报错
func TestGenerate_InvalidInputs(t *testing.T) {
	cloud := Generate(nil, nil, types.ShapeKind(99), types.StyleKind(-3), types.ColorMode(42))
	if cloud.Shape != types.ShapeTree || cloud.Style != types.StyleClassic {
		t.Errorf("应归一化为 (Tree, Classic), got (%v, %v)", cloud.Shape, cloud.Style)
	}
	if len(cloud.Points) == 0 {
		t.Error("回退生成不应为空")
	}
}

// TestGenerate_ExplodedTargets 测试散开态目标的外推性质
// 所有散开位置都应远离原点（不小于最小散开半径减去垂直抖动）
func TestGenerate_ExplodedTargets(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	cloud := Generate(rng, config.Default(), types.ShapeSnowman, types.StyleClassic, types.ColorEmerald)

	for i, p := range cloud.Points {
		if p.Exploded.Length() < explodeMinDist-explodeYJitter {
			t.Fatalf("第 %d 个点散开距离 %v 过近", i, p.Exploded.Length())
		}
	}
}

// TestGenerate_RainbowMode 测试彩虹模式逐粒子循环色相
// 采样到的颜色应明显多样（远多于固定配色的抖动档位数）
func TestGenerate_RainbowMode(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	cloud := Generate(rng, config.Default(), types.ShapeTree, types.StyleClassic, types.ColorRainbow)

	distinct := make(map[[3]int]bool)
	for _, p := range cloud.Points {
		key := [3]int{int(p.Color.R * 20), int(p.Color.G * 20), int(p.Color.B * 20)}
		distinct[key] = true
	}
	if len(distinct) < 50 {
		t.Errorf("彩虹模式颜色种类 %d 过少", len(distinct))
	}
}
