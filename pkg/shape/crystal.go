// 水晶钻石生成器
package shape

import (
	"math"
	"math/rand"

	"github.com/decker502/startree/pkg/config"
	"github.com/decker502/startree/pkg/geom"
	"github.com/decker502/startree/pkg/types"
)

// 水晶调参
const (
	// crystalShellFraction 贴近锥面采样的占比
	// 90% 的点落在 [0.95, 1.0]×maxR 的外壳内，形成"实心水晶壳"观感
	crystalShellFraction = 0.9
	crystalShellMin      = 0.95
)

// crystalRamp 灰→白四档色带，按随机档位取色
var crystalRamp = [4]geom.RGB{
	rgbHex("#9ca3af"),
	rgbHex("#d1d5db"),
	rgbHex("#f3f4f6"),
	rgbHex("#ffffff"),
}

// generateCrystal 水晶钻石：外壳为主、内部稀疏的锥形晶体
//
// 90% 采样贴近锥面（半径 ∈ [0.95,1.0]×maxR），10% 用 sqrt 分布填充内部；
// 颜色按随机抽取落入灰→白四档色带，最后统一做 1.5 倍强度提升
func generateCrystal(rng *rand.Rand, cfg *config.Config, style types.StyleKind, mode types.ColorMode, count int) *Cloud {
	cloud := &Cloud{Points: make([]Point, 0, count)}
	rainbow := newBodyPalette(mode)

	for i := 0; i < count; i++ {
		y := ShapeMinY + rng.Float64()*ShapeHeight
		maxR := coneProfile(y)

		var r float64
		if rng.Float64() < crystalShellFraction {
			r = maxR * (crystalShellMin + rng.Float64()*(1-crystalShellMin))
		} else {
			r = geom.SqrtDisk(rng, maxR)
		}
		theta := rng.Float64() * 2 * math.Pi
		pos := geom.Vec3{X: r * math.Cos(theta), Y: y, Z: r * math.Sin(theta)}

		var color geom.RGB
		if mode.Normalize() == types.ColorRainbow {
			// 彩虹模式下水晶也按高度循环色相
			color = rainbow.sample(rng, y)
		} else {
			color = rampPick(crystalRamp, rng.Float64())
		}
		// 水晶统一做强度提升，与金属模式同一系数
		cloud.appendPoint(rng, pos, color.Boost(metallicBoost))
	}
	return cloud
}
