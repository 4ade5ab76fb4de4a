// 樱花树生成器
package shape

import (
	"math"
	"math/rand"

	"github.com/decker502/startree/pkg/config"
	"github.com/decker502/startree/pkg/geom"
	"github.com/decker502/startree/pkg/types"
)

// 樱花树分层枝干模型调参
const (
	cherryLayers      = 24   // 高度离散层数
	cherryBaseBranch  = 14   // 底层枝条数
	cherryMinBranch   = 3    // 顶层最少枝条数
	cherryAngleJitter = 0.35 // 枝条角度抖动（弧度）
	cherryDroopK      = 0.09 // 下垂系数：droop = k × r²（枝条向外下垂）
	cherryTrunkFrac   = 0.08 // 树干采样占比
)

// cherryRamp 深粉芯→白梢四档色带，按"径向距离/最大半径"比值取档
var cherryRamp = [4]geom.RGB{
	rgbHex("#be185d"),
	rgbHex("#ec4899"),
	rgbHex("#f9a8d4"),
	rgbHex("#fdf2f8"),
}

var cherryTrunkColor = rgbHex("#6b4226")

// generateCherryTree 樱花树：分层枝干模型
//
// 高度离散为若干层，每层的枝条数随高度递减；
// 采样点取"量化到某条枝 + 抖动"的角度、sqrt 径向分布，
// 并按径向距离比例向下垂（枝条外端下垂），
// 颜色按中心距比值落入深粉芯→白梢四档色带
func generateCherryTree(rng *rand.Rand, cfg *config.Config, style types.StyleKind, mode types.ColorMode, count int) *Cloud {
	cloud := &Cloud{Points: make([]Point, 0, count)}
	rainbow := newBodyPalette(mode)

	for i := 0; i < count; i++ {
		if rng.Float64() < cherryTrunkFrac {
			y := ShapeMinY + rng.Float64()*(ShapeHeight*0.45)
			x, z := geom.OnDisk(rng, trunkRadius*1.2)
			cloud.appendPoint(rng, geom.Vec3{X: x, Y: y, Z: z}, cherryTrunkColor)
			continue
		}

		layer := rng.Intn(cherryLayers)
		layerT := float64(layer) / float64(cherryLayers-1)
		y := ShapeMinY + layerT*ShapeHeight

		// 枝条数随高度线性递减，但不少于下限
		branches := cherryBaseBranch - int(layerT*float64(cherryBaseBranch-cherryMinBranch))
		if branches < cherryMinBranch {
			branches = cherryMinBranch
		}

		// 角度量化到某条枝，再加抖动
		branch := rng.Intn(branches)
		theta := float64(branch)/float64(branches)*2*math.Pi + geom.Jitter(rng, cherryAngleJitter)

		maxR := coneProfile(y)
		r := geom.SqrtDisk(rng, maxR)
		droop := cherryDroopK * r * r

		pos := geom.Vec3{
			X: r * math.Cos(theta),
			Y: y - droop + geom.Jitter(rng, 0.25),
			Z: r * math.Sin(theta),
		}

		var color geom.RGB
		if mode.Normalize() == types.ColorRainbow {
			color = rainbow.sample(rng, y)
		} else {
			ratio := 0.0
			if maxR > 0 {
				ratio = r / maxR
			}
			color = rampPick(cherryRamp, ratio)
			if mode.IsMetallic() {
				color = color.Boost(metallicBoost)
			}
		}
		cloud.appendPoint(rng, pos, color)
	}
	return cloud
}
