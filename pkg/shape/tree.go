// 圣诞树与双子塔生成器
package shape

import (
	"math"
	"math/rand"

	"github.com/decker502/startree/pkg/config"
	"github.com/decker502/startree/pkg/geom"
	"github.com/decker502/startree/pkg/types"
)

// 树干调参
const (
	trunkRadius   = 0.55
	trunkTop      = -5.5
	trunkFraction = 0.06 // 树干采样占比
)

var trunkColor = rgbHex("#5b3a1e")

// generateTree 圣诞树：锥体混合填充 + 少量树干采样
//
// 几何风格下改为生成离散方块（仅通用树形享有此回退，
// 其余造型即使选几何风格也仍为经典密度的粒子云，见 config.ParticleCount）
func generateTree(rng *rand.Rand, cfg *config.Config, style types.StyleKind, mode types.ColorMode, count int) *Cloud {
	if style == types.StyleGeometric {
		return generateTreeBlocks(rng, mode, count)
	}

	cloud := &Cloud{Points: make([]Point, 0, count)}
	palette := newBodyPalette(mode)

	for i := 0; i < count; i++ {
		if rng.Float64() < trunkFraction {
			// 树干：底部圆柱
			y := ShapeMinY + rng.Float64()*(trunkTop-ShapeMinY)
			x, z := geom.OnDisk(rng, trunkRadius)
			cloud.appendPoint(rng, geom.Vec3{X: x, Y: y, Z: z}, trunkColor)
			continue
		}

		y := ShapeMinY + rng.Float64()*ShapeHeight
		maxR := coneProfile(y)
		r := blendedConeFill(rng, maxR)
		theta := rng.Float64() * 2 * math.Pi
		pos := geom.Vec3{X: r * math.Cos(theta), Y: y, Z: r * math.Sin(theta)}
		cloud.appendPoint(rng, pos, palette.sample(rng, y))
	}
	return cloud
}

// 几何方块调参
const (
	blockMinScale = 0.5
	blockMaxScale = 1.3
)

// generateTreeBlocks 几何风格的离散方块树
// 初始位置 = 生成点；散开位置 = 归一化后外推随机距离；
// 每个方块独立随机选择立方体或球体形态，颜色逻辑与粒子一致
func generateTreeBlocks(rng *rand.Rand, mode types.ColorMode, count int) *Cloud {
	cloud := &Cloud{Blocks: make([]Block, 0, count)}
	palette := newBodyPalette(mode)

	for i := 0; i < count; i++ {
		y := ShapeMinY + rng.Float64()*ShapeHeight
		r := blendedConeFill(rng, coneProfile(y))
		theta := rng.Float64() * 2 * math.Pi
		pos := geom.Vec3{X: r * math.Cos(theta), Y: y, Z: r * math.Sin(theta)}

		form := BlockCube
		if rng.Float64() < 0.5 {
			form = BlockSphere
		}
		cloud.Blocks = append(cloud.Blocks, Block{
			Pos:      pos,
			Exploded: explodePoint(rng, pos),
			Form:     form,
			Color:    palette.sample(rng, y),
			Scale:    blockMinScale + rng.Float64()*(blockMaxScale-blockMinScale),
		})
	}
	return cloud
}

// 双子塔调参
const (
	towerOffsetX = 3.6  // 两塔中心在 X 轴上的对称偏移
	towerScale   = 0.55 // 单塔相对整体锥形的半径缩放
)

// generateTwinTowers 双子塔：两个并立的细锥体，各占一半采样
// 塔身使用与圣诞树相同的混合径向填充
func generateTwinTowers(rng *rand.Rand, cfg *config.Config, style types.StyleKind, mode types.ColorMode, count int) *Cloud {
	cloud := &Cloud{Points: make([]Point, 0, count)}
	palette := newBodyPalette(mode)

	for i := 0; i < count; i++ {
		y := ShapeMinY + rng.Float64()*ShapeHeight
		maxR := coneProfile(y) * towerScale
		r := blendedConeFill(rng, maxR)
		theta := rng.Float64() * 2 * math.Pi

		offset := towerOffsetX
		if rng.Float64() < 0.5 {
			offset = -towerOffsetX
		}
		pos := geom.Vec3{X: r*math.Cos(theta) + offset, Y: y, Z: r * math.Sin(theta)}
		cloud.appendPoint(rng, pos, palette.sample(rng, y))
	}
	return cloud
}
