// 水晶专属装饰：核心、垂挂花环与宝石
package decor

import (
	"math"
	"math/rand"

	"github.com/decker502/startree/pkg/config"
	"github.com/decker502/startree/pkg/geom"
	"github.com/decker502/startree/pkg/shape"
	"github.com/decker502/startree/pkg/types"
)

// 水晶装饰调参
const (
	coreScale     = 2.2
	coreSpinSpeed = 0.4 // 核心绕 Y 轴的慢速自旋（弧度/秒）

	garlandCount     = 220
	garlandTurns     = 5.0 // 花环螺旋绕圈数
	garlandTopY      = 8.0
	garlandBottomY   = -8.5
	garlandDrapeFreq = 3.0 // 垂挂频率：每圈的挂点数
	garlandBulge     = 0.7 // 径向外凸幅度
	garlandDrop      = 0.9 // 垂直下坠幅度
	garlandBeadScale = 0.16

	gemCount      = 120
	gemMinScale   = 0.2
	gemScaleRange = 0.25
)

var garlandBeadColor = geom.RGB{R: 1, G: 0.95, B: 0.8}

// generateCore 旋转的半透明水晶核心
// 单个元素，Speed 记录自旋角速度（渲染/动画端据此每帧累加）
func generateCore(rng *rand.Rand) *Placement {
	core := newPlacement(rng, KindCore, geom.Vec3{Y: -1.0}, coreScale, geom.RGB{R: 0.9, G: 0.97, B: 1})
	core.Speed = coreSpinSpeed
	return &core
}

// generateGarland 垂挂花环：半径递减的螺旋小球链，带扇贝状下垂
//
// 对基础螺旋位置计算 drapePhase = (sin(angle × frequency)+1)/2，
// 再用 (1 − drapePhase) 缩放径向外凸与垂直下坠偏移，
// 使珠链在固定角度间隔的挂点之间呈现下垂的弧线
func generateGarland(rng *rand.Rand, cfg *config.Config, shapeKind types.ShapeKind) []Placement {
	garland := make([]Placement, 0, garlandCount)

	for i := 0; i < garlandCount; i++ {
		t := float64(i) / float64(garlandCount-1)
		y := garlandTopY + t*(garlandBottomY-garlandTopY)
		angle := t * garlandTurns * 2 * math.Pi
		baseR := shape.RadiusAt(y, shapeKind) * 1.02
		if baseR <= 0.1 {
			continue
		}

		drape := geom.DrapePhase(angle, garlandDrapeFreq)
		sag := 1 - drape
		r := baseR + sag*garlandBulge
		// 下坠后的高度钳制在主体范围内，螺旋底端的珠子不掉出轮廓
		yy := y - sag*garlandDrop
		if yy < shape.ShapeMinY {
			yy = shape.ShapeMinY
		}
		pos := geom.Vec3{
			X: r * math.Cos(angle),
			Y: yy,
			Z: r * math.Sin(angle),
		}
		garland = append(garland, newPlacement(rng, KindGarland, pos, garlandBeadScale, garlandBeadColor))
	}
	return garland
}

// generateGems 八面体宝石：偏向锥面的散布
// 半径取 [0.9, 1.05]×轮廓，与水晶点云的壳层观感一致
func generateGems(rng *rand.Rand, cfg *config.Config, shapeKind types.ShapeKind) []Placement {
	colors := cfg.GemColors()
	gems := make([]Placement, 0, gemCount)

	for i := 0; i < gemCount; i++ {
		y := garlandBottomY + rng.Float64()*(garlandTopY-garlandBottomY)
		maxR := shape.RadiusAt(y, shapeKind)
		if maxR <= 0.1 {
			continue
		}
		theta := rng.Float64() * 2 * math.Pi
		r := maxR * (0.9 + rng.Float64()*0.15)
		pos := geom.Vec3{X: r * math.Cos(theta), Y: y, Z: r * math.Sin(theta)}

		gem := newPlacement(rng, KindGem, pos, gemMinScale+rng.Float64()*gemScaleRange, colors[rng.Intn(len(colors))])
		// 宝石持续慢速自旋
		gem.Speed = 0.5 + rng.Float64()*0.8
		gems = append(gems, gem)
	}
	return gems
}
