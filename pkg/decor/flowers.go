// 樱花布局
package decor

import (
	"math"
	"math/rand"

	"github.com/decker502/startree/pkg/config"
	"github.com/decker502/startree/pkg/geom"
	"github.com/decker502/startree/pkg/shape"
	"github.com/decker502/startree/pkg/types"
)

// 樱花布局调参
const (
	flowerCount      = 160
	flowerMinY       = -7.5
	flowerMaxY       = 8.0
	flowerMultiplier = 1.0 // 黄金角螺旋倍率，1.0 为标准叶序
	flowerMinScale   = 0.3
	flowerScaleRange = 0.25
)

// generateFlowers 樱花：沿高度轴的黄金角螺旋摆放
//
// θ = i × π(3−√5) × multiplier（经典叶序布点），
// 花朵在任意数量下均匀不重复地环绕分布，不会聚成可见的列
func generateFlowers(rng *rand.Rand, cfg *config.Config, shapeKind types.ShapeKind) []Placement {
	colors := cfg.FlowerColors()
	flowers := make([]Placement, 0, flowerCount)

	for i := 0; i < flowerCount; i++ {
		t := float64(i) / float64(flowerCount-1)
		y := flowerMinY + t*(flowerMaxY-flowerMinY)
		maxR := shape.RadiusAt(y, shapeKind)
		if maxR <= 0.1 {
			continue
		}
		theta := geom.SpiralAngle(i, flowerMultiplier)
		// 花朵悬在枝条外缘，半径带少量抖动避免完美圆环
		r := maxR * (0.9 + rng.Float64()*0.15)
		pos := geom.Vec3{X: r * math.Cos(theta), Y: y + geom.Jitter(rng, 0.3), Z: r * math.Sin(theta)}

		color := colors[rng.Intn(len(colors))]
		scale := flowerMinScale + rng.Float64()*flowerScaleRange
		flowers = append(flowers, newPlacement(rng, KindFlower, pos, scale, color))
	}
	return flowers
}
