// 挂饰球与礼物盒布局
package decor

import (
	"math"
	"math/rand"

	"github.com/decker502/startree/pkg/config"
	"github.com/decker502/startree/pkg/geom"
	"github.com/decker502/startree/pkg/shape"
	"github.com/decker502/startree/pkg/types"
)

// 挂饰布局调参
const (
	baubleCount      = 90
	baubleMinY       = -8.5
	baubleMaxY       = 7.0
	baubleOffset     = 0.3 // 贴着轮廓略微外浮
	baubleFraction   = 0.7 // 挂饰球 vs 礼物盒的加权划分（约 70%/30%）
	baubleMinScale   = 0.35
	baubleScaleRange = 0.3
	giftScale        = 0.55
)

// generateBaublesAndGifts 挂饰球与礼物盒
//
// 随机高度 + 轮廓半径约束的摆放；每个位置按 70%/30% 加权随机
// 选择挂饰球或礼物盒外观，颜色取自造型/配色模式对应的配色板
// （银色模式替换为冷色板以保持对比，见 config.OrnamentColors）
func generateBaublesAndGifts(rng *rand.Rand, cfg *config.Config, shapeKind types.ShapeKind, mode types.ColorMode) (baubles, gifts []Placement) {
	ornaments := cfg.OrnamentColors(mode)
	giftColors := cfg.GiftColors()

	for i := 0; i < baubleCount; i++ {
		y := baubleMinY + rng.Float64()*(baubleMaxY-baubleMinY)
		maxR := shape.RadiusAt(y, shapeKind)
		if maxR <= 0.1 {
			continue // 轮廓消失的高度不挂装饰
		}
		theta := rng.Float64() * 2 * math.Pi
		r := maxR + baubleOffset
		pos := geom.Vec3{X: r * math.Cos(theta), Y: y, Z: r * math.Sin(theta)}

		if rng.Float64() < baubleFraction {
			color := ornaments[rng.Intn(len(ornaments))]
			scale := baubleMinScale + rng.Float64()*baubleScaleRange
			baubles = append(baubles, newPlacement(rng, KindBauble, pos, scale, color))
		} else {
			color := giftColors[rng.Intn(len(giftColors))]
			gifts = append(gifts, newPlacement(rng, KindGift, pos, giftScale, color))
		}
	}
	return baubles, gifts
}
