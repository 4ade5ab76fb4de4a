// 叠凳生成器
package shape

import (
	"math"
	"math/rand"

	"github.com/decker502/startree/pkg/config"
	"github.com/decker502/startree/pkg/geom"
	"github.com/decker502/startree/pkg/types"
)

// 叠凳调参：三只木凳上下叠放，向上逐级收小
const (
	stoolCount      = 3
	stoolUnitHeight = (stoolMaxY - stoolMinY) / stoolCount
	stoolSeatThick  = 0.5  // 凳面厚度
	stoolLegThick   = 0.22 // 凳腿截面半径
	stoolSeatFrac   = 0.55 // 凳面采样占比（其余为凳腿）
)

var (
	stoolWoodColor  = rgbHex("#b07c4f")
	stoolWoodShade  = rgbHex("#8a5a33")
	stoolSeatborder = rgbHex("#6b4226")
)

// generateStool 叠凳：三只逐级收小的木凳竖直叠放
//
// 每只凳子 = 圆盘凳面 + 四条向外撇的凳腿（两控制点线性混合）；
// 凳面半径取自轮廓函数在该凳顶部高度的值，保证与轮廓一致
func generateStool(rng *rand.Rand, cfg *config.Config, style types.StyleKind, mode types.ColorMode, count int) *Cloud {
	cloud := &Cloud{Points: make([]Point, 0, count)}

	var rainbow *bodyPalette
	if mode == types.ColorRainbow {
		rainbow = newBodyPalette(mode)
	}

	for i := 0; i < count; i++ {
		unit := rng.Intn(stoolCount)
		baseY := stoolMinY + float64(unit)*stoolUnitHeight
		topY := baseY + stoolUnitHeight
		seatR := stoolProfile(topY - 0.01)

		var pos geom.Vec3
		var color geom.RGB

		if rng.Float64() < stoolSeatFrac {
			// 凳面：顶部厚圆盘，外缘一圈深色
			x, z := geom.OnDisk(rng, seatR)
			pos = geom.Vec3{X: x, Y: topY - rng.Float64()*stoolSeatThick, Z: z}
			if math.Hypot(x, z) > seatR*0.88 {
				color = stoolSeatborder
			} else {
				color = stoolWoodColor
			}
		} else {
			// 凳腿：凳面下向外撇的四条斜腿
			leg := rng.Intn(4)
			theta := float64(leg)/4*2*math.Pi + math.Pi/4
			topR := seatR * 0.75
			botR := seatR * 0.95
			top := geom.Vec3{X: topR * math.Cos(theta), Y: topY - stoolSeatThick, Z: topR * math.Sin(theta)}
			bottom := geom.Vec3{X: botR * math.Cos(theta), Y: baseY, Z: botR * math.Sin(theta)}
			pos = limbPoint(rng, top, bottom, stoolLegThick)
			color = stoolWoodShade
		}

		if rainbow != nil {
			color = rainbow.sample(rng, pos.Y)
		} else if mode.IsMetallic() {
			color = color.Boost(metallicBoost)
		}
		cloud.appendPoint(rng, pos, color)
	}
	return cloud
}
