// 雪人生成器
package shape

import (
	"math"
	"math/rand"

	"github.com/decker502/startree/pkg/config"
	"github.com/decker502/startree/pkg/geom"
	"github.com/decker502/startree/pkg/types"
)

// 雪人部位占比与雕刻区域调参
// 区域边界阈值（0.6、0.8 等）为视觉调参结果，按原样保留
const (
	snowmanArmFrac = 0.06 // 手臂采样占比
	snowmanHatFrac = 0.12 // 帽子采样占比

	snowmanFrontZ   = 0.6  // 五官只出现在面向 +Z 的一侧（local.Z > frontZ × r）
	snowmanCarveEps = 0.28 // 五官斑点的判定半径

	snowmanHatBrimR  = 1.4
	snowmanHatCrownR = 0.95
	snowmanHatHeight = 1.6
)

var (
	snowColor      = rgbHex("#f8fafc")
	coalColor      = rgbHex("#1f2937")
	carrotColor    = rgbHex("#ea580c")
	twigColor      = rgbHex("#5b3a1e")
	hatColor       = rgbHex("#111827")
	hatBandColor   = rgbHex("#dc2626")
	snowShadeColor = rgbHex("#e2e8f0")
)

// snowmanSegment 单个球体段
type snowmanSegment struct {
	centerY float64
	radius  float64
	weight  float64
}

var snowmanSegments = []snowmanSegment{
	{snowmanBaseCY, snowmanBaseR, 0.45},
	{snowmanTorsoCY, snowmanTorsoR, 0.35},
	{snowmanHeadCY, snowmanHeadR, 0.20},
}

// generateSnowman 雪人：三段球体拒绝采样填充 + 雕刻子区域
//
// 球体段内均匀采样后，按局部坐标的嵌套条件判定纽扣/眼睛/鼻子/嘴，
// 命中的子区域覆盖颜色并推到球面；手臂为斜向圆柱，帽子为锥筒+帽檐
func generateSnowman(rng *rand.Rand, cfg *config.Config, style types.StyleKind, mode types.ColorMode, count int) *Cloud {
	cloud := &Cloud{Points: make([]Point, 0, count)}
	rainbow := newBodyPalette(mode)

	for i := 0; i < count; i++ {
		roll := rng.Float64()
		switch {
		case roll < snowmanArmFrac:
			sampleSnowmanArm(rng, cloud)
		case roll < snowmanArmFrac+snowmanHatFrac:
			sampleSnowmanHat(rng, cloud)
		default:
			sampleSnowmanBody(rng, cloud, mode, rainbow)
		}
	}
	return cloud
}

// sampleSnowmanBody 球体段采样 + 五官雕刻
func sampleSnowmanBody(rng *rand.Rand, cloud *Cloud, mode types.ColorMode, rainbow *bodyPalette) {
	// 按权重选段（三段权重之和为 1.0）
	var seg snowmanSegment
	roll := rng.Float64()
	switch {
	case roll < snowmanSegments[0].weight:
		seg = snowmanSegments[0]
	case roll < snowmanSegments[0].weight+snowmanSegments[1].weight:
		seg = snowmanSegments[1]
	default:
		seg = snowmanSegments[2]
	}

	center := geom.Vec3{Y: seg.centerY}
	pos := geom.InSphere(rng, center, seg.radius)
	local := pos.Sub(center)

	color := snowColor
	if rng.Float64() < 0.25 {
		color = snowShadeColor // 少量阴影色增加体积感
	}

	// 雕刻子区域：只在面向 +Z 的一侧判定
	if local.Z > snowmanFrontZ*seg.radius {
		surface := center.Add(local.Normalize().Scale(seg.radius))
		if seg.centerY == snowmanTorsoCY {
			// 躯干纽扣：前侧中线上的三个斑点
			for _, by := range []float64{-0.8, 0, 0.8} {
				if math.Abs(local.X) < 0.3 && math.Abs(local.Y-by) < snowmanCarveEps {
					pos = surface
					color = coalColor
				}
			}
		}
		if seg.centerY == snowmanHeadCY {
			// 眼睛：左右对称的两个斑点
			for _, ex := range []float64{-0.55, 0.55} {
				if math.Abs(local.X-ex) < snowmanCarveEps && math.Abs(local.Y-0.45) < snowmanCarveEps {
					pos = surface
					color = coalColor
				}
			}
			// 嘴：下半部的弧形点列
			if math.Abs(local.Y+0.55) < 0.18 && math.Abs(local.X) < 0.7 {
				pos = surface
				color = coalColor
			}
			// 鼻子：正前方的胡萝卜锥，沿 +Z 外推并径向收缩
			if math.Abs(local.X) < 0.25 && math.Abs(local.Y) < 0.25 {
				t := rng.Float64()
				pos = geom.Vec3{
					X: local.X * 0.35 * (1 - t),
					Y: snowmanHeadCY + local.Y*0.35*(1-t),
					Z: seg.radius*0.92 + t*1.5,
				}
				color = carrotColor
			}
		}
	}

	if mode == types.ColorRainbow && color == snowColor {
		// 彩虹模式只替换雪体底色，五官保持原色
		color = rainbow.sample(rng, pos.Y)
	}
	cloud.appendPoint(rng, pos, color)
}

// sampleSnowmanArm 手臂：躯干两侧斜向上伸出的细圆柱
func sampleSnowmanArm(rng *rand.Rand, cloud *Cloud) {
	side := 1.0
	if rng.Float64() < 0.5 {
		side = -1.0
	}
	shoulder := geom.Vec3{X: side * snowmanTorsoR * 0.9, Y: snowmanTorsoCY + 0.3}
	tip := shoulder.Add(geom.Vec3{X: side * 2.6, Y: 1.5, Z: 0.3})

	t := rng.Float64()
	dx, dz := geom.OnDisk(rng, 0.12)
	pos := geom.LerpVec(shoulder, tip, t).Add(geom.Vec3{X: dx, Z: dz})
	cloud.appendPoint(rng, pos, twigColor)
}

// sampleSnowmanHat 帽子：头顶的帽檐圆盘 + 锥筒帽身（底部一圈红带）
func sampleSnowmanHat(rng *rand.Rand, cloud *Cloud) {
	brimY := snowmanHeadCY + snowmanHeadR - 0.15

	if rng.Float64() < 0.4 {
		// 帽檐：薄圆盘
		x, z := geom.OnDisk(rng, snowmanHatBrimR)
		pos := geom.Vec3{X: x, Y: brimY + geom.Jitter(rng, 0.06), Z: z}
		cloud.appendPoint(rng, pos, hatColor)
		return
	}

	// 帽身：轻微收口的锥筒
	t := rng.Float64()
	r := geom.Lerp(snowmanHatCrownR, snowmanHatCrownR*0.82, t)
	theta := rng.Float64() * 2 * math.Pi
	rr := geom.SqrtDisk(rng, r)
	pos := geom.Vec3{X: rr * math.Cos(theta), Y: brimY + t*snowmanHatHeight, Z: rr * math.Sin(theta)}

	color := hatColor
	if t < 0.18 {
		color = hatBandColor
	}
	cloud.appendPoint(rng, pos, color)
}
