// 圣诞老人生成器
package shape

import (
	"math"
	"math/rand"

	"github.com/decker502/startree/pkg/config"
	"github.com/decker502/startree/pkg/geom"
	"github.com/decker502/startree/pkg/types"
)

// 圣诞老人整体姿态与部位调参
// 区域控制点与阈值均为视觉调参结果，按原样保留
const (
	santaPitch = -0.06 // 整体后仰角（弧度），所有区域共享
)

var (
	santaCoatColor   = rgbHex("#b91c1c")
	santaCoatShade   = rgbHex("#991b1b")
	santaTrimColor   = rgbHex("#f8fafc")
	santaBeltColor   = rgbHex("#1f2937")
	santaBuckleColor = rgbHex("#d4af37")
	santaSkinColor   = rgbHex("#f1c27d")
	santaCheekColor  = rgbHex("#ef9f9f")
	santaBootColor   = rgbHex("#111827")
	santaMittenColor = rgbHex("#14532d")
)

// santaRegions 构造圣诞老人的命名区域列表
// rainbow 非 nil 时外套颜色改为按高度循环色相（彩虹模式）
func santaRegions(rainbow *bodyPalette) []region {
	coatColor := func(rng *rand.Rand, p geom.Vec3) geom.RGB {
		// 皮带：外套中段的一圈深色带，正面带金色扣
		if p.Y > -1.4 && p.Y < -0.8 {
			if math.Abs(p.X) < 0.45 && p.Z > 0 {
				return santaBuckleColor
			}
			return santaBeltColor
		}
		// 下摆与领口的白色绒边
		if p.Y < -3.7 || p.Y > 1.6 {
			return santaTrimColor
		}
		if rainbow != nil {
			return rainbow.sample(rng, p.Y)
		}
		if rng.Float64() < 0.3 {
			return santaCoatShade
		}
		return santaCoatColor
	}

	headColor := func(rng *rand.Rand, p geom.Vec3) geom.RGB {
		local := p.Sub(geom.Vec3{Y: 3.0})
		if local.Z > 0.75 {
			// 眼睛：面部前侧左右对称的两个斑点
			for _, ex := range []float64{-0.45, 0.45} {
				if math.Abs(local.X-ex) < 0.2 && math.Abs(local.Y-0.25) < 0.2 {
					return coalColor
				}
			}
			// 鼻头与脸颊的红晕
			if math.Abs(local.X) < 0.22 && math.Abs(local.Y) < 0.22 {
				return santaCheekColor
			}
		}
		return santaSkinColor
	}

	hatColor := func(rng *rand.Rand, p geom.Vec3) geom.RGB {
		// 帽口绒边与帽尖绒球为白色，其余红色
		if p.Y < 4.5 || p.Y > 6.2 {
			return santaTrimColor
		}
		if rainbow != nil {
			return rainbow.sample(rng, p.Y)
		}
		return santaCoatColor
	}

	return []region{
		{
			name:   "boots",
			weight: 0.05,
			sample: func(rng *rand.Rand) geom.Vec3 {
				side := mirrorSide(rng)
				return boxPoint(rng,
					geom.Vec3{X: side*1.0 - 0.6, Y: -9.0, Z: -0.7},
					geom.Vec3{X: side*1.0 + 0.6, Y: -7.9, Z: 1.1})
			},
			color: solid(santaBootColor),
		},
		{
			name:   "legs",
			weight: 0.08,
			sample: func(rng *rand.Rand) geom.Vec3 {
				side := mirrorSide(rng)
				hip := geom.Vec3{X: side * 1.0, Y: -4.0}
				foot := geom.Vec3{X: side * 1.0, Y: -8.2, Z: 0.15}
				return limbPoint(rng, hip, foot, 0.6)
			},
			color: solid(santaCoatShade),
		},
		{
			name:   "coat",
			weight: 0.4,
			sample: func(rng *rand.Rand) geom.Vec3 {
				// 上窄下宽的外套筒身
				y := geom.Lerp(-4.0, 2.0, rng.Float64())
				t := (y + 4.0) / 6.0
				maxR := geom.Lerp(santaBodyR, santaBodyR*0.68, t)
				r := blendedConeFill(rng, maxR)
				theta := rng.Float64() * 2 * math.Pi
				return geom.Vec3{X: r * math.Cos(theta), Y: y, Z: r * math.Sin(theta)}
			},
			color: coatColor,
		},
		{
			name:   "arms",
			weight: 0.08,
			sample: func(rng *rand.Rand) geom.Vec3 {
				side := mirrorSide(rng)
				shoulder := geom.Vec3{X: side * 2.8, Y: 1.2}
				hand := geom.Vec3{X: side * 4.1, Y: -1.6, Z: 0.8}
				return limbPoint(rng, shoulder, hand, 0.55)
			},
			color: func(rng *rand.Rand, p geom.Vec3) geom.RGB {
				// 袖口绒边
				if p.Y < -1.1 {
					return santaTrimColor
				}
				return santaCoatColor
			},
		},
		{
			name:   "mittens",
			weight: 0.02,
			sample: func(rng *rand.Rand) geom.Vec3 {
				side := mirrorSide(rng)
				return geom.InSphere(rng, geom.Vec3{X: side * 4.1, Y: -1.9, Z: 0.8}, 0.45)
			},
			color: solid(santaMittenColor),
		},
		{
			name:   "beard",
			weight: 0.11,
			sample: func(rng *rand.Rand) geom.Vec3 {
				// 胸前下垂的络腮胡：球体采样加向下拖尾
				p := geom.InSphere(rng, geom.Vec3{Y: 2.0, Z: 1.1}, 1.15)
				p.Y -= rng.Float64() * 0.9
				return p
			},
			color: solid(santaTrimColor),
		},
		{
			name:   "head",
			weight: 0.12,
			sample: func(rng *rand.Rand) geom.Vec3 {
				return geom.InSphere(rng, geom.Vec3{Y: 3.0}, 1.3)
			},
			color: headColor,
		},
		{
			name:   "hat",
			weight: 0.14,
			sample: func(rng *rand.Rand) geom.Vec3 {
				t := rng.Float64()
				if t > 0.95 {
					// 帽尖绒球
					return geom.InSphere(rng, geom.Vec3{Y: 6.4, Z: -0.5}, 0.35)
				}
				// 向后弯折的锥形帽身
				r := geom.Lerp(1.35, 0.1, t)
				rr := geom.SqrtDisk(rng, r)
				theta := rng.Float64() * 2 * math.Pi
				return geom.Vec3{
					X: rr * math.Cos(theta),
					Y: 4.2 + t*2.2,
					Z: rr*math.Sin(theta) - t*0.6,
				}
			},
			color: hatColor,
		},
	}
}

// mirrorSide 随机取 ±1，用于左右对称部件
func mirrorSide(rng *rand.Rand) float64 {
	if rng.Float64() < 0.5 {
		return -1
	}
	return 1
}

// generateSanta 圣诞老人：命名区域加权采样
//
// 每个采样做一次加权区域选择，由区域自己的采样/配色函数产出局部点，
// 最后对所有点施加共享的整体俯仰旋转，金属模式统一做强度提升
func generateSanta(rng *rand.Rand, cfg *config.Config, style types.StyleKind, mode types.ColorMode, count int) *Cloud {
	cloud := &Cloud{Points: make([]Point, 0, count)}

	var rainbow *bodyPalette
	if mode == types.ColorRainbow {
		rainbow = newBodyPalette(mode)
	}
	regions := santaRegions(rainbow)

	for i := 0; i < count; i++ {
		reg := pickRegion(rng, regions)
		p := reg.sample(rng)
		color := reg.color(rng, p)
		if mode.IsMetallic() {
			color = color.Boost(metallicBoost)
		}
		cloud.appendPoint(rng, p.RotateX(santaPitch), color)
	}
	return cloud
}
