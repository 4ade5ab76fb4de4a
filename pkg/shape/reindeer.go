// 驯鹿拉雪橇生成器（组合造型中最复杂的一个）
package shape

import (
	"math"
	"math/rand"

	"github.com/decker502/startree/pkg/config"
	"github.com/decker502/startree/pkg/geom"
	"github.com/decker502/startree/pkg/types"
)

// 场景布局调参：两只驯鹿镜像并排在前，雪橇在后下方
const (
	reindeerPairOffsetX = 2.2   // 两只驯鹿的镜像 X 偏移
	reindeerFrontZ      = 2.4   // 驯鹿整体前移量
	sleighCenterZ       = -3.0  // 雪橇整体后移量
	reindeerTilt        = 0.045 // 整体俯仰角，所有部件共享
)

var (
	furColor      = rgbHex("#8b5a2b")
	furLightColor = rgbHex("#a0522d")
	bellyColor    = rgbHex("#e7d3b1")
	antlerColor   = rgbHex("#d6c9a8")
	noseColor     = rgbHex("#ef4444")
	harnessColor  = rgbHex("#7f1d1d")
	sleighRedDark = rgbHex("#7f1d1d")
	sleighRed     = rgbHex("#b91c1c")
	runnerGold    = rgbHex("#d4af37")
)

// reindeerRegions 单只驯鹿的命名区域列表（局部坐标，原点在驯鹿脚下中心）
// 两只实例复用同一算法，仅做镜像偏移
func reindeerRegions() []region {
	bodyColor := func(rng *rand.Rand, p geom.Vec3) geom.RGB {
		if p.Y < -3.6 {
			return bellyColor // 腹侧浅色
		}
		if rng.Float64() < 0.35 {
			return furLightColor
		}
		return furColor
	}

	headColor := func(rng *rand.Rand, p geom.Vec3) geom.RGB {
		local := p.Sub(geom.Vec3{Y: 1.8, Z: 2.6})
		// 鼻尖：口鼻最前端的亮红斑（预先增强）
		if local.Z > 0.62 && math.Abs(local.X) < 0.3 && local.Y < 0 {
			return noseColor.Boost(metallicBoost)
		}
		// 眼睛
		for _, ex := range []float64{-0.4, 0.4} {
			if math.Abs(local.X-ex) < 0.18 && math.Abs(local.Y-0.3) < 0.18 && local.Z > 0.2 {
				return coalColor
			}
		}
		return furColor
	}

	return []region{
		{
			name:   "body",
			weight: 0.34,
			sample: func(rng *rand.Rand) geom.Vec3 {
				// 沿 Z 拉长的椭球躯干
				p := geom.InSphere(rng, geom.Vec3{}, 1.6)
				p.Z *= 1.55
				p.Y = p.Y*0.9 - 3.0
				return p
			},
			color: bodyColor,
		},
		{
			name:   "legs",
			weight: 0.18,
			sample: func(rng *rand.Rand) geom.Vec3 {
				// 四条腿：前后 × 左右
				side := mirrorSide(rng)
				front := 0.9
				if rng.Float64() < 0.5 {
					front = -1.1
				}
				hip := geom.Vec3{X: side * 0.7, Y: -3.8, Z: front * 1.6}
				hoof := geom.Vec3{X: side * 0.8, Y: -8.7, Z: front*1.6 + 0.3}
				return limbPoint(rng, hip, hoof, 0.28)
			},
			color: solid(furColor),
		},
		{
			name:   "neck",
			weight: 0.08,
			sample: func(rng *rand.Rand) geom.Vec3 {
				base := geom.Vec3{Y: -2.2, Z: 1.3}
				top := geom.Vec3{Y: 1.2, Z: 2.3}
				return limbPoint(rng, base, top, 0.5)
			},
			color: bodyColor,
		},
		{
			name:   "head",
			weight: 0.12,
			sample: func(rng *rand.Rand) geom.Vec3 {
				p := geom.InSphere(rng, geom.Vec3{Y: 1.8, Z: 2.6}, 0.9)
				p.Z += math.Abs(p.X) * 0.1 // 口鼻略微前凸
				return p
			},
			color: headColor,
		},
		{
			name:   "antlers",
			weight: 0.16,
			sample: func(rng *rand.Rand) geom.Vec3 {
				// 鹿角主干：从头顶向外上方弯折的二次曲线，两侧镜像
				side := mirrorSide(rng)
				a := geom.Vec3{X: side * 0.3, Y: 2.5, Z: 2.3}
				b := geom.Vec3{X: side * 1.4, Y: 4.3, Z: 1.9}
				c := geom.Vec3{X: side * 2.1, Y: 4.9, Z: 1.4}
				if rng.Float64() < 0.35 {
					// 分叉：主干中段向上的短尖
					b = geom.Vec3{X: side * 0.9, Y: 4.6, Z: 2.1}
					c = geom.Vec3{X: side * 1.1, Y: 5.2, Z: 1.9}
				}
				return curvePoint(rng, a, b, c, 0.11)
			},
			color: solid(antlerColor),
		},
		{
			name:   "harness",
			weight: 0.05,
			sample: func(rng *rand.Rand) geom.Vec3 {
				// 胸前挽具：环绕躯干前部的细环带
				theta := rng.Float64() * 2 * math.Pi
				return geom.Vec3{
					X: 1.25 * math.Cos(theta),
					Y: 1.05*math.Sin(theta) - 2.9,
					Z: 0.9 + geom.Jitter(rng, 0.1),
				}
			},
			color: solid(harnessColor),
		},
		{
			name:   "tail",
			weight: 0.02,
			sample: func(rng *rand.Rand) geom.Vec3 {
				return geom.InSphere(rng, geom.Vec3{Y: -2.6, Z: -2.6}, 0.35)
			},
			color: solid(bellyColor),
		},
	}
}

// 雪橇盒体边界（局部坐标）
var (
	sleighBoxMin = geom.Vec3{X: -1.6, Y: -8.2, Z: -2.0}
	sleighBoxMax = geom.Vec3{X: 1.6, Y: -6.4, Z: 2.0}
)

// sleighRegions 雪橇的命名区域列表
func sleighRegions() []region {
	boxColor := func(rng *rand.Rand, p geom.Vec3) geom.RGB {
		// 壁面/沿口检测：靠近外壁的点是红色侧壁，顶部一圈是金色镶边
		nearWall := p.X < sleighBoxMin.X+0.25 || p.X > sleighBoxMax.X-0.25 ||
			p.Z < sleighBoxMin.Z+0.25 || p.Z > sleighBoxMax.Z-0.25
		if nearWall {
			if p.Y > sleighBoxMax.Y-0.3 {
				return runnerGold
			}
			return sleighRed
		}
		return sleighRedDark
	}

	return []region{
		{
			name:   "runners",
			weight: 0.25,
			sample: func(rng *rand.Rand) geom.Vec3 {
				// 滑板：两条贴地的二次曲线，前端上翘
				side := mirrorSide(rng)
				a := geom.Vec3{X: side * 1.4, Y: -8.8, Z: -2.6}
				b := geom.Vec3{X: side * 1.4, Y: -9.0, Z: 0.6}
				c := geom.Vec3{X: side * 1.4, Y: -7.4, Z: 2.8}
				return curvePoint(rng, a, b, c, 0.09)
			},
			color: solid(runnerGold),
		},
		{
			name:   "box",
			weight: 0.55,
			sample: func(rng *rand.Rand) geom.Vec3 {
				return boxPoint(rng, sleighBoxMin, sleighBoxMax)
			},
			color: boxColor,
		},
		{
			name:   "gifts",
			weight: 0.2,
			sample: func(rng *rand.Rand) geom.Vec3 {
				// 礼物堆：箱体内上方的有界散布
				return boxPoint(rng,
					geom.Vec3{X: -1.2, Y: -6.6, Z: -1.6},
					geom.Vec3{X: 1.2, Y: -5.6, Z: 1.6})
			},
			color: func(rng *rand.Rand, p geom.Vec3) geom.RGB {
				giftColors := []geom.RGB{
					rgbHex("#16a34a"), rgbHex("#2563eb"), rgbHex("#d4af37"), rgbHex("#dc2626"),
				}
				return giftColors[rng.Intn(len(giftColors))]
			},
		},
	}
}

// generateReindeer 驯鹿拉雪橇：顶层三路随机划分
//
// 40%/40% 的采样分给两只镜像驯鹿（复用同一套区域算法），
// 20% 分给雪橇；所有点最终施加共享的整体俯仰旋转
func generateReindeer(rng *rand.Rand, cfg *config.Config, style types.StyleKind, mode types.ColorMode, count int) *Cloud {
	cloud := &Cloud{Points: make([]Point, 0, count)}

	var rainbow *bodyPalette
	if mode == types.ColorRainbow {
		rainbow = newBodyPalette(mode)
	}
	deer := reindeerRegions()
	sleigh := sleighRegions()

	for i := 0; i < count; i++ {
		var p geom.Vec3
		var color geom.RGB

		roll := rng.Float64()
		switch {
		case roll < 0.4:
			reg := pickRegion(rng, deer)
			p = reg.sample(rng)
			color = reg.color(rng, p)
			p.X += reindeerPairOffsetX
			p.Z += reindeerFrontZ
		case roll < 0.8:
			reg := pickRegion(rng, deer)
			p = reg.sample(rng)
			color = reg.color(rng, p)
			// 镜像实例：局部 X 翻转后平移
			p.X = -p.X - reindeerPairOffsetX
			p.Z += reindeerFrontZ
		default:
			reg := pickRegion(rng, sleigh)
			p = reg.sample(rng)
			color = reg.color(rng, p)
			p.Z += sleighCenterZ
		}

		if rainbow != nil {
			// 彩虹模式下整个场景按高度循环色相
			color = rainbow.sample(rng, p.Y)
		} else if mode.IsMetallic() {
			color = color.Boost(metallicBoost)
		}
		cloud.appendPoint(rng, p.RotateX(reindeerTilt), color)
	}
	return cloud
}
