// Package shape 实现各造型的程序化点云生成
package shape

import (
	"math"
	"math/rand"

	"github.com/decker502/startree/pkg/geom"
	"github.com/decker502/startree/pkg/types"
	"github.com/lucasb-eyer/go-colorful"
)

// metallicBoost 金属/水晶模式的自发光增强系数
const metallicBoost = 1.5

// bodyPalette 主体配色解析器
// 每次生成创建一个，缓存基础色的 HSV 分解，避免逐粒子反复解析十六进制
type bodyPalette struct {
	mode    types.ColorMode
	h, s, v float64
}

// newBodyPalette 按配色模式构造主体配色解析器
func newBodyPalette(mode types.ColorMode) *bodyPalette {
	mode = mode.Normalize()
	base, err := colorful.Hex(mode.Hex())
	if err != nil {
		// Hex() 返回的都是内置色值，理论上不会失败；保底用默认绿
		base, _ = colorful.Hex("#064e3b")
	}
	h, s, v := base.Hsv()
	return &bodyPalette{mode: mode, h: h, s: s, v: v}
}

// sample 解析一个主体采样点的颜色
//
// 彩虹模式：色相按高度循环（18 单位高度映射一整圈）再加随机抖动；
// 其他模式：基础色加亮度抖动，金属模式最后做 1.5 倍强度提升
func (p *bodyPalette) sample(rng *rand.Rand, y float64) geom.RGB {
	if p.mode == types.ColorRainbow {
		hue := math.Mod((y+9)/18*360+rng.Float64()*40, 360)
		if hue < 0 {
			hue += 360
		}
		c := colorful.Hsv(hue, 0.75, 1.0)
		return geom.RGB{R: c.R, G: c.G, B: c.B}
	}

	v := p.v * (0.85 + rng.Float64()*0.3)
	if v > 1 {
		v = 1
	}
	c := colorful.Hsv(p.h, p.s, v)
	out := geom.RGB{R: c.R, G: c.G, B: c.B}
	if p.mode.IsMetallic() {
		out = out.Boost(metallicBoost)
	}
	return out
}

// rgbHex 按十六进制解析固定区域色（雪人纽扣、圣诞老人皮带等）
// 区域色值为视觉调参常量，解析失败返回白色兜底
func rgbHex(hex string) geom.RGB {
	c, err := colorful.Hex(hex)
	if err != nil {
		return geom.RGB{R: 1, G: 1, B: 1}
	}
	return geom.RGB{R: c.R, G: c.G, B: c.B}
}

// rampPick 四档色带：按 [0,1] 比值落到四个档位之一
// 用于樱花（白梢→深粉芯）与水晶（灰→白）的分层配色
func rampPick(ramp [4]geom.RGB, ratio float64) geom.RGB {
	switch {
	case ratio < 0.25:
		return ramp[0]
	case ratio < 0.5:
		return ramp[1]
	case ratio < 0.75:
		return ramp[2]
	default:
		return ramp[3]
	}
}
