// Package texture 程序化贴图合成
//
// 相框皮肤、添加占位图与粒子圆形贴图都在启动时用 gg 画出来，
// 不依赖任何磁盘素材。生成函数返回 image.Image，ebiten 包装
// 在独立文件中，便于无图形环境下测试像素内容。
package texture

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
)

// 贴图尺寸（像素）
const (
	FrameSize  = 256
	SpriteSize = 64
)

// 波点相框的两套配色，按槽位序号交替使用
var framePalettes = [2]struct {
	bg   string
	dots string
	rim  string
}{
	{bg: "#b91c1c", dots: "#fef3c7", rim: "#fbbf24"}, // 红底米点金边
	{bg: "#14532d", dots: "#fca5a5", rim: "#d1d5db"}, // 绿底粉点银边
}

// PaletteCount 相框配色套数
const PaletteCount = len(framePalettes)

// FrameSkin 画一张波点相框皮肤
//
// palette 为配色序号（超界取模）；中心留出照片窗口，
// 周圈铺随机大小的波点，外沿一圈描边
func FrameSkin(palette int) image.Image {
	p := framePalettes[((palette%PaletteCount)+PaletteCount)%PaletteCount]

	dc := gg.NewContext(FrameSize, FrameSize)
	dc.SetHexColor(p.bg)
	dc.Clear()

	// 波点只落在边框带上，不侵入照片窗口
	const border = 28.0
	rng := rand.New(rand.NewSource(int64(palette) + 1))
	dotColor, _ := colorful.Hex(p.dots)
	for i := 0; i < 90; i++ {
		x := rng.Float64() * FrameSize
		y := rng.Float64() * FrameSize
		if x > border && x < FrameSize-border && y > border && y < FrameSize-border {
			continue
		}
		r := 2.5 + rng.Float64()*4
		// 亮度微抖，波点不至于一片死板
		c := colorful.Color{
			R: clamp01(dotColor.R * (0.85 + rng.Float64()*0.3)),
			G: clamp01(dotColor.G * (0.85 + rng.Float64()*0.3)),
			B: clamp01(dotColor.B * (0.85 + rng.Float64()*0.3)),
		}
		dc.SetColor(c)
		dc.DrawCircle(x, y, r)
		dc.Fill()
	}

	// 外沿描边与窗口描边
	dc.SetHexColor(p.rim)
	dc.SetLineWidth(6)
	dc.DrawRectangle(3, 3, FrameSize-6, FrameSize-6)
	dc.Stroke()
	dc.SetLineWidth(3)
	dc.DrawRectangle(border, border, FrameSize-2*border, FrameSize-2*border)
	dc.Stroke()

	return dc.Image()
}

// AddPlaceholder 画"添加照片"占位图：暗底、虚线框、中心加号
func AddPlaceholder() image.Image {
	dc := gg.NewContext(FrameSize, FrameSize)
	dc.SetHexColor("#1f2937")
	dc.Clear()

	dc.SetHexColor("#9ca3af")
	dc.SetLineWidth(4)
	dc.SetDash(12, 8)
	dc.DrawRectangle(16, 16, FrameSize-32, FrameSize-32)
	dc.Stroke()
	dc.SetDash()

	// 中心加号
	const arm = 36.0
	cx, cy := float64(FrameSize)/2, float64(FrameSize)/2
	dc.SetLineWidth(10)
	dc.SetLineCapRound()
	dc.DrawLine(cx-arm, cy, cx+arm, cy)
	dc.DrawLine(cx, cy-arm, cx, cy+arm)
	dc.Stroke()

	return dc.Image()
}

// Sprite 画软边圆形粒子贴图：中心实、边缘透明的径向渐变
func Sprite() image.Image {
	dc := gg.NewContext(SpriteSize, SpriteSize)
	c := float64(SpriteSize) / 2
	grad := gg.NewRadialGradient(c, c, 0, c, c, c)
	grad.AddColorStop(0, color.NRGBA{255, 255, 255, 255})
	grad.AddColorStop(0.55, color.NRGBA{255, 255, 255, 217})
	grad.AddColorStop(1, color.NRGBA{255, 255, 255, 0})
	dc.SetFillStyle(grad)
	dc.DrawCircle(c, c, c)
	dc.Fill()
	return dc.Image()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
