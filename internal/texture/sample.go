package texture

import (
	"fmt"
	"image"
	"math/rand"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
)

// SamplePhoto 画一张演示用的合成照片
//
// 没有接入相册时用它填充槽位：随机柔和底色上画几个气泡和序号，
// 同一序号的输出稳定可复现
func SamplePhoto(n int) image.Image {
	rng := rand.New(rand.NewSource(int64(n)*7919 + 13))

	dc := gg.NewContext(FrameSize, FrameSize)
	bg := colorful.Hsv(rng.Float64()*360, 0.35, 0.9)
	dc.SetColor(bg)
	dc.Clear()

	for i := 0; i < 6; i++ {
		c := colorful.Hsv(rng.Float64()*360, 0.5, 0.95)
		dc.SetRGBA(c.R, c.G, c.B, 0.5)
		dc.DrawCircle(rng.Float64()*FrameSize, rng.Float64()*FrameSize, 20+rng.Float64()*50)
		dc.Fill()
	}

	dc.SetRGB(0.15, 0.15, 0.2)
	dc.DrawStringAnchored(fmt.Sprintf("#%d", n), FrameSize/2, FrameSize/2, 0.5, 0.5)
	return dc.Image()
}
