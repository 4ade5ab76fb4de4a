// postcard 明信片导出程序
//
// 不开窗口，把指定造型渲染成一张静态 PNG：深夜蓝底、按深度排序的
// 粒子圆点、装饰与灯串。适合当分享图或桌面壁纸。
//
// 用法：
//
//	go run ./cmd/postcard -o postcard.png
//	go run ./cmd/postcard -shape Crystal -color Gold -yaw 0.6 -o crystal.png
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sort"

	"github.com/fogleman/gg"

	"github.com/decker502/startree/internal/render"
	"github.com/decker502/startree/pkg/config"
	"github.com/decker502/startree/pkg/decor"
	"github.com/decker502/startree/pkg/geom"
	"github.com/decker502/startree/pkg/shape"
	"github.com/decker502/startree/pkg/types"
)

var (
	out       = flag.String("o", "postcard.png", "输出 PNG 路径")
	shapeName = flag.String("shape", "Tree", "造型")
	styleName = flag.String("style", "Classic", "风格")
	colorName = flag.String("color", "Emerald", "配色")
	yaw       = flag.Float64("yaw", 0.35, "容器旋转角 (rad)")
	seed      = flag.Int64("seed", 1, "随机种子")
	width     = flag.Int("w", 1200, "画布宽")
	height    = flag.Int("h", 1600, "画布高")
)

// dot 一个待绘制的圆点
type dot struct {
	depth   float64
	x, y, r float64
	c       geom.RGB
}

func main() {
	flag.Parse()

	k := types.ParseShapeKind(*shapeName)
	st := types.ParseStyleKind(*styleName)
	mode := types.ParseColorMode(*colorName)
	cfg := config.Default()
	rng := rand.New(rand.NewSource(*seed))

	cloud := shape.Generate(rng, cfg, k, st, mode)
	set := decor.Generate(rng, cfg, k, mode)

	dots := make([]dot, 0, len(cloud.Points)+1024)
	addPoint := func(pos geom.Vec3, worldR float64, c geom.RGB) {
		p, ok := render.Project(pos, *yaw, *width, *height)
		if !ok {
			return
		}
		dots = append(dots, dot{
			depth: p.Depth,
			x:     p.X, y: p.Y,
			r: worldR * p.Scale,
			c: c,
		})
	}

	for _, p := range cloud.Points {
		addPoint(p.Pos, 0.09*cloud.ParticleScale, p.Color)
	}
	for _, b := range cloud.Blocks {
		addPoint(b.Pos, 0.42*b.Scale, b.Color)
	}
	each := func(ps []decor.Placement, worldR float64) {
		for _, p := range ps {
			addPoint(p.Pos, worldR*p.Scale, p.Color)
		}
	}
	each(set.Baubles, 0.28)
	each(set.Gifts, 0.32)
	each(set.Flowers, 0.2)
	each(set.Gems, 0.24)
	each(set.Garland, 0.1)
	each(set.Lights, 0.12)
	if set.Core != nil {
		addPoint(set.Core.Pos, 0.5*set.Core.Scale, set.Core.Color)
	}

	// 画家排序：由远及近
	sort.Slice(dots, func(i, j int) bool { return dots[i].depth > dots[j].depth })

	dc := gg.NewContext(*width, *height)
	dc.SetHexColor("#0a0e1a")
	dc.Clear()
	for _, d := range dots {
		dc.SetRGB(clamp01(d.c.R), clamp01(d.c.G), clamp01(d.c.B))
		dc.DrawCircle(d.x, d.y, d.r)
		dc.Fill()
	}

	if err := dc.SavePNG(*out); err != nil {
		log.Printf("[Postcard] 保存失败: %v", err)
		os.Exit(1)
	}
	fmt.Printf("已导出 %s (%s/%s/%s, %d 个元素)\n", *out, k, st, mode, len(dots))
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
