// verify_shapes 造型生成验证程序
//
// 不开窗口，直接跑一遍全部 (造型 × 风格 × 配色) 组合的生成器，
// 打印粒子数、包围盒、装饰与照片槽位统计，用于肉眼核对调参。
//
// 用法：
//
//	go run ./cmd/verify_shapes                 # 全部组合的汇总表
//	go run ./cmd/verify_shapes -shape Snowman  # 单个造型的详细统计
//	go run ./cmd/verify_shapes -seed 42        # 固定随机种子
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/decker502/startree/pkg/config"
	"github.com/decker502/startree/pkg/decor"
	"github.com/decker502/startree/pkg/layout"
	"github.com/decker502/startree/pkg/shape"
	"github.com/decker502/startree/pkg/types"
)

var (
	shapeName  = flag.String("shape", "", "只验证指定造型（如 Snowman），为空跑全部")
	seed       = flag.Int64("seed", 0, "随机种子，0 取随机")
	photoCount = flag.Int("photos", layout.DefaultSlotCount, "照片槽位数")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}

	shapes := allShapes()
	if *shapeName != "" {
		k := types.ParseShapeKind(*shapeName)
		if k.String() != *shapeName {
			fmt.Fprintf(os.Stderr, "未知造型 %q，可选: %v\n", *shapeName, shapes)
			os.Exit(1)
		}
		verifyOne(rng, cfg, k)
		return
	}

	fmt.Printf("%-12s %-10s %-9s %8s %8s %8s %8s\n",
		"SHAPE", "STYLE", "COLOR", "POINTS", "BLOCKS", "DECOR", "MAX_R")
	for _, s := range shapes {
		for st := types.StyleClassic; st < types.StyleCount; st++ {
			for m := types.ColorEmerald; m < types.ColorModeCount; m++ {
				cloud := shape.Generate(rng, cfg, s, st, m)
				set := decor.Generate(rng, cfg, s, m)
				fmt.Printf("%-12s %-10s %-9s %8d %8d %8d %8.2f\n",
					s, st, m, len(cloud.Points), len(cloud.Blocks),
					decorCount(set), maxRadius(cloud))
			}
		}
	}
}

// verifyOne 单个造型的详细统计
func verifyOne(rng *rand.Rand, cfg *config.Config, k types.ShapeKind) {
	cloud := shape.Generate(rng, cfg, k, types.StyleClassic, types.ColorEmerald)
	set := decor.Generate(rng, cfg, k, types.ColorEmerald)
	slots := layout.Compute(*photoCount, k)

	minY, maxY := math.Inf(1), math.Inf(-1)
	var maxR float64
	for _, p := range cloud.Points {
		if p.Pos.Y < minY {
			minY = p.Pos.Y
		}
		if p.Pos.Y > maxY {
			maxY = p.Pos.Y
		}
		r := math.Hypot(p.Pos.X, p.Pos.Z)
		if r > maxR {
			maxR = r
		}
	}

	fmt.Printf("造型: %s\n", k)
	fmt.Printf("  粒子数: %d  方块数: %d\n", len(cloud.Points), len(cloud.Blocks))
	fmt.Printf("  高度范围: [%.2f, %.2f]  最大半径: %.2f\n", minY, maxY, maxR)
	fmt.Printf("  轮廓半径: y=-9 -> %.2f, y=0 -> %.2f, y=9 -> %.2f\n",
		shape.RadiusAt(-9, k), shape.RadiusAt(0, k), shape.RadiusAt(9, k))
	fmt.Printf("  装饰: 挂饰球 %d, 礼物 %d, 花朵 %d, 宝石 %d, 花环 %d, 灯串 %d, 核心 %v\n",
		len(set.Baubles), len(set.Gifts), len(set.Flowers),
		len(set.Gems), len(set.Garland), len(set.Lights), set.Core != nil)
	fmt.Printf("  照片槽位: %d\n", len(slots))
	for _, sl := range slots[:min(3, len(slots))] {
		fmt.Printf("    [%d] pos=(%.2f, %.2f, %.2f) yaw=%.2f\n",
			sl.Index, sl.Assembled.Pos.X, sl.Assembled.Pos.Y, sl.Assembled.Pos.Z,
			sl.Assembled.Rot.Y)
	}
}

func allShapes() []types.ShapeKind {
	out := make([]types.ShapeKind, 0, types.ShapeCount)
	for s := types.ShapeTree; s < types.ShapeCount; s++ {
		out = append(out, s)
	}
	return out
}

func decorCount(s decor.Set) int {
	n := len(s.Baubles) + len(s.Gifts) + len(s.Flowers) +
		len(s.Gems) + len(s.Garland) + len(s.Lights)
	if s.Core != nil {
		n++
	}
	return n
}

func maxRadius(c *shape.Cloud) float64 {
	var r float64
	for _, p := range c.Points {
		if h := math.Hypot(p.Pos.X, p.Pos.Z); h > r {
			r = h
		}
	}
	return r
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
