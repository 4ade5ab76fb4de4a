// 生成器调度
// 每个造型一个独立的生成器函数，按 ShapeKind 从调度表分发，
// 避免单个巨型分支函数，也让每个造型的算法可以独立测试
package shape

import (
	"log"
	"math/rand"
	"time"

	"github.com/decker502/startree/pkg/config"
	"github.com/decker502/startree/pkg/geom"
	"github.com/decker502/startree/pkg/types"
)

// Generator 单个造型的点云生成器
// count 为目标采样数；生成器使用传入的随机源，便于测试时固定种子
type Generator func(rng *rand.Rand, cfg *config.Config, style types.StyleKind, mode types.ColorMode, count int) *Cloud

// generators 生成器调度表
var generators = map[types.ShapeKind]Generator{
	types.ShapeTree:       generateTree,
	types.ShapeSnowman:    generateSnowman,
	types.ShapeReindeer:   generateReindeer,
	types.ShapeSanta:      generateSanta,
	types.ShapeCherryTree: generateCherryTree,
	types.ShapeCrystal:    generateCrystal,
	types.ShapeTwinTowers: generateTwinTowers,
	types.ShapeStool:      generateStool,
}

// Generate 生成指定 (造型, 风格, 配色) 的完整点云
//
// 非法枚举值归一化为默认值后继续生成，不返回错误；
// rng 为 nil 时使用时间种子（生产路径），测试传入固定种子即可复现
func Generate(rng *rand.Rand, cfg *config.Config, shapeKind types.ShapeKind, style types.StyleKind, mode types.ColorMode) *Cloud {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg == nil {
		cfg = config.Default()
	}
	shapeKind = shapeKind.Normalize()
	style = style.Normalize()
	mode = mode.Normalize()

	count := cfg.ParticleCount(shapeKind, style)
	gen := generators[shapeKind]

	start := time.Now()
	cloud := gen(rng, cfg, style, mode, count)
	cloud.Shape = shapeKind
	cloud.Style = style
	cloud.ParticleScale = cfg.ParticleScale(style)

	log.Printf("[Shape] 生成 %s/%s/%s: %d 粒子, %d 方块, 耗时 %v",
		shapeKind, style, mode, len(cloud.Points), len(cloud.Blocks), time.Since(start))
	return cloud
}

// blendedConeFill 锥体内的混合径向填充
//
// 40% 的采样使用线性半径分布（偏向轴心，填满内核），
// 60% 使用 sqrt 分布（圆盘面均匀），两者叠加避免"空壳"观感
func blendedConeFill(rng *rand.Rand, maxR float64) float64 {
	if rng.Float64() < 0.4 {
		return maxR * rng.Float64()
	}
	return geom.SqrtDisk(rng, maxR)
}
