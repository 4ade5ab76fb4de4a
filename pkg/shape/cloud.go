// Package shape 实现各造型的程序化点云生成
//
// 每个造型对应一个独立的生成器函数，通过调度表按 ShapeKind 分发。
// 生成器一次性产出完整的点云（或几何方块列表），包括每个采样点的
// 聚合位置、散开位置与颜色；生成之后整体不可变，动画引擎只读。
package shape

import (
	"math/rand"

	"github.com/decker502/startree/pkg/geom"
	"github.com/decker502/startree/pkg/types"
)

// Point 点云中的单个采样点
type Point struct {
	// Pos 聚合态位置（静止姿态）
	Pos geom.Vec3
	// Exploded 散开态位置：沿归一化方向外推随机距离并加垂直抖动
	Exploded geom.Vec3
	// Color 采样点颜色，按区域分类在最后一步解析
	Color geom.RGB
}

// BlockForm 几何方块的形态
type BlockForm int

const (
	// BlockCube 立方体
	BlockCube BlockForm = iota
	// BlockSphere 球体
	BlockSphere
)

// Block 几何风格下的离散方块
// 仅通用树形在几何风格下使用；初始位置取生成点，
// 散开位置为该点归一化后外推随机距离
type Block struct {
	Pos      geom.Vec3
	Exploded geom.Vec3
	Form     BlockForm
	Color    geom.RGB
	Scale    float64
}

// Cloud 一次生成的完整点云结果
// 对给定的 (造型, 风格, 配色) 输入不可变，输入变化时整体重建
type Cloud struct {
	Shape types.ShapeKind
	Style types.StyleKind
	// Points 粒子云采样点（几何风格的通用树形下为空）
	Points []Point
	// Blocks 几何方块列表（仅几何风格的通用树形非空）
	Blocks []Block
	// ParticleScale 渲染端的粒子大小倍率提示
	ParticleScale float64
}

// 散开态散布参数（视觉调参）
const (
	explodeMinDist   = 24.0 // 散开最小半径
	explodeDistRange = 18.0 // 散开半径的随机增量
	explodeYJitter   = 6.0  // 散开态垂直抖动幅度
)

// explodePoint 计算散开态位置：归一化方向外推随机距离 + 垂直抖动
func explodePoint(rng *rand.Rand, p geom.Vec3) geom.Vec3 {
	e := p.Normalize().Scale(explodeMinDist + rng.Float64()*explodeDistRange)
	e.Y += geom.Jitter(rng, explodeYJitter)
	return e
}

// appendPoint 以统一的散开规则追加一个采样点
func (c *Cloud) appendPoint(rng *rand.Rand, pos geom.Vec3, color geom.RGB) {
	c.Points = append(c.Points, Point{
		Pos:      pos,
		Exploded: explodePoint(rng, pos),
		Color:    color,
	})
}
