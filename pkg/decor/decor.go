// Package decor 实现装饰物布局生成
//
// 挂饰球、礼物盒、樱花、宝石、花环与灯串的摆放算法。
// 只有标记为"可装饰"的造型（树/樱花树/水晶/双子塔）产出非空列表，
// 其余造型返回空集合。生成结果与点云一样：一次生成、整体不可变。
package decor

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/decker502/startree/pkg/config"
	"github.com/decker502/startree/pkg/geom"
	"github.com/decker502/startree/pkg/types"
)

// Kind 装饰物种类
type Kind int

const (
	// KindBauble 挂饰球
	KindBauble Kind = iota
	// KindGift 礼物盒
	KindGift
	// KindFlower 樱花
	KindFlower
	// KindGem 八面体宝石
	KindGem
	// KindGarland 花环珠
	KindGarland
	// KindLight 灯串灯珠
	KindLight
	// KindCore 水晶核心（旋转的半透明中心体）
	KindCore
	// KindPhoto 照片相框（布局来自 layout 包，此处仅作渲染分类）
	KindPhoto
)

// Placement 单个装饰物的摆放
// Phase/Speed 在生成时随机一次，驱动闲置动画（正弦偏移/自旋），
// 之后每帧只读；Speed 为 0 表示常亮/静止（金属模式下的灯串）
type Placement struct {
	Kind     Kind
	Pos      geom.Vec3
	Exploded geom.Vec3
	Rot      geom.Vec3
	Scale    float64
	Color    geom.RGB
	Phase    float64
	Speed    float64
}

// Set 一个造型的全部装饰布局
type Set struct {
	Baubles []Placement
	Gifts   []Placement
	Flowers []Placement
	Gems    []Placement
	Garland []Placement
	Lights  []Placement
	// Core 水晶核心，仅水晶造型非 nil
	Core *Placement
}

// Generate 生成 (造型, 配色) 的装饰布局
// 不可装饰的造型返回空集合；rng 为 nil 时使用时间种子
func Generate(rng *rand.Rand, cfg *config.Config, shapeKind types.ShapeKind, mode types.ColorMode) Set {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg == nil {
		cfg = config.Default()
	}
	shapeKind = shapeKind.Normalize()
	mode = mode.Normalize()

	var set Set
	if !cfg.Tuning(shapeKind).Decorated {
		return set
	}

	switch shapeKind {
	case types.ShapeTree, types.ShapeTwinTowers:
		set.Baubles, set.Gifts = generateBaublesAndGifts(rng, cfg, shapeKind, mode)
	case types.ShapeCherryTree:
		set.Flowers = generateFlowers(rng, cfg, shapeKind)
	case types.ShapeCrystal:
		set.Core = generateCore(rng)
		set.Garland = generateGarland(rng, cfg, shapeKind)
		set.Gems = generateGems(rng, cfg, shapeKind)
	}
	set.Lights = generateLights(rng, cfg, shapeKind, mode)

	log.Printf("[Decor] 生成 %s/%s 装饰: %d 挂饰, %d 礼物, %d 花, %d 宝石, %d 花环, %d 灯",
		shapeKind, mode, len(set.Baubles), len(set.Gifts), len(set.Flowers),
		len(set.Gems), len(set.Garland), len(set.Lights))
	return set
}

// 散开态散布参数（与点云保持同一量级）
const (
	explodeMinDist   = 24.0
	explodeDistRange = 18.0
	explodeYJitter   = 6.0
)

// explode 装饰物的散开位置：归一化方向外推随机距离 + 垂直抖动
func explode(rng *rand.Rand, p geom.Vec3) geom.Vec3 {
	e := p.Normalize().Scale(explodeMinDist + rng.Float64()*explodeDistRange)
	e.Y += geom.Jitter(rng, explodeYJitter)
	return e
}

// newPlacement 以统一的散开与闲置动画参数构造摆放
func newPlacement(rng *rand.Rand, kind Kind, pos geom.Vec3, scale float64, color geom.RGB) Placement {
	return Placement{
		Kind:     kind,
		Pos:      pos,
		Exploded: explode(rng, pos),
		Rot:      geom.Vec3{Y: rng.Float64() * 2 * math.Pi},
		Scale:    scale,
		Color:    color,
		Phase:    rng.Float64() * 2 * math.Pi,
		Speed:    0.6 + rng.Float64()*0.9,
	}
}
