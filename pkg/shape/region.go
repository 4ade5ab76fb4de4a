// 部位区域描述符
// 圣诞老人/驯鹿的采样按"命名区域列表"组织：
// 每个区域声明 {权重, 采样函数, 配色函数}，生成器做一次加权随机选择后
// 委托给选中区域，替代深层嵌套的逐点条件分类
package shape

import (
	"math/rand"

	"github.com/decker502/startree/pkg/geom"
)

// region 一个命名的解剖/部件区域
type region struct {
	name   string
	weight float64
	// sample 在区域自身的局部坐标系内采一个点
	sample func(rng *rand.Rand) geom.Vec3
	// color 按采样点位置解析颜色（颜色永远在最后一步解析）
	color func(rng *rand.Rand, p geom.Vec3) geom.RGB
}

// pickRegion 按权重随机选择一个区域
// 权重不要求归一化；空列表或权重异常时回退到第一个区域
func pickRegion(rng *rand.Rand, regions []region) *region {
	if len(regions) == 0 {
		return nil
	}
	total := 0.0
	for i := range regions {
		total += regions[i].weight
	}
	if total <= 0 {
		return &regions[0]
	}
	roll := rng.Float64() * total
	for i := range regions {
		roll -= regions[i].weight
		if roll <= 0 {
			return &regions[i]
		}
	}
	return &regions[len(regions)-1]
}

// limbPoint 两控制点之间的线性混合 + 圆盘截面厚度
// 四肢/脖颈等圆柱状部件的标准采样方式
func limbPoint(rng *rand.Rand, a, b geom.Vec3, thickness float64) geom.Vec3 {
	t := rng.Float64()
	dx, dz := geom.OnDisk(rng, thickness)
	return geom.LerpVec(a, b, t).Add(geom.Vec3{X: dx, Z: dz})
}

// curvePoint 三控制点二次曲线 + 圆盘截面厚度
// 鹿角主干、雪橇滑板等弧线部件的标准采样方式
func curvePoint(rng *rand.Rand, a, b, c geom.Vec3, thickness float64) geom.Vec3 {
	t := rng.Float64()
	dx, dz := geom.OnDisk(rng, thickness)
	return geom.QuadBlend(a, b, c, t).Add(geom.Vec3{X: dx, Z: dz})
}

// solid 返回固定颜色的配色函数
func solid(c geom.RGB) func(*rand.Rand, geom.Vec3) geom.RGB {
	return func(*rand.Rand, geom.Vec3) geom.RGB { return c }
}

// boxPoint 盒体内均匀采样
func boxPoint(rng *rand.Rand, min, max geom.Vec3) geom.Vec3 {
	return geom.Vec3{
		X: geom.Lerp(min.X, max.X, rng.Float64()),
		Y: geom.Lerp(min.Y, max.Y, rng.Float64()),
		Z: geom.Lerp(min.Z, max.Z, rng.Float64()),
	}
}
