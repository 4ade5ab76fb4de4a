// Package layout 实现照片相框的布局计算
//
// 给定 (照片数, 造型)，为每个序号计算聚合态与散开态变换。
// 聚合态是序号/数量/造型的纯函数——同样输入两次调用结果逐位相同
// （与点云不同，照片布局必须确定，否则增删照片会让其他相框乱跳）；
// 散开态使用按序号播种的随机源，同样保持可复现。
package layout

import (
	"math"
	"math/rand"

	"github.com/decker502/startree/pkg/geom"
	"github.com/decker502/startree/pkg/shape"
	"github.com/decker502/startree/pkg/types"
)

// 照片布局调参
const (
	// DefaultSlotCount 照片数为 0 时的占位槽位数，保持轮廓有内容
	DefaultSlotCount = 24

	// photoMargin 相框高度范围距主体轮廓上下端的留边
	photoMargin = 1.5
	photoOffset = 1.2 // 相框浮在轮廓外的固定距离，避免与主体相交
	photoMinR   = 0.6 // 轮廓半径意外为 0 时的兜底半径

	// spiralMultiplier 黄金角螺旋倍率
	spiralMultiplier = 1.0

	// 散开态散布参数
	photoExplodeMin   = 26.0
	photoExplodeRange = 14.0
	photoExplodeYJit  = 5.0
)

// Slot 单个照片槽位的两种计算变换
type Slot struct {
	Index int
	// Assembled 聚合态：贴着轮廓外浮、朝外的姿态
	Assembled geom.Transform
	// Exploded 散开态：径向散布位置（按序号播种，稳定可复现）
	Exploded geom.Transform
}

// Compute 计算 (照片数, 造型) 的全部槽位布局
//
// 高度沿造型轮廓非零的垂直区间（留边后）线性铺开，
// 矮造型（叠凳/雪人等）的相框不会铺到轮廓消失的高度；
// 半径取轮廓半径加固定外浮距离；
// 角度按黄金角螺旋推进，避免相框排成整齐的竖列；
// 朝向为"背离中轴再旋转 180°"，即照片面向观察者/外侧。
// 照片数 ≤ 0 时使用默认占位数
func Compute(photoCount int, shapeKind types.ShapeKind) []Slot {
	if photoCount <= 0 {
		photoCount = DefaultSlotCount
	}
	shapeKind = shapeKind.Normalize()

	minY, maxY := shape.VerticalExtent(shapeKind)
	minY += photoMargin
	maxY -= photoMargin

	slots := make([]Slot, photoCount)
	for i := 0; i < photoCount; i++ {
		t := 0.5
		if photoCount > 1 {
			t = float64(i) / float64(photoCount-1)
		}
		y := minY + t*(maxY-minY)

		r := shape.RadiusAt(y, shapeKind)
		if r < photoMinR {
			r = photoMinR
		}
		r += photoOffset

		theta := geom.SpiralAngle(i, spiralMultiplier)
		pos := geom.Vec3{X: r * math.Cos(theta), Y: y, Z: r * math.Sin(theta)}

		// 朝向：先背离中轴（法线沿径向向外），再绕 Y 轴转 180°
		yaw := math.Atan2(pos.X, pos.Z) + math.Pi

		slots[i] = Slot{
			Index: i,
			Assembled: geom.Transform{
				Pos:   pos,
				Rot:   geom.Vec3{Y: yaw},
				Scale: 1,
			},
			Exploded: explodedTransform(i, shapeKind, pos, yaw),
		}
	}
	return slots
}

// explodedTransform 散开态：聚合位置归一化后外推随机距离 + 垂直抖动
// 随机源按 (序号, 造型) 播种，保证槽位身份稳定（同输入同输出）
func explodedTransform(index int, shapeKind types.ShapeKind, pos geom.Vec3, yaw float64) geom.Transform {
	rng := rand.New(rand.NewSource(int64(index)*2654435761 + int64(shapeKind)))
	e := pos.Normalize().Scale(photoExplodeMin + rng.Float64()*photoExplodeRange)
	e.Y += geom.Jitter(rng, photoExplodeYJit)
	return geom.Transform{
		Pos:   e,
		Rot:   geom.Vec3{Y: yaw + geom.Jitter(rng, 0.6)},
		Scale: 1,
	}
}
