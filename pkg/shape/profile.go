// 轮廓半径函数
// 本文件定义各造型"高度 → 轮廓边界半径"的纯函数，
// 用于灯串布点、照片布局以及部分生成器的半径上界，
// 保证附属元素始终贴合主体轮廓
package shape

import (
	"math"

	"github.com/decker502/startree/pkg/types"
)

// 主体垂直范围（世界坐标，单位与渲染无关）
const (
	// ShapeMinY 主体底部高度
	ShapeMinY = -9.0
	// ShapeMaxY 主体顶部高度
	ShapeMaxY = 9.0
	// ShapeHeight 主体总高度 = 18
	ShapeHeight = ShapeMaxY - ShapeMinY

	// ConeBaseRadius 锥形造型的底部半径 R0
	ConeBaseRadius = 7.5
)

// 雪人三段球体（底座/躯干/头部）的球心与半径
// 球心间距调定为相邻球体轻微相交，分段边界取在交线附近
const (
	snowmanBaseCY  = -5.8
	snowmanBaseR   = 3.2
	snowmanTorsoCY = -1.2
	snowmanTorsoR  = 2.4
	snowmanHeadCY  = 2.4
	snowmanHeadR   = 1.7

	snowmanBaseTop  = -3.0 // 底座与躯干的分段边界
	snowmanTorsoTop = 1.0  // 躯干与头部的分段边界
	snowmanHeadTop  = 4.1  // 头顶（球心 + 半径）
)

// 圣诞老人三段阶梯轮廓（腿/身体/头部的粗略恒定半径）
const (
	santaLegTop  = -4.0
	santaBodyTop = 2.0
	santaHeadTop = 6.0
	santaLegR    = 2.2
	santaBodyR   = 3.6
	santaHeadR   = 1.8
)

// 驯鹿+雪橇三段阶梯轮廓（含雪橇段）
const (
	reindeerSleighTop = -5.0
	reindeerBodyTop   = 1.0
	reindeerHeadTop   = 5.0
	reindeerSleighR   = 5.0
	reindeerBodyR     = 4.2
	reindeerHeadR     = 2.0
)

// 叠凳：在自身高度区间内两个固定半径之间线性过渡
const (
	stoolMinY    = -9.0
	stoolMaxY    = 3.0
	stoolBottomR = 5.0
	stoolTopR    = 2.8
)

// profileFn 单个造型的轮廓半径函数
type profileFn func(y float64) float64

// profiles 轮廓半径调度表
var profiles = map[types.ShapeKind]profileFn{
	types.ShapeTree:       coneProfile,
	types.ShapeCherryTree: coneProfile,
	types.ShapeCrystal:    coneProfile,
	types.ShapeTwinTowers: coneProfile,
	types.ShapeSnowman:    snowmanProfile,
	types.ShapeSanta:      santaProfile,
	types.ShapeReindeer:   reindeerProfile,
	types.ShapeStool:      stoolProfile,
}

// extents 各造型轮廓非零的高度区间 [minY, maxY]
// 阶梯/球段轮廓的顶端低于 ShapeMaxY，照片布局等贴轮廓的
// 附属元素必须按这个区间取高度，不能一律铺到 ±9
var extents = map[types.ShapeKind][2]float64{
	types.ShapeTree:       {ShapeMinY, ShapeMaxY},
	types.ShapeCherryTree: {ShapeMinY, ShapeMaxY},
	types.ShapeCrystal:    {ShapeMinY, ShapeMaxY},
	types.ShapeTwinTowers: {ShapeMinY, ShapeMaxY},
	types.ShapeSnowman:    {ShapeMinY, snowmanHeadTop},
	types.ShapeSanta:      {ShapeMinY, santaHeadTop},
	types.ShapeReindeer:   {ShapeMinY, reindeerHeadTop},
	types.ShapeStool:      {stoolMinY, stoolMaxY},
}

// VerticalExtent 返回造型轮廓非零的高度区间
func VerticalExtent(shape types.ShapeKind) (minY, maxY float64) {
	e, ok := extents[shape.Normalize()]
	if !ok {
		return ShapeMinY, ShapeMaxY
	}
	return e[0], e[1]
}

// RadiusAt 返回造型在高度 y 处的轮廓边界半径
// 对任意 y 返回非负值，超出造型定义的高度区间时返回 0
func RadiusAt(y float64, shape types.ShapeKind) float64 {
	fn, ok := profiles[shape.Normalize()]
	if !ok {
		fn = coneProfile
	}
	return fn(y)
}

// coneProfile 线性锥形：radius = max(0, R0 * (1 - (y+9)/18))
func coneProfile(y float64) float64 {
	if y < ShapeMinY || y > ShapeMaxY {
		return 0
	}
	r := ConeBaseRadius * (1 - (y-ShapeMinY)/ShapeHeight)
	if r < 0 {
		return 0
	}
	return r
}

// sphereSection 球体在高度 y 处的截面半径
// 公式：sqrt(max(0, r² - (y-centerY)²))
func sphereSection(y, centerY, r float64) float64 {
	d := r*r - (y-centerY)*(y-centerY)
	if d <= 0 {
		return 0
	}
	return math.Sqrt(d)
}

// snowmanProfile 雪人轮廓：按 y 所在分段取对应球体的截面半径
func snowmanProfile(y float64) float64 {
	switch {
	case y < ShapeMinY || y > snowmanHeadTop:
		return 0
	case y < snowmanBaseTop:
		return sphereSection(y, snowmanBaseCY, snowmanBaseR)
	case y < snowmanTorsoTop:
		return sphereSection(y, snowmanTorsoCY, snowmanTorsoR)
	default:
		return sphereSection(y, snowmanHeadCY, snowmanHeadR)
	}
}

// santaProfile 圣诞老人三段阶梯轮廓
func santaProfile(y float64) float64 {
	switch {
	case y < ShapeMinY || y > santaHeadTop:
		return 0
	case y < santaLegTop:
		return santaLegR
	case y < santaBodyTop:
		return santaBodyR
	default:
		return santaHeadR
	}
}

// reindeerProfile 驯鹿+雪橇三段阶梯轮廓
func reindeerProfile(y float64) float64 {
	switch {
	case y < ShapeMinY || y > reindeerHeadTop:
		return 0
	case y < reindeerSleighTop:
		return reindeerSleighR
	case y < reindeerBodyTop:
		return reindeerBodyR
	default:
		return reindeerHeadR
	}
}

// stoolProfile 叠凳轮廓：底部半径到顶部半径的线性过渡
func stoolProfile(y float64) float64 {
	if y < stoolMinY || y > stoolMaxY {
		return 0
	}
	t := (y - stoolMinY) / (stoolMaxY - stoolMinY)
	return stoolBottomR + (stoolTopR-stoolBottomR)*t
}
