// Package geom 提供展示主体生成与动画所需的基础数学工具
//
// 包含三维向量、颜色、变换，以及帧率无关的指数平滑插值。
// 所有函数均为纯函数，不持有任何状态。
package geom

import "math"

// Vec3 三维向量
type Vec3 struct {
	X, Y, Z float64
}

// Add 向量加法
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub 向量减法
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale 向量数乘
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Length 向量长度
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize 归一化为单位向量
// 零向量无法归一化，返回指向 +Y 的单位向量，保证后续外推方向有效
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{0, 1, 0}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Dist 两点距离
func (v Vec3) Dist(o Vec3) float64 {
	return v.Sub(o).Length()
}

// RotateY 绕 Y 轴旋转 angle 弧度
func (v Vec3) RotateY(angle float64) Vec3 {
	s, c := math.Sin(angle), math.Cos(angle)
	return Vec3{v.X*c + v.Z*s, v.Y, -v.X*s + v.Z*c}
}

// RotateX 绕 X 轴旋转 angle 弧度（用于整体俯仰姿态）
func (v Vec3) RotateX(angle float64) Vec3 {
	s, c := math.Sin(angle), math.Cos(angle)
	return Vec3{v.X, v.Y*c - v.Z*s, v.Y*s + v.Z*c}
}

// RGB 浮点颜色，每个通道取值 [0, 1]
// 金属模式下允许通道值超过 1（自发光增强），渲染端负责截断
type RGB struct {
	R, G, B float64
}

// Boost 按系数增强颜色强度，用于金属/水晶模式的 1.5 倍自发光提升
func (c RGB) Boost(k float64) RGB {
	return RGB{c.R * k, c.G * k, c.B * k}
}

// Transform 元素变换：位置 + 欧拉角旋转 + 等比缩放
type Transform struct {
	Pos   Vec3
	Rot   Vec3
	Scale float64
}

// Lerp 标量线性插值
// 公式：a + (b-a)*t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpVec 向量线性插值
func LerpVec(a, b Vec3, t float64) Vec3 {
	return Vec3{Lerp(a.X, b.X, t), Lerp(a.Y, b.Y, t), Lerp(a.Z, b.Z, t)}
}

// DampFactor 计算帧率无关的指数平滑混合系数
//
// 公式：factor = clamp(dt * rate, 0, 1)
// rate 调参目标：完整的聚合⇄散开过渡约 1~2 秒
// 系数与帧时长成正比，帧率波动时过渡速度保持稳定，
// 中途翻转目标只会让插值反向，不会产生跳变
func DampFactor(dt, rate float64) float64 {
	f := dt * rate
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Damp 标量指数平滑：向目标移动一个混合系数的比例
func Damp(current, target, dt, rate float64) float64 {
	return Lerp(current, target, DampFactor(dt, rate))
}

// DampVec 向量指数平滑
func DampVec(current, target Vec3, dt, rate float64) Vec3 {
	return LerpVec(current, target, DampFactor(dt, rate))
}

// DampTransform 变换整体指数平滑
func DampTransform(current, target Transform, dt, rate float64) Transform {
	f := DampFactor(dt, rate)
	return Transform{
		Pos:   LerpVec(current.Pos, target.Pos, f),
		Rot:   LerpVec(current.Rot, target.Rot, f),
		Scale: Lerp(current.Scale, target.Scale, f),
	}
}

// QuadBlend 二次贝塞尔混合：三控制点的抛物线插值
// 公式：(1-t)²·a + 2t(1-t)·b + t²·c
// 用于雪橇滑板弧线、树枝下垂等曲线造型
func QuadBlend(a, b, c Vec3, t float64) Vec3 {
	u := 1 - t
	return a.Scale(u * u).Add(b.Scale(2 * t * u)).Add(c.Scale(t * t))
}
