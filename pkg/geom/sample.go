// Package geom 提供展示主体生成与动画所需的基础数学工具
package geom

import (
	"math"
	"math/rand"
)

// GoldenAngle 黄金角（弧度）
// 公式：π(3-√5) ≈ 2.39996，√5 非编译期常量，故取展开后的字面值
// 按黄金角步进的螺旋布点（叶序法）可在任意数量下保持角度最大分散，
// 不产生可见的重复列
const GoldenAngle = 2.3999632297286533

// maxRejectAttempts 拒绝采样的重试上限
// 超出上限后返回确定性的回退点，保证采样一定终止
const maxRejectAttempts = 100

// SqrtDisk 在半径 radius 的圆盘内按面积均匀采样一个半径值
//
// 必须使用 sqrt(uniform)：若直接使用 uniform 会导致点向圆心聚集
// （半径 r 处的周长与 r 成正比，均匀面密度要求 P(R≤r) ∝ r²）
func SqrtDisk(rng *rand.Rand, radius float64) float64 {
	return radius * math.Sqrt(rng.Float64())
}

// OnDisk 在半径 radius 的圆盘内按面积均匀采样一个点（XZ 平面）
func OnDisk(rng *rand.Rand, radius float64) (x, z float64) {
	r := SqrtDisk(rng, radius)
	theta := rng.Float64() * 2 * math.Pi
	return r * math.Cos(theta), r * math.Sin(theta)
}

// InSphere 在球体内均匀采样一个点（拒绝采样法）
//
// 在 [-1,1]³ 立方体内取随机点，落在单位球外则重试；
// 重试超过上限时回退到球心，保证终止（见错误处理约定）
func InSphere(rng *rand.Rand, center Vec3, radius float64) Vec3 {
	for i := 0; i < maxRejectAttempts; i++ {
		p := Vec3{
			X: rng.Float64()*2 - 1,
			Y: rng.Float64()*2 - 1,
			Z: rng.Float64()*2 - 1,
		}
		if p.X*p.X+p.Y*p.Y+p.Z*p.Z <= 1 {
			return center.Add(p.Scale(radius))
		}
	}
	return center
}

// OnSphereSurface 在球面上均匀采样一个点
// 拒绝采样取方向向量，归一化后缩放到球面；重试耗尽时回退到球心正上方
func OnSphereSurface(rng *rand.Rand, center Vec3, radius float64) Vec3 {
	for i := 0; i < maxRejectAttempts; i++ {
		p := Vec3{
			X: rng.Float64()*2 - 1,
			Y: rng.Float64()*2 - 1,
			Z: rng.Float64()*2 - 1,
		}
		l := p.Length()
		if l > 1e-6 && l <= 1 {
			return center.Add(p.Scale(radius / l))
		}
	}
	return center.Add(Vec3{0, radius, 0})
}

// SpiralAngle 黄金角螺旋中第 i 个点的角度
// 公式：θ = i × GoldenAngle × multiplier
// multiplier 用于按造型微调螺旋密度，1.0 为标准叶序
func SpiralAngle(i int, multiplier float64) float64 {
	return float64(i) * GoldenAngle * multiplier
}

// DrapePhase 垂挂相位：在 [0,1] 间随角度正弦起伏
//
// 公式：(sin(angle × frequency) + 1) / 2
// 配合 (1 - drapePhase) 缩放的径向外凸和垂直下坠偏移，
// 可让花环/灯串在固定角度间隔的挂点之间呈现扇贝状下垂
func DrapePhase(angle, frequency float64) float64 {
	return (math.Sin(angle*frequency) + 1) / 2
}

// Jitter 在 [-amount, amount] 区间内取随机偏移
func Jitter(rng *rand.Rand, amount float64) float64 {
	return (rng.Float64()*2 - 1) * amount
}
