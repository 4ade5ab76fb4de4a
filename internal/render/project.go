// Package render 演示渲染器
//
// 把动画引擎的输出（粒子位置、装饰/照片变换）投影到屏幕并用
// ebiten 画出来。所有元素都是公告板精灵，按深度画家排序，
// 由远及近绘制。投影是纯函数，与绘制分离，便于无图形环境测试。
package render

import (
	"github.com/decker502/startree/pkg/geom"
)

// 相机参数：固定机位俯视场景中心，容器旋转由 yaw 传入
const (
	cameraDistance = 30.0
	cameraHeight   = 3.0
	// focalScale 焦距与屏幕高度的比值
	focalScale = 1.15
	// nearClip 近裁剪面，更近的点不绘制
	nearClip = 1.0
)

// Projected 一个点的投影结果
type Projected struct {
	X, Y float64
	// Scale 透视缩放因子，用于精灵尺寸
	Scale float64
	// Depth 相机空间深度，画家排序用
	Depth float64
}

// Project 把世界坐标投影到屏幕
//
// yaw 为容器旋转角；返回 false 表示点在近裁剪面之内，应剔除
func Project(p geom.Vec3, yaw float64, w, h int) (Projected, bool) {
	// 容器旋转后平移到相机空间（相机在 +Z 方向看向原点）
	v := p.RotateY(yaw)
	v.Y -= cameraHeight
	z := cameraDistance - v.Z
	if z < nearClip {
		return Projected{}, false
	}

	focal := float64(h) * focalScale
	s := focal / z
	return Projected{
		X:     float64(w)/2 + v.X*s,
		Y:     float64(h)/2 - v.Y*s,
		Scale: s,
		Depth: z,
	}, true
}

// depthShade 远处元素按深度轻微压暗，增强层次
func depthShade(depth float64) float64 {
	t := (depth - cameraDistance + 10) / 30
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return 1 - 0.35*t
}
