// 灯串布局
package decor

import (
	"math"
	"math/rand"

	"github.com/decker502/startree/pkg/config"
	"github.com/decker502/startree/pkg/geom"
	"github.com/decker502/startree/pkg/shape"
	"github.com/decker502/startree/pkg/types"
)

// 灯串布局调参
const (
	lightCount     = 260
	lightAngleStep = 0.35 // 螺旋角步长（弧度/灯珠）
	lightMinY      = -8.8
	lightMaxY      = 8.8
	lightOffset    = 0.25 // 灯珠浮在轮廓外侧的距离
	lightScale     = 0.12
	lightSkipR     = 0.1 // 轮廓半径低于此值的高度不布灯
)

var steadyWarmWhite = geom.RGB{R: 1, G: 0.93, B: 0.78}

// generateLights 灯串：环绕主体的螺旋灯珠
//
// 沿高度线性推进、角度固定步长旋绕；轮廓半径 ≤ 0.1 的位置跳过。
// 金属模式切换灯串可见性规则：不闪烁（Speed=0）、统一常亮暖白，
// 其余模式从灯串配色板取色并带随机相位的闪烁
func generateLights(rng *rand.Rand, cfg *config.Config, shapeKind types.ShapeKind, mode types.ColorMode) []Placement {
	colors := cfg.LightColors()
	lights := make([]Placement, 0, lightCount)

	for i := 0; i < lightCount; i++ {
		t := float64(i) / float64(lightCount-1)
		y := lightMinY + t*(lightMaxY-lightMinY)
		maxR := shape.RadiusAt(y, shapeKind)
		if maxR <= lightSkipR {
			continue
		}
		angle := float64(i) * lightAngleStep
		r := maxR + lightOffset
		pos := geom.Vec3{X: r * math.Cos(angle), Y: y, Z: r * math.Sin(angle)}

		light := newPlacement(rng, KindLight, pos, lightScale, colors[rng.Intn(len(colors))])
		if mode.IsMetallic() {
			light.Color = steadyWarmWhite
			light.Speed = 0 // 常亮，不闪烁
		}
		lights = append(lights, light)
	}
	return lights
}
