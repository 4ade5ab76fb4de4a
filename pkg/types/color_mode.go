// Package types 定义共享的基础类型
package types

// ColorMode 定义主体配色模式
// 除固定的几种叶色外，还包括逐粒子循环色相的彩虹模式，
// 以及提升自发光强度、切换灯串可见性规则的金/银金属模式
type ColorMode int

const (
	// ColorEmerald 祖母绿（默认叶色 #064e3b）
	ColorEmerald ColorMode = iota
	// ColorForest 松林绿 #14532d
	ColorForest
	// ColorMidnight 午夜蓝 #1e3a5f
	ColorMidnight
	// ColorBurgundy 酒红 #7f1d1d
	ColorBurgundy
	// ColorRose 玫红 #9d174d
	ColorRose
	// ColorRainbow 彩虹模式：逐粒子按高度循环色相
	ColorRainbow
	// ColorGold 金色金属模式 #d4af37
	ColorGold
	// ColorSilver 银色金属模式 #c0c0c0
	ColorSilver

	// ColorModeCount 配色模式总数，用于循环切换
	ColorModeCount
)

// String 返回配色模式的字符串表示
func (c ColorMode) String() string {
	switch c {
	case ColorEmerald:
		return "Emerald"
	case ColorForest:
		return "Forest"
	case ColorMidnight:
		return "Midnight"
	case ColorBurgundy:
		return "Burgundy"
	case ColorRose:
		return "Rose"
	case ColorRainbow:
		return "Rainbow"
	case ColorGold:
		return "Gold"
	case ColorSilver:
		return "Silver"
	default:
		return "Unknown"
	}
}

// Hex 返回配色模式对应的基础颜色（彩虹模式返回占位绿色）
func (c ColorMode) Hex() string {
	switch c {
	case ColorEmerald:
		return "#064e3b"
	case ColorForest:
		return "#14532d"
	case ColorMidnight:
		return "#1e3a5f"
	case ColorBurgundy:
		return "#7f1d1d"
	case ColorRose:
		return "#9d174d"
	case ColorRainbow:
		return "#10b981"
	case ColorGold:
		return "#d4af37"
	case ColorSilver:
		return "#c0c0c0"
	default:
		return "#064e3b"
	}
}

// ParseColorMode 从名称或十六进制颜色解析配色模式
// 未知输入回退到默认的 ColorEmerald
func ParseColorMode(name string) ColorMode {
	for c := ColorEmerald; c < ColorModeCount; c++ {
		if name == c.String() || name == c.Hex() {
			return c
		}
	}
	return ColorEmerald
}

// IsMetallic 金/银模式返回 true
// 金属模式下粒子颜色强度提升 1.5 倍，灯串切换为常亮暖白
func (c ColorMode) IsMetallic() bool {
	return c == ColorGold || c == ColorSilver
}

// Normalize 将非法的配色模式归一化为默认配色
func (c ColorMode) Normalize() ColorMode {
	if c < ColorEmerald || c >= ColorModeCount {
		return ColorEmerald
	}
	return c
}
