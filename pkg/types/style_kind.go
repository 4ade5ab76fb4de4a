// Package types 定义共享的基础类型
package types

// StyleKind 定义粒子渲染风格
// 风格影响粒子密度、粒子大小，以及是否启用低多边形方块替代粒子云
type StyleKind int

const (
	// StyleClassic 经典风格：全密度粒子云
	StyleClassic StyleKind = iota
	// StyleCrayon 蜡笔风格：粒子更大更稀疏
	StyleCrayon
	// StyleGeometric 几何风格：通用树形使用离散方块，高密度造型回退到粒子云
	StyleGeometric

	// StyleCount 风格总数，用于循环切换
	StyleCount
)

// String 返回风格的字符串表示
func (s StyleKind) String() string {
	switch s {
	case StyleClassic:
		return "Classic"
	case StyleCrayon:
		return "Crayon"
	case StyleGeometric:
		return "Geometric"
	default:
		return "Unknown"
	}
}

// ParseStyleKind 从字符串解析风格，未知名称回退到 StyleClassic
func ParseStyleKind(name string) StyleKind {
	switch name {
	case "Classic":
		return StyleClassic
	case "Crayon":
		return StyleCrayon
	case "Geometric":
		return StyleGeometric
	default:
		return StyleClassic
	}
}

// Normalize 将非法的风格归一化为默认风格
func (s StyleKind) Normalize() StyleKind {
	if s < StyleClassic || s >= StyleCount {
		return StyleClassic
	}
	return s
}
