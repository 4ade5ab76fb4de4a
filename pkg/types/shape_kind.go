// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// ShapeKind 定义展示主体的造型类型
type ShapeKind int

const (
	// ShapeTree 圣诞树（默认造型）
	ShapeTree ShapeKind = iota
	// ShapeSnowman 雪人
	ShapeSnowman
	// ShapeReindeer 驯鹿拉雪橇（两只驯鹿 + 雪橇）
	ShapeReindeer
	// ShapeSanta 圣诞老人
	ShapeSanta
	// ShapeCherryTree 樱花树
	ShapeCherryTree
	// ShapeCrystal 水晶钻石
	ShapeCrystal
	// ShapeTwinTowers 双子塔
	ShapeTwinTowers
	// ShapeStool 叠凳
	ShapeStool

	// ShapeCount 造型总数，用于循环切换
	ShapeCount
)

// String 返回造型类型的字符串表示
func (s ShapeKind) String() string {
	switch s {
	case ShapeTree:
		return "Tree"
	case ShapeSnowman:
		return "Snowman"
	case ShapeReindeer:
		return "Reindeer"
	case ShapeSanta:
		return "Santa"
	case ShapeCherryTree:
		return "CherryTree"
	case ShapeCrystal:
		return "Crystal"
	case ShapeTwinTowers:
		return "TwinTowers"
	case ShapeStool:
		return "Stool"
	default:
		return "Unknown"
	}
}

// ParseShapeKind 从字符串解析造型类型
// 未知名称时回退到默认造型 ShapeTree，不返回错误
func ParseShapeKind(name string) ShapeKind {
	switch name {
	case "Tree":
		return ShapeTree
	case "Snowman":
		return ShapeSnowman
	case "Reindeer":
		return ShapeReindeer
	case "Santa":
		return ShapeSanta
	case "CherryTree":
		return ShapeCherryTree
	case "Crystal":
		return ShapeCrystal
	case "TwinTowers":
		return ShapeTwinTowers
	case "Stool":
		return ShapeStool
	default:
		return ShapeTree
	}
}

// Valid 检查造型类型是否在合法范围内
func (s ShapeKind) Valid() bool {
	return s >= ShapeTree && s < ShapeCount
}

// Normalize 将非法的造型类型归一化为默认造型
func (s ShapeKind) Normalize() ShapeKind {
	if !s.Valid() {
		return ShapeTree
	}
	return s
}
