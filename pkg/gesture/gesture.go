// Package gesture 手势信号翻译
//
// 手势识别在核心之外异步进行，以 ≤10 次/秒的频率被轮询为
// (标签, 手部横向位置) 采样；本包把离散采样翻译成动画输入：
//   - 持续握拳 → 按手部偏离屏幕中心的程度给出旋转速度偏置
//   - 张开手掌（上升沿）→ 翻转聚合/散开标志
//   - 胜利手势（上升沿）→ 触发一次"跳到随机照片"请求
//
// 上升沿判定保证长按一个手势只触发一次动作；采样间隔内偏置按
// 帧时间平滑过渡，松手后自动衰减归零。
package gesture

import "github.com/decker502/startree/pkg/geom"

// Label 手势标签
type Label int

const (
	// LabelNone 未识别到手势
	LabelNone Label = iota
	// LabelOpenPalm 张开手掌
	LabelOpenPalm
	// LabelVictory 胜利手势（V 字）
	LabelVictory
	// LabelClosedFist 握拳
	LabelClosedFist
)

// String 实现 fmt.Stringer
func (l Label) String() string {
	switch l {
	case LabelOpenPalm:
		return "open_palm"
	case LabelVictory:
		return "victory"
	case LabelClosedFist:
		return "closed_fist"
	default:
		return "none"
	}
}

// Sample 一次手势采样
// HandX 为手部横向位置，0 为画面最左，1 为最右
type Sample struct {
	Label Label
	HandX float64
}

// Events 一次采样翻译出的离散动作
type Events struct {
	// ToggleExplode 翻转聚合/散开标志
	ToggleExplode bool
	// JumpToPhoto 跳到随机照片
	JumpToPhoto bool
}

// 偏置调参
const (
	// biasScale 手部位于画面边缘时的偏置幅值 (rad/s)
	biasScale = 1.0
	// attackRate 握拳期间偏置趋向目标的速率
	attackRate = 5.0
	// decayRate 松手后偏置衰减速率
	decayRate = 3.0
)

// Translator 手势采样翻译器
type Translator struct {
	last       Label
	fistActive bool
	target     float64
	bias       float64
}

// NewTranslator 创建翻译器
func NewTranslator() *Translator {
	return &Translator{}
}

// Feed 送入一次采样，返回其触发的离散动作
// 采样频率远低于帧率，离散动作在采样时判定，偏置在 Update 中逐帧平滑
func (t *Translator) Feed(s Sample) Events {
	var ev Events

	switch s.Label {
	case LabelOpenPalm:
		ev.ToggleExplode = t.last != LabelOpenPalm
	case LabelVictory:
		ev.JumpToPhoto = t.last != LabelVictory
	}

	t.fistActive = s.Label == LabelClosedFist
	if t.fistActive {
		x := s.HandX
		if x < 0 {
			x = 0
		} else if x > 1 {
			x = 1
		}
		// 中心为死区零点，左右对称
		t.target = (x - 0.5) * 2 * biasScale
	} else {
		t.target = 0
	}

	t.last = s.Label
	return ev
}

// Update 按帧推进偏置平滑，返回当前偏置 (rad/s)
func (t *Translator) Update(dt float64) float64 {
	rate := decayRate
	if t.fistActive {
		rate = attackRate
	}
	t.bias = geom.Damp(t.bias, t.target, dt, rate)
	return t.bias
}

// Bias 当前偏置
func (t *Translator) Bias() float64 {
	return t.bias
}
