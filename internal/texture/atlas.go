package texture

import "github.com/hajimehoshi/ebiten/v2"

// Atlas 启动时合成一次的全部贴图句柄
// 渲染端只持有句柄，不关心像素内容
type Atlas struct {
	// Frames 波点相框皮肤，按槽位序号交替取用
	Frames [PaletteCount]*ebiten.Image
	// Placeholder 空槽位的"添加照片"占位图
	Placeholder *ebiten.Image
	// Particle 软边圆形粒子贴图
	Particle *ebiten.Image
}

// NewAtlas 合成全部贴图并上传为 ebiten 图像
func NewAtlas() *Atlas {
	a := &Atlas{
		Placeholder: ebiten.NewImageFromImage(AddPlaceholder()),
		Particle:    ebiten.NewImageFromImage(Sprite()),
	}
	for i := range a.Frames {
		a.Frames[i] = ebiten.NewImageFromImage(FrameSkin(i))
	}
	return a
}

// Frame 按槽位序号取相框皮肤（交替配色）
func (a *Atlas) Frame(slot int) *ebiten.Image {
	if slot < 0 {
		slot = 0
	}
	return a.Frames[slot%PaletteCount]
}
