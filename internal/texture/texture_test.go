package texture

import (
	"image"
	"testing"
)

func at(img image.Image, x, y int) (r, g, b, a uint32) {
	return img.At(x, y).RGBA()
}

// TestFrameSkin_PalettesDiffer 测试两套配色确实不同
func TestFrameSkin_PalettesDiffer(t *testing.T) {
	s0 := FrameSkin(0)
	s1 := FrameSkin(1)

	if s0.Bounds().Dx() != FrameSize || s0.Bounds().Dy() != FrameSize {
		t.Fatalf("尺寸 = %v, 期望 %dx%d", s0.Bounds(), FrameSize, FrameSize)
	}

	// 取照片窗口内一点（纯底色，无波点干扰）
	cx, cy := FrameSize/2, FrameSize/2
	r0, g0, _, _ := at(s0, cx, cy)
	r1, g1, _, _ := at(s1, cx, cy)
	if r0 == r1 && g0 == g1 {
		t.Error("两套配色的底色不应相同")
	}
	// 第一套红底：红通道显著高于绿
	if r0 <= g0 {
		t.Errorf("配色 0 应为红底: r=%d g=%d", r0, g0)
	}
	// 第二套绿底
	if g1 <= r1 {
		t.Errorf("配色 1 应为绿底: r=%d g=%d", r1, g1)
	}
}

// TestFrameSkin_PaletteWraps 测试配色序号取模与负数安全
func TestFrameSkin_PaletteWraps(t *testing.T) {
	a := FrameSkin(0)
	b := FrameSkin(PaletteCount)
	ra, _, _, _ := at(a, 4, 4)
	rb, _, _, _ := at(b, 4, 4)
	if ra != rb {
		t.Error("序号取模后应得到同一套配色")
	}
	// 负序号不崩溃
	FrameSkin(-3)
}

// TestSprite_SoftEdge 测试粒子贴图中心实、边缘透明
func TestSprite_SoftEdge(t *testing.T) {
	s := Sprite()
	c := SpriteSize / 2
	_, _, _, centerA := at(s, c, c)
	_, _, _, cornerA := at(s, 0, 0)
	if centerA == 0 {
		t.Error("中心不应透明")
	}
	if cornerA != 0 {
		t.Errorf("角落应完全透明: alpha=%d", cornerA)
	}
}

// TestAddPlaceholder_HasPlus 测试占位图中心画了加号
func TestAddPlaceholder_HasPlus(t *testing.T) {
	p := AddPlaceholder()
	cx, cy := FrameSize/2, FrameSize/2
	r, _, _, _ := at(p, cx, cy)
	// 加号为浅灰，明显亮于暗底
	br, _, _, _ := at(p, cx+60, cy+60)
	if r <= br {
		t.Errorf("中心加号应亮于底色: center=%d bg=%d", r, br)
	}
}
