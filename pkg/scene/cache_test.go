package scene

import (
	"math/rand"
	"testing"

	"github.com/decker502/startree/pkg/types"
)

// TestCache_Memoize 测试命中缓存时返回同一份数据
func TestCache_Memoize(t *testing.T) {
	c := NewCache(nil)
	rng := rand.New(rand.NewSource(7))
	key := Key{Shape: types.ShapeTree, Style: types.StyleClassic, Mode: types.ColorEmerald, PhotoCount: 6}

	r1 := c.Get(rng, key)
	r2 := c.Get(rng, key)
	if r1 != r2 {
		t.Error("相同键应命中缓存, 返回同一指针")
	}
	if c.Len() != 1 {
		t.Errorf("缓存项数 = %d, 期望 1", c.Len())
	}
	if r1.Cloud == nil || len(r1.Cloud.Points) == 0 {
		t.Error("缓存结果应包含点云数据")
	}
	if len(r1.Slots) != 6 {
		t.Errorf("照片槽位数 = %d, 期望 6", len(r1.Slots))
	}
}

// TestCache_KeyNormalize 测试非法键归一化后与默认键共用缓存
func TestCache_KeyNormalize(t *testing.T) {
	c := NewCache(nil)
	rng := rand.New(rand.NewSource(7))

	r1 := c.Get(rng, Key{Shape: types.ShapeKind(99), Style: types.StyleKind(99), Mode: types.ColorMode(99), PhotoCount: -3})
	r2 := c.Get(rng, Key{Shape: types.ShapeTree, Style: types.StyleClassic, Mode: types.ColorEmerald, PhotoCount: 0})
	if r1 != r2 {
		t.Error("非法键归一化后应命中默认键的缓存")
	}
	if c.Len() != 1 {
		t.Errorf("缓存项数 = %d, 期望 1", c.Len())
	}
}

// TestCache_Invalidate 测试单键失效与整体清空
func TestCache_Invalidate(t *testing.T) {
	c := NewCache(nil)
	rng := rand.New(rand.NewSource(7))
	key := Key{Shape: types.ShapeCrystal, Style: types.StyleClassic, Mode: types.ColorGold, PhotoCount: 4}

	r1 := c.Get(rng, key)
	c.Invalidate(key)
	r2 := c.Get(rng, key)
	if r1 == r2 {
		t.Error("失效后应重新生成")
	}

	c.Get(rng, Key{Shape: types.ShapeSnowman})
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("清空后缓存项数 = %d", c.Len())
	}
}

// TestCache_DistinctKeys 测试不同键互不干扰
func TestCache_DistinctKeys(t *testing.T) {
	c := NewCache(nil)
	rng := rand.New(rand.NewSource(7))

	rTree := c.Get(rng, Key{Shape: types.ShapeTree, PhotoCount: 3})
	rSnow := c.Get(rng, Key{Shape: types.ShapeSnowman, PhotoCount: 3})
	if rTree == rSnow {
		t.Error("不同造型不应共用缓存项")
	}
	if rTree.Key.Shape != types.ShapeTree || rSnow.Key.Shape != types.ShapeSnowman {
		t.Error("结果中的键应与请求一致")
	}
}
