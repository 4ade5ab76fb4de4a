// 布局缓存
package scene

import (
	"log"
	"math/rand"

	"github.com/decker502/startree/pkg/config"
	"github.com/decker502/startree/pkg/decor"
	"github.com/decker502/startree/pkg/layout"
	"github.com/decker502/startree/pkg/shape"
	"github.com/decker502/startree/pkg/types"
)

// Key 布局缓存键
// 造型/风格/配色/照片数任一变化都会触发整体重建
type Key struct {
	Shape      types.ShapeKind
	Style      types.StyleKind
	Mode       types.ColorMode
	PhotoCount int
}

// normalize 归一化缓存键（非法枚举回退到默认值，照片数下限 0）
func (k Key) normalize() Key {
	k.Shape = k.Shape.Normalize()
	k.Style = k.Style.Normalize()
	k.Mode = k.Mode.Normalize()
	if k.PhotoCount < 0 {
		k.PhotoCount = 0
	}
	return k
}

// Result 一次生成的全部布局数据
// 对应缓存键不可变；切换期间旧数据继续支撑动画，
// 新数据生成完成后由持有方原子替换指针，动画引擎看不到半成品
type Result struct {
	Key   Key
	Cloud *shape.Cloud
	Decor decor.Set
	Slots []layout.Slot
}

// Cache 按键记忆化的布局缓存
// 生成是偶发的批量计算，缓存保证稳态下每帧成本只剩动画更新
type Cache struct {
	cfg     *config.Config
	entries map[Key]*Result
}

// NewCache 创建布局缓存
func NewCache(cfg *config.Config) *Cache {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Cache{
		cfg:     cfg,
		entries: make(map[Key]*Result),
	}
}

// Get 取出或生成缓存键对应的布局数据
//
// 未命中时运行点云/装饰/照片三类生成器并缓存结果；
// rng 只在未命中时使用（nil 则内部取时间种子）
func (c *Cache) Get(rng *rand.Rand, key Key) *Result {
	key = key.normalize()
	if r, ok := c.entries[key]; ok {
		return r
	}

	r := &Result{
		Key:   key,
		Cloud: shape.Generate(rng, c.cfg, key.Shape, key.Style, key.Mode),
		Decor: decor.Generate(rng, c.cfg, key.Shape, key.Mode),
		Slots: layout.Compute(key.PhotoCount, key.Shape),
	}
	c.entries[key] = r
	log.Printf("[Scene] 布局缓存未命中, 已生成 %s/%s/%s/photos=%d (缓存 %d 项)",
		key.Shape, key.Style, key.Mode, key.PhotoCount, len(c.entries))
	return r
}

// Invalidate 使单个键失效（照片内容变化时强制重建布局）
func (c *Cache) Invalidate(key Key) {
	delete(c.entries, key.normalize())
}

// Clear 清空全部缓存
func (c *Cache) Clear() {
	c.entries = make(map[Key]*Result)
}

// Len 当前缓存项数
func (c *Cache) Len() int {
	return len(c.entries)
}
