// Package config 定义展示主体的调参配置
package config

import (
	"log"

	"github.com/decker502/startree/pkg/geom"
	"github.com/decker502/startree/pkg/types"
	"github.com/lucasb-eyer/go-colorful"
)

// PaletteConfig 装饰配色板
// 颜色以十六进制字符串存储，便于 yaml 覆盖；解析失败的条目跳过
type PaletteConfig struct {
	// Ornament 挂饰球配色
	Ornament []string `yaml:"ornament"`
	// OrnamentSilver 银色模式下的挂饰球配色
	// 银色主体上红金对比过强，换成冷色系保持对比（视觉调参，无推导）
	OrnamentSilver []string `yaml:"ornamentSilver"`
	// Gift 礼物盒配色
	Gift []string `yaml:"gift"`
	// Flower 樱花花朵配色
	Flower []string `yaml:"flower"`
	// Gem 水晶宝石配色
	Gem []string `yaml:"gem"`
	// Light 灯串配色
	Light []string `yaml:"light"`
}

// defaultPalettes 内置配色板
// 所有色值为视觉调参结果，按原样保留，不做语义推导
func defaultPalettes() PaletteConfig {
	return PaletteConfig{
		Ornament:       []string{"#ef4444", "#f59e0b", "#d4af37", "#dc2626", "#fbbf24"},
		OrnamentSilver: []string{"#60a5fa", "#a5b4fc", "#e0e7ff", "#38bdf8", "#c0c0c0"},
		Gift:           []string{"#dc2626", "#16a34a", "#2563eb", "#d4af37"},
		Flower:         []string{"#fbcfe8", "#f9a8d4", "#f472b6", "#fdf2f8"},
		Gem:            []string{"#e0f2fe", "#bae6fd", "#ffffff", "#a5f3fc"},
		Light:          []string{"#fff7cc", "#ffd27a", "#ffedb3"},
	}
}

// parseHexList 解析十六进制颜色列表，非法条目记录警告后跳过
func parseHexList(hexes []string) []geom.RGB {
	out := make([]geom.RGB, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			log.Printf("[Config] Warning: 非法颜色 %q: %v（跳过）", h, err)
			continue
		}
		out = append(out, geom.RGB{R: c.R, G: c.G, B: c.B})
	}
	return out
}

// OrnamentColors 返回 (造型, 配色模式) 下的挂饰球配色
// 银色模式替换为冷色板以保持对比度
func (c *Config) OrnamentColors(mode types.ColorMode) []geom.RGB {
	if mode.Normalize() == types.ColorSilver {
		return nonEmpty(parseHexList(c.Palettes.OrnamentSilver), defaultPalettes().OrnamentSilver)
	}
	return nonEmpty(parseHexList(c.Palettes.Ornament), defaultPalettes().Ornament)
}

// GiftColors 返回礼物盒配色
func (c *Config) GiftColors() []geom.RGB {
	return nonEmpty(parseHexList(c.Palettes.Gift), defaultPalettes().Gift)
}

// FlowerColors 返回樱花配色
func (c *Config) FlowerColors() []geom.RGB {
	return nonEmpty(parseHexList(c.Palettes.Flower), defaultPalettes().Flower)
}

// GemColors 返回宝石配色
func (c *Config) GemColors() []geom.RGB {
	return nonEmpty(parseHexList(c.Palettes.Gem), defaultPalettes().Gem)
}

// LightColors 返回灯串配色
func (c *Config) LightColors() []geom.RGB {
	return nonEmpty(parseHexList(c.Palettes.Light), defaultPalettes().Light)
}

// nonEmpty 配色板解析结果为空时回退到内置默认，保证调用方永远拿到可用颜色
func nonEmpty(parsed []geom.RGB, fallback []string) []geom.RGB {
	if len(parsed) > 0 {
		return parsed
	}
	return parseHexList(fallback)
}
