// Package config 定义展示主体的调参配置
//
// 粒子密度、装饰数量、配色板等均可通过嵌入的 yaml 覆盖；
// yaml 缺失或解析失败时回退到编译期内置的默认值，不会让启动失败。
package config

import (
	"fmt"
	"log"

	"github.com/decker502/startree/pkg/types"
	"gopkg.in/yaml.v3"
)

// ShapeTuning 单个造型的调参项
type ShapeTuning struct {
	// BaseCount 经典风格下的粒子基数
	BaseCount int `yaml:"baseCount"`
	// Decorated 是否生成装饰物（挂饰/花/花环等）
	Decorated bool `yaml:"decorated"`
	// HighDensity 高密度造型：几何风格下也保持粒子云，不走方块路径
	HighDensity bool `yaml:"highDensity"`
}

// Config 展示主体生成配置
type Config struct {
	// Shapes 按造型名称索引的调参表
	Shapes map[string]ShapeTuning `yaml:"shapes"`
	// StyleDensity 各风格的密度倍率（乘在 BaseCount 上）
	StyleDensity map[string]float64 `yaml:"styleDensity"`
	// StyleSize 各风格的粒子大小倍率（渲染提示，核心不解释）
	StyleSize map[string]float64 `yaml:"styleSize"`
	// Palettes 装饰配色板
	Palettes PaletteConfig `yaml:"palettes"`
}

// Default 返回内置默认配置
//
// 粒子基数按原版视觉密度调定：
// 驯鹿/圣诞老人解剖部位多，需要最高密度；水晶上限 8000；叠凳最稀疏
func Default() *Config {
	return &Config{
		Shapes: map[string]ShapeTuning{
			"Tree":       {BaseCount: 12000, Decorated: true, HighDensity: false},
			"Snowman":    {BaseCount: 9000, Decorated: false, HighDensity: true},
			"Reindeer":   {BaseCount: 15000, Decorated: false, HighDensity: true},
			"Santa":      {BaseCount: 14000, Decorated: false, HighDensity: true},
			"CherryTree": {BaseCount: 10000, Decorated: true, HighDensity: false},
			"Crystal":    {BaseCount: 8000, Decorated: true, HighDensity: true},
			"TwinTowers": {BaseCount: 9000, Decorated: true, HighDensity: false},
			"Stool":      {BaseCount: 4000, Decorated: false, HighDensity: false},
		},
		StyleDensity: map[string]float64{
			"Classic":   1.0,
			"Crayon":    0.55, // 蜡笔风格粒子更大，密度减半左右
			"Geometric": 0.08, // 几何方块按 1/12 左右取数
		},
		StyleSize: map[string]float64{
			"Classic":   1.0,
			"Crayon":    2.2,
			"Geometric": 1.0,
		},
		Palettes: defaultPalettes(),
	}
}

// Load 从 yaml 数据加载配置
// 解析失败时记录警告并返回默认配置（错误不向上传播）
func Load(data []byte) *Config {
	cfg := Default()
	if len(data) == 0 {
		return cfg
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		log.Printf("[Config] Warning: 配置解析失败: %v（使用内置默认值）", err)
		return Default()
	}
	if err := cfg.validate(); err != nil {
		log.Printf("[Config] Warning: 配置校验失败: %v（使用内置默认值）", err)
		return Default()
	}
	return cfg
}

// validate 检查配置完整性：所有造型必须有调参项且基数为正
func (c *Config) validate() error {
	for s := types.ShapeTree; s < types.ShapeCount; s++ {
		tuning, ok := c.Shapes[s.String()]
		if !ok {
			return fmt.Errorf("缺少造型 %s 的调参项", s)
		}
		if tuning.BaseCount <= 0 {
			return fmt.Errorf("造型 %s 的粒子基数非法: %d", s, tuning.BaseCount)
		}
	}
	return nil
}

// Tuning 返回指定造型的调参项（非法造型归一化后查表）
func (c *Config) Tuning(shape types.ShapeKind) ShapeTuning {
	return c.Shapes[shape.Normalize().String()]
}

// ParticleCount 返回 (造型, 风格) 组合下的目标粒子数
//
// 几何风格的密度倍率是方块数与粒子数之比，只对产出离散方块的
// 通用树形生效；其余造型在几何风格下仍为粒子云，按经典密度生成
// （低多边形方块只适用于通用树形轮廓）
func (c *Config) ParticleCount(shape types.ShapeKind, style types.StyleKind) int {
	shape = shape.Normalize()
	tuning := c.Tuning(shape)
	style = style.Normalize()
	if style == types.StyleGeometric && (shape != types.ShapeTree || tuning.HighDensity) {
		style = types.StyleClassic
	}
	mult, ok := c.StyleDensity[style.String()]
	if !ok {
		mult = 1.0
	}
	n := int(float64(tuning.BaseCount) * mult)
	if n < 1 {
		n = 1
	}
	return n
}

// ParticleScale 返回风格对应的粒子大小倍率
func (c *Config) ParticleScale(style types.StyleKind) float64 {
	if s, ok := c.StyleSize[style.Normalize().String()]; ok {
		return s
	}
	return 1.0
}
