package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/decker502/startree/pkg/layout"
	"github.com/decker502/startree/pkg/types"
)

// DisplaySettings 全局展示设置
// 注意：这些设置是全局的，不绑定到特定照片集
type DisplaySettings struct {
	// 造型/风格/配色以名字持久化，未知名字在读取时回退到默认值
	Shape     string `yaml:"shape"`     // 造型，如 "Tree"
	Style     string `yaml:"style"`     // 渲染风格，如 "Classic"
	ColorMode string `yaml:"colorMode"` // 配色，如 "Emerald"

	PhotoCount int  `yaml:"photoCount"` // 照片槽位数
	AutoRotate bool `yaml:"autoRotate"` // 容器自转开关
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否全屏
}

// DefaultDisplaySettings 返回默认设置
func DefaultDisplaySettings() *DisplaySettings {
	return &DisplaySettings{
		Shape:      types.ShapeTree.String(),
		Style:      types.StyleClassic.String(),
		ColorMode:  types.ColorEmerald.String(),
		PhotoCount: layout.DefaultSlotCount,
		AutoRotate: true,
		Fullscreen: false,
	}
}

// SettingsManager 设置管理器
// 负责展示设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager   // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *DisplaySettings // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "display"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 如果加载设置失败返回错误（不影响创建）
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultDisplaySettings(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
//
// 返回：
//   - error: 如果反序列化失败返回错误
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultDisplaySettings()
		return nil
	}

	// 检查设置文件是否存在
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultDisplaySettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		// 文件存在但加载失败，使用默认设置
		sm.settings = DefaultDisplaySettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded DisplaySettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultDisplaySettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = sanitizeSettings(&loaded)
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
//
// 返回：
//   - error: 如果序列化或保存失败返回错误
func (sm *SettingsManager) Save() error {
	// 降级模式：无法持久化，但不报错
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *DisplaySettings {
	return sm.settings
}

// Shape 当前造型（未知名字回退到默认造型）
func (sm *SettingsManager) Shape() types.ShapeKind {
	return types.ParseShapeKind(sm.settings.Shape)
}

// Style 当前风格
func (sm *SettingsManager) Style() types.StyleKind {
	return types.ParseStyleKind(sm.settings.Style)
}

// ColorMode 当前配色
func (sm *SettingsManager) ColorMode() types.ColorMode {
	return types.ParseColorMode(sm.settings.ColorMode)
}

// PhotoCount 当前照片槽位数（非正值回退到默认槽位数）
func (sm *SettingsManager) PhotoCount() int {
	if sm.settings.PhotoCount <= 0 {
		return layout.DefaultSlotCount
	}
	return sm.settings.PhotoCount
}

// SetShape 设置造型
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetShape(k types.ShapeKind) {
	sm.settings.Shape = k.Normalize().String()
}

// SetStyle 设置风格
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetStyle(k types.StyleKind) {
	sm.settings.Style = k.Normalize().String()
}

// SetColorMode 设置配色
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetColorMode(m types.ColorMode) {
	sm.settings.ColorMode = m.Normalize().String()
}

// SetPhotoCount 设置照片槽位数
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetPhotoCount(n int) {
	if n <= 0 {
		n = layout.DefaultSlotCount
	}
	sm.settings.PhotoCount = n
}

// SetAutoRotate 设置容器自转开关
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetAutoRotate(enabled bool) {
	sm.settings.AutoRotate = enabled
}

// SetFullscreen 设置全屏模式
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// sanitizeSettings 校验读入的设置，未知枚举名与非法数值替换为默认值
func sanitizeSettings(s *DisplaySettings) *DisplaySettings {
	out := *s
	out.Shape = types.ParseShapeKind(s.Shape).String()
	out.Style = types.ParseStyleKind(s.Style).String()
	out.ColorMode = types.ParseColorMode(s.ColorMode).String()
	if out.PhotoCount <= 0 {
		out.PhotoCount = layout.DefaultSlotCount
	}
	return &out
}
