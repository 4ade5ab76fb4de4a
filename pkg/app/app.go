// Package app 提供展示应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()。
package app

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/quasilyte/gdata/v2"

	_ "image/jpeg"

	"github.com/decker502/startree/internal/render"
	"github.com/decker502/startree/internal/texture"
	"github.com/decker502/startree/pkg/anim"
	"github.com/decker502/startree/pkg/config"
	"github.com/decker502/startree/pkg/game"
	"github.com/decker502/startree/pkg/gesture"
	"github.com/decker502/startree/pkg/scene"
	"github.com/decker502/startree/pkg/types"
)

// 逻辑屏幕尺寸
const (
	WindowWidth  = 1280
	WindowHeight = 720
)

// gesturePollInterval 手势采样间隔（识别服务上限 10 次/秒）
const gesturePollInterval = 0.1

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ShapeTuning 嵌入的造型调参 YAML，nil 则使用编译内置默认值
	ShapeTuning []byte
}

// photoTex 照片贴图缓存项，版本不符时重新解码
type photoTex struct {
	version int
	img     *ebiten.Image
}

// App 展示应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	settings   *game.SettingsManager
	photoStore *game.PhotoStore
	cache      *scene.Cache
	engine     *anim.Engine
	translator *gesture.Translator
	atlas      *texture.Atlas
	renderer   *render.Renderer
	rng        *rand.Rand

	photoTexs map[int]photoTex

	gestureTimer float64
	dragging     bool
	lastCursorX  int
	dragBias     float64

	// jumpSlot 最近一次"跳到照片"选中的槽位，-1 表示无
	jumpSlot  int
	jumpTimer float64

	verbose                  bool
	pendingWindowSizeReset   bool
	windowSizeResetCountdown int
}

// NewApp 创建并初始化展示应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 跨平台存储：打开失败不是致命错误，降级为纯内存模式
	gdataManager, err := gdata.Open(gdata.Config{AppName: "startree"})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (running in-memory)", err)
		gdataManager = nil
	}

	settings, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[App] Settings load failed: %v", err)
	}
	photoStore, err := game.NewPhotoStore(gdataManager)
	if err != nil {
		log.Printf("[App] Photo manifest load failed: %v", err)
	}

	shapeCfg := config.Load(cfg.ShapeTuning)

	a := &App{
		settings:   settings,
		photoStore: photoStore,
		cache:      scene.NewCache(shapeCfg),
		engine:     anim.NewEngine(),
		translator: gesture.NewTranslator(),
		atlas:      texture.NewAtlas(),
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		photoTexs:  make(map[int]photoTex),
		jumpSlot:   -1,
		verbose:    cfg.Verbose,
	}
	a.renderer = render.NewRenderer(a.atlas)

	a.engine.SetAutoRotate(settings.GetSettings().AutoRotate)
	a.remount()
	log.Printf("[App] Initialized: shape=%s style=%s color=%s photos=%d",
		settings.Shape(), settings.Style(), settings.ColorMode(), photoStore.Count())

	return a, nil
}

// remount 按当前设置取布局数据并挂载到引擎
// 缓存命中时为零成本，未命中时触发一次批量生成
func (a *App) remount() {
	key := scene.Key{
		Shape:      a.settings.Shape(),
		Style:      a.settings.Style(),
		Mode:       a.settings.ColorMode(),
		PhotoCount: a.settings.PhotoCount(),
	}
	a.engine.Mount(a.cache.Get(a.rng, key))
}

// Update 更新动画逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	const dt = 1.0 / 60.0

	a.handleWindowKeys()
	a.handleSelectionKeys()
	a.handleExplodeAndPhotos()
	a.handleDrag()
	a.pollGestures(dt)

	a.engine.SetRotationBias(a.translator.Update(dt) + a.dragBias)
	a.engine.Update(dt)

	if a.jumpTimer > 0 {
		a.jumpTimer -= dt
		if a.jumpTimer <= 0 {
			a.jumpSlot = -1
		}
	}
	return nil
}

// Draw 绘制一帧画面
func (a *App) Draw(screen *ebiten.Image) {
	// 深夜蓝背景
	screen.Fill(color.RGBA{R: 10, G: 14, B: 26, A: 255})
	a.renderer.Draw(screen, a.engine, a.photoImage)

	if a.verbose {
		a.drawHUD(screen)
	}
}

func (a *App) drawHUD(screen *ebiten.Image) {
	s := a.settings
	state := "assembled"
	if a.engine.Exploded() {
		state = "exploded"
	}
	msg := fmt.Sprintf(
		"shape: %s  style: %s  color: %s  photos: %d  [%s]\n"+
			"1-8 shape  S style  C color  Space explode  R rotate  A/D photo\n"+
			"F fist  O palm  V victory  drag to spin",
		s.Shape(), s.Style(), s.ColorMode(), a.photoStore.Count(), state)
	if a.jumpSlot >= 0 {
		msg += fmt.Sprintf("\njump -> slot %d", a.jumpSlot)
	}
	ebitenutil.DebugPrint(screen, msg)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowWidth, WindowHeight
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// photoImage 按槽位取照片贴图；空槽位返回 nil（渲染端画占位图）
// 按版本号缓存解码结果，照片替换后自动重新解码
func (a *App) photoImage(slot int) *ebiten.Image {
	photos := a.photoStore.Photos(a.settings.PhotoCount())
	if slot < 0 || slot >= len(photos) || photos[slot].Empty {
		return nil
	}
	p := photos[slot]

	if tex, ok := a.photoTexs[slot]; ok && tex.version == p.Version {
		return tex.img
	}

	data, err := a.photoStore.PhotoData(p.ID)
	if err != nil {
		log.Printf("[App] Warning: photo %s unreadable: %v", p.ID, err)
		return nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		log.Printf("[App] Warning: photo %s decode failed: %v", p.ID, err)
		return nil
	}

	tex := photoTex{version: p.Version, img: ebiten.NewImageFromImage(img)}
	a.photoTexs[slot] = tex
	return tex.img
}

// addSamplePhoto 往第一个空槽位放一张合成照片
func (a *App) addSamplePhoto() {
	count := a.settings.PhotoCount()
	photos := a.photoStore.Photos(count)
	slot := -1
	for i, p := range photos {
		if p.Empty {
			slot = i
			break
		}
	}
	if slot < 0 {
		log.Printf("[App] All %d slots occupied", count)
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, texture.SamplePhoto(a.photoStore.Count()+1)); err != nil {
		log.Printf("[App] Sample photo encode failed: %v", err)
		return
	}
	if _, err := a.photoStore.SetPhoto(slot, buf.Bytes()); err != nil {
		log.Printf("[App] SetPhoto failed: %v", err)
	}
}

// removeLastPhoto 移除序号最大的非空槽位上的照片
func (a *App) removeLastPhoto() {
	photos := a.photoStore.Photos(a.settings.PhotoCount())
	for i := len(photos) - 1; i >= 0; i-- {
		if !photos[i].Empty {
			if err := a.photoStore.RemovePhoto(i); err != nil {
				log.Printf("[App] RemovePhoto failed: %v", err)
			}
			return
		}
	}
}

// jumpToRandomPhoto 随机选中一张照片（胜利手势触发）
// 选中结果交由 HUD/外层 UI 展示，核心只负责挑选
func (a *App) jumpToRandomPhoto() {
	photos := a.photoStore.Photos(a.settings.PhotoCount())
	var filled []int
	for i, p := range photos {
		if !p.Empty {
			filled = append(filled, i)
		}
	}
	if len(filled) == 0 {
		log.Printf("[App] Jump requested but no photos")
		return
	}
	a.jumpSlot = filled[a.rng.Intn(len(filled))]
	a.jumpTimer = 2.0
	log.Printf("[App] Jump to photo slot %d", a.jumpSlot)
}

// applySelection 设置变化后保存并重挂载
func (a *App) applySelection() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Settings save failed: %v", err)
	}
	a.remount()
}

// shapeForDigit 数字键到造型的映射
var shapeForDigit = map[ebiten.Key]types.ShapeKind{
	ebiten.Key1: types.ShapeTree,
	ebiten.Key2: types.ShapeSnowman,
	ebiten.Key3: types.ShapeReindeer,
	ebiten.Key4: types.ShapeSanta,
	ebiten.Key5: types.ShapeCherryTree,
	ebiten.Key6: types.ShapeCrystal,
	ebiten.Key7: types.ShapeTwinTowers,
	ebiten.Key8: types.ShapeStool,
}
