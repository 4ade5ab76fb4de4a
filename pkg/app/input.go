package app

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/startree/pkg/gesture"
)

// 拖拽调参
const (
	// dragRotateScale 每像素水平拖拽产生的旋转偏置 (rad/s)
	dragRotateScale = 0.012
	// dragBiasDecay 松开后拖拽偏置的衰减系数（每帧）
	dragBiasDecay = 0.90
)

// handleWindowKeys F11 全屏切换（退出全屏后延迟几帧恢复窗口尺寸）
func (a *App) handleWindowKeys() {
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(WindowWidth, WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}
}

// handleSelectionKeys 造型/风格/配色/自转的键盘切换
func (a *App) handleSelectionKeys() {
	for key, kind := range shapeForDigit {
		if inpututil.IsKeyJustPressed(key) && a.settings.Shape() != kind {
			a.settings.SetShape(kind)
			log.Printf("[App] Shape -> %s", kind)
			a.applySelection()
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		a.settings.SetStyle((a.settings.Style() + 1).Normalize())
		log.Printf("[App] Style -> %s", a.settings.Style())
		a.applySelection()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.settings.SetColorMode((a.settings.ColorMode() + 1).Normalize())
		log.Printf("[App] Color -> %s", a.settings.ColorMode())
		a.applySelection()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.engine.SetAutoRotate(!a.engine.AutoRotate())
		a.settings.SetAutoRotate(a.engine.AutoRotate())
		a.applySelection()
	}
}

// handleExplodeAndPhotos 聚合/散开切换与演示照片增删
func (a *App) handleExplodeAndPhotos() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.engine.ToggleExploded()
		log.Printf("[App] Exploded -> %v", a.engine.Exploded())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		a.addSamplePhoto()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		a.removeLastPhoto()
	}
}

// handleDrag 水平拖拽转化为旋转偏置，松开后逐帧衰减
func (a *App) handleDrag() {
	x, _ := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if pressed {
		if a.dragging {
			a.dragBias = float64(x-a.lastCursorX) * dragRotateScale * 60
		} else {
			a.dragging = true
		}
		a.lastCursorX = x
	} else {
		a.dragging = false
		a.dragBias *= dragBiasDecay
		if a.dragBias < 0.001 && a.dragBias > -0.001 {
			a.dragBias = 0
		}
	}
}

// pollGestures 模拟手势源：按住 F/O/V 键时以识别服务的节奏产出采样
//
// F 为握拳（手部横向位置取光标 X），O 为张开手掌，V 为胜利手势。
// 真实识别服务接入时替换这里的采样来源即可，翻译逻辑不变。
func (a *App) pollGestures(dt float64) {
	a.gestureTimer += dt
	if a.gestureTimer < gesturePollInterval {
		return
	}
	a.gestureTimer -= gesturePollInterval

	sample := gesture.Sample{Label: gesture.LabelNone}
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyF):
		x, _ := ebiten.CursorPosition()
		sample = gesture.Sample{
			Label: gesture.LabelClosedFist,
			HandX: float64(x) / float64(WindowWidth),
		}
	case ebiten.IsKeyPressed(ebiten.KeyO):
		sample.Label = gesture.LabelOpenPalm
	case ebiten.IsKeyPressed(ebiten.KeyV):
		sample.Label = gesture.LabelVictory
	}

	ev := a.translator.Feed(sample)
	if ev.ToggleExplode {
		a.engine.ToggleExploded()
		log.Printf("[Gesture] OpenPalm -> exploded=%v", a.engine.Exploded())
	}
	if ev.JumpToPhoto {
		a.jumpToRandomPhoto()
	}
}
