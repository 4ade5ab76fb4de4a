package render

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/startree/internal/texture"
	"github.com/decker502/startree/pkg/anim"
	"github.com/decker502/startree/pkg/decor"
	"github.com/decker502/startree/pkg/scene"
	"github.com/decker502/startree/pkg/shape"
)

// 各类元素的世界尺寸（精灵公告板的边长）
const (
	particleWorldSize = 0.26
	blockWorldSize    = 0.9
	photoWorldSize    = 2.6
)

// decorWorldSize 各装饰类型的基准尺寸，乘以元素自身 Scale
var decorWorldSize = map[decor.Kind]float64{
	decor.KindBauble:  0.55,
	decor.KindGift:    0.65,
	decor.KindFlower:  0.45,
	decor.KindGem:     0.5,
	decor.KindGarland: 0.2,
	decor.KindLight:   0.24,
	decor.KindCore:    1.0,
}

// sprite 一次待绘制的公告板精灵
type sprite struct {
	depth      float64
	img        *ebiten.Image
	x, y       float64
	scale      float64
	rot        float64
	r, g, b, a float32
}

// Renderer 画家排序的精灵渲染器
// 每帧收集全部投影结果，按深度由远及近绘制
type Renderer struct {
	atlas   *texture.Atlas
	sprites []sprite
}

// NewRenderer 创建渲染器
func NewRenderer(atlas *texture.Atlas) *Renderer {
	return &Renderer{atlas: atlas}
}

// Draw 绘制一帧
//
// photoImage 按槽位序号给出照片贴图，nil 表示空槽位（画占位图）。
// 引擎未挂载数据时本帧画空，不报错。
func (r *Renderer) Draw(dst *ebiten.Image, eng *anim.Engine, photoImage func(slot int) *ebiten.Image) {
	res := eng.Result()
	if res == nil {
		return
	}
	yaw := eng.Yaw()
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()

	r.queueParticles(res.Cloud, eng, yaw, w, h)
	r.queueElements(eng, yaw, w, h, photoImage)

	sort.Slice(r.sprites, func(i, j int) bool {
		return r.sprites[i].depth > r.sprites[j].depth
	})
	for i := range r.sprites {
		r.blit(dst, &r.sprites[i])
	}
	r.sprites = r.sprites[:0]
}

func (r *Renderer) queueParticles(cloud *shape.Cloud, eng *anim.Engine, yaw float64, w, h int) {
	if cloud == nil {
		return
	}

	pts := eng.ParticlePositions()
	for i := range pts {
		proj, ok := Project(pts[i], yaw, w, h)
		if !ok {
			continue
		}
		shade := depthShade(proj.Depth)
		c := cloud.Points[i].Color
		r.sprites = append(r.sprites, sprite{
			depth: proj.Depth,
			img:   r.atlas.Particle,
			x:     proj.X,
			y:     proj.Y,
			scale: proj.Scale * particleWorldSize * cloud.ParticleScale / float64(texture.SpriteSize),
			r:     float32(c.R * shade),
			g:     float32(c.G * shade),
			b:     float32(c.B * shade),
			a:     1,
		})
	}

	blocks := eng.BlockPositions()
	for i := range blocks {
		proj, ok := Project(blocks[i], yaw, w, h)
		if !ok {
			continue
		}
		shade := depthShade(proj.Depth)
		b := cloud.Blocks[i]
		r.sprites = append(r.sprites, sprite{
			depth: proj.Depth,
			img:   r.atlas.Particle,
			x:     proj.X,
			y:     proj.Y,
			scale: proj.Scale * blockWorldSize * b.Scale / float64(texture.SpriteSize),
			r:     float32(b.Color.R * shade),
			g:     float32(b.Color.G * shade),
			b:     float32(b.Color.B * shade),
			a:     1,
		})
	}
}

func (r *Renderer) queueElements(eng *anim.Engine, yaw float64, w, h int, photoImage func(slot int) *ebiten.Image) {
	eng.Each(func(st *scene.AnimationState, kind decor.Kind) {
		proj, ok := Project(st.Render.Pos, yaw, w, h)
		if !ok {
			return
		}

		if kind == decor.KindPhoto {
			r.queuePhoto(st, proj, photoImage)
			return
		}

		size := decorWorldSize[kind]
		if size == 0 {
			size = 0.5
		}
		shade := depthShade(proj.Depth)
		alpha := float32(1)
		if kind == decor.KindCore {
			// 水晶核心半透明，露出里面的粒子
			alpha = 0.55
		}
		r.sprites = append(r.sprites, sprite{
			depth: proj.Depth,
			img:   r.atlas.Particle,
			x:     proj.X,
			y:     proj.Y,
			scale: proj.Scale * size * st.Render.Scale / float64(texture.SpriteSize),
			rot:   st.Render.Rot.Z,
			r:     float32(st.Color.R * shade) * alpha,
			g:     float32(st.Color.G * shade) * alpha,
			b:     float32(st.Color.B * shade) * alpha,
			a:     alpha,
		})
	})
}

// queuePhoto 相框皮肤与照片内容成对入队
// 照片深度略小于相框，保证排序后紧随其上绘制
func (r *Renderer) queuePhoto(st *scene.AnimationState, proj Projected, photoImage func(slot int) *ebiten.Image) {
	shade := float32(depthShade(proj.Depth))
	frameScale := proj.Scale * photoWorldSize * st.Render.Scale / float64(texture.FrameSize)

	r.sprites = append(r.sprites, sprite{
		depth: proj.Depth,
		img:   r.atlas.Frame(st.SlotIndex),
		x:     proj.X,
		y:     proj.Y,
		scale: frameScale,
		rot:   st.Render.Rot.Z,
		r:     shade,
		g:     shade,
		b:     shade,
		a:     1,
	})

	img := photoImage(st.SlotIndex)
	if img == nil {
		img = r.atlas.Placeholder
	}
	// 照片铺在相框窗口里，比相框小一圈
	iw := img.Bounds().Dx()
	innerScale := frameScale * float64(texture.FrameSize-2*28) / float64(iw)
	r.sprites = append(r.sprites, sprite{
		depth: proj.Depth - 0.01,
		img:   img,
		x:     proj.X,
		y:     proj.Y,
		scale: innerScale,
		rot:   st.Render.Rot.Z,
		r:     shade,
		g:     shade,
		b:     shade,
		a:     1,
	})
}

func (r *Renderer) blit(dst *ebiten.Image, s *sprite) {
	if s.img == nil {
		return
	}
	b := s.img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	if s.rot != 0 {
		op.GeoM.Rotate(s.rot)
	}
	op.GeoM.Scale(s.scale, s.scale)
	op.GeoM.Translate(s.x, s.y)
	op.ColorScale.Scale(s.r, s.g, s.b, s.a)
	dst.DrawImage(s.img, op)
}
