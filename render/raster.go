package render

import (
	"math"
	"unicode/utf8"

	"github.com/lixenwraith/neon-globe/scene"
	"github.com/lixenwraith/neon-globe/vmath"
)

const (
	GlyphLine = '•'
	GlyphGrid = '·'

	// Depth slack so glyphs lying on the body surface are not self-occluded
	depthBias = 0.05
	minAlpha  = 0.02
)

// Rasterizer draws scene nodes into a Buffer through a Camera
type Rasterizer struct {
	Camera *Camera
	Light  vmath.Vec3F

	// LineAlphaGain maps material opacity to glyph alpha, a fresh arc at 0.4 draws at full strength
	LineAlphaGain float64
	GridAlphaGain float64

	occlusion float64 // fraction of a glyph visible through the body
}

func NewRasterizer(cam *Camera) *Rasterizer {
	return &Rasterizer{
		Camera:        cam,
		Light:         vmath.V3FNormalize(vmath.Vec3F{X: -0.35, Y: 0.55, Z: 0.75}),
		LineAlphaGain: 2.5,
		GridAlphaGain: 2.0,
	}
}

// Draw renders nodes in order; a sphere must precede the glyphs it should occlude
// Sprites are labels and go on top of everything else
func (r *Rasterizer) Draw(buf *Buffer, nodes []scene.Node) {
	r.Camera.SetViewport(buf.Size())
	r.occlusion = 1

	var sprites []*scene.Sprite
	for _, n := range nodes {
		switch v := n.(type) {
		case *scene.Sphere:
			r.drawSphere(buf, v)
		case *scene.Wireframe:
			r.drawWireframe(buf, v)
		case *scene.Line:
			r.drawPolyline(buf, v.Points, GlyphLine, v.Color, v.Opacity()*r.LineAlphaGain)
		case *scene.Sprite:
			sprites = append(sprites, v)
		}
	}
	for _, s := range sprites {
		r.drawSprite(buf, s)
	}
}

func (r *Rasterizer) drawSphere(buf *Buffer, s *scene.Sphere) {
	w, h := buf.Size()
	cam := r.Camera
	eye := vmath.Vec3F{Z: cam.Distance}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			origin, dir := cam.Ray(float64(x)+0.5, float64(y)+0.5)
			t, ok := intersectSphere(origin, dir, s.Radius)
			if !ok {
				continue
			}
			hit := vmath.V3FAdd(origin, vmath.V3FScale(dir, t))
			n := vmath.V3FScale(hit, 1/s.Radius)
			view := vmath.V3FNormalize(vmath.V3FSub(eye, hit))

			lambert := math.Max(0, vmath.V3FDot(n, r.Light))
			facing := math.Max(0, vmath.V3FDot(n, view))
			rim := (1 - facing) * (1 - facing)

			col := Scale(s.Color, 0.35+0.65*lambert)
			glow := s.EmissiveIntensity * (0.25 + 1.5*rim)

			buf.Set(x, y, 0, RGB{}, col, BlendAlphaBg, s.Opacity)
			buf.Set(x, y, 0, RGB{}, s.Emissive, BlendAddBg, glow*s.Opacity)
			buf.WriteDepth(x, y, t)
		}
	}
	r.occlusion = 1 - s.Opacity
}

func (r *Rasterizer) drawWireframe(buf *Buffer, wf *scene.Wireframe) {
	if wf.WidthSegments < 1 || wf.HeightSegments < 1 {
		return
	}
	alpha := wf.Opacity * r.GridAlphaGain

	// Meridians, pole to pole
	steps := wf.HeightSegments * 4
	pts := make([]vmath.Vec3F, steps+1)
	for i := 0; i < wf.WidthSegments; i++ {
		phi := 2 * math.Pi * float64(i) / float64(wf.WidthSegments)
		for j := 0; j <= steps; j++ {
			theta := math.Pi * float64(j) / float64(steps)
			pts[j] = vmath.V3FRotateY(gridPoint(wf.Radius, theta, phi), wf.Rotation)
		}
		r.drawPolyline(buf, pts, GlyphGrid, wf.Color, alpha)
	}

	// Parallels, poles excluded
	steps = wf.WidthSegments * 4
	pts = make([]vmath.Vec3F, steps+1)
	for j := 1; j < wf.HeightSegments; j++ {
		theta := math.Pi * float64(j) / float64(wf.HeightSegments)
		for i := 0; i <= steps; i++ {
			phi := 2 * math.Pi * float64(i) / float64(steps)
			pts[i] = vmath.V3FRotateY(gridPoint(wf.Radius, theta, phi), wf.Rotation)
		}
		r.drawPolyline(buf, pts, GlyphGrid, wf.Color, alpha)
	}
}

// gridPoint uses Y as the polar axis so the grid's poles sit under the logo
func gridPoint(radius, theta, phi float64) vmath.Vec3F {
	sinT, cosT := math.Sincos(theta)
	sinP, cosP := math.Sincos(phi)
	return vmath.Vec3F{
		X: radius * sinT * cosP,
		Y: radius * cosT,
		Z: radius * sinT * sinP,
	}
}

// drawPolyline steps every segment cell by cell with interpolated depth
func (r *Rasterizer) drawPolyline(buf *Buffer, pts []vmath.Vec3F, glyph rune, color RGB, alpha float64) {
	if alpha <= minAlpha || len(pts) == 0 {
		return
	}

	px, py, pd, pok := r.Camera.Project(pts[0])
	if len(pts) == 1 && pok {
		r.plot(buf, int(math.Floor(px)), int(math.Floor(py)), pd, glyph, color, alpha)
		return
	}

	// Each cell once per polyline, the screen blend would otherwise brighten a line against itself
	lastX, lastY := -1, -1
	for _, p := range pts[1:] {
		x, y, d, ok := r.Camera.Project(p)
		if ok && pok {
			dx, dy := x-px, y-py
			n := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
			if n < 1 {
				n = 1
			}
			for k := 0; k <= n; k++ {
				t := float64(k) / float64(n)
				cx, cy := int(math.Floor(px+dx*t)), int(math.Floor(py+dy*t))
				if cx == lastX && cy == lastY {
					continue
				}
				lastX, lastY = cx, cy
				r.plot(buf, cx, cy, pd+(d-pd)*t, glyph, color, alpha)
			}
		}
		px, py, pd, pok = x, y, d, ok
	}
}

// plot tints a glyph against the cell background, dimmed when behind the body
// Overlapping glyphs combine with a screen blend so crossings brighten
func (r *Rasterizer) plot(buf *Buffer, x, y int, depth float64, glyph rune, color RGB, alpha float64) {
	if !buf.inBounds(x, y) {
		return
	}
	if depth > buf.Depth(x, y)+depthBias {
		alpha *= r.occlusion
	}
	if alpha <= minAlpha {
		return
	}

	fg := Blend(buf.Cell(x, y).Bg, color, alpha)
	buf.Set(x, y, glyph, fg, RGB{}, BlendScreenFg, 1)
}

func (r *Rasterizer) drawSprite(buf *Buffer, s *scene.Sprite) {
	sx, sy, _, ok := r.Camera.Project(s.Position)
	if !ok {
		return
	}
	n := utf8.RuneCountInString(s.Text)
	x := int(math.Round(sx)) - n/2
	buf.WriteString(x, int(math.Floor(sy)), s.Text, s.Color)
}
