package view

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/phanxgames/hitch"
)

// boxEdges are the corner pairs of the twelve box edges.
var boxEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7},
	{0, 2}, {1, 3}, {4, 6}, {5, 7},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// boxFaces are the corner quads of the six box faces.
var boxFaces = [6][4]int{
	{0, 2, 6, 4}, {1, 3, 7, 5},
	{0, 1, 5, 4}, {2, 3, 7, 6},
	{0, 1, 3, 2}, {4, 5, 7, 6},
}

// face is one projected quad queued for painter's ordering.
type face struct {
	pts   [4][2]float32
	depth float64
	clr   color.RGBA
}

// whitePixel is the source image for flat-filled faces.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(colornames.White)
	}
	return whitePixel
}

// projectCorners projects all eight corners. ok is false if any corner is
// behind a perspective camera.
func projectCorners(cam *Camera, corners [8]hitch.Vec3) (pts [8][2]float32, ok bool) {
	for i, c := range corners {
		x, y, visible := cam.Project(c)
		if !visible {
			return pts, false
		}
		pts[i] = [2]float32{float32(x), float32(y)}
	}
	return pts, true
}

// collectFaces appends the faces of every visible box under roots, sorted
// far to near.
func collectFaces(buf []face, cam *Camera, roots ...*Part) []face {
	for _, root := range roots {
		root.Walk(func(p *Part) {
			if !p.IsBox() {
				return
			}
			corners := p.Corners()
			pts, ok := projectCorners(cam, corners)
			if !ok {
				return
			}
			for _, f := range boxFaces {
				var center hitch.Vec3
				var q face
				for i, idx := range f {
					q.pts[i] = pts[idx]
					center = center.Add(corners[idx])
				}
				q.depth = cam.Depth(center.Scale(0.25))
				q.clr = p.Color
				buf = append(buf, q)
			}
		})
	}
	sort.SliceStable(buf, func(i, j int) bool { return buf[i].depth > buf[j].depth })
	return buf
}

// drawFaces fills each face and outlines it.
func drawFaces(dst *ebiten.Image, faces []face) {
	src := ensureWhitePixel()
	var verts [4]ebiten.Vertex
	indices := []uint16{0, 1, 2, 0, 2, 3}
	outline := colornames.Black
	var op ebiten.DrawTrianglesOptions
	for _, f := range faces {
		r, g, b, a := float32(f.clr.R)/255, float32(f.clr.G)/255, float32(f.clr.B)/255, float32(f.clr.A)/255
		for i, p := range f.pts {
			verts[i] = ebiten.Vertex{
				DstX: p[0], DstY: p[1],
				SrcX: 0.5, SrcY: 0.5,
				ColorR: r, ColorG: g, ColorB: b, ColorA: a,
			}
		}
		dst.DrawTriangles(verts[:], indices, src, &op)
		for i := range f.pts {
			n := f.pts[(i+1)%4]
			vector.StrokeLine(dst, f.pts[i][0], f.pts[i][1], n[0], n[1], 1, outline, true)
		}
	}
}

// drawWireframe strokes the edges of every visible box under roots.
func drawWireframe(dst *ebiten.Image, cam *Camera, roots ...*Part) {
	for _, root := range roots {
		root.Walk(func(p *Part) {
			if !p.IsBox() {
				return
			}
			pts, ok := projectCorners(cam, p.Corners())
			if !ok {
				return
			}
			for _, e := range boxEdges {
				a, b := pts[e[0]], pts[e[1]]
				vector.StrokeLine(dst, a[0], a[1], b[0], b[1], 1, p.Color, true)
			}
		})
	}
}

// drawBox strokes a collision box.
func drawBox(dst *ebiten.Image, cam *Camera, b hitch.Box, clr color.Color) {
	var corners [8]hitch.Vec3
	for i := range corners {
		c := b.Min
		if i&1 != 0 {
			c.X = b.Max.X
		}
		if i&2 != 0 {
			c.Y = b.Max.Y
		}
		if i&4 != 0 {
			c.Z = b.Max.Z
		}
		corners[i] = c
	}
	pts, ok := projectCorners(cam, corners)
	if !ok {
		return
	}
	for _, e := range boxEdges {
		a, b := pts[e[0]], pts[e[1]]
		vector.StrokeLine(dst, a[0], a[1], b[0], b[1], 2, clr, false)
	}
}
