package view

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// shot is a capture waiting for the end of Draw.
type shot struct {
	label string
	frame uint64
}

// fileName orders captures by session frame.
func (s shot) fileName() string {
	return fmt.Sprintf("%06d-%s.png", s.frame, s.label)
}

// Screenshot saves the next drawn frame as <ScreenshotDir>/<frame>-<label>.png.
func (g *Game) Screenshot(label string) {
	g.shots = append(g.shots, shot{label: slug(label), frame: g.session.Frame()})
}

// capture reads the finished frame back once and writes every pending shot.
func (g *Game) capture(screen *ebiten.Image) {
	if len(g.shots) == 0 {
		return
	}
	defer func() { g.shots = g.shots[:0] }()

	dir := g.cfg.ScreenshotDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		g.log.Error("screenshot dir", zap.String("dir", dir), zap.Error(err))
		return
	}
	img := frameImage(screen)
	for _, s := range g.shots {
		path := filepath.Join(dir, s.fileName())
		if err := savePNG(path, img); err != nil {
			g.log.Error("screenshot", zap.Error(err))
			continue
		}
		g.log.Info("screenshot saved", zap.String("path", path), zap.Uint64("frame", s.frame))
	}
}

// frameImage copies screen into memory. ebiten pixels and image.RGBA are
// both alpha-premultiplied, so no conversion is needed.
func frameImage(screen *ebiten.Image) *image.RGBA {
	b := screen.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)
	return img
}

// savePNG writes img next to path and renames it into place, so a watcher
// never sees a half-written file.
func savePNG(path string, img image.Image) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("view: screenshot %s: %w", path, err)
	}
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(f, img); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("view: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("view: screenshot %s: %w", path, err)
	}
	return os.Rename(tmp, path)
}

// slug lowercases label and joins its alphanumeric runs with dashes.
func slug(label string) string {
	var b strings.Builder
	gap := false
	for _, r := range strings.ToLower(label) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if gap && b.Len() > 0 {
				b.WriteByte('-')
			}
			gap = false
			b.WriteRune(r)
			continue
		}
		gap = true
	}
	if b.Len() == 0 {
		return "frame"
	}
	return b.String()
}
