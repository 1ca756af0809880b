package view

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/hitch"
)

const helpLine = "arrows move  E/D arms  R/F head  T/G thighs  Y/H boots  L relatch  U reset  1-5 camera  6 wireframe  F12 shot"

// hud renders the status overlay. The FPS line refreshes every half second.
type hud struct {
	sinceRate float64
	rate      string
}

func (h *hud) update(dt float64) {
	h.sinceRate += dt
	if h.rate != "" && h.sinceRate < 0.5 {
		return
	}
	h.sinceRate = 0
	h.rate = fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

// statusText describes the session in a few lines.
func statusText(s *hitch.Session, cam *Camera) string {
	cfg := s.Config()
	tr := s.Trailer()
	p := tr.Position
	return fmt.Sprintf(
		"state: %s  latched: %v  latch: %.0f deg\nform: %s  trailer: (%.0f, %.0f, %.0f)\ncamera: %s  tick: %d",
		s.State(), tr.Latched(), tr.Latch.Value*180/math.Pi,
		s.Truck().Form(cfg.FoldTolerance), p.X, p.Y, p.Z,
		cam.Preset(), s.Frame(),
	)
}

func (h *hud) draw(dst *ebiten.Image, s *hitch.Session, cam *Camera) {
	ebitenutil.DebugPrint(dst, statusText(s, cam)+"\n"+h.rate)
	ebitenutil.DebugPrintAt(dst, helpLine, 4, dst.Bounds().Dy()-16)
}
