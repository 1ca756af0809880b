// Package view is the ebiten front end for a hitch.Session: it samples the
// keyboard, ticks the session at a fixed step, and draws the truck and
// trailer as flat or wireframe boxes from one of five cameras.
package view

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"

	"github.com/phanxgames/hitch"
)

// cameraTransition is how long a preset switch takes, in seconds.
const cameraTransition = 0.6

// RunConfig holds optional parameters for Run.
type RunConfig struct {
	// Title sets the window title.
	Title string
	// Width and Height set the window size. Default 1280x720.
	Width, Height int
	// TPS is the fixed tick rate. Default 60.
	TPS int
	// ScreenshotDir is where F12 screenshots go. Default "screenshots".
	ScreenshotDir string
	// ShowBoxes draws the collision boxes over the scene.
	ShowBoxes bool

	// Script, when set, drives the session until it finishes. Sampled
	// keyboard commands are dropped while it runs, including wait and until
	// steps that inject nothing.
	Script *hitch.ScriptRunner
	// ExitOnScriptEnd stops the game once the script is done. A failed
	// script makes Run return its error.
	ExitOnScriptEnd bool

	// Reload delivers replacement configs, e.g. from config.Watch.
	Reload <-chan hitch.Config

	Logger *zap.Logger
}

func (c *RunConfig) setDefaults() {
	if c.Title == "" {
		c.Title = "hitch"
	}
	if c.Width <= 0 {
		c.Width = 1280
	}
	if c.Height <= 0 {
		c.Height = 720
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = "screenshots"
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
}

// Game implements ebiten.Game for one session.
type Game struct {
	session *hitch.Session
	cfg     RunConfig
	log     *zap.Logger
	dt      float64

	cam       *Camera
	truck     *TruckRig
	trailer   *TrailerRig
	wireframe bool
	hud       hud
	faces     []face

	shots      []shot
	scriptDone bool
}

// NewGame builds the rigs and camera for s.
func NewGame(s *hitch.Session, cfg RunConfig) *Game {
	cfg.setDefaults()
	g := &Game{
		session: s,
		cfg:     cfg,
		log:     cfg.Logger,
		dt:      1 / float64(cfg.TPS),
		cam:     NewCamera(float64(cfg.Width), float64(cfg.Height)),
		truck:   BuildTruck(),
		trailer: BuildTrailer(),
	}
	g.sync()
	return g
}

// Camera returns the active camera.
func (g *Game) Camera() *Camera { return g.cam }

// Session returns the session being driven.
func (g *Game) Session() *hitch.Session { return g.session }

// Wireframe reports whether boxes are drawn as edges only.
func (g *Game) Wireframe() bool { return g.wireframe }

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if p, ok := presetPressed(inpututil.IsKeyJustPressed); ok {
		g.cam.SetPreset(p, cameraTransition)
	}
	if inpututil.IsKeyJustPressed(keyWireframe) {
		g.wireframe = !g.wireframe
	}
	if inpututil.IsKeyJustPressed(keyScreenshot) {
		g.Screenshot(g.session.State().String())
	}
	return g.step(ReadCommands())
}

// step runs one fixed tick with the sampled commands.
func (g *Game) step(cmds hitch.Commands) error {
	g.drainReloads()

	if r := g.cfg.Script; r != nil && !g.scriptDone {
		r.Step(g.session)
		if r.Done() {
			g.scriptDone = true
			if err := r.Err(); err != nil {
				g.log.Error("script failed", zap.Error(err))
				if g.cfg.ExitOnScriptEnd {
					return fmt.Errorf("view: script: %w", err)
				}
			} else {
				g.log.Info("script finished", zap.Uint64("tick", g.session.Frame()))
			}
			if g.cfg.ExitOnScriptEnd {
				return ebiten.Termination
			}
		} else {
			cmds = 0
		}
	}

	g.session.Tick(cmds, g.dt)
	g.cam.Update(float32(g.dt))
	g.hud.update(g.dt)
	g.sync()
	return nil
}

func (g *Game) drainReloads() {
	if g.cfg.Reload == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-g.cfg.Reload:
			if !ok {
				g.cfg.Reload = nil
				return
			}
			g.session.Reconfigure(cfg)
		default:
			return
		}
	}
}

func (g *Game) sync() {
	g.truck.Sync(g.session.Truck())
	g.trailer.Sync(g.session.Trailer())
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Lightsteelblue)

	if g.wireframe {
		drawWireframe(screen, g.cam, g.truck.Root, g.trailer.Root)
	} else {
		g.faces = collectFaces(g.faces[:0], g.cam, g.truck.Root, g.trailer.Root)
		drawFaces(screen, g.faces)
	}
	if g.cfg.ShowBoxes {
		cfg := g.session.Config()
		truckColor := colornames.Red
		if g.session.Truck().IsDockable(cfg.FoldTolerance) {
			truckColor = colornames.Limegreen
		}
		drawBox(screen, g.cam, g.session.Truck().Box(cfg), truckColor)
		drawBox(screen, g.cam, g.session.Trailer().Box(cfg), colornames.Orange)
	}

	g.hud.draw(screen, g.session, g.cam)
	g.capture(screen)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.cam.SetViewport(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Run opens a window and drives s until the window closes or the script
// ends with ExitOnScriptEnd set.
func Run(s *hitch.Session, cfg RunConfig) error {
	g := NewGame(s, cfg)
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.cfg.TPS)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
