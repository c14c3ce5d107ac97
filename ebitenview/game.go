package ebitenview

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/canopy"
)

// Game adapts a canopy.Stage to ebiten.Game. Mouse and touch input become
// stage pointer events, the tick count becomes the animation clock, and the
// window size is forwarded through Stage.Resize.
type Game struct {
	stage    *canopy.Stage
	renderer *Renderer
	cfg      RunConfig

	ticks      int64
	lastX      int
	lastY      int
	cursorSeen bool
	touchBuf   []ebiten.TouchID
}

// NewGame wraps stage. Zero fields of cfg take their defaults.
func NewGame(stage *canopy.Stage, cfg RunConfig) *Game {
	cfg = cfg.withDefaults()
	stage.SetDebugMode(cfg.Debug)
	return &Game{
		stage:    stage,
		renderer: NewRenderer(nil),
		cfg:      cfg,
	}
}

// Stage returns the wrapped stage.
func (g *Game) Stage() *canopy.Stage {
	return g.stage
}

// Now returns the animation clock in seconds: ticks elapsed divided by TPS.
func (g *Game) Now() float64 {
	return float64(g.ticks) / float64(ebiten.TPS())
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.ticks++
	g.processMouse()
	g.processTouches()
	g.stage.Update(g.Now())
	return nil
}

func (g *Game) processMouse() {
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)
	if !g.cursorSeen || x != g.lastX || y != g.lastY {
		g.cursorSeen = true
		g.lastX, g.lastY = x, y
		g.stage.PointerMove(fx, fy)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.stage.PointerDown(fx, fy)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.stage.PointerUp(fx, fy)
	}
}

// processTouches maps touches to the same single pointer as the mouse.
func (g *Game) processTouches() {
	g.touchBuf = inpututil.AppendJustPressedTouchIDs(g.touchBuf[:0])
	for _, id := range g.touchBuf {
		x, y := ebiten.TouchPosition(id)
		g.stage.PointerDown(float64(x), float64(y))
	}
	g.touchBuf = inpututil.AppendJustReleasedTouchIDs(g.touchBuf[:0])
	for _, id := range g.touchBuf {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		g.stage.PointerUp(float64(x), float64(y))
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	c := g.cfg.ClearColor
	if c.A > 0 {
		g.renderer.SetTarget(screen)
		g.renderer.SetColor(c)
		b := screen.Bounds()
		g.renderer.FillRect(0, 0, float64(b.Dx()), float64(b.Dy()))
	}
	g.renderer.SetTarget(screen)
	g.stage.Draw(g.renderer)
	flushScreenshots(g.stage, screen, g.cfg.ScreenshotDir)
}

// Layout implements ebiten.Game. The logical screen always matches the
// window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.stage.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Run opens a window and drives stage until the window closes.
//
//	stage := canopy.NewStage(root)
//	if err := ebitenview.Run(stage, ebitenview.RunConfig{Title: "demo"}); err != nil {
//		log.Fatal(err)
//	}
func Run(stage *canopy.Stage, cfg RunConfig) error {
	g := NewGame(stage, cfg)
	cfg = g.cfg

	if cfg.ScriptPath != "" {
		data, err := os.ReadFile(cfg.ScriptPath)
		if err != nil {
			return fmt.Errorf("read input script: %w", err)
		}
		runner, err := canopy.LoadScript(data)
		if err != nil {
			return fmt.Errorf("%s: %w", cfg.ScriptPath, err)
		}
		stage.SetScriptRunner(runner)
	}
	if cfg.ShowFPS {
		stage.Root().Add(NewFPSView(g.Now))
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	stage.Resize(float64(cfg.Width), float64(cfg.Height))
	return ebiten.RunGame(g)
}

var _ ebiten.Game = (*Game)(nil)
