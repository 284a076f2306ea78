package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/srliao/estersim/pkg/chem"
)

const (
	flashFrames = 30
	flashGrow   = 1.2
)

var speciesColor = [chem.NumSpecies]color.RGBA{
	chem.Acid:    {0xe0, 0x4f, 0x3c, 0xff},
	chem.Alcohol: {0x3c, 0x8d, 0xe0, 0xff},
	chem.Ester:   {0xf2, 0xc1, 0x4e, 0xff},
	chem.Water:   {0x7f, 0xd6, 0xe8, 0xff},
}

//flash marks a recent reaction site
type flash struct {
	at  chem.Vec
	age int
}

type game struct {
	w       *chem.World
	bg      *ebiten.Image
	flashes []flash
}

func newGame(w *chem.World, seed int64) *game {
	g := &game{
		w:  w,
		bg: solvent(int(w.Width), int(w.Height), seed),
	}
	w.AddReactionHook(func(_ *chem.World, ev chem.ReactionEvent) bool {
		g.flashes = append(g.flashes, flash{at: ev.Point})
		return false
	}, "flash")
	return g
}

//solvent paints a faint noise texture behind the particles
func solvent(width, height int, seed int64) *ebiten.Image {
	p := perlin.NewPerlin(2, 2, 3, seed)
	pix := make([]byte, 4*width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			n := (p.Noise2D(float64(x)/180, float64(y)/180) + 1) / 2
			i := 4 * (y*width + x)
			pix[i] = byte(14 + 10*n)
			pix[i+1] = byte(20 + 14*n)
			pix[i+2] = byte(34 + 22*n)
			pix[i+3] = 0xff
		}
	}
	img := ebiten.NewImage(width, height)
	img.WritePixels(pix)
	return img
}

func (g *game) Update() error {
	g.handleInput()
	g.w.Update()

	if g.w.Paused() {
		return nil
	}
	live := g.flashes[:0]
	for _, f := range g.flashes {
		f.age++
		if f.age < flashFrames {
			live = append(live, f)
		}
	}
	g.flashes = live
	return nil
}

func (g *game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.w.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.w.ToggleDiagnostic()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.w.SetStartMode(chem.StartAlcohol)
		g.reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.w.SetStartMode(chem.StartAcid)
		g.reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.w.SetStartMode(chem.StartStoich)
		g.reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.setTemperature(g.w.Temperature() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.setTemperature(g.w.Temperature() - 1)
	}
}

func (g *game) reset() {
	g.flashes = g.flashes[:0]
	g.w.Reset()
}

//setTemperature ignores steps past either end of the dial
func (g *game) setTemperature(t int) {
	if t < chem.MinTemperature || t > chem.MaxTemperature {
		return
	}
	if err := g.w.SetTemperature(t); err != nil {
		g.w.Log.Warnw("temperature rejected", "t", t, "err", err)
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.bg, &ebiten.DrawImageOptions{})

	for _, f := range g.flashes {
		fade := 1 - float64(f.age)/flashFrames
		r := float32(8 + flashGrow*float64(f.age))
		clr := color.RGBA{0xff, 0xf4, 0xc8, uint8(200 * fade)}
		vector.StrokeCircle(screen, float32(f.at.X), float32(f.at.Y), r, 2, clr, true)
	}

	for _, p := range g.w.Particles() {
		x, y, r := float32(p.Pos.X), float32(p.Pos.Y), float32(p.Radius)
		clr := speciesColor[p.Species]
		vector.DrawFilledCircle(screen, x, y, r, clr, true)
		vector.StrokeCircle(screen, x, y, r, 1, color.RGBA{0x10, 0x10, 0x18, 0xff}, true)

		//orientation tick
		tx := x + r*0.8*float32(math.Cos(p.Angle))
		ty := y + r*0.8*float32(math.Sin(p.Angle))
		vector.StrokeLine(screen, x, y, tx, ty, 1.5, color.RGBA{0xff, 0xff, 0xff, 0xb0}, true)
	}

	ebitenutil.DebugPrint(screen, g.hud())
}

func (g *game) hud() string {
	c := g.w.Counts()
	s := fmt.Sprintf("Acid %d  Alcohol %d  Ester %d  Water %d", c[chem.Acid], c[chem.Alcohol], c[chem.Ester], c[chem.Water])
	if g.w.Diagnostic() {
		s += fmt.Sprintf("\nstart %v  T=%d  p=%.3f  %v", g.w.StartMode(), g.w.Temperature(), g.w.ReactionProbability(), g.w.Frame())
	}
	if g.w.Paused() {
		s += "\npaused"
	}
	return s
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.w.Width), int(g.w.Height)
}
