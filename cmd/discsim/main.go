// Command discsim previews the disc renderer in a terminal: it maps the
// 241-pixel disc layout onto a character grid and repaints it at the
// display's refresh cadence, using tcell for the terminal surface and the
// shader's own fixed-point math for pixel placement.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/polarshader/display"
	"github.com/lixenwraith/polarshader/fixed"
	"github.com/lixenwraith/polarshader/palette"
	"github.com/lixenwraith/polarshader/pipeline"
	"github.com/lixenwraith/polarshader/renderer"
	"github.com/lixenwraith/polarshader/scene"
	"github.com/lixenwraith/polarshader/signal"
	"github.com/lixenwraith/polarshader/trig"
)

const frameInterval = 33 * time.Millisecond

func main() {
	matrix := flag.Bool("matrix", false, "preview the 64x64 matrix layout instead of the disc")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	var spec display.Spec
	if *matrix {
		spec = display.NewMatrixSpec(64, 64, 1)
	} else {
		spec = display.NewDiscSpec()
	}

	rend := renderer.New(spec, defaultManager())
	placements := precomputeScreenPlacements(spec, screen)

	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			eventChan <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	startTime := time.Now()
	for {
		select {
		case ev := <-eventChan:
			switch e := ev.(type) {
			case *tcell.EventResize:
				placements = precomputeScreenPlacements(spec, screen)
				screen.Sync()
			case *tcell.EventKey:
				if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC || e.Rune() == 'q' {
					return
				}
			}
		case now := <-ticker.C:
			elapsed := fixed.TimeMillis(now.Sub(startTime).Milliseconds())
			paintFrame(screen, rend.Render(elapsed), placements)
		}
	}
}

// defaultManager loops a single rainbow-palette scene with a slow rotation,
// the terminal tool's equivalent of the firmware's default boot preset.
func defaultManager() *scene.Manager {
	pal := palette.Rainbow(0.85, 0.6)
	rotAngle := signal.Linear(16000, signal.Repeat) // one full turn every 16 s
	rot := pipeline.NewRotationTransform(rotAngle)
	noise := func(x, y uint32) fixed.PatternNormU16 {
		raw := trig.Noise2D(fixed.CartUQ24_8(x), fixed.CartUQ24_8(y))
		return trig.NormalizeNoise(raw)
	}
	p := pipeline.New(noise, pipeline.ToPolarStep(), pipeline.PolarStep(rot))
	layer := &scene.Layer{
		Pipeline: p,
		Palette:  pal,
		Context:  pipeline.NewContext(),
		Alpha:    fixed.FracQ0_16Max,
		Blend:    palette.Normal,
	}
	provider := scene.NewDefaultProvider(func() *scene.Scene {
		return scene.New(0, layer)
	})
	return scene.NewManager(provider)
}

type cellPlacement struct {
	col, row int
}

// precomputeScreenPlacements maps each pixel index to a terminal cell once;
// the mapping only changes on resize, never per frame.
func precomputeScreenPlacements(spec display.Spec, screen tcell.Screen) []cellPlacement {
	width, height := screen.Size()
	centerCol := width / 2
	centerRow := height / 2
	radiusCols := int64(width/2) - 1
	radiusRows := int64(height/2) - 1
	if radiusCols < 1 {
		radiusCols = 1
	}
	if radiusRows < 1 {
		radiusRows = 1
	}

	placements := make([]cellPlacement, spec.NLeds())
	for i := range placements {
		angle, r := spec.ToPolar(uint16(i))
		phase := fixed.AngleToPhase(angle)
		x, y := trig.PolarToCartesian(phase, r)
		col := centerCol + int(int64(x)*radiusCols>>15)
		row := centerRow - int(int64(y)*radiusRows>>15)
		placements[i] = cellPlacement{col: col, row: row}
	}
	return placements
}

func paintFrame(screen tcell.Screen, pixels []fixed.RGB8, placements []cellPlacement) {
	screen.Clear()
	for i, c := range pixels {
		if i >= len(placements) {
			break
		}
		p := placements[i]
		style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		screen.SetContent(p.col, p.row, ' ', nil, style)
	}
	screen.Show()
}
