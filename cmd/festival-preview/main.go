// Command festival-preview plays a festival particle effect in the terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/vnc/internal/festival"
	"github.com/iburimskiy/vnc/internal/log"
	"github.com/iburimskiy/vnc/internal/particle"
	"github.com/iburimskiy/vnc/internal/rng"
)

func main() {
	var (
		kindStr string
		seed    uint64
		level   string
	)
	flag.StringVar(&kindStr, "kind", "", "Effect: snow, fireworks, sakura, leaves, hearts, sparkles (default: today's festival)")
	flag.Uint64Var(&seed, "seed", 0, "Random seed (0: time based)")
	flag.StringVar(&level, "log", "warn", "Log level")
	flag.Parse()

	log.Init(level)

	fest := festival.Select(time.Now())
	if kindStr != "" {
		k, err := festival.ParseKind(kindStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fest = festival.Named(k)
	}
	if fest.Kind == festival.None {
		fmt.Fprintln(os.Stderr, "No festival today; pick one with -kind")
		os.Exit(1)
	}

	if err := run(fest, rng.New(seed)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(fest festival.Festival, src rng.Source) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()

	cols, rows := screen.Size()
	canvas := newCellCanvas(cols, rows)
	engine := particle.New(fest.Kind, src)
	engine.Resize(canvas.size())
	engine.Start()
	defer engine.Stop()
	log.Info("preview started", "kind", fest.Kind, "cols", cols, "rows", rows)

	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
					return nil
				}
			case *tcell.EventResize:
				cols, rows = ev.Size()
				canvas.resize(cols, rows)
				engine.Resize(canvas.size())
				screen.Sync()
			}

		case <-ticker.C:
			engine.Step()
			engine.Draw(canvas)
			draw(screen, canvas, fest)
		}
	}
}

func draw(screen tcell.Screen, c *cellCanvas, fest festival.Festival) {
	screen.Clear()
	for y := 0; y < c.rows; y++ {
		for x := 0; x < c.cols; x++ {
			cl := c.at(x, y)
			if cl.cover <= 0 {
				continue
			}
			color := tcell.NewRGBColor(int32(cl.clr.R), int32(cl.clr.G), int32(cl.clr.B))
			screen.SetContent(x, y, glyph(cl.cover), nil, tcell.StyleDefault.Foreground(color))
		}
	}
	for _, c := range layoutLabel(fest.Name+"  (q to quit)", 1) {
		screen.SetContent(c.col, 0, c.r, nil, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
	}
	screen.Show()
}
