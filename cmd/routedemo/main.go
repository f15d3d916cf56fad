// Command routedemo visualizes the built-in routing scenes in the terminal.
// Keys: n/space next scene, p previous, s toggle spot strategy, q/Esc quit.
package main

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"orthoroute/demo"
	"orthoroute/geometry"
	"orthoroute/routing"
)

// Terminal cells are roughly twice as tall as wide, so the x axis is
// compressed less than the y axis.
const (
	scaleX  = 8.0
	scaleY  = 16.0
	marginX = 2
	marginY = 2
)

type viewer struct {
	screen   tcell.Screen
	scenes   []demo.Scene
	router   *routing.Router
	current  int
	strategy routing.SpotStrategy
}

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("[DEMO] create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("[DEMO] init screen: %v", err)
	}
	defer screen.Fini()

	v := &viewer{
		screen: screen,
		scenes: demo.Scenes(),
		router: routing.NewRouter(),
	}
	v.run()
}

func (v *viewer) run() {
	v.draw()
	for {
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
			v.draw()
		case *tcell.EventKey:
			if !v.handleKey(ev) {
				return
			}
			v.draw()
		}
	}
}

func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape {
		return false
	}
	switch ev.Rune() {
	case 'q':
		return false
	case 'n', ' ':
		v.current = (v.current + 1) % len(v.scenes)
	case 'p':
		v.current = (v.current + len(v.scenes) - 1) % len(v.scenes)
	case 's':
		if v.strategy == routing.GridSpots {
			v.strategy = routing.LatticeSpots
		} else {
			v.strategy = routing.GridSpots
		}
	}
	return true
}

func (v *viewer) draw() {
	v.screen.Clear()

	scene := v.scenes[v.current]
	req := scene.Request
	req.Spots = v.strategy

	path, diag, err := v.router.RouteDebug(req)

	shapeStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	obstacleStyle := tcell.StyleDefault.Foreground(tcell.ColorRed)
	pathStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	dimStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)

	for _, p := range diag.Spots {
		x, y := v.cell(p)
		v.screen.SetContent(x, y, '·', nil, dimStyle)
	}
	v.drawRect(req.PointA.Shape, shapeStyle)
	v.drawRect(req.PointB.Shape, shapeStyle)
	for _, o := range req.Obstacles {
		v.drawRect(o, obstacleStyle)
	}
	v.drawPath(path, pathStyle)

	status := fmt.Sprintf("[%d/%d] %s  strategy=%s  (n/p scene, s strategy, q quit)",
		v.current+1, len(v.scenes), scene.Name, strategyName(v.strategy))
	if err != nil {
		status = fmt.Sprintf("%s  error: %v", status, err)
	} else if len(path) == 0 {
		status += "  no route"
	}
	v.drawText(0, 0, status, tcell.StyleDefault)

	v.screen.Show()
}

func strategyName(s routing.SpotStrategy) string {
	if s == routing.LatticeSpots {
		return "lattice"
	}
	return "grid"
}

// cell maps a world coordinate to a terminal cell.
func (v *viewer) cell(p geometry.Point) (int, int) {
	return marginX + int(p.X/scaleX+0.5), marginY + int(p.Y/scaleY+0.5)
}

func (v *viewer) drawRect(r geometry.Rect, style tcell.Style) {
	x0, y0 := v.cell(r.NorthWest())
	x1, y1 := v.cell(r.SouthEast())

	for x := x0 + 1; x < x1; x++ {
		v.screen.SetContent(x, y0, '─', nil, style)
		v.screen.SetContent(x, y1, '─', nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		v.screen.SetContent(x0, y, '│', nil, style)
		v.screen.SetContent(x1, y, '│', nil, style)
	}
	v.screen.SetContent(x0, y0, '┌', nil, style)
	v.screen.SetContent(x1, y0, '┐', nil, style)
	v.screen.SetContent(x0, y1, '└', nil, style)
	v.screen.SetContent(x1, y1, '┘', nil, style)
}

func (v *viewer) drawPath(path []geometry.Point, style tcell.Style) {
	for i := 1; i < len(path); i++ {
		x0, y0 := v.cell(path[i-1])
		x1, y1 := v.cell(path[i])
		v.drawSegment(x0, y0, x1, y1, style)
	}
	if len(path) > 0 {
		x, y := v.cell(path[0])
		v.screen.SetContent(x, y, '●', nil, style)
		x, y = v.cell(path[len(path)-1])
		v.screen.SetContent(x, y, '●', nil, style)
	}
}

func (v *viewer) drawSegment(x0, y0, x1, y1 int, style tcell.Style) {
	if y0 == y1 {
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		for x := x0; x <= x1; x++ {
			v.screen.SetContent(x, y0, '═', nil, style)
		}
		return
	}
	if x0 == x1 {
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		for y := y0; y <= y1; y++ {
			v.screen.SetContent(x0, y, '║', nil, style)
		}
	}
}

func (v *viewer) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}
