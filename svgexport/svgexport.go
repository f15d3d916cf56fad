// Package svgexport renders a routing request and its result as a standalone
// SVG document, mainly for visual debugging of the routing pipeline.
package svgexport

import (
	"bytes"
	"fmt"

	"orthoroute/geometry"
	"orthoroute/routing"
)

const (
	shapeFill     = "#dbeafe"
	shapeStroke   = "#1d4ed8"
	obstacleFill  = "#fee2e2"
	obstacleLine  = "#b91c1c"
	rulerStroke   = "#d1d5db"
	spotFill      = "#9ca3af"
	pathStroke    = "#111827"
	canvasPadding = 20.0
)

// Render produces an SVG document showing the scene shapes, the ruler grid,
// the candidate spots, and the routed path. The diagnostics come from
// Router.RouteDebug for the same request.
func Render(req routing.Request, path []geometry.Point, diag routing.Diagnostics) string {
	vb := viewBox(req, path)

	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		vb.Left, vb.Top, vb.Width, vb.Height, vb.Width, vb.Height)

	writeRulers(&buf, diag, vb)
	writeRect(&buf, req.PointA.Shape, shapeFill, shapeStroke)
	writeRect(&buf, req.PointB.Shape, shapeFill, shapeStroke)
	for _, o := range req.Obstacles {
		writeRect(&buf, o, obstacleFill, obstacleLine)
	}
	writeSpots(&buf, diag.Spots)
	writePath(&buf, path)

	buf.WriteString("</svg>\n")
	return buf.String()
}

// viewBox frames everything the drawing touches plus a fixed padding.
func viewBox(req routing.Request, path []geometry.Point) geometry.Rect {
	vb := req.PointA.Shape.Union(req.PointB.Shape)
	for _, o := range req.Obstacles {
		vb = vb.Union(o)
	}
	for _, p := range path {
		vb = vb.Union(geometry.Rect{Left: p.X, Top: p.Y})
	}
	return vb.Inflate(canvasPadding, canvasPadding)
}

func writeRulers(buf *bytes.Buffer, diag routing.Diagnostics, vb geometry.Rect) {
	for _, y := range diag.HRulers {
		fmt.Fprintf(buf,
			`  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-dasharray="4 4"/>`+"\n",
			vb.Left, y, vb.Right(), y, rulerStroke)
	}
	for _, x := range diag.VRulers {
		fmt.Fprintf(buf,
			`  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-dasharray="4 4"/>`+"\n",
			x, vb.Top, x, vb.Bottom(), rulerStroke)
	}
}

func writeRect(buf *bytes.Buffer, r geometry.Rect, fill, stroke string) {
	fmt.Fprintf(buf,
		`  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s"/>`+"\n",
		r.Left, r.Top, r.Width, r.Height, fill, stroke)
}

func writeSpots(buf *bytes.Buffer, spots []geometry.Point) {
	for _, p := range spots {
		fmt.Fprintf(buf, `  <circle cx="%.1f" cy="%.1f" r="1.5" fill="%s"/>`+"\n",
			p.X, p.Y, spotFill)
	}
}

func writePath(buf *bytes.Buffer, path []geometry.Point) {
	if len(path) == 0 {
		return
	}
	buf.WriteString(`  <polyline points="`)
	for i, p := range path {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "%.1f,%.1f", p.X, p.Y)
	}
	fmt.Fprintf(buf, `" fill="none" stroke="%s" stroke-width="2"/>`+"\n", pathStroke)
}
