package renderer

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Point is a canvas position.
type Point struct {
	X, Y float64
}

type colorKind int

const (
	colorUnset colorKind = iota
	colorNamed
	colorRGB
	colorRGBA
)

// Color is an SVG paint value: a name, rgb(...) or rgba(...).
// The zero Color is unset and is not rendered.
type Color struct {
	kind    colorKind
	name    string
	r, g, b uint8
	alpha   float64
}

func NamedColor(name string) Color { return Color{kind: colorNamed, name: name} }

func RGB(r, g, b uint8) Color { return Color{kind: colorRGB, r: r, g: g, b: b} }

func RGBA(r, g, b uint8, alpha float64) Color {
	return Color{kind: colorRGBA, r: r, g: g, b: b, alpha: alpha}
}

// IsSet reports whether the colour carries a value.
func (c Color) IsSet() bool { return c.kind != colorUnset }

func (c Color) String() string {
	switch c.kind {
	case colorNamed:
		return c.name
	case colorRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.r, c.g, c.b)
	case colorRGBA:
		return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.r, c.g, c.b, formatNumber(c.alpha))
	default:
		return ""
	}
}

// UnmarshalJSON accepts "name", [r,g,b] or [r,g,b,alpha].
func (c *Color) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*c = NamedColor(name)
		return nil
	}
	var parts []float64
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("color must be a string, Rgb or Rgba value: %s", data)
	}
	channel := func(v float64) (uint8, error) {
		if v < 0 || v > 255 || v != float64(int(v)) {
			return 0, fmt.Errorf("color channel out of range: %v", v)
		}
		return uint8(v), nil
	}
	if len(parts) != 3 && len(parts) != 4 {
		return fmt.Errorf("color takes either 3 values (Rgb) or 3 values and 1 alpha (Rgba), got %d", len(parts))
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		v, err := channel(parts[i])
		if err != nil {
			return err
		}
		rgb[i] = v
	}
	if len(parts) == 3 {
		*c = RGB(rgb[0], rgb[1], rgb[2])
		return nil
	}
	*c = RGBA(rgb[0], rgb[1], rgb[2], parts[3])
	return nil
}

type StrokeLineCap int

const (
	LineCapUnset StrokeLineCap = iota
	LineCapButt
	LineCapRound
	LineCapSquare
)

func (c StrokeLineCap) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	}
	return ""
}

type StrokeLineJoin int

const (
	LineJoinUnset StrokeLineJoin = iota
	LineJoinArcs
	LineJoinBevel
	LineJoinMiter
	LineJoinMiterClip
	LineJoinRound
)

func (j StrokeLineJoin) String() string {
	switch j {
	case LineJoinArcs:
		return "arcs"
	case LineJoinBevel:
		return "bevel"
	case LineJoinMiter:
		return "miter"
	case LineJoinMiterClip:
		return "miter-clip"
	case LineJoinRound:
		return "round"
	}
	return ""
}

// PathProps holds the optional paint attributes shared by all shapes.
// Zero values are omitted from the output.
type PathProps struct {
	Fill        Color
	Stroke      Color
	StrokeWidth float64
	LineCap     StrokeLineCap
	LineJoin    StrokeLineJoin
}

func (p PathProps) writeAttrs(b *strings.Builder) {
	if p.Fill.IsSet() {
		writeAttr(b, "fill", p.Fill.String())
	}
	if p.Stroke.IsSet() {
		writeAttr(b, "stroke", p.Stroke.String())
	}
	if p.StrokeWidth != 0 {
		writeAttr(b, "stroke-width", formatNumber(p.StrokeWidth))
	}
	if p.LineCap != LineCapUnset {
		writeAttr(b, "stroke-linecap", p.LineCap.String())
	}
	if p.LineJoin != LineJoinUnset {
		writeAttr(b, "stroke-linejoin", p.LineJoin.String())
	}
}

// Object is an element of a Document.
type Object interface {
	writeSVG(b *strings.Builder)
}

type Circle struct {
	PathProps
	Center Point
	Radius float64
}

func (c Circle) writeSVG(b *strings.Builder) {
	b.WriteString("<circle")
	writeAttr(b, "cx", formatNumber(c.Center.X))
	writeAttr(b, "cy", formatNumber(c.Center.Y))
	writeAttr(b, "r", formatNumber(c.Radius))
	c.writeAttrs(b)
	b.WriteString("/>")
}

type Polyline struct {
	PathProps
	Points []Point
}

func (p Polyline) writeSVG(b *strings.Builder) {
	pts := make([]string, len(p.Points))
	for i, pt := range p.Points {
		pts[i] = formatNumber(pt.X) + "," + formatNumber(pt.Y)
	}
	b.WriteString("<polyline")
	writeAttr(b, "points", strings.Join(pts, " "))
	p.writeAttrs(b)
	b.WriteString("/>")
}

type Text struct {
	PathProps
	Position   Point
	Offset     Point
	FontSize   int
	FontFamily string
	FontWeight string
	Data       string
}

func (t Text) writeSVG(b *strings.Builder) {
	b.WriteString("<text")
	t.writeAttrs(b)
	writeAttr(b, "x", formatNumber(t.Position.X))
	writeAttr(b, "y", formatNumber(t.Position.Y))
	writeAttr(b, "dx", formatNumber(t.Offset.X))
	writeAttr(b, "dy", formatNumber(t.Offset.Y))
	writeAttr(b, "font-size", strconv.Itoa(t.FontSize))
	if t.FontFamily != "" {
		writeAttr(b, "font-family", t.FontFamily)
	}
	if t.FontWeight != "" {
		writeAttr(b, "font-weight", t.FontWeight)
	}
	b.WriteString(">")
	b.WriteString(svgEscape(t.Data))
	b.WriteString("</text>")
}

// Document is an ordered list of SVG objects.
type Document struct {
	objects []Object
}

func (d *Document) Add(obj Object) { d.objects = append(d.objects, obj) }

func (d *Document) Len() int { return len(d.objects) }

// Render writes the document with its XML prolog.
func (d *Document) Render(w io.Writer) error {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n")
	b.WriteString("<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\">\n")
	for _, obj := range d.objects {
		obj.writeSVG(&b)
		b.WriteByte('\n')
	}
	b.WriteString("</svg>")
	_, err := io.WriteString(w, b.String())
	return err
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString("=\"")
	b.WriteString(value)
	b.WriteByte('"')
}

var svgReplacer = strings.NewReplacer(
	"&", "&amp;",
	"\"", "&quot;",
	"'", "&apos;",
	"<", "&lt;",
	">", "&gt;",
)

func svgEscape(s string) string { return svgReplacer.Replace(s) }

// formatNumber prints up to six significant digits.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
