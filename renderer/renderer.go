package renderer

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
)

const labelFontFamily = "Verdana"

// ErrInvalidSettings is returned when render settings fail validation.
var ErrInvalidSettings = errors.New("invalid render settings")

var validate = validator.New()

// Settings controls the map layout.
type Settings struct {
	Width             float64    `json:"width" yaml:"width" validate:"gt=0"`
	Height            float64    `json:"height" yaml:"height" validate:"gt=0"`
	Padding           float64    `json:"padding" yaml:"padding" validate:"gte=0"`
	LineWidth         float64    `json:"line_width" yaml:"lineWidth" validate:"gte=0"`
	StopRadius        float64    `json:"stop_radius" yaml:"stopRadius" validate:"gte=0"`
	BusLabelFontSize  int        `json:"bus_label_font_size" yaml:"busLabelFontSize" validate:"gte=0"`
	BusLabelOffset    [2]float64 `json:"bus_label_offset" yaml:"busLabelOffset"`
	StopLabelFontSize int        `json:"stop_label_font_size" yaml:"stopLabelFontSize" validate:"gte=0"`
	StopLabelOffset   [2]float64 `json:"stop_label_offset" yaml:"stopLabelOffset"`
	UnderlayerColor   Color      `json:"underlayer_color" yaml:"-"`
	UnderlayerWidth   float64    `json:"underlayer_width" yaml:"underlayerWidth" validate:"gte=0"`
	ColorPalette      []Color    `json:"color_palette" yaml:"-" validate:"min=1"`
}

// Validate checks the settings. Padding must leave room for the drawing.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if s.Padding >= math.Min(s.Width, s.Height)/2 {
		return fmt.Errorf("%w: padding %v too large for %vx%v canvas", ErrInvalidSettings, s.Padding, s.Width, s.Height)
	}
	return nil
}

// MapRenderer draws a frozen catalogue.
type MapRenderer struct {
	settings  Settings
	cat       *catalogue.Catalogue
	projector SphereProjector
}

// New prepares a renderer. The projection covers the stops served by buses.
func New(settings Settings, cat *catalogue.Catalogue) (*MapRenderer, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	used := cat.GetUsedStops()
	coords := make([]geo.Coordinates, len(used))
	for i, s := range used {
		coords[i] = s.Coordinates
	}
	return &MapRenderer{
		settings:  settings,
		cat:       cat,
		projector: NewSphereProjector(coords, settings.Width, settings.Height, settings.Padding),
	}, nil
}

// Render writes the SVG map to w.
func (m *MapRenderer) Render(w io.Writer) error {
	return m.Document().Render(w)
}

// Document lays out the map: bus lines, bus labels, stop circles, stop labels.
func (m *MapRenderer) Document() *Document {
	doc := &Document{}
	buses := m.cat.GetAllBuses()
	m.drawRouteLines(doc, buses)
	m.drawRouteLabels(doc, buses)
	stops := m.cat.GetUsedStops()
	m.drawStopCircles(doc, stops)
	m.drawStopLabels(doc, stops)
	return doc
}

func (m *MapRenderer) paletteColor(i int) Color {
	return m.settings.ColorPalette[i%len(m.settings.ColorPalette)]
}

func (m *MapRenderer) drawRouteLines(doc *Document, buses []catalogue.Bus) {
	for i, bus := range buses {
		line := Polyline{PathProps: PathProps{
			Fill:        NamedColor("none"),
			Stroke:      m.paletteColor(i),
			StrokeWidth: m.settings.LineWidth,
			LineCap:     LineCapRound,
			LineJoin:    LineJoinRound,
		}}
		for _, sid := range bus.Stops {
			line.Points = append(line.Points, m.projector.Project(m.cat.Stop(sid).Coordinates))
		}
		doc.Add(line)
	}
}

func (m *MapRenderer) drawRouteLabels(doc *Document, buses []catalogue.Bus) {
	offset := Point{X: m.settings.BusLabelOffset[0], Y: m.settings.BusLabelOffset[1]}
	for i, bus := range buses {
		color := m.paletteColor(i)
		addLabel := func(sid catalogue.StopID) {
			base := Text{
				Position:   m.projector.Project(m.cat.Stop(sid).Coordinates),
				Offset:     offset,
				FontSize:   m.settings.BusLabelFontSize,
				FontFamily: labelFontFamily,
				FontWeight: "bold",
				Data:       bus.Name,
			}
			doc.Add(m.underlayer(base))
			base.Fill = color
			doc.Add(base)
		}

		first := bus.Stops[0]
		addLabel(first)
		if last := bus.LastForwardStop(); !bus.IsRoundtrip && last != first {
			addLabel(last)
		}
	}
}

func (m *MapRenderer) drawStopCircles(doc *Document, stops []catalogue.Stop) {
	for _, s := range stops {
		doc.Add(Circle{
			PathProps: PathProps{Fill: NamedColor("white")},
			Center:    m.projector.Project(s.Coordinates),
			Radius:    m.settings.StopRadius,
		})
	}
}

func (m *MapRenderer) drawStopLabels(doc *Document, stops []catalogue.Stop) {
	offset := Point{X: m.settings.StopLabelOffset[0], Y: m.settings.StopLabelOffset[1]}
	for _, s := range stops {
		base := Text{
			Position:   m.projector.Project(s.Coordinates),
			Offset:     offset,
			FontSize:   m.settings.StopLabelFontSize,
			FontFamily: labelFontFamily,
			Data:       s.Name,
		}
		doc.Add(m.underlayer(base))
		base.Fill = NamedColor("black")
		doc.Add(base)
	}
}

// underlayer returns the halo drawn beneath a label.
func (m *MapRenderer) underlayer(t Text) Text {
	t.PathProps = PathProps{
		Fill:        m.settings.UnderlayerColor,
		Stroke:      m.settings.UnderlayerColor,
		StrokeWidth: m.settings.UnderlayerWidth,
		LineCap:     LineCapRound,
		LineJoin:    LineJoinRound,
	}
	return t
}

// DefaultSettings is used when a catalogue comes without render settings.
func DefaultSettings() Settings {
	return Settings{
		Width:             1200,
		Height:            1200,
		Padding:           50,
		LineWidth:         14,
		StopRadius:        5,
		BusLabelFontSize:  20,
		BusLabelOffset:    [2]float64{7, 15},
		StopLabelFontSize: 20,
		StopLabelOffset:   [2]float64{7, -3},
		UnderlayerColor:   RGBA(255, 255, 255, 0.85),
		UnderlayerWidth:   3,
		ColorPalette:      []Color{NamedColor("green"), RGB(255, 160, 0), NamedColor("red")},
	}
}
