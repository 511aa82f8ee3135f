package renderer

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorString(t *testing.T) {
	assert.Equal(t, "red", NamedColor("red").String())
	assert.Equal(t, "rgb(255,16,12)", RGB(255, 16, 12).String())
	assert.Equal(t, "rgba(255,200,23,0.85)", RGBA(255, 200, 23, 0.85).String())
	assert.Equal(t, "", Color{}.String())
	assert.False(t, Color{}.IsSet())
}

func TestColorUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"named", `"green"`, "green", false},
		{"rgb", `[255, 160, 0]`, "rgb(255,160,0)", false},
		{"rgba", `[255, 200, 23, 0.85]`, "rgba(255,200,23,0.85)", false},
		{"too few values", `[1, 2]`, "", true},
		{"out of range", `[256, 0, 0]`, "", true},
		{"fractional channel", `[1.5, 0, 0]`, "", true},
		{"wrong type", `{"r": 1}`, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Color
			err := json.Unmarshal([]byte(tt.input), &c)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.String())
		})
	}
}

func TestDocumentRender(t *testing.T) {
	doc := &Document{}
	doc.Add(Circle{PathProps: PathProps{Fill: NamedColor("white")}, Center: Point{X: 20, Y: 20}, Radius: 5})
	doc.Add(Polyline{
		PathProps: PathProps{Fill: NamedColor("none"), Stroke: RGB(1, 2, 3), StrokeWidth: 14, LineCap: LineCapRound, LineJoin: LineJoinRound},
		Points:    []Point{{X: 1, Y: 2}, {X: 3.5, Y: 4}},
	})
	doc.Add(Text{Position: Point{X: 1, Y: 2}, Offset: Point{X: 7, Y: -3}, FontSize: 20, FontFamily: "Verdana", Data: `Tom & "Jerry" <'s>`})

	var sb strings.Builder
	require.NoError(t, doc.Render(&sb))

	want := "<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n" +
		"<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\">\n" +
		"<circle cx=\"20\" cy=\"20\" r=\"5\" fill=\"white\"/>\n" +
		"<polyline points=\"1,2 3.5,4\" fill=\"none\" stroke=\"rgb(1,2,3)\" stroke-width=\"14\" stroke-linecap=\"round\" stroke-linejoin=\"round\"/>\n" +
		"<text x=\"1\" y=\"2\" dx=\"7\" dy=\"-3\" font-size=\"20\" font-family=\"Verdana\">Tom &amp; &quot;Jerry&quot; &lt;&apos;s&gt;</text>\n" +
		"</svg>"
	assert.Equal(t, want, sb.String())
	assert.Equal(t, 3, doc.Len())
}

func TestEmptyDocument(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, (&Document{}).Render(&sb))
	assert.True(t, strings.HasSuffix(sb.String(), "version=\"1.1\">\n</svg>"))
}
