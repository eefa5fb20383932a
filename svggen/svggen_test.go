package svggen

import (
	"strings"
	"testing"

	i2stypes "image2svg/type"
)

func square(x0, y0, x1, y1 float64) i2stypes.Path {
	return i2stypes.Path{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func TestGenerateSVG_EmptyData(t *testing.T) {
	data := &i2stypes.TracedData{Width: 5, Height: 7}
	out := GenerateSVG(data, Options{})

	if !strings.Contains(out, `viewBox="0 0 5 7"`) {
		t.Errorf("output missing viewBox: %s", out)
	}
	if !strings.Contains(out, "</svg>") {
		t.Errorf("output not a closed svg document: %s", out)
	}
	if strings.Contains(out, "<path") {
		t.Errorf("empty data produced drawable content: %s", out)
	}
}

func TestGenerateSVG_SingleShape(t *testing.T) {
	data := &i2stypes.TracedData{
		Width:  10,
		Height: 10,
		Shapes: []i2stypes.TracedShape{{
			Color:    i2stypes.Color{R: 255, G: 0, B: 0, A: 255},
			Contours: []i2stypes.Path{square(0, 0, 4, 4)},
			Area:     25,
		}},
	}
	out := GenerateSVG(data, Options{})

	for _, want := range []string{
		"M0 0 L4 0 4 4 0 4 Z",
		"fill:#ff0000",
		"fill-opacity:1",
		"fill-rule:evenodd",
		"stroke:none",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateSVG_HoleInOnePath(t *testing.T) {
	data := &i2stypes.TracedData{
		Width:  10,
		Height: 10,
		Shapes: []i2stypes.TracedShape{{
			Color: i2stypes.Color{R: 0, G: 128, B: 0, A: 255},
			Contours: []i2stypes.Path{
				square(0, 0, 9, 9),
				square(3, 3, 6, 6),
			},
			Area: 72,
		}},
	}
	out := GenerateSVG(data, Options{})

	// 外轮廓和孔洞并入一条 path，靠 even-odd 填充区分
	if got := strings.Count(out, "<path"); got != 1 {
		t.Errorf("output has %d path elements, want 1", got)
	}
	if got := strings.Count(out, "M"); got != 2 {
		t.Errorf("path data has %d move-to commands, want 2", got)
	}
	if got := strings.Count(out, "Z"); got != 2 {
		t.Errorf("path data has %d close commands, want 2", got)
	}
}

func TestGenerateSVG_Stroke(t *testing.T) {
	data := &i2stypes.TracedData{
		Width:  10,
		Height: 10,
		Shapes: []i2stypes.TracedShape{{
			Color:    i2stypes.Color{R: 1, G: 2, B: 3, A: 255},
			Contours: []i2stypes.Path{square(1, 1, 8, 8)},
			Area:     64,
		}},
	}
	out := GenerateSVG(data, Options{
		StrokeEnabled: true,
		StrokeColor:   "#123456",
		StrokeWidth:   2.5,
	})

	if !strings.Contains(out, "stroke:#123456;stroke-width:2.5") {
		t.Errorf("output missing stroke style:\n%s", out)
	}
}

func TestGenerateSVG_TranslucentOpacity(t *testing.T) {
	data := &i2stypes.TracedData{
		Width:  4,
		Height: 4,
		Shapes: []i2stypes.TracedShape{{
			Color:    i2stypes.Color{R: 10, G: 20, B: 30, A: 128},
			Contours: []i2stypes.Path{square(0, 0, 3, 3)},
			Area:     16,
		}},
	}
	out := GenerateSVG(data, Options{})

	if !strings.Contains(out, "fill-opacity:0.502") {
		t.Errorf("output missing translucent fill-opacity:\n%s", out)
	}
}

func TestGenerateSVG_DegenerateShapeOmitted(t *testing.T) {
	data := &i2stypes.TracedData{
		Width:  4,
		Height: 4,
		Shapes: []i2stypes.TracedShape{{
			Color:    i2stypes.Color{R: 9, G: 9, B: 9, A: 255},
			Contours: []i2stypes.Path{{{X: 1, Y: 1}}},
			Area:     1,
		}},
	}
	out := GenerateSVG(data, Options{})

	if strings.Contains(out, "<path") {
		t.Errorf("degenerate shape produced a path:\n%s", out)
	}
}

func TestGenerateSVG_SimplificationShrinksOutput(t *testing.T) {
	// 带抖动的长轮廓，化简后输出应明显变短
	var noisy i2stypes.Path
	for i := 0; i < 50; i++ {
		y := 0.0
		if i%2 == 1 {
			y = 0.2
		}
		noisy = append(noisy, i2stypes.Point{X: float64(i), Y: y})
	}
	noisy = append(noisy, i2stypes.Point{X: 49, Y: 20}, i2stypes.Point{X: 0, Y: 20})

	data := &i2stypes.TracedData{
		Width:  50,
		Height: 21,
		Shapes: []i2stypes.TracedShape{{
			Color:    i2stypes.Color{R: 0, G: 0, B: 0, A: 255},
			Contours: []i2stypes.Path{noisy},
			Area:     1000,
		}},
	}

	raw := GenerateSVG(data, Options{Simplification: 0})
	simplified := GenerateSVG(data, Options{Simplification: 1})
	if len(simplified) >= len(raw) {
		t.Errorf("simplification did not shrink output: %d >= %d", len(simplified), len(raw))
	}
}
