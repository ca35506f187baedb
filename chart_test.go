package ggchart

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestDrawDashLine(t *testing.T) {
	s := &mockSurface{}
	c := NewChart(scenarioGraph(), s)
	col := HexColor(0xffffff, 0.5)

	if err := c.DrawDashLine(Pt(90, 50), Pt(310, 50), col); err != nil {
		t.Fatalf("DrawDashLine() error = %v", err)
	}
	if len(s.paths) != 1 {
		t.Fatalf("used %d paths, want 1", len(s.paths))
	}
	p := s.paths[0]
	if got, want := p.ops(), []string{"move(90,50)", "line(310,50)"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ops = %v, want %v", got, want)
	}
	if !reflect.DeepEqual(p.dash, []float64{5, 5}) {
		t.Errorf("dash = %v, want [5 5]", p.dash)
	}
	if p.lineWidth != 1.5 {
		t.Errorf("line width = %g, want 1.5", p.lineWidth)
	}
	if p.stroked != 1 {
		t.Errorf("stroked %d times, want 1", p.stroked)
	}
	if sc, _ := p.lastStrokeColor(); sc != col {
		t.Errorf("stroke color = %v, want %v", sc, col)
	}
}

func TestDrawColoredSingleLine(t *testing.T) {
	s := &mockSurface{}
	g := scenarioGraph()
	c := NewChart(g, s)
	series := Series{0.1, 2, 3.4, 1, 0.34}

	if err := c.DrawColoredSingleLine(series, ColorAt(1)); err != nil {
		t.Fatalf("DrawColoredSingleLine() error = %v", err)
	}
	if len(s.paths) != 1 {
		t.Fatalf("used %d paths, want 1", len(s.paths))
	}
	p := s.paths[0]
	if got := len(p.ops()); got != len(series)+1 {
		t.Errorf("emitted %d geometry calls, want %d", got, len(series)+1)
	}
	if p.lineWidth != 1.5 || p.dash != nil || p.stroked != 1 {
		t.Errorf("stroke = width %g dash %v count %d, want 1.5 solid once", p.lineWidth, p.dash, p.stroked)
	}
	if sc, _ := p.lastStrokeColor(); sc != ColorAt(1) {
		t.Errorf("stroke color = %v, want %v", sc, ColorAt(1))
	}
	for _, cmd := range p.cmds {
		if (cmd.op == "move" || cmd.op == "line") && !cmd.point.IsFinite() {
			t.Errorf("non-finite point %v", cmd.point)
		}
	}
}

func TestDrawColoredSingleLineRejectsZero(t *testing.T) {
	s := &mockSurface{}
	c := NewChart(scenarioGraph(), s)

	err := c.DrawColoredSingleLine(Series{0.0, 1.0}, ColorAt(0))
	if !errors.Is(err, ErrNonPositiveValue) {
		t.Fatalf("error = %v, want ErrNonPositiveValue", err)
	}
	if len(s.paths) != 0 {
		t.Errorf("drew %d paths before failing, want 0", len(s.paths))
	}
}

func TestDrawColoredMultiLinesColors(t *testing.T) {
	s := &mockSurface{}
	c := NewChart(scenarioGraph(), s)
	var series []Series
	for range 7 {
		series = append(series, Series{1, 10, 100})
	}

	if err := c.DrawColoredMultiLines(series...); err != nil {
		t.Fatalf("DrawColoredMultiLines() error = %v", err)
	}
	if len(s.paths) != len(series) {
		t.Fatalf("used %d paths, want %d", len(s.paths), len(series))
	}
	for i, p := range s.paths {
		if sc, _ := p.lastStrokeColor(); sc != ColorAt(i) {
			t.Errorf("series %d color = %v, want %v", i, sc, ColorAt(i))
		}
	}
}

func TestDrawColoredMultiLinesCustomPalette(t *testing.T) {
	s := &mockSurface{}
	only := HexColor(0x123456, 1)
	c := NewChart(scenarioGraph(), s, WithPalette(NewPalette(only)))

	if err := c.DrawColoredMultiLines(Series{1, 2}, Series{3, 4}); err != nil {
		t.Fatal(err)
	}
	for i, p := range s.paths {
		if sc, _ := p.lastStrokeColor(); sc != only {
			t.Errorf("series %d color = %v, want %v", i, sc, only)
		}
	}
}

func TestDrawColoredMultiLinesValidatesFirst(t *testing.T) {
	s := &mockSurface{}
	c := NewChart(scenarioGraph(), s)

	err := c.DrawColoredMultiLines(Series{1, 2}, Series{3, 4}, Series{5, -1})
	var se *SeriesError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *SeriesError", err)
	}
	if se.Series != 2 || se.Column != 1 || se.Value != -1 {
		t.Errorf("SeriesError = %+v, want series 2 column 1 value -1", se)
	}
	if len(s.paths) != 0 {
		t.Errorf("drew %d paths before failing, want 0", len(s.paths))
	}
}

func TestDrawColoredMultiLinesShortSeries(t *testing.T) {
	c := NewChart(scenarioGraph(), &mockSurface{})
	if err := c.DrawColoredMultiLines(Series{1, 2}, Series{3}); !errors.Is(err, ErrSeriesTooShort) {
		t.Errorf("error = %v, want ErrSeriesTooShort", err)
	}
}

func TestDrawCirclesStartEnd(t *testing.T) {
	s := &mockSurface{}
	c := NewChart(scenarioGraph(), s)

	if err := c.DrawCirclesStartEnd(Pt(100, 100), Pt(200, 50)); err != nil {
		t.Fatal(err)
	}
	if len(s.paths) != 1 {
		t.Fatalf("used %d paths, want 1", len(s.paths))
	}
	want := []command{
		{op: "oval", rect: Rect{X: 97.5, Y: 97.5, W: 7, H: 7}, color: ColorAt(0)},
		{op: "oval", rect: Rect{X: 200, Y: 50, W: 7, H: 7}, color: ColorAt(0)},
	}
	if !reflect.DeepEqual(s.paths[0].cmds, want) {
		t.Errorf("marker commands = %v, want %v", s.paths[0].cmds, want)
	}
}

func TestGraphLineLabel(t *testing.T) {
	c := NewChart(scenarioGraph(), &mockSurface{})
	l := c.GraphLineLabel(Pt(100, 40), "3.4")

	if l.Frame != (Rect{X: 75, Y: 31, W: 50, H: 18}) {
		t.Errorf("Frame = %+v, want 50x18 centered on (100,40)", l.Frame)
	}
	if l.Center() != Pt(100, 40) {
		t.Errorf("Center() = %v", l.Center())
	}
	if l.Text != "3.4" || l.Color != White || l.Align != AlignCenter || l.FontSize != 12 || !l.Bold {
		t.Errorf("Label = %+v", l)
	}
}

func TestDrawLabel(t *testing.T) {
	plain := &mockSurface{}
	c := NewChart(scenarioGraph(), plain)
	drawn, err := c.DrawLabel(c.GraphLineLabel(Pt(1, 1), "x"))
	if drawn || err != nil {
		t.Errorf("DrawLabel on plain surface = %v, %v, want false, nil", drawn, err)
	}

	ls := &labelSurface{}
	c = NewChart(scenarioGraph(), ls)
	drawn, err = c.DrawLabel(c.GraphLineLabel(Pt(1, 1), "x"))
	if !drawn || err != nil {
		t.Errorf("DrawLabel = %v, %v, want true, nil", drawn, err)
	}
	if len(ls.labels) != 1 {
		t.Errorf("surface got %d labels, want 1", len(ls.labels))
	}
	if _, err := c.DrawLabel(Label{}); !errors.Is(err, errEmptyLabel) {
		t.Errorf("DrawLabel error = %v, want surface error", err)
	}
}

func TestDrawGradient(t *testing.T) {
	s := &mockSurface{}
	c := NewChart(scenarioGraph(), s)
	top, bottom := HexColor(0xfa7a52, 1), HexColor(0xf9d45c, 1)

	if err := c.DrawGradient(top, bottom); err != nil {
		t.Fatal(err)
	}
	if len(s.gradients) != 1 {
		t.Fatalf("got %d gradients, want 1", len(s.gradients))
	}
	got := s.gradients[0]
	want := gradientCall{
		start:  Pt(0, 0),
		end:    Pt(0, 300),
		stops:  []ColorStop{{Offset: 0, Color: top}, {Offset: 1, Color: bottom}},
		bounds: Rect{W: 400, H: 300},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("gradient = %+v, want %+v", got, want)
	}
}

func TestDrawGuides(t *testing.T) {
	s := &mockSurface{}
	g := scenarioGraph()
	c := NewChart(g, s)

	if err := c.DrawGuides(1, 1000); err != nil {
		t.Fatal(err)
	}
	if len(s.paths) != 2 {
		t.Fatalf("used %d paths, want 2", len(s.paths))
	}
	for i, v := range []float64{1, 1000} {
		y := g.ValueY(g.Scale.Transform(v))
		want := []command{{op: "move", point: Pt(90, y)}, {op: "line", point: Pt(310, y)}}
		if got := s.paths[i].cmds[:2]; !reflect.DeepEqual(got, want) {
			t.Errorf("guide %d = %v, want %v", i, got, want)
		}
		if s.paths[i].dash == nil {
			t.Errorf("guide %d is not dashed", i)
		}
	}
}

func TestDrawGuidesRejectsBeforeDrawing(t *testing.T) {
	tests := []struct {
		name    string
		scale   Scale
		values  []float64
		wantErr error
	}{
		{"zero on log scale", Log10Scale, []float64{10, 0}, ErrNonPositiveValue},
		{"negative on log scale", Log10Scale, []float64{-1}, ErrNonPositiveValue},
		{"NaN", LinearScale, []float64{1, math.NaN()}, ErrNonFiniteValue},
		{"infinite", Log10Scale, []float64{math.Inf(1), 10}, ErrNonFiniteValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &mockSurface{}
			c := NewChart(NewGraph(WithSize(400, 300), WithScale(tt.scale)), s)
			if err := c.DrawGuides(tt.values...); !errors.Is(err, tt.wantErr) {
				t.Errorf("DrawGuides(%v) error = %v, want %v", tt.values, err, tt.wantErr)
			}
			if len(s.paths) != 0 {
				t.Errorf("drew %d guides before failing, want 0", len(s.paths))
			}
		})
	}
}

func TestDrawGuidesLinearAllowsZero(t *testing.T) {
	s := &mockSurface{}
	g := NewGraph(WithSize(400, 300), WithScale(LinearScale))
	c := NewChart(g, s)
	if err := c.DrawGuides(0); err != nil {
		t.Fatalf("DrawGuides(0) error = %v", err)
	}
	if got := s.paths[0].cmds[0].point.Y; got != g.Height-g.BottomBorder {
		t.Errorf("guide at y=%g, want %g", got, g.Height-g.BottomBorder)
	}
}

func TestChartNilSurface(t *testing.T) {
	c := NewChart(scenarioGraph(), nil)
	checks := map[string]error{
		"dash":     c.DrawDashLine(Pt(0, 0), Pt(1, 1), Black),
		"single":   c.DrawColoredSingleLine(Series{1, 2}, Black),
		"multi":    c.DrawColoredMultiLines(Series{1, 2}),
		"circles":  c.DrawCirclesStartEnd(Pt(0, 0), Pt(1, 1)),
		"gradient": c.DrawGradient(Black, White),
		"guides":   c.DrawGuides(1),
	}
	for name, err := range checks {
		if !errors.Is(err, ErrNilSurface) {
			t.Errorf("%s: error = %v, want ErrNilSurface", name, err)
		}
	}
	if drawn, err := c.DrawLabel(Label{Text: "x"}); drawn || !errors.Is(err, ErrNilSurface) {
		t.Errorf("DrawLabel = %v, %v, want false, ErrNilSurface", drawn, err)
	}
}

func TestChartStrokeError(t *testing.T) {
	boom := errors.New("boom")
	c := NewChart(scenarioGraph(), &mockSurface{strokeErr: boom})
	if err := c.DrawColoredSingleLine(Series{1, 2}, Black); !errors.Is(err, boom) {
		t.Errorf("error = %v, want wrapped stroke error", err)
	}
	if err := c.DrawDashLine(Pt(0, 0), Pt(1, 1), Black); !errors.Is(err, boom) {
		t.Errorf("DrawDashLine error = %v, want stroke error", err)
	}
}

func TestChartOptions(t *testing.T) {
	s := &mockSurface{}
	marker := HexColor(0x00ff00, 1)
	c := NewChart(scenarioGraph(), s,
		WithLineWidth(3),
		WithDash(2),
		WithMarkerColor(marker),
	)
	if err := c.DrawDashLine(Pt(0, 0), Pt(1, 0), Black); err != nil {
		t.Fatal(err)
	}
	if p := s.paths[0]; p.lineWidth != 3 || !reflect.DeepEqual(p.dash, []float64{2, 2}) {
		t.Errorf("width %g dash %v, want 3 and [2 2]", p.lineWidth, p.dash)
	}
	if err := c.DrawCirclesStartEnd(Pt(0, 0), Pt(1, 1)); err != nil {
		t.Fatal(err)
	}
	if got := s.paths[1].cmds[0].color; got != marker {
		t.Errorf("marker color = %v, want %v", got, marker)
	}
}

func TestWithDashIgnoresInvalid(t *testing.T) {
	s := &mockSurface{}
	c := NewChart(scenarioGraph(), s, WithDash(0, 0))
	if err := c.DrawDashLine(Pt(0, 0), Pt(1, 0), Black); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(s.paths[0].dash, []float64{5, 5}) {
		t.Errorf("dash = %v, want default [5 5]", s.paths[0].dash)
	}
}
