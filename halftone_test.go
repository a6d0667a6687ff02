// seehuhn.de/go/halftone - convert raster images into halftone vector art
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package halftone

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/halftone/layout"
	"seehuhn.de/go/halftone/sample"
)

func solid(w, h int, luma, alpha uint8) *sample.LumaAlpha {
	m := sample.NewLumaAlpha(w, h)
	for y := range h {
		for x := range w {
			m.Set(x, y, luma, alpha)
		}
	}
	return m
}

func TestWhiteSquare(t *testing.T) {
	opt := &Options{
		OutputWidth: 2,
		Spacing:     1,
		Shape:       Circle,
		Grid:        layout.KindRect,
	}
	res, err := Generate(solid(2, 2, 255, 255), opt)
	if err != nil {
		t.Fatal(err)
	}

	want := []Sample{
		{Shape: Circle, Center: vec.Vec2{X: 0.5, Y: 0.5}, Radius: 0.45},
		{Shape: Circle, Center: vec.Vec2{X: 0.5, Y: 1.5}, Radius: 0.45},
		{Shape: Circle, Center: vec.Vec2{X: 1.5, Y: 0.5}, Radius: 0.45},
		{Shape: Circle, Center: vec.Vec2{X: 1.5, Y: 1.5}, Radius: 0.45},
	}
	if d := cmp.Diff(want, res.Samples); d != "" {
		t.Errorf("Generate() mismatch (-want +got):\n%s", d)
	}
	if res.Width() != 2 || res.Height() != 2 {
		t.Errorf("output size %gx%g, want 2x2", res.Width(), res.Height())
	}
}

func TestTransparent(t *testing.T) {
	src := solid(40, 30, 255, 0)
	for _, grid := range []layout.Kind{layout.KindRect, layout.KindHex, layout.KindDiamond, layout.KindPoisson} {
		for _, multi := range []bool{false, true} {
			opt := &Options{
				OutputWidth: 80,
				Spacing:     3,
				Shape:       Hexagon,
				Grid:        grid,
				MultiSample: multi,
				Rand:        rand.New(rand.NewPCG(1, 1)),
			}
			res, err := Generate(src, opt)
			if err != nil {
				t.Fatal(err)
			}
			if len(res.Samples) != 0 {
				t.Errorf("%s: got %d samples, want none", grid, len(res.Samples))
			}
		}
	}
}

func TestAspectRatio(t *testing.T) {
	res, err := Generate(solid(300, 100, 255, 255), &Options{
		OutputWidth: 150,
		Spacing:     10,
		Grid:        layout.KindRect,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Height() != 50 {
		t.Errorf("height: got %g, want 50", res.Height())
	}
	if len(res.Samples) != 15*5 {
		t.Errorf("got %d samples, want %d", len(res.Samples), 15*5)
	}
}

func TestResultOrientation(t *testing.T) {
	// top row white, bottom row black
	src := sample.NewLumaAlpha(2, 2)
	src.Set(0, 0, 255, 255)
	src.Set(1, 0, 255, 255)
	src.Set(0, 1, 0, 255)
	src.Set(1, 1, 0, 255)

	res, err := Generate(src, &Options{OutputWidth: 2, Spacing: 1})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(rect.Rect{URx: 2, URy: 2}, res.Bounds); d != "" {
		t.Errorf("bounds mismatch (-want +got):\n%s", d)
	}
	if len(res.Samples) != 2 {
		t.Fatalf("got %d samples, want 2", len(res.Samples))
	}
	for _, s := range res.Samples {
		if s.Center.Y != 0.5 {
			t.Errorf("sample at %v, want y=0.5 (top row)", s.Center)
		}
	}
}

func TestSpacingLimit(t *testing.T) {
	opt := &Options{OutputWidth: 100, Spacing: 1, Grid: layout.KindDiamond}
	_, err := Generate(solid(2, 1, 0, 255), opt)
	if err != nil {
		t.Errorf("spacing rejected: %v", err)
	}

	// 2*(100/0.01+1)*(50/0.01+1) is above the limit
	opt.Spacing = 0.01
	_, err = Generate(solid(2, 1, 0, 255), opt)
	var cErr *ConfigError
	if !errors.As(err, &cErr) || cErr.Field != "spacing" || !errors.Is(err, ErrSpacing) {
		t.Errorf("spacing 0.01: got error %v", err)
	}
}

func TestVisible(t *testing.T) {
	if !visible(MinRadius) {
		t.Error("sample at the threshold radius dropped")
	}
	if visible(math.Nextafter(MinRadius, 0)) {
		t.Error("sample below the threshold radius kept")
	}
}

// fixedIntensity returns a fixed intensity for every point.
type fixedIntensity float64

func (f fixedIntensity) Estimate(vec.Vec2, float64) float64 {
	return float64(f)
}

// recordingIntensity remembers the radius it was called with.
type recordingIntensity struct {
	radius []float64
}

func (r *recordingIntensity) Estimate(_ vec.Vec2, radius float64) float64 {
	r.radius = append(r.radius, radius)
	return 1
}

func TestFromPointsThreshold(t *testing.T) {
	pts := []vec.Vec2{{X: 1, Y: 1}, {X: 2, Y: 2}}

	// maxRadius = 0.45, threshold at intensity 0.08/0.45 = 0.1778
	if got := FromPoints(pts, fixedIntensity(0.17), Diamond, 1); len(got) != 0 {
		t.Errorf("intensity 0.17: got %d samples, want none", len(got))
	}
	got := FromPoints(pts, fixedIntensity(0.18), Diamond, 1)
	if len(got) != 2 {
		t.Fatalf("intensity 0.18: got %d samples, want 2", len(got))
	}
	for i, s := range got {
		if s.Shape != Diamond || s.Center != pts[i] {
			t.Errorf("unexpected sample %v", s)
		}
		if math.Abs(s.Radius-0.18*0.45) > 1e-12 {
			t.Errorf("radius: got %g, want %g", s.Radius, 0.18*0.45)
		}
	}
}

func TestFromPointsMaxRadius(t *testing.T) {
	rec := &recordingIntensity{}
	FromPoints([]vec.Vec2{{}, {}}, rec, Circle, 4)
	if d := cmp.Diff([]float64{1.8, 1.8}, rec.radius); d != "" {
		t.Errorf("radius mismatch (-want +got):\n%s", d)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	src := sample.NewLumaAlpha(16, 16)
	for y := range 16 {
		for x := range 16 {
			src.Set(x, y, uint8(16*x), uint8(255-8*y))
		}
	}
	for _, grid := range []layout.Kind{layout.KindRect, layout.KindHex, layout.KindDiamond} {
		opt := &Options{OutputWidth: 64, Spacing: 3, Grid: grid, MultiSample: true}
		a, err := Generate(src, opt)
		if err != nil {
			t.Fatal(err)
		}
		b, err := Generate(src, opt)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(a, b); d != "" {
			t.Errorf("%s: results differ:\n%s", grid, d)
		}
		for _, s := range a.Samples {
			if s.Radius < MinRadius || s.Radius > 3*MaxRadiusFraction {
				t.Errorf("%s: radius %g out of range", grid, s.Radius)
			}
		}
	}
}

func TestPoissonSamples(t *testing.T) {
	opt := &Options{
		OutputWidth: 60,
		Spacing:     2,
		Grid:        layout.KindPoisson,
		MultiSample: true,
		Rand:        rand.New(rand.NewPCG(3, 4)),
	}
	res, err := Generate(solid(30, 20, 200, 255), opt)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Samples) == 0 {
		t.Fatal("no samples")
	}
	for i, s := range res.Samples {
		for _, o := range res.Samples[:i] {
			if s.Center.Sub(o.Center).Length() < opt.Spacing {
				t.Fatalf("samples %v and %v too close", s.Center, o.Center)
			}
		}
	}
}

func TestGenerateEmpty(t *testing.T) {
	res, err := Generate(solid(10, 10, 255, 255), &Options{OutputWidth: 5, Spacing: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Samples) != 0 {
		t.Errorf("got %d samples, want none", len(res.Samples))
	}
}

func TestGenerateErrors(t *testing.T) {
	type testCase struct {
		name string
		src  sample.Source
		opt  *Options
		want error
	}
	img := solid(4, 4, 255, 255)
	cases := []testCase{
		{"zero spacing", img, &Options{OutputWidth: 10}, ErrSpacing},
		{"negative spacing", img, &Options{OutputWidth: 10, Spacing: -1}, ErrSpacing},
		{"NaN spacing", img, &Options{OutputWidth: 10, Spacing: math.NaN()}, ErrSpacing},
		{"infinite spacing", img, &Options{OutputWidth: 10, Spacing: math.Inf(1)}, ErrSpacing},
		{"zero width", img, &Options{Spacing: 1}, ErrWidth},
		{"infinite width", img, &Options{OutputWidth: math.Inf(1), Spacing: 1}, ErrWidth},
		{"bad shape", img, &Options{OutputWidth: 10, Spacing: 1, Shape: 9}, ErrShape},
		{"bad grid", img, &Options{OutputWidth: 10, Spacing: 1, Grid: -1}, ErrGrid},
		{"empty image", sample.NewLumaAlpha(0, 3), &Options{OutputWidth: 10, Spacing: 1}, ErrEmptyImage},
		{"tiny spacing", img, &Options{OutputWidth: 100, Spacing: 1e-9}, ErrSpacing},
		{"tiny spacing hex", img, &Options{OutputWidth: 100, Spacing: 1e-9, Grid: layout.KindHex}, ErrSpacing},
		{"tiny spacing diamond", img, &Options{OutputWidth: 100, Spacing: 1e-9, Grid: layout.KindDiamond}, ErrSpacing},
		{"tiny spacing poisson", img, &Options{OutputWidth: 100, Spacing: 1e-9, Grid: layout.KindPoisson}, ErrSpacing},
		{"huge width", img, &Options{OutputWidth: 1e300, Spacing: 1}, ErrSpacing},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Generate(c.src, c.opt)
			if !errors.Is(err, c.want) {
				t.Fatalf("got error %v, want %v", err, c.want)
			}
			var cErr *ConfigError
			if !errors.As(err, &cErr) {
				t.Errorf("error %v is not a ConfigError", err)
			}
		})
	}
}

func TestShapeAndGrid(t *testing.T) {
	type testCase struct {
		shape, grid string
		wantShape   Shape
		wantGrid    layout.Kind
	}
	cases := []testCase{
		{"", "", Circle, layout.KindRect},
		{"hex", "", Hexagon, layout.KindHex},
		{"diamond", "", Diamond, layout.KindDiamond},
		{"circle", "", Circle, layout.KindRect},
		{"", "poisson", Circle, layout.KindPoisson},
		{"", "hex", Hexagon, layout.KindHex},
		{"", "rect", Circle, layout.KindRect},
		{"diamond", "poisson", Diamond, layout.KindPoisson},
	}
	for _, c := range cases {
		s, g, err := ShapeAndGrid(c.shape, c.grid)
		if err != nil {
			t.Errorf("%q/%q: %v", c.shape, c.grid, err)
			continue
		}
		if s != c.wantShape || g != c.wantGrid {
			t.Errorf("%q/%q: got %s/%s, want %s/%s",
				c.shape, c.grid, s, g, c.wantShape, c.wantGrid)
		}
	}

	_, _, err := ShapeAndGrid("square", "")
	if !errors.Is(err, ErrShape) {
		t.Errorf("unknown shape: got %v", err)
	}
	_, _, err = ShapeAndGrid("", "triangle")
	if !errors.Is(err, ErrGrid) {
		t.Errorf("unknown grid: got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "diamond, hex, poisson, rect") {
		t.Errorf("error message does not list the grids: %q", err)
	}
}

func TestLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	_, err := Generate(solid(2, 2, 255, 255), &Options{OutputWidth: 2, Spacing: 1})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "kept=4") {
		t.Errorf("missing sample count in log output:\n%s", buf)
	}

	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}
