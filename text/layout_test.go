package text

import (
	"context"
	"math"
	"strings"
	"testing"
)

func layoutPlain(t *testing.T, r *Resolver, s string, size float64, opts Options) *Block {
	t.Helper()
	b, err := Layout(context.Background(), r, []Span{{Text: s, Size: size}}, opts)
	if err != nil {
		t.Fatalf("Layout(%q): %v", s, err)
	}
	return b
}

func lineText(l Line) string {
	var sb strings.Builder
	for _, r := range l.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

func TestLayoutSingleLine(t *testing.T) {
	r := newTestResolver(t)
	b := layoutPlain(t, r, "Hello", 20, Options{})
	if len(b.Lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(b.Lines))
	}
	face, _ := r.Face(context.Background(), "", 0, false, 20)
	if want := face.Measure("Hello"); math.Abs(b.Width-want) > 0.5 {
		t.Errorf("Width = %v, want %v", b.Width, want)
	}
	m := face.Metrics()
	if want := DefaultLineHeight * m.Height(); math.Abs(b.Height-want) > 1e-9 {
		t.Errorf("Height = %v, want %v", b.Height, want)
	}
	l := b.Lines[0]
	if l.Baseline <= 0 || l.Baseline >= b.Height {
		t.Errorf("Baseline = %v outside block of height %v", l.Baseline, b.Height)
	}
	if b.Scale != 1 {
		t.Errorf("Scale = %v, want 1", b.Scale)
	}
}

func TestLayoutEmpty(t *testing.T) {
	r := newTestResolver(t)
	b, err := Layout(context.Background(), r, nil, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Lines) != 0 || b.Width != 0 || b.Height != 0 {
		t.Errorf("empty layout = %+v", b)
	}
}

func TestLayoutForcedBreaks(t *testing.T) {
	r := newTestResolver(t)
	b := layoutPlain(t, r, "one\n\nthree", 16, Options{})
	if len(b.Lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(b.Lines))
	}
	if got := lineText(b.Lines[1]); got != "" {
		t.Errorf("middle line = %q, want empty", got)
	}
	if b.Lines[1].Height != b.Lines[0].Height {
		t.Error("empty line has a different height")
	}
	if got := lineText(b.Lines[2]); got != "three" {
		t.Errorf("last line = %q", got)
	}
	// Forced breaks apply even with a generous width.
	wide := layoutPlain(t, r, "a\nb", 16, Options{MaxWidth: 10000})
	if len(wide.Lines) != 2 {
		t.Errorf("lines = %d, want 2", len(wide.Lines))
	}
}

func TestLayoutWrap(t *testing.T) {
	r := newTestResolver(t)
	face, _ := r.Face(context.Background(), "", 0, false, 20)
	maxWidth := face.Measure("aaaa bbbb") + 1

	b := layoutPlain(t, r, "aaaa bbbb aaaa bbbb a", 20, Options{MaxWidth: maxWidth})
	want := []string{"aaaa bbbb", "aaaa bbbb", "a"}
	if len(b.Lines) != len(want) {
		t.Fatalf("lines = %d, want %d", len(b.Lines), len(want))
	}
	for i, l := range b.Lines {
		if got := lineText(l); got != want[i] {
			t.Errorf("line %d = %q, want %q", i, got, want[i])
		}
		if l.Width > maxWidth {
			t.Errorf("line %d width %v exceeds %v", i, l.Width, maxWidth)
		}
	}
}

func TestLayoutLongWordNotSplit(t *testing.T) {
	r := newTestResolver(t)
	b := layoutPlain(t, r, "hi supercalifragilistic yo", 20, Options{MaxWidth: 40})
	var found bool
	for _, l := range b.Lines {
		if lineText(l) == "supercalifragilistic" {
			found = true
			if l.Width <= 40 {
				t.Errorf("long word width %v fits unexpectedly", l.Width)
			}
		}
	}
	if !found {
		t.Errorf("long word was split or merged: %d lines", len(b.Lines))
	}
}

func TestLayoutLetterSpacing(t *testing.T) {
	r := newTestResolver(t)
	plain := layoutPlain(t, r, "abcd", 20, Options{})
	spaced, err := Layout(context.Background(), r, []Span{{Text: "abcd", Size: 20, LetterSpacing: 5}}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	// Three gaps between four glyphs, none after the last.
	if d := spaced.Width - plain.Width; math.Abs(d-15) > 1e-6 {
		t.Errorf("spacing added %v, want 15", d)
	}
	g := spaced.Lines[0].Runs[0].Glyphs
	if len(g) != 4 || g[0].X != 0 {
		t.Fatalf("glyphs = %+v", g)
	}
}

func TestLayoutLineHeight(t *testing.T) {
	r := newTestResolver(t)
	one := layoutPlain(t, r, "a\nb", 20, Options{LineHeight: 1})
	two := layoutPlain(t, r, "a\nb", 20, Options{LineHeight: 2})
	if math.Abs(two.Height-2*one.Height) > 1e-9 {
		t.Errorf("heights = %v, %v", one.Height, two.Height)
	}
	d1 := one.Lines[1].Baseline - one.Lines[0].Baseline
	d2 := two.Lines[1].Baseline - two.Lines[0].Baseline
	if math.Abs(d2-2*d1) > 1e-9 {
		t.Errorf("baseline distances = %v, %v", d1, d2)
	}
}

func TestLayoutAlignment(t *testing.T) {
	r := newTestResolver(t)
	for _, tt := range []struct {
		align Alignment
		frac  float64
	}{
		{AlignLeft, 0},
		{AlignCenter, 0.5},
		{AlignRight, 1},
	} {
		t.Run(tt.align.String(), func(t *testing.T) {
			b := layoutPlain(t, r, "wide line\nx", 20, Options{Align: tt.align})
			short := b.Lines[1]
			want := (b.Width - short.Width) * tt.frac
			if math.Abs(short.X-want) > 1e-9 {
				t.Errorf("X = %v, want %v", short.X, want)
			}
			if b.Lines[0].X != 0 {
				t.Errorf("widest line X = %v", b.Lines[0].X)
			}
		})
	}
}

func TestLayoutRichText(t *testing.T) {
	r := newTestResolver(t)
	spans := []Span{
		{Text: "Big", Size: 40, Weight: WeightBold},
		{Text: "small", Size: 12},
		{Text: " tail", Size: 12, Italic: true},
	}
	b, err := Layout(context.Background(), r, spans, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Lines) != 1 {
		t.Fatalf("lines = %d", len(b.Lines))
	}
	runs := b.Lines[0].Runs
	if len(runs) != 3 {
		t.Fatalf("runs = %d, want 3", len(runs))
	}
	for i, run := range runs {
		if run.Span != i {
			t.Errorf("run %d span = %d", i, run.Span)
		}
	}
	if runs[1].X != runs[0].X+runs[0].Width {
		t.Errorf("run 1 starts at %v, run 0 ends at %v", runs[1].X, runs[0].X+runs[0].Width)
	}
	big := runs[0].Face.Metrics()
	if b.Lines[0].Ascent != big.Ascent {
		t.Errorf("line ascent %v, want largest run's %v", b.Lines[0].Ascent, big.Ascent)
	}
}

func TestLayoutWordAcrossSpans(t *testing.T) {
	r := newTestResolver(t)
	spans := []Span{
		{Text: "Hel", Size: 20, Weight: WeightBold},
		{Text: "lo world", Size: 20},
	}
	face, _ := r.Face(context.Background(), "", 0, false, 20)
	b, err := Layout(context.Background(), r, spans, Options{MaxWidth: face.Measure("Hello wor")})
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(b.Lines))
	}
	if got := lineText(b.Lines[0]); got != "Hello" {
		t.Errorf("first line = %q, want the joined word", got)
	}
}

func TestLayoutAutoScale(t *testing.T) {
	r := newTestResolver(t)
	const size, maxWidth = 60.0, 200.0
	opts := Options{MaxWidth: maxWidth, AutoScale: true, BaseSize: size}
	b := layoutPlain(t, r, "Extraordinarily", size, opts)

	if b.Scale >= 1 {
		t.Fatalf("Scale = %v, want < 1", b.Scale)
	}
	if b.Width > maxWidth+0.01 {
		t.Errorf("Width = %v exceeds %v", b.Width, maxWidth)
	}
	got := b.Lines[0].Runs[0].Face.Size()
	if got >= size {
		t.Errorf("size = %v, want < %v", got, size)
	}

	// One pixel larger must not fit, or the search was not maximal.
	bigger, err := Layout(context.Background(), r,
		[]Span{{Text: "Extraordinarily", Size: got + 1}}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if bigger.Width <= maxWidth {
		t.Errorf("size %v also fits (width %v)", got+1, bigger.Width)
	}
}

func TestLayoutAutoScaleHeight(t *testing.T) {
	r := newTestResolver(t)
	b := layoutPlain(t, r, "a\nb\nc\nd", 40, Options{MaxHeight: 60, AutoScale: true})
	if b.Height > 60 {
		t.Errorf("Height = %v exceeds 60", b.Height)
	}
	if b.Scale >= 1 {
		t.Errorf("Scale = %v", b.Scale)
	}
}

func TestLayoutAutoScaleScalesSpacing(t *testing.T) {
	r := newTestResolver(t)
	spans := []Span{{Text: "spaced out words", Size: 40, LetterSpacing: 10}}
	b, err := Layout(context.Background(), r, spans, Options{MaxWidth: 150, AutoScale: true})
	if err != nil {
		t.Fatal(err)
	}
	run := b.Lines[0].Runs[0]
	if math.Abs(run.LetterSpacing-10*b.Scale) > 1e-9 {
		t.Errorf("LetterSpacing = %v, want %v", run.LetterSpacing, 10*b.Scale)
	}
}

func TestLayoutAutoScaleFits(t *testing.T) {
	r := newTestResolver(t)
	b := layoutPlain(t, r, "ok", 20, Options{MaxWidth: 500, AutoScale: true})
	if b.Scale != 1 {
		t.Errorf("Scale = %v, want 1 for fitting text", b.Scale)
	}
}

func TestLayoutFontError(t *testing.T) {
	r := newTestResolver(t)
	_, err := Layout(context.Background(), r, []Span{{Text: "x", Family: "Missing", Size: 10}}, Options{})
	if err == nil {
		t.Fatal("Layout with unknown family succeeded")
	}
}

func TestLayoutNormalizesNFC(t *testing.T) {
	r := newTestResolver(t)
	b := layoutPlain(t, r, "e\u0301", 20, Options{})
	if got := lineText(b.Lines[0]); got != "\u00e9" {
		t.Errorf("text = %q, want precomposed U+00E9", got)
	}
}
