package compositor

import (
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		expected string
	}{
		{
			name:     "short line untouched",
			text:     "hello world",
			width:    40,
			expected: "hello world",
		},
		{
			name:     "greedy fill",
			text:     "one two three four",
			width:    9,
			expected: "one two\nthree\nfour",
		},
		{
			name:     "blank separator line kept",
			text:     "\"Test quote\"\n\n-Tester",
			width:    40,
			expected: "\"Test quote\"\n\n-Tester",
		},
		{
			name:     "long word split",
			text:     "aaa bbbbbbbbbb",
			width:    5,
			expected: "aaa b\nbbbbb\nbbbb",
		},
		{
			name:     "whitespace collapsed",
			text:     "  a   b  ",
			width:    10,
			expected: "a b",
		},
		{
			name:     "non-positive width returns input",
			text:     "unchanged  text",
			width:    0,
			expected: "unchanged  text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Wrap(tt.text, tt.width))
		})
	}
}

func TestWrap_LinesNeverExceedWidth(t *testing.T) {
	text := "The only way to do great work is to love what you do. If you haven't found it yet, keep looking. Supercalifragilisticexpialidocious!"

	for _, width := range []int{5, 12, 40} {
		for _, line := range strings.Split(Wrap(text, width), "\n") {
			assert.LessOrEqual(t, utf8.RuneCountInString(line), width, "line %q", line)
		}
	}
}

func TestWrap_KeepsWordOrder(t *testing.T) {
	text := "Life is what happens when you are busy making other plans"

	assert.Equal(t, strings.Fields(text), strings.Fields(Wrap(text, 12)))
}

func TestMeasure(t *testing.T) {
	w, h := Measure(basicfont.Face7x13, "ab")
	assert.Equal(t, 13, w)
	assert.Equal(t, 13, h)

	w, h = Measure(basicfont.Face7x13, "")
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestCenteredPosition(t *testing.T) {
	t.Run("single line", func(t *testing.T) {
		l := CenteredPosition(basicfont.Face7x13, "ab", 40, 100, 100, 0)

		assert.Equal(t, image.Pt(43, 43), l.Position)
		assert.Equal(t, []string{"ab"}, l.Lines)
	})

	t.Run("vertical offset shifts down", func(t *testing.T) {
		l := CenteredPosition(basicfont.Face7x13, "ab", 40, 100, 100, 10)

		assert.Equal(t, image.Pt(43, 53), l.Position)
	})

	t.Run("block centred as a whole", func(t *testing.T) {
		face := basicfont.Face7x13
		text := "\"Life is what happens when you are busy making other plans.\"\n\n-John Lennon"

		l := CenteredPosition(face, text, 40, 1880, 1040, 0)

		var blockW, blockH int
		for _, line := range strings.Split(Wrap(text, 40), "\n") {
			w, h := Measure(face, line)
			blockW = max(blockW, w)
			blockH += h
		}

		assert.Equal(t, blockW, l.BlockWidth)
		assert.Equal(t, blockH, l.BlockHeight)
		assert.Equal(t, (1880-blockW)/2, l.Position.X)
		assert.Equal(t, (1040-blockH)/2, l.Position.Y)
		assert.Equal(t, "", l.Lines[2])
	})

	t.Run("oversized block overflows evenly", func(t *testing.T) {
		l := CenteredPosition(basicfont.Face7x13, "ab", 40, 10, 10, 0)

		assert.Equal(t, image.Pt(-2, -2), l.Position)
	})
}

type drawCall struct {
	origin image.Point
	color  color.Color
}

type recordingPainter struct {
	calls []drawCall
}

func (p *recordingPainter) DrawText(_ draw.Image, _ font.Face, _ []string, origin image.Point, c color.Color) {
	p.calls = append(p.calls, drawCall{origin: origin, color: c})
}

func TestDrawBorderAndShadow(t *testing.T) {
	p := &recordingPainter{}
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	pos := image.Pt(100, 200)
	style := DefaultStyle()

	DrawBorderAndShadow(dst, p, basicfont.Face7x13, []string{"x"}, pos, style)

	require.Len(t, p.calls, 10)

	assert.Equal(t, image.Pt(102, 202), p.calls[0].origin, "shadow first")
	assert.Equal(t, style.ShadowColor, p.calls[0].color)

	seen := map[image.Point]bool{}
	for _, c := range p.calls[1:9] {
		assert.Equal(t, style.BorderColor, c.color)
		seen[c.origin.Sub(pos)] = true
	}
	assert.Len(t, seen, 8)
	assert.False(t, seen[image.Point{}])
	assert.True(t, seen[image.Pt(-7, -7)])
	assert.True(t, seen[image.Pt(7, 0)])

	assert.Equal(t, pos, p.calls[9].origin, "main text last")
	assert.Equal(t, style.TextColor, p.calls[9].color)
}

func TestBorderOffsets_ZeroStillEightDraws(t *testing.T) {
	offsets := BorderOffsets(0)

	assert.Len(t, offsets, 8)
	for _, off := range offsets {
		assert.Equal(t, image.Point{}, off)
	}
}

func TestCompositor_Render(t *testing.T) {
	bg := image.NewRGBA(image.Rect(0, 0, 1920, 1080))
	draw.Draw(bg, bg.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	f := DefaultFont(60)
	defer f.Close()

	out, layout := New(DefaultConfig()).Render(bg, "\"Test quote\"\n\n-Tester", f.Face)

	assert.Equal(t, bg.Bounds(), out.Bounds())
	assert.Len(t, layout.Lines, 3)
	assert.True(t, hasWhitePixel(out), "main text should be drawn in white")
	assert.False(t, hasWhitePixel(bg), "background must not be modified")
}

func TestCompositor_RenderUsesPainter(t *testing.T) {
	p := &recordingPainter{}
	bg := image.NewRGBA(image.Rect(0, 0, 200, 100))

	cfg := DefaultConfig()
	cfg.VerticalOffset = 5

	_, layout := New(cfg, WithPainter(p)).Render(bg, "ab", basicfont.Face7x13)

	require.Len(t, p.calls, 10)
	assert.Equal(t, image.Pt((160-13)/2, (60-13)/2+5), layout.Position)
	assert.Equal(t, layout.Position, p.calls[9].origin)
}

func hasWhitePixel(img image.Image) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r == 0xffff && g == 0xffff && bl == 0xffff {
				return true
			}
		}
	}

	return false
}

func TestFontSelector(t *testing.T) {
	t.Run("missing directory falls back", func(t *testing.T) {
		s := NewFontSelector(filepath.Join(t.TempDir(), "nope"), 24, 1, nil)

		f := s.Select()
		defer f.Close()

		assert.True(t, f.Fallback)
		assert.Equal(t, DefaultFontName, f.Name)
	})

	t.Run("empty directory falls back", func(t *testing.T) {
		s := NewFontSelector(t.TempDir(), 24, 1, nil)

		f := s.Select()
		defer f.Close()

		assert.True(t, f.Fallback)
	})

	t.Run("unparseable font falls back", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.ttf"), []byte("not a font"), 0o600))

		f := NewFontSelector(dir, 24, 1, nil).Select()
		defer f.Close()

		assert.True(t, f.Fallback)
	})

	t.Run("loads font from directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "Regular.TTF"), goregular.TTF, 0o600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o600))

		s := NewFontSelector(dir, 24, 1, nil)

		files, err := s.Candidates()
		require.NoError(t, err)
		assert.Len(t, files, 1)

		f := s.Select()
		defer f.Close()

		assert.False(t, f.Fallback)
		assert.Equal(t, "Regular.TTF", f.Name)
	})

	t.Run("same seed same sequence", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"a.ttf", "b.ttf", "c.otf", "d.ttf"} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), goregular.TTF, 0o600))
		}

		pick := func() []string {
			s := NewFontSelector(dir, 12, 42, nil)
			var names []string
			for range 6 {
				f := s.Select()
				names = append(names, f.Name)
				_ = f.Close()
			}
			return names
		}

		assert.Equal(t, pick(), pick())
	})
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in       string
		expected color.NRGBA
		wantErr  bool
	}{
		{in: "#FFFFFF", expected: color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{in: "#000", expected: color.NRGBA{A: 255}},
		{in: "#ff000080", expected: color.NRGBA{R: 255, A: 128}},
		{in: "12ab34", expected: color.NRGBA{R: 0x12, G: 0xab, B: 0x34, A: 255}},
		{in: "#12345", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseHexColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}
