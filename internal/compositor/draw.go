package compositor

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// DefaultLineSpacing is the extra gap in pixels between drawn lines.
const DefaultLineSpacing = 4

// Painter draws a block of lines with its top-left corner at origin.
type Painter interface {
	DrawText(dst draw.Image, face font.Face, lines []string, origin image.Point, c color.Color)
}

// GlyphPainter draws lines with font.Drawer, one baseline per line.
type GlyphPainter struct {
	// LineSpacing is added to the face line height between baselines.
	LineSpacing int
}

// DrawText implements Painter.
func (p GlyphPainter) DrawText(dst draw.Image, face font.Face, lines []string, origin image.Point, c color.Color) {
	metrics := face.Metrics()
	advance := metrics.Height.Ceil() + p.LineSpacing
	baseline := origin.Y + metrics.Ascent.Ceil()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
	}

	for i, line := range lines {
		if line == "" {
			continue
		}

		d.Dot = fixed.P(origin.X, baseline+i*advance)
		d.DrawString(line)
	}
}

// Style holds the colours and offsets of the three text layers.
type Style struct {
	TextColor   color.Color
	BorderColor color.Color
	ShadowColor color.Color

	// BorderOffset is the outline distance in pixels along each axis.
	BorderOffset int

	// ShadowOffset shifts the shadow right and down, in pixels.
	ShadowOffset int
}

// DefaultStyle is white text with a black outline and shadow.
func DefaultStyle() Style {
	return Style{
		TextColor:    color.White,
		BorderColor:  color.Black,
		ShadowColor:  color.Black,
		BorderOffset: 7,
		ShadowOffset: 2,
	}
}

// DrawBorderAndShadow draws lines at pos in three layers, back to front:
// one shadow copy, eight outline copies around pos, then the main text.
// That is always ten block draws.
func DrawBorderAndShadow(dst draw.Image, p Painter, face font.Face, lines []string, pos image.Point, s Style) {
	p.DrawText(dst, face, lines, pos.Add(image.Pt(s.ShadowOffset, s.ShadowOffset)), s.ShadowColor)

	for _, off := range BorderOffsets(s.BorderOffset) {
		p.DrawText(dst, face, lines, pos.Add(off), s.BorderColor)
	}

	p.DrawText(dst, face, lines, pos, s.TextColor)
}

// BorderOffsets returns the eight cells of a 3x3 grid with spacing b,
// excluding the centre.
func BorderOffsets(b int) []image.Point {
	steps := [3]int{-b, 0, b}
	offsets := make([]image.Point, 0, 8)

	for i, dx := range steps {
		for j, dy := range steps {
			if i == 1 && j == 1 {
				continue
			}

			offsets = append(offsets, image.Pt(dx, dy))
		}
	}

	return offsets
}
