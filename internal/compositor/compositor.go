package compositor

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
)

// Config controls text placement and styling.
type Config struct {
	// Margin is subtracted from each background dimension to form the
	// centring rectangle, anchored at the top-left corner.
	Margin int

	// VerticalOffset shifts the block down (positive) or up (negative).
	VerticalOffset int

	// WrapWidth is the maximum line length in characters.
	WrapWidth int

	// LineSpacing is the extra gap between drawn lines in pixels.
	LineSpacing int

	Style Style
}

// DefaultConfig returns the stock layout: 40px margin, 40 character lines.
func DefaultConfig() Config {
	return Config{
		Margin:      40,
		WrapWidth:   40,
		LineSpacing: DefaultLineSpacing,
		Style:       DefaultStyle(),
	}
}

// Compositor renders quote text onto background images.
type Compositor struct {
	cfg     Config
	painter Painter
}

// Option configures a Compositor.
type Option func(*Compositor)

// WithPainter replaces the glyph painter.
func WithPainter(p Painter) Option {
	return func(c *Compositor) {
		c.painter = p
	}
}

// New creates a Compositor.
func New(cfg Config, opts ...Option) *Compositor {
	c := &Compositor{
		cfg:     cfg,
		painter: GlyphPainter{LineSpacing: cfg.LineSpacing},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Render copies bg into a new RGBA image and draws text over it. The
// background itself is never modified. The returned Layout describes where
// the block was placed.
func (c *Compositor) Render(bg image.Image, text string, face font.Face) (*image.RGBA, Layout) {
	b := bg.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), bg, b.Min, draw.Src)

	layout := CenteredPosition(face, text, c.cfg.WrapWidth,
		b.Dx()-c.cfg.Margin, b.Dy()-c.cfg.Margin, c.cfg.VerticalOffset)

	DrawBorderAndShadow(dst, c.painter, face, layout.Lines, layout.Position, c.cfg.Style)

	return dst, layout
}
