// Package compositor draws a wrapped, centred text block over a background
// raster with a shadow and an outline so it stays legible on any photo.
package compositor

import (
	"image"
	"strings"

	"golang.org/x/image/font"
)

// Layout is the measured placement of a wrapped text block.
type Layout struct {
	// Text is the wrapped text, lines joined by "\n".
	Text string

	// Lines is Text split into lines.
	Lines []string

	// Position is the top-left corner of the block.
	Position image.Point

	// BlockWidth is the widest line; BlockHeight the sum of line heights.
	BlockWidth  int
	BlockHeight int
}

// Measure returns the ink bounding box of a single line drawn with face.
// Empty lines measure 0x0.
func Measure(face font.Face, line string) (width, height int) {
	if line == "" {
		return 0, 0
	}

	bounds, _ := font.BoundString(face, line)

	return (bounds.Max.X - bounds.Min.X).Ceil(), (bounds.Max.Y - bounds.Min.Y).Ceil()
}

// CenteredPosition wraps text to wrapWidth characters and centres the whole
// block inside a maxWidth x maxHeight rectangle, shifted down by vOffset.
//
// The block is placed as one unit: X = (maxWidth - blockWidth) / 2 and
// Y = (maxHeight - blockHeight) / 2 + vOffset. Lines are not centred
// individually.
func CenteredPosition(face font.Face, text string, wrapWidth, maxWidth, maxHeight, vOffset int) Layout {
	wrapped := Wrap(text, wrapWidth)
	lines := strings.Split(wrapped, "\n")

	var blockW, blockH int
	for _, line := range lines {
		w, h := Measure(face, line)
		blockW = max(blockW, w)
		blockH += h
	}

	return Layout{
		Text:        wrapped,
		Lines:       lines,
		Position:    image.Pt(floorHalf(maxWidth-blockW), floorHalf(maxHeight-blockH)+vOffset),
		BlockWidth:  blockW,
		BlockHeight: blockH,
	}
}

// floorHalf divides by two rounding toward negative infinity, so an
// oversized block overflows both edges evenly.
func floorHalf(n int) int {
	if n < 0 {
		return -((-n + 1) / 2)
	}

	return n / 2
}
