package compositor

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DefaultFontName names the embedded fallback face.
const DefaultFontName = "Go Regular"

// fontDPI keeps font size equal to pixel size.
const fontDPI = 72

// Font is a loaded face plus where it came from.
type Font struct {
	Name string
	Face font.Face

	// Fallback is true when the embedded face was used instead of a file.
	Fallback bool
}

// Close releases the face.
func (f *Font) Close() error {
	if f == nil || f.Face == nil {
		return nil
	}

	return f.Face.Close()
}

// FontSelector picks a random font file from a directory for each cycle.
type FontSelector struct {
	dir    string
	size   float64
	rng    *rand.Rand
	logger *slog.Logger
}

// NewFontSelector creates a selector over dir at the given pixel size.
// A zero seed seeds from the clock.
func NewFontSelector(dir string, size float64, seed uint64, logger *slog.Logger) *FontSelector {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &FontSelector{
		dir:    dir,
		size:   size,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		logger: logger,
	}
}

// Candidates lists the .ttf and .otf files in the font directory, sorted.
func (s *FontSelector) Candidates() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading font directory %s: %w", s.dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".ttf", ".otf":
			files = append(files, filepath.Join(s.dir, e.Name()))
		}
	}

	slices.Sort(files)

	return files, nil
}

// Select loads a random candidate. It never fails: an empty or unreadable
// directory, or a file that does not parse, yields the embedded face.
func (s *FontSelector) Select() *Font {
	files, err := s.Candidates()
	if err != nil {
		s.logger.Warn("font directory unavailable, using default font", slog.String("error", err.Error()))
		return DefaultFont(s.size)
	}

	if len(files) == 0 {
		s.logger.Warn("no font files found, using default font", slog.String("dir", s.dir))
		return DefaultFont(s.size)
	}

	path := files[s.rng.IntN(len(files))]

	f, err := LoadFont(path, s.size)
	if err != nil {
		s.logger.Warn("font failed to load, using default font",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)

		return DefaultFont(s.size)
	}

	return f
}

// LoadFont parses a TrueType or OpenType file into a face of size pixels.
func LoadFont(path string, size float64) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font: %w", err)
	}

	face, err := newFace(data, size)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", filepath.Base(path), err)
	}

	return &Font{Name: filepath.Base(path), Face: face}, nil
}

// DefaultFont returns the embedded Go Regular face. If even that fails to
// parse, the fixed 7x13 bitmap face is returned.
func DefaultFont(size float64) *Font {
	face, err := newFace(goregular.TTF, size)
	if err != nil {
		return &Font{Name: "basic 7x13", Face: basicfont.Face7x13, Fallback: true}
	}

	return &Font{Name: DefaultFontName, Face: face, Fallback: true}
}

func newFace(data []byte, size float64) (font.Face, error) {
	if size <= 0 {
		return nil, errors.New("font size must be positive")
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}

	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
}
