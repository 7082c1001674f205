package domain

import "time"

// Screen describes the target raster dimensions in pixels.
type Screen struct {
	Width  int
	Height int
}

// Valid reports whether both dimensions are positive.
func (s Screen) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// Fallback source names recorded in a CycleReport.
const (
	SourceQuote = "quote"
	SourcePhoto = "photo"
	SourceFont  = "font"
)

// CycleReport summarises what a single wallpaper cycle produced.
type CycleReport struct {
	// CycleID uniquely identifies the cycle in logs and traces.
	CycleID string `json:"cycleId"`

	// Quote and Author are the texts that were drawn.
	Quote  string `json:"quote"`
	Author string `json:"author"`

	// Font is the name of the font file used, or the default font name.
	Font string `json:"font"`

	// Fallbacks lists the sources that degraded to their fallback value.
	Fallbacks []string `json:"fallbacks,omitempty"`

	// OutputPath is where the rendered wallpaper was written.
	OutputPath string `json:"outputPath"`

	// Applied is true when the platform accepted the wallpaper.
	Applied bool `json:"applied"`

	// Error holds the failure message of an unsuccessful cycle.
	Error string `json:"error,omitempty"`

	StartedAt time.Time     `json:"startedAt"`
	Duration  time.Duration `json:"duration"`
}

// UsedFallback reports whether the named source fell back.
func (r *CycleReport) UsedFallback(source string) bool {
	for _, s := range r.Fallbacks {
		if s == source {
			return true
		}
	}

	return false
}

// StartupEntry describes the program a startup registration launches.
type StartupEntry struct {
	// Name is the shortcut or autostart entry name, without extension.
	Name string

	// Executable is the absolute path of the program to launch.
	Executable string

	// Args are passed to Executable on launch.
	Args []string

	// WorkingDir is the directory the program starts in.
	WorkingDir string
}
