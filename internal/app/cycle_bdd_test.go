package app_test

import (
	"context"
	"encoding/json"
	"fmt"
	"image/color"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/disintegration/imaging"

	"github.com/jsamuelsen/quotewall/internal/adapters/clients"
	"github.com/jsamuelsen/quotewall/internal/adapters/clients/acl"
	"github.com/jsamuelsen/quotewall/internal/adapters/desktop"
	"github.com/jsamuelsen/quotewall/internal/adapters/filestore"
	"github.com/jsamuelsen/quotewall/internal/app"
	"github.com/jsamuelsen/quotewall/internal/compositor"
	"github.com/jsamuelsen/quotewall/internal/domain"
	"github.com/jsamuelsen/quotewall/internal/platform/config"
)

// cycleWorld holds the upstream stubs and the result of one scenario.
type cycleWorld struct {
	dir    string
	screen domain.Screen

	quoteStatus int
	quoteBody   string
	photoStatus int
	photoW      int
	photoH      int

	platform *desktop.Headless
	report   *domain.CycleReport
	err      error
}

func (w *cycleWorld) reset(dir string) {
	*w = cycleWorld{dir: dir, quoteStatus: http.StatusOK, photoStatus: http.StatusOK}
}

func (w *cycleWorld) theScreenIs(width, height int) error {
	w.screen = domain.Screen{Width: width, Height: height}
	return nil
}

func (w *cycleWorld) theQuoteServiceReturns(text, author string) error {
	body, err := json.Marshal([]map[string]string{{"q": text, "a": author, "h": ""}})
	if err != nil {
		return err
	}

	w.quoteBody = string(body)

	return nil
}

func (w *cycleWorld) theQuoteServiceIsFailing() error {
	w.quoteStatus = http.StatusInternalServerError
	return nil
}

func (w *cycleWorld) thePhotoServiceReturnsAPhoto(width, height int) error {
	w.photoW, w.photoH = width, height
	return nil
}

func (w *cycleWorld) thePhotoServiceRejectsTheAccessKey() error {
	w.photoStatus = http.StatusUnauthorized
	return nil
}

func (w *cycleWorld) upstream() *httptest.Server {
	mux := http.NewServeMux()

	var server *httptest.Server

	mux.HandleFunc("GET /api/random", func(rw http.ResponseWriter, _ *http.Request) {
		rw.WriteHeader(w.quoteStatus)
		_, _ = rw.Write([]byte(w.quoteBody))
	})

	mux.HandleFunc("GET /photos/random", func(rw http.ResponseWriter, _ *http.Request) {
		if w.photoStatus != http.StatusOK {
			rw.WriteHeader(w.photoStatus)
			_, _ = rw.Write([]byte(`{"errors":["OAuth error: The access token is invalid"]}`))

			return
		}

		_, _ = fmt.Fprintf(rw, `{"id":"p1","urls":{"raw":"%s/raw/p1.png"}}`, server.URL)
	})

	mux.HandleFunc("GET /raw/p1.png", func(rw http.ResponseWriter, _ *http.Request) {
		img := imaging.New(w.photoW, w.photoH, color.NRGBA{R: 40, G: 90, B: 160, A: 255})
		_ = imaging.Encode(rw, img, imaging.PNG)
	})

	server = httptest.NewServer(mux)

	return server
}

func (w *cycleWorld) aWallpaperCycleRuns(ctx context.Context) error {
	server := w.upstream()
	defer server.Close()

	newClient := func(name string) (*clients.Client, error) {
		return clients.New(&clients.Config{
			ServiceName: name,
			BaseURL:     server.URL,
			Timeout:     5 * time.Second,
			Circuit:     config.CircuitBreakerConfig{MaxFailures: 3, Timeout: time.Minute, HalfOpenLimit: 1},
		})
	}

	quoteHTTP, err := newClient("zenquotes")
	if err != nil {
		return err
	}

	photoHTTP, err := newClient("unsplash")
	if err != nil {
		return err
	}

	store, err := filestore.New(filepath.Join(w.dir, "wallpaper.png"))
	if err != nil {
		return err
	}

	w.platform = desktop.NewHeadless()

	svc := app.NewWallpaperService(app.WallpaperServiceConfig{
		Quotes:   acl.NewQuoteClient(acl.QuoteClientConfig{Client: quoteHTTP}),
		Photos:   acl.NewPhotoClient(acl.PhotoClientConfig{Client: photoHTTP, AccessKey: "bdd-key"}),
		Store:    store,
		Platform: w.platform,
		Fonts:    compositor.NewFontSelector(filepath.Join(w.dir, "fonts"), 24, 7, nil),
		Renderer: compositor.New(compositor.DefaultConfig()),
		Screen:   w.screen,
	})

	w.report, w.err = svc.RunCycle(ctx)

	return nil
}

func (w *cycleWorld) theWallpaperIsApplied() error {
	if w.err != nil {
		return fmt.Errorf("cycle failed: %w", w.err)
	}

	applied := w.platform.Applied()
	if len(applied) != 1 || applied[0] != w.report.OutputPath {
		return fmt.Errorf("expected %s to be applied once, got %v", w.report.OutputPath, applied)
	}

	return nil
}

func (w *cycleWorld) theDrawnQuoteIs(text, author string) error {
	if w.report.Quote != text || w.report.Author != author {
		return fmt.Errorf("drew %q by %q, want %q by %q", w.report.Quote, w.report.Author, text, author)
	}

	return nil
}

func (w *cycleWorld) theWallpaperFileIs(width, height int) error {
	img, err := imaging.Open(w.report.OutputPath)
	if err != nil {
		return err
	}

	if b := img.Bounds(); b.Dx() != width || b.Dy() != height {
		return fmt.Errorf("wallpaper is %dx%d, want %dx%d", b.Dx(), b.Dy(), width, height)
	}

	return nil
}

// Font fallbacks are expected in every scenario: the font directory is empty.
func (w *cycleWorld) sourceFallbacks() []string {
	return slices.DeleteFunc(slices.Clone(w.report.Fallbacks), func(s string) bool {
		return s == domain.SourceFont
	})
}

func (w *cycleWorld) theFallbacksUsedAre(list string) error {
	want := strings.Split(list, ",")
	if got := w.sourceFallbacks(); !slices.Equal(got, want) {
		return fmt.Errorf("fallbacks %v, want %v", got, want)
	}

	return nil
}

func (w *cycleWorld) noFallbacksAreUsed() error {
	if got := w.sourceFallbacks(); len(got) > 0 {
		return fmt.Errorf("unexpected fallbacks %v", got)
	}

	return nil
}

func initializeCycleScenario(baseDir string) func(*godog.ScenarioContext) {
	return func(sc *godog.ScenarioContext) {
		w := &cycleWorld{}

		sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
			dir, err := os.MkdirTemp(baseDir, "scenario-")
			if err != nil {
				return ctx, err
			}

			w.reset(dir)

			return ctx, nil
		})

		sc.Step(`^the screen is (\d+)x(\d+)$`, w.theScreenIs)
		sc.Step(`^the quote service returns "([^"]*)" by "([^"]*)"$`, w.theQuoteServiceReturns)
		sc.Step(`^the quote service is failing$`, w.theQuoteServiceIsFailing)
		sc.Step(`^the photo service returns a (\d+)x(\d+) photo$`, w.thePhotoServiceReturnsAPhoto)
		sc.Step(`^the photo service rejects the access key$`, w.thePhotoServiceRejectsTheAccessKey)
		sc.Step(`^a wallpaper cycle runs$`, w.aWallpaperCycleRuns)
		sc.Step(`^the wallpaper is applied$`, w.theWallpaperIsApplied)
		sc.Step(`^the drawn quote is "([^"]*)" by "([^"]*)"$`, w.theDrawnQuoteIs)
		sc.Step(`^the wallpaper file is (\d+)x(\d+)$`, w.theWallpaperFileIs)
		sc.Step(`^the fallbacks used are "([^"]*)"$`, w.theFallbacksUsedAre)
		sc.Step(`^no fallbacks are used$`, w.noFallbacksAreUsed)
	}
}

func TestWallpaperCycleFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: initializeCycleScenario(t.TempDir()),
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
			Strict:   true,
			Tags:     os.Getenv("GODOG_TAGS"),
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
