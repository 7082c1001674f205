package acl

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"net/url"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // registers the WebP decoder with image.Decode

	"github.com/jsamuelsen/quotewall/internal/adapters/clients"
	"github.com/jsamuelsen/quotewall/internal/domain"
	"github.com/jsamuelsen/quotewall/internal/platform/logging"
)

// Photo fit modes.
const (
	// FitStretch scales the photo to the screen, ignoring aspect ratio.
	FitStretch = "stretch"

	// FitFill scales and centre-crops the photo, keeping aspect ratio.
	FitFill = "fill"
)

const (
	randomPhotoPath = "/photos/random"

	defaultPhotoQuery       = "nature"
	defaultPhotoOrientation = "landscape"
	defaultPhotoMaxBytes    = 32 << 20
)

// PhotoClientConfig contains configuration for the photo client.
type PhotoClientConfig struct {
	// Client is the HTTP client; its BaseURL points at the Unsplash API.
	// The same client downloads the photo from the returned URL.
	Client *clients.Client

	AccessKey   string
	Query       string
	Orientation string
	Fit         string

	// MaxBytes caps the downloaded photo size.
	MaxBytes int64

	Logger *slog.Logger
}

// PhotoClient implements ports.PhotoSource against the Unsplash API.
type PhotoClient struct {
	BaseAdapter

	accessKey   string
	query       string
	orientation string
	fit         string
	maxBytes    int64
	logger      *slog.Logger
}

// NewPhotoClient creates a new photo client adapter.
// Panics if Client is nil.
func NewPhotoClient(cfg PhotoClientConfig) *PhotoClient {
	if cfg.Client == nil {
		panic("PhotoClient: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	c := &PhotoClient{
		BaseAdapter: NewBaseAdapter(cfg.Client, cfg.Client.ServiceName()),
		accessKey:   cfg.AccessKey,
		query:       cfg.Query,
		orientation: cfg.Orientation,
		fit:         cfg.Fit,
		maxBytes:    cfg.MaxBytes,
		logger:      logger,
	}

	if c.query == "" {
		c.query = defaultPhotoQuery
	}

	if c.orientation == "" {
		c.orientation = defaultPhotoOrientation
	}

	if c.fit == "" {
		c.fit = FitStretch
	}

	if c.maxBytes <= 0 {
		c.maxBytes = defaultPhotoMaxBytes
	}

	return c
}

// unsplashPhoto is the subset of the Unsplash photo object we use.
type unsplashPhoto struct {
	ID   string `json:"id"`
	URLs struct {
		Raw     string `json:"raw"`
		Full    string `json:"full"`
		Regular string `json:"regular"`
	} `json:"urls"`
	User struct {
		Name string `json:"name"`
	} `json:"user"`
}

// imageURL prefers the raw original, then smaller renditions.
func (p *unsplashPhoto) imageURL() string {
	for _, u := range []string{p.URLs.Raw, p.URLs.Full, p.URLs.Regular} {
		if u != "" {
			return u
		}
	}

	return ""
}

// RandomPhoto fetches a random photo's metadata, downloads the image and
// scales it to exactly screen. Implements ports.PhotoSource.
func (c *PhotoClient) RandomPhoto(ctx context.Context, screen domain.Screen) (image.Image, error) {
	if err := ValidateRequired(c.accessKey, "access_key"); err != nil {
		return nil, err
	}

	if !screen.Valid() {
		return nil, domain.NewValidationError("screen", fmt.Sprintf("invalid size %dx%d", screen.Width, screen.Height))
	}

	body, err := c.Get(ctx, randomPhotoPath, url.Values{
		"client_id":   {c.accessKey},
		"query":       {c.query},
		"orientation": {c.orientation},
	}, "get random photo")
	if err != nil {
		return nil, err
	}

	photo, err := DecodeResponse[unsplashPhoto](body)
	if err != nil {
		return nil, domain.NewUnavailableError(c.ServiceName(), err.Error())
	}

	link := photo.imageURL()
	if link == "" {
		return nil, domain.NewUnavailableError(c.ServiceName(), "response contained no image URL")
	}

	c.logger.Log(ctx, logging.LevelTrace, "downloading photo",
		slog.String("photo_id", photo.ID),
		slog.String("photographer", photo.User.Name),
	)

	data, err := c.download(ctx, link)
	if err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, domain.NewUnavailableError(c.ServiceName(), fmt.Sprintf("decoding photo %s: %v", photo.ID, err))
	}

	return FitToScreen(img, screen, c.fit), nil
}

func (c *PhotoClient) download(ctx context.Context, link string) ([]byte, error) {
	body, err := c.GetURL(ctx, link, "download photo")
	if err != nil {
		return nil, err
	}
	defer func() { _ = body.Close() }()

	data, err := io.ReadAll(io.LimitReader(body, c.maxBytes+1))
	if err != nil {
		return nil, MapHTTPError(nil, err, c.ServiceName(), "download photo")
	}

	if int64(len(data)) > c.maxBytes {
		return nil, domain.NewValidationError("photo", fmt.Sprintf("larger than %d bytes", c.maxBytes))
	}

	return data, nil
}

// FitToScreen scales img to exactly screen.Width x screen.Height.
func FitToScreen(img image.Image, screen domain.Screen, fit string) image.Image {
	if fit == FitFill {
		return imaging.Fill(img, screen.Width, screen.Height, imaging.Center, imaging.Lanczos)
	}

	return imaging.Resize(img, screen.Width, screen.Height, imaging.Lanczos)
}
