package platform

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"time"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/webp"
)

// Thumbnail constraints
const (
	ThumbnailMaxWidth       = 300
	ThumbnailMaxHeight      = 200
	ThumbnailMaxBytes       = 10 << 20
	DefaultThumbnailTimeout = 15 * time.Second
)

// ThumbnailLoader fetches a thumbnail over HTTP, decodes it and shrinks it to
// fit the preview box while keeping the aspect ratio.
type ThumbnailLoader struct {
	client    *http.Client
	maxWidth  uint
	maxHeight uint
}

// NewThumbnailLoader creates a loader whose requests time out after timeout
func NewThumbnailLoader(timeout time.Duration) *ThumbnailLoader {
	if timeout <= 0 {
		timeout = DefaultThumbnailTimeout
	}
	return &ThumbnailLoader{
		client:    &http.Client{Timeout: timeout},
		maxWidth:  ThumbnailMaxWidth,
		maxHeight: ThumbnailMaxHeight,
	}
}

// Load fetches and decodes the image at url. The image format is inferred
// from the content, not from the URL or Content-Type.
func (l *ThumbnailLoader) Load(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build thumbnail request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch thumbnail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch thumbnail: unexpected status %s", resp.Status)
	}

	img, _, err := image.Decode(io.LimitReader(resp.Body, ThumbnailMaxBytes))
	if err != nil {
		return nil, fmt.Errorf("decode thumbnail: %w", err)
	}

	// Thumbnail returns the original when it already fits
	return resize.Thumbnail(l.maxWidth, l.maxHeight, img, resize.Lanczos3), nil
}
