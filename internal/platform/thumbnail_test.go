package platform

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func TestThumbnailLoader_Load(t *testing.T) {
	tests := []struct {
		name           string
		width, height  int
		expectedWidth  int
		expectedHeight int
	}{
		{
			name:  "wide image is bounded by width",
			width: 1280, height: 720,
			expectedWidth: 300, expectedHeight: 168,
		},
		{
			name:  "tall image is bounded by height",
			width: 400, height: 800,
			expectedWidth: 100, expectedHeight: 200,
		},
		{
			name:  "small image is kept as is",
			width: 120, height: 90,
			expectedWidth: 120, expectedHeight: 90,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := encodePNG(t, tt.width, tt.height)
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				// Deliberately wrong content type: format is sniffed from bytes
				w.Header().Set("Content-Type", "application/octet-stream")
				w.Write(body)
			}))
			defer srv.Close()

			loader := NewThumbnailLoader(5 * time.Second)
			img, err := loader.Load(context.Background(), srv.URL+"/thumb.jpg")
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			bounds := img.Bounds()
			if bounds.Dx() != tt.expectedWidth || bounds.Dy() != tt.expectedHeight {
				t.Errorf("expected %dx%d, got %dx%d", tt.expectedWidth, tt.expectedHeight, bounds.Dx(), bounds.Dy())
			}
			if bounds.Dx() > ThumbnailMaxWidth || bounds.Dy() > ThumbnailMaxHeight {
				t.Errorf("thumbnail %v exceeds bounding box", bounds)
			}
		})
	}
}

func TestThumbnailLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
		},
		{
			name: "not an image",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<html>definitely not an image</html>"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			loader := NewThumbnailLoader(time.Second)
			img, err := loader.Load(context.Background(), srv.URL)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if img != nil {
				t.Error("expected nil image on error")
			}
		})
	}
}

func TestNewThumbnailLoader_DefaultTimeout(t *testing.T) {
	loader := NewThumbnailLoader(0)
	if loader.client.Timeout != DefaultThumbnailTimeout {
		t.Errorf("expected timeout %v, got %v", DefaultThumbnailTimeout, loader.client.Timeout)
	}
}
