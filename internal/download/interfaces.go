package download

import (
	"context"
	"image"

	"github.com/ytget/yt-downloader/internal/model"
)

// ProgressFunc receives progress events from a running download
type ProgressFunc func(model.ProgressEvent)

// Extractor is the boundary to the extraction/download library.
type Extractor interface {
	// ExtractInfo runs a metadata-only request for url
	ExtractInfo(ctx context.Context, url string) (*model.VideoInfo, error)

	// Download blocks until the transfer and any post-processing finish
	Download(ctx context.Context, url string, opts Options, progress ProgressFunc) error
}

// ThumbnailSource fetches and decodes a preview image
type ThumbnailSource interface {
	Load(ctx context.Context, url string) (image.Image, error)
}

// ProgressSink receives progress bar and status line updates
type ProgressSink interface {
	SetProgress(percent float64)
	SetStatus(status model.Status)
}

// Workflow defines the interface for the fetch and download workers used by the UI.
type Workflow interface {
	// Fetch loads metadata, builds the display list for audioOnly and loads the thumbnail
	Fetch(ctx context.Context, url string, audioOnly bool) (*FetchResult, error)

	// PrepareDownload validates the request and builds the download configuration.
	// It never starts background work.
	PrepareDownload(req Request) (Options, error)

	// Download runs a prepared download, reporting to sink
	Download(ctx context.Context, url string, opts Options, sink ProgressSink) error
}
