package download

import (
	"context"
	"errors"
	"image"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/ytget/yt-downloader/internal/model"
	"github.com/ytget/yt-downloader/internal/platform"
)

// DefaultFetchTimeout bounds a metadata fetch including the thumbnail
const DefaultFetchTimeout = 2 * time.Minute

// Log operation names
const (
	opFetch    = "fetch"
	opDownload = "download"
)

// FetchResult is everything the form needs after a successful fetch.
type FetchResult struct {
	URL       string
	Info      *model.VideoInfo
	Formats   model.FormatLists
	Entries   []string // display list for AudioOnly, sentinel first
	AudioOnly bool
	Thumbnail image.Image // nil when missing or failed to load
}

// Request is a download request as entered in the form
type Request struct {
	Info      *model.VideoInfo
	OutputDir string
	Selected  string // selected display entry
	AudioOnly bool
}

// Service handles fetch and download operations
type Service struct {
	extractor    Extractor
	thumbs       ThumbnailSource
	log          *logrus.Logger
	fetchTimeout time.Duration
}

// NewService creates a new service. thumbs may be nil to skip thumbnails.
func NewService(extractor Extractor, thumbs ThumbnailSource, log *logrus.Logger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{
		extractor:    extractor,
		thumbs:       thumbs,
		log:          log,
		fetchTimeout: DefaultFetchTimeout,
	}
}

// SetFetchTimeout sets the bound of a single fetch. Non-positive values are ignored.
func (s *Service) SetFetchTimeout(timeout time.Duration) {
	if timeout > 0 {
		s.fetchTimeout = timeout
	}
}

// Fetch loads metadata for url and derives both display lists. A thumbnail
// failure is logged and never returned.
func (s *Service) Fetch(ctx context.Context, url string, audioOnly bool) (*FetchResult, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrEmptyURL
	}

	entry := s.entry(opFetch, url).WithField("audio_only", audioOnly)
	entry.Info("Fetching video information")

	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	info, err := s.extractor.ExtractInfo(ctx, url)
	if err == nil && info == nil {
		err = errors.New("no video information returned")
	}
	if err != nil {
		entry.WithError(err).Error("Failed to fetch video information")
		return nil, &ExtractionError{URL: url, Err: err}
	}

	lists := model.BuildFormatLists(info.Formats)
	result := &FetchResult{
		URL:       url,
		Info:      info,
		Formats:   lists,
		Entries:   lists.Entries(audioOnly),
		AudioOnly: audioOnly,
	}

	if info.Thumbnail != "" && s.thumbs != nil {
		img, err := s.thumbs.Load(ctx, info.Thumbnail)
		if err != nil {
			entry.WithError(err).WithField("thumbnail", info.Thumbnail).Warn("Thumbnail unavailable")
		} else {
			result.Thumbnail = img
		}
	}

	entry.WithFields(logrus.Fields{
		"title":         info.Title,
		"video_formats": len(lists.Video),
		"audio_formats": len(lists.Audio),
	}).Info("Video information loaded")
	return result, nil
}

// PrepareDownload validates req synchronously and builds the download configuration
func (s *Service) PrepareDownload(req Request) (Options, error) {
	if req.Info == nil {
		return Options{}, ErrNoVideoInfo
	}
	if err := platform.ValidateOutputDir(req.OutputDir); err != nil {
		return Options{}, &InvalidOutputDirectoryError{Path: req.OutputDir, Err: err}
	}

	formatID, _ := model.FormatIDFromEntry(req.Selected)
	return NewOptions(req.OutputDir, formatID, req.AudioOnly), nil
}

// Download runs a prepared download and reports every state change to sink.
// The terminal status is set here; 100% is only reached on success.
func (s *Service) Download(ctx context.Context, url string, opts Options, sink ProgressSink) error {
	entry := s.entry(opDownload, url).WithFields(logrus.Fields{
		"format":     opts.FormatSelector(),
		"audio_only": opts.AudioOnly,
		"output_dir": opts.OutputDir,
	})
	entry.Info("Starting download")

	sink.SetStatus(model.Status{Kind: model.StatusDownloading})

	err := s.extractor.Download(ctx, url, opts, NewProgressRelay(sink))
	if err == nil {
		sink.SetStatus(model.Status{Kind: model.StatusCompleted})
		sink.SetProgress(100)
		entry.Info("Download completed")
		return nil
	}

	// yt-dlp is killed on cancellation; its exit error says nothing useful
	if ctx.Err() != nil {
		entry.WithError(err).Info("Download cancelled")
		return ctx.Err()
	}

	dlErr := classifyDownloadError(err)
	if dlErr.Timeout {
		sink.SetStatus(model.Status{Kind: model.StatusTimeout})
	} else {
		sink.SetStatus(model.Status{Kind: model.StatusError, Err: err.Error()})
	}
	entry.WithError(err).WithField("timeout", dlErr.Timeout).Error("Download failed")
	return dlErr
}

// entry returns a log entry correlated by a fresh operation id
func (s *Service) entry(op, url string) *logrus.Entry {
	fields := logrus.Fields{"op": op, "url": url}
	if id, err := uuid.NewV7(); err == nil {
		fields["op_id"] = id.String()
	}
	if videoID, ok := platform.ExtractVideoID(url); ok {
		fields["video_id"] = videoID
	}
	return s.log.WithFields(fields)
}
