package download

import (
	"path/filepath"
	"time"
)

// Download constants passed through to yt-dlp
const (
	DefaultRetries         = 10
	DefaultFragmentRetries = 10
	DefaultSocketTimeout   = 30 * time.Second
	ProgressThrottle       = 250 * time.Millisecond
)

// Audio extraction settings used in audio-only mode
const (
	AudioCodecMP3   = "mp3"
	AudioQuality192 = "192"
)

// Format selectors
const (
	FormatBestAudio = "bestaudio/best"
	FormatBestVideo = "bestvideo+bestaudio/best"
)

// FilenameTemplate binds the output filename to the video title and extension
const FilenameTemplate = "%(title)s.%(ext)s"

// Options is the download configuration built fresh for every download.
type Options struct {
	OutputDir       string
	FormatID        string // empty lets yt-dlp pick the best stream
	AudioOnly       bool
	AudioCodec      string // set only in audio-only mode
	AudioQuality    string // set only in audio-only mode
	Retries         int
	FragmentRetries int
	SocketTimeout   time.Duration
}

// NewOptions creates a download configuration with the fixed retry and timeout settings
func NewOptions(outputDir, formatID string, audioOnly bool) Options {
	opts := Options{
		OutputDir:       outputDir,
		FormatID:        formatID,
		AudioOnly:       audioOnly,
		Retries:         DefaultRetries,
		FragmentRetries: DefaultFragmentRetries,
		SocketTimeout:   DefaultSocketTimeout,
	}
	if audioOnly {
		opts.AudioCodec = AudioCodecMP3
		opts.AudioQuality = AudioQuality192
	}
	return opts
}

// OutputTemplate returns the full yt-dlp output path template
func (o Options) OutputTemplate() string {
	return filepath.Join(o.OutputDir, FilenameTemplate)
}

// FormatSelector returns the explicit format id, or the best-stream fallback for the mode
func (o Options) FormatSelector() string {
	switch {
	case o.FormatID != "":
		return o.FormatID
	case o.AudioOnly:
		return FormatBestAudio
	default:
		return FormatBestVideo
	}
}

// ExtractsAudio reports whether post-download transcoding is requested
func (o Options) ExtractsAudio() bool {
	return o.AudioOnly && o.AudioCodec != ""
}
