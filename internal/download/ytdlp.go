package download

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"github.com/ytget/yt-downloader/internal/model"
)

// errorLinePrefix marks fatal messages on yt-dlp's stderr
const errorLinePrefix = "ERROR:"

// YTDLP runs the yt-dlp executable through go-ytdlp.
type YTDLP struct {
	executable string
}

// NewYTDLP creates an extractor. An empty executable uses yt-dlp from PATH.
func NewYTDLP(executable string) *YTDLP {
	return &YTDLP{executable: executable}
}

func (y *YTDLP) command() *ytdlp.Command {
	cmd := ytdlp.New()
	if y.executable != "" {
		cmd.SetExecutable(y.executable)
	}
	return cmd
}

// ExtractInfo runs a metadata-only extraction and decodes the single JSON dump
func (y *YTDLP) ExtractInfo(ctx context.Context, url string) (*model.VideoInfo, error) {
	cmd := y.command().
		DumpSingleJSON().
		SkipDownload().
		NoPlaylist().
		SocketTimeout(DefaultSocketTimeout.Seconds())

	res, err := cmd.Run(ctx, url)
	if err != nil {
		return nil, libraryError(res, err)
	}

	var info model.VideoInfo
	if err := json.Unmarshal([]byte(res.Stdout), &info); err != nil {
		return nil, fmt.Errorf("decode video info: %w", err)
	}
	return &info, nil
}

// Download runs a blocking download configured by opts. Progress is reported
// on yt-dlp's goroutine through progress.
func (y *YTDLP) Download(ctx context.Context, url string, opts Options, progress ProgressFunc) error {
	cmd := y.command().
		NoPlaylist().
		Output(opts.OutputTemplate()).
		Format(opts.FormatSelector()).
		Retries(strconv.Itoa(opts.Retries)).
		FragmentRetries(strconv.Itoa(opts.FragmentRetries)).
		SocketTimeout(opts.SocketTimeout.Seconds())

	if opts.ExtractsAudio() {
		cmd.ExtractAudio().
			AudioFormat(opts.AudioCodec).
			AudioQuality(opts.AudioQuality)
	}

	if progress != nil {
		cmd.ProgressFunc(ProgressThrottle, func(update ytdlp.ProgressUpdate) {
			if ev, ok := progressEvent(update, time.Now()); ok {
				progress(ev)
			}
		})
	}

	res, err := cmd.Run(ctx, url)
	if err != nil {
		return libraryError(res, err)
	}
	return nil
}

// progressEvent converts a go-ytdlp update. Statuses other than downloading
// and finished are dropped.
//
// go-ytdlp does not pass through yt-dlp's instantaneous speed, so Speed is the
// average rate since update.Started and the ETA is the remaining bytes at that
// rate. Both are -1 until some bytes have arrived after a non-zero elapsed time.
func progressEvent(update ytdlp.ProgressUpdate, now time.Time) (model.ProgressEvent, bool) {
	ev := model.ProgressEvent{
		DownloadedBytes: int64(update.DownloadedBytes),
		TotalBytes:      int64(update.TotalBytes),
		Speed:           -1,
		ETASec:          -1,
	}

	switch model.ProgressStatus(update.Status) {
	case model.ProgressDownloading:
		ev.Status = model.ProgressDownloading
	case model.ProgressFinished:
		ev.Status = model.ProgressFinished
		return ev, true
	default:
		return ev, false
	}

	if update.Started.IsZero() || update.DownloadedBytes <= 0 {
		return ev, true
	}
	elapsed := now.Sub(update.Started).Seconds()
	if elapsed <= 0 {
		return ev, true
	}
	ev.Speed = float64(update.DownloadedBytes) / elapsed
	if remaining := update.TotalBytes - update.DownloadedBytes; update.TotalBytes > 0 && remaining >= 0 {
		ev.ETASec = int(float64(remaining) / ev.Speed)
	}
	return ev, true
}

// libraryError prefers yt-dlp's own ERROR line over the exit status message
func libraryError(res *ytdlp.Result, err error) error {
	if errors.Is(err, context.Canceled) || res == nil {
		return err
	}
	if line := lastErrorLine(res.Stderr); line != "" {
		return errors.New(line)
	}
	return err
}

// lastErrorLine returns the last "ERROR:" line of stderr, or "" if there is none
func lastErrorLine(stderr string) string {
	lines := strings.Split(stderr, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if strings.HasPrefix(line, errorLinePrefix) {
			return line
		}
	}
	return ""
}
