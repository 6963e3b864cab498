package download

import (
	"github.com/ytget/yt-downloader/internal/model"
)

// ProcessingPercent is shown once the raw transfer is done. 100 is reserved
// for the download worker's success path, since post-processing may follow.
const ProcessingPercent = 95

// NewProgressRelay translates library progress events into sink updates.
// Events arrive on the library's goroutine; the sink must be safe for that.
func NewProgressRelay(sink ProgressSink) ProgressFunc {
	return func(ev model.ProgressEvent) {
		switch ev.Status {
		case model.ProgressDownloading:
			if percent, ok := ev.Percent(); ok {
				sink.SetProgress(percent)
			}
			if ev.HasSpeed() {
				sink.SetStatus(model.Status{Kind: model.StatusTransferring, Speed: ev.Speed, ETASec: ev.ETASec})
			}
		case model.ProgressFinished:
			sink.SetStatus(model.Status{Kind: model.StatusProcessing})
			sink.SetProgress(ProcessingPercent)
		}
	}
}
