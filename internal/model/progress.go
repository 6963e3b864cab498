package model

// ProgressStatus is the status tag of a library progress event
type ProgressStatus string

const (
	ProgressDownloading ProgressStatus = "downloading"
	ProgressFinished    ProgressStatus = "finished"
)

// ProgressEvent is one progress report from the download library
type ProgressEvent struct {
	Status          ProgressStatus
	DownloadedBytes int64
	TotalBytes      int64   // exact or estimated total, 0 if unknown
	Speed           float64 // bytes per second, -1 if unknown
	ETASec          int     // ETA in seconds, -1 if unknown
}

// Percent returns bytes done over total as 0..100. It is false while the total is unknown.
func (e ProgressEvent) Percent() (float64, bool) {
	if e.TotalBytes <= 0 {
		return 0, false
	}
	return float64(e.DownloadedBytes) / float64(e.TotalBytes) * 100, true
}

// HasSpeed returns true when the event carries a transfer rate
func (e ProgressEvent) HasSpeed() bool {
	return e.Speed >= 0
}
