package model

// Phase is the busy state of one long-running action (fetch or download).
type Phase string

const (
	// PhaseIdle means no worker is running for the action
	PhaseIdle Phase = "Idle"

	// PhaseFetching means a metadata fetch worker is running
	PhaseFetching Phase = "Fetching"

	// PhaseDownloading means a download worker is running
	PhaseDownloading Phase = "Downloading"
)

// String returns the string representation of Phase
func (p Phase) String() string {
	return string(p)
}

// IsBusy returns true while a worker owns the action
func (p Phase) IsBusy() bool {
	return p == PhaseFetching || p == PhaseDownloading
}

// StatusKind identifies which status-line message is shown.
type StatusKind int

const (
	StatusReady StatusKind = iota
	StatusLoadingInfo
	StatusReadyToDownload
	StatusPreparing
	StatusDownloading
	// StatusTransferring carries the live transfer rate and ETA
	StatusTransferring
	// StatusProcessing means the raw transfer is done and post-processing may follow
	StatusProcessing
	StatusCompleted
	StatusError
	StatusTimeout
)

// Status is the value of the status line. Only the fields relevant to Kind are set.
type Status struct {
	Kind   StatusKind
	Speed  float64 // bytes per second, -1 if unknown
	ETASec int     // ETA in seconds, -1 if unknown
	Err    string  // raw error text for StatusError
}

// SpeedMBps returns the transfer rate in MB/s
func (s Status) SpeedMBps() float64 {
	if s.Speed <= 0 {
		return 0
	}
	return s.Speed / 1024 / 1024
}
