package download

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyURL is returned when a fetch is requested without a URL
	ErrEmptyURL = errors.New("please enter a URL")

	// ErrNoVideoInfo is returned when a download is requested before any metadata was loaded
	ErrNoVideoInfo = errors.New("no video information loaded")
)

// timeoutMarker identifies connection timeouts in library error text
const timeoutMarker = "timed out"

// ExtractionError is a metadata fetch failure. Its message is the library's own text.
type ExtractionError struct {
	URL string
	Err error
}

func (e *ExtractionError) Error() string {
	return e.Err.Error()
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// InvalidOutputDirectoryError is returned before a download starts when the
// destination is missing or not a directory.
type InvalidOutputDirectoryError struct {
	Path string
	Err  error
}

func (e *InvalidOutputDirectoryError) Error() string {
	return fmt.Sprintf("invalid output directory %q: %v", e.Path, e.Err)
}

func (e *InvalidOutputDirectoryError) Unwrap() error {
	return e.Err
}

// DownloadError is a failed download. Timeout is set for connection timeouts.
type DownloadError struct {
	Err     error
	Timeout bool
}

func (e *DownloadError) Error() string {
	return e.Err.Error()
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

// classifyDownloadError wraps a library error into a DownloadError
func classifyDownloadError(err error) *DownloadError {
	return &DownloadError{
		Err:     err,
		Timeout: strings.Contains(strings.ToLower(err.Error()), timeoutMarker),
	}
}
