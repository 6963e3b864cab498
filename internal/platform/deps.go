package platform

import (
	"os/exec"
	"strings"
)

// DefaultYTDLPExecutable is looked up on PATH when no explicit path is configured
const DefaultYTDLPExecutable = "yt-dlp"

// InstallHint is printed when required tools are missing
const InstallHint = "Install them with: pip install -U yt-dlp"

// lookPath is replaced in tests
var lookPath = exec.LookPath

// MissingDependencies returns the required executables that cannot be resolved.
// An empty ytdlpPath means the default executable name.
func MissingDependencies(ytdlpPath string) []string {
	if strings.TrimSpace(ytdlpPath) == "" {
		ytdlpPath = DefaultYTDLPExecutable
	}

	var missing []string
	if _, err := lookPath(ytdlpPath); err != nil {
		missing = append(missing, ytdlpPath)
	}
	return missing
}
