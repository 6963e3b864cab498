package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// ErrNotDirectory is returned when the output path exists but is a file
var ErrNotDirectory = errors.New("not a directory")

// ValidateOutputDir checks that dir exists and is a directory.
func ValidateOutputDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("output directory is empty: %w", os.ErrNotExist)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", dir, ErrNotDirectory)
	}
	return nil
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "Downloads"), nil
}

// RevealDirectory opens dir in the system file manager
func RevealDirectory(dir string) error {
	if err := ValidateOutputDir(dir); err != nil {
		return fmt.Errorf("directory does not exist: %w", err)
	}

	absPath, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	name, args, err := revealCommand(runtime.GOOS, absPath)
	if err != nil {
		return err
	}
	return exec.Command(name, args...).Start()
}

// revealCommand returns the file manager invocation for goos
func revealCommand(goos, dir string) (string, []string, error) {
	switch goos {
	case OSDarwin:
		return OpenCommand, []string{dir}, nil
	case OSWindows:
		return ExplorerCommand, []string{dir}, nil
	case OSLinux:
		return XDGOpenCommand, []string{dir}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}
