package platform

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestGetHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if downloadsDir == "" {
		t.Fatal("Downloads directory is empty")
	}

	// Should end with "Downloads"
	if filepath.Base(downloadsDir) != "Downloads" {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}

func TestValidateOutputDir(t *testing.T) {
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "file.txt")
	if err := os.WriteFile(filePath, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	tests := []struct {
		name      string
		dir       string
		wantErr   bool
		wantIsErr error
	}{
		{name: "existing directory", dir: tempDir},
		{name: "missing directory", dir: filepath.Join(tempDir, "missing"), wantErr: true, wantIsErr: os.ErrNotExist},
		{name: "regular file", dir: filePath, wantErr: true, wantIsErr: ErrNotDirectory},
		{name: "empty path", dir: "", wantErr: true, wantIsErr: os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputDir(tt.dir)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateOutputDir(%q) error = %v, wantErr %v", tt.dir, err, tt.wantErr)
			}
			if tt.wantIsErr != nil && !errors.Is(err, tt.wantIsErr) {
				t.Errorf("expected error to wrap %v, got %v", tt.wantIsErr, err)
			}
		})
	}
}

func TestRevealDirectory_NonExistentDir(t *testing.T) {
	err := RevealDirectory(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Error("Expected error for non-existent directory")
	}
}

func TestRevealCommand(t *testing.T) {
	tests := []struct {
		goos         string
		expectedName string
		wantErr      bool
	}{
		{OSDarwin, OpenCommand, false},
		{OSWindows, ExplorerCommand, false},
		{OSLinux, XDGOpenCommand, false},
		{"plan9", "", true},
	}

	for _, test := range tests {
		name, args, err := revealCommand(test.goos, "/tmp/out")
		if (err != nil) != test.wantErr {
			t.Errorf("revealCommand(%s) error = %v, wantErr %v", test.goos, err, test.wantErr)
			continue
		}
		if test.wantErr {
			continue
		}
		if name != test.expectedName {
			t.Errorf("revealCommand(%s) name = %s, expected %s", test.goos, name, test.expectedName)
		}
		if !reflect.DeepEqual(args, []string{"/tmp/out"}) {
			t.Errorf("revealCommand(%s) args = %v", test.goos, args)
		}
	}
}
