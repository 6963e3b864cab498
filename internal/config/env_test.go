package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadEnv_Defaults(t *testing.T) {
	t.Setenv("YTDL_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	env, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	if *env != DefaultEnv() {
		t.Errorf("Expected defaults %+v, got %+v", DefaultEnv(), *env)
	}
}

func TestLoadEnv_FileAndOverrides(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("ytdlpPath: /opt/yt-dlp\nlogLevel: debug\nthumbnailTimeout: 5s\n")
	if err := os.WriteFile(configFile, data, 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv("YTDL_CONFIG_FILE", configFile)
	t.Setenv("YTDL_LOG_LEVEL", "warn")
	t.Setenv("YTDL_DOWNLOAD_DIR", "/srv/media")
	t.Setenv("YTDL_FETCH_TIMEOUT", "30s")

	env, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	expected := Env{
		YTDLPPath:        "/opt/yt-dlp",
		DownloadDir:      "/srv/media",
		LogLevel:         "warn",
		ThumbnailTimeout: 5 * time.Second,
		FetchTimeout:     30 * time.Second,
	}
	if *env != expected {
		t.Errorf("Expected %+v, got %+v", expected, *env)
	}
}

func TestLoadEnv_Errors(t *testing.T) {
	t.Run("unknown field in file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(configFile, []byte("maxParallel: 4\n"), 0644); err != nil {
			t.Fatalf("Failed to write config file: %v", err)
		}
		if _, err := loadEnv(configFile); err == nil {
			t.Error("Expected error for unknown field")
		}
	})

	t.Run("bad duration in environment", func(t *testing.T) {
		t.Setenv("YTDL_FETCH_TIMEOUT", "soon")
		if _, err := loadEnv(""); err == nil {
			t.Error("Expected error for invalid duration")
		}
	})
}
