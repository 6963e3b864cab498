package model

import (
	"encoding/json"
	"testing"
)

const sampleInfoJSON = `{
  "id": "dQw4w9WgXcQ",
  "title": "Sample",
  "uploader": "Channel",
  "duration": 212.0,
  "view_count": 42,
  "upload_date": "20091025",
  "thumbnail": "https://i.ytimg.com/vi/dQw4w9WgXcQ/maxresdefault.webp",
  "webpage_url": "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
  "formats": [
    {"format_id": "140", "ext": "m4a", "format_note": "medium", "resolution": "audio only", "vcodec": "none", "acodec": "mp4a.40.2"},
    {"format_id": "137", "ext": "mp4", "format_note": "1080p", "resolution": "1920x1080", "vcodec": "avc1.640028", "acodec": "none"}
  ]
}`

func TestVideoInfo_DecodeJSON(t *testing.T) {
	var info VideoInfo
	if err := json.Unmarshal([]byte(sampleInfoJSON), &info); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}

	if info.Title != "Sample" || info.Uploader != "Channel" {
		t.Errorf("Unexpected title/uploader: %q / %q", info.Title, info.Uploader)
	}
	if info.Duration != 212 {
		t.Errorf("Expected duration 212, got %v", info.Duration)
	}
	if info.ViewCount == nil || *info.ViewCount != 42 {
		t.Errorf("Expected view count 42, got %v", info.ViewCount)
	}
	if len(info.Formats) != 2 {
		t.Fatalf("Expected 2 formats, got %d", len(info.Formats))
	}
	if !info.Formats[0].IsAudioOnly() || info.Formats[0].HasVideo() {
		t.Error("Format 140 should be audio-only")
	}
	if !info.Formats[1].HasVideo() || info.Formats[1].IsAudioOnly() {
		t.Error("Format 137 should be video-capable")
	}
}

func TestPartitionFormats(t *testing.T) {
	formats := []Format{
		{FormatID: "v", VCodec: "avc1", ACodec: "none", Resolution: "1280x720"},
		{FormatID: "a", VCodec: "none", ACodec: "opus", Resolution: "audio only"},
		{FormatID: "m", Resolution: "640x360"}, // codecs not reported
		{FormatID: "n", VCodec: "none", ACodec: "none"},
	}

	video, audio := PartitionFormats(formats)

	if len(video) != 2 || video[0].FormatID != "v" || video[1].FormatID != "m" {
		t.Errorf("Unexpected video partition: %+v", video)
	}
	if len(audio) != 1 || audio[0].FormatID != "a" {
		t.Errorf("Unexpected audio partition: %+v", audio)
	}
}
