package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Display list sentinels. They carry no format id and mean "let yt-dlp pick".
const (
	BestVideoEntry = "Best quality"
	BestAudioEntry = "Best audio quality"
)

// Label fragments
const (
	UnknownResolution = "unknown"
	resolutionSep     = " - "
	formatIDPrefix    = "[ID: "
	formatIDSuffix    = "]"
)

// FormatLists holds the two display lists derived from one metadata record.
// Neither list includes its leading sentinel; Entries adds it.
type FormatLists struct {
	Video []string
	Audio []string
}

// BuildFormatLists derives both display lists from scratch.
// Video entries are sorted by parsed resolution, highest first; ties and
// unparseable resolutions keep source order. Audio entries keep source order.
func BuildFormatLists(formats []Format) FormatLists {
	video, audio := PartitionFormats(formats)

	lists := FormatLists{
		Video: make([]string, 0, len(video)),
		Audio: make([]string, 0, len(audio)),
	}
	for _, f := range video {
		lists.Video = append(lists.Video, VideoLabel(f))
	}
	for _, f := range audio {
		lists.Audio = append(lists.Audio, AudioLabel(f))
	}

	sort.SliceStable(lists.Video, func(i, j int) bool {
		return labelHeight(lists.Video[i]) > labelHeight(lists.Video[j])
	})
	return lists
}

// Entries returns the list shown in the format selector for the given mode,
// prefixed with the matching "best" sentinel.
func (l FormatLists) Entries(audioOnly bool) []string {
	if audioOnly {
		return append([]string{BestAudioEntry}, l.Audio...)
	}
	return append([]string{BestVideoEntry}, l.Video...)
}

// VideoLabel renders a video-capable format as "<resolution> - <note> (<ext>) [ID: <id>]".
func VideoLabel(f Format) string {
	resolution := f.Resolution
	if resolution == "" {
		resolution = UnknownResolution
	}
	return fmt.Sprintf("%s%s%s (%s) %s%s%s", resolution, resolutionSep, f.FormatNote, f.Ext, formatIDPrefix, f.FormatID, formatIDSuffix)
}

// AudioLabel renders an audio-only format as "Audio: <note> (<ext>) [ID: <id>]".
func AudioLabel(f Format) string {
	return fmt.Sprintf("Audio: %s (%s) %s%s%s", f.FormatNote, f.Ext, formatIDPrefix, f.FormatID, formatIDSuffix)
}

// ParseResolution returns the pixel height encoded in strings like
// "1920x1080" or "720p". Anything else yields 0.
func ParseResolution(resolution string) int {
	if _, height, ok := strings.Cut(resolution, "x"); ok {
		n, err := strconv.Atoi(height)
		if err != nil {
			return 0
		}
		return n
	}
	if height, _, ok := strings.Cut(resolution, "p"); ok {
		n, err := strconv.Atoi(height)
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}

// labelHeight parses the resolution part of a video label
func labelHeight(label string) int {
	resolution, _, _ := strings.Cut(label, resolutionSep)
	return ParseResolution(resolution)
}

// FormatIDFromEntry extracts the explicit format id from a display entry.
// Sentinels, empty selections and entries without an id tag return false.
func FormatIDFromEntry(entry string) (string, bool) {
	if entry == "" || entry == BestVideoEntry || entry == BestAudioEntry {
		return "", false
	}
	idx := strings.LastIndex(entry, formatIDPrefix)
	if idx < 0 {
		return "", false
	}
	id := strings.TrimSuffix(entry[idx+len(formatIDPrefix):], formatIDSuffix)
	if id == "" {
		return "", false
	}
	return id, true
}
