package model

// yt-dlp sentinels
const (
	CodecNone           = "none"
	ResolutionAudioOnly = "audio only"
)

// VideoInfo is the metadata record returned by a metadata-only extraction.
// It is decoded from yt-dlp's single JSON dump; fields yt-dlp omits stay zero.
type VideoInfo struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Uploader    string   `json:"uploader"`
	Duration    float64  `json:"duration"`    // seconds
	ViewCount   *int64   `json:"view_count"`  // nil when unknown
	UploadDate  string   `json:"upload_date"` // YYYYMMDD
	Description string   `json:"description"`
	Thumbnail   string   `json:"thumbnail"`
	WebpageURL  string   `json:"webpage_url"`
	Formats     []Format `json:"formats"`
}

// Format is one concrete stream option of a video.
type Format struct {
	FormatID   string `json:"format_id"`
	Ext        string `json:"ext"`
	FormatNote string `json:"format_note"`
	Resolution string `json:"resolution"`
	VCodec     string `json:"vcodec"`
	ACodec     string `json:"acodec"`
}

// HasVideo reports whether the format carries a video stream.
// A missing codec field counts as present, matching yt-dlp's own defaults.
func (f Format) HasVideo() bool {
	return f.VCodec != CodecNone && f.Resolution != ResolutionAudioOnly
}

// IsAudioOnly reports whether the format carries audio and no video.
func (f Format) IsAudioOnly() bool {
	return f.VCodec == CodecNone && f.ACodec != CodecNone
}

// PartitionFormats splits formats into video-capable and audio-only descriptors,
// keeping source order. Formats that are neither are dropped.
func PartitionFormats(formats []Format) (video, audio []Format) {
	for _, f := range formats {
		switch {
		case f.HasVideo():
			video = append(video, f)
		case f.IsAudioOnly():
			audio = append(audio, f)
		}
	}
	return video, audio
}
