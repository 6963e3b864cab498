package model

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Info text constants
const (
	DescriptionPreviewRunes = 200
	DescriptionEllipsis     = "..."
	UploadDateLength        = 8
)

// Time formatting constants
const (
	SecondsPerHour   = 3600
	SecondsPerMinute = 60
)

// SummaryLabels are the line captions of the info text. The UI passes localized values.
type SummaryLabels struct {
	Title       string
	Channel     string
	Duration    string
	Views       string
	UploadDate  string
	Description string
	Unknown     string
}

var viewsPrinter = message.NewPrinter(language.English)

// Summary renders the info text block shown next to the thumbnail.
func (v *VideoInfo) Summary(labels SummaryLabels) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s: %s\n", labels.Title, orDefault(v.Title, labels.Unknown))
	fmt.Fprintf(&b, "%s: %s\n", labels.Channel, orDefault(v.Uploader, labels.Unknown))

	if d := FormatDuration(int(v.Duration)); d != "" {
		fmt.Fprintf(&b, "%s: %s\n", labels.Duration, d)
	}

	views := labels.Unknown
	if v.ViewCount != nil {
		views = FormatViews(*v.ViewCount)
	}
	fmt.Fprintf(&b, "%s: %s\n", labels.Views, views)

	if date, ok := FormatUploadDate(v.UploadDate); ok {
		fmt.Fprintf(&b, "%s: %s\n", labels.UploadDate, date)
	}

	if v.Description != "" {
		fmt.Fprintf(&b, "\n%s: %s", labels.Description, PreviewDescription(v.Description))
	}

	return b.String()
}

// FormatDuration formats seconds as H:MM:SS or M:SS. Zero or negative yields "".
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return ""
	}
	hours := seconds / SecondsPerHour
	minutes := (seconds % SecondsPerHour) / SecondsPerMinute
	secs := seconds % SecondsPerMinute
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

// FormatViews renders a view count with thousands separators
func FormatViews(views int64) string {
	return viewsPrinter.Sprintf("%d", views)
}

// FormatUploadDate converts YYYYMMDD into YYYY-MM-DD
func FormatUploadDate(date string) (string, bool) {
	if len(date) != UploadDateLength {
		return "", false
	}
	for _, r := range date {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return date[:4] + "-" + date[4:6] + "-" + date[6:8], true
}

// PreviewDescription keeps the first DescriptionPreviewRunes runes and appends an ellipsis
func PreviewDescription(description string) string {
	runes := []rune(description)
	if len(runes) > DescriptionPreviewRunes {
		runes = runes[:DescriptionPreviewRunes]
	}
	return string(runes) + DescriptionEllipsis
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
