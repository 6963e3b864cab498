package download

// Package download implements the metadata-fetch and download workers built on
// top of yt-dlp (via github.com/lrstanley/go-ytdlp). It owns the download
// configuration, relays library progress to a sink, and classifies failures.
