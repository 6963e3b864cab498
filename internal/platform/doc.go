package platform

// Package platform contains OS/platform integration and external tooling glue:
// filesystem helpers, executable lookup, video URL parsing and thumbnail loading.
